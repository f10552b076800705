package ascii

import "fmt"

// ErrorKind categorizes the failures the tool can surface.
type ErrorKind string

const (
	// KindIO - standard input read failures and timeouts
	KindIO ErrorKind = "io"
	// KindImage - decode failures and the "no image selected" case
	KindImage ErrorKind = "load-image"
	// KindConfig - invalid command line values
	KindConfig ErrorKind = "configuration"
	// KindUnknown - fallback category, never swallowed silently
	KindUnknown ErrorKind = "unknown"
)

// Error is the single error type surfaced by the tool. Every failure is
// fatal for the invocation: the entry point prints the formatted message
// once and exits non-zero.
type Error struct {
	Kind   ErrorKind
	Detail string
}

func (e *Error) Error() string {
	kind := e.Kind
	switch kind {
	case KindIO, KindImage, KindConfig:
	default:
		kind = KindUnknown
	}
	return fmt.Sprintf("%s error: %s", kind, e.Detail)
}

func errorf(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}
