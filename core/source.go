package ascii

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"
)

// readResult is the single-use handoff between the stdin reader goroutine
// and the timeout select in ResolveSource.
type readResult struct {
	line string
	err  error
}

// ResolveSource determines the image source. A non-empty src wins outright
// (existence is checked later, at decode time). Otherwise one line is read
// from stdin, bounded by timeout so an interactive terminal with nothing
// piped in does not hang the program.
//
// The read runs on its own goroutine and hands its result back over a
// buffered channel. If the timeout fires first the goroutine is abandoned;
// the buffer keeps its eventual send from blocking process exit.
func ResolveSource(src string, stdin io.Reader, out io.Writer, timeout time.Duration) (string, error) {
	if src != "" {
		return src, nil
	}

	ch := make(chan readResult, 1)
	go func() {
		line, err := bufio.NewReader(stdin).ReadString('\n')
		ch <- readResult{line: strings.TrimSpace(line), err: err}
	}()

	select {
	case res := <-ch:
		if res.err != nil && res.line == "" {
			fmt.Fprintln(out, "No image selected, run with --help for more info")
			return "", errorf(KindIO, "%s", res.err)
		}
		if res.line == "" {
			return "", errorf(KindIO, "stdin is empty")
		}
		return res.line, nil
	case <-time.After(timeout):
		fmt.Fprintln(out, "No image selected, run with --help for more info")
		return "", errorf(KindIO, "no input received on stdin")
	}
}
