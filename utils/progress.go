package utils

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// ProgressIndicator renders a spinner on stderr while a slow step runs.
// It never writes to stdout, so the rendered grid stays clean.
type ProgressIndicator struct {
	mu       sync.Mutex
	delay    time.Duration
	writer   io.Writer
	message  string
	StopMsg  string
	stopChan chan struct{}
}

// NewProgressIndicator instantiates a new progress indicator.
func NewProgressIndicator(msg string, d time.Duration) *ProgressIndicator {
	return &ProgressIndicator{
		delay:    d,
		writer:   os.Stderr,
		message:  msg,
		stopChan: make(chan struct{}, 1),
	}
}

// Start starts the spinner on its own goroutine.
func (pi *ProgressIndicator) Start() {
	go func() {
		for {
			for _, r := range `⠋⠙⠹⠸⠼⠴⠦⠧⠇⠏` {
				select {
				case <-pi.stopChan:
					return
				default:
					pi.mu.Lock()
					fmt.Fprintf(pi.writer, "\r%s %c", pi.message, r)
					pi.mu.Unlock()
					time.Sleep(pi.delay)
				}
			}
		}
	}()
}

// Stop clears the spinner line and prints the stop message, if any.
func (pi *ProgressIndicator) Stop() {
	pi.mu.Lock()
	defer pi.mu.Unlock()

	fmt.Fprint(pi.writer, "\r\033[K")
	if len(pi.StopMsg) > 0 {
		fmt.Fprintln(pi.writer, pi.StopMsg)
	}
	pi.stopChan <- struct{}{}
}
