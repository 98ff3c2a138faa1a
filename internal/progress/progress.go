// Package progress reports parse progress without flooding the terminal.
package progress

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Reporter prints the running record count while a large trace is parsed,
// throttled to at most one line per second.
type Reporter struct {
	quiet  bool
	every  rate.Sometimes
	mu     sync.Mutex
	output io.Writer
}

// NewReporter creates a Reporter writing to stderr. A quiet reporter drops
// everything.
func NewReporter(quiet bool) *Reporter {
	return &Reporter{
		quiet:  quiet,
		every:  rate.Sometimes{Interval: time.Second},
		output: os.Stderr,
	}
}

// SetOutput redirects output, primarily for tests.
func (r *Reporter) SetOutput(w io.Writer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.output = w
}

// Update reports the running record count. Most calls are dropped by the
// throttle; the first one always prints.
func (r *Reporter) Update(parsed int) {
	if r.quiet {
		return
	}
	r.every.Do(func() {
		r.mu.Lock()
		fmt.Fprintf(r.output, "\033[K%d records parsed\r", parsed)
		r.mu.Unlock()
	})
}

// Done clears the progress line.
func (r *Reporter) Done() {
	if r.quiet {
		return
	}
	r.mu.Lock()
	fmt.Fprintf(r.output, "\033[K")
	r.mu.Unlock()
}

// Printf prints a message, replacing any pending progress line.
func (r *Reporter) Printf(format string, args ...interface{}) {
	if r.quiet {
		return
	}
	r.mu.Lock()
	fmt.Fprintf(r.output, "\033[K"+format+"\n", args...)
	r.mu.Unlock()
}
