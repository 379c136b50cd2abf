// Package lifecycle implements the shutdown-broadcast protocol shared by
// both services: a root task installs signal handlers, closes a shared
// channel once, and long-running tasks select on it alongside their work.
package lifecycle

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// Shutdown is a broadcast-once channel of the kind described in the
// capture/prediction concurrency model: closing it wakes every selecting
// goroutine simultaneously, unlike a buffered channel send which would
// only wake one.
type Shutdown struct {
	ch   chan struct{}
	once sync.Once
}

func New() *Shutdown {
	return &Shutdown{ch: make(chan struct{})}
}

// Done returns the channel goroutines should select on alongside their work.
func (s *Shutdown) Done() <-chan struct{} {
	return s.ch
}

// Trigger closes the channel, waking every subscriber. Safe to call more
// than once or concurrently.
func (s *Shutdown) Trigger() {
	s.once.Do(func() { close(s.ch) })
}

// WaitForSignal blocks until SIGINT or SIGTERM is received, then triggers
// shutdown. Intended to run on the root goroutine of a `serve` command.
func (s *Shutdown) WaitForSignal() {
	termChan := make(chan os.Signal, 1)
	signal.Notify(termChan, syscall.SIGINT, syscall.SIGTERM)
	<-termChan
	s.Trigger()
}
