package term

import (
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
)

// Signals carries the two flags shared with asynchronous signal
// delivery. The notify goroutine only stores into them; all real work
// happens on the render loop's own schedule.
type Signals struct {
	resize atomic.Bool
	quit   atomic.Bool
}

// Notify subscribes to resize and termination signals until the
// returned stop function runs.
func (s *Signals) Notify() (stop func()) {
	ch := make(chan os.Signal, 8)
	signal.Notify(ch, syscall.SIGWINCH, syscall.SIGINT, syscall.SIGTERM)

	done := make(chan struct{})
	stopped := make(chan struct{})
	go func() {
		defer close(done)
		for {
			select {
			case sig := <-ch:
				if sig == syscall.SIGWINCH {
					s.resize.Store(true)
				} else {
					s.quit.Store(true)
				}
			case <-stopped:
				return
			}
		}
	}()

	return func() {
		signal.Stop(ch)
		close(stopped)
		<-done
	}
}

// MarkResized requests a geometry reconcile on the next frame.
func (s *Signals) MarkResized() { s.resize.Store(true) }

// ConsumeResize reports and clears the pending resize flag. A burst of
// resize signals between frames collapses into one reconcile.
func (s *Signals) ConsumeResize() bool { return s.resize.Swap(false) }

// RequestQuit latches the shutdown flag. It is never cleared.
func (s *Signals) RequestQuit() { s.quit.Store(true) }

// QuitRequested reports whether shutdown has been requested.
func (s *Signals) QuitRequested() bool { return s.quit.Load() }
