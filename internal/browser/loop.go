package browser

import (
	"errors"
	"log/slog"

	"scrap/internal/host"
	"scrap/internal/platform"
)

// Mode is how the loop reads the native event source.
type Mode int

const (
	// Blocking waits for each native event.
	Blocking Mode = iota
	// Polling drains whatever is queued and returns immediately.
	Polling
)

func (m Mode) String() string {
	if m == Polling {
		return "polling"
	}
	return "blocking"
}

// EventSource is the native event source.
type EventSource interface {
	Wait() (platform.Event, error)
	Poll() ([]platform.Event, error)
}

// Loop drives a session from a native event source. While the engine is
// animating it polls so frames keep coming; otherwise it blocks.
type Loop struct {
	source  EventSource
	session *Session
	mode    Mode
	log     *slog.Logger
}

func NewLoop(source EventSource, session *Session, log *slog.Logger) *Loop {
	if log == nil {
		log = host.NopLogger()
	}
	return &Loop{source: source, session: session, mode: Blocking, log: log}
}

// Mode returns the mode of the last iteration.
func (l *Loop) Mode() Mode { return l.mode }

func (l *Loop) animating() bool { return l.session.window.Animating() }

// Run iterates forever. A Quit sent to the engine does not stop it; Run
// only returns once the event source is closed.
func (l *Loop) Run() error {
	for {
		if err := l.Iterate(); err != nil {
			if errors.Is(err, platform.ErrClosed) {
				l.log.Debug("event source closed")
			}
			return err
		}
	}
}

// Iterate runs one outer iteration in the mode picked from the current
// animation state.
func (l *Loop) Iterate() error {
	next := Blocking
	if l.animating() {
		next = Polling
	}
	if next != l.mode {
		l.log.Debug("loop mode changed", "from", l.mode, "to", next)
		l.mode = next
	}
	if l.mode == Polling {
		return l.poll()
	}
	return l.block()
}

func (l *Loop) poll() error {
	events, err := l.source.Poll()
	if err != nil {
		return err
	}
	for _, ev := range events {
		l.session.HandleNative(ev)
	}
	return l.flush()
}

// block handles native events one at a time until the engine starts
// animating.
func (l *Loop) block() error {
	for {
		ev, err := l.source.Wait()
		if err != nil {
			return err
		}
		l.session.HandleNative(ev)
		if err := l.flush(); err != nil {
			return err
		}
		if l.animating() {
			return nil
		}
	}
}

func (l *Loop) flush() error {
	err := l.session.Flush()
	if errors.Is(err, ErrNotQuiescent) {
		// The leftover events go out with the next flush.
		return nil
	}
	return err
}
