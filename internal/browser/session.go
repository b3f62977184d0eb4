// Package browser bridges native window events and the hosted engine.
//
// Channels of communication:
//   - the engine calls the host through embedder.WindowMethods
//   - the native layer delivers platform events to HandleNative
//   - the engine reports messages, collected by Flush
//   - the host sends engine events, queued by Send and delivered by Flush
package browser

import (
	"errors"
	"fmt"
	"log/slog"

	"scrap/internal/embedder"
	"scrap/internal/host"
	"scrap/internal/input"
	"scrap/internal/platform"
)

// ErrNotQuiescent is returned by Flush when a round limit is set and the
// exchange with the engine did not settle within it.
var ErrNotQuiescent = errors.New("browser: engine exchange did not settle")

// MessageHandler handles an engine message the session does not answer
// itself. Any events it returns are queued for the engine.
type MessageHandler func(env embedder.Envelope) []embedder.Event

// Window is the part of the host window the session drives.
type Window interface {
	embedder.WindowMethods
	Native() platform.Window
	ResizeSurface()
	Animating() bool
}

var _ Window = (*host.Window)(nil)

type Session struct {
	engine embedder.Engine
	window Window
	input  *input.Translator

	queue    []embedder.Event
	handlers []MessageHandler

	maxRounds int
	rounds    uint64
	log       *slog.Logger
}

type Option func(*Session)

func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithMaxRounds caps the exchanges a single Flush may perform. Zero means
// no cap.
func WithMaxRounds(n int) Option {
	return func(s *Session) {
		if n > 0 {
			s.maxRounds = n
		}
	}
}

func WithInput(cfg input.Config) Option {
	return func(s *Session) {
		s.input = input.NewTranslator(cfg)
	}
}

// NewSession creates the engine for window and binds it to a new session.
func NewSession(window Window, factory embedder.Factory, opts ...Option) (*Session, error) {
	s := &Session{
		window: window,
		log:    host.NopLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.input == nil {
		s.input = input.NewTranslator(input.DefaultConfig())
	}
	engine, err := factory(window)
	if err != nil {
		return nil, fmt.Errorf("create engine: %w", err)
	}
	s.engine = engine
	return s, nil
}

// HandleMessages registers h for engine messages the session ignores.
func (s *Session) HandleMessages(h MessageHandler) {
	s.handlers = append(s.handlers, h)
}

// Send queues an event for the next exchange.
func (s *Session) Send(ev embedder.Event) {
	s.queue = append(s.queue, ev)
}

// Pending returns the number of queued events.
func (s *Session) Pending() int {
	return len(s.queue)
}

// Rounds returns the total number of exchanges performed.
func (s *Session) Rounds() uint64 {
	return s.rounds
}

// HandleNative translates a native event and queues the result.
func (s *Session) HandleNative(ev platform.Event) {
	if ev.Type == platform.EventResize {
		s.window.ResizeSurface()
	}
	for _, out := range s.input.Translate(ev, s.window.Native().ScaleFactor()) {
		s.Send(out)
	}
}

// exchange hands the queue to the engine and handles what it reports back.
// It returns the number of engine messages drained.
func (s *Session) exchange() int {
	batch := s.queue
	s.queue = nil
	s.engine.HandleEvents(batch)
	s.rounds++

	envelopes := s.engine.Events()
	for _, env := range envelopes {
		s.handleMessage(env)
	}
	return len(envelopes)
}

func (s *Session) handleMessage(env embedder.Envelope) {
	switch msg := env.Message.(type) {
	case embedder.AllowNavigationRequest:
		// Every navigation is allowed.
		if env.Browser != embedder.NoBrowser {
			s.Send(embedder.AllowNavigationResponse{Pipeline: msg.Pipeline, Allowed: true})
		}
		return
	}
	for _, h := range s.handlers {
		for _, ev := range h(env) {
			s.Send(ev)
		}
	}
}

// Flush exchanges events with the engine until neither side has anything
// left. Answering an engine message can queue more events and vice versa.
func (s *Session) Flush() error {
	for round := 1; ; round++ {
		drained := s.exchange()
		if drained == 0 && len(s.queue) == 0 {
			if round > 1 {
				s.log.Debug("flush settled", "rounds", round)
			}
			return nil
		}
		if s.maxRounds > 0 && round >= s.maxRounds {
			s.log.Warn("flush round limit reached", "rounds", round, "pending", len(s.queue))
			return fmt.Errorf("%w after %d rounds", ErrNotQuiescent, round)
		}
	}
}
