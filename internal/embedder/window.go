// Package embedder defines the contract between the shell and the hosted
// engine: the events the engine consumes, the messages it emits, and the
// window capabilities it calls back into.
package embedder

import "scrap/internal/render"

type AnimationState int32

const (
	AnimationIdle AnimationState = iota
	AnimationAnimating
)

func (s AnimationState) String() string {
	if s == AnimationAnimating {
		return "animating"
	}
	return "idle"
}

// Waker interrupts the host's blocking wait. Wake may be called from any
// goroutine.
type Waker interface {
	Clone() Waker
	Wake()
}

type Point struct{ X, Y int32 }

type Size struct{ W, H int32 }

type Rect struct {
	Origin Point
	Size   Size
}

// Coordinates are in device pixels. PixelScale is what the engine should
// apply on top, which is always 1 because the rectangles are pre-scaled.
type Coordinates struct {
	Viewport     Rect
	Framebuffer  Size
	WindowSize   Size
	WindowOrigin Point
	Screen       Size
	ScreenAvail  Size
	PixelScale   float32
}

// WindowMethods is implemented by the host and called by the engine.
type WindowMethods interface {
	PrepareForComposite() bool
	Present()
	CreateWaker() Waker
	Surface() *render.Surface
	SetAnimationState(state AnimationState)
	Coordinates() Coordinates
}

// Engine is the hosted rendering engine.
type Engine interface {
	HandleEvents(events []Event)
	Events() []Envelope
}

// Factory creates an engine bound to a window.
type Factory func(window WindowMethods) (Engine, error)
