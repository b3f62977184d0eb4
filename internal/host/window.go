// Package host implements the window capabilities the engine calls back
// into.
package host

import (
	"fmt"
	"log/slog"
	"os"
	"sync/atomic"

	"scrap/internal/embedder"
	"scrap/internal/platform"
	"scrap/internal/render"
)

// FatalFunc is called when the native layer breaks an invariant the shell
// cannot recover from. It is not expected to return.
type FatalFunc func(err error)

// Window is the capability surface handed to the engine.
type Window struct {
	native    platform.Window
	waker     embedder.Waker
	surface   *render.Surface
	screenW   int
	screenH   int
	animation atomic.Int32

	fatal FatalFunc
	log   *slog.Logger
}

type Option func(*Window)

func WithLogger(l *slog.Logger) Option {
	return func(w *Window) {
		if l != nil {
			w.log = l
		}
	}
}

func WithFatal(fn FatalFunc) Option {
	return func(w *Window) {
		if fn != nil {
			w.fatal = fn
		}
	}
}

// NewWindow wraps a native window. The surface is the engine's drawing
// target and the proxy is the native event source's wake handle.
func NewWindow(native platform.Window, surface *render.Surface, proxy Wakeuper, opts ...Option) *Window {
	w := &Window{
		native:  native,
		surface: surface,
		log:     NopLogger(),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.fatal == nil {
		w.fatal = func(err error) {
			w.log.Error("fatal native error", "error", err)
			os.Exit(1)
		}
	}
	w.screenW, w.screenH = native.ScreenSize()
	w.waker = NewWaker(proxy, w.log)
	w.animation.Store(int32(embedder.AnimationIdle))
	return w
}

// Native returns the wrapped native window.
func (w *Window) Native() platform.Window { return w.native }

// Animating reports whether the engine last said it is animating.
func (w *Window) Animating() bool {
	return embedder.AnimationState(w.animation.Load()) == embedder.AnimationAnimating
}

// ResizeSurface resizes the drawing surface to the window's current inner
// size in device pixels.
func (w *Window) ResizeSurface() {
	scale := w.native.ScaleFactor()
	iw, ih := w.native.InnerSize()
	w.surface.Resize(int(iw*scale), int(ih*scale))
}

func (w *Window) PrepareForComposite() bool {
	return true
}

func (w *Window) Present() {
	if err := w.native.SwapBuffers(); err != nil {
		w.fatal(fmt.Errorf("swap buffers: %w", err))
	}
}

func (w *Window) CreateWaker() embedder.Waker {
	return w.waker.Clone()
}

func (w *Window) Surface() *render.Surface {
	return w.surface
}

func (w *Window) SetAnimationState(state embedder.AnimationState) {
	w.animation.Store(int32(state))
}

// Coordinates scales the native window's logical geometry into device
// pixels. The engine is told the pixel scale is 1 so it does not scale
// again.
func (w *Window) Coordinates() embedder.Coordinates {
	scale := w.native.ScaleFactor()

	ow, oh := w.native.OuterSize()
	x, y, ok := w.native.Position()
	if !ok {
		x, y = 0, 0
	}
	iw, ih := w.native.InnerSize()
	inner := scaledSize(iw, ih, scale)
	screen := scaledSize(float64(w.screenW), float64(w.screenH), scale)

	return embedder.Coordinates{
		Viewport:     embedder.Rect{Size: inner},
		Framebuffer:  inner,
		WindowSize:   scaledSize(ow, oh, scale),
		WindowOrigin: embedder.Point{X: int32(x * scale), Y: int32(y * scale)},
		Screen:       screen,
		ScreenAvail:  screen,
		PixelScale:   1,
	}
}

func scaledSize(w, h, scale float64) embedder.Size {
	return embedder.Size{W: int32(w * scale), H: int32(h * scale)}
}
