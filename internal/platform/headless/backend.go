// Package headless provides an offscreen native window. It has no real
// display; sizes and positions are whatever the caller configures.
package headless

import (
	"errors"
	"sync"

	"scrap/internal/platform"
	"scrap/internal/render"
)

var errClosed = errors.New("headless: window closed")

type Backend struct {
	Scale        float64
	ScreenWidth  int
	ScreenHeight int
}

func New() *Backend { return &Backend{Scale: 1, ScreenWidth: 1920, ScreenHeight: 1080} }

func (b *Backend) Name() string { return "headless" }

// CreateWindow returns an offscreen window. The surface, if non-nil, is
// swapped on every SwapBuffers call.
func (b *Backend) CreateWindow(cfg platform.WindowConfig, surface *render.Surface) *Window {
	scale := b.Scale
	if scale <= 0 {
		scale = 1
	}
	return &Window{
		title:   cfg.Title,
		w:       float64(cfg.WidthPx),
		h:       float64(cfg.HeightPx),
		scale:   scale,
		screenW: b.ScreenWidth,
		screenH: b.ScreenHeight,
		surface: surface,
	}
}

type Window struct {
	mu      sync.Mutex
	title   string
	w, h    float64
	x, y    float64
	hasPos  bool
	decor   float64
	scale   float64
	screenW int
	screenH int
	surface *render.Surface
	swaps   int
	closed  bool
	swapErr error
}

func (w *Window) InnerSize() (float64, float64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.w, w.h
}

func (w *Window) OuterSize() (float64, float64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.w + 2*w.decor, w.h + 2*w.decor
}

func (w *Window) Position() (float64, float64, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.x, w.y, w.hasPos
}

func (w *Window) ScaleFactor() float64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.scale
}

func (w *Window) ScreenSize() (int, int) { return w.screenW, w.screenH }

func (w *Window) SwapBuffers() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return errClosed
	}
	if w.swapErr != nil {
		return w.swapErr
	}
	if w.surface != nil {
		if err := w.surface.Swap(); err != nil {
			return err
		}
	}
	w.swaps++
	return nil
}

func (w *Window) SetTitle(title string) {
	w.mu.Lock()
	w.title = title
	w.mu.Unlock()
}

func (w *Window) Close() {
	w.mu.Lock()
	w.closed = true
	w.mu.Unlock()
}

// Setters used to simulate the window manager.

func (w *Window) SetInnerSize(width, height float64) {
	w.mu.Lock()
	w.w, w.h = width, height
	w.mu.Unlock()
}

func (w *Window) SetPosition(x, y float64) {
	w.mu.Lock()
	w.x, w.y, w.hasPos = x, y, true
	w.mu.Unlock()
}

// SetDecoration sets the logical border width added around the inner size.
func (w *Window) SetDecoration(border float64) {
	w.mu.Lock()
	w.decor = border
	w.mu.Unlock()
}

// FailSwaps makes every later SwapBuffers call return err.
func (w *Window) FailSwaps(err error) {
	w.mu.Lock()
	w.swapErr = err
	w.mu.Unlock()
}

func (w *Window) Title() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.title
}

func (w *Window) Swaps() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.swaps
}

func (w *Window) Closed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.closed
}
