// Package desktop is the native window backend built on ebiten. ebiten owns
// the main thread and calls Update and Draw; Update turns input state into
// platform events and pushes them onto the queue the shell's loop reads
// from another goroutine.
package desktop

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"scrap/internal/platform"
	"scrap/internal/render"
)

var errClosed = errors.New("desktop: window closed")

var mouseButtons = []ebiten.MouseButton{
	ebiten.MouseButtonLeft,
	ebiten.MouseButtonRight,
	ebiten.MouseButtonMiddle,
	ebiten.MouseButton3,
	ebiten.MouseButton4,
}

type Window struct {
	cfg     platform.WindowConfig
	queue   *platform.Queue
	surface *render.Surface
	canvas  *ebiten.Image
	log     *slog.Logger

	mu     sync.Mutex
	innerW float64
	innerH float64
	scale  float64

	closed atomic.Bool

	started   bool
	focused   bool
	cursorX   int
	cursorY   int
	keys      []ebiten.Key
	chars     []rune
	lastLayW  int
	lastLayH  int
	lastScale float64
}

// New prepares a window. Nothing is shown until Run.
func New(cfg platform.WindowConfig, queue *platform.Queue, surface *render.Surface, log *slog.Logger) *Window {
	return &Window{
		cfg:     cfg,
		queue:   queue,
		surface: surface,
		log:     log,
		innerW:  float64(cfg.WidthPx),
		innerH:  float64(cfg.HeightPx),
		scale:   1,
	}
}

// Run opens the window and blocks until it is closed. It must be called
// from the main goroutine.
func (w *Window) Run() error {
	ebiten.SetWindowTitle(w.cfg.Title)
	ebiten.SetWindowSize(w.cfg.WidthPx, w.cfg.HeightPx)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetRunnableOnUnfocused(true)
	if err := ebiten.RunGame(w); err != nil {
		return fmt.Errorf("run window loop: %w", err)
	}
	return nil
}

func (w *Window) push(ev platform.Event) {
	w.queue.Push(ev)
}

func (w *Window) Update() error {
	if w.closed.Load() {
		return ebiten.Termination
	}
	if !w.started {
		w.started = true
		w.focused = ebiten.IsFocused()
		w.push(platform.Event{Type: platform.EventRefresh})
	}
	if ebiten.IsWindowBeingClosed() {
		w.push(platform.Event{Type: platform.EventClose})
	}
	if focused := ebiten.IsFocused(); focused != w.focused {
		w.focused = focused
		w.push(platform.Event{Type: platform.EventFocused, Focused: focused})
		if focused {
			w.push(platform.Event{Type: platform.EventRefresh})
		}
	}

	if x, y := ebiten.CursorPosition(); x != w.cursorX || y != w.cursorY {
		w.cursorX, w.cursorY = x, y
		// CursorPosition is in device pixels because Layout renders at
		// device resolution.
		scale := w.ScaleFactor()
		w.push(platform.Event{Type: platform.EventCursorMoved, X: float64(x) / scale, Y: float64(y) / scale})
	}
	for _, b := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(b) {
			w.push(platform.Event{Type: platform.EventMouseInput, Button: mapButton(b), State: platform.Pressed})
		}
		if inpututil.IsMouseButtonJustReleased(b) {
			w.push(platform.Event{Type: platform.EventMouseInput, Button: mapButton(b), State: platform.Released})
		}
	}
	if dx, dy := ebiten.Wheel(); dx != 0 || dy != 0 {
		w.push(platform.Event{
			Type:   platform.EventMouseWheel,
			Delta:  platform.LineDelta,
			DeltaX: dx,
			DeltaY: dy,
			Phase:  platform.TouchMoved,
		})
	}

	// Key codes go out before the characters they produce.
	w.keys = inpututil.AppendJustPressedKeys(w.keys[:0])
	for _, k := range w.keys {
		w.push(platform.Event{Type: platform.EventKeyboardInput, Key: mapKey(k), State: platform.Pressed})
	}
	w.keys = inpututil.AppendJustReleasedKeys(w.keys[:0])
	for _, k := range w.keys {
		w.push(platform.Event{Type: platform.EventKeyboardInput, Key: mapKey(k), State: platform.Released})
	}
	w.chars = ebiten.AppendInputChars(w.chars[:0])
	for _, r := range w.chars {
		w.push(platform.Event{Type: platform.EventReceivedCharacter, Rune: r})
	}
	return nil
}

func (w *Window) Draw(screen *ebiten.Image) {
	w.surface.ReadFront(func(fb *render.FrameBuffer) {
		if fb.W <= 0 || fb.H <= 0 {
			return
		}
		if w.canvas == nil || w.canvas.Bounds().Dx() != fb.W || w.canvas.Bounds().Dy() != fb.H {
			w.canvas = ebiten.NewImage(fb.W, fb.H)
		}
		w.canvas.WritePixels(fb.Pixels)
	})
	if w.canvas != nil {
		screen.DrawImage(w.canvas, nil)
	}
}

// Layout renders at device pixels and reports size changes as resizes.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	scale := 1.0
	if m := ebiten.Monitor(); m != nil && m.DeviceScaleFactor() > 0 {
		scale = m.DeviceScaleFactor()
	}
	if outsideWidth != w.lastLayW || outsideHeight != w.lastLayH || scale != w.lastScale {
		w.lastLayW, w.lastLayH, w.lastScale = outsideWidth, outsideHeight, scale
		w.mu.Lock()
		w.innerW, w.innerH, w.scale = float64(outsideWidth), float64(outsideHeight), scale
		w.mu.Unlock()
		w.push(platform.Event{Type: platform.EventResize, Width: float64(outsideWidth), Height: float64(outsideHeight)})
	}
	return int(float64(outsideWidth) * scale), int(float64(outsideHeight) * scale)
}

func (w *Window) InnerSize() (float64, float64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.innerW, w.innerH
}

// OuterSize is the same as the inner size; ebiten does not expose the
// window decorations.
func (w *Window) OuterSize() (float64, float64) {
	return w.InnerSize()
}

func (w *Window) Position() (float64, float64, bool) {
	x, y := ebiten.WindowPosition()
	return float64(x), float64(y), true
}

func (w *Window) ScaleFactor() float64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.scale
}

func (w *Window) ScreenSize() (int, int) {
	m := ebiten.Monitor()
	if m == nil {
		return 0, 0
	}
	sw, sh := m.Size()
	scale := m.DeviceScaleFactor()
	return int(float64(sw) * scale), int(float64(sh) * scale)
}

func (w *Window) SwapBuffers() error {
	if w.closed.Load() {
		return errClosed
	}
	return w.surface.Swap()
}

func (w *Window) SetTitle(title string) {
	ebiten.SetWindowTitle(title)
}

// Close ends the ebiten loop and tears down the event queue.
func (w *Window) Close() {
	if w.closed.Swap(true) {
		return
	}
	w.log.Info("closing window")
	w.queue.Close()
}
