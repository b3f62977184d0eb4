// Package input turns native window events into engine events.
//
// Two pieces of state span events: the drag tracking used to synthesize
// clicks, and the pending key-down used to pair a key code with the
// character that follows it. The pairing assumes the native layer delivers
// a key-down before its character. Backends that deliver them the other
// way round will see characters dropped.
package input

import (
	"unicode"

	"scrap/internal/embedder"
	"scrap/internal/platform"
)

const (
	DefaultClickTolerance = 64
	DefaultLineHeight     = 38
)

type Config struct {
	// ClickTolerance is the largest squared distance, in device pixels and
	// before scaling, between press and release that still counts as a
	// click.
	ClickTolerance float64
	// LineHeight is the pixel height of one scrolled line before scaling.
	LineHeight float64
}

func DefaultConfig() Config {
	return Config{ClickTolerance: DefaultClickTolerance, LineHeight: DefaultLineHeight}
}

type point struct{ x, y float64 }

type Translator struct {
	cfg Config

	pointer    point
	dragStart  point
	dragButton platform.MouseButton
	dragging   bool

	pending *embedder.KeyboardEvent
}

func NewTranslator(cfg Config) *Translator {
	if cfg.ClickTolerance <= 0 {
		cfg.ClickTolerance = DefaultClickTolerance
	}
	if cfg.LineHeight <= 0 {
		cfg.LineHeight = DefaultLineHeight
	}
	return &Translator{cfg: cfg}
}

// Pointer returns the last known pointer position in device pixels.
func (t *Translator) Pointer() (float64, float64) {
	return t.pointer.x, t.pointer.y
}

// Pending reports whether a key-down is waiting for its character.
func (t *Translator) Pending() bool {
	return t.pending != nil
}

// Translate maps one native event at the given display scale. Events it does
// not understand produce nothing.
func (t *Translator) Translate(ev platform.Event, scale float64) []embedder.Event {
	switch ev.Type {
	case platform.EventResize:
		return []embedder.Event{embedder.Resize{}}
	case platform.EventCursorMoved:
		return t.cursorMoved(ev, scale)
	case platform.EventMouseWheel:
		return t.wheel(ev, scale)
	case platform.EventMouseInput:
		return t.mouseInput(ev, scale)
	case platform.EventKeyboardInput:
		return t.keyboardInput(ev)
	case platform.EventReceivedCharacter:
		return t.receivedCharacter(ev.Rune)
	case platform.EventClose:
		return []embedder.Event{embedder.Quit{}}
	case platform.EventRefresh:
		return []embedder.Event{embedder.Refresh{}}
	case platform.EventAwakened:
		return []embedder.Event{embedder.Idle{}}
	}
	return nil
}

func (t *Translator) pointerF() embedder.PointF {
	return embedder.PointF{X: float32(t.pointer.x), Y: float32(t.pointer.y)}
}

func (t *Translator) cursorMoved(ev platform.Event, scale float64) []embedder.Event {
	t.pointer = point{ev.X * scale, ev.Y * scale}
	return []embedder.Event{embedder.MouseMove{Point: t.pointerF()}}
}

func (t *Translator) wheel(ev platform.Event, scale float64) []embedder.Event {
	var dx, dy float64
	switch ev.Delta {
	case platform.LineDelta:
		dx = ev.DeltaX * t.cfg.LineHeight * scale
		dy = ev.DeltaY * t.cfg.LineHeight * scale
	case platform.PixelDelta:
		dx = ev.DeltaX * scale
		dy = ev.DeltaY * scale
	}
	var phase embedder.ScrollPhase
	switch ev.Phase {
	case platform.TouchStarted:
		phase = embedder.ScrollDown
	case platform.TouchMoved:
		phase = embedder.ScrollMove
	case platform.TouchEnded:
		phase = embedder.ScrollUp
	case platform.TouchCancelled:
		phase = embedder.ScrollCancel
	}
	return []embedder.Event{embedder.Scroll{
		Delta: embedder.VectorF{X: float32(dx), Y: float32(dy)},
		Point: embedder.Point{X: int32(t.pointer.x), Y: int32(t.pointer.y)},
		Phase: phase,
	}}
}

func mapButton(b platform.MouseButton) (embedder.MouseButton, bool) {
	switch b {
	case platform.MouseLeft:
		return embedder.ButtonLeft, true
	case platform.MouseMiddle:
		return embedder.ButtonMiddle, true
	case platform.MouseRight:
		return embedder.ButtonRight, true
	}
	return 0, false
}

func (t *Translator) mouseInput(ev platform.Event, scale float64) []embedder.Event {
	button, ok := mapButton(ev.Button)
	if !ok {
		return nil
	}
	if ev.State == platform.Pressed {
		t.dragStart = t.pointer
		t.dragButton = ev.Button
		t.dragging = true
		return []embedder.Event{embedder.MouseButtonEvent{
			Action: embedder.MouseDown, Button: button, Point: t.pointerF(),
		}}
	}

	out := []embedder.Event{embedder.MouseButtonEvent{
		Action: embedder.MouseUp, Button: button, Point: t.pointerF(),
	}}
	if t.IsClick(ev.Button, scale) {
		out = append(out, embedder.MouseButtonEvent{
			Action: embedder.MouseClick, Button: button, Point: t.pointerF(),
		})
	}
	return out
}

// IsClick reports whether releasing button at the current pointer position
// completes a click: it must be the tracked drag button and the pointer must
// have moved less than the tolerance.
func (t *Translator) IsClick(button platform.MouseButton, scale float64) bool {
	if !t.dragging || t.dragButton != button {
		return false
	}
	dx := t.pointer.x - t.dragStart.x
	dy := t.pointer.y - t.dragStart.y
	return dx*dx+dy*dy < t.cfg.ClickTolerance*scale
}

// mapKey covers only the non-printable keys the shell knows about; all
// others are unidentified and wait for a character.
func mapKey(k platform.Key) embedder.Key {
	switch k {
	case platform.KeyBack:
		return embedder.KeyBackspace
	case platform.KeyReturn:
		return embedder.KeyEnter
	}
	return embedder.KeyUnidentified
}

func (t *Translator) keyboardInput(ev platform.Event) []embedder.Event {
	ke := embedder.DefaultKeyboardEvent()
	if ev.State == platform.Released {
		ke.State = embedder.KeyUp
	}
	ke.Key = mapKey(ev.Key)

	switch {
	case ke.State == embedder.KeyDown && ke.Key == embedder.KeyUnidentified:
		t.pending = &ke
	case ke.Key != embedder.KeyUnidentified:
		t.pending = nil
		return []embedder.Event{embedder.Keyboard{KeyboardEvent: ke}}
	}
	return nil
}

func (t *Translator) receivedCharacter(ch rune) []embedder.Event {
	if unicode.IsControl(ch) {
		if ch >= 32 {
			return nil
		}
		// ctrl+<letter> arrives as its control code; send the letter.
		ch += 96
	}

	var ke embedder.KeyboardEvent
	switch {
	case t.pending != nil:
		ke = *t.pending
		t.pending = nil
	case ch < unicode.MaxASCII+1:
		// Already delivered through the key code path.
		return nil
	default:
		// Composed character with no key-down of its own.
		ke = embedder.DefaultKeyboardEvent()
	}
	ke.Key = embedder.CharacterKey(ch)
	return []embedder.Event{embedder.Keyboard{KeyboardEvent: ke}}
}
