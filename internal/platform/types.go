package platform

type WindowConfig struct {
	Title    string
	WidthPx  int
	HeightPx int
}

type EventType int

const (
	EventUnknown EventType = iota
	EventClose
	EventResize
	EventRefresh
	EventAwakened
	EventCursorMoved
	EventMouseInput
	EventMouseWheel
	EventKeyboardInput
	EventReceivedCharacter
	EventFocused
)

func (t EventType) String() string {
	switch t {
	case EventClose:
		return "close"
	case EventResize:
		return "resize"
	case EventRefresh:
		return "refresh"
	case EventAwakened:
		return "awakened"
	case EventCursorMoved:
		return "cursor-moved"
	case EventMouseInput:
		return "mouse-input"
	case EventMouseWheel:
		return "mouse-wheel"
	case EventKeyboardInput:
		return "keyboard-input"
	case EventReceivedCharacter:
		return "received-character"
	case EventFocused:
		return "focused"
	default:
		return "unknown"
	}
}

type ElementState int

const (
	Pressed ElementState = iota
	Released
)

type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
	MouseBack
	MouseForward
)

type ScrollDelta int

const (
	// LineDelta deltas count lines (or rows and columns).
	LineDelta ScrollDelta = iota
	// PixelDelta deltas are logical pixels.
	PixelDelta
)

type TouchPhase int

const (
	TouchStarted TouchPhase = iota
	TouchMoved
	TouchEnded
	TouchCancelled
)

// Event is a native window event. Positions, sizes and pixel deltas are in
// logical units; consumers scale them by the window's scale factor.
type Event struct {
	Type EventType

	// EventResize
	Width  float64
	Height float64

	// EventCursorMoved, and PixelDelta wheel events
	X float64
	Y float64

	// EventMouseInput, EventKeyboardInput
	State  ElementState
	Button MouseButton

	// EventMouseWheel
	Delta  ScrollDelta
	DeltaX float64
	DeltaY float64
	Phase  TouchPhase

	// EventKeyboardInput
	Key      Key
	ScanCode uint32

	// EventReceivedCharacter
	Rune rune

	// EventFocused
	Focused bool
}

// Window is the native window as seen by the host adapter.
type Window interface {
	// InnerSize and OuterSize are logical sizes.
	InnerSize() (w, h float64)
	OuterSize() (w, h float64)
	// Position is the logical position of the outer window, when the
	// platform can report it.
	Position() (x, y float64, ok bool)
	ScaleFactor() float64
	// ScreenSize is the physical size of the primary monitor.
	ScreenSize() (w, h int)
	SwapBuffers() error
	SetTitle(title string)
	Close()
}
