package embedder

import (
	"net/url"
	"sync/atomic"
	"unicode/utf8"
)

// Event is something the host sends to the engine.
type Event interface {
	isEvent()
}

type BrowserID uint32

// NoBrowser marks a message that is not tied to a browsing context.
const NoBrowser BrowserID = 0

var lastBrowserID atomic.Uint32

// NewBrowserID returns a fresh, non-zero browser id.
func NewBrowserID() BrowserID {
	return BrowserID(lastBrowserID.Add(1))
}

type PipelineID uint32

type MouseButton int

const (
	ButtonLeft MouseButton = iota
	ButtonMiddle
	ButtonRight
)

func (b MouseButton) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	default:
		return "unknown"
	}
}

type MouseAction int

const (
	MouseDown MouseAction = iota
	MouseUp
	MouseClick
)

type PointF struct{ X, Y float32 }

type VectorF struct{ X, Y float32 }

type ScrollPhase int

const (
	ScrollDown ScrollPhase = iota
	ScrollMove
	ScrollUp
	ScrollCancel
)

type Resize struct{}

type MouseMove struct {
	Point PointF
}

type MouseButtonEvent struct {
	Action MouseAction
	Button MouseButton
	Point  PointF
}

type Scroll struct {
	Delta VectorF
	Point Point
	Phase ScrollPhase
}

type Keyboard struct {
	KeyboardEvent
}

// Idle tells the engine the host was woken with nothing else to report.
type Idle struct{}

type Refresh struct{}

type Quit struct{}

type AllowNavigationResponse struct {
	Pipeline PipelineID
	Allowed  bool
}

type NewBrowser struct {
	URL *url.URL
	ID  BrowserID
}

type ClipboardContents struct {
	Text string
}

type SelectedFiles struct {
	Paths []string
}

func (Resize) isEvent()                  {}
func (MouseMove) isEvent()               {}
func (MouseButtonEvent) isEvent()        {}
func (Scroll) isEvent()                  {}
func (Keyboard) isEvent()                {}
func (Idle) isEvent()                    {}
func (Refresh) isEvent()                 {}
func (Quit) isEvent()                    {}
func (AllowNavigationResponse) isEvent() {}
func (NewBrowser) isEvent()              {}
func (ClipboardContents) isEvent()       {}
func (SelectedFiles) isEvent()           {}

type KeyState int

const (
	KeyDown KeyState = iota
	KeyUp
)

// Key is a key value. Named keys use their name; printable keys hold the
// character itself.
type Key string

const (
	KeyUnidentified Key = "Unidentified"
	KeyBackspace    Key = "Backspace"
	KeyEnter        Key = "Enter"
)

func CharacterKey(r rune) Key { return Key(string(r)) }

// Character returns the character of a printable key.
func (k Key) Character() (rune, bool) {
	if utf8.RuneCountInString(string(k)) != 1 {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(string(k))
	return r, true
}

type Code string

const CodeUnidentified Code = "Unidentified"

type Location int

const (
	LocationStandard Location = iota
	LocationLeft
	LocationRight
	LocationNumpad
)

type Modifiers uint16

const (
	ModShift Modifiers = 1 << iota
	ModControl
	ModAlt
	ModMeta
)

type KeyboardEvent struct {
	State       KeyState
	Key         Key
	Code        Code
	Location    Location
	Modifiers   Modifiers
	Repeat      bool
	IsComposing bool
}

// DefaultKeyboardEvent is a key-down of an unidentified key.
func DefaultKeyboardEvent() KeyboardEvent {
	return KeyboardEvent{
		State:    KeyDown,
		Key:      KeyUnidentified,
		Code:     CodeUnidentified,
		Location: LocationStandard,
	}
}
