package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"

	"scrap/internal/platform"
)

func mapButton(b ebiten.MouseButton) platform.MouseButton {
	switch b {
	case ebiten.MouseButtonRight:
		return platform.MouseRight
	case ebiten.MouseButtonMiddle:
		return platform.MouseMiddle
	case ebiten.MouseButton3:
		return platform.MouseBack
	case ebiten.MouseButton4:
		return platform.MouseForward
	}
	return platform.MouseLeft
}

var keyMap = map[ebiten.Key]platform.Key{
	ebiten.KeyA: platform.KeyA, ebiten.KeyB: platform.KeyB, ebiten.KeyC: platform.KeyC,
	ebiten.KeyD: platform.KeyD, ebiten.KeyE: platform.KeyE, ebiten.KeyF: platform.KeyF,
	ebiten.KeyG: platform.KeyG, ebiten.KeyH: platform.KeyH, ebiten.KeyI: platform.KeyI,
	ebiten.KeyJ: platform.KeyJ, ebiten.KeyK: platform.KeyK, ebiten.KeyL: platform.KeyL,
	ebiten.KeyM: platform.KeyM, ebiten.KeyN: platform.KeyN, ebiten.KeyO: platform.KeyO,
	ebiten.KeyP: platform.KeyP, ebiten.KeyQ: platform.KeyQ, ebiten.KeyR: platform.KeyR,
	ebiten.KeyS: platform.KeyS, ebiten.KeyT: platform.KeyT, ebiten.KeyU: platform.KeyU,
	ebiten.KeyV: platform.KeyV, ebiten.KeyW: platform.KeyW, ebiten.KeyX: platform.KeyX,
	ebiten.KeyY: platform.KeyY, ebiten.KeyZ: platform.KeyZ,

	ebiten.KeyDigit0: platform.Key0, ebiten.KeyDigit1: platform.Key1,
	ebiten.KeyDigit2: platform.Key2, ebiten.KeyDigit3: platform.Key3,
	ebiten.KeyDigit4: platform.Key4, ebiten.KeyDigit5: platform.Key5,
	ebiten.KeyDigit6: platform.Key6, ebiten.KeyDigit7: platform.Key7,
	ebiten.KeyDigit8: platform.Key8, ebiten.KeyDigit9: platform.Key9,

	ebiten.KeyF1: platform.KeyF1, ebiten.KeyF2: platform.KeyF2, ebiten.KeyF3: platform.KeyF3,
	ebiten.KeyF4: platform.KeyF4, ebiten.KeyF5: platform.KeyF5, ebiten.KeyF6: platform.KeyF6,
	ebiten.KeyF7: platform.KeyF7, ebiten.KeyF8: platform.KeyF8, ebiten.KeyF9: platform.KeyF9,
	ebiten.KeyF10: platform.KeyF10, ebiten.KeyF11: platform.KeyF11, ebiten.KeyF12: platform.KeyF12,

	ebiten.KeyShiftLeft:    platform.KeyShift,
	ebiten.KeyShiftRight:   platform.KeyShift,
	ebiten.KeyControlLeft:  platform.KeyControl,
	ebiten.KeyControlRight: platform.KeyControl,
	ebiten.KeyAltLeft:      platform.KeyAlt,
	ebiten.KeyAltRight:     platform.KeyAlt,
	ebiten.KeyMetaLeft:     platform.KeySuper,
	ebiten.KeyMetaRight:    platform.KeySuper,

	ebiten.KeySpace:     platform.KeySpace,
	ebiten.KeyEnter:     platform.KeyReturn,
	ebiten.KeyEscape:    platform.KeyEscape,
	ebiten.KeyBackspace: platform.KeyBack,
	ebiten.KeyDelete:    platform.KeyDelete,
	ebiten.KeyTab:       platform.KeyTab,

	ebiten.KeyArrowUp:    platform.KeyUp,
	ebiten.KeyArrowDown:  platform.KeyDown,
	ebiten.KeyArrowLeft:  platform.KeyLeft,
	ebiten.KeyArrowRight: platform.KeyRight,

	ebiten.KeyHome:     platform.KeyHome,
	ebiten.KeyEnd:      platform.KeyEnd,
	ebiten.KeyPageUp:   platform.KeyPageUp,
	ebiten.KeyPageDown: platform.KeyPageDown,
	ebiten.KeyInsert:   platform.KeyInsert,

	ebiten.KeyMinus:        platform.KeyMinus,
	ebiten.KeyEqual:        platform.KeyEqual,
	ebiten.KeyComma:        platform.KeyComma,
	ebiten.KeyPeriod:       platform.KeyPeriod,
	ebiten.KeySlash:        platform.KeySlash,
	ebiten.KeySemicolon:    platform.KeySemicolon,
	ebiten.KeyQuote:        platform.KeyApostrophe,
	ebiten.KeyBackslash:    platform.KeyBackslash,
	ebiten.KeyBracketLeft:  platform.KeyLeftBracket,
	ebiten.KeyBracketRight: platform.KeyRightBracket,
	ebiten.KeyBackquote:    platform.KeyGraveAccent,
}

func mapKey(k ebiten.Key) platform.Key {
	if pk, ok := keyMap[k]; ok {
		return pk
	}
	return platform.KeyUnknown
}
