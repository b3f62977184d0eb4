package desktop

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"scrap/internal/platform"
)

func TestMapKey(t *testing.T) {
	tests := map[ebiten.Key]platform.Key{
		ebiten.KeyA:           platform.KeyA,
		ebiten.KeyEnter:       platform.KeyReturn,
		ebiten.KeyBackspace:   platform.KeyBack,
		ebiten.KeyControlLeft: platform.KeyControl,
		ebiten.KeyDigit7:      platform.Key7,
		ebiten.KeyNumpad5:     platform.KeyUnknown,
	}
	for in, want := range tests {
		if got := mapKey(in); got != want {
			t.Errorf("mapKey(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestMapButton(t *testing.T) {
	tests := map[ebiten.MouseButton]platform.MouseButton{
		ebiten.MouseButtonLeft:   platform.MouseLeft,
		ebiten.MouseButtonRight:  platform.MouseRight,
		ebiten.MouseButtonMiddle: platform.MouseMiddle,
		ebiten.MouseButton3:      platform.MouseBack,
		ebiten.MouseButton4:      platform.MouseForward,
	}
	for in, want := range tests {
		if got := mapButton(in); got != want {
			t.Errorf("mapButton(%v) = %v, want %v", in, got, want)
		}
	}
}
