package ui

import (
	"testing"

	"scrap/internal/render"
)

func TestComputeLayoutScales(t *testing.T) {
	theme := DefaultTheme()
	l1 := ComputeLayout(800, 600, theme, 1)
	l2 := ComputeLayout(1600, 1200, theme, 2)
	if l2.Toolbar.H != 2*l1.Toolbar.H || l2.Status.H != 2*l1.Status.H {
		t.Fatalf("chrome does not scale: %#v vs %#v", l1, l2)
	}
	if l1.Status.Y != 600-theme.StatusHeightDp {
		t.Fatalf("status bar not at bottom: %#v", l1.Status)
	}
	if !l1.Page.Contains(400, 300) {
		t.Fatalf("page should cover the centre: %#v", l1.Page)
	}
}

func TestComputeLayoutTinyWindow(t *testing.T) {
	l := ComputeLayout(4, 4, DefaultTheme(), 1)
	if l.Page.W < 0 || l.Page.H < 0 || l.Address.W < 0 {
		t.Fatalf("negative sizes in %#v", l)
	}
}

func TestDrawChromeProgress(t *testing.T) {
	theme := DefaultTheme()
	fb := render.NewFrameBuffer(200, 120)
	l := DrawChrome(fb, theme, 1, 0.5)
	y := l.Progress.Y
	if fb.At(10, y) != theme.Progress {
		t.Fatalf("expected progress at left, got %#v", fb.At(10, y))
	}
	if fb.At(190, y) == theme.Progress {
		t.Fatal("progress should stop half way")
	}

	DrawChrome(fb, theme, 1, -1)
	if fb.At(10, y) == theme.Progress {
		t.Fatal("progress should be hidden")
	}
	if fb.At(l.Page.X+5, l.Page.Y+5) != theme.Page {
		t.Fatal("page not painted")
	}
}
