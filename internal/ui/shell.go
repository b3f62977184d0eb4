package ui

import (
	"scrap/internal/render"
)

type Rect struct {
	X, Y, W, H int
}

func (r Rect) Contains(x, y int) bool {
	return x >= r.X && y >= r.Y && x < r.X+r.W && y < r.Y+r.H
}

type Layout struct {
	Toolbar  Rect
	Address  Rect
	Progress Rect
	Page     Rect
	Content  Rect
	Status   Rect
}

func ComputeLayout(w, h int, theme Theme, scale float32) Layout {
	if scale <= 0 {
		scale = 1
	}

	dp := func(v int) int { return int(float32(v) * scale) }

	toolbarH := dp(theme.ToolbarHeightDp)
	statusH := dp(theme.StatusHeightDp)
	addrMargin := dp(theme.AddressMarginDp)
	margin := dp(theme.PageMarginDp)

	pageY := toolbarH + margin
	pageH := h - pageY - statusH - margin
	if pageH < 0 {
		pageH = 0
	}
	pageW := w - margin*2
	if pageW < 0 {
		pageW = 0
	}
	addrW := w - addrMargin*2
	if addrW < 0 {
		addrW = 0
	}
	contentPad := dp(16)

	return Layout{
		Toolbar:  Rect{0, 0, w, toolbarH},
		Address:  Rect{addrMargin, addrMargin, addrW, toolbarH - addrMargin*2},
		Progress: Rect{0, toolbarH - dp(theme.ProgressDp), w, dp(theme.ProgressDp)},
		Page:     Rect{margin, pageY, pageW, pageH},
		Content:  Rect{margin + contentPad, pageY + contentPad, pageW - contentPad*2, pageH - contentPad*2},
		Status:   Rect{0, h - statusH, w, statusH},
	}
}

// DrawChrome paints the browser frame around the page and returns its
// layout. progress is the load progress in [0,1]; values outside hide the
// bar.
func DrawChrome(fb *render.FrameBuffer, theme Theme, scale float32, progress float64) Layout {
	layout := ComputeLayout(fb.W, fb.H, theme, scale)

	fb.Clear(theme.Background)

	t := layout.Toolbar
	fb.FillRect(t.X, t.Y, t.W, t.H, theme.Toolbar)
	fb.StrokeRect(t.X, t.Y, t.W, t.H, 1, theme.Border)

	a := layout.Address
	fb.FillRect(a.X, a.Y, a.W, a.H, theme.AddressBar)
	fb.StrokeRect(a.X, a.Y, a.W, a.H, 1, theme.Border)

	if progress >= 0 && progress <= 1 {
		p := layout.Progress
		fb.FillRect(p.X, p.Y, int(float64(p.W)*progress), p.H, theme.Progress)
	}

	p := layout.Page
	fb.FillRect(p.X, p.Y, p.W, p.H, theme.Page)
	fb.StrokeRect(p.X, p.Y, p.W, p.H, 1, theme.Border)

	s := layout.Status
	fb.FillRect(s.X, s.Y, s.W, s.H, theme.StatusBar)
	fb.StrokeRect(s.X, s.Y, s.W, s.H, 1, theme.Border)

	return layout
}
