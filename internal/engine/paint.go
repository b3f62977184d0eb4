package engine

import (
	"bytes"
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"scrap/internal/render"
	"scrap/internal/ui"
)

func loadFace() font.Face {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    13,
		DPI:     96,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return basicfont.Face7x13
	}
	return face
}

func (e *Engine) paint(fb *render.FrameBuffer) {
	e.layout = ui.DrawChrome(fb, e.theme, 1, e.progress)
	img := fb.RGBA()
	lineH := e.face.Metrics().Height.Ceil()
	if lineH <= 0 {
		lineH = 16
	}

	a := e.layout.Address
	address := string(e.typed)
	if address == "" && e.current != nil {
		address = e.current.String()
	}
	e.drawText(img, a, address, a.X+lineH/2, a.Y+(a.H+lineH)/2-2, e.theme.AddressText)

	c := e.layout.Content
	y := c.Y + lineH + int(e.scrollY)
	for _, line := range e.pageLines() {
		if y > c.Y && y <= c.Y+c.H {
			e.drawText(img, c, line, c.X, y, e.theme.PageText)
		}
		y += lineH + lineH/2
	}

	s := e.layout.Status
	e.drawText(img, s, e.status, s.X+lineH/2, s.Y+(s.H+lineH)/2-2, e.theme.StatusText)
}

func (e *Engine) pageLines() []string {
	if e.current == nil {
		return []string{"No page loaded"}
	}
	lines := []string{e.title, e.current.String()}
	if e.loading {
		lines = append(lines, "Loading…")
	} else {
		lines = append(lines, "Page rendered by the built-in renderer.")
	}
	return lines
}

// drawText draws s with its baseline at (x, y), clipped to r.
func (e *Engine) drawText(img *image.RGBA, r ui.Rect, s string, x, y int, c color.RGBA) {
	if s == "" || r.W <= 0 || r.H <= 0 {
		return
	}
	clip, ok := img.SubImage(image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)).(*image.RGBA)
	if !ok {
		return
	}
	d := &font.Drawer{
		Dst:  clip,
		Src:  image.NewUniform(c),
		Face: e.face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// htmlTitle returns the contents of the first <title> element.
func htmlTitle(page []byte) string {
	start := bytes.Index(page, []byte("<title>"))
	if start < 0 {
		return ""
	}
	rest := page[start+len("<title>"):]
	end := bytes.Index(rest, []byte("</title>"))
	if end < 0 {
		return ""
	}
	return string(bytes.TrimSpace(rest[:end]))
}
