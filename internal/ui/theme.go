package ui

import "image/color"

type Theme struct {
	Background      color.RGBA
	Toolbar         color.RGBA
	AddressBar      color.RGBA
	AddressText     color.RGBA
	Page            color.RGBA
	PageText        color.RGBA
	Border          color.RGBA
	StatusBar       color.RGBA
	StatusText      color.RGBA
	Progress        color.RGBA
	ToolbarHeightDp int
	StatusHeightDp  int
	AddressMarginDp int
	PageMarginDp    int
	ProgressDp      int
}

func DefaultTheme() Theme {
	return Theme{
		Background:      color.RGBA{0xE2, 0xE7, 0xEF, 0xFF},
		Toolbar:         color.RGBA{0xF7, 0xF9, 0xFC, 0xFF},
		AddressBar:      color.RGBA{0xFF, 0xFF, 0xFF, 0xFF},
		AddressText:     color.RGBA{0x20, 0x20, 0x20, 0xFF},
		Page:            color.RGBA{0xFF, 0xFF, 0xFF, 0xFF},
		PageText:        color.RGBA{0x2A, 0x38, 0x50, 0xFF},
		Border:          color.RGBA{0xB2, 0xBF, 0xD0, 0xFF},
		StatusBar:       color.RGBA{0xEA, 0xEF, 0xF6, 0xFF},
		StatusText:      color.RGBA{0x45, 0x5A, 0x64, 0xFF},
		Progress:        color.RGBA{0x2B, 0x57, 0x9A, 0xFF},
		ToolbarHeightDp: 42,
		StatusHeightDp:  24,
		AddressMarginDp: 8,
		PageMarginDp:    12,
		ProgressDp:      3,
	}
}
