package processor

import (
	"image/color"
)

// Brand palette.
var (
	BrandGreen  = color.NRGBA{R: 0xA7, G: 0xE1, B: 0x63, A: 0xFF}
	BrandViolet = color.NRGBA{R: 0x82, G: 0x5D, B: 0xC7, A: 0xFF}
	White       = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

// Style holds the layout constants of a render. Sizes are in pixels.
type Style struct {
	ModuleSize  int     // pixels per QR module
	Padding     int     // margin around the grid on every side
	BorderInset int     // gap between the grid edge and the outer edge of the border
	BorderWidth int     // stroke width, grows inward
	LogoScale   float64 // logo width as a fraction of the grid width
	LogoOffset  int     // distance from the grid bottom to the logo top
	StripMargin int     // added below the taller of logo and caption
	CaptionGap  int     // minimum space between the logo and the caption
	FontSize    float64 // points at 72 DPI

	Foreground color.NRGBA
	Background color.NRGBA
	Accent     color.NRGBA
}

func DefaultStyle() Style {
	return Style{
		ModuleSize:  10,
		Padding:     40,
		BorderInset: 2,
		BorderWidth: 2,
		LogoScale:   0.15,
		LogoOffset:  25,
		StripMargin: 30,
		CaptionGap:  20,
		FontSize:    36,
		Foreground:  BrandGreen,
		Background:  White,
		Accent:      BrandViolet,
	}
}
