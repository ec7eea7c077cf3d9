package processor

import "image"

// Layout records where each element of a composed image was placed.
type Layout struct {
	Canvas      image.Rectangle
	Grid        image.Rectangle
	Border      image.Rectangle
	Logo        image.Rectangle
	Caption     image.Rectangle // empty when no caption was drawn
	StripHeight int
	Version     int

	// CaptionText is what was drawn, shortened with an ellipsis when the
	// caption did not fit between the logo and the right padding.
	CaptionText      string
	CaptionTruncated bool
	FontFallback     bool
}

// HasCaption reports whether text was drawn.
func (l *Layout) HasCaption() bool {
	return !l.Caption.Empty()
}
