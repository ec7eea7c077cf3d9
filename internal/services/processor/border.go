package processor

import (
	"image"
	"image/color"
	"image/draw"
)

// strokeRect outlines r with a stroke of the given width drawn inside r.
func strokeRect(dst draw.Image, r image.Rectangle, width int, c color.Color) {
	if width <= 0 || r.Empty() {
		return
	}
	src := image.NewUniform(c)

	edges := []image.Rectangle{
		image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+width), // top
		image.Rect(r.Min.X, r.Max.Y-width, r.Max.X, r.Max.Y), // bottom
		image.Rect(r.Min.X, r.Min.Y, r.Min.X+width, r.Max.Y), // left
		image.Rect(r.Max.X-width, r.Min.Y, r.Max.X, r.Max.Y), // right
	}
	for _, e := range edges {
		draw.Draw(dst, e.Intersect(r), src, image.Point{}, draw.Src)
	}
}

// borderRect returns the outline around a grid placed at origin, inset
// pixels outside it on every side. The bottom-right corner is inclusive.
func borderRect(grid image.Rectangle, inset int) image.Rectangle {
	return image.Rect(
		grid.Min.X-inset,
		grid.Min.Y-inset,
		grid.Max.X+inset+1,
		grid.Max.Y+inset+1,
	)
}
