package processor

import (
	"image"
	"image/draw"

	"github.com/disintegration/imaging"
	"github.com/leafspace/qr-studio/internal/services/qrcode"
)

// renderGrid paints each dark module as a moduleSize square of fg on bg.
func (p *ImageProcessor) renderGrid(grid *qrcode.Grid) *image.NRGBA {
	m := p.style.ModuleSize
	size := grid.Size() * m
	img := imaging.New(size, size, p.style.Background)
	fg := image.NewUniform(p.style.Foreground)

	for y := 0; y < grid.Size(); y++ {
		for x := 0; x < grid.Size(); x++ {
			if !grid.Dark(x, y) {
				continue
			}
			r := image.Rect(x*m, y*m, (x+1)*m, (y+1)*m)
			draw.Draw(img, r, fg, image.Point{}, draw.Src)
		}
	}

	return img
}
