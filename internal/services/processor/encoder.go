package processor

import (
	"bytes"
	"image"
	"image/png"

	"github.com/disintegration/imaging"
)

// encodePNG serialises img once; callers share the returned bytes.
func (p *ImageProcessor) encodePNG(img image.Image) ([]byte, error) {
	buffer := &bytes.Buffer{}
	if err := imaging.Encode(buffer, img, imaging.PNG, imaging.PNGCompressionLevel(png.DefaultCompression)); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}
