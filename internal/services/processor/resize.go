package processor

import (
	"errors"
	"fmt"
	"image"
	"io/fs"

	"github.com/disintegration/imaging"
)

// loadLogo reads the logo from disk. It is called on every render.
func (p *ImageProcessor) loadLogo() (image.Image, error) {
	logo, err := imaging.Open(p.logoPath, imaging.AutoOrientation(true))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &AssetMissingError{Path: p.logoPath, Err: err}
		}
		return nil, fmt.Errorf("failed to decode logo: %w", err)
	}
	return logo, nil
}

// resizeLogo scales the logo to LogoScale of gridWidth, keeping its aspect
// ratio, using Lanczos resampling.
func (p *ImageProcessor) resizeLogo(logo image.Image, gridWidth int) *image.NRGBA {
	width := max(1, int(float64(gridWidth)*p.style.LogoScale))
	return imaging.Resize(logo, width, 0, imaging.Lanczos)
}
