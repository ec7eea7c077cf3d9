package processor

import (
	"fmt"
	"image"
	"image/draw"
	"os"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// FontSource holds a parsed caption font. The parsed font is read-only and
// shared between renders; faces are created per render.
type FontSource struct {
	font     *opentype.Font
	path     string
	fallback bool
	loadErr  error
}

// LoadFont parses the TTF/OTF file at path. When path is empty or the file
// cannot be used, the embedded Go Regular font is used instead and the
// reason is kept in Err.
func LoadFont(path string) *FontSource {
	if path != "" {
		f, err := parseFontFile(path)
		if err == nil {
			return &FontSource{font: f, path: path}
		}
		src := builtinFont()
		src.loadErr = &FontUnavailableError{Path: path, Err: err}
		return src
	}
	return builtinFont()
}

func parseFontFile(path string) (*opentype.Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return opentype.Parse(data)
}

func builtinFont() *FontSource {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return &FontSource{fallback: true, loadErr: fmt.Errorf("parse goregular: %w", err)}
	}
	return &FontSource{font: f, fallback: true}
}

// Fallback reports whether the configured font was not used.
func (s *FontSource) Fallback() bool {
	return s.fallback
}

// Err returns the reason for a fallback, if any.
func (s *FontSource) Err() error {
	return s.loadErr
}

// Face returns a face at size points. The second return value is true when
// the configured font could not serve the request.
func (s *FontSource) Face(size float64) (font.Face, bool) {
	if s.font == nil {
		return basicfont.Face7x13, true
	}

	face, err := opentype.NewFace(s.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return basicfont.Face7x13, true
	}
	return face, s.fallback
}

// lineHeight is the ascent plus descent of face, rounded up.
func lineHeight(face font.Face) int {
	m := face.Metrics()
	return (m.Ascent + m.Descent).Ceil()
}

const ellipsis = "..."

// fitCaption shortens text until it is at most maxWidth pixels wide. The
// second return value reports whether text was shortened. An empty result
// means not even the ellipsis fits.
func fitCaption(face font.Face, text string, maxWidth int) (string, bool) {
	if font.MeasureString(face, text).Ceil() <= maxWidth {
		return text, false
	}

	runes := []rune(text)
	for n := len(runes) - 1; n > 0; n-- {
		candidate := strings.TrimRight(string(runes[:n]), " ") + ellipsis
		if font.MeasureString(face, candidate).Ceil() <= maxWidth {
			return candidate, true
		}
	}
	if font.MeasureString(face, ellipsis).Ceil() <= maxWidth {
		return ellipsis, true
	}
	return "", true
}

// drawCaption right-aligns text so that it ends at rightX and centres its
// line box vertically inside [top, top+boxHeight). It returns the bounds of
// the line box.
func drawCaption(dst draw.Image, face font.Face, text string, src image.Image, rightX, top, boxHeight int) image.Rectangle {
	width := font.MeasureString(face, text).Ceil()
	height := lineHeight(face)

	x := rightX - width
	y := top + (boxHeight-height)/2

	d := &font.Drawer{
		Dst:  dst,
		Src:  src,
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y) + face.Metrics().Ascent},
	}
	d.DrawString(text)

	return image.Rect(x, y, x+width, y+height)
}
