package qrcode

import (
	"errors"
	"fmt"

	goqrcode "github.com/skip2/go-qrcode"
)

const (
	// DefaultBorder is the quiet zone width in modules.
	DefaultBorder = 2
)

var ErrEmptyContent = errors.New("qrcode: content is empty")

// EncodingError is returned when the content does not fit any QR version
// at the configured recovery level.
type EncodingError struct {
	ContentLength int
	Err           error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("qrcode: cannot encode %d bytes: %v", e.ContentLength, e.Err)
}

func (e *EncodingError) Unwrap() error {
	return e.Err
}

// Grid is an immutable square module matrix, quiet zone included.
type Grid struct {
	modules [][]bool
	version int
}

// Size returns the number of modules per side.
func (g *Grid) Size() int {
	return len(g.modules)
}

func (g *Grid) Version() int {
	return g.version
}

// Dark reports whether the module at column x, row y is set.
func (g *Grid) Dark(x, y int) bool {
	return g.modules[y][x]
}

type Encoder struct {
	level  goqrcode.RecoveryLevel
	border int
}

func NewEncoder() *Encoder {
	return &Encoder{
		level:  goqrcode.Medium,
		border: DefaultBorder,
	}
}

// Encode builds the smallest QR symbol that fits content.
func (e *Encoder) Encode(content string) (*Grid, error) {
	if content == "" {
		return nil, ErrEmptyContent
	}

	q, err := goqrcode.New(content, e.level)
	if err != nil {
		return nil, &EncodingError{ContentLength: len(content), Err: err}
	}
	q.DisableBorder = true

	return &Grid{
		modules: withBorder(q.Bitmap(), e.border),
		version: q.VersionNumber,
	}, nil
}

func withBorder(bitmap [][]bool, border int) [][]bool {
	size := len(bitmap) + 2*border
	modules := make([][]bool, size)
	for y := range modules {
		modules[y] = make([]bool, size)
	}

	for y, row := range bitmap {
		copy(modules[y+border][border:], row)
	}

	return modules
}
