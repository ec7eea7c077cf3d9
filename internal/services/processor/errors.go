package processor

import (
	"errors"
	"fmt"
)

var (
	ErrAssetMissing = errors.New("logo file not found")
	ErrEmptyURL     = errors.New("url is required")
)

// AssetMissingError is returned when the logo cannot be found on disk.
// No image is produced when it occurs.
type AssetMissingError struct {
	Path string
	Err  error
}

func (e *AssetMissingError) Error() string {
	return fmt.Sprintf("Logo file not found. Please ensure '%s' is in place.", e.Path)
}

func (e *AssetMissingError) Is(target error) bool {
	return target == ErrAssetMissing
}

func (e *AssetMissingError) Unwrap() error {
	return e.Err
}

// FontUnavailableError describes why a configured font was not used.
// Renders recover from it by falling back to a built-in face.
type FontUnavailableError struct {
	Path string
	Err  error
}

func (e *FontUnavailableError) Error() string {
	return fmt.Sprintf("font %q unavailable: %v", e.Path, e.Err)
}

func (e *FontUnavailableError) Unwrap() error {
	return e.Err
}
