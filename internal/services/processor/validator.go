package processor

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"

	"github.com/leafspace/qr-studio/internal/models"
	"github.com/leafspace/qr-studio/pkg/utils"
)

// ValidateRequest rejects requests that cannot produce a QR code. The URL is
// not checked for being a well-formed URL; any text is encoded.
func (p *ImageProcessor) ValidateRequest(req *models.RenderRequest) error {
	if req == nil || req.URL == "" {
		return ErrEmptyURL
	}
	return nil
}

// CheckLogo verifies the logo exists and looks like a supported image.
func (p *ImageProcessor) CheckLogo() error {
	file, err := os.Open(p.logoPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &AssetMissingError{Path: p.logoPath, Err: err}
		}
		return err
	}
	defer file.Close()

	head := make([]byte, 512)
	n, err := file.Read(head)
	if err != nil {
		return fmt.Errorf("failed to read logo: %w", err)
	}

	contentType := http.DetectContentType(head[:n])
	if !utils.IsValidImageType(contentType) {
		return fmt.Errorf("invalid logo content type: %s", contentType)
	}
	return nil
}
