package utils

import (
	"encoding/base64"
	"strings"
	"time"
)

const filenameLayout = "20060102_150405"

// GenerateFilename returns the download name for a QR code rendered at t.
func GenerateFilename(t time.Time) string {
	return "leafspace_qr_code_" + t.Format(filenameLayout) + ".png"
}

// DataURI embeds data in a "data:" URI usable as an <img> src or <a> href.
func DataURI(mimeType string, data []byte) string {
	b := strings.Builder{}
	b.WriteString("data:")
	b.WriteString(mimeType)
	b.WriteString(";base64,")
	b.WriteString(base64.StdEncoding.EncodeToString(data))
	return b.String()
}

// IsValidImageType checks if content type is a valid image type
func IsValidImageType(contentType string) bool {
	validTypes := []string{
		"image/jpeg",
		"image/jpg",
		"image/png",
		"image/gif",
		"image/webp",
		"image/bmp",
	}

	ct := strings.ToLower(contentType)
	for _, validType := range validTypes {
		if strings.Contains(ct, validType) {
			return true
		}
	}
	return false
}
