package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateFilename(t *testing.T) {
	ts := time.Date(2025, time.March, 7, 9, 5, 3, 0, time.UTC)
	assert.Equal(t, "leafspace_qr_code_20250307_090503.png", GenerateFilename(ts))
}

func TestDataURI(t *testing.T) {
	assert.Equal(t, "data:image/png;base64,AQID", DataURI("image/png", []byte{1, 2, 3}))
}

func TestIsValidImageType(t *testing.T) {
	assert.True(t, IsValidImageType("image/png"))
	assert.True(t, IsValidImageType("IMAGE/JPEG"))
	assert.False(t, IsValidImageType("text/plain; charset=utf-8"))
	assert.False(t, IsValidImageType("application/octet-stream"))
}
