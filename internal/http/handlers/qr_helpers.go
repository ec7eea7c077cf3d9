package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/leafspace/qr-studio/internal/http/middleware"
	"github.com/leafspace/qr-studio/internal/models"
	"github.com/leafspace/qr-studio/internal/services/processor"
	"github.com/leafspace/qr-studio/internal/services/qrcode"
	"go.uber.org/zap"
)

// === REQUEST PARSING ===

func (h *QRHandler) parseRenderRequest(c *gin.Context) (*models.RenderRequest, error) {
	var req models.RenderRequest
	if err := c.ShouldBind(&req); err != nil {
		return nil, fmt.Errorf("invalid request: %v", err)
	}
	return &req, nil
}

// === PROCESSING LOGIC ===

func (h *QRHandler) render(c *gin.Context, req *models.RenderRequest) (*models.RenderResult, error) {
	result, err := h.renderer.Render(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		h.logger.Warn("Render failed",
			zap.String("request_id", c.GetString(middleware.RequestIDKey)),
			zap.Int("url_length", len(req.URL)),
			zap.Error(err),
		)
		return nil, err
	}

	c.Set(middleware.RenderIDKey, result.ID)
	c.Set(middleware.RenderVersionKey, result.Version)

	h.logger.Info("QR code generated",
		zap.String("request_id", c.GetString(middleware.RequestIDKey)),
		zap.String("id", result.ID),
		zap.Int("version", result.Version),
		zap.Int64("file_size", result.FileSize),
	)
	return result, nil
}

// classifyError maps a render error to a status code and a message safe to
// show to the user.
func (h *QRHandler) classifyError(err error) (int, string) {
	var encErr *qrcode.EncodingError
	var assetErr *processor.AssetMissingError

	switch {
	case errors.Is(err, processor.ErrEmptyURL), errors.Is(err, qrcode.ErrEmptyContent):
		return http.StatusBadRequest, "Please enter a URL for the QR code."
	case errors.As(err, &encErr):
		return http.StatusUnprocessableEntity, "The URL is too long to fit in a QR code."
	case errors.As(err, &assetErr):
		return http.StatusInternalServerError, assetErr.Error()
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, "The request was cancelled."
	default:
		return http.StatusInternalServerError, "Failed to generate QR code."
	}
}

// === RESPONSE HANDLING ===

func (h *QRHandler) respondError(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, models.APIResponse{
		Success: false,
		Error:   message,
	})
}

func (h *QRHandler) respondWithPNG(c *gin.Context, result *models.RenderResult) {
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, result.Filename))
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, result.MimeType, result.PNG)
}

// === UTILITY METHODS ===

// calculateOverallHealth only fails on the logo; a font fallback still
// renders.
func (h *QRHandler) calculateOverallHealth(assets models.AssetStatus) string {
	if strings.HasPrefix(assets.Logo, "unhealthy") {
		return "unhealthy"
	}
	return "healthy"
}
