package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/leafspace/qr-studio/internal/models"
	"go.uber.org/zap"
)

// Renderer produces finished QR code images.
type Renderer interface {
	Render(ctx context.Context, req *models.RenderRequest) (*models.RenderResult, error)
	CheckLogo() error
	FontStatus() string
}

type QRHandler struct {
	renderer Renderer
	logger   *zap.Logger
}

func NewQRHandler(renderer Renderer, logger *zap.Logger) *QRHandler {
	return &QRHandler{
		renderer: renderer,
		logger:   logger,
	}
}

// === API ENDPOINTS ===

// GenerateQR renders a QR code and returns it as a PNG attachment.
func (h *QRHandler) GenerateQR(c *gin.Context) {
	req, err := h.parseRenderRequest(c)
	if err != nil {
		h.respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.render(c, req)
	if err != nil {
		status, message := h.classifyError(err)
		h.respondError(c, status, message)
		return
	}

	h.respondWithPNG(c, result)
}

// HealthCheck reports whether renders can currently succeed.
func (h *QRHandler) HealthCheck(c *gin.Context) {
	assets := models.AssetStatus{
		Logo: "healthy",
		Font: h.renderer.FontStatus(),
	}
	if err := h.renderer.CheckLogo(); err != nil {
		assets.Logo = "unhealthy: " + err.Error()
	}

	overall := h.calculateOverallHealth(assets)

	statusCode := http.StatusOK
	if overall == "unhealthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, models.APIResponse{
		Success: overall == "healthy",
		Data: models.HealthCheck{
			Status:    overall,
			Timestamp: time.Now(),
			Assets:    assets,
		},
	})
}
