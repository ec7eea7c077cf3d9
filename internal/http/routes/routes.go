package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/leafspace/qr-studio/internal/config"
	"github.com/leafspace/qr-studio/internal/http/handlers"
	"github.com/leafspace/qr-studio/internal/http/middleware"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type Router struct {
	qrHandler *handlers.QRHandler
	limiter   *middleware.IPRateLimiter
	logger    *zap.Logger
}

func NewRouter(
	qrHandler *handlers.QRHandler,
	rateLimit config.RateLimitConfig,
	logger *zap.Logger,
) *Router {
	return &Router{
		qrHandler: qrHandler,
		limiter:   middleware.NewIPRateLimiter(rate.Limit(rateLimit.RPS), rateLimit.Burst),
		logger:    logger,
	}
}

func (r *Router) SetupRoutes() *gin.Engine {
	router := gin.New()
	router.SetHTMLTemplate(handlers.Templates())

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(r.logger))
	router.Use(middleware.ErrorHandler(r.logger))
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.ValidateContentType())

	limited := middleware.RateLimit(r.limiter)

	// Form shell
	router.GET("/", r.qrHandler.ShowForm)
	router.POST("/generate", middleware.RateLimit(r.limiter, r.qrHandler.RateLimited), r.qrHandler.SubmitForm)

	// API version 1
	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", r.qrHandler.HealthCheck)

		qr := v1.Group("/qr", limited)
		{
			qr.GET("", r.qrHandler.GenerateQR)
			qr.POST("", r.qrHandler.GenerateQR)
		}
	}

	return router
}
