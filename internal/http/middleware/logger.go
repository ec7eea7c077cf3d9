package middleware

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Context keys handlers set so the access log can describe the render.
const (
	RenderIDKey      = "render_id"
	RenderVersionKey = "qr_version"
)

func Logger(logger *zap.Logger) gin.HandlerFunc {
	return gin.LoggerWithFormatter(func(params gin.LogFormatterParams) string {
		fields := []zap.Field{
			zap.String("method", params.Method),
			zap.String("path", params.Path),
			zap.Int("status", params.StatusCode),
			zap.Duration("latency", params.Latency),
			zap.String("client_ip", params.ClientIP),
			zap.String("user_agent", params.Request.UserAgent()),
			zap.String("request_id", params.Request.Header.Get(RequestIDHeader)),
		}
		if id, ok := params.Keys[RenderIDKey].(string); ok {
			fields = append(fields, zap.String("render_id", id))
		}
		if version, ok := params.Keys[RenderVersionKey].(int); ok {
			fields = append(fields, zap.Int("qr_version", version))
		}
		if params.ErrorMessage != "" {
			fields = append(fields, zap.String("error", params.ErrorMessage))
		}

		logger.Info("HTTP Request", fields...)
		return ""
	})
}
