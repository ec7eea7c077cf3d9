package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

var allowedContentTypes = []string{
	"application/x-www-form-urlencoded",
	"multipart/form-data",
	"application/json",
}

// ValidateContentType rejects request bodies the form and API handlers
// cannot bind.
func ValidateContentType() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		// Skip validation for requests without a body
		if ctx.Request.Method == http.MethodGet || ctx.Request.ContentLength == 0 {
			ctx.Next()
			return
		}

		contentType := strings.ToLower(ctx.GetHeader("Content-Type"))
		for _, allowed := range allowedContentTypes {
			if strings.HasPrefix(contentType, allowed) {
				ctx.Next()
				return
			}
		}

		ctx.AbortWithStatusJSON(http.StatusUnsupportedMediaType, gin.H{
			"success": false,
			"error":   "Unsupported content type",
		})
	}
}
