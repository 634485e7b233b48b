package middlewares

import (
	"time"

	"github.com/Jorell/stylehaven-api/logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const requestIDHeader = "X-Request-ID"

// RequestID tags every request with an identifier, reusing the client's when
// one is supplied.
func RequestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		requestID := ctx.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		ctx.Set("requestID", requestID)
		ctx.Header(requestIDHeader, requestID)
		ctx.Next()
	}
}

// RequestLogger logs every HTTP request with its outcome.
func RequestLogger() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		logger.L().Info("http request",
			zap.String("method", ctx.Request.Method),
			zap.String("path", ctx.Request.URL.Path),
			zap.Int("status", ctx.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("ip", ctx.ClientIP()),
			zap.String("requestId", ctx.GetString("requestID")),
		)
	}
}
