package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/conquerblocks/nft-marketplace/internal/api/shared/constants"
	apierrors "github.com/conquerblocks/nft-marketplace/internal/api/shared/errors"
	"github.com/conquerblocks/nft-marketplace/internal/logger"
)

// REQUEST_ID_KEY holds the request id in the gin context
const REQUEST_ID_KEY contextKey = "request_id"

// RequestID assigns every request an id, reusing the one sent by the client
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(constants.HEADER_REQUEST_ID)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set(REQUEST_ID_KEY, requestID)
		c.Header(constants.HEADER_REQUEST_ID, requestID)
		c.Request = c.Request.WithContext(logger.WithFields(c.Request.Context(), zap.String("request_id", requestID)))
		c.Next()
	}
}

// GetRequestID returns the request id assigned by RequestID
func GetRequestID(c *gin.Context) string {
	return c.GetString(REQUEST_ID_KEY)
}

// Logger returns a gin middleware for structured logging using zap
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		duration := time.Since(start)

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", duration),
			zap.String("client_ip", c.ClientIP()),
			zap.String("user_agent", c.Request.UserAgent()),
		}
		logger.InfoCtx(c.Request.Context(), "API request", fields...)
	}
}

// Recovery returns a gin middleware for panic recovery with logging
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.ErrorCtx(c.Request.Context(), fmt.Errorf("panic recovered: %v", err),
					zap.String("path", c.Request.URL.Path),
				)
				apiErr := apierrors.NewInternalError("Internal server error")
				c.AbortWithStatusJSON(apiErr.StatusCode(), apiErr)
			}
		}()
		c.Next()
	}
}
