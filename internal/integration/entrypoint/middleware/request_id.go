// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDKey is the context key for the request correlation ID.
const RequestIDKey ContextKey = "request_id"

// RequestIDHeader carries the correlation ID on requests and responses.
const RequestIDHeader = "X-Request-ID"

// RequestID ensures every request has an X-Request-ID and logs the request once it completes.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader(RequestIDHeader)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Set(string(RequestIDKey), reqID)
		c.Header(RequestIDHeader, reqID)

		start := time.Now()
		c.Next()

		slog.Info("HTTP request",
			"request_id", reqID,
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}
