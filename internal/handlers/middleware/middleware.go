// Package middleware provides the ambient gin middleware for the API:
// request identification and structured request logging.
package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/creaturelab/creature-api/internal/pkg/idgen"
)

// HeaderRequestID is the request-id header honored and set by RequestID
const HeaderRequestID = "X-Request-ID"

// ContextKeyRequestID is the gin context key holding the request id
const ContextKeyRequestID = "request_id"

// RequestID assigns each request an id, honoring one supplied by the
// caller, and echoes it on the response.
func RequestID(gen idgen.Generator) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = gen.Generate()
		}
		c.Set(ContextKeyRequestID, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

// RequestLogger emits one structured log line per completed request.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		slog.Info("request completed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
			"request_id", c.GetString(ContextKeyRequestID),
		)
	}
}
