package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDKey = "requestId"

// requestLogger tags every request with an id and logs method, path,
// status and duration once the handler chain completes.
func (h *Handler) requestLogger(c *gin.Context) {
	reqID := uuid.NewString()
	c.Set(requestIDKey, reqID)
	c.Writer.Header().Set("X-Request-Id", reqID)

	start := time.Now()
	c.Next()

	if h.log == nil {
		return
	}
	h.log.Infow("http_request",
		"request_id", reqID,
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", c.Writer.Status(),
		"duration_ms", time.Since(start).Milliseconds(),
	)
}
