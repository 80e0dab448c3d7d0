package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"landing-builder-backend/pkg/logger"
)

const requestIDHeader = "X-Request-ID"

// RequestIDMiddleware tags every request with an id, honoring one supplied
// by the caller when it is a plain token, and threads it through the request
// context so downstream log lines carry it.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := sanitizeRequestID(c.Request.Header.Get(requestIDHeader))
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set("request_id", requestID)
		c.Header(requestIDHeader, requestID)

		ctx := logger.ContextWithFields(c.Request.Context(), map[string]interface{}{
			"request_id": requestID,
		})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// sanitizeRequestID drops caller-supplied ids that could pollute logs:
// overlong values or anything outside [A-Za-z0-9_-].
func sanitizeRequestID(id string) string {
	if len(id) == 0 || len(id) > 64 {
		return ""
	}
	for _, r := range id {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r == '-' || r == '_':
		default:
			return ""
		}
	}
	return id
}
