package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	HeaderXRequestID = "X-Request-Id"

	requestIDKey = "request_id"
)

// RequestID reuses the caller's X-Request-Id or generates one, echoes it in
// the response and stores it on the gin context.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader(HeaderXRequestID)
		if reqID == "" {
			reqID = uuid.NewString()
		}

		c.Header(HeaderXRequestID, reqID)
		c.Set(requestIDKey, reqID)

		c.Next()
	}
}

// GetRequestID returns the request id set by RequestID, or "" if none
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
