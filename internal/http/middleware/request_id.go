package middleware

import (
	"github.com/gin-gonic/gin"

	"aura.app/relay/common/id"
	"aura.app/relay/common/logger"
)

const RequestIDHeader = "X-Request-Id"

// RequestID tags each request with a fresh snowflake ID, echoes it in the
// response header and adds it to the request's log fields.
// id.Init must have been called.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := id.NewString()
		c.Header(RequestIDHeader, requestID)

		ctx := logger.WithLogFields(c.Request.Context(), logger.LogFields{
			RequestID: logger.Ptr(requestID),
		})
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
