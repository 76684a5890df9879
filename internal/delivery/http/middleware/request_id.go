package middleware

import (
	"context"

	"circles-of-care-site/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	RequestIDKey    = "RequestID"
	RequestIDHeader = "X-Request-ID"
)

// RequestID tags every request with an id, reusing a well formed inbound one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}

		c.Set(RequestIDKey, id)
		c.Header(RequestIDHeader, id)

		ctx := context.WithValue(c.Request.Context(), domain.KeyRequestID, id)
		ctx = context.WithValue(ctx, domain.KeyClientIP, c.ClientIP())
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
