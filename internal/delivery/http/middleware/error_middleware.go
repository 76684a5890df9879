package middleware

import (
	"errors"
	"net/http"

	"circles-of-care-site/internal/delivery/http/response"
	"circles-of-care-site/pkg/apperror"
	"circles-of-care-site/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		reqID, _ := c.Get(RequestIDKey)

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Code >= http.StatusInternalServerError {
				logger.Log.Error("Request failed",
					"request_id", reqID,
					"path", c.FullPath(),
					"status", appErr.Code,
					"error", err,
				)
			}
			response.Error(c, appErr.Code, appErr.Message, appErr.Details)
			return
		}

		// SECURITY: Never expose internal error details to clients.
		logger.Log.Error("Internal Server Error", "request_id", reqID, "path", c.FullPath(), "error", err)
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
	}
}
