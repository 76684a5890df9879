package response

import (
	"circles-of-care-site/internal/schema"

	"github.com/gin-gonic/gin"
)

const ldJSONContentType = "application/ld+json; charset=utf-8"

// requestIDKey mirrors middleware.RequestIDKey
const requestIDKey = "RequestID"

// Response standardizes the API JSON response
type Response struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	Error     interface{} `json:"error,omitempty"`
	RequestID string      `json:"request_id,omitempty"`
}

// Success sends a success response
func Success(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, Response{
		Success:   true,
		Message:   message,
		Data:      data,
		RequestID: c.GetString(requestIDKey),
	})
}

// Error sends an error response. err carries client safe details such as
// field level validation messages.
func Error(c *gin.Context, code int, message string, err interface{}) {
	c.JSON(code, Response{
		Success:   false,
		Message:   message,
		Error:     err,
		RequestID: c.GetString(requestIDKey),
	})
}

// Record sends a schema.org record as application/ld+json, encoded exactly
// as pages embed it. An encoding failure is left to the error handler.
func Record(c *gin.Context, code int, record schema.Record) {
	data, err := schema.Marshal(record)
	if err != nil {
		c.Error(err)
		return
	}
	c.Header("Cache-Control", "no-cache")
	c.Data(code, ldJSONContentType, data)
}
