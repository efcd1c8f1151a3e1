package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Problem là error body chung: {status, message, timestamp}.
// Errors chỉ có khi validation fail (field -> message).
type Problem struct {
	Status    int               `json:"status"`
	Message   string            `json:"message"`
	Errors    map[string]string `json:"errors,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
}

// GenericErrorMessage không bao giờ chứa chi tiết lỗi nội bộ
const GenericErrorMessage = "An unexpected error occurred. Please try again later."

// Success responses: payload phẳng, không wrap
func JSON(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error responses
func Error(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, Problem{
		Status:    statusCode,
		Message:   message,
		Timestamp: time.Now().UTC(),
	})
}

func ValidationError(c *gin.Context, fields map[string]string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, Problem{
		Status:    http.StatusBadRequest,
		Message:   "One or more validation errors occurred.",
		Errors:    fields,
		Timestamp: time.Now().UTC(),
	})
}

func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

func InternalServerError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, GenericErrorMessage)
}
