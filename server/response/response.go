package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	apiError "github.com/techagentng/chatter/errors"
)

// JSON writes the uniform response envelope. For *errors.Error values the
// field map (when present) is surfaced under "errors".
func JSON(c *gin.Context, message string, status int, data interface{}, err error) {
	responseData := gin.H{
		"message":   message,
		"data":      data,
		"status":    http.StatusText(status),
		"timestamp": time.Now().Format(time.RFC3339),
	}

	if err != nil {
		if apiErr, ok := err.(*apiError.Error); ok {
			if message == "" {
				responseData["message"] = apiErr.Message
			}
			if len(apiErr.Fields) > 0 {
				responseData["errors"] = apiErr.Fields
			}
		} else if message == "" {
			responseData["message"] = err.Error()
		}
	}

	c.JSON(status, responseData)
}
