package response

import "github.com/gin-gonic/gin"

// APIResponse is the envelope attached to every endpoint. The HTTP status
// code is mirrored inside the body so clients can log the pair as one unit.
type APIResponse struct {
	Success    bool        `json:"success"`
	StatusCode int         `json:"statusCode"`
	Data       interface{} `json:"data"`
	Message    string      `json:"message"`
}

func New(statusCode int, data interface{}, message string) APIResponse {
	return APIResponse{
		Success:    statusCode < 400,
		StatusCode: statusCode,
		Data:       data,
		Message:    message,
	}
}

func JSON(c *gin.Context, statusCode int, data interface{}, message string) {
	c.JSON(statusCode, New(statusCode, data, message))
}

func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, New(statusCode, nil, message))
}

// AbortError is Error plus request abort, for middleware.
func AbortError(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, New(statusCode, nil, message))
}
