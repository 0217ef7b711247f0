package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse is the failure envelope shared by every endpoint.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// ErrorHandler is a middleware to catch panics and return the failure envelope.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				GetLogger().Error("Unhandled panic",
					zap.Any("error", err),
					zap.String("path", c.Request.URL.Path),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
					Success: false,
					Error:   "Internal Server Error",
				})
			}
		}()
		c.Next()
	}
}

// JSONError sends the failure envelope. The cause is logged, never returned to the caller.
func JSONError(c *gin.Context, status int, message string, cause error) {
	fields := []zap.Field{zap.Int("status", status), zap.String("path", c.Request.URL.Path)}
	if cause != nil {
		fields = append(fields, zap.Error(cause))
	}
	if status >= http.StatusInternalServerError {
		GetLogger().Error(message, fields...)
	} else {
		GetLogger().Warn(message, fields...)
	}
	c.JSON(status, ErrorResponse{Success: false, Error: message})
}

// JSONSuccess merges payload into the success envelope.
func JSONSuccess(c *gin.Context, payload gin.H) {
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}
