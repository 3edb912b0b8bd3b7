package utils

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// For simplize gin response
func SimpleResponse(c *gin.Context, statusCode int, message string, errCode string, data interface{}) {
	body := gin.H{"message": message}
	if errCode != "" {
		body["error"] = errCode
	}
	if data != nil {
		body["data"] = data
	}
	c.JSON(statusCode, body)
}

// ServerErrorResponse logs the internal error and answer a generic envelope
func ServerErrorResponse(c *gin.Context, statusCode int, message string, errCode string, err error) {
	Logger.Error(message,
		zap.String("error_code", errCode),
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	c.JSON(statusCode, gin.H{"message": message, "error": errCode})
}
