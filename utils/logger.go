package utils

import (
	"net/http"
	"time"

	"gbsorgapi/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader carries the per-request correlation id.
const RequestIDHeader = "X-Request-ID"

// InitLoggerWithConfig replaces the global logger with a levelled, rotated one.
func InitLoggerWithConfig(filePath, level string, maxSize, maxBackups, maxAge int, compress bool) {
	logger.Init(logger.Options{
		Path:       filePath,
		Level:      logger.ParseLogLevel(level),
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		MaxAge:     maxAge,
		Compress:   compress,
	})
	logger.Infof("Logger initialized with level %s at: %s", level, filePath)
}

// LoggerMiddleware tags every request with an id and logs it by status class.
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(RequestIDHeader, requestID)
		c.Header(RequestIDHeader, requestID)

		c.Next()
		elapsed := time.Since(start)
		status := c.Writer.Status()

		switch {
		case status >= 500:
			logger.Errorf("HTTP %s %s - Status: %d, Duration: %v, IP: %s, Request: %s",
				c.Request.Method, c.Request.URL.Path, status, elapsed, c.ClientIP(), requestID)
		case status >= 400:
			logger.Warnf("HTTP %s %s - Status: %d, Duration: %v, IP: %s, Request: %s",
				c.Request.Method, c.Request.URL.Path, status, elapsed, c.ClientIP(), requestID)
		default:
			logger.Infof("HTTP %s %s - Status: %d, Duration: %v, IP: %s, Request: %s",
				c.Request.Method, c.Request.URL.Path, status, elapsed, c.ClientIP(), requestID)
		}
	}
}

// JSONResponse sends a JSON response with the specified HTTP status code.
func JSONResponse(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// ErrorResponse logs and sends a standardized error response with HTTP 400 status.
func ErrorResponse(c *gin.Context, err error) {
	ErrorResponseWithStatus(c, http.StatusBadRequest, err)
}

// ErrorResponseWithStatus logs and sends a standardized error response.
func ErrorResponseWithStatus(c *gin.Context, status int, err error) {
	if status >= http.StatusInternalServerError {
		logger.Errorf("API Error: %v", err)
	} else {
		logger.Warnf("API Error: %v", err)
	}
	c.AbortWithStatusJSON(status, gin.H{
		"error": err.Error(),
	})
}
