package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader заголовок с идентификатором запроса
	RequestIDHeader = "X-Request-ID"

	// RequestIDKey ключ идентификатора в контексте Gin
	RequestIDKey = "request_id"
)

// RequestID берет идентификатор из заголовка запроса или генерирует UUID
// и возвращает его в заголовке ответа.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(RequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}

// GetRequestID возвращает идентификатор запроса или пустую строку
func GetRequestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}
