package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var (
	corsAllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodDelete}
	corsAllowHeaders = []string{"Content-Type"}
)

// CORS настраивает gin-contrib/cors для preflight запросов.
// "*" в списке origins разрешает любой источник.
func CORS(allowOrigins []string) gin.HandlerFunc {
	config := cors.Config{
		AllowMethods: corsAllowMethods,
		AllowHeaders: corsAllowHeaders,
		MaxAge:       12 * time.Hour,
	}
	if allowsAnyOrigin(allowOrigins) {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = allowOrigins
	}
	return cors.New(config)
}

// CORSHeaders добавляет CORS заголовки к каждому ответу, включая ответы без Origin
// и конверты ошибок. gin-contrib/cors пропускает запросы без заголовка Origin.
func CORSHeaders(allowOrigins []string) gin.HandlerFunc {
	anyOrigin := allowsAnyOrigin(allowOrigins)
	methods := strings.Join(corsAllowMethods, ",")
	headers := strings.Join(corsAllowHeaders, ",")

	return func(c *gin.Context) {
		if anyOrigin {
			c.Header("Access-Control-Allow-Origin", "*")
		}
		c.Header("Access-Control-Allow-Headers", headers)
		c.Header("Access-Control-Allow-Methods", methods)
		c.Next()
	}
}

func allowsAnyOrigin(origins []string) bool {
	for _, origin := range origins {
		if origin == "*" {
			return true
		}
	}
	return false
}
