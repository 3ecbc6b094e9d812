package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// CORSConfig controls the cross-origin headers. An AllowedOrigins entry of
// "*" allows any origin; "*.example.com" allows its subdomains.
type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
	MaxAge         int
}

// NewCORSConfig returns the CORS setup used by the alert API for origins.
func NewCORSConfig(origins []string) CORSConfig {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return CORSConfig{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Origin", "Content-Type", "Content-Length", "Accept", "X-Requested-With"},
		MaxAge:         86400,
	}
}

func (m Middleware) CORS() gin.HandlerFunc {
	cfg := m.cors
	methods := strings.Join(cfg.AllowedMethods, ", ")
	headers := strings.Join(cfg.AllowedHeaders, ", ")

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if allowed := allowOrigin(origin, cfg.AllowedOrigins); allowed != "" {
			c.Header("Access-Control-Allow-Origin", allowed)
			if allowed != "*" {
				c.Header("Vary", "Origin")
			}
		}

		if c.Request.Method == http.MethodOptions {
			if methods != "" {
				c.Header("Access-Control-Allow-Methods", methods)
			}
			if headers != "" {
				c.Header("Access-Control-Allow-Headers", headers)
			}
			if cfg.MaxAge > 0 {
				c.Header("Access-Control-Max-Age", strconv.Itoa(cfg.MaxAge))
			}
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// allowOrigin returns the Access-Control-Allow-Origin value for origin, or ""
// when the origin is not allowed.
func allowOrigin(origin string, allowed []string) string {
	for _, a := range allowed {
		switch {
		case a == "*":
			return "*"
		case origin == "":
			continue
		case a == origin:
			return origin
		case strings.HasPrefix(a, "*.") && strings.HasSuffix(origin, a[1:]):
			return origin
		}
	}
	return ""
}
