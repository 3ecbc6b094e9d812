package middleware

import (
	"safespace-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

func (m Middleware) Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				ctx := c.Request.Context()
				m.logger.Errorf(ctx, "Panic recovered: %v | Method: %s | Path: %s",
					err, c.Request.Method, c.Request.URL.Path)

				response.PanicError(c, err, m.discord)
				c.Abort()
			}
		}()
		c.Next()
	}
}
