package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/sweetline/shop-api/internal/utils"
)

// RecoveryMiddleware converts an escaped panic into a generic 500 response.
// The process never crashes on a handler panic; internal detail is only
// exposed outside release mode.
func RecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error().
					Str("request_id", c.GetString("request_id")).
					Str("path", c.Request.URL.Path).
					Interface("panic", rec).
					Msg("handler panic recovered")

				utils.ErrorWithDetail(c, 500, "Internal server error", fmt.Errorf("%v", rec))
				c.Abort()
			}
		}()
		c.Next()
	}
}
