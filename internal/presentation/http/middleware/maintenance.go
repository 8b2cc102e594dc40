package middleware

import (
	"github.com/dcamacho/barkeep-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// MaintenanceMiddleware rejects all API traffic while maintenance mode
// is enabled. Health stays reachable because it is registered outside
// the gated group.
func MaintenanceMiddleware(enabled bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if enabled {
			response.ServiceUnavailable(c, "Service is under maintenance")
			c.Abort()
			return
		}
		c.Next()
	}
}
