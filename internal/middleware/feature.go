package middleware

import (
	"github.com/gin-gonic/gin"

	appErrors "github.com/workshop-portal/stats-api/pkg/errors"
	"github.com/workshop-portal/stats-api/pkg/response"
)

// Feature answers 404 FEATURE_DISABLED for routes switched off in configuration.
func Feature(name string, enabled bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !enabled {
			response.Error(c, appErrors.Clone(appErrors.ErrFeatureDisabled, name+" is disabled"))
			c.Abort()
			return
		}
		c.Next()
	}
}
