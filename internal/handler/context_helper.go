package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/workshop-portal/stats-api/internal/middleware"
	"github.com/workshop-portal/stats-api/internal/models"
)

func claimsFromContext(c *gin.Context) *models.JWTClaims {
	value, exists := c.Get(middleware.ContextUserKey)
	if !exists {
		return nil
	}
	claims, ok := value.(*models.JWTClaims)
	if !ok {
		return nil
	}
	return claims
}

// pickQuery reads the snake_case parameter and falls back to its alias.
func pickQuery(c *gin.Context, preferred string, fallback string) string {
	if value := c.Query(preferred); value != "" {
		return value
	}
	return c.Query(fallback)
}

func queryInt(c *gin.Context, key, alias string) int {
	value, err := strconv.Atoi(pickQuery(c, key, alias))
	if err != nil {
		return 0
	}
	return value
}
