package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/hackathon-portal-api/internal/middleware"
	"github.com/noah-isme/hackathon-portal-api/internal/models"
)

// claimsFromContext returns the session claims, or nil for anonymous requests.
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
