package handlers

import (
	"github.com/naolatam/SN-radio-sub000/models"

	"github.com/gin-gonic/gin"
)

// viewerID returns the authenticated user's id, or 0 for anonymous
// requests that passed through the optional auth middleware.
func viewerID(c *gin.Context) uint {
	if v, exists := c.Get("user_id"); exists {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

func viewerRole(c *gin.Context) models.UserRole {
	if v, exists := c.Get("role"); exists {
		if role, ok := v.(string); ok {
			return models.UserRole(role)
		}
	}
	return models.RoleUser
}
