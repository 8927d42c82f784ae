package middleware

import (
	"strings"

	"github.com/naolatam/SN-radio-sub000/config"
	"github.com/naolatam/SN-radio-sub000/helper"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

var httpHelper = &helper.HTTPHelper{}

type Claims struct {
	UserID uint   `json:"user_id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

func parseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return config.JWTSecret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	return claims, nil
}

// AuthMiddleware rejects requests without a valid bearer token and stores
// the claims in the gin context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httpHelper.SendUnauthorizedError(c, "authorization header required")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			httpHelper.SendUnauthorizedError(c, "bearer token required")
			c.Abort()
			return
		}

		claims, err := parseToken(tokenString)
		if err != nil {
			httpHelper.SendUnauthorizedError(c, "invalid token")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("name", claims.Name)
		c.Set("role", claims.Role)

		c.Next()
	}
}

// OptionalAuthMiddleware populates viewer claims when a valid token is
// present but lets anonymous requests through. Public reads use it so
// is_liked_by_current_user can be filled for logged-in visitors.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString != authHeader {
				if claims, err := parseToken(tokenString); err == nil {
					c.Set("user_id", claims.UserID)
					c.Set("name", claims.Name)
					c.Set("role", claims.Role)
				}
			}
		}
		c.Next()
	}
}

// RequireRole guards a route group behind one of the given roles.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole, exists := c.Get("role")
		if !exists {
			httpHelper.SendUnauthorizedError(c, "user role not found")
			c.Abort()
			return
		}

		roleStr := userRole.(string)
		for _, role := range roles {
			if roleStr == role {
				c.Next()
				return
			}
		}

		httpHelper.SendForbiddenError(c, "insufficient permissions")
		c.Abort()
	}
}
