package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"aboutme/token"
)

// bearerAuth validates the Authorization header and stores the caller's id
// and role names on the request context.
func bearerAuth(issuer *token.Issuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid Authorization header"})
			return
		}
		claims, err := issuer.Parse(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		sub, _ := claims["sub"].(string)
		c.Set("userId", sub)
		var roles []string
		if raw, ok := claims["roles"].([]any); ok {
			for _, r := range raw {
				if name, ok := r.(string); ok {
					roles = append(roles, name)
				}
			}
		}
		c.Set("roles", roles)
		c.Next()
	}
}

// requireRole guards a route group to callers holding the given role.
func requireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roles, _ := c.Get("roles")
		if names, ok := roles.([]string); ok {
			for _, name := range names {
				if name == role {
					c.Next()
					return
				}
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	}
}
