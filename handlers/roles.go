package handlers

import (
	"github.com/gin-gonic/gin"

	"aboutme/services"
	"aboutme/token"
)

// mountRoles exposes the role admin endpoints. Creating a role is open so a
// fresh install can bootstrap an admin; everything else requires the admin
// role.
func mountRoles(rg *gin.RouterGroup, svc *services.RoleService, issuer *token.Issuer) {
	rg.POST("/create", func(c *gin.Context) {
		respond(c, svc.CreateRole(c.Query("roleName")))
	})

	admin := rg.Group("", bearerAuth(issuer), requireRole("admin"))
	admin.GET("", func(c *gin.Context) {
		respond(c, svc.GetAllRoles())
	})
	admin.DELETE("", func(c *gin.Context) {
		respond(c, svc.DeleteRole(c.Query("roleName")))
	})
	admin.POST("/add-user", func(c *gin.Context) {
		respond(c, svc.AddUserToRole(c.Query("userId"), c.Query("roleName")))
	})
	admin.POST("/remove-user", func(c *gin.Context) {
		respond(c, svc.RemoveUserFromRole(c.Query("userId"), c.Query("roleName")))
	})
}
