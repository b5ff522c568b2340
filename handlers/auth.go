package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"aboutme/services"
	"aboutme/shared"
)

func mountAuth(rg *gin.RouterGroup, svc *services.AuthService) {
	rg.POST("/register", func(c *gin.Context) {
		var dto services.RegisterDto
		if err := c.ShouldBindJSON(&dto); err != nil {
			respond(c, shared.BadRequest(err.Error()))
			return
		}
		respond(c, svc.Register(dto))
	})
	rg.POST("/login", func(c *gin.Context) {
		var dto services.LoginDto
		if err := c.ShouldBindJSON(&dto); err != nil {
			respond(c, shared.BadRequest(err.Error()))
			return
		}
		respond(c, svc.Login(dto))
	})
	rg.POST("/refresh-token", func(c *gin.Context) {
		var body struct {
			RefreshToken string `json:"refreshToken"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			respond(c, shared.BadRequest(err.Error()))
			return
		}
		respond(c, svc.RefreshToken(body.RefreshToken))
	})
	// The confirmation link lands in a browser, so this endpoint answers with
	// a small HTML page instead of JSON.
	rg.GET("/confirm-email", func(c *gin.Context) {
		resp := svc.ConfirmEmail(c.Query("userId"), c.Query("token"))
		page := fmt.Sprintf("<html><body><h2>%s</h2></body></html>", resp.Message)
		c.Data(resp.StatusCode, "text/html; charset=utf-8", []byte(page))
	})
}
