package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"aboutme/config"
	"aboutme/mailer"
	"aboutme/services"
	"aboutme/token"
)

// Router wires every service to its routes and returns the engine ready to
// run.
func Router(db *gorm.DB, issuer *token.Issuer, mail mailer.Sender, cfg config.Config) *gin.Engine {
	r := gin.Default()
	r.Static("/public", cfg.UploadDir)

	mountAuth(r.Group("/api/auths"), services.NewAuthService(db, issuer, mail, cfg))
	mountRoles(r.Group("/api/roles"), services.NewRoleService(db), issuer)

	v1 := r.Group("/api/v1")
	mountCrud[services.CertificateCreateDto, services.CertificateUpdateDto](v1.Group("/certificates"), services.NewCertificateService(db))
	mountCrud[services.EducationCreateDto, services.EducationUpdateDto](v1.Group("/educations"), services.NewEducationService(db))
	mountCrud[services.ExperienceCreateDto, services.ExperienceUpdateDto](v1.Group("/experiences"), services.NewExperienceService(db))
	mountCrud[services.SocialMediaCreateDto, services.SocialMediaUpdateDto](v1.Group("/social-medias"), services.NewSocialMediaService(db))
	mountCrud[services.TemplateCreateDto, services.TemplateUpdateDto](v1.Group("/templates"), services.NewTemplateService(db))

	profiles := services.NewUserProfileService(db)
	pg := v1.Group("/user-profiles")
	mountCrud[services.UserProfileCreateDto, services.UserProfileUpdateDto](pg, profiles)
	pg.POST("/:id/image", profileImageHandler(profiles, cfg))

	return r
}
