package handlers

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"aboutme/config"
	"aboutme/services"
	"aboutme/shared"
)

const maxProfileImageBytes = 8 << 20

// profileImageHandler accepts a multipart image upload, normalizes it to fit
// within 512x512 and stores it under the upload directory. The resulting
// public URL is written onto the profile.
func profileImageHandler(svc *services.UserProfileService, cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		fileHeader, err := c.FormFile("file")
		if err != nil {
			respond(c, shared.BadRequest("An image file is required."))
			return
		}
		if fileHeader.Size > maxProfileImageBytes {
			respond(c, shared.BadRequest("The image file is too large."))
			return
		}
		file, err := fileHeader.Open()
		if err != nil {
			respond(c, shared.Internal("failed to read the uploaded file"))
			return
		}
		defer file.Close()

		img, err := imaging.Decode(file, imaging.AutoOrientation(true))
		if err != nil {
			respond(c, shared.BadRequest("The uploaded file is not a valid image."))
			return
		}
		img = imaging.Fit(img, 512, 512, imaging.Lanczos)

		if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
			respond(c, shared.Internal("failed to prepare the upload directory"))
			return
		}
		name := fmt.Sprintf("profile-%s-%s.jpg", id, uuid.NewString()[:8])
		if err := imaging.Save(img, filepath.Join(cfg.UploadDir, name)); err != nil {
			respond(c, shared.Internal("failed to store the image"))
			return
		}
		respond(c, svc.SetProfileImage(id, fmt.Sprintf("%s/public/%s", cfg.BaseURL, name)))
	}
}
