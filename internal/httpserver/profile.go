package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"centrodrinks/internal/domain"
)

// 5 MiB is plenty for a phone camera portrait.
const maxPhotoBytes = 5 << 20

func profileGetHandler(profiles profileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		prof, err := profiles.Get(c.Request.Context(), uidFrom(c))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, prof)
	}
}

func profilePutHandler(profiles profileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var edits domain.Profile
		if err := c.ShouldBindJSON(&edits); err != nil {
			badRequest(c, "invalid request body")
			return
		}

		prof, err := profiles.Save(c.Request.Context(), uidFrom(c), edits)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, prof)
	}
}

// profilePhotoHandler accepts the raw image as the request body and stores
// it under the caller's uid, replacing any previous photo.
func profilePhotoHandler(profiles profileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		body := http.MaxBytesReader(c.Writer, c.Request.Body, maxPhotoBytes)

		url, err := profiles.SavePhoto(c.Request.Context(), uidFrom(c), body)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"photoUrl": url})
	}
}
