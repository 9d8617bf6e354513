package routes

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"rozgaar-gb-server/middleware"
	"rozgaar-gb-server/models"
	"rozgaar-gb-server/services"
)

const maxUploadMemory = 10 << 20

// RegisterProfileRoutes registers the signed-in worker's own profile
func RegisterProfileRoutes(router *gin.RouterGroup, h *Handler) {
	profile := router.Group("/profile")
	profile.Use(middleware.AuthMiddleware(h.Authenticator))
	{
		profile.GET("", h.getOwnProfile)
		profile.PUT("", h.saveOwnProfile)
		profile.POST("/photo", h.uploadProfilePhoto)
	}
}

func (h *Handler) getOwnProfile(c *gin.Context) {
	identity, _ := middleware.CurrentIdentity(c)

	profile, err := h.Workers.GetOwn(c.Request.Context(), identity.UserID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "", profile)
}

func (h *Handler) saveOwnProfile(c *gin.Context) {
	identity, _ := middleware.CurrentIdentity(c)

	var req models.ProfileRequest
	if !bindJSON(c, &req) {
		return
	}

	profile, err := h.Workers.UpsertOwn(c.Request.Context(), identity.UserID, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "profileUpdated", profile)
}

// uploadProfilePhoto stores the multipart "photo" file. An existing profile
// is pointed at it right away; before the first profile save the client
// sends the URL back as profile_photo_url.
func (h *Handler) uploadProfilePhoto(c *gin.Context) {
	identity, _ := middleware.CurrentIdentity(c)

	hasProfile := true
	if _, err := h.Workers.GetOwn(c.Request.Context(), identity.UserID); err != nil {
		if !errors.Is(err, services.ErrNotFound) {
			h.respondError(c, err)
			return
		}
		hasProfile = false
	}

	url, ok := h.uploadImage(c, func(c *gin.Context) (string, error) {
		header, _ := c.FormFile("photo")
		return h.Media.UploadProfilePhoto(c.Request.Context(), identity.UserID, header)
	})
	if !ok {
		return
	}

	if hasProfile {
		if err := h.Workers.SetPhoto(c.Request.Context(), identity.UserID, url); err != nil {
			h.respondError(c, err)
			return
		}
	}

	respond(c, http.StatusOK, "photoUploaded", gin.H{"url": url, "attached": hasProfile})
}

func (h *Handler) uploadImage(c *gin.Context, upload func(*gin.Context) (string, error)) (string, bool) {
	if err := c.Request.ParseMultipartForm(maxUploadMemory); err != nil {
		respondMessage(c, http.StatusBadRequest, "invalidRequest")
		return "", false
	}

	url, err := upload(c)
	if err != nil {
		h.respondError(c, err)
		return "", false
	}
	return url, true
}
