package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rozgaar-gb-server/middleware"
	"rozgaar-gb-server/models"
)

// RegisterAdminRoutes registers content management. Every route requires a
// signed-in identity that passes the admin gate.
func RegisterAdminRoutes(router *gin.RouterGroup, h *Handler) {
	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(h.Authenticator), middleware.RequireAdmin(h.Admin))
	{
		admin.POST("/blogs", h.createBlog)
		admin.PUT("/blogs/:id", h.updateBlog)
		admin.POST("/blogs/images", h.uploadBlogImage)
	}
}

func (h *Handler) createBlog(c *gin.Context) {
	var req models.BlogRequest
	if !bindJSON(c, &req) {
		return
	}

	blog, err := h.Blogs.Create(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, "blogCreated", blog)
}

func (h *Handler) updateBlog(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req models.BlogRequest
	if !bindJSON(c, &req) {
		return
	}

	blog, err := h.Blogs.Update(c.Request.Context(), id, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "blogUpdated", blog)
}

// uploadBlogImage stores the multipart "photo" file and returns its URL for
// use as a blog image_url
func (h *Handler) uploadBlogImage(c *gin.Context) {
	identity, _ := middleware.CurrentIdentity(c)

	url, ok := h.uploadImage(c, func(c *gin.Context) (string, error) {
		header, _ := c.FormFile("photo")
		return h.Media.UploadBlogImage(c.Request.Context(), identity.UserID, header)
	})
	if !ok {
		return
	}

	respond(c, http.StatusCreated, "photoUploaded", gin.H{"url": url})
}
