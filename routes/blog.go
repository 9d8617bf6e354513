package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterBlogRoutes registers the public blog
func RegisterBlogRoutes(router *gin.RouterGroup, h *Handler) {
	blogs := router.Group("/blogs")
	{
		blogs.GET("", h.listBlogs)
		blogs.GET("/:id", h.getBlog)
	}
}

func (h *Handler) listBlogs(c *gin.Context) {
	blogs, err := h.Blogs.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    blogs,
		"count":   len(blogs),
	})
}

func (h *Handler) getBlog(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	blog, err := h.Blogs.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "", blog)
}
