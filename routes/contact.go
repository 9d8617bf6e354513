package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rozgaar-gb-server/models"
)

// RegisterContactRoutes registers the write-only contact and feedback forms
func RegisterContactRoutes(router *gin.RouterGroup, h *Handler) {
	router.POST("/queries", h.submitQuery)
	router.POST("/feedback", h.submitFeedback)
}

func (h *Handler) submitQuery(c *gin.Context) {
	var req models.QueryCreate
	if !bindJSON(c, &req) {
		return
	}

	if _, err := h.Contact.SubmitQuery(c.Request.Context(), req); err != nil {
		h.respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, "querySubmitted", nil)
}

func (h *Handler) submitFeedback(c *gin.Context) {
	var req models.FeedbackCreate
	if !bindJSON(c, &req) {
		return
	}

	if _, err := h.Contact.SubmitFeedback(c.Request.Context(), req); err != nil {
		h.respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, "feedbackSubmitted", nil)
}
