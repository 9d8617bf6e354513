package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"rozgaar-gb-server/models"
	"rozgaar-gb-server/websocket"
)

// RegisterReviewRoutes registers anonymous reviews of a worker
func RegisterReviewRoutes(router *gin.RouterGroup, h *Handler) {
	reviews := router.Group("/workers/:id/reviews")
	{
		reviews.GET("", h.listReviews)
		reviews.POST("", h.createReview)
	}
}

// RegisterReviewFeedRoutes registers the websocket feed of review changes
func RegisterReviewFeedRoutes(router *gin.RouterGroup, h *Handler) {
	router.GET("/ws/reviews", h.reviewFeed)
}

func (h *Handler) listReviews(c *gin.Context) {
	workerID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	result, err := h.Reviews.List(c.Request.Context(), workerID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "", result)
}

func (h *Handler) createReview(c *gin.Context) {
	workerID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req models.ReviewCreate
	if !bindJSON(c, &req) {
		return
	}

	review, err := h.Reviews.Create(c.Request.Context(), workerID, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, "reviewSuccess", review)
}

func (h *Handler) reviewFeed(c *gin.Context) {
	workerID, err := uuid.Parse(c.Query("worker_id"))
	if err != nil {
		respondMessage(c, http.StatusBadRequest, "invalidRequest")
		return
	}
	if h.Hub == nil {
		respondMessage(c, http.StatusServiceUnavailable, "error")
		return
	}

	websocket.ServeWebSocket(h.Hub, c.Writer, c.Request, workerID)
}
