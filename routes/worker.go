package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rozgaar-gb-server/services"
)

// RegisterWorkerRoutes registers the public worker directory
func RegisterWorkerRoutes(router *gin.RouterGroup, h *Handler) {
	workers := router.Group("/workers")
	{
		workers.GET("", h.searchWorkers)
		workers.GET("/:id", h.getWorker)
	}
}

// searchWorkers lists available workers. category and location accept
// "all" or nothing for no constraint; search matches the name.
func (h *Handler) searchWorkers(c *gin.Context) {
	filter, err := services.ParseFilter(c.Query("category"), c.Query("location"), c.Query("search"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	workers, err := h.Workers.Search(c.Request.Context(), filter)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    workers,
		"count":   len(workers),
	})
}

func (h *Handler) getWorker(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	worker, err := h.Workers.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "", worker)
}
