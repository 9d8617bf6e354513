package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rozgaar-gb-server/i18n"
	"rozgaar-gb-server/middleware"
	"rozgaar-gb-server/models"
)

// RegisterCatalogRoutes registers the enumerations and UI strings
func RegisterCatalogRoutes(router *gin.RouterGroup, h *Handler) {
	router.GET("/categories", getCategories)
	router.GET("/locations", getLocations)
	router.GET("/i18n/:lang", getTranslations)
}

type categoryEntry struct {
	Value models.Category `json:"value"`
	Label string          `json:"label"`
	models.CategoryInfo
}

type locationEntry struct {
	Value models.Location `json:"value"`
	Label string          `json:"label"`
}

// getCategories returns every category in display order with its label in
// the request language
func getCategories(c *gin.Context) {
	lang := middleware.LanguageFrom(c)

	categories := models.GetWorkerCategories()
	entries := make([]categoryEntry, len(categories))
	for i, cat := range categories {
		entries[i] = categoryEntry{
			Value:        cat,
			Label:        i18n.T(string(cat), lang),
			CategoryInfo: cat.Info(),
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": entries})
}

func getLocations(c *gin.Context) {
	lang := middleware.LanguageFrom(c)

	locations := models.GetLocations()
	entries := make([]locationEntry, len(locations))
	for i, loc := range locations {
		entries[i] = locationEntry{Value: loc, Label: i18n.T(string(loc), lang)}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": entries})
}

func getTranslations(c *gin.Context) {
	lang, ok := i18n.Parse(c.Param("lang"))
	if !ok {
		respondMessage(c, http.StatusNotFound, "notFound")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"lang":         lang,
			"rtl":          i18n.IsRTL(lang),
			"translations": i18n.Table(lang),
		},
	})
}
