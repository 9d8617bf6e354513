package routes

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"rozgaar-gb-server/i18n"
	"rozgaar-gb-server/middleware"
	"rozgaar-gb-server/services"
)

func respond(c *gin.Context, status int, messageKey string, data any) {
	body := gin.H{"success": true}
	if messageKey != "" {
		body["message"] = i18n.T(messageKey, middleware.LanguageFrom(c))
	}
	if data != nil {
		body["data"] = data
	}
	c.JSON(status, body)
}

func respondMessage(c *gin.Context, status int, messageKey string) {
	c.JSON(status, gin.H{
		"success": false,
		"message": i18n.T(messageKey, middleware.LanguageFrom(c)),
	})
}

// respondError maps a service error to its status and localized message.
// Field errors carry the translated text of each rejected field.
func (h *Handler) respondError(c *gin.Context, err error) {
	lang := middleware.LanguageFrom(c)

	if verr, ok := services.IsValidation(err); ok {
		fields := make(map[string]string, len(verr.Fields))
		for field, key := range verr.Fields {
			fields[field] = i18n.T(key, lang)
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": i18n.T("validationFailed", lang),
			"errors":  fields,
		})
		return
	}

	switch {
	case errors.Is(err, services.ErrNotFound):
		respondMessage(c, http.StatusNotFound, "notFound")
	case errors.Is(err, services.ErrEmailTaken):
		respondMessage(c, http.StatusConflict, "emailRegistered")
	case errors.Is(err, services.ErrInvalidCredentials):
		respondMessage(c, http.StatusUnauthorized, "loginError")
	case errors.Is(err, services.ErrInvalidToken):
		respondMessage(c, http.StatusUnauthorized, "sessionExpired")
	case errors.Is(err, services.ErrUploadUnavailable):
		respondMessage(c, http.StatusServiceUnavailable, "uploadUnavailable")
	default:
		if errors.Is(err, c.Request.Context().Err()) && c.Request.Context().Err() != nil {
			// client went away; nothing useful to send
			c.Abort()
			return
		}
		h.log.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		respondMessage(c, http.StatusInternalServerError, "error")
	}
}

// bindJSON decodes the body, answering 400 invalidRequest on malformed input
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondMessage(c, http.StatusBadRequest, "invalidRequest")
		return false
	}
	return true
}

// uuidParam parses a path parameter; a malformed id is reported as not found
func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		respondMessage(c, http.StatusNotFound, "notFound")
		return uuid.Nil, false
	}
	return id, true
}

func clientInfo(c *gin.Context) services.ClientInfo {
	return services.ClientInfo{
		DeviceID:  c.GetHeader("X-Device-ID"),
		UserAgent: c.GetHeader("User-Agent"),
		IPAddress: c.ClientIP(),
	}
}
