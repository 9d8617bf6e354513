package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rozgaar-gb-server/middleware"
	"rozgaar-gb-server/services"
)

// RegisterAuthRoutes registers account and session routes
func RegisterAuthRoutes(router *gin.RouterGroup, h *Handler) {
	auth := router.Group("/auth")
	{
		auth.POST("/signup", middleware.AuthRateLimitMiddleware(h.Limiter), h.signUp)
		auth.POST("/signin", middleware.AuthRateLimitMiddleware(h.Limiter), h.signIn)
		auth.POST("/refresh", h.refreshToken)
		auth.POST("/signout", h.signOut)
		auth.GET("/session", middleware.AuthMiddleware(h.Authenticator), h.session)
	}
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (h *Handler) signUp(c *gin.Context) {
	var req services.SignUpRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.Auth.SignUp(c.Request.Context(), req, clientInfo(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, "signupSuccess", result)
}

func (h *Handler) signIn(c *gin.Context) {
	var req services.SignInRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.Auth.SignIn(c.Request.Context(), req, clientInfo(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "loginSuccess", result)
}

func (h *Handler) refreshToken(c *gin.Context) {
	var req refreshRequest
	if !bindJSON(c, &req) {
		return
	}

	tokens, err := h.Auth.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		h.respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "", tokens)
}

func (h *Handler) signOut(c *gin.Context) {
	var req refreshRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.Auth.SignOut(c.Request.Context(), req.RefreshToken); err != nil {
		h.respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "logoutSuccess", nil)
}

func (h *Handler) session(c *gin.Context) {
	identity, _ := middleware.CurrentIdentity(c)
	respond(c, http.StatusOK, "", identity)
}
