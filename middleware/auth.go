package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"rozgaar-gb-server/i18n"
	"rozgaar-gb-server/services"
)

const identityKey = "identity"

// Authenticator resolves a bearer access token to an identity
type Authenticator interface {
	Authenticate(ctx context.Context, accessToken string) (*services.Identity, error)
}

// AdminChecker decides whether an identity is the site admin
type AdminChecker interface {
	IsAdmin(identity *services.Identity) bool
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if authHeader == "" || tokenString == authHeader || tokenString == "" {
		return "", false
	}
	return tokenString, true
}

func abortWithMessage(c *gin.Context, status int, key string) {
	c.AbortWithStatusJSON(status, gin.H{
		"success": false,
		"message": i18n.T(key, LanguageFrom(c)),
	})
}

// AuthMiddleware validates the bearer token and stores the identity in the context
func AuthMiddleware(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			abortWithMessage(c, http.StatusUnauthorized, "loginRequired")
			return
		}

		identity, err := auth.Authenticate(c.Request.Context(), tokenString)
		if err != nil {
			abortWithMessage(c, http.StatusUnauthorized, "sessionExpired")
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// RequireAdmin rejects requests whose identity does not pass the admin gate.
// It must run after AuthMiddleware.
func RequireAdmin(gate AdminChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, _ := CurrentIdentity(c)
		if !gate.IsAdmin(identity) {
			abortWithMessage(c, http.StatusForbidden, "accessDenied")
			return
		}
		c.Next()
	}
}

// CurrentIdentity returns the identity set by the auth middleware
func CurrentIdentity(c *gin.Context) (*services.Identity, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return nil, false
	}
	identity, ok := value.(*services.Identity)
	return identity, ok && identity != nil
}
