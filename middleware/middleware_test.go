package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"rozgaar-gb-server/i18n"
	"rozgaar-gb-server/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubAuthenticator map[string]*services.Identity

func (s stubAuthenticator) Authenticate(_ context.Context, token string) (*services.Identity, error) {
	if identity, ok := s[token]; ok {
		return identity, nil
	}
	return nil, errors.New("invalid token")
}

func decodeMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	return body.Message
}

func TestAuthMiddlewareAndRequireAdmin(t *testing.T) {
	admin := &services.Identity{UserID: uuid.New(), Email: "admin@rozgaargb.pk"}
	worker := &services.Identity{UserID: uuid.New(), Email: "worker@rozgaargb.pk"}
	auth := stubAuthenticator{"admin-token": admin, "worker-token": worker}
	gate := services.NewAdminGate("ADMIN@rozgaargb.pk")

	router := gin.New()
	router.Use(Language(i18n.English))
	router.POST("/admin/blogs", AuthMiddleware(auth), RequireAdmin(gate), func(c *gin.Context) {
		identity, ok := CurrentIdentity(c)
		require.True(t, ok)
		c.JSON(http.StatusCreated, gin.H{"success": true, "user": identity.Email})
	})

	tests := []struct {
		name    string
		header  string
		status  int
		message string
	}{
		{"missing header", "", http.StatusUnauthorized, i18n.T("loginRequired", i18n.English)},
		{"not bearer", "Basic abc", http.StatusUnauthorized, i18n.T("loginRequired", i18n.English)},
		{"unknown token", "Bearer nope", http.StatusUnauthorized, i18n.T("sessionExpired", i18n.English)},
		{"non admin", "Bearer worker-token", http.StatusForbidden, i18n.T("accessDenied", i18n.English)},
		{"admin", "Bearer admin-token", http.StatusCreated, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/admin/blogs", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			if tt.message != "" {
				assert.Equal(t, tt.message, decodeMessage(t, w))
			}
		})
	}
}

func TestLanguageResolution(t *testing.T) {
	router := gin.New()
	router.Use(Language(i18n.English))
	router.GET("/lang", func(c *gin.Context) {
		c.String(http.StatusOK, string(LanguageFrom(c)))
	})

	tests := []struct {
		name   string
		query  string
		cookie string
		accept string
		want   string
	}{
		{"default", "", "", "", "en"},
		{"query wins", "?lang=ur", "en", "en-US", "ur"},
		{"unknown query falls through to cookie", "?lang=fr", "ur", "", "ur"},
		{"accept language", "", "", "ur-PK,en;q=0.5", "ur"},
		{"unsupported accept language", "", "", "de-DE", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/lang"+tt.query, nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "lang", Value: tt.cookie})
			}
			if tt.accept != "" {
				req.Header.Set("Accept-Language", tt.accept)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Body.String())
			assert.Equal(t, tt.want, w.Header().Get("Content-Language"))
		})
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	router := gin.New()
	router.Use(Language(i18n.Urdu))
	router.POST("/api/v1/queries", RateLimitMiddleware(NewRateLimiter()), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})

	codes := make([]int, 0, 4)
	for i := 0; i < 4; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/queries", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		codes = append(codes, w.Code)
		if w.Code == http.StatusTooManyRequests {
			assert.Equal(t, i18n.T("tooManyRequests", i18n.Urdu), decodeMessage(t, w))
		}
	}
	assert.Equal(t, []int{201, 201, 201, 429}, codes)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/queries", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestRateLimiterCleanup(t *testing.T) {
	rl := NewRateLimiter()
	rl.GetLimiterWithConfig("k", 1, 1)
	rl.Cleanup(time.Hour)
	assert.Len(t, rl.limiters, 1)

	time.Sleep(2 * time.Millisecond)
	rl.Cleanup(time.Millisecond)
	assert.Empty(t, rl.limiters)
}

func TestInputValidationMiddleware(t *testing.T) {
	router := gin.New()
	router.Use(InputValidationMiddleware())
	router.POST("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("a=b"))
	req.Header.Set("Content-Type", "text/plain")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{}"))
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRecoveryReturnsLocalizedError(t *testing.T) {
	router := gin.New()
	router.Use(Language(i18n.English), Recovery(zap.NewNop()), RequestLogger(zap.NewNop()))
	router.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, i18n.T("error", i18n.English), decodeMessage(t, w))
}

func TestSecurityHeaders(t *testing.T) {
	router := gin.New()
	router.Use(SecurityHeadersMiddleware())
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
}
