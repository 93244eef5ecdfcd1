package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amoylab/phongtro/internal/apiserver/database"
	"github.com/amoylab/phongtro/internal/auth/jwt"
	"github.com/amoylab/phongtro/internal/common/cnst"
	"github.com/amoylab/phongtro/internal/common/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func init() {
	gin.SetMode(gin.TestMode)
}

func newJWT(t *testing.T) *jwt.Service {
	t.Helper()
	svc, err := jwt.NewService(config.JWTConfig{SecretKey: testSecret, Duration: time.Hour})
	require.NoError(t, err)
	return svc
}

func TestJWTAuthMiddleware(t *testing.T) {
	svc := newJWT(t)
	r := gin.New()
	r.GET("/me", JWTAuthMiddleware(svc), func(c *gin.Context) {
		actor, ok := Actor(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"id": actor.UserID, "role": actor.Role})
	})

	token, err := svc.GenerateToken(7, "a@example.com", "tenant")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing", "", http.StatusUnauthorized},
		{"malformed", "Token abc", http.StatusUnauthorized},
		{"bad token", "Bearer abc", http.StatusUnauthorized},
		{"valid", "Bearer " + token, http.StatusOK},
		{"lowercase scheme", "bearer " + token, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code)
			if tt.want == http.StatusOK {
				assert.JSONEq(t, `{"id":7,"role":"tenant"}`, w.Body.String())
			} else {
				assert.Contains(t, w.Body.String(), `"message"`)
			}
		})
	}
}

func TestOptionalAuth(t *testing.T) {
	svc := newJWT(t)
	r := gin.New()
	r.GET("/signup", OptionalAuth(svc), func(c *gin.Context) {
		actor, ok := Actor(c)
		c.JSON(http.StatusOK, gin.H{"ok": ok, "id": actor.UserID})
	})

	token, err := svc.GenerateToken(3, "admin@example.com", "admin")
	require.NoError(t, err)

	for header, want := range map[string]string{
		"":                `{"ok":false,"id":0}`,
		"Bearer garbage":  `{"ok":false,"id":0}`,
		"Bearer " + token: `{"ok":true,"id":3}`,
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/signup", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, want, w.Body.String())
	}
}

func TestRequireRoles(t *testing.T) {
	svc := newJWT(t)
	r := gin.New()
	r.GET("/console", JWTAuthMiddleware(svc), RequireRoles(database.RoleAdmin, database.RoleStaff), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	for role, want := range map[string]int{"admin": http.StatusNoContent, "staff": http.StatusNoContent, "tenant": http.StatusForbidden} {
		token, err := svc.GenerateToken(1, "x@example.com", role)
		require.NoError(t, err)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/console", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)
		assert.Equal(t, want, w.Code, role)
	}

	bare := gin.New()
	bare.GET("/", RequireRoles(database.RoleAdmin), func(c *gin.Context) { c.Status(http.StatusNoContent) })
	w := httptest.NewRecorder()
	bare.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLang(t *testing.T) {
	r := gin.New()
	r.Use(Lang())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(cnst.XLang)) })

	tests := map[string]map[string]string{
		"vi": {},
		"en": {"Accept-Language": "en-US,en;q=0.9"},
	}
	for want, headers := range tests {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		for k, v := range headers {
			req.Header.Set(k, v)
		}
		r.ServeHTTP(w, req)
		assert.Equal(t, want, w.Body.String())
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(cnst.XLang, "en")
	req.Header.Set("Accept-Language", "vi")
	r.ServeHTTP(w, req)
	assert.Equal(t, "en", w.Body.String())
}

func TestRequestIDAndLogger(t *testing.T) {
	base := zap.NewNop()
	r := gin.New()
	r.Use(RequestID(base), RequestLogger(base))
	r.GET("/", func(c *gin.Context) {
		assert.NotSame(t, base, Logger(c, base))
		c.String(http.StatusOK, c.GetString(cnst.XRequestID))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Len(t, w.Body.String(), 36)
	assert.Equal(t, w.Body.String(), w.Header().Get(cnst.XRequestID))

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(cnst.XRequestID, "abc-123")
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Body.String())

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Same(t, base, Logger(c, base))
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(Recovery(zap.NewNop()))
	r.GET("/", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"message"`)
}

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(CORS(&config.CORSConfig{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST"},
		AllowCredentials: true,
	}))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, POST", w.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://evil.example")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
