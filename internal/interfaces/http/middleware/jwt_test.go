package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bizledger/backend/internal/infrastructure/auth"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestJWTService(ttl time.Duration) *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		Secret:   "test-secret",
		Issuer:   "test",
		TokenTTL: ttl,
	})
}

func newAuthedRouter(jwtService *auth.JWTService) *gin.Engine {
	router := gin.New()
	router.Use(JWTAuthMiddleware(jwtService))
	router.GET("/api/v1/customers", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"tenant_id": GetJWTTenantID(c),
			"user_id":   GetJWTUserID(c),
			"role":      GetJWTRole(c),
		})
	})
	router.POST("/api/v1/auth/login", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestJWTAuthMiddleware(t *testing.T) {
	jwtService := newTestJWTService(time.Hour)

	t.Run("allows skip paths without a token", func(t *testing.T) {
		router := newAuthedRouter(jwtService)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/v1/auth/login", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rejects request without authorization header", func(t *testing.T) {
		router := newAuthedRouter(jwtService)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api/v1/customers", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "ERR_TOKEN_INVALID")
	})

	t.Run("rejects malformed authorization header", func(t *testing.T) {
		router := newAuthedRouter(jwtService)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api/v1/customers", nil)
		req.Header.Set(AuthHeaderKey, "Basic abc123")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects expired token", func(t *testing.T) {
		expiredService := newTestJWTService(-time.Minute)
		token, err := expiredService.GenerateToken(auth.GenerateTokenInput{
			TenantID: uuid.New(),
			UserID:   uuid.New(),
			Email:    "rohan@mehta.example",
			Role:     "ADMIN",
		})
		require.NoError(t, err)

		router := newAuthedRouter(jwtService)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api/v1/customers", nil)
		req.Header.Set(AuthHeaderKey, BearerPrefix+token.AccessToken)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "ERR_TOKEN_EXPIRED")
	})

	t.Run("stores claims in context for a valid token", func(t *testing.T) {
		tenantID := uuid.New()
		userID := uuid.New()
		token, err := jwtService.GenerateToken(auth.GenerateTokenInput{
			TenantID: tenantID,
			UserID:   userID,
			Email:    "rohan@mehta.example",
			Role:     "ADMIN",
		})
		require.NoError(t, err)

		router := newAuthedRouter(jwtService)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api/v1/customers", nil)
		req.Header.Set(AuthHeaderKey, BearerPrefix+token.AccessToken)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), tenantID.String())
		assert.Contains(t, w.Body.String(), userID.String())
		assert.Contains(t, w.Body.String(), "ADMIN")
	})
}

func TestRequireRoles(t *testing.T) {
	newRouter := func(role string) *gin.Engine {
		router := gin.New()
		router.Use(func(c *gin.Context) {
			if role != "" {
				c.Set(JWTRoleKey, role)
				c.Set(JWTUserIDKey, uuid.NewString())
			}
			c.Next()
		})
		router.GET("/users", RequireRoles("ADMIN", "SUPER_ADMIN"), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})
		return router
	}

	t.Run("allows a listed role", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/users", nil)
		newRouter("ADMIN").ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rejects an unlisted role", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/users", nil)
		newRouter("USER").ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "ERR_FORBIDDEN")
	})

	t.Run("rejects when no claims are present", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/users", nil)
		newRouter("").ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestRateLimiter(t *testing.T) {
	limiter := NewRateLimiter(2, time.Minute)

	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.False(t, limiter.Allow("10.0.0.1"))

	// Other clients are unaffected
	assert.True(t, limiter.Allow("10.0.0.2"))
}

func TestRateLimitMiddleware(t *testing.T) {
	limiter := NewRateLimiter(1, time.Minute)

	router := gin.New()
	router.Use(RateLimit(limiter))
	router.GET("/", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "1", w.Header().Get("X-RateLimit-Limit"))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "ERR_RATE_LIMITED")
}

func TestBodyLimit(t *testing.T) {
	router := gin.New()
	router.Use(BodyLimit(8))
	router.POST("/", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/", nil)
	req.ContentLength = 64
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}
