package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"buildconnect/internal/domain"
	"buildconnect/internal/pkg/apperr"
	"buildconnect/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// tokenAuth resolves tokens against a fixed user table.
type tokenAuth struct {
	jwt   *jwt.Service
	users map[string]*domain.User
}

func (a *tokenAuth) Authenticate(_ context.Context, token string) (*domain.User, error) {
	claims, err := a.jwt.ValidateToken(token)
	if errors.Is(err, jwt.ErrTokenExpired) {
		return nil, apperr.Authentication("TOKEN_EXPIRED", "Token has expired")
	}
	if err != nil {
		return nil, apperr.Authentication("INVALID_TOKEN", "Invalid token")
	}
	u, ok := a.users[claims.UserID]
	if !ok {
		return nil, apperr.Authentication("INVALID_TOKEN", "Invalid token")
	}
	return u, nil
}

func init() {
	gin.SetMode(gin.TestMode)
}

func newTokenAuth(secret string) *tokenAuth {
	return &tokenAuth{
		jwt: jwt.New(secret, time.Hour),
		users: map[string]*domain.User{
			"u-42": {ID: "u-42", Email: "v@example.com", Role: domain.RoleVendor},
		},
	}
}

func serve(router *gin.Engine, header string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestJWTAuth_ValidTokenUsesStoredRole(t *testing.T) {
	auth := newTokenAuth("test-secret-123")
	// Token was issued while the user was still a customer.
	token, err := auth.jwt.GenerateToken("u-42", "v@example.com", "customer")
	require.NoError(t, err)

	router := gin.New()
	router.Use(JWTAuth(auth))
	router.GET("/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": UserID(c), "role": Role(c)})
	})

	w := serve(router, "Bearer "+token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "u-42")
	assert.Contains(t, w.Body.String(), "vendor")
}

func TestJWTAuth_Rejections(t *testing.T) {
	auth := newTokenAuth("secret")
	foreign, err := jwt.New("other-secret", time.Hour).GenerateToken("u-42", "v@example.com", "vendor")
	require.NoError(t, err)
	ghost, err := auth.jwt.GenerateToken("u-missing", "x@example.com", "customer")
	require.NoError(t, err)

	cases := []struct {
		name   string
		header string
		code   string
	}{
		{"no header", "", "AUTH_HEADER_MISSING"},
		{"basic scheme", "Basic dGVzdA==", "INVALID_AUTH_FORMAT"},
		{"bearer without token", "Bearer ", "INVALID_AUTH_FORMAT"},
		{"garbage", "Bearer invalid-jwt-here", "INVALID_TOKEN"},
		{"wrong secret", "Bearer " + foreign, "INVALID_TOKEN"},
		{"unknown user", "Bearer " + ghost, "INVALID_TOKEN"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := gin.New()
			router.Use(JWTAuth(auth))
			router.GET("/protected", func(c *gin.Context) {
				t.Fatal("handler should not be reached")
			})

			w := serve(router, tc.header)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), tc.code)
		})
	}
}

func TestRequireRole(t *testing.T) {
	auth := newTokenAuth("secret")
	token, err := auth.jwt.GenerateToken("u-42", "v@example.com", "vendor")
	require.NoError(t, err)

	router := gin.New()
	router.Use(JWTAuth(auth))
	router.GET("/protected", AdminOnly(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	router.GET("/vendor", VendorOnly(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := serve(router, "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "FORBIDDEN")

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/vendor", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimiter_BlocksAfterBurst(t *testing.T) {
	rl := NewRateLimiter(2, zap.NewNop())

	router := gin.New()
	router.GET("/protected", rl.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	assert.Equal(t, http.StatusOK, serve(router, "").Code)
	assert.Equal(t, http.StatusOK, serve(router, "").Code)

	w := serve(router, "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "RATE_LIMITED")
}

func TestRateLimiter_EvictsIdleClients(t *testing.T) {
	rl := NewRateLimiter(1, zap.NewNop())
	clock := time.Now()
	rl.now = func() time.Time { return clock }

	assert.True(t, rl.limiter("10.0.0.1").Allow())
	assert.False(t, rl.limiter("10.0.0.1").Allow())
	assert.Equal(t, 1, rl.size())

	clock = clock.Add(limiterIdleTTL)
	rl.limiter("10.0.0.2")

	assert.Equal(t, 1, rl.size())
	assert.True(t, rl.limiter("10.0.0.1").Allow(), "evicted client starts with a fresh bucket")
	assert.Equal(t, 2, rl.size())
}

func TestRateLimiter_KeepsActiveClients(t *testing.T) {
	rl := NewRateLimiter(5, zap.NewNop())
	clock := time.Now()
	rl.now = func() time.Time { return clock }

	rl.limiter("10.0.0.1")
	clock = clock.Add(limiterIdleTTL / 2)
	rl.limiter("10.0.0.1")
	clock = clock.Add(limiterIdleTTL / 2)
	rl.limiter("10.0.0.2")

	assert.Equal(t, 2, rl.size())
}

func TestErrorLogger_RecoversPanic(t *testing.T) {
	router := gin.New()
	router.Use(ErrorLogger(zap.NewNop()))
	router.GET("/protected", func(c *gin.Context) {
		panic("boom")
	})

	w := serve(router, "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "INTERNAL_ERROR")
}
