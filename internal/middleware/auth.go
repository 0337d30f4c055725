package middleware

import (
	"context"
	"net/http"
	"strings"

	"buildconnect/internal/domain"
	"buildconnect/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	ctxUserID = "user_id"
	ctxRole   = "role"
	ctxUser   = "user"
)

// Authenticator verifies a bearer token and loads the user it names.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}

// JWTAuth rejects requests without a valid bearer token. The role stored in
// the context comes from the user record, not from the token, so a customer
// who became a vendor is treated as a vendor on the next request.
func JWTAuth(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.AbortError(c, http.StatusUnauthorized, "AUTH_HEADER_MISSING", "Authorization header is required")
			return
		}

		scheme, token, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			response.AbortError(c, http.StatusUnauthorized, "INVALID_AUTH_FORMAT", "Authorization header must be: Bearer <token>")
			return
		}

		user, err := auth.Authenticate(c.Request.Context(), strings.TrimSpace(token))
		if err != nil {
			response.FromError(c, err)
			c.Abort()
			return
		}

		c.Set(ctxUserID, user.ID)
		c.Set(ctxRole, string(user.Role))
		c.Set(ctxUser, user)
		c.Next()
	}
}

// UserID returns the authenticated user's id, empty when JWTAuth did not run.
func UserID(c *gin.Context) string {
	return c.GetString(ctxUserID)
}

func Role(c *gin.Context) domain.UserRole {
	return domain.UserRole(c.GetString(ctxRole))
}

// CurrentUser returns the user loaded by JWTAuth.
func CurrentUser(c *gin.Context) (*domain.User, bool) {
	v, ok := c.Get(ctxUser)
	if !ok {
		return nil, false
	}
	u, ok := v.(*domain.User)
	return u, ok
}
