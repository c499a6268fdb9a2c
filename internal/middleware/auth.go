package middleware

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tuanngo/portfolio-api/internal/auth"
)

// Context keys set for handlers once a guard admits a request.
const (
	IdentityKey = "identity"
	UserIDKey   = "userID"
	UserRoleKey = "userRole"
)

const (
	msgNoToken      = "Không có token xác thực"
	msgInvalidToken = "Token không hợp lệ hoặc đã hết hạn"
	msgAdminOnly    = "Chỉ admin mới có quyền truy cập"
	msgNotOwner     = "Bạn không có quyền thực hiện thao tác này"
)

// IdentityResolver maps a raw token to a resolved identity.
type IdentityResolver interface {
	Resolve(ctx context.Context, tokenStr string) (*auth.Identity, error)
}

// authenticate runs the shared extract-and-resolve step. On failure it has
// already written the terminal response and returns ok=false; the caller
// must not touch the context further.
func authenticate(c *gin.Context, r IdentityResolver) (*auth.Identity, bool) {
	tokenStr, ok := auth.ExtractToken(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msgNoToken})
		return nil, false
	}

	identity, err := r.Resolve(c.Request.Context(), tokenStr)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrTokenExpired),
			errors.Is(err, auth.ErrTokenInvalid),
			errors.Is(err, auth.ErrSubjectNotFound):
			// All credential failures collapse to one generic denial.
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msgInvalidToken})
		default:
			log.Printf("identity resolution failed: %v", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return nil, false
	}

	c.Set(IdentityKey, identity)
	c.Set(UserIDKey, identity.ID.Hex())
	c.Set(UserRoleKey, identity.Role)
	return identity, true
}

// RequireAuth admits any request with a resolvable credential.
func RequireAuth(r IdentityResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := authenticate(c, r); !ok {
			return
		}
		c.Next()
	}
}

// RequireAdmin admits only callers whose current role is admin.
func RequireAdmin(r IdentityResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := authenticate(c, r)
		if !ok {
			return
		}
		if !identity.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": msgAdminOnly})
			return
		}
		c.Next()
	}
}

// RequireOwnerOrAdmin admits admins, plus the caller whose own id matches
// the named route parameter.
func RequireOwnerOrAdmin(r IdentityResolver, param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := authenticate(c, r)
		if !ok {
			return
		}
		if !identity.IsAdmin() && identity.ID.Hex() != c.Param(param) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": msgNotOwner})
			return
		}
		c.Next()
	}
}

// CurrentIdentity reads the identity a guard stored for this request.
func CurrentIdentity(c *gin.Context) (*auth.Identity, bool) {
	v, ok := c.Get(IdentityKey)
	if !ok {
		return nil, false
	}
	identity, ok := v.(*auth.Identity)
	return identity, ok
}
