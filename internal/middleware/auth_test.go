package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tuanngo/portfolio-api/internal/auth"
)

type stubResolver struct {
	identities map[string]*auth.Identity
	err        error
}

func (s *stubResolver) Resolve(_ context.Context, tokenStr string) (*auth.Identity, error) {
	if s.err != nil {
		return nil, s.err
	}
	identity, ok := s.identities[tokenStr]
	if !ok {
		return nil, auth.ErrTokenInvalid
	}
	return identity, nil
}

func adminIdentity() *auth.Identity {
	return &auth.Identity{ID: primitive.NewObjectID(), Email: "admin@x.com", Role: "admin"}
}

func userIdentity() *auth.Identity {
	return &auth.Identity{ID: primitive.NewObjectID(), Email: "user@x.com", Role: "user"}
}

func newRouter(guard gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/p/:id", guard, func(c *gin.Context) {
		identity, _ := CurrentIdentity(c)
		c.JSON(http.StatusOK, gin.H{"email": identity.Email})
	})
	return r
}

func doRequest(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/p/anything", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuth_NoToken(t *testing.T) {
	r := newRouter(RequireAuth(&stubResolver{}))
	w := doRequest(r, "")

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Không có token xác thực"}`, w.Body.String())
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	r := newRouter(RequireAuth(&stubResolver{}))
	w := doRequest(r, "bad-token")

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Token không hợp lệ hoặc đã hết hạn"}`, w.Body.String())
}

func TestRequireAuth_DeletedSubject(t *testing.T) {
	r := newRouter(RequireAuth(&stubResolver{err: auth.ErrSubjectNotFound}))
	w := doRequest(r, "was-valid")

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Token không hợp lệ hoặc đã hết hạn"}`, w.Body.String())
}

func TestRequireAuth_StoreError(t *testing.T) {
	r := newRouter(RequireAuth(&stubResolver{err: errors.New("connection reset")}))
	w := doRequest(r, "any")

	require.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestRequireAuth_Success(t *testing.T) {
	identity := userIdentity()
	r := newRouter(RequireAuth(&stubResolver{identities: map[string]*auth.Identity{"ok": identity}}))
	w := doRequest(r, "ok")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), identity.Email)
}

func TestRequireAdmin_NonAdmin(t *testing.T) {
	r := newRouter(RequireAdmin(&stubResolver{identities: map[string]*auth.Identity{"u": userIdentity()}}))
	w := doRequest(r, "u")

	require.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"error":"Chỉ admin mới có quyền truy cập"}`, w.Body.String())
}

func TestRequireAdmin_Admin(t *testing.T) {
	r := newRouter(RequireAdmin(&stubResolver{identities: map[string]*auth.Identity{"a": adminIdentity()}}))
	w := doRequest(r, "a")

	require.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAdmin_PropagatesAuthFailure(t *testing.T) {
	r := newRouter(RequireAdmin(&stubResolver{}))
	w := doRequest(r, "")

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Không có token xác thực"}`, w.Body.String())
}

func TestRequireOwnerOrAdmin(t *testing.T) {
	owner := userIdentity()
	admin := adminIdentity()
	other := userIdentity()
	resolver := &stubResolver{identities: map[string]*auth.Identity{
		"owner": owner,
		"admin": admin,
		"other": other,
	}}

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/users/:id", RequireOwnerOrAdmin(resolver, "id"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	cases := []struct {
		name  string
		token string
		want  int
	}{
		{"owner granted", "owner", http.StatusOK},
		{"admin granted", "admin", http.StatusOK},
		{"other user denied", "other", http.StatusForbidden},
		{"no token", "", http.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/users/"+owner.ID.Hex(), nil)
			if tc.token != "" {
				req.Header.Set("Authorization", "Bearer "+tc.token)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			require.Equal(t, tc.want, w.Code)
		})
	}
}
