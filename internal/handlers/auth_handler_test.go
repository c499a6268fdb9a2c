package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/tuanngo/portfolio-api/internal/auth"
	"github.com/tuanngo/portfolio-api/internal/middleware"
	"github.com/tuanngo/portfolio-api/internal/models"
	"github.com/tuanngo/portfolio-api/internal/store"
)

// memUserStore backs the auth routes in tests; it satisfies both the
// handler's UserStore and the resolver's UserFinder.
type memUserStore struct {
	users map[primitive.ObjectID]*models.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: make(map[primitive.ObjectID]*models.User)}
}

func (m *memUserStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	user, ok := m.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	copied := *user
	copied.Password = ""
	return &copied, nil
}

func (m *memUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range m.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *memUserStore) Insert(_ context.Context, user *models.User) error {
	for _, existing := range m.users {
		if existing.Email == user.Email {
			return mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000}}}
		}
	}
	copied := *user
	m.users[user.ID] = &copied
	return nil
}

func (m *memUserStore) add(t *testing.T, email, password, role string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	user := &models.User{
		ID:       primitive.NewObjectID(),
		FullName: "Nguyễn Văn A",
		Email:    email,
		Password: string(hash),
		Role:     role,
	}
	m.users[user.ID] = user
	return user
}

const testTokenTTL = 7 * 24 * time.Hour

func newTestRouter(users *memUserStore) (*gin.Engine, *auth.TokenCodec) {
	gin.SetMode(gin.TestMode)
	codec := auth.NewTokenCodec([]byte("test-secret"), testTokenTTL)
	resolver := auth.NewResolver(codec, users)
	h := NewHandler(nil, users, codec, testTokenTTL)

	r := gin.New()
	r.POST("/auth/register", h.Register)
	r.POST("/auth/login", h.Login)
	r.POST("/auth/logout", h.Logout)
	r.GET("/auth/me", middleware.RequireAuth(resolver), h.Me)
	r.GET("/api/admin-only", middleware.RequireAdmin(resolver), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r, codec
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func tokenCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == auth.CookieName {
			return cookie
		}
	}
	return nil
}

func TestLogin_Success(t *testing.T) {
	users := newMemUserStore()
	users.add(t, "a@x.com", "right-password", "user")
	r, codec := newTestRouter(users)

	w := postJSON(r, "/auth/login", `{"email":"a@x.com","password":"right-password"}`)
	require.Equal(t, http.StatusOK, w.Code)

	cookie := tokenCookie(t, w)
	require.NotNil(t, cookie, "login must set the token cookie")
	assert.Equal(t, 604800, cookie.MaxAge)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)

	// The cookie carries the same token as the body, and it verifies.
	assert.Contains(t, w.Body.String(), cookie.Value)
	claims, err := codec.Verify(cookie.Value)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Email)

	// The password hash never leaves the server.
	assert.NotContains(t, w.Body.String(), "password")
}

func TestLogin_WrongPassword(t *testing.T) {
	users := newMemUserStore()
	users.add(t, "a@x.com", "right-password", "user")
	r, _ := newTestRouter(users)

	w := postJSON(r, "/auth/login", `{"email":"a@x.com","password":"wrong"}`)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Nil(t, tokenCookie(t, w), "failed login must not set a cookie")
}

func TestLogin_UnknownEmail(t *testing.T) {
	r, _ := newTestRouter(newMemUserStore())

	w := postJSON(r, "/auth/login", `{"email":"nobody@x.com","password":"whatever"}`)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Nil(t, tokenCookie(t, w))
}

func TestMe_NoCredential(t *testing.T) {
	r, _ := newTestRouter(newMemUserStore())

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Không có token xác thực"}`, w.Body.String())
}

func TestMe_ValidCookie(t *testing.T) {
	users := newMemUserStore()
	user := users.add(t, "a@x.com", "pw-is-long-enough", "user")
	r, codec := newTestRouter(users)

	tok, err := codec.Issue(user)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: tok})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "a@x.com")
}

func TestMe_DeletedSubject(t *testing.T) {
	users := newMemUserStore()
	user := users.add(t, "gone@x.com", "pw-is-long-enough", "user")
	r, codec := newTestRouter(users)

	tok, err := codec.Issue(user)
	require.NoError(t, err)
	delete(users.users, user.ID)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: tok})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminRoute_NonAdminToken(t *testing.T) {
	users := newMemUserStore()
	user := users.add(t, "user@x.com", "pw-is-long-enough", "user")
	r, codec := newTestRouter(users)

	tok, err := codec.Issue(user)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"error":"Chỉ admin mới có quyền truy cập"}`, w.Body.String())
}

func TestAdminRoute_AdminToken(t *testing.T) {
	users := newMemUserStore()
	admin := users.add(t, "admin@x.com", "pw-is-long-enough", "admin")
	r, codec := newTestRouter(users)

	tok, err := codec.Issue(admin)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
}

func TestRegister_ForcesUserRole(t *testing.T) {
	users := newMemUserStore()
	r, _ := newTestRouter(users)

	w := postJSON(r, "/auth/register", `{"fullName":"Lê Văn C","email":"c@x.com","password":"long-enough-pw","role":"admin"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	stored, err := users.FindByEmail(context.Background(), "c@x.com")
	require.NoError(t, err)
	assert.Equal(t, "user", stored.Role, "self-registration must not grant admin")
	assert.NotContains(t, w.Body.String(), stored.Password)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	users := newMemUserStore()
	users.add(t, "dup@x.com", "pw-is-long-enough", "user")
	r, _ := newTestRouter(users)

	w := postJSON(r, "/auth/register", `{"fullName":"Ai Đó","email":"dup@x.com","password":"long-enough-pw"}`)
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestLogout_ClearsCookie(t *testing.T) {
	r, _ := newTestRouter(newMemUserStore())

	w := postJSON(r, "/auth/logout", ``)
	require.Equal(t, http.StatusOK, w.Code)

	cookie := tokenCookie(t, w)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Less(t, cookie.MaxAge, 0)
}
