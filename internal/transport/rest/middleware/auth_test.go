package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hsemanager/internal/service"
)

func setup(t *testing.T) (*AuthMiddleware, *service.AuthService) {
	t.Helper()
	t.Setenv("HSE_USERNAME", "admin")
	t.Setenv("HSE_PASSWORD", "secret")
	t.Setenv("JWT_SECRET", "test-secret")
	authSvc := service.NewAuthService()
	return NewAuthMiddleware(authSvc), authSvc
}

func TestRequireUserAcceptsValidToken(t *testing.T) {
	mw, authSvc := setup(t)

	login, err := authSvc.Login("admin", "secret")
	require.NoError(t, err)

	var gotUserID, gotUsername string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = GetUserID(r.Context())
		gotUsername = GetUsername(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/projects", nil)
	req.Header.Set("Authorization", "Bearer "+login.Token)
	rec := httptest.NewRecorder()
	mw.RequireUser(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, login.UserID, gotUserID)
	assert.Equal(t, "admin", gotUsername)
}

func TestRequireUserRejectsMissingHeader(t *testing.T) {
	mw, _ := setup(t)

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

	req := httptest.NewRequest(http.MethodGet, "/v1/projects", nil)
	rec := httptest.NewRecorder()
	mw.RequireUser(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestRequireUserRejectsGarbageToken(t *testing.T) {
	mw, _ := setup(t)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/v1/projects", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	rec := httptest.NewRecorder()
	mw.RequireUser(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
