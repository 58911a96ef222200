package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hsemanager/internal/model"
	"hsemanager/internal/service"
)

func newAuthService(t *testing.T) *service.AuthService {
	t.Helper()
	t.Setenv("HSE_USERNAME", "admin")
	t.Setenv("HSE_PASSWORD", "secret")
	t.Setenv("JWT_SECRET", "test-secret")
	return service.NewAuthService()
}

func TestLogin(t *testing.T) {
	h := NewAuthHandler(newAuthService(t))

	req := httptest.NewRequest(http.MethodPost, "/v1/auth/login",
		strings.NewReader(`{"username":"admin","password":"secret"}`))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp model.LoginResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "admin", resp.Username)
	assert.True(t, strings.HasPrefix(resp.UserID, "user_"))
}

func TestLoginBadCredentials(t *testing.T) {
	h := NewAuthHandler(newAuthService(t))

	req := httptest.NewRequest(http.MethodPost, "/v1/auth/login",
		strings.NewReader(`{"username":"admin","password":"wrong"}`))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginMalformedBody(t *testing.T) {
	h := NewAuthHandler(newAuthService(t))

	req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", strings.NewReader(`{`))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func catalogueRouter() *mux.Router {
	h := NewRegwatchHandler(nil)
	r := mux.NewRouter()
	r.HandleFunc("/v1/regwatch/{variant}/catalogue", h.GetCatalogue).Methods("GET")
	return r
}

func TestGetCatalogueLocalized(t *testing.T) {
	r := catalogueRouter()

	req := httptest.NewRequest(http.MethodGet, "/v1/regwatch/labor/catalogue?lang=en", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var view catalogueView
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&view))
	assert.Equal(t, model.VariantLabor, view.Variant)
	assert.Equal(t, "labor-v2", view.SchemaVersion)
	require.NotEmpty(t, view.Sections)
	assert.Equal(t, "Workplace hygiene", view.Sections[0].Title)
	require.NotEmpty(t, view.Sections[0].Chapters)
	require.NotEmpty(t, view.Sections[0].Chapters[0].Articles)
	assert.Equal(t, "281", view.Sections[0].Chapters[0].Articles[0].ID)
}

func TestGetCatalogueDefaultsToFrench(t *testing.T) {
	r := catalogueRouter()

	req := httptest.NewRequest(http.MethodGet, "/v1/regwatch/labor/catalogue", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var view catalogueView
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&view))
	assert.Equal(t, "Hygiène des locaux de travail", view.Sections[0].Title)
}

func TestGetCatalogueUnknownVariant(t *testing.T) {
	r := catalogueRouter()

	req := httptest.NewRequest(http.MethodGet, "/v1/regwatch/nuclear/catalogue", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
