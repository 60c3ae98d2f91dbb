package handler

import (
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kim-Emmanuel/granger/internal/service"
	"github.com/Kim-Emmanuel/granger/pkg/logger"
)

func newAuthRouter(password, secret string) chi.Router {
	svc := service.NewAuthService(password, secret, logger.NewNop())
	h := NewAuthHandler(svc, logger.NewNop())

	r := chi.NewRouter()
	r.Post("/admin/login", h.Login)
	return r
}

func TestAuthHandler_Login(t *testing.T) {
	router := newAuthRouter("hunter2", "test-secret")

	rec, resp := doJSON(t, router, http.MethodPost, "/admin/login", `{"password":"hunter2"}`, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	data := resp.Data.(map[string]interface{})
	assert.NotEmpty(t, data["token"])

	rec, resp = doJSON(t, router, http.MethodPost, "/admin/login", `{"password":"wrong"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "authentication", string(resp.Error.Type))

	rec, _ = doJSON(t, router, http.MethodPost, "/admin/login", `not json`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthHandler_LoginUnconfigured(t *testing.T) {
	router := newAuthRouter("", "")

	rec, resp := doJSON(t, router, http.MethodPost, "/admin/login", `{"password":"anything"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	require.NotNil(t, resp.Error)
}

func TestHealthHandler_Check(t *testing.T) {
	h := NewHealthHandler(logger.NewNop())

	r := chi.NewRouter()
	r.Get("/health", h.Check)

	rec, resp := doJSON(t, r, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "ok", data["status"])
	assert.NotEmpty(t, data["uptime"])
}
