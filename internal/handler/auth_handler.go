package handler

import (
	"encoding/json"
	"net/http"

	"github.com/Kim-Emmanuel/granger/internal/service"
	"github.com/Kim-Emmanuel/granger/pkg/errors"
	"github.com/Kim-Emmanuel/granger/pkg/logger"
)

// AuthHandler handles operator login for the CMS dashboard
type AuthHandler struct {
	auth service.AuthService
	log  *logger.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(auth service.AuthService, log *logger.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, log: log}
}

// LoginRequest carries the operator password
type LoginRequest struct {
	Password string `json:"password"`
}

// LoginResponse carries the issued token
type LoginResponse struct {
	Token string `json:"token"`
}

// Login handles POST /api/admin/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.NewValidationError("Invalid request body", nil), h.log)
		return
	}

	token, err := h.auth.Login(req.Password)
	if err != nil {
		writeError(w, err, h.log)
		return
	}

	writeData(w, http.StatusOK, LoginResponse{Token: token}, h.log)
}
