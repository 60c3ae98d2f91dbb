package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Kim-Emmanuel/granger/internal/service"
	"github.com/Kim-Emmanuel/granger/pkg/errors"
	"github.com/Kim-Emmanuel/granger/pkg/logger"
)

// ContextKey represents keys used in request context
type ContextKey string

const (
	// RequestIDContextKey is the key for the request ID in context
	RequestIDContextKey ContextKey = "request_id"
)

// AdminAuth guards the operator surface: it requires a Bearer token issued by
// the auth service's Login
func AdminAuth(authService service.AuthService, log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeAuthError(w, errors.NewAuthenticationError("Authorization header is required"), log)
				return
			}

			if !strings.HasPrefix(authHeader, "Bearer ") {
				writeAuthError(w, errors.NewAuthenticationError("Invalid authorization header format"), log)
				return
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")
			if token == "" {
				writeAuthError(w, errors.NewAuthenticationError("Token is required"), log)
				return
			}

			if err := authService.Validate(token); err != nil {
				log.WithError(err).Warn("Operator token validation failed")
				writeAuthError(w, errors.NewAuthenticationError("Invalid or expired token"), log)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequestID attaches a unique id to each request for log correlation
func RequestID(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := uuid.NewString()

			ctx := context.WithValue(r.Context(), RequestIDContextKey, requestID)
			w.Header().Set("X-Request-ID", requestID)

			start := time.Now()
			next.ServeHTTP(w, r.WithContext(ctx))

			log.WithFields(map[string]interface{}{
				"request_id": requestID,
				"method":     r.Method,
				"path":       r.URL.Path,
				"duration":   time.Since(start),
			}).Debug("Request handled")
		})
	}
}

func writeAuthError(w http.ResponseWriter, appErr *errors.AppError, log *logger.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.StatusCode)

	resp := map[string]interface{}{
		"success": false,
		"error": map[string]interface{}{
			"type":    appErr.Type,
			"message": appErr.Message,
		},
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.WithError(err).Error("Failed to encode auth error response")
	}
}
