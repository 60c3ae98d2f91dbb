package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		wantType   ErrorType
		wantStatus int
	}{
		{name: "validation", err: NewValidationError("bad input", nil), wantType: ErrorTypeValidation, wantStatus: http.StatusBadRequest},
		{name: "authentication", err: NewAuthenticationError("nope"), wantType: ErrorTypeAuthentication, wantStatus: http.StatusUnauthorized},
		{name: "not found", err: NewNotFoundError("missing"), wantType: ErrorTypeNotFound, wantStatus: http.StatusNotFound},
		{name: "internal", err: NewInternalError("boom", nil), wantType: ErrorTypeInternal, wantStatus: http.StatusInternalServerError},
		{name: "external", err: NewExternalError("upstream down", nil), wantType: ErrorTypeExternal, wantStatus: http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantType, tt.err.Type)
			assert.Equal(t, tt.wantStatus, tt.err.StatusCode)
		})
	}
}

func TestAppError_ErrorAndUnwrap(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := NewInternalError("redis unavailable", cause)

	assert.Equal(t, "internal: redis unavailable (connection refused)", err.Error())
	assert.Equal(t, cause, err.Unwrap())

	plain := NewNotFoundError("content item not found")
	assert.Equal(t, "not_found: content item not found", plain.Error())
	assert.Nil(t, plain.Unwrap())
}

func TestValidationDetails(t *testing.T) {
	err := NewValidationError("unknown content kind", map[string]interface{}{"kind": "banners"})
	assert.Equal(t, "banners", err.Details["kind"])
}
