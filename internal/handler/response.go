package handler

import (
	"encoding/json"
	"net/http"

	"github.com/Kim-Emmanuel/granger/pkg/errors"
	"github.com/Kim-Emmanuel/granger/pkg/logger"
)

// ErrorBody is the error half of the JSON envelope
type ErrorBody struct {
	Type    errors.ErrorType `json:"type"`
	Message string           `json:"message"`
}

// Response is the JSON envelope every endpoint uses
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   *ErrorBody  `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload Response, log *logger.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.WithError(err).Error("Failed to encode response")
	}
}

func writeData(w http.ResponseWriter, status int, data interface{}, log *logger.Logger) {
	writeJSON(w, status, Response{Success: true, Data: data}, log)
}

func writeMessage(w http.ResponseWriter, status int, message string, log *logger.Logger) {
	writeJSON(w, status, Response{Success: true, Message: message}, log)
}

// writeError renders an error with its AppError status, falling back to 500
// for anything untyped
func writeError(w http.ResponseWriter, err error, log *logger.Logger) {
	appErr, ok := err.(*errors.AppError)
	if !ok {
		appErr = errors.NewInternalError("Internal server error", err)
	}

	writeJSON(w, appErr.StatusCode, Response{
		Success: false,
		Error:   &ErrorBody{Type: appErr.Type, Message: appErr.Message},
	}, log)
}
