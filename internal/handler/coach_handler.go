package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Kim-Emmanuel/granger/internal/domain"
	"github.com/Kim-Emmanuel/granger/internal/service"
	"github.com/Kim-Emmanuel/granger/pkg/errors"
	"github.com/Kim-Emmanuel/granger/pkg/logger"
)

// CoachHandler handles the AI coach endpoints. These never return an error
// state for upstream failures: the service substitutes fallback copy.
type CoachHandler struct {
	coach service.CoachService
	log   *logger.Logger
}

// NewCoachHandler creates a new coach handler
func NewCoachHandler(coach service.CoachService, log *logger.Logger) *CoachHandler {
	return &CoachHandler{coach: coach, log: log}
}

// RegisterRoutes registers the coach routes
func (h *CoachHandler) RegisterRoutes(r chi.Router) {
	r.Route("/coach", func(r chi.Router) {
		r.Get("/challenge", h.DailyChallenge)
		r.Post("/advice", h.FitnessAdvice)
		r.Post("/chat", h.CreateChat)
		r.Post("/chat/{chatID}/message", h.SendMessage)
	})
}

// TextResponse carries a single generated text
type TextResponse struct {
	Text string `json:"text"`
}

// DailyChallenge handles GET /api/coach/challenge
func (h *CoachHandler) DailyChallenge(w http.ResponseWriter, r *http.Request) {
	writeData(w, http.StatusOK, TextResponse{Text: h.coach.DailyChallenge(r.Context())}, h.log)
}

// AdviceRequest carries the live stats shown on the tracking card
type AdviceRequest struct {
	Stats []domain.ActivityStat `json:"stats"`
}

// FitnessAdvice handles POST /api/coach/advice
func (h *CoachHandler) FitnessAdvice(w http.ResponseWriter, r *http.Request) {
	var req AdviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.NewValidationError("Invalid request body", nil), h.log)
		return
	}

	writeData(w, http.StatusOK, TextResponse{Text: h.coach.FitnessAdvice(r.Context(), req.Stats)}, h.log)
}

// CreateChatRequest seeds a coach conversation with live stats
type CreateChatRequest struct {
	Stats []domain.ActivityStat `json:"stats"`
}

// CreateChat handles POST /api/coach/chat
func (h *CoachHandler) CreateChat(w http.ResponseWriter, r *http.Request) {
	var req CreateChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.NewValidationError("Invalid request body", nil), h.log)
		return
	}

	id := h.coach.CreateChat(req.Stats)
	writeData(w, http.StatusCreated, domain.ChatSession{ID: id}, h.log)
}

// MessageRequest is one user chat turn
type MessageRequest struct {
	Message string `json:"message"`
}

// SendMessage handles POST /api/coach/chat/{chatID}/message
func (h *CoachHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	chatID := chi.URLParam(r, "chatID")

	var req MessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.NewValidationError("Invalid request body", nil), h.log)
		return
	}
	if req.Message == "" {
		writeError(w, errors.NewValidationError("Message is required", nil), h.log)
		return
	}

	reply, err := h.coach.SendMessage(r.Context(), chatID, req.Message)
	if err != nil {
		writeError(w, err, h.log)
		return
	}

	writeData(w, http.StatusOK, domain.ChatReply{Reply: reply}, h.log)
}
