package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Kim-Emmanuel/granger/internal/service"
	"github.com/Kim-Emmanuel/granger/pkg/errors"
	"github.com/Kim-Emmanuel/granger/pkg/logger"
)

// sessionHeader carries the page-load session id; all analytics state that is
// per-session (geo guard, cached coordinates) keys off it
const sessionHeader = "X-Session-ID"

// AnalyticsHandler handles analytics tracking and the dashboard snapshot
type AnalyticsHandler struct {
	analytics service.AnalyticsService
	log       *logger.Logger
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analytics service.AnalyticsService, log *logger.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics, log: log}
}

// RegisterRoutes registers the public tracking routes
func (h *AnalyticsHandler) RegisterRoutes(r chi.Router) {
	r.Route("/analytics", func(r chi.Router) {
		r.Post("/event", h.TrackEvent)
		r.Post("/section", h.TrackSectionView)
		r.Post("/button", h.TrackButtonClick)
		r.Post("/geo", h.DetectCountry)
		r.Post("/location", h.SetLocation)
	})
}

// EventRequest is a free-form tracked event
type EventRequest struct {
	Name string                 `json:"name"`
	Data map[string]interface{} `json:"data,omitempty"`
}

// TrackEvent handles POST /api/analytics/event
func (h *AnalyticsHandler) TrackEvent(w http.ResponseWriter, r *http.Request) {
	var req EventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.NewValidationError("Invalid request body", nil), h.log)
		return
	}
	if req.Name == "" {
		writeError(w, errors.NewValidationError("Event name is required", nil), h.log)
		return
	}

	event := h.analytics.TrackEvent(r.Context(), sessionID(r), req.Name, req.Data)
	writeData(w, http.StatusAccepted, event, h.log)
}

// SectionViewRequest names the viewed page section
type SectionViewRequest struct {
	Section string `json:"section"`
}

// TrackSectionView handles POST /api/analytics/section
func (h *AnalyticsHandler) TrackSectionView(w http.ResponseWriter, r *http.Request) {
	var req SectionViewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.NewValidationError("Invalid request body", nil), h.log)
		return
	}
	if req.Section == "" {
		writeError(w, errors.NewValidationError("Section is required", nil), h.log)
		return
	}

	h.analytics.TrackSectionView(r.Context(), sessionID(r), req.Section)
	writeMessage(w, http.StatusAccepted, "Section view recorded", h.log)
}

// ButtonClickRequest identifies the clicked button
type ButtonClickRequest struct {
	Label    string `json:"label"`
	Location string `json:"location"`
}

// TrackButtonClick handles POST /api/analytics/button
func (h *AnalyticsHandler) TrackButtonClick(w http.ResponseWriter, r *http.Request) {
	var req ButtonClickRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.NewValidationError("Invalid request body", nil), h.log)
		return
	}
	if req.Label == "" || req.Location == "" {
		writeError(w, errors.NewValidationError("Label and location are required", nil), h.log)
		return
	}

	h.analytics.TrackButtonClick(r.Context(), sessionID(r), req.Label, req.Location)
	writeMessage(w, http.StatusAccepted, "Button click recorded", h.log)
}

// GeoRequest carries the browser's resolved timezone
type GeoRequest struct {
	Timezone string `json:"timezone"`
}

// GeoResponse reports the attributed bucket
type GeoResponse struct {
	Country string `json:"country"`
}

// DetectCountry handles POST /api/analytics/geo
func (h *AnalyticsHandler) DetectCountry(w http.ResponseWriter, r *http.Request) {
	var req GeoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.NewValidationError("Invalid request body", nil), h.log)
		return
	}

	bucket := h.analytics.DetectCountry(r.Context(), sessionID(r), req.Timezone)
	writeData(w, http.StatusOK, GeoResponse{Country: bucket}, h.log)
}

// LocationRequest carries permission-granted device coordinates
type LocationRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// SetLocation handles POST /api/analytics/location
func (h *AnalyticsHandler) SetLocation(w http.ResponseWriter, r *http.Request) {
	var req LocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.NewValidationError("Invalid request body", nil), h.log)
		return
	}

	h.analytics.SetLocation(sessionID(r), req.Latitude, req.Longitude)
	writeMessage(w, http.StatusAccepted, "Location cached", h.log)
}

// GetSnapshot handles GET /api/admin/analytics; the dashboard polls it every
// few seconds
func (h *AnalyticsHandler) GetSnapshot(w http.ResponseWriter, r *http.Request) {
	writeData(w, http.StatusOK, h.analytics.Snapshot(), h.log)
}

// sessionID extracts the page-load session id, defaulting for clients that
// never send one
func sessionID(r *http.Request) string {
	if id := r.Header.Get(sessionHeader); id != "" {
		return id
	}
	return "anonymous"
}
