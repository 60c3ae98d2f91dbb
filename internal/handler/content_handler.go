package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Kim-Emmanuel/granger/internal/domain"
	"github.com/Kim-Emmanuel/granger/internal/service"
	"github.com/Kim-Emmanuel/granger/pkg/errors"
	"github.com/Kim-Emmanuel/granger/pkg/logger"
)

// ContentHandler handles the page content collections. Reads are public (the
// landing page renders from them), writes sit behind operator auth.
type ContentHandler struct {
	content service.ContentService
	log     *logger.Logger
}

// NewContentHandler creates a new content handler
func NewContentHandler(content service.ContentService, log *logger.Logger) *ContentHandler {
	return &ContentHandler{content: content, log: log}
}

// List handles GET /api/content/{kind}
func (h *ContentHandler) List(w http.ResponseWriter, r *http.Request) {
	kind := domain.ContentKind(chi.URLParam(r, "kind"))

	items, err := h.content.List(kind)
	if err != nil {
		writeError(w, err, h.log)
		return
	}

	writeData(w, http.StatusOK, items, h.log)
}

// Add handles POST /api/admin/content/{kind}
func (h *ContentHandler) Add(w http.ResponseWriter, r *http.Request) {
	kind := domain.ContentKind(chi.URLParam(r, "kind"))

	var item domain.ContentItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeError(w, errors.NewValidationError("Invalid request body", nil), h.log)
		return
	}

	created, err := h.content.Add(kind, item)
	if err != nil {
		writeError(w, err, h.log)
		return
	}

	writeData(w, http.StatusCreated, created, h.log)
}

// Update handles PUT /api/admin/content/{kind}/{id}
func (h *ContentHandler) Update(w http.ResponseWriter, r *http.Request) {
	kind := domain.ContentKind(chi.URLParam(r, "kind"))

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, errors.NewValidationError("Invalid item id", nil), h.log)
		return
	}

	var patch domain.ContentItem
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, errors.NewValidationError("Invalid request body", nil), h.log)
		return
	}

	updated, err := h.content.Update(kind, id, patch)
	if err != nil {
		writeError(w, err, h.log)
		return
	}

	writeData(w, http.StatusOK, updated, h.log)
}

// Delete handles DELETE /api/admin/content/{kind}/{id}
func (h *ContentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	kind := domain.ContentKind(chi.URLParam(r, "kind"))

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, errors.NewValidationError("Invalid item id", nil), h.log)
		return
	}

	if err := h.content.Delete(kind, id); err != nil {
		writeError(w, err, h.log)
		return
	}

	writeMessage(w, http.StatusOK, "Item deleted", h.log)
}
