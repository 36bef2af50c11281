package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"tabletalk/internal/service"
)

// RecapHandler serves game summaries and recap sharing
type RecapHandler struct {
	recapService *service.RecapService
	emailService *service.EmailService
}

// NewRecapHandler creates a new recap handler
func NewRecapHandler(recapService *service.RecapService, emailService *service.EmailService) *RecapHandler {
	return &RecapHandler{
		recapService: recapService,
		emailService: emailService,
	}
}

// GetRecap returns the aggregate game summary as JSON
func (h *RecapHandler) GetRecap(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.recapService.BuildRecap())
}

// GetRecapText returns the shareable plain-text recap
func (h *RecapHandler) GetRecapText(w http.ResponseWriter, r *http.Request) {
	recap := h.recapService.BuildRecap()
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(h.recapService.RenderText(recap)))
}

type emailRecapRequest struct {
	Email string `json:"email"`
}

// EmailRecap sends the plain-text recap to the given address
func (h *RecapHandler) EmailRecap(w http.ResponseWriter, r *http.Request) {
	var req emailRecapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", err)
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		http.Error(w, "a valid email address is required", http.StatusBadRequest)
		return
	}

	if !h.emailService.IsEnabled() {
		http.Error(w, "email sending is not configured", http.StatusServiceUnavailable)
		return
	}

	recap := h.recapService.BuildRecap()
	text := h.recapService.RenderText(recap)
	if err := h.emailService.SendRecapEmail(r.Context(), req.Email, text); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to send recap email", "", err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"status": "sent"})
}
