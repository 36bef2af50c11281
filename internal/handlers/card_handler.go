package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"tabletalk/internal/models"
	"tabletalk/internal/service"
)

// CardHandler exposes the card catalog over HTTP
type CardHandler struct {
	cardService *service.CardService
}

// NewCardHandler creates a new card handler
func NewCardHandler(cardService *service.CardService) *CardHandler {
	return &CardHandler{cardService: cardService}
}

// ListCards returns the catalog, filtered by ?categories=a,b if given
func (h *CardHandler) ListCards(w http.ResponseWriter, r *http.Request) {
	var categories []models.Category
	if raw := r.URL.Query().Get("categories"); raw != "" {
		for _, c := range strings.Split(raw, ",") {
			if c = strings.TrimSpace(c); c != "" {
				categories = append(categories, models.Category(c))
			}
		}
	}

	cards, err := h.cardService.ListCards(categories)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to load cards", "", err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{"cards": cards})
}

type createCardRequest struct {
	Prompt   string `json:"prompt"`
	Type     string `json:"type"`
	Category string `json:"category"`
}

// CreateCard adds a player-created custom card
func (h *CardHandler) CreateCard(w http.ResponseWriter, r *http.Request) {
	var req createCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", err)
		return
	}

	card, err := h.cardService.AddCustomCard(req.Prompt, models.CardType(req.Type), models.Category(req.Category))
	if err != nil {
		respondWithGameError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, card)
}

// DeleteCard removes a custom card by id
func (h *CardHandler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		http.Error(w, "missing card id", http.StatusBadRequest)
		return
	}

	if err := h.cardService.RemoveCustomCard(id); err != nil {
		respondWithGameError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
