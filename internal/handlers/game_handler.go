package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"tabletalk/internal/models"
	"tabletalk/internal/security"
	"tabletalk/internal/service"
)

// GameHandler exposes the turn state machine over HTTP
type GameHandler struct {
	gameService *service.GameService
	tokens      *security.TokenManager
	sessionID   string
}

// NewGameHandler creates a new game handler
func NewGameHandler(gameService *service.GameService, tokens *security.TokenManager, sessionID string) *GameHandler {
	return &GameHandler{
		gameService: gameService,
		tokens:      tokens,
		sessionID:   sessionID,
	}
}

// GetState returns a snapshot of the current session
func (h *GameHandler) GetState(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.gameService.State())
}

type startRequest struct {
	Settings *models.Settings `json:"settings"`
}

// Start begins a new game, replacing any game in progress
func (h *GameHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req startRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body", "", err)
			return
		}
	}

	settings := models.DefaultSettings()
	if req.Settings != nil {
		settings = *req.Settings
		if settings.PlayerNames == nil {
			settings.PlayerNames = models.DefaultSettings().PlayerNames
		}
	}

	snapshot, err := h.gameService.Start(settings)
	if err != nil {
		respondWithGameError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, snapshot)
}

// Reset abandons the current game
func (h *GameHandler) Reset(w http.ResponseWriter, r *http.Request) {
	h.simpleTransition(w, h.gameService.Reset)
}

// Draw takes the next card from the deck
func (h *GameHandler) Draw(w http.ResponseWriter, r *http.Request) {
	h.simpleTransition(w, h.gameService.Draw)
}

// Reveal flips the drawn card face up
func (h *GameHandler) Reveal(w http.ResponseWriter, r *http.Request) {
	h.simpleTransition(w, h.gameService.Reveal)
}

// Advance finalizes the completed turn and passes play
func (h *GameHandler) Advance(w http.ResponseWriter, r *http.Request) {
	h.simpleTransition(w, h.gameService.Advance)
}

// Skip discards the current card without recording a turn
func (h *GameHandler) Skip(w http.ResponseWriter, r *http.Request) {
	h.simpleTransition(w, h.gameService.Skip)
}

type responseRequest struct {
	Player int    `json:"player"`
	Text   string `json:"text"`
}

// Respond records a player's response to the revealed card
func (h *GameHandler) Respond(w http.ResponseWriter, r *http.Request) {
	var req responseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", err)
		return
	}

	snapshot, err := h.gameService.Submit(req.Player, req.Text)
	if err != nil {
		respondWithGameError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, snapshot)
}

// Edit replaces a player's response before the turn is finalized
func (h *GameHandler) Edit(w http.ResponseWriter, r *http.Request) {
	var req responseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", err)
		return
	}

	snapshot, err := h.gameService.Edit(req.Player, req.Text)
	if err != nil {
		respondWithGameError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, snapshot)
}

type reactionRequest struct {
	Turn   int    `json:"turn"`
	Player int    `json:"player"`
	Emoji  string `json:"emoji"`
}

// Reaction toggles an emoji reaction on a turn
func (h *GameHandler) Reaction(w http.ResponseWriter, r *http.Request) {
	var req reactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", err)
		return
	}

	snapshot, err := h.gameService.ToggleReaction(req.Turn, req.Player, req.Emoji)
	if err != nil {
		respondWithGameError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, snapshot)
}

// Favorite toggles a turn as a player's favorite
func (h *GameHandler) Favorite(w http.ResponseWriter, r *http.Request) {
	var req reactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", err)
		return
	}

	snapshot, err := h.gameService.ToggleFavorite(req.Turn, req.Player)
	if err != nil {
		respondWithGameError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, snapshot)
}

type resumeTokenRequest struct {
	Player int `json:"player"`
}

// IssueResumeToken creates a signed token a player can use to rejoin
// their seat from another device
func (h *GameHandler) IssueResumeToken(w http.ResponseWriter, r *http.Request) {
	var req resumeTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", err)
		return
	}
	if req.Player != 1 && req.Player != 2 {
		http.Error(w, "player must be 1 or 2", http.StatusBadRequest)
		return
	}

	token, err := h.tokens.Issue(h.sessionID, req.Player)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to issue token", "", err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"token": token})
}

// Resume validates a resume token and binds this browser to the seat
// the token names
func (h *GameHandler) Resume(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		http.Error(w, "missing token", http.StatusBadRequest)
		return
	}

	claims, err := h.tokens.Validate(token)
	if err != nil {
		respondWithError(w, http.StatusUnauthorized, "Invalid or expired token", "", err)
		return
	}
	if claims.SessionID != h.sessionID {
		http.Error(w, "token is for a different session", http.StatusUnauthorized)
		return
	}

	cookie := security.CreatePlayerCookie(r, strconv.Itoa(claims.Player), time.Now().Add(24*time.Hour))
	http.SetCookie(w, cookie)

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"player": claims.Player,
		"state":  h.gameService.State(),
	})
}

func (h *GameHandler) simpleTransition(w http.ResponseWriter, fn func() (*models.Snapshot, error)) {
	snapshot, err := fn()
	if err != nil {
		respondWithGameError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, snapshot)
}
