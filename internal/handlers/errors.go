package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"tabletalk/internal/game"
	"tabletalk/internal/repository"
	"tabletalk/internal/service"
)

func respondWithError(w http.ResponseWriter, status int, userMsg, logMsg string, err error) {
	if err != nil {
		if logMsg == "" {
			logMsg = userMsg
		}
		log.Printf("%s: %v", logMsg, err)
	}

	http.Error(w, userMsg, status)
}

func respondWithJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

// respondWithGameError maps game and catalog errors onto HTTP statuses.
// Transition guards are conflicts, bad input is a bad request, missing
// things are not found.
func respondWithGameError(w http.ResponseWriter, err error) {
	switch {
	case game.IsInvalidTransition(err):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, game.ErrNotStarted):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, game.ErrEmptyResponse),
		errors.Is(err, game.ErrInvalidPlayer),
		errors.Is(err, game.ErrNotResponding),
		errors.Is(err, game.ErrNothingToEdit),
		errors.Is(err, game.ErrInvalidEmoji),
		errors.Is(err, service.ErrEmptyPrompt),
		errors.Is(err, service.ErrInvalidCardType),
		errors.Is(err, service.ErrInvalidCategory),
		errors.Is(err, service.ErrInappropriatePrompt),
		errors.Is(err, service.ErrBuiltInCard):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, game.ErrUnknownTurn),
		errors.Is(err, repository.ErrCardNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		respondWithError(w, http.StatusInternalServerError, "Internal server error", "Unhandled game error", err)
	}
}
