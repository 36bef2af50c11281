package handlers

import (
	"bytes"
	"errors"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tabletalk/internal/game"
	"tabletalk/internal/models"
	"tabletalk/internal/repository"
	"tabletalk/internal/service"
)

func TestRespondWithErrorWritesStatusAndBody(t *testing.T) {
	recorder := httptest.NewRecorder()

	respondWithError(recorder, 418, "Teapot", "", nil)

	if recorder.Code != 418 {
		t.Fatalf("expected status 418, got %d", recorder.Code)
	}

	body := strings.TrimSpace(recorder.Body.String())
	if body != "Teapot" {
		t.Fatalf("expected body 'Teapot', got %q", body)
	}
}

func TestRespondWithErrorLogsMessage(t *testing.T) {
	var buf bytes.Buffer
	logger := log.Default()
	originalOutput := logger.Writer()
	logger.SetOutput(&buf)
	defer logger.SetOutput(originalOutput)

	recorder := httptest.NewRecorder()
	err := errors.New("boom")

	respondWithError(recorder, 500, "Internal server error", "", err)

	logOutput := buf.String()
	if !strings.Contains(logOutput, "Internal server error") {
		t.Fatalf("expected log to include user message, got %q", logOutput)
	}
	if !strings.Contains(logOutput, "boom") {
		t.Fatalf("expected log to include error, got %q", logOutput)
	}
}

func TestRespondWithGameErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{
			name:       "transition guard rejection",
			err:        &game.InvalidTransitionError{Action: "draw", Phase: models.PhaseCardRevealed},
			wantStatus: http.StatusConflict,
		},
		{
			name:       "game not started",
			err:        game.ErrNotStarted,
			wantStatus: http.StatusConflict,
		},
		{
			name:       "empty response",
			err:        game.ErrEmptyResponse,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid player",
			err:        game.ErrInvalidPlayer,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "inappropriate prompt",
			err:        service.ErrInappropriatePrompt,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown turn",
			err:        game.ErrUnknownTurn,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "missing card",
			err:        repository.ErrCardNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "unexpected error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			respondWithGameError(recorder, tt.err)
			if recorder.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", recorder.Code, tt.wantStatus)
			}
		})
	}
}
