package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"tabletalk/internal/database"
	"tabletalk/internal/models"
)

// SessionRepository persists whole game sessions as JSON snapshots
type SessionRepository struct {
	db *database.DB
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *database.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Save stores the full session state, replacing any previous snapshot
// for the same id
func (r *SessionRepository) Save(id string, session *models.Session) error {
	state, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM game_sessions WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to clear session row: %w", err)
	}

	query := "INSERT INTO game_sessions (id, state, updated_at) VALUES (?, ?, ?)"
	if _, err := tx.Exec(query, id, string(state), time.Now()); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return tx.Commit()
}

// Load retrieves the session stored under id. Returns (nil, nil) when
// no snapshot exists.
func (r *SessionRepository) Load(id string) (*models.Session, error) {
	var state string
	err := r.db.QueryRow("SELECT state FROM game_sessions WHERE id = ?", id).Scan(&state)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var session models.Session
	if err := json.Unmarshal([]byte(state), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &session, nil
}

// Delete removes a stored session snapshot
func (r *SessionRepository) Delete(id string) error {
	if _, err := r.db.Exec("DELETE FROM game_sessions WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
