package service

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"tabletalk/internal/database"
	"tabletalk/internal/models"
)

// BackupData represents the complete database backup structure
type BackupData struct {
	Version     string          `json:"version"`
	ExportedAt  time.Time       `json:"exported_at"`
	CustomCards []models.Card   `json:"custom_cards"`
	Sessions    []SessionBackup `json:"sessions"`
}

// SessionBackup represents a stored session snapshot for backup
type SessionBackup struct {
	ID        string          `json:"id"`
	State     json.RawMessage `json:"state"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// BackupService handles database backup and restore operations
type BackupService struct {
	db *database.DB
}

// NewBackupService creates a new backup service
func NewBackupService(db *database.DB) *BackupService {
	return &BackupService{db: db}
}

// Export creates a complete backup of the database to a file
func (s *BackupService) Export(outputPath string) error {
	log.Println("Starting database export...")

	backup := &BackupData{
		Version:    "1.0",
		ExportedAt: time.Now(),
	}

	if err := s.exportCustomCards(backup); err != nil {
		return fmt.Errorf("failed to export custom cards: %w", err)
	}

	if err := s.exportSessions(backup); err != nil {
		return fmt.Errorf("failed to export sessions: %w", err)
	}

	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(backup); err != nil {
		return fmt.Errorf("failed to encode backup: %w", err)
	}

	log.Printf("Database exported successfully to %s", outputPath)
	log.Printf("Exported: %d custom cards, %d sessions", len(backup.CustomCards), len(backup.Sessions))

	return nil
}

// Import restores a database from a backup file
func (s *BackupService) Import(inputPath string) error {
	log.Printf("Starting database import from %s...", inputPath)

	file, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open input file: %w", err)
	}
	defer file.Close()

	return s.ImportFromReader(file)
}

// ImportFromReader restores a database from a backup reader
func (s *BackupService) ImportFromReader(reader io.Reader) error {
	var backup BackupData
	decoder := json.NewDecoder(reader)
	if err := decoder.Decode(&backup); err != nil {
		return fmt.Errorf("failed to decode backup: %w", err)
	}

	log.Printf("Backup version: %s, exported at: %s", backup.Version, backup.ExportedAt)

	if err := s.importCustomCards(backup.CustomCards); err != nil {
		return fmt.Errorf("failed to import custom cards: %w", err)
	}

	if err := s.importSessions(backup.Sessions); err != nil {
		return fmt.Errorf("failed to import sessions: %w", err)
	}

	log.Println("Database import completed successfully")
	return nil
}

func (s *BackupService) exportCustomCards(backup *BackupData) error {
	rows, err := s.db.Query("SELECT id, prompt, card_type, category FROM custom_cards ORDER BY created_at, id")
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var card models.Card
		var cardType, category string
		if err := rows.Scan(&card.ID, &card.Prompt, &cardType, &category); err != nil {
			return err
		}
		card.Type = models.CardType(cardType)
		card.Category = models.Category(category)
		card.Custom = true
		backup.CustomCards = append(backup.CustomCards, card)
	}
	return rows.Err()
}

func (s *BackupService) exportSessions(backup *BackupData) error {
	rows, err := s.db.Query("SELECT id, state, updated_at FROM game_sessions")
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var sb SessionBackup
		var state string
		if err := rows.Scan(&sb.ID, &state, &sb.UpdatedAt); err != nil {
			return err
		}
		sb.State = json.RawMessage(state)
		backup.Sessions = append(backup.Sessions, sb)
	}
	return rows.Err()
}

func (s *BackupService) importCustomCards(cards []models.Card) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM custom_cards"); err != nil {
		return err
	}

	for _, card := range cards {
		_, err := tx.Exec(
			"INSERT INTO custom_cards (id, prompt, card_type, category) VALUES (?, ?, ?, ?)",
			card.ID, card.Prompt, string(card.Type), string(card.Category),
		)
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	log.Printf("Imported %d custom cards", len(cards))
	return nil
}

func (s *BackupService) importSessions(sessions []SessionBackup) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM game_sessions"); err != nil {
		return err
	}

	for _, sb := range sessions {
		_, err := tx.Exec(
			"INSERT INTO game_sessions (id, state, updated_at) VALUES (?, ?, ?)",
			sb.ID, string(sb.State), sb.UpdatedAt,
		)
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	log.Printf("Imported %d sessions", len(sessions))
	return nil
}
