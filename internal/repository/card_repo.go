package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"tabletalk/internal/database"
	"tabletalk/internal/models"
)

// ErrCardNotFound is returned when a custom card id has no row
var ErrCardNotFound = errors.New("custom card not found")

// CardRepository handles custom card database operations. It accepts
// DBTX so callers can run card operations inside a transaction.
type CardRepository struct {
	db database.DBTX
}

// NewCardRepository creates a new card repository
func NewCardRepository(db database.DBTX) *CardRepository {
	return &CardRepository{db: db}
}

// Create inserts a custom card
func (r *CardRepository) Create(card models.Card) error {
	query := `
		INSERT INTO custom_cards (id, prompt, card_type, category)
		VALUES (?, ?, ?, ?)
	`

	_, err := r.db.Exec(query, card.ID, card.Prompt, string(card.Type), string(card.Category))
	if err != nil {
		return fmt.Errorf("failed to insert custom card: %w", err)
	}
	return nil
}

// Delete removes a custom card by id
func (r *CardRepository) Delete(id string) error {
	result, err := r.db.Exec("DELETE FROM custom_cards WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete custom card: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrCardNotFound
	}
	return nil
}

// GetByID retrieves a single custom card
func (r *CardRepository) GetByID(id string) (*models.Card, error) {
	query := `
		SELECT id, prompt, card_type, category
		FROM custom_cards
		WHERE id = ?
	`

	card, err := scanCard(r.db.QueryRow(query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCardNotFound
		}
		return nil, err
	}
	return card, nil
}

// List returns all custom cards in insertion order
func (r *CardRepository) List() ([]models.Card, error) {
	query := `
		SELECT id, prompt, card_type, category
		FROM custom_cards
		ORDER BY created_at, id
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list custom cards: %w", err)
	}
	defer rows.Close()

	var cards []models.Card
	for rows.Next() {
		card, err := scanCard(rows)
		if err != nil {
			return nil, err
		}
		cards = append(cards, *card)
	}
	return cards, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCard(row rowScanner) (*models.Card, error) {
	var card models.Card
	var cardType, category string

	if err := row.Scan(&card.ID, &card.Prompt, &cardType, &category); err != nil {
		return nil, err
	}

	card.Type = models.CardType(cardType)
	card.Category = models.Category(category)
	card.Custom = true
	return &card, nil
}
