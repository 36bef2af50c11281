package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"tabletalk/internal/database"
	"tabletalk/internal/models"
	"tabletalk/internal/repository"
)

var (
	// ErrEmptyPrompt is returned when a custom card has no prompt text
	ErrEmptyPrompt = errors.New("card prompt cannot be empty")
	// ErrInvalidCardType is returned for unknown card types
	ErrInvalidCardType = errors.New("invalid card type")
	// ErrInvalidCategory is returned for unknown categories
	ErrInvalidCategory = errors.New("invalid card category")
	// ErrInappropriatePrompt is returned when a prompt contains a banned word
	ErrInappropriatePrompt = errors.New("card prompt contains inappropriate language")
	// ErrBuiltInCard is returned when trying to delete a standard card
	ErrBuiltInCard = errors.New("built-in cards cannot be removed")
)

const maxPromptLength = 500

// CardService manages the card catalog: the built-in set plus
// player-created custom cards.
type CardService struct {
	cardRepo *repository.CardRepository
	db       *database.DB
}

// NewCardService creates a new card service
func NewCardService(cardRepo *repository.CardRepository, db *database.DB) *CardService {
	return &CardService{cardRepo: cardRepo, db: db}
}

// ListCards returns the full catalog, optionally filtered by category
func (s *CardService) ListCards(categories []models.Category) ([]models.Card, error) {
	custom, err := s.cardRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to load custom cards: %w", err)
	}

	all := append(BuiltInCards(), custom...)
	return filterByCategories(all, categories), nil
}

// filterByCategories keeps cards matching any selected category.
// Uncategorized cards always pass so custom cards without a category
// are never silently excluded from play. An empty selection means all.
func filterByCategories(cards []models.Card, categories []models.Category) []models.Card {
	if len(categories) == 0 {
		return cards
	}

	selected := make(map[models.Category]bool, len(categories))
	for _, c := range categories {
		selected[c] = true
	}

	var filtered []models.Card
	for _, card := range cards {
		if card.Category == "" || selected[card.Category] {
			filtered = append(filtered, card)
		}
	}
	return filtered
}

// CustomCards returns only the player-created cards
func (s *CardService) CustomCards() ([]models.Card, error) {
	return s.cardRepo.List()
}

// AddCustomCard validates and stores a new player-created card
func (s *CardService) AddCustomCard(prompt string, cardType models.CardType, category models.Category) (*models.Card, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return nil, ErrEmptyPrompt
	}
	if len(prompt) > maxPromptLength {
		return nil, fmt.Errorf("card prompt exceeds %d characters", maxPromptLength)
	}
	if !cardType.Valid() {
		return nil, ErrInvalidCardType
	}
	if category != "" && !validCategory(category) {
		return nil, ErrInvalidCategory
	}

	banned, err := s.db.ContainsBannedWord(prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to screen card prompt: %w", err)
	}
	if banned {
		return nil, ErrInappropriatePrompt
	}

	card := models.Card{
		ID:       uuid.New().String(),
		Prompt:   prompt,
		Type:     cardType,
		Category: category,
		Custom:   true,
	}

	if err := s.cardRepo.Create(card); err != nil {
		return nil, err
	}
	return &card, nil
}

// RemoveCustomCard deletes a player-created card by id
func (s *CardService) RemoveCustomCard(id string) error {
	if strings.HasPrefix(id, "std-") {
		return ErrBuiltInCard
	}
	return s.cardRepo.Delete(id)
}

func validCategory(category models.Category) bool {
	for _, c := range models.Categories() {
		if c == category {
			return true
		}
	}
	return false
}
