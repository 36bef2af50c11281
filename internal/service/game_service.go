package service

import (
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"tabletalk/internal/game"
	"tabletalk/internal/models"
	"tabletalk/internal/repository"
)

// GameService owns the single live session. All mutations go through
// the game package's transition functions under one mutex, and every
// successful transition is persisted as a snapshot so a restarted
// server resumes where the players left off.
type GameService struct {
	mu          sync.Mutex
	session     *models.Session
	sessionID   string
	sessionRepo *repository.SessionRepository
	cardService *CardService
	rng         *rand.Rand
}

// NewGameService creates a game service and restores any persisted
// session for the given id.
func NewGameService(sessionRepo *repository.SessionRepository, cardService *CardService, sessionID string) *GameService {
	s := &GameService{
		session:     models.NewSession(),
		sessionID:   sessionID,
		sessionRepo: sessionRepo,
		cardService: cardService,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	if restored, err := sessionRepo.Load(sessionID); err != nil {
		log.Printf("Warning: failed to restore session %s: %v", sessionID, err)
	} else if restored != nil {
		s.session = restored
		log.Printf("Restored session %s (phase=%s, turn=%d)", sessionID, restored.Phase, restored.TurnNumber)
	}

	return s
}

// State returns a detached snapshot of the current session
func (s *GameService) State() *models.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := s.session.Snapshot()
	return &snap
}

// Start builds a fresh shuffled deck from the catalog and begins a new
// game, replacing any session in progress.
func (s *GameService) Start(settings models.Settings) (*models.Snapshot, error) {
	cards, err := s.cardService.ListCards(settings.Categories)
	if err != nil {
		return nil, fmt.Errorf("failed to build deck: %w", err)
	}
	if len(cards) == 0 {
		return nil, fmt.Errorf("no cards match the selected categories")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	deck := game.BuildDeck(cards, s.rng)
	game.Start(s.session, deck, settings)
	return s.snapshotAndSave()
}

// Reset abandons the current game and returns to the unstarted state
func (s *GameService) Reset() (*models.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	game.Reset(s.session)
	return s.snapshotAndSave()
}

// Draw takes the next card from the deck
func (s *GameService) Draw() (*models.Snapshot, error) {
	return s.transition(game.Draw)
}

// Reveal turns the drawn card face up and opens response collection
func (s *GameService) Reveal() (*models.Snapshot, error) {
	return s.transition(game.Reveal)
}

// Submit records a player's response to the revealed card
func (s *GameService) Submit(player int, text string) (*models.Snapshot, error) {
	return s.transition(func(sess *models.Session) error {
		return game.Submit(sess, player, text)
	})
}

// Edit replaces a player's response before the turn is finalized
func (s *GameService) Edit(player int, text string) (*models.Snapshot, error) {
	return s.transition(func(sess *models.Session) error {
		return game.Edit(sess, player, text)
	})
}

// Advance finalizes the completed turn into the ledger and passes play
func (s *GameService) Advance() (*models.Snapshot, error) {
	return s.transition(game.Advance)
}

// Skip discards the current card without recording a turn. Also used
// when the response timer expires.
func (s *GameService) Skip() (*models.Snapshot, error) {
	return s.transition(game.Skip)
}

// ToggleReaction adds or removes an emoji reaction on a turn
func (s *GameService) ToggleReaction(turn, player int, emoji string) (*models.Snapshot, error) {
	return s.transition(func(sess *models.Session) error {
		return game.ToggleReaction(sess, turn, player, emoji)
	})
}

// ToggleFavorite marks or unmarks a turn as a player's favorite
func (s *GameService) ToggleFavorite(turn, player int) (*models.Snapshot, error) {
	return s.transition(func(sess *models.Session) error {
		return game.ToggleFavorite(sess, turn, player)
	})
}

// History returns a detached copy of the completed-turn ledger
func (s *GameService) History() models.History {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.History.Clone()
}

func (s *GameService) transition(fn func(*models.Session) error) (*models.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := fn(s.session); err != nil {
		return nil, err
	}
	return s.snapshotAndSave()
}

// snapshotAndSave persists the session and returns its snapshot.
// Persistence failures are logged, not surfaced: the in-memory game
// remains authoritative.
func (s *GameService) snapshotAndSave() (*models.Snapshot, error) {
	if err := s.sessionRepo.Save(s.sessionID, s.session); err != nil {
		log.Printf("Warning: failed to persist session %s: %v", s.sessionID, err)
	}
	snap := s.session.Snapshot()
	return &snap, nil
}
