package game

import (
	"strings"
	"time"

	"tabletalk/internal/models"
)

// The transition functions below are the entire write surface of a session.
// Every transition either applies fully or returns an error with the session
// untouched; misuse is always an explicit rejection, never a silent no-op.

// Start replaces s with a fresh running game over the given deck. Callers
// decide restart-vs-new by the settings they pass: the previous session's
// settings for a restart, DefaultSettings for a genuinely new game.
func Start(s *models.Session, deck []models.Card, settings models.Settings) {
	*s = *models.NewSession()
	s.Started = true
	s.StartedAt = time.Now()
	s.Deck = deck
	s.Settings = settings.Clone()
}

// Reset unconditionally discards the session, returning it to a fresh,
// not-yet-started state with default settings.
func Reset(s *models.Session) {
	*s = *models.NewSession()
}

// Draw removes the next card from the deck and reveals-pending it. On an
// exhausted deck the game ends; if a turn is still in flight with at least
// one recorded response, that turn is finalized into history first (deck
// exhaustion acts as an implicit final advance).
func Draw(s *models.Session) error {
	if !s.Started {
		return ErrNotStarted
	}

	switch s.Phase {
	case models.PhaseWaiting:
		if len(s.Deck) == 0 {
			s.Phase = models.PhaseGameOver
			return nil
		}
		card := s.Deck[len(s.Deck)-1]
		s.Deck = s.Deck[:len(s.Deck)-1]
		s.CurrentCard = &card
		s.CardRevealed = false
		s.Responses = make(map[int]string)
		s.SubmittedAt = make(map[int]time.Time)
		s.Reactions = make(map[int][]string)
		s.Phase = models.PhaseCardRevealed
		return nil

	case models.PhaseCollectingResponses, models.PhaseResponseComplete:
		if len(s.Deck) == 0 && s.CurrentCard != nil && len(s.Responses) > 0 {
			finalizeTurn(s, time.Now())
			clearTurn(s)
			s.Phase = models.PhaseGameOver
			return nil
		}
		return invalidTransition("draw", s.Phase)

	default:
		return invalidTransition("draw", s.Phase)
	}
}

// Reveal marks the current card as revealed and opens response collection.
// A distinct step so presentation layers can defer it for animation.
func Reveal(s *models.Session) error {
	if !s.Started {
		return ErrNotStarted
	}
	if s.Phase != models.PhaseCardRevealed {
		return invalidTransition("reveal", s.Phase)
	}

	s.CardRevealed = true
	s.Phase = models.PhaseCollectingResponses
	return nil
}

// Submit records a player's response and timestamp. Only players required
// to respond by the current card's type are accepted. The phase becomes
// response-complete once every required response is present.
func Submit(s *models.Session, player int, text string) error {
	if !s.Started {
		return ErrNotStarted
	}
	if s.Phase != models.PhaseCollectingResponses {
		return invalidTransition("submit response", s.Phase)
	}
	if player != 1 && player != 2 {
		return ErrInvalidPlayer
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrEmptyResponse
	}
	if !playerResponds(s, player) {
		return ErrNotResponding
	}

	s.Responses[player] = text
	s.SubmittedAt[player] = time.Now()

	if responsesComplete(s) {
		s.Phase = models.PhaseResponseComplete
	}
	return nil
}

// Edit overwrites a previously submitted response without touching the
// phase. The original submission timestamp is preserved, not refreshed.
func Edit(s *models.Session, player int, text string) error {
	if !s.Started {
		return ErrNotStarted
	}
	if s.Phase != models.PhaseResponseComplete {
		return invalidTransition("edit response", s.Phase)
	}
	if player != 1 && player != 2 {
		return ErrInvalidPlayer
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrEmptyResponse
	}
	if _, ok := s.Responses[player]; !ok {
		return ErrNothingToEdit
	}

	s.Responses[player] = text
	return nil
}

// Advance finalizes the completed turn into the ledger, flips the active
// player and either waits for the next draw or ends the game.
func Advance(s *models.Session) error {
	if !s.Started {
		return ErrNotStarted
	}
	if s.Phase != models.PhaseResponseComplete {
		return invalidTransition("advance turn", s.Phase)
	}

	finalizeTurn(s, time.Now())
	clearTurn(s)

	if len(s.Deck) > 0 {
		s.Phase = models.PhaseWaiting
	} else {
		s.Phase = models.PhaseGameOver
	}
	return nil
}

// Skip discards the current card without recording a history entry and
// passes the turn. Used by timer expiry; skipped cards are tracked so the
// deck partition stays accountable.
func Skip(s *models.Session) error {
	if !s.Started {
		return ErrNotStarted
	}
	if s.CurrentCard == nil {
		return invalidTransition("skip turn", s.Phase)
	}

	s.Discards = append(s.Discards, *s.CurrentCard)
	clearTurn(s)

	if len(s.Deck) > 0 {
		s.Phase = models.PhaseWaiting
	} else {
		s.Phase = models.PhaseGameOver
	}
	return nil
}

// ToggleReaction toggles emoji membership in the reaction set keyed by
// (turn, player). Works identically on ledgered turns and the in-progress
// turn, in any phase.
func ToggleReaction(s *models.Session, turn, player int, emoji string) error {
	if player != 1 && player != 2 {
		return ErrInvalidPlayer
	}
	if strings.TrimSpace(emoji) == "" {
		return ErrInvalidEmoji
	}

	switch {
	case turn >= 1 && turn <= len(s.History):
		entry := &s.History[turn-1]
		if entry.Reactions == nil {
			entry.Reactions = make(map[int][]string)
		}
		entry.Reactions[player] = toggleString(entry.Reactions[player], emoji)
		return nil

	case turn == s.CurrentTurn() && s.CurrentCard != nil:
		s.Reactions[player] = toggleString(s.Reactions[player], emoji)
		return nil

	default:
		return ErrUnknownTurn
	}
}

// ToggleFavorite toggles membership of (turn, player) in the favorites set
func ToggleFavorite(s *models.Session, turn, player int) error {
	if player != 1 && player != 2 {
		return ErrInvalidPlayer
	}
	inLedger := turn >= 1 && turn <= len(s.History)
	inFlight := turn == s.CurrentTurn() && s.CurrentCard != nil
	if !inLedger && !inFlight {
		return ErrUnknownTurn
	}

	if s.Favorites == nil {
		s.Favorites = make(map[int]map[int]bool)
	}
	if s.Favorites[turn][player] {
		delete(s.Favorites[turn], player)
		if len(s.Favorites[turn]) == 0 {
			delete(s.Favorites, turn)
		}
		return nil
	}
	if s.Favorites[turn] == nil {
		s.Favorites[turn] = make(map[int]bool)
	}
	s.Favorites[turn][player] = true
	return nil
}

// Guard queries. Each reports whether the matching transition would be
// accepted right now; presentation layers use them to disable actions
// preemptively, but the transitions defend themselves regardless.

// CanDraw reports whether Draw would be accepted
func CanDraw(s *models.Session) bool {
	if !s.Started {
		return false
	}
	if s.Phase == models.PhaseWaiting {
		return true
	}
	exhaustedMidTurn := s.Phase == models.PhaseCollectingResponses || s.Phase == models.PhaseResponseComplete
	return exhaustedMidTurn && len(s.Deck) == 0 && s.CurrentCard != nil && len(s.Responses) > 0
}

// CanReveal reports whether Reveal would be accepted
func CanReveal(s *models.Session) bool {
	return s.Started && s.Phase == models.PhaseCardRevealed
}

// CanSubmit reports whether Submit would be accepted for the given player
func CanSubmit(s *models.Session, player int) bool {
	return s.Started && s.Phase == models.PhaseCollectingResponses &&
		(player == 1 || player == 2) && playerResponds(s, player)
}

// CanAdvance reports whether Advance would be accepted
func CanAdvance(s *models.Session) bool {
	return s.Started && s.Phase == models.PhaseResponseComplete
}

// CanSkip reports whether Skip would be accepted
func CanSkip(s *models.Session) bool {
	return s.Started && s.CurrentCard != nil
}

// playerResponds reports whether the player must answer the current card.
// For single-response cards the drawing (active) player does not respond.
func playerResponds(s *models.Session, player int) bool {
	if s.CurrentCard == nil {
		return false
	}
	if s.CurrentCard.Type == models.CardTypeBoth {
		return true
	}
	return player == otherPlayer(s.ActivePlayer)
}

// responsesComplete reports whether every required response is present
func responsesComplete(s *models.Session) bool {
	if s.CurrentCard == nil {
		return false
	}
	if s.CurrentCard.Type == models.CardTypeBoth {
		return s.Responses[1] != "" && s.Responses[2] != ""
	}
	return s.Responses[otherPlayer(s.ActivePlayer)] != ""
}

// finalizeTurn appends the in-flight turn to the ledger and bumps the
// turn counter. Only called when at least one response exists.
func finalizeTurn(s *models.Session, now time.Time) {
	entry := models.HistoryEntry{
		TurnNumber:  s.TurnNumber + 1,
		Card:        *s.CurrentCard,
		DrawnBy:     s.ActivePlayer,
		Responses:   s.Responses,
		SubmittedAt: s.SubmittedAt,
		Reactions:   s.Reactions,
		CompletedAt: now,
	}
	s.History = append(s.History, entry)
	s.TurnNumber++
}

// clearTurn flips the active player and drops all per-turn state
func clearTurn(s *models.Session) {
	s.ActivePlayer = otherPlayer(s.ActivePlayer)
	s.CurrentCard = nil
	s.CardRevealed = false
	s.Responses = make(map[int]string)
	s.SubmittedAt = make(map[int]time.Time)
	s.Reactions = make(map[int][]string)
}

// toggleString removes value from set when present, otherwise appends it
func toggleString(set []string, value string) []string {
	for i, v := range set {
		if v == value {
			return append(set[:i], set[i+1:]...)
		}
	}
	return append(set, value)
}

func otherPlayer(player int) int {
	if player == 1 {
		return 2
	}
	return 1
}
