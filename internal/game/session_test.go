package game

import (
	"errors"
	"testing"

	"tabletalk/internal/models"
)

func singleCard(id string) models.Card {
	return models.Card{ID: id, Prompt: "Tell a story.", Type: models.CardTypeSingle}
}

func bothCard(id string) models.Card {
	return models.Card{ID: id, Prompt: "Both players: share something.", Type: models.CardTypeBoth}
}

// startedSession returns a running session whose deck pops cards in the
// given order (first element drawn first).
func startedSession(cards ...models.Card) *models.Session {
	deck := make([]models.Card, len(cards))
	for i, c := range cards {
		deck[len(cards)-1-i] = c
	}
	s := models.NewSession()
	Start(s, deck, models.DefaultSettings())
	return s
}

func TestFullGameScenario(t *testing.T) {
	s := startedSession(singleCard("c1"), bothCard("c2"))

	// Turn 1: single-response card, player 1 active, player 2 responds.
	if !CanDraw(s) {
		t.Fatal("CanDraw should be true in waiting phase")
	}
	if err := Draw(s); err != nil {
		t.Fatalf("draw: %v", err)
	}
	if s.CurrentCard.ID != "c1" {
		t.Fatalf("current card = %s, want c1", s.CurrentCard.ID)
	}
	if s.Phase != models.PhaseCardRevealed {
		t.Fatalf("phase = %q, want %q", s.Phase, models.PhaseCardRevealed)
	}
	if err := Reveal(s); err != nil {
		t.Fatalf("reveal: %v", err)
	}
	if err := Submit(s, 2, "hello"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if s.Phase != models.PhaseResponseComplete {
		t.Fatalf("phase after required response = %q, want %q", s.Phase, models.PhaseResponseComplete)
	}
	if err := Advance(s); err != nil {
		t.Fatalf("advance: %v", err)
	}
	if s.TurnNumber != 1 {
		t.Fatalf("turn number = %d, want 1", s.TurnNumber)
	}
	if s.ActivePlayer != 2 {
		t.Fatalf("active player = %d, want 2", s.ActivePlayer)
	}
	if s.Phase != models.PhaseWaiting {
		t.Fatalf("phase = %q, want %q", s.Phase, models.PhaseWaiting)
	}

	// Turn 2: both-response card, both players must answer.
	if err := Draw(s); err != nil {
		t.Fatalf("draw 2: %v", err)
	}
	if err := Reveal(s); err != nil {
		t.Fatalf("reveal 2: %v", err)
	}
	if err := Submit(s, 1, "a"); err != nil {
		t.Fatalf("submit p1: %v", err)
	}
	if s.Phase != models.PhaseCollectingResponses {
		t.Fatalf("phase with one of two responses = %q, want %q", s.Phase, models.PhaseCollectingResponses)
	}
	if err := Submit(s, 2, "b"); err != nil {
		t.Fatalf("submit p2: %v", err)
	}
	if s.Phase != models.PhaseResponseComplete {
		t.Fatalf("phase with both responses = %q, want %q", s.Phase, models.PhaseResponseComplete)
	}
	if err := Advance(s); err != nil {
		t.Fatalf("advance 2: %v", err)
	}

	// Deck exhausted: game over with exactly two ledger entries.
	if s.Phase != models.PhaseGameOver {
		t.Fatalf("phase = %q, want %q", s.Phase, models.PhaseGameOver)
	}
	if len(s.History) != 2 {
		t.Fatalf("history length = %d, want 2", len(s.History))
	}
	for i, entry := range s.History {
		if entry.TurnNumber != i+1 {
			t.Errorf("entry %d turn number = %d, want %d", i, entry.TurnNumber, i+1)
		}
	}
	if s.History[0].Responses[2] != "hello" {
		t.Errorf("turn 1 response = %q, want %q", s.History[0].Responses[2], "hello")
	}
	if s.History[0].DrawnBy != 1 || s.History[1].DrawnBy != 2 {
		t.Errorf("drawn-by = %d,%d, want 1,2", s.History[0].DrawnBy, s.History[1].DrawnBy)
	}
}

func TestSingleResponseActivePlayerDoesNotRespond(t *testing.T) {
	s := startedSession(singleCard("c1"))
	if err := Draw(s); err != nil {
		t.Fatal(err)
	}
	if err := Reveal(s); err != nil {
		t.Fatal(err)
	}

	// Player 1 drew the card and must not respond.
	if CanSubmit(s, 1) {
		t.Error("CanSubmit(1) should be false for the active player on a single-response card")
	}
	if err := Submit(s, 1, "nope"); !errors.Is(err, ErrNotResponding) {
		t.Fatalf("submit by active player: err = %v, want ErrNotResponding", err)
	}
	if s.Phase != models.PhaseCollectingResponses {
		t.Fatalf("rejected submit changed phase to %q", s.Phase)
	}
	if len(s.Responses) != 0 {
		t.Fatalf("rejected submit recorded a response: %v", s.Responses)
	}
}

func TestSubmitValidation(t *testing.T) {
	tests := []struct {
		name    string
		player  int
		text    string
		wantErr error
	}{
		{"empty text", 2, "", ErrEmptyResponse},
		{"whitespace text", 2, "   \t", ErrEmptyResponse},
		{"player zero", 0, "hi", ErrInvalidPlayer},
		{"player three", 3, "hi", ErrInvalidPlayer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := startedSession(singleCard("c1"))
			if err := Draw(s); err != nil {
				t.Fatal(err)
			}
			if err := Reveal(s); err != nil {
				t.Fatal(err)
			}

			if err := Submit(s, tt.player, tt.text); !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if len(s.Responses) != 0 {
				t.Fatal("rejected submit left a response behind")
			}
		})
	}
}

func TestTransitionsRejectedOutOfPhase(t *testing.T) {
	s := startedSession(bothCard("c1"), bothCard("c2"))

	// Waiting: only draw is legal.
	if err := Reveal(s); !IsInvalidTransition(err) {
		t.Errorf("reveal in waiting: err = %v, want InvalidTransitionError", err)
	}
	if err := Submit(s, 1, "x"); !IsInvalidTransition(err) {
		t.Errorf("submit in waiting: err = %v, want InvalidTransitionError", err)
	}
	if err := Advance(s); !IsInvalidTransition(err) {
		t.Errorf("advance in waiting: err = %v, want InvalidTransitionError", err)
	}
	if err := Skip(s); !IsInvalidTransition(err) {
		t.Errorf("skip in waiting: err = %v, want InvalidTransitionError", err)
	}

	// Card revealed: drawing again is illegal.
	if err := Draw(s); err != nil {
		t.Fatal(err)
	}
	if err := Draw(s); !IsInvalidTransition(err) {
		t.Errorf("double draw: err = %v, want InvalidTransitionError", err)
	}
	if deckLen := len(s.Deck); deckLen != 1 {
		t.Errorf("rejected draw consumed a card: deck = %d, want 1", deckLen)
	}

	// Collecting: advance before completion is illegal.
	if err := Reveal(s); err != nil {
		t.Fatal(err)
	}
	if err := Submit(s, 1, "only one"); err != nil {
		t.Fatal(err)
	}
	if err := Advance(s); !IsInvalidTransition(err) {
		t.Errorf("advance before completion: err = %v, want InvalidTransitionError", err)
	}

	// Not started at all.
	fresh := models.NewSession()
	if err := Draw(fresh); !errors.Is(err, ErrNotStarted) {
		t.Errorf("draw before start: err = %v, want ErrNotStarted", err)
	}
}

func TestEditPreservesPhaseAndTimestamp(t *testing.T) {
	s := startedSession(singleCard("c1"))
	if err := Draw(s); err != nil {
		t.Fatal(err)
	}
	if err := Reveal(s); err != nil {
		t.Fatal(err)
	}
	if err := Submit(s, 2, "first draft"); err != nil {
		t.Fatal(err)
	}

	submitted := s.SubmittedAt[2]
	turnBefore := s.TurnNumber

	if err := Edit(s, 2, "final version"); err != nil {
		t.Fatalf("edit: %v", err)
	}
	if s.Phase != models.PhaseResponseComplete {
		t.Errorf("edit changed phase to %q", s.Phase)
	}
	if s.TurnNumber != turnBefore {
		t.Errorf("edit changed turn number to %d", s.TurnNumber)
	}
	if !s.SubmittedAt[2].Equal(submitted) {
		t.Error("edit refreshed the submission timestamp")
	}

	// The edited text, not the original, is what gets ledgered.
	if err := Advance(s); err != nil {
		t.Fatal(err)
	}
	if got := s.History[0].Responses[2]; got != "final version" {
		t.Errorf("ledgered response = %q, want %q", got, "final version")
	}
}

func TestEditRejections(t *testing.T) {
	s := startedSession(bothCard("c1"))
	if err := Draw(s); err != nil {
		t.Fatal(err)
	}
	if err := Reveal(s); err != nil {
		t.Fatal(err)
	}

	// Not yet response-complete.
	if err := Edit(s, 1, "too early"); !IsInvalidTransition(err) {
		t.Fatalf("edit while collecting: err = %v, want InvalidTransitionError", err)
	}

	if err := Submit(s, 1, "a"); err != nil {
		t.Fatal(err)
	}
	if err := Submit(s, 2, "b"); err != nil {
		t.Fatal(err)
	}

	if err := Edit(s, 1, ""); !errors.Is(err, ErrEmptyResponse) {
		t.Errorf("empty edit: err = %v, want ErrEmptyResponse", err)
	}
	if s.Responses[1] != "a" {
		t.Errorf("rejected edit overwrote response: %q", s.Responses[1])
	}
}

func TestDeckExhaustionFlushesInFlightTurn(t *testing.T) {
	s := startedSession(bothCard("c1"))
	if err := Draw(s); err != nil {
		t.Fatal(err)
	}
	if err := Reveal(s); err != nil {
		t.Fatal(err)
	}
	if err := Submit(s, 1, "partial"); err != nil {
		t.Fatal(err)
	}

	// Deck is empty and one response exists: draw finalizes the turn.
	if !CanDraw(s) {
		t.Fatal("CanDraw should allow the implicit final advance")
	}
	if err := Draw(s); err != nil {
		t.Fatalf("draw on exhausted deck: %v", err)
	}
	if s.Phase != models.PhaseGameOver {
		t.Fatalf("phase = %q, want %q", s.Phase, models.PhaseGameOver)
	}
	if len(s.History) != 1 {
		t.Fatalf("history length = %d, want 1 (flushed turn)", len(s.History))
	}
	if s.History[0].Responses[1] != "partial" {
		t.Errorf("flushed response = %q, want %q", s.History[0].Responses[1], "partial")
	}
}

func TestDeckExhaustionWithoutResponses(t *testing.T) {
	s := startedSession(singleCard("c1"))
	if err := Draw(s); err != nil {
		t.Fatal(err)
	}
	if err := Reveal(s); err != nil {
		t.Fatal(err)
	}

	// No responses recorded; draw on the empty deck is still a misuse here,
	// but skipping then drawing ends the game with an empty ledger.
	if err := Skip(s); err != nil {
		t.Fatal(err)
	}
	if s.Phase != models.PhaseGameOver {
		t.Fatalf("phase = %q, want %q", s.Phase, models.PhaseGameOver)
	}
	if len(s.History) != 0 {
		t.Fatalf("history length = %d, want 0", len(s.History))
	}
	if len(s.Discards) != 1 || s.Discards[0].ID != "c1" {
		t.Fatalf("discards = %v, want the skipped card", s.Discards)
	}
}

func TestSkipPassesTurnWithoutLedgerEntry(t *testing.T) {
	s := startedSession(singleCard("c1"), bothCard("c2"))
	if err := Draw(s); err != nil {
		t.Fatal(err)
	}
	if err := Reveal(s); err != nil {
		t.Fatal(err)
	}

	if err := Skip(s); err != nil {
		t.Fatalf("skip: %v", err)
	}
	if s.Phase != models.PhaseWaiting {
		t.Errorf("phase = %q, want %q", s.Phase, models.PhaseWaiting)
	}
	if s.ActivePlayer != 2 {
		t.Errorf("active player = %d, want 2", s.ActivePlayer)
	}
	if s.TurnNumber != 0 {
		t.Errorf("turn number = %d, want 0", s.TurnNumber)
	}
	if len(s.History) != 0 {
		t.Errorf("history length = %d, want 0", len(s.History))
	}
}

func TestToggleReaction(t *testing.T) {
	s := startedSession(singleCard("c1"), bothCard("c2"))
	if err := Draw(s); err != nil {
		t.Fatal(err)
	}
	if err := Reveal(s); err != nil {
		t.Fatal(err)
	}
	if err := Submit(s, 2, "hello"); err != nil {
		t.Fatal(err)
	}

	// Toggle on the in-progress turn (turn 1).
	if err := ToggleReaction(s, 1, 2, "😂"); err != nil {
		t.Fatalf("toggle on in-progress turn: %v", err)
	}
	if got := s.Reactions[2]; len(got) != 1 || got[0] != "😂" {
		t.Fatalf("reactions = %v, want [😂]", got)
	}

	if err := Advance(s); err != nil {
		t.Fatal(err)
	}

	// The reaction rode into the ledger entry.
	if got := s.History[0].Reactions[2]; len(got) != 1 || got[0] != "😂" {
		t.Fatalf("ledgered reactions = %v, want [😂]", got)
	}

	// Even toggle count on a ledgered turn removes the emoji; odd restores it.
	for i := 0; i < 2; i++ {
		if err := ToggleReaction(s, 1, 2, "😂"); err != nil {
			t.Fatalf("toggle %d on ledgered turn: %v", i+1, err)
		}
	}
	if got := s.History[0].Reactions[2]; len(got) != 1 || got[0] != "😂" {
		t.Fatalf("after two more toggles reactions = %v, want [😂]", got)
	}
	if err := ToggleReaction(s, 1, 2, "😂"); err != nil {
		t.Fatal(err)
	}
	if got := s.History[0].Reactions[2]; len(got) != 0 {
		t.Fatalf("after odd total toggles reactions = %v, want empty", got)
	}

	// Unknown turn and bad input are rejected.
	if err := ToggleReaction(s, 99, 1, "🔥"); !errors.Is(err, ErrUnknownTurn) {
		t.Errorf("unknown turn: err = %v, want ErrUnknownTurn", err)
	}
	if err := ToggleReaction(s, 1, 1, "  "); !errors.Is(err, ErrInvalidEmoji) {
		t.Errorf("blank emoji: err = %v, want ErrInvalidEmoji", err)
	}
}

func TestToggleFavorite(t *testing.T) {
	s := startedSession(singleCard("c1"), bothCard("c2"))
	if err := Draw(s); err != nil {
		t.Fatal(err)
	}
	if err := Reveal(s); err != nil {
		t.Fatal(err)
	}
	if err := Submit(s, 2, "hello"); err != nil {
		t.Fatal(err)
	}
	if err := Advance(s); err != nil {
		t.Fatal(err)
	}

	if err := ToggleFavorite(s, 1, 2); err != nil {
		t.Fatalf("favorite: %v", err)
	}
	if !s.Favorites[1][2] {
		t.Fatal("favorite not set")
	}
	if err := ToggleFavorite(s, 1, 2); err != nil {
		t.Fatal(err)
	}
	if s.Favorites[1][2] {
		t.Fatal("favorite not cleared on second toggle")
	}
	if err := ToggleFavorite(s, 5, 1); !errors.Is(err, ErrUnknownTurn) {
		t.Errorf("unknown turn: err = %v, want ErrUnknownTurn", err)
	}
}

func TestResetThenStart(t *testing.T) {
	s := startedSession(singleCard("c1"), bothCard("c2"), bothCard("c3"))
	if err := Draw(s); err != nil {
		t.Fatal(err)
	}
	if err := Reveal(s); err != nil {
		t.Fatal(err)
	}
	if err := Submit(s, 2, "hello"); err != nil {
		t.Fatal(err)
	}
	if err := Advance(s); err != nil {
		t.Fatal(err)
	}

	Reset(s)
	if s.Started {
		t.Fatal("session still started after reset")
	}
	if len(s.History) != 0 || s.TurnNumber != 0 {
		t.Fatal("reset did not clear history")
	}

	Start(s, buildBothDeck(3), models.DefaultSettings())
	if !s.Started || s.Phase != models.PhaseWaiting {
		t.Fatalf("started = %v phase = %q, want started waiting session", s.Started, s.Phase)
	}
	if s.TurnNumber != 0 || len(s.History) != 0 {
		t.Fatal("new game carried over progress")
	}
	if s.ActivePlayer != 1 {
		t.Fatalf("active player = %d, want 1", s.ActivePlayer)
	}
	if len(s.Deck) != 3 {
		t.Fatalf("deck size = %d, want 3", len(s.Deck))
	}
}

// buildBothDeck builds a small deck of both-response cards
func buildBothDeck(n int) []models.Card {
	cards := make([]models.Card, n)
	for i := range cards {
		cards[i] = bothCard(string(rune('a' + i)))
	}
	return cards
}

func TestRestartPreservesSettingsWhenPassed(t *testing.T) {
	s := startedSession(bothCard("c1"))
	s.Settings.PlayerNames[1] = "Ada"
	s.Settings.PlayerNames[2] = "Grace"
	s.Settings.SoundEnabled = false

	kept := s.Settings.Clone()
	Start(s, buildBothDeck(2), kept)

	if s.Settings.PlayerNames[1] != "Ada" || s.Settings.PlayerNames[2] != "Grace" {
		t.Errorf("player names = %v, want preserved names", s.Settings.PlayerNames)
	}
	if s.Settings.SoundEnabled {
		t.Error("sound setting not preserved on restart")
	}

	// Fresh defaults when the caller passes them instead.
	Start(s, buildBothDeck(2), models.DefaultSettings())
	if s.Settings.PlayerNames[1] != "Player 1" {
		t.Errorf("player name = %q, want default", s.Settings.PlayerNames[1])
	}
}

func TestDeckPartitionInvariant(t *testing.T) {
	const size = 6
	s := startedSession(buildBothDeck(size)...)

	// Play two turns, skip one, leave the rest undrawn.
	for i := 0; i < 2; i++ {
		if err := Draw(s); err != nil {
			t.Fatal(err)
		}
		if err := Reveal(s); err != nil {
			t.Fatal(err)
		}
		if err := Submit(s, 1, "a"); err != nil {
			t.Fatal(err)
		}
		if err := Submit(s, 2, "b"); err != nil {
			t.Fatal(err)
		}
		if err := Advance(s); err != nil {
			t.Fatal(err)
		}
	}
	if err := Draw(s); err != nil {
		t.Fatal(err)
	}
	if err := Skip(s); err != nil {
		t.Fatal(err)
	}

	seen := make(map[string]int)
	for _, c := range s.Deck {
		seen[c.ID]++
	}
	for _, c := range s.Discards {
		seen[c.ID]++
	}
	for _, entry := range s.History {
		seen[entry.Card.ID]++
	}

	if len(seen) != size {
		t.Fatalf("partition covers %d cards, want %d", len(seen), size)
	}
	for id, n := range seen {
		if n != 1 {
			t.Errorf("card %s counted %d times across deck/discards/ledger", id, n)
		}
	}
}

func TestLedgerTurnNumbersContiguous(t *testing.T) {
	const turns = 5
	s := startedSession(buildBothDeck(turns)...)

	for i := 0; i < turns; i++ {
		if err := Draw(s); err != nil {
			t.Fatal(err)
		}
		if err := Reveal(s); err != nil {
			t.Fatal(err)
		}
		if err := Submit(s, 1, "a"); err != nil {
			t.Fatal(err)
		}
		if err := Submit(s, 2, "b"); err != nil {
			t.Fatal(err)
		}
		if err := Advance(s); err != nil {
			t.Fatal(err)
		}
	}

	if len(s.History) != turns {
		t.Fatalf("history length = %d, want %d", len(s.History), turns)
	}
	for i, entry := range s.History {
		if entry.TurnNumber != i+1 {
			t.Errorf("entry %d turn number = %d, want %d", i, entry.TurnNumber, i+1)
		}
	}
}
