package models

import "time"

// Phase represents the current state of the turn state machine
type Phase string

const (
	PhaseWaiting             Phase = "waiting"
	PhaseCardRevealed        Phase = "card-revealed"
	PhaseCollectingResponses Phase = "collecting-responses"
	PhaseResponseComplete    Phase = "response-complete"
	PhaseGameOver            Phase = "game-over"
)

// Settings holds cross-game preferences. The core never acts on sound or
// timer values; they ride along in the session for the presentation layer.
type Settings struct {
	PlayerNames  map[int]string `json:"player_names"`
	SoundEnabled bool           `json:"sound_enabled"`
	TimerSeconds int            `json:"timer_seconds"`
	Categories   []Category     `json:"categories,omitempty"`
}

// DefaultSettings returns the settings for a genuinely new game
func DefaultSettings() Settings {
	return Settings{
		PlayerNames:  map[int]string{1: "Player 1", 2: "Player 2"},
		SoundEnabled: true,
		TimerSeconds: 0,
	}
}

// Clone returns an independent copy of the settings
func (s Settings) Clone() Settings {
	out := s
	out.PlayerNames = make(map[int]string, len(s.PlayerNames))
	for k, v := range s.PlayerNames {
		out.PlayerNames[k] = v
	}
	out.Categories = append([]Category(nil), s.Categories...)
	return out
}

// Session is the aggregate root of one game: phase, active player, the
// deck, the current turn's response set and the history ledger. Exactly one
// session is live at a time; all mutation goes through the game package.
type Session struct {
	Started      bool      `json:"started"`
	Phase        Phase     `json:"phase"`
	ActivePlayer int       `json:"active_player"`
	TurnNumber   int       `json:"turn_number"` // completed turns so far
	StartedAt    time.Time `json:"started_at"`

	Deck         []Card `json:"deck"`
	CurrentCard  *Card  `json:"current_card,omitempty"`
	CardRevealed bool   `json:"card_revealed"`

	// Per-turn response set, cleared on every draw/advance.
	Responses   map[int]string    `json:"responses"`
	SubmittedAt map[int]time.Time `json:"submitted_at"`
	Reactions   map[int][]string  `json:"reactions"`

	// Favorites are keyed (turn, player) and survive across turns.
	Favorites map[int]map[int]bool `json:"favorites"`

	// Discards holds cards consumed by skipped turns. Deck, discards and
	// ledgered cards together partition the originally built deck.
	Discards []Card `json:"discards,omitempty"`

	Settings Settings `json:"settings"`
	History  History  `json:"history"`
}

// NewSession returns a fresh, not-yet-started session
func NewSession() *Session {
	return &Session{
		Phase:        PhaseWaiting,
		ActivePlayer: 1,
		Responses:    make(map[int]string),
		SubmittedAt:  make(map[int]time.Time),
		Reactions:    make(map[int][]string),
		Favorites:    make(map[int]map[int]bool),
		Settings:     DefaultSettings(),
	}
}

// DeckSize returns the number of cards left to draw
func (s *Session) DeckSize() int {
	return len(s.Deck)
}

// CurrentTurn returns the 1-based number of the in-progress turn
func (s *Session) CurrentTurn() int {
	return s.TurnNumber + 1
}
