package models

import "time"

// Snapshot is the immutable view of a session handed to presentation
// layers after every transition. It shares no memory with the live session;
// the deck itself is reduced to its size so draw order is never exposed.
type Snapshot struct {
	Started      bool              `json:"started"`
	Phase        Phase             `json:"phase"`
	ActivePlayer int               `json:"active_player"`
	TurnNumber   int               `json:"turn_number"`
	DeckSize     int               `json:"deck_size"`
	CurrentCard  *Card             `json:"current_card,omitempty"`
	CardRevealed bool              `json:"card_revealed"`
	Responses    map[int]string    `json:"responses"`
	SubmittedAt  map[int]time.Time `json:"submitted_at"`
	Reactions    map[int][]string  `json:"reactions"`
	Favorites    map[int]map[int]bool `json:"favorites"`
	Settings     Settings          `json:"settings"`
	History      History           `json:"history"`
}

// Snapshot builds the presentation view of the session
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Started:      s.Started,
		Phase:        s.Phase,
		ActivePlayer: s.ActivePlayer,
		TurnNumber:   s.TurnNumber,
		DeckSize:     len(s.Deck),
		CardRevealed: s.CardRevealed,
		Responses:    copyStringMap(s.Responses),
		SubmittedAt:  copyTimeMap(s.SubmittedAt),
		Reactions:    copyReactionMap(s.Reactions),
		Favorites:    make(map[int]map[int]bool, len(s.Favorites)),
		Settings:     s.Settings.Clone(),
		History:      s.History.Clone(),
	}

	if s.CurrentCard != nil {
		card := *s.CurrentCard
		snap.CurrentCard = &card
	}

	for turn, players := range s.Favorites {
		inner := make(map[int]bool, len(players))
		for player, fav := range players {
			inner[player] = fav
		}
		snap.Favorites[turn] = inner
	}

	return snap
}
