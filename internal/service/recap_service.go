package service

import (
	"fmt"
	"strings"
	"time"

	"tabletalk/internal/models"
)

const recapDivider = "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━"

// Recap summarizes a finished (or in-progress) game from the ledger
type Recap struct {
	TotalTurns       int                   `json:"totalTurns"`
	TotalResponses   int                   `json:"totalResponses"`
	ResponseCounts   map[int]int           `json:"responseCounts"`
	Duration         time.Duration         `json:"duration"`
	MostActivePlayer int                   `json:"mostActivePlayer"`
	PlayerNames      map[int]string        `json:"playerNames"`
	Timeline         []models.HistoryEntry `json:"timeline"`
}

// RecapService derives game summaries from the live session's ledger
type RecapService struct {
	gameService *GameService
}

// NewRecapService creates a new recap service
func NewRecapService(gameService *GameService) *RecapService {
	return &RecapService{gameService: gameService}
}

// BuildRecap assembles the aggregate view of the current game
func (s *RecapService) BuildRecap() *Recap {
	history := s.gameService.History()
	state := s.gameService.State()

	return &Recap{
		TotalTurns:       history.TotalTurns(),
		TotalResponses:   history.TotalResponses(),
		ResponseCounts:   history.ResponseCounts(),
		Duration:         history.Duration(),
		MostActivePlayer: history.MostActivePlayer(),
		PlayerNames:      state.Settings.PlayerNames,
		Timeline:         []models.HistoryEntry(history),
	}
}

// RenderText formats a recap as shareable plain text
func (s *RecapService) RenderText(recap *Recap) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🎴 Card Game Recap\n\n")
	fmt.Fprintf(&b, "Total Turns: %d\n\n", recap.TotalTurns)
	fmt.Fprintf(&b, "%s\n\n", recapDivider)

	for _, entry := range recap.Timeline {
		fmt.Fprintf(&b, "Turn %d\n", entry.TurnNumber)
		fmt.Fprintf(&b, "Card: %s\n", entry.Card.Prompt)
		fmt.Fprintf(&b, "Type: %s\n", cardTypeLabel(entry.Card.Type))
		fmt.Fprintf(&b, "Drawn by: %s\n\n", playerName(recap.PlayerNames, entry.DrawnBy))

		for _, player := range []int{1, 2} {
			if response, ok := entry.Responses[player]; ok {
				fmt.Fprintf(&b, "%s: %s\n", playerName(recap.PlayerNames, player), response)
			}
		}
		fmt.Fprintf(&b, "\n%s\n\n", recapDivider)
	}

	return b.String()
}

func cardTypeLabel(t models.CardType) string {
	if t == models.CardTypeSingle {
		return "Single Response"
	}
	return "Both Respond"
}

func playerName(names map[int]string, player int) string {
	if name, ok := names[player]; ok && name != "" {
		return name
	}
	return fmt.Sprintf("Player %d", player)
}
