package models

import "time"

// HistoryEntry is an immutable snapshot of one completed turn. After append
// only its reaction sets may change, addressed by (turn, player).
type HistoryEntry struct {
	TurnNumber  int               `json:"turn_number"`
	Card        Card              `json:"card"`
	DrawnBy     int               `json:"drawn_by"`
	Responses   map[int]string    `json:"responses"`
	SubmittedAt map[int]time.Time `json:"submitted_at"`
	Reactions   map[int][]string  `json:"reactions"`
	CompletedAt time.Time         `json:"completed_at"`
}

// History is the append-only ledger of completed turns, ordered by turn
// number. It holds data plus read-only aggregate queries; formatting is the
// caller's concern.
type History []HistoryEntry

// TotalTurns returns the number of completed turns
func (h History) TotalTurns() int {
	return len(h)
}

// TotalResponses counts every recorded response across all turns
func (h History) TotalResponses() int {
	total := 0
	for _, entry := range h {
		total += len(entry.Responses)
	}
	return total
}

// ResponseCounts returns the number of responses recorded per player
func (h History) ResponseCounts() map[int]int {
	counts := map[int]int{1: 0, 2: 0}
	for _, entry := range h {
		for player := range entry.Responses {
			counts[player]++
		}
	}
	return counts
}

// Duration returns the wall-clock time between the first and last completed
// turn. Zero when fewer than two turns exist.
func (h History) Duration() time.Duration {
	if len(h) < 2 {
		return 0
	}
	return h[len(h)-1].CompletedAt.Sub(h[0].CompletedAt)
}

// MostActivePlayer returns the player with strictly more responses, or 0 on
// a tie.
func (h History) MostActivePlayer() int {
	counts := h.ResponseCounts()
	switch {
	case counts[1] > counts[2]:
		return 1
	case counts[2] > counts[1]:
		return 2
	default:
		return 0
	}
}

// Clone returns a deep copy of the ledger
func (h History) Clone() History {
	if h == nil {
		return nil
	}
	out := make(History, len(h))
	for i, entry := range h {
		out[i] = entry.Clone()
	}
	return out
}

// Clone returns a deep copy of the entry
func (e HistoryEntry) Clone() HistoryEntry {
	out := e
	out.Responses = copyStringMap(e.Responses)
	out.SubmittedAt = copyTimeMap(e.SubmittedAt)
	out.Reactions = copyReactionMap(e.Reactions)
	return out
}

func copyStringMap(m map[int]string) map[int]string {
	out := make(map[int]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func copyTimeMap(m map[int]time.Time) map[int]time.Time {
	out := make(map[int]time.Time, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func copyReactionMap(m map[int][]string) map[int][]string {
	out := make(map[int][]string, len(m))
	for k, v := range m {
		out[k] = append([]string(nil), v...)
	}
	return out
}
