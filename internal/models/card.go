package models

// CardType determines which players must respond to a drawn card
type CardType string

const (
	// CardTypeSingle means the non-drawing player responds
	CardTypeSingle CardType = "single-response"

	// CardTypeBoth means both players respond
	CardTypeBoth CardType = "both-response"
)

// Valid reports whether the card type is a known value
func (t CardType) Valid() bool {
	return t == CardTypeSingle || t == CardTypeBoth
}

// Category groups prompt cards by theme. Cards may be uncategorized.
type Category string

const (
	CategoryPersonal      Category = "personal"
	CategoryCreative      Category = "creative"
	CategoryPhilosophical Category = "philosophical"
	CategoryFun           Category = "fun"
	CategoryDeep          Category = "deep"
)

// Categories lists all known categories
func Categories() []Category {
	return []Category{
		CategoryPersonal,
		CategoryCreative,
		CategoryPhilosophical,
		CategoryFun,
		CategoryDeep,
	}
}

// Card is a single prompt. Immutable once created; ledger entries embed
// their own copy so later catalog edits never alter history.
type Card struct {
	ID       string   `json:"id"`
	Prompt   string   `json:"prompt"`
	Type     CardType `json:"type"`
	Category Category `json:"category,omitempty"`
	Custom   bool     `json:"custom"`
}
