package service

import "tabletalk/internal/models"

// builtInCards is the standard deck shipped with the game. Custom
// cards from the database are layered on top of these.
var builtInCards = []models.Card{
	// Single-response cards (the non-active player responds)
	{ID: "std-1", Prompt: "Tell a story about your most memorable childhood adventure.", Type: models.CardTypeSingle, Category: models.CategoryPersonal},
	{ID: "std-2", Prompt: "Describe your ideal day from sunrise to sunset.", Type: models.CardTypeSingle, Category: models.CategoryPersonal},
	{ID: "std-3", Prompt: "What's a skill you've always wanted to learn and why?", Type: models.CardTypeSingle, Category: models.CategoryCreative},
	{ID: "std-4", Prompt: "Share a moment that changed your perspective on life.", Type: models.CardTypeSingle, Category: models.CategoryDeep},
	{ID: "std-5", Prompt: "If you could have dinner with any historical figure, who would it be and what would you ask?", Type: models.CardTypeSingle, Category: models.CategoryPhilosophical},
	{ID: "std-6", Prompt: "Describe a place you've never been but dream of visiting.", Type: models.CardTypeSingle},
	{ID: "std-7", Prompt: "What's something you're grateful for that others might take for granted?", Type: models.CardTypeSingle},
	{ID: "std-8", Prompt: "Tell about a time you stepped outside your comfort zone.", Type: models.CardTypeSingle},
	{ID: "std-9", Prompt: "What's a book, movie, or song that deeply impacted you?", Type: models.CardTypeSingle},
	{ID: "std-10", Prompt: "Describe your perfect weekend getaway.", Type: models.CardTypeSingle},
	{ID: "std-11", Prompt: "What's a piece of advice you'd give to your younger self?", Type: models.CardTypeSingle},
	{ID: "std-12", Prompt: "Share a hobby or interest that brings you joy.", Type: models.CardTypeSingle},
	{ID: "std-13", Prompt: "What's something you've learned recently that surprised you?", Type: models.CardTypeSingle},
	{ID: "std-14", Prompt: "Describe a tradition that's meaningful to you.", Type: models.CardTypeSingle},
	{ID: "std-15", Prompt: "What's a goal you're working towards right now?", Type: models.CardTypeSingle},

	// Both-response cards (both players respond)
	{ID: "std-16", Prompt: "Both players: Share your favorite way to unwind after a long day.", Type: models.CardTypeBoth, Category: models.CategoryFun},
	{ID: "std-17", Prompt: "Both players: Describe your ideal vacation destination.", Type: models.CardTypeBoth, Category: models.CategoryPersonal},
	{ID: "std-18", Prompt: "Both players: What's a food you could eat every day and never get tired of?", Type: models.CardTypeBoth},
	{ID: "std-19", Prompt: "Both players: Share a random act of kindness you've experienced or given.", Type: models.CardTypeBoth},
	{ID: "std-20", Prompt: "Both players: What's something that always makes you smile?", Type: models.CardTypeBoth},
	{ID: "std-21", Prompt: "Both players: Describe your perfect morning routine.", Type: models.CardTypeBoth},
	{ID: "std-22", Prompt: "Both players: What's a quote or saying that resonates with you?", Type: models.CardTypeBoth},
	{ID: "std-23", Prompt: "Both players: Share something you're curious about or want to explore.", Type: models.CardTypeBoth},
	{ID: "std-24", Prompt: "Both players: What's a small moment of beauty you noticed recently?", Type: models.CardTypeBoth},
	{ID: "std-25", Prompt: "Both players: Describe a skill you admire in others.", Type: models.CardTypeBoth},
	{ID: "std-26", Prompt: "Both players: What's something you'd love to teach someone else?", Type: models.CardTypeBoth},
	{ID: "std-27", Prompt: "Both players: Share a memory that always brings you joy.", Type: models.CardTypeBoth},
	{ID: "std-28", Prompt: "Both players: What's a challenge you've overcome that made you stronger?", Type: models.CardTypeBoth},
	{ID: "std-29", Prompt: "Both players: Describe something you find inspiring.", Type: models.CardTypeBoth},
	{ID: "std-30", Prompt: "Both players: What's something you appreciate about the other player?", Type: models.CardTypeBoth},
}

// BuiltInCards returns a copy of the standard card set
func BuiltInCards() []models.Card {
	cards := make([]models.Card, len(builtInCards))
	copy(cards, builtInCards)
	return cards
}
