package game

import (
	"errors"
	"fmt"

	"tabletalk/internal/models"
)

// Common errors
var (
	ErrNotStarted      = errors.New("game has not been started")
	ErrEmptyResponse   = errors.New("response text is empty")
	ErrInvalidPlayer   = errors.New("player must be 1 or 2")
	ErrNotResponding   = errors.New("player is not required to respond to this card")
	ErrNothingToEdit   = errors.New("player has no submitted response to edit")
	ErrUnknownTurn     = errors.New("no such turn")
	ErrInvalidEmoji    = errors.New("reaction emoji is empty")
)

// InvalidTransitionError reports a command issued while its phase guard is
// unsatisfied. The session is left untouched.
type InvalidTransitionError struct {
	Action string
	Phase  models.Phase
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot %s in phase %q", e.Action, e.Phase)
}

func invalidTransition(action string, phase models.Phase) error {
	return &InvalidTransitionError{Action: action, Phase: phase}
}

// IsInvalidTransition reports whether err is an InvalidTransitionError
func IsInvalidTransition(err error) bool {
	var ite *InvalidTransitionError
	return errors.As(err, &ite)
}
