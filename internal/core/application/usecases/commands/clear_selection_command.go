package commands

import (
	"errors"

	"trackview/internal/pkg/guard"
)

var ErrClearSelectionCommandIsNotConstructed = errors.New(
	"ClearSelectionCommand must be created via NewClearSelectionCommand constructor",
)

// ClearSelectionCommand returns the tracking view to idle, releasing its
// position feed.
type ClearSelectionCommand struct {
	guard guard.ConstructorGuard
}

func NewClearSelectionCommand() ClearSelectionCommand {
	return ClearSelectionCommand{guard: guard.NewConstructorGuard()}
}

func (c ClearSelectionCommand) Validate() error {
	return c.guard.Validate(ErrClearSelectionCommandIsNotConstructed)
}
