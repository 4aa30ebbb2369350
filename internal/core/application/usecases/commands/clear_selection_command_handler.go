package commands

import "context"

type ClearSelectionCommandHandler struct {
	view TrackingView
}

func NewClearSelectionCommandHandler(view TrackingView) ClearSelectionCommandHandler {
	return ClearSelectionCommandHandler{view: view}
}

func (h ClearSelectionCommandHandler) Handle(_ context.Context, command ClearSelectionCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	return h.view.Select("", "")
}
