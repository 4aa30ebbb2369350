package commands

import "context"

// SelectOrderCommandHandler hands the selection to the tracking view. It
// returns as soon as the view has torn down the previous selection; the order
// fetch, geocoding and position feed continue in the background.
type SelectOrderCommandHandler struct {
	view TrackingView
}

func NewSelectOrderCommandHandler(view TrackingView) SelectOrderCommandHandler {
	return SelectOrderCommandHandler{view: view}
}

func (h SelectOrderCommandHandler) Handle(_ context.Context, command SelectOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	return h.view.Select(command.OrderID(), command.Credential())
}
