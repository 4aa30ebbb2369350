package queries

import (
	"context"

	"trackview/internal/core/domain/model/tracking"
)

type GetMapViewQueryHandler struct {
	viewer MapViewer
}

func NewGetMapViewQueryHandler(viewer MapViewer) GetMapViewQueryHandler {
	return GetMapViewQueryHandler{viewer: viewer}
}

// Handle never fails for a constructed query: a view with nothing resolved
// yet is still a valid map centred on the default coordinate.
func (h GetMapViewQueryHandler) Handle(_ context.Context, query GetMapViewQuery) (GetMapViewQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetMapViewQueryResponse{}, err
	}

	view := h.viewer.View()

	resp := GetMapViewQueryResponse{
		Phase:   view.Phase,
		OrderID: view.OrderID,
		Center:  view.Center(),
		Zoom:    tracking.DefaultZoom,
		Markers: view.Markers(),
	}
	if view.Order != nil {
		resp.OrderStatus = view.Order.Status()
	}
	if resp.Markers == nil {
		resp.Markers = []tracking.Marker{}
	}

	return resp, nil
}
