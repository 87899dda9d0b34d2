package server

import (
	"context"

	"connectrpc.com/connect"

	"github.com/at-ishikawa/noteflow/internal/content"
)

type ListPlannerItemsRequest struct {
	DateStart string                `json:"date_start" validate:"omitempty,datetime=2006-01-02"`
	DateEnd   string                `json:"date_end" validate:"omitempty,datetime=2006-01-02"`
	ViewType  content.ViewType      `json:"view_type" validate:"omitempty,oneof=daily weekly monthly yearly"`
	Status    content.PlannerStatus `json:"status" validate:"omitempty,oneof=pending completed"`
}

type ListPlannerItemsResponse struct {
	Items []content.PlannerItem `json:"items"`
}

type PlannerItemResponse struct {
	Item *content.PlannerItem `json:"item"`
}

type ListLinkedNotesResponse struct {
	Notes []content.Note `json:"notes"`
}

func (h *Handler) ListPlannerItems(ctx context.Context, req *connect.Request[ListPlannerItemsRequest]) (*connect.Response[ListPlannerItemsResponse], error) {
	if err := validateRequest("list planner items", req.Msg); err != nil {
		return nil, err
	}
	items, err := h.Store.Planner.ListItems(ctx, content.PlannerFilter{
		DateStart: req.Msg.DateStart,
		DateEnd:   req.Msg.DateEnd,
		ViewType:  req.Msg.ViewType,
		Status:    req.Msg.Status,
	})
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&ListPlannerItemsResponse{Items: items}), nil
}

func (h *Handler) TogglePlannerItem(ctx context.Context, req *connect.Request[IDRequest]) (*connect.Response[PlannerItemResponse], error) {
	if err := validateRequest("toggle planner item", req.Msg); err != nil {
		return nil, err
	}
	item, err := h.Store.Planner.ToggleItemStatus(ctx, req.Msg.ID)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&PlannerItemResponse{Item: item}), nil
}

// ListNoteLinks returns the planner items linked to a note.
func (h *Handler) ListNoteLinks(ctx context.Context, req *connect.Request[NoteIDRequest]) (*connect.Response[ListPlannerItemsResponse], error) {
	if err := validateRequest("list note links", req.Msg); err != nil {
		return nil, err
	}
	items, err := h.Store.Planner.ListLinkedItems(ctx, req.Msg.NoteID)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&ListPlannerItemsResponse{Items: items}), nil
}

// ListPlannerItemLinks returns the notes linked to a planner item.
func (h *Handler) ListPlannerItemLinks(ctx context.Context, req *connect.Request[IDRequest]) (*connect.Response[ListLinkedNotesResponse], error) {
	if err := validateRequest("list planner item links", req.Msg); err != nil {
		return nil, err
	}
	notes, err := h.Store.Planner.ListLinkedNotes(ctx, req.Msg.ID)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&ListLinkedNotesResponse{Notes: notes}), nil
}
