package server

import (
	"context"

	"connectrpc.com/connect"

	"github.com/at-ishikawa/noteflow/internal/flow"
	"github.com/at-ishikawa/noteflow/internal/organize"
)

// Preview edit operations.
const (
	EditAddFolder        = "add_folder"
	EditRemoveFolder     = "remove_folder"
	EditAddSuggestion    = "add_suggestion"
	EditRemoveSuggestion = "remove_suggestion"
)

type OrganizePreviewResponse struct {
	Preview organize.Preview `json:"preview"`
	Empty   bool             `json:"empty"`
}

type EditOrganizePreviewRequest struct {
	Operation string `json:"operation" validate:"required,oneof=add_folder remove_folder add_suggestion remove_suggestion"`
	NoteID    string `json:"note_id"`
	Name      string `json:"name" validate:"required"`
	Color     string `json:"color"`
}

func (r EditOrganizePreviewRequest) edit() func(organize.Preview) organize.Preview {
	switch r.Operation {
	case EditAddFolder:
		return func(p organize.Preview) organize.Preview { return p.WithFolderAdded(r.NoteID, r.Name) }
	case EditRemoveFolder:
		return func(p organize.Preview) organize.Preview { return p.WithFolderRemoved(r.NoteID, r.Name) }
	case EditAddSuggestion:
		return func(p organize.Preview) organize.Preview { return p.WithSuggestionAdded(r.Name, r.Color) }
	default:
		return func(p organize.Preview) organize.Preview { return p.WithSuggestionRemoved(r.Name) }
	}
}

// RequestOrganizePreview opens the organize dialog, replacing any open one.
func (h *Handler) RequestOrganizePreview(ctx context.Context, req *connect.Request[Empty]) (*connect.Response[OrganizePreviewResponse], error) {
	session, err := h.Organizer.RequestPreview(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.organizing = session
	preview := session.Working()
	return connect.NewResponse(&OrganizePreviewResponse{Preview: preview, Empty: preview.IsEmpty()}), nil
}

func (h *Handler) GetOrganizePreview(ctx context.Context, req *connect.Request[Empty]) (*connect.Response[OrganizePreviewResponse], error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	session, err := h.openOrganize()
	if err != nil {
		return nil, err
	}
	preview := session.Working()
	return connect.NewResponse(&OrganizePreviewResponse{Preview: preview, Empty: preview.IsEmpty()}), nil
}

func (h *Handler) EditOrganizePreview(ctx context.Context, req *connect.Request[EditOrganizePreviewRequest]) (*connect.Response[OrganizePreviewResponse], error) {
	if err := validateRequest("edit organize preview", req.Msg); err != nil {
		return nil, err
	}
	if (req.Msg.Operation == EditAddFolder || req.Msg.Operation == EditRemoveFolder) && req.Msg.NoteID == "" {
		return nil, toConnectError(&flow.Error{
			Kind:   flow.ErrValidation,
			Op:     "edit organize preview",
			Msg:    "note_id is required for " + req.Msg.Operation,
			Fields: []flow.FieldViolation{{Field: "note_id", Description: "note_id is a required field"}},
		})
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	session, err := h.openOrganize()
	if err != nil {
		return nil, err
	}
	preview, err := session.Edit(req.Msg.edit())
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&OrganizePreviewResponse{Preview: preview, Empty: preview.IsEmpty()}), nil
}

// ApplyOrganizePreview applies the open preview. Per-note failures are part of
// the result, not an error.
func (h *Handler) ApplyOrganizePreview(ctx context.Context, req *connect.Request[Empty]) (*connect.Response[organize.ApplyResult], error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	session, err := h.openOrganize()
	if err != nil {
		return nil, err
	}
	result, err := h.Organizer.ApplySession(ctx, session)
	if err != nil {
		return nil, toConnectError(err)
	}
	h.organizing = nil
	return connect.NewResponse(&result), nil
}

func (h *Handler) CancelOrganizePreview(ctx context.Context, req *connect.Request[Empty]) (*connect.Response[Empty], error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.organizing = nil
	return connect.NewResponse(&Empty{}), nil
}

// openOrganize must be called with h.mu held.
func (h *Handler) openOrganize() (*organize.Session, error) {
	if h.organizing == nil {
		return nil, toConnectError(flow.New(flow.ErrNotFound, "organize preview", "no organize preview is open"))
	}
	return h.organizing, nil
}
