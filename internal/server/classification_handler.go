package server

import (
	"context"

	"connectrpc.com/connect"
	"google.golang.org/genproto/googleapis/rpc/errdetails"

	"github.com/at-ishikawa/noteflow/internal/classifier"
	"github.com/at-ishikawa/noteflow/internal/content"
	"github.com/at-ishikawa/noteflow/internal/converter"
	"github.com/at-ishikawa/noteflow/internal/flow"
	"github.com/at-ishikawa/noteflow/internal/inspiration"
)

type NoteIDRequest struct {
	NoteID string `json:"note_id" validate:"required"`
}

// ConversionView is the open conversion dialog as shown to the user.
type ConversionView struct {
	NoteID      string            `json:"note_id"`
	State       converter.State   `json:"state"`
	Suggestions []converter.Draft `json:"suggestions"`
	ActiveIndex int               `json:"active_index"`
}

func newConversionView(s *converter.Session) *ConversionView {
	return &ConversionView{
		NoteID:      s.Note().ID,
		State:       s.State(),
		Suggestions: s.Drafts(),
		ActiveIndex: s.ActiveIndex(),
	}
}

type ClassifyNoteResponse struct {
	Classification classifier.ClassifyResponse `json:"classification"`
	Inspiration    *inspiration.Result         `json:"inspiration,omitempty"`
	Conversion     *ConversionView             `json:"conversion,omitempty"`
}

type CategorizeNoteResponse struct {
	Result inspiration.Result `json:"result"`
}

type ListCategoriesRequest struct {
	Status content.CategoryStatus `json:"status" validate:"omitempty,oneof=active pending_approval"`
}

type ListCategoriesResponse struct {
	Categories   []content.Category    `json:"categories"`
	Inspirations []content.Inspiration `json:"inspirations"`
}

type PendingCategoryResponse struct {
	Proposal *inspiration.Proposal `json:"proposal,omitempty"`
}

type ApproveCategoryRequest struct {
	CategoryID string `json:"category_id" validate:"required"`
	NoteID     string `json:"note_id"`
}

type CategoryIDRequest struct {
	CategoryID string `json:"category_id" validate:"required"`
}

type SelectSuggestionRequest struct {
	Index int `json:"index" validate:"gte=0"`
}

type ConfirmConversionResponse struct {
	Commit     converter.Commit `json:"commit"`
	Conversion *ConversionView  `json:"conversion"`
}

// ClassifyNote classifies the note and runs the flow it belongs to. A task
// opens the conversion dialog, replacing any open one.
func (h *Handler) ClassifyNote(ctx context.Context, req *connect.Request[NoteIDRequest]) (*connect.Response[ClassifyNoteResponse], error) {
	if err := validateRequest("classify note", req.Msg); err != nil {
		return nil, err
	}
	note, err := h.Store.Notes.Get(ctx, req.Msg.NoteID)
	if err != nil {
		return nil, toConnectError(err)
	}
	outcome, err := h.Router.Classify(ctx, *note)
	if err != nil {
		return nil, toConnectError(err)
	}

	res := &ClassifyNoteResponse{Classification: outcome.Classification, Inspiration: outcome.Inspiration}
	if outcome.Conversion != nil {
		h.mu.Lock()
		h.conversion = outcome.Conversion
		res.Conversion = newConversionView(outcome.Conversion)
		h.mu.Unlock()
	}
	return connect.NewResponse(res), nil
}

func (h *Handler) CategorizeNote(ctx context.Context, req *connect.Request[NoteIDRequest]) (*connect.Response[CategorizeNoteResponse], error) {
	if err := validateRequest("categorize note", req.Msg); err != nil {
		return nil, err
	}
	note, err := h.Store.Notes.Get(ctx, req.Msg.NoteID)
	if err != nil {
		return nil, toConnectError(err)
	}
	result, err := h.Categorizer.Categorize(ctx, *note)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&CategorizeNoteResponse{Result: result}), nil
}

func (h *Handler) ListCategories(ctx context.Context, req *connect.Request[ListCategoriesRequest]) (*connect.Response[ListCategoriesResponse], error) {
	if err := validateRequest("list categories", req.Msg); err != nil {
		return nil, err
	}
	categories, err := h.Store.Categories.List(ctx, req.Msg.Status)
	if err != nil {
		return nil, toConnectError(err)
	}
	inspirations, err := h.Store.Categories.ListInspirations(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&ListCategoriesResponse{Categories: categories, Inspirations: inspirations}), nil
}

func (h *Handler) GetPendingCategory(ctx context.Context, req *connect.Request[Empty]) (*connect.Response[PendingCategoryResponse], error) {
	res := &PendingCategoryResponse{}
	if proposal, ok := h.Gate.Pending(); ok {
		res.Proposal = &proposal
	}
	return connect.NewResponse(res), nil
}

func (h *Handler) ApproveCategory(ctx context.Context, req *connect.Request[ApproveCategoryRequest]) (*connect.Response[inspiration.ApproveResult], error) {
	if err := validateRequest("approve category", req.Msg); err != nil {
		return nil, err
	}
	result, err := h.Gate.Approve(ctx, req.Msg.CategoryID, req.Msg.NoteID)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&result), nil
}

func (h *Handler) RejectCategory(ctx context.Context, req *connect.Request[CategoryIDRequest]) (*connect.Response[Empty], error) {
	if err := validateRequest("reject category", req.Msg); err != nil {
		return nil, err
	}
	if err := h.Gate.Reject(ctx, req.Msg.CategoryID); err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&Empty{}), nil
}

// ConvertNote opens the conversion dialog for the note, replacing any open one.
func (h *Handler) ConvertNote(ctx context.Context, req *connect.Request[NoteIDRequest]) (*connect.Response[ConversionView], error) {
	if err := validateRequest("convert note", req.Msg); err != nil {
		return nil, err
	}
	note, err := h.Store.Notes.Get(ctx, req.Msg.NoteID)
	if err != nil {
		return nil, toConnectError(err)
	}
	session, err := h.Converter.Convert(ctx, *note)
	if err != nil {
		return nil, toConnectError(err)
	}
	h.Metrics.ObserveFlow("convert", string(session.State()))

	h.mu.Lock()
	defer h.mu.Unlock()
	h.conversion = session
	return connect.NewResponse(newConversionView(session)), nil
}

func (h *Handler) GetConversion(ctx context.Context, req *connect.Request[Empty]) (*connect.Response[ConversionView], error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	session, err := h.openConversion()
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(newConversionView(session)), nil
}

func (h *Handler) SelectSuggestion(ctx context.Context, req *connect.Request[SelectSuggestionRequest]) (*connect.Response[ConversionView], error) {
	if err := validateRequest("select suggestion", req.Msg); err != nil {
		return nil, err
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	session, err := h.openConversion()
	if err != nil {
		return nil, err
	}
	if err := session.Select(req.Msg.Index); err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(newConversionView(session)), nil
}

func (h *Handler) EditSuggestion(ctx context.Context, req *connect.Request[converter.DraftEdit]) (*connect.Response[ConversionView], error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	session, err := h.openConversion()
	if err != nil {
		return nil, err
	}
	if _, err := session.Edit(*req.Msg); err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(newConversionView(session)), nil
}

// ConfirmConversion commits the active suggestion. The dialog stays open while
// the confirmation runs so that nothing else can replace it.
func (h *Handler) ConfirmConversion(ctx context.Context, req *connect.Request[Empty]) (*connect.Response[ConfirmConversionResponse], error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	session, err := h.openConversion()
	if err != nil {
		return nil, err
	}
	commit, err := h.Converter.Confirm(ctx, session)
	if err != nil {
		// A committed session cannot be confirmed again, so the slot is freed
		// and the written ids travel in the error.
		if session.State() == converter.StateCommitted {
			h.Metrics.ObserveFlow("convert", "partially_committed")
			h.conversion = nil
		}
		return nil, commitError(err, commit)
	}
	h.Metrics.ObserveFlow("convert", string(session.State()))
	h.conversion = nil
	return connect.NewResponse(&ConfirmConversionResponse{Commit: commit, Conversion: newConversionView(session)}), nil
}

// CommitIncompleteReason marks an ErrorInfo detail of a confirmation that
// stopped after running some of its steps.
const CommitIncompleteReason = "CONVERSION_INCOMPLETE"

// commitError adds the status of every step and the ids written before the
// failure as an ErrorInfo detail. Metadata keys are "step.<name>",
// "planner_item_id", "link_id" and "note_id".
func commitError(err error, commit converter.Commit) *connect.Error {
	connectErr := toConnectError(err)
	if len(commit.Steps) == 0 {
		return connectErr
	}
	metadata := make(map[string]string, len(commit.Steps)+3)
	for _, step := range commit.Steps {
		metadata["step."+step.Name] = string(step.Status)
	}
	if commit.Item != nil {
		metadata["planner_item_id"] = commit.Item.ID
	}
	if commit.Link != nil {
		metadata["link_id"] = commit.Link.ID
	}
	if commit.Note != nil {
		metadata["note_id"] = commit.Note.ID
	}
	if detail, detailErr := connect.NewErrorDetail(&errdetails.ErrorInfo{
		Reason:   CommitIncompleteReason,
		Domain:   ServiceName,
		Metadata: metadata,
	}); detailErr == nil {
		connectErr.AddDetail(detail)
	}
	return connectErr
}

func (h *Handler) CancelConversion(ctx context.Context, req *connect.Request[Empty]) (*connect.Response[ConversionView], error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	session, err := h.openConversion()
	if err != nil {
		return nil, err
	}
	session.Cancel()
	h.conversion = nil
	return connect.NewResponse(newConversionView(session)), nil
}

// openConversion must be called with h.mu held.
func (h *Handler) openConversion() (*converter.Session, error) {
	if h.conversion == nil {
		return nil, toConnectError(flow.New(flow.ErrNotFound, "conversion", "no conversion is open"))
	}
	return h.conversion, nil
}
