// Package server provides Connect RPC handlers for the noteflow service.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"

	"connectrpc.com/connect"
	"google.golang.org/genproto/googleapis/rpc/errdetails"

	"github.com/at-ishikawa/noteflow/internal/chat"
	"github.com/at-ishikawa/noteflow/internal/classification"
	"github.com/at-ishikawa/noteflow/internal/content"
	"github.com/at-ishikawa/noteflow/internal/converter"
	"github.com/at-ishikawa/noteflow/internal/flow"
	"github.com/at-ishikawa/noteflow/internal/inspiration"
	"github.com/at-ishikawa/noteflow/internal/metrics"
	"github.com/at-ishikawa/noteflow/internal/organize"
)

// ServiceName prefixes every procedure path.
const ServiceName = "noteflow.v1.NoteFlowService"

// Services are the flows and repositories the handler serves.
type Services struct {
	Store       *content.Store
	Router      *classification.Router
	Categorizer *inspiration.Categorizer
	Gate        *inspiration.Gate
	Converter   *converter.Converter
	Organizer   *organize.Organizer
	Chat        *chat.Service
	Metrics     *metrics.Metrics
}

// Handler serves the noteflow RPCs. It owns the single open conversion and
// organize dialogs; the approval slot lives in the Gate.
type Handler struct {
	Services

	mu         sync.Mutex
	conversion *converter.Session
	organizing *organize.Session
}

func NewHandler(services Services) *Handler {
	return &Handler{Services: services}
}

// Handle registers every procedure on mux.
func (h *Handler) Handle(mux *http.ServeMux) {
	opts := []connect.HandlerOption{
		connect.WithCodec(jsonCodec{}),
		connect.WithInterceptors(metricsInterceptor(h.Metrics)),
	}

	// Notes and folders
	handle(mux, "CreateNote", h.CreateNote, opts)
	handle(mux, "GetNote", h.GetNote, opts)
	handle(mux, "ListNotes", h.ListNotes, opts)
	handle(mux, "UpdateNote", h.UpdateNote, opts)
	handle(mux, "DeleteNote", h.DeleteNote, opts)
	handle(mux, "CreateFolder", h.CreateFolder, opts)
	handle(mux, "ListFolders", h.ListFolders, opts)
	handle(mux, "DeleteFolder", h.DeleteFolder, opts)
	handle(mux, "AddNoteToFolder", h.AddNoteToFolder, opts)
	handle(mux, "RemoveNoteFromFolder", h.RemoveNoteFromFolder, opts)

	// Classification
	handle(mux, "ClassifyNote", h.ClassifyNote, opts)
	handle(mux, "CategorizeNote", h.CategorizeNote, opts)
	handle(mux, "ListCategories", h.ListCategories, opts)
	handle(mux, "GetPendingCategory", h.GetPendingCategory, opts)
	handle(mux, "ApproveCategory", h.ApproveCategory, opts)
	handle(mux, "RejectCategory", h.RejectCategory, opts)

	// Conversion
	handle(mux, "ConvertNote", h.ConvertNote, opts)
	handle(mux, "GetConversion", h.GetConversion, opts)
	handle(mux, "SelectSuggestion", h.SelectSuggestion, opts)
	handle(mux, "EditSuggestion", h.EditSuggestion, opts)
	handle(mux, "ConfirmConversion", h.ConfirmConversion, opts)
	handle(mux, "CancelConversion", h.CancelConversion, opts)

	// Planner
	handle(mux, "ListPlannerItems", h.ListPlannerItems, opts)
	handle(mux, "TogglePlannerItem", h.TogglePlannerItem, opts)
	handle(mux, "ListNoteLinks", h.ListNoteLinks, opts)
	handle(mux, "ListPlannerItemLinks", h.ListPlannerItemLinks, opts)

	// Organize
	handle(mux, "RequestOrganizePreview", h.RequestOrganizePreview, opts)
	handle(mux, "GetOrganizePreview", h.GetOrganizePreview, opts)
	handle(mux, "EditOrganizePreview", h.EditOrganizePreview, opts)
	handle(mux, "ApplyOrganizePreview", h.ApplyOrganizePreview, opts)
	handle(mux, "CancelOrganizePreview", h.CancelOrganizePreview, opts)

	// Chat
	handle(mux, "CreateChatSession", h.CreateChatSession, opts)
	handle(mux, "ListChatSessions", h.ListChatSessions, opts)
	handle(mux, "DeleteChatSession", h.DeleteChatSession, opts)
	handle(mux, "ListChatMessages", h.ListChatMessages, opts)
	handle(mux, "ChatQuery", h.ChatQuery, opts)
}

// Procedure returns the HTTP path of the RPC called name.
func Procedure(name string) string {
	return "/" + ServiceName + "/" + name
}

func handle[Req, Res any](
	mux *http.ServeMux,
	name string,
	fn func(context.Context, *connect.Request[Req]) (*connect.Response[Res], error),
	opts []connect.HandlerOption,
) {
	procedure := Procedure(name)
	mux.Handle(procedure, connect.NewUnaryHandler(procedure, fn, opts...))
}

// jsonCodec encodes plain Go messages. It replaces connect's protojson codec
// under the same name, so clients send application/json.
type jsonCodec struct{}

func (jsonCodec) Name() string { return "json" }

func (jsonCodec) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

func (jsonCodec) Unmarshal(data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, v)
}

// NewClient returns a connect client for the RPC called name.
func NewClient[Req, Res any](httpClient connect.HTTPClient, baseURL, name string) *connect.Client[Req, Res] {
	return connect.NewClient[Req, Res](httpClient, baseURL+Procedure(name), connect.WithCodec(jsonCodec{}))
}

func metricsInterceptor(m *metrics.Metrics) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			res, err := next(ctx, req)
			code := "ok"
			if err != nil {
				code = connect.CodeOf(err).String()
			}
			m.ObserveRPC(req.Spec().Procedure, code)
			return res, err
		}
	}
}

// toConnectError maps a flow error kind to a connect code. Validation and
// resolution errors carry their field violations as BadRequest details.
func toConnectError(err error) *connect.Error {
	if err == nil {
		return nil
	}
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		return connectErr
	}

	code := connect.CodeInternal
	switch {
	case errors.Is(err, context.Canceled):
		code = connect.CodeCanceled
	case errors.Is(err, context.DeadlineExceeded):
		code = connect.CodeDeadlineExceeded
	case errors.Is(err, flow.ErrValidation):
		code = connect.CodeInvalidArgument
	case errors.Is(err, flow.ErrNotFound):
		code = connect.CodeNotFound
	case errors.Is(err, flow.ErrConflict):
		code = connect.CodeAlreadyExists
	case errors.Is(err, flow.ErrResolution):
		code = connect.CodeFailedPrecondition
	case errors.Is(err, flow.ErrNetwork):
		code = connect.CodeUnavailable
	case errors.Is(err, flow.ErrService):
		code = connect.CodeInternal
	}
	connectErr = connect.NewError(code, err)

	violations := flow.Violations(err)
	if len(violations) == 0 {
		return connectErr
	}
	fieldViolations := make([]*errdetails.BadRequest_FieldViolation, 0, len(violations))
	for _, v := range violations {
		fieldViolations = append(fieldViolations, &errdetails.BadRequest_FieldViolation{
			Field:       v.Field,
			Description: v.Description,
		})
	}
	if detail, detailErr := connect.NewErrorDetail(&errdetails.BadRequest{
		FieldViolations: fieldViolations,
	}); detailErr == nil {
		connectErr.AddDetail(detail)
	}
	return connectErr
}

func validateRequest(op string, msg any) error {
	if err := flow.Validate(op, msg); err != nil {
		return toConnectError(err)
	}
	return nil
}

// Empty is the message of RPCs without parameters or results.
type Empty struct{}
