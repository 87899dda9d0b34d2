package server

import (
	"context"

	"connectrpc.com/connect"

	"github.com/at-ishikawa/noteflow/internal/content"
)

type IDRequest struct {
	ID string `json:"id" validate:"required"`
}

type NoteResponse struct {
	Note *content.Note `json:"note"`
}

type ListNotesResponse struct {
	Notes []content.Note `json:"notes"`
}

type UpdateNoteRequest struct {
	ID string `json:"id" validate:"required"`
	content.NoteUpdate
}

type FolderResponse struct {
	Folder *content.Folder `json:"folder"`
}

type ListFoldersResponse struct {
	Folders []content.Folder `json:"folders"`
}

type MembershipRequest struct {
	FolderID string `json:"folder_id" validate:"required"`
	NoteID   string `json:"note_id" validate:"required"`
}

// MembershipResponse is the full folder set of the note after the change.
type MembershipResponse struct {
	NoteID    string   `json:"note_id"`
	FolderIDs []string `json:"folder_ids"`
}

func (h *Handler) CreateNote(ctx context.Context, req *connect.Request[content.NewNote]) (*connect.Response[NoteResponse], error) {
	if err := validateRequest("create note", req.Msg); err != nil {
		return nil, err
	}
	note, err := h.Store.Notes.Create(ctx, *req.Msg)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&NoteResponse{Note: note}), nil
}

func (h *Handler) GetNote(ctx context.Context, req *connect.Request[IDRequest]) (*connect.Response[NoteResponse], error) {
	if err := validateRequest("get note", req.Msg); err != nil {
		return nil, err
	}
	note, err := h.Store.Notes.Get(ctx, req.Msg.ID)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&NoteResponse{Note: note}), nil
}

func (h *Handler) ListNotes(ctx context.Context, req *connect.Request[Empty]) (*connect.Response[ListNotesResponse], error) {
	notes, err := h.Store.Notes.List(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&ListNotesResponse{Notes: notes}), nil
}

func (h *Handler) UpdateNote(ctx context.Context, req *connect.Request[UpdateNoteRequest]) (*connect.Response[NoteResponse], error) {
	if err := validateRequest("update note", req.Msg); err != nil {
		return nil, err
	}
	note, err := h.Store.Notes.Update(ctx, req.Msg.ID, req.Msg.NoteUpdate)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&NoteResponse{Note: note}), nil
}

func (h *Handler) DeleteNote(ctx context.Context, req *connect.Request[IDRequest]) (*connect.Response[Empty], error) {
	if err := validateRequest("delete note", req.Msg); err != nil {
		return nil, err
	}
	if err := h.Store.Notes.Delete(ctx, req.Msg.ID); err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&Empty{}), nil
}

func (h *Handler) CreateFolder(ctx context.Context, req *connect.Request[content.NewFolder]) (*connect.Response[FolderResponse], error) {
	if err := validateRequest("create folder", req.Msg); err != nil {
		return nil, err
	}
	folder, err := h.Store.Folders.Create(ctx, *req.Msg)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&FolderResponse{Folder: folder}), nil
}

func (h *Handler) ListFolders(ctx context.Context, req *connect.Request[Empty]) (*connect.Response[ListFoldersResponse], error) {
	folders, err := h.Store.Folders.List(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&ListFoldersResponse{Folders: folders}), nil
}

func (h *Handler) DeleteFolder(ctx context.Context, req *connect.Request[IDRequest]) (*connect.Response[Empty], error) {
	if err := validateRequest("delete folder", req.Msg); err != nil {
		return nil, err
	}
	if err := h.Store.Folders.Delete(ctx, req.Msg.ID); err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&Empty{}), nil
}

func (h *Handler) AddNoteToFolder(ctx context.Context, req *connect.Request[MembershipRequest]) (*connect.Response[MembershipResponse], error) {
	if err := validateRequest("add note to folder", req.Msg); err != nil {
		return nil, err
	}
	ids, err := h.Store.Folders.AddNote(ctx, req.Msg.FolderID, req.Msg.NoteID)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&MembershipResponse{NoteID: req.Msg.NoteID, FolderIDs: ids}), nil
}

func (h *Handler) RemoveNoteFromFolder(ctx context.Context, req *connect.Request[MembershipRequest]) (*connect.Response[MembershipResponse], error) {
	if err := validateRequest("remove note from folder", req.Msg); err != nil {
		return nil, err
	}
	ids, err := h.Store.Folders.RemoveNote(ctx, req.Msg.FolderID, req.Msg.NoteID)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&MembershipResponse{NoteID: req.Msg.NoteID, FolderIDs: ids}), nil
}
