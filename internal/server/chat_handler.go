package server

import (
	"context"

	"connectrpc.com/connect"

	"github.com/at-ishikawa/noteflow/internal/content"
)

type CreateChatSessionRequest struct {
	Title string `json:"title" validate:"max=255"`
}

type ChatSessionResponse struct {
	Session *content.ChatSession `json:"session"`
}

type ListChatSessionsResponse struct {
	Sessions []content.ChatSession `json:"sessions"`
}

type SessionIDRequest struct {
	SessionID string `json:"session_id" validate:"required"`
}

type ListChatMessagesResponse struct {
	Messages []content.ChatMessage `json:"messages"`
}

type ChatQueryRequest struct {
	SessionID string `json:"session_id" validate:"required"`
	Question  string `json:"question" validate:"required"`
}

type ChatQueryResponse struct {
	Message *content.ChatMessage `json:"message"`
}

func (h *Handler) CreateChatSession(ctx context.Context, req *connect.Request[CreateChatSessionRequest]) (*connect.Response[ChatSessionResponse], error) {
	if err := validateRequest("create chat session", req.Msg); err != nil {
		return nil, err
	}
	session, err := h.Chat.NewSession(ctx, req.Msg.Title)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&ChatSessionResponse{Session: session}), nil
}

func (h *Handler) ListChatSessions(ctx context.Context, req *connect.Request[Empty]) (*connect.Response[ListChatSessionsResponse], error) {
	sessions, err := h.Store.Chat.ListSessions(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&ListChatSessionsResponse{Sessions: sessions}), nil
}

func (h *Handler) DeleteChatSession(ctx context.Context, req *connect.Request[SessionIDRequest]) (*connect.Response[Empty], error) {
	if err := validateRequest("delete chat session", req.Msg); err != nil {
		return nil, err
	}
	if err := h.Store.Chat.DeleteSession(ctx, req.Msg.SessionID); err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&Empty{}), nil
}

func (h *Handler) ListChatMessages(ctx context.Context, req *connect.Request[SessionIDRequest]) (*connect.Response[ListChatMessagesResponse], error) {
	if err := validateRequest("list chat messages", req.Msg); err != nil {
		return nil, err
	}
	if _, err := h.Store.Chat.GetSession(ctx, req.Msg.SessionID); err != nil {
		return nil, toConnectError(err)
	}
	messages, err := h.Store.Chat.ListMessages(ctx, req.Msg.SessionID)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&ListChatMessagesResponse{Messages: messages}), nil
}

func (h *Handler) ChatQuery(ctx context.Context, req *connect.Request[ChatQueryRequest]) (*connect.Response[ChatQueryResponse], error) {
	if err := validateRequest("chat query", req.Msg); err != nil {
		return nil, err
	}
	msg, err := h.Chat.Query(ctx, req.Msg.SessionID, req.Msg.Question)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&ChatQueryResponse{Message: msg}), nil
}
