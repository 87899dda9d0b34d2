// Package chat answers questions about the notes in folders in two model steps:
// select the relevant folders, then answer from their notes.
package chat

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/at-ishikawa/noteflow/internal/classifier"
	"github.com/at-ishikawa/noteflow/internal/content"
	"github.com/at-ishikawa/noteflow/internal/flow"
	"github.com/at-ishikawa/noteflow/internal/metrics"
)

const DefaultSessionTitle = "New Chat"

type Service struct {
	gateway      classifier.Gateway
	chats        content.ChatRepository
	folders      content.FolderRepository
	historyLimit int
	metrics      *metrics.Metrics
}

func NewService(gateway classifier.Gateway, chats content.ChatRepository, folders content.FolderRepository, historyLimit int, m *metrics.Metrics) *Service {
	return &Service{
		gateway:      gateway,
		chats:        chats,
		folders:      folders,
		historyLimit: historyLimit,
		metrics:      m,
	}
}

// NewSession starts a conversation. An empty title becomes DefaultSessionTitle.
func (s *Service) NewSession(ctx context.Context, title string) (*content.ChatSession, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		title = DefaultSessionTitle
	}
	return s.chats.CreateSession(ctx, title)
}

type query struct {
	SessionID string `json:"session_id" validate:"required"`
	Question  string `json:"question" validate:"required"`
}

// Query answers question within the session and stores both the question and
// the answer. The answer carries the thinking trace of both steps.
func (s *Service) Query(ctx context.Context, sessionID, question string) (*content.ChatMessage, error) {
	msg, err := s.query(ctx, sessionID, strings.TrimSpace(question))
	if err != nil {
		s.metrics.ObserveFlow("chat", metrics.Outcome(err))
		return nil, err
	}
	s.metrics.ObserveFlow("chat", "answered")
	return msg, nil
}

func (s *Service) query(ctx context.Context, sessionID, question string) (*content.ChatMessage, error) {
	if err := flow.Validate("chat query", query{SessionID: sessionID, Question: question}); err != nil {
		return nil, err
	}
	if _, err := s.chats.GetSession(ctx, sessionID); err != nil {
		return nil, err
	}
	messages, err := s.chats.ListMessages(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("list chat messages: %w", err)
	}
	history := s.history(messages)

	folders, err := s.folders.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list folders: %w", err)
	}
	if len(folders) == 0 {
		return nil, flow.New(flow.ErrValidation, "chat query", "no folders found, organize your notes into folders first")
	}
	folderInputs := make([]classifier.FolderInput, 0, len(folders))
	for _, f := range folders {
		folderInputs = append(folderInputs, classifier.FolderInput{ID: f.ID, Name: f.Name})
	}

	selection, err := s.gateway.SelectFolders(ctx, classifier.SelectFoldersRequest{
		Question: question,
		Folders:  folderInputs,
		History:  history,
	})
	if err != nil {
		return nil, err
	}

	thinking := &content.Thinking{Step1Reasoning: selection.Reasoning}
	var notes []content.Note
	seen := make(map[string]bool)
	for _, f := range folders {
		if !slices.Contains(selection.SelectedFolderIDs, f.ID) {
			continue
		}
		thinking.SelectedFolders = append(thinking.SelectedFolders, content.FolderRef{ID: f.ID, Name: f.Name})
		folderNotes, err := s.folders.ListNotes(ctx, f.ID)
		if err != nil {
			return nil, fmt.Errorf("list notes of folder %s: %w", f.ID, err)
		}
		for _, note := range folderNotes {
			if seen[note.ID] {
				continue
			}
			seen[note.ID] = true
			notes = append(notes, note)
		}
	}
	if len(notes) == 0 {
		return nil, flow.New(flow.ErrValidation, "chat query", "no notes found in the selected folders")
	}

	noteInputs := make([]classifier.NoteInput, 0, len(notes))
	for _, note := range notes {
		noteInputs = append(noteInputs, classifier.NewNoteInput(note))
		thinking.ExaminedNotes = append(thinking.ExaminedNotes, content.NoteRef{ID: note.ID, Title: note.Title})
	}
	answer, err := s.gateway.AnswerQuestion(ctx, classifier.AnswerQuestionRequest{
		Question: question,
		Notes:    noteInputs,
		History:  history,
	})
	if err != nil {
		return nil, err
	}
	thinking.Step2Reasoning = answer.Reasoning

	var referenced []string
	for _, id := range answer.ReferencedNoteIDs {
		if seen[id] && !slices.Contains(referenced, id) {
			referenced = append(referenced, id)
		}
	}

	if _, err := s.chats.CreateMessage(ctx, content.NewChatMessage{
		SessionID: sessionID,
		Role:      content.RoleUser,
		Content:   question,
	}); err != nil {
		return nil, fmt.Errorf("save question: %w", err)
	}
	msg, err := s.chats.CreateMessage(ctx, content.NewChatMessage{
		SessionID:         sessionID,
		Role:              content.RoleAssistant,
		Content:           answer.Answer,
		Thinking:          thinking,
		ReferencedNoteIDs: referenced,
	})
	if err != nil {
		return nil, fmt.Errorf("save answer: %w", err)
	}
	return msg, nil
}

// history returns the last historyLimit messages as model input.
func (s *Service) history(messages []content.ChatMessage) []classifier.HistoryMessage {
	if s.historyLimit <= 0 {
		return nil
	}
	if len(messages) > s.historyLimit {
		messages = messages[len(messages)-s.historyLimit:]
	}
	history := make([]classifier.HistoryMessage, 0, len(messages))
	for _, m := range messages {
		history = append(history, classifier.HistoryMessage{Role: string(m.Role), Content: m.Content})
	}
	return history
}
