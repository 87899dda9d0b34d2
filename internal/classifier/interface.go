// Package classifier defines the contract of the external AI service that
// classifies, categorizes, converts and organizes notes.
package classifier

import (
	"context"

	"github.com/at-ishikawa/noteflow/internal/content"
)

//go:generate mockgen -source=interface.go -destination=../mocks/classifier/mock_gateway.go -package=mock_classifier

// Gateway is a stateless request/response wrapper around the classifier service.
// Implementations return errors of kind flow.ErrNetwork or flow.ErrService.
type Gateway interface {
	Classify(ctx context.Context, req ClassifyRequest) (ClassifyResponse, error)
	Categorize(ctx context.Context, req CategorizeRequest) (CategorizeResponse, error)
	Translate(ctx context.Context, req TranslateRequest) (TranslateResponse, error)
	Organize(ctx context.Context, req OrganizeRequest) (OrganizeResponse, error)
	SelectFolders(ctx context.Context, req SelectFoldersRequest) (SelectFoldersResponse, error)
	AnswerQuestion(ctx context.Context, req AnswerQuestionRequest) (AnswerQuestionResponse, error)
}

// NoteInput is the part of a note the model sees.
type NoteInput struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

// NewNoteInput returns the model view of note.
func NewNoteInput(note content.Note) NoteInput {
	return NoteInput{ID: note.ID, Title: note.Title, Body: note.Body}
}

type Kind string

const (
	KindInspiration Kind = "inspiration"
	KindTask        Kind = "task"
)

type ClassifyRequest struct {
	Note NoteInput
}

type ClassifyResponse struct {
	Kind       Kind    `json:"classification"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
}

type CategorizeRequest struct {
	Note NoteInput
	// ActiveCategories are the names the model may pick as an existing category.
	ActiveCategories []string
}

type CategorizeResponse struct {
	Category      string  `json:"category"`
	Confidence    float64 `json:"confidence"`
	IsNewCategory bool    `json:"is_new_category"`
	Reasoning     string  `json:"reasoning"`
}

type TranslateRequest struct {
	Note NoteInput
	// Today anchors relative dates such as "tomorrow", formatted as 2006-01-02.
	Today string
}

// TaskSuggestion is one way to turn a note into a planner item.
type TaskSuggestion struct {
	Title    string `json:"title"`
	Body     string `json:"body"`
	Date     string `json:"date"`
	Time     string `json:"time,omitempty"`
	ViewType string `json:"view_type"`
}

type TranslateResponse struct {
	Suggestions []TaskSuggestion `json:"suggestions"`
}

type FolderSuggestion struct {
	Name  string `json:"name" yaml:"name"`
	Color string `json:"color,omitempty" yaml:"color,omitempty"`
}

type NoteAssignment struct {
	NoteID      string   `json:"note_id" yaml:"note_id"`
	FolderNames []string `json:"folder_names" yaml:"folder_names"`
	Reasoning   string   `json:"reasoning" yaml:"reasoning"`
}

type OrganizeRequest struct {
	Notes           []NoteInput
	ExistingFolders []string
}

type OrganizeResponse struct {
	SuggestedFolders []FolderSuggestion `json:"suggested_folders"`
	NoteAssignments  []NoteAssignment   `json:"note_assignments"`
}

// HistoryMessage is a previous turn of a chat session.
type HistoryMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type FolderInput struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type SelectFoldersRequest struct {
	Question string
	Folders  []FolderInput
	History  []HistoryMessage
}

type SelectFoldersResponse struct {
	Reasoning         string   `json:"reasoning"`
	SelectedFolderIDs []string `json:"selected_folder_ids"`
}

type AnswerQuestionRequest struct {
	Question string
	Notes    []NoteInput
	History  []HistoryMessage
}

type AnswerQuestionResponse struct {
	Reasoning         string   `json:"reasoning"`
	Answer            string   `json:"answer"`
	ReferencedNoteIDs []string `json:"referenced_note_ids"`
}
