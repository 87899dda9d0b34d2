package content

import (
	"context"
)

//go:generate mockgen -source=repository.go -destination=../mocks/content/mock_repository.go -package=mock_content

// NoteRepository defines operations for managing notes.
type NoteRepository interface {
	Create(ctx context.Context, params NewNote) (*Note, error)
	Get(ctx context.Context, id string) (*Note, error)
	List(ctx context.Context) ([]Note, error)
	// ListUnorganized returns notes that belong to no folder.
	ListUnorganized(ctx context.Context) ([]Note, error)
	Update(ctx context.Context, id string, params NoteUpdate) (*Note, error)
	MarkInspiration(ctx context.Context, id string) (*Note, error)
	MarkAnalyzed(ctx context.Context, id string) (*Note, error)
	Delete(ctx context.Context, id string) error
}

// FolderRepository defines operations for folders and note memberships.
type FolderRepository interface {
	Create(ctx context.Context, params NewFolder) (*Folder, error)
	// CreateBatch creates every folder or none of them.
	CreateBatch(ctx context.Context, params []NewFolder) ([]Folder, error)
	List(ctx context.Context) ([]Folder, error)
	// Delete removes the folder and its memberships; notes are kept.
	Delete(ctx context.Context, id string) error
	ListNoteFolderIDs(ctx context.Context, noteID string) ([]string, error)
	AddNote(ctx context.Context, folderID, noteID string) ([]string, error)
	RemoveNote(ctx context.Context, folderID, noteID string) ([]string, error)
	// ReplaceAssigned sets the AI-sourced memberships of a note to folderIDs and
	// leaves user-sourced memberships untouched. It returns the full resulting set.
	ReplaceAssigned(ctx context.Context, noteID string, folderIDs []string) ([]string, error)
	ListNotes(ctx context.Context, folderID string) ([]Note, error)
}

// CategoryRepository defines operations for inspiration categories and assignments.
type CategoryRepository interface {
	Create(ctx context.Context, params NewCategory) (*Category, error)
	Get(ctx context.Context, id string) (*Category, error)
	FindByName(ctx context.Context, name string, status CategoryStatus) (*Category, error)
	// List returns categories with status, or all of them if status is empty.
	List(ctx context.Context, status CategoryStatus) ([]Category, error)
	Activate(ctx context.Context, id string) (*Category, error)
	// Delete removes the category and every inspiration assigned to it.
	Delete(ctx context.Context, id string) error
	// AssignInspiration replaces any previous assignment of the note.
	AssignInspiration(ctx context.Context, params NewInspiration) (*Inspiration, error)
	GetInspirationByNote(ctx context.Context, noteID string) (*Inspiration, error)
	ListInspirations(ctx context.Context) ([]Inspiration, error)
	DeleteInspiration(ctx context.Context, id string) error
}

// PlannerRepository defines operations for planner items and their links to notes.
type PlannerRepository interface {
	CreateItem(ctx context.Context, params NewPlannerItem) (*PlannerItem, error)
	GetItem(ctx context.Context, id string) (*PlannerItem, error)
	ListItems(ctx context.Context, filter PlannerFilter) ([]PlannerItem, error)
	ToggleItemStatus(ctx context.Context, id string) (*PlannerItem, error)
	DeleteItem(ctx context.Context, id string) error
	// CreateLink returns the existing link if the pair is already linked.
	CreateLink(ctx context.Context, noteID, plannerItemID string) (*Link, error)
	ListLinkedItems(ctx context.Context, noteID string) ([]PlannerItem, error)
	ListLinkedNotes(ctx context.Context, plannerItemID string) ([]Note, error)
}

// ChatRepository defines operations for chat sessions and messages.
type ChatRepository interface {
	CreateSession(ctx context.Context, title string) (*ChatSession, error)
	GetSession(ctx context.Context, id string) (*ChatSession, error)
	ListSessions(ctx context.Context) ([]ChatSession, error)
	DeleteSession(ctx context.Context, id string) error
	ListMessages(ctx context.Context, sessionID string) ([]ChatMessage, error)
	CreateMessage(ctx context.Context, params NewChatMessage) (*ChatMessage, error)
}
