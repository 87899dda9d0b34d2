// Package content provides the notes, folders, categories, planner items and
// chat records the classification flows read and mutate.
package content

import (
	"time"
)

type Note struct {
	ID            string    `db:"id" json:"id"`
	Title         string    `db:"title" json:"title"`
	Body          string    `db:"body" json:"body"`
	IsInspiration bool      `db:"is_inspiration" json:"is_inspiration"`
	IsAnalyzed    bool      `db:"is_analyzed" json:"is_analyzed"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
	FolderIDs     []string  `db:"-" json:"folder_ids"`
}

type NewNote struct {
	Title string `json:"title" validate:"required,max=500"`
	Body  string `json:"body"`
}

// NoteUpdate changes editor fields only. Flags are owned by the classification flows.
type NoteUpdate struct {
	Title *string `json:"title,omitempty" validate:"omitempty,min=1,max=500"`
	Body  *string `json:"body,omitempty"`
}

type Folder struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Color     string    `db:"color" json:"color,omitempty"`
	NoteCount int       `db:"note_count" json:"note_count"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type NewFolder struct {
	Name  string `json:"name" yaml:"name" validate:"required,max=255"`
	Color string `json:"color,omitempty" yaml:"color,omitempty"`
}

// MembershipSource tells who put a note into a folder.
type MembershipSource string

const (
	MembershipUser MembershipSource = "user"
	MembershipAI   MembershipSource = "ai"
)

type CategoryStatus string

const (
	CategoryActive          CategoryStatus = "active"
	CategoryPendingApproval CategoryStatus = "pending_approval"
)

type CategoryOrigin string

const (
	OriginUser CategoryOrigin = "user"
	OriginAI   CategoryOrigin = "ai"
)

type Category struct {
	ID           string         `db:"id" json:"id"`
	Name         string         `db:"name" json:"name"`
	Status       CategoryStatus `db:"status" json:"status"`
	DiscoveredBy CategoryOrigin `db:"discovered_by" json:"discovered_by"`
	CreatedAt    time.Time      `db:"created_at" json:"created_at"`
}

type NewCategory struct {
	Name         string
	Status       CategoryStatus
	DiscoveredBy CategoryOrigin
}

// Inspiration assigns one note to one active category.
type Inspiration struct {
	ID           string    `db:"id" json:"id"`
	NoteID       string    `db:"note_id" json:"note_id"`
	CategoryID   string    `db:"category_id" json:"category_id"`
	CategoryName string    `db:"category_name" json:"category"`
	Confidence   float64   `db:"ai_confidence" json:"ai_confidence"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

type NewInspiration struct {
	NoteID     string
	CategoryID string
	Confidence float64
}

type ViewType string

const (
	ViewDaily   ViewType = "daily"
	ViewWeekly  ViewType = "weekly"
	ViewMonthly ViewType = "monthly"
	ViewYearly  ViewType = "yearly"
)

type PlannerStatus string

const (
	PlannerPending   PlannerStatus = "pending"
	PlannerCompleted PlannerStatus = "completed"
)

type PlannerItem struct {
	ID        string        `db:"id" json:"id"`
	Title     string        `db:"title" json:"title"`
	Body      string        `db:"body" json:"body"`
	Date      string        `db:"due_date" json:"date"`
	Time      string        `db:"due_time" json:"time,omitempty"`
	ViewType  ViewType      `db:"view_type" json:"view_type"`
	Status    PlannerStatus `db:"status" json:"status"`
	CreatedAt time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt time.Time     `db:"updated_at" json:"updated_at"`
}

type NewPlannerItem struct {
	Title    string
	Body     string
	Date     string
	Time     string
	ViewType ViewType
}

// PlannerFilter narrows ListItems; zero fields match everything.
type PlannerFilter struct {
	DateStart string
	DateEnd   string
	ViewType  ViewType
	Status    PlannerStatus
}

type Link struct {
	ID            string    `db:"id" json:"id"`
	NoteID        string    `db:"note_id" json:"note_id"`
	PlannerItemID string    `db:"planner_item_id" json:"planner_item_id"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

type ChatRole string

const (
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
)

type ChatSession struct {
	ID        string    `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Thinking is the audit trail of a two-step chat answer. It is shown to the user as is.
type Thinking struct {
	Step1Reasoning  string      `json:"step1_reasoning"`
	SelectedFolders []FolderRef `json:"selected_folders"`
	Step2Reasoning  string      `json:"step2_reasoning"`
	ExaminedNotes   []NoteRef   `json:"examined_notes"`
}

type FolderRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type NoteRef struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type ChatMessage struct {
	ID                string    `json:"id"`
	SessionID         string    `json:"session_id"`
	Role              ChatRole  `json:"role"`
	Content           string    `json:"content"`
	Thinking          *Thinking `json:"thinking,omitempty"`
	ReferencedNoteIDs []string  `json:"referenced_note_ids,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

type NewChatMessage struct {
	SessionID         string
	Role              ChatRole
	Content           string
	Thinking          *Thinking
	ReferencedNoteIDs []string
}
