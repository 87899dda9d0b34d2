// Package converter turns a note into a planner item through reviewable AI suggestions.
package converter

import (
	"strings"

	"github.com/at-ishikawa/noteflow/internal/classifier"
	"github.com/at-ishikawa/noteflow/internal/content"
	"github.com/at-ishikawa/noteflow/internal/flow"
)

// Draft is an editable task suggestion.
type Draft struct {
	Title    string           `json:"title" validate:"required"`
	Body     string           `json:"body"`
	Date     string           `json:"date" validate:"required,datetime=2006-01-02"`
	Time     string           `json:"time,omitempty" validate:"omitempty,datetime=15:04"`
	ViewType content.ViewType `json:"view_type" validate:"omitempty,oneof=daily weekly monthly yearly"`
}

func newDraft(s classifier.TaskSuggestion) Draft {
	viewType := content.ViewType(s.ViewType)
	switch viewType {
	case content.ViewDaily, content.ViewWeekly, content.ViewMonthly, content.ViewYearly:
	default:
		viewType = content.ViewDaily
	}
	return Draft{
		Title:    strings.TrimSpace(s.Title),
		Body:     s.Body,
		Date:     s.Date,
		Time:     s.Time,
		ViewType: viewType,
	}
}

// DraftEdit changes the non-nil fields of a draft.
type DraftEdit struct {
	Title    *string           `json:"title,omitempty"`
	Body     *string           `json:"body,omitempty"`
	Date     *string           `json:"date,omitempty"`
	Time     *string           `json:"time,omitempty"`
	ViewType *content.ViewType `json:"view_type,omitempty"`
}

func (e DraftEdit) apply(d Draft) Draft {
	if e.Title != nil {
		d.Title = *e.Title
	}
	if e.Body != nil {
		d.Body = *e.Body
	}
	if e.Date != nil {
		d.Date = *e.Date
	}
	if e.Time != nil {
		d.Time = *e.Time
	}
	if e.ViewType != nil {
		d.ViewType = *e.ViewType
	}
	return d
}

type State string

const (
	// StateNoSuggestions is terminal: the model found nothing to convert.
	StateNoSuggestions State = "no_suggestions"
	StateEditing       State = "editing"
	StateCommitted     State = "committed"
	StateCancelled     State = "cancelled"
)

// Session is one open conversion dialog. Edits are local and never call the model again.
type Session struct {
	note   content.Note
	drafts []Draft
	active int
	state  State
}

// NewSession opens a conversion dialog over suggestions, selecting the first one.
func NewSession(note content.Note, suggestions []classifier.TaskSuggestion) *Session {
	s := &Session{note: note, state: StateNoSuggestions}
	for _, suggestion := range suggestions {
		s.drafts = append(s.drafts, newDraft(suggestion))
	}
	if len(s.drafts) > 0 {
		s.state = StateEditing
	}
	return s
}

func (s *Session) Note() content.Note { return s.note }

func (s *Session) State() State { return s.state }

// Drafts returns a copy of all suggestions with their edits.
func (s *Session) Drafts() []Draft {
	return append([]Draft(nil), s.drafts...)
}

func (s *Session) ActiveIndex() int { return s.active }

// Active returns the selected draft. It is false when there are no suggestions.
func (s *Session) Active() (Draft, bool) {
	if len(s.drafts) == 0 {
		return Draft{}, false
	}
	return s.drafts[s.active], true
}

func (s *Session) checkOpen(op string) error {
	switch s.state {
	case StateEditing:
		return nil
	case StateNoSuggestions:
		return flow.New(flow.ErrValidation, op, "no suggestions to convert")
	default:
		return flow.New(flow.ErrConflict, op, "conversion is %s", s.state)
	}
}

// Select switches the active suggestion.
func (s *Session) Select(index int) error {
	if err := s.checkOpen("select suggestion"); err != nil {
		return err
	}
	if index < 0 || index >= len(s.drafts) {
		return flow.New(flow.ErrValidation, "select suggestion", "index %d out of range [0, %d)", index, len(s.drafts))
	}
	s.active = index
	return nil
}

// Edit changes the active suggestion.
func (s *Session) Edit(edit DraftEdit) (Draft, error) {
	if err := s.checkOpen("edit suggestion"); err != nil {
		return Draft{}, err
	}
	s.drafts[s.active] = edit.apply(s.drafts[s.active])
	return s.drafts[s.active], nil
}

// CanConfirm reports why the active draft cannot be committed, or nil.
func (s *Session) CanConfirm() error {
	if err := s.checkOpen("confirm conversion"); err != nil {
		return err
	}
	return flow.Validate("confirm conversion", s.drafts[s.active])
}

// Cancel discards local edits. Steps already committed stay committed.
func (s *Session) Cancel() {
	if s.state == StateEditing || s.state == StateNoSuggestions {
		s.state = StateCancelled
	}
}
