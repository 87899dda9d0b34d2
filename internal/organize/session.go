package organize

import (
	"slices"
	"sync"

	"github.com/at-ishikawa/noteflow/internal/classifier"
	"github.com/at-ishikawa/noteflow/internal/flow"
)

// Session is one open organize dialog. It keeps the raw model response and
// the preview built from it untouched next to the working copy the user
// edits, and is consumed by one apply.
type Session struct {
	mu       sync.Mutex
	response classifier.OrganizeResponse
	original Preview
	working  Preview
	consumed bool
}

func NewSession(preview Preview) *Session {
	return &Session{original: preview.clone(), working: preview.clone()}
}

func newResponseSession(response classifier.OrganizeResponse, preview Preview) *Session {
	s := NewSession(preview)
	s.response = cloneResponse(response)
	return s
}

// Response returns the model response exactly as received, including
// assignments for notes that were not requested and duplicate suggestions.
// It is empty when the model was not called.
func (s *Session) Response() classifier.OrganizeResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneResponse(s.response)
}

// Original returns the preview as first built from the response: suggestions
// de-duplicated and assignments limited to the requested notes. User edits
// never change it.
func (s *Session) Original() Preview {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.original.clone()
}

// Working returns the edited preview.
func (s *Session) Working() Preview {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.working.clone()
}

// Edit replaces the working copy with edit applied to it.
func (s *Session) Edit(edit func(Preview) Preview) (Preview, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.consumed {
		return Preview{}, flow.New(flow.ErrConflict, "edit preview", "preview was already applied")
	}
	s.working = edit(s.working.clone())
	return s.working.clone(), nil
}

func (s *Session) Consumed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.consumed
}

// take marks the session consumed and returns the preview to apply.
func (s *Session) take() (Preview, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.consumed {
		return Preview{}, flow.New(flow.ErrConflict, "apply preview", "preview was already applied")
	}
	s.consumed = true
	return s.working.clone(), nil
}

// release reopens a session whose apply wrote nothing.
func (s *Session) release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.consumed = false
}

func cloneResponse(r classifier.OrganizeResponse) classifier.OrganizeResponse {
	assignments := slices.Clone(r.NoteAssignments)
	for i := range assignments {
		assignments[i].FolderNames = slices.Clone(assignments[i].FolderNames)
	}
	return classifier.OrganizeResponse{
		SuggestedFolders: slices.Clone(r.SuggestedFolders),
		NoteAssignments:  assignments,
	}
}
