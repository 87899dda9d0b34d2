// Package organize builds, edits and applies AI-generated folder organizations of notes.
package organize

import (
	"slices"

	"github.com/at-ishikawa/noteflow/internal/classifier"
)

// Preview is a proposed folder organization. It is a value: the With* methods
// return a modified copy and never change the receiver.
type Preview struct {
	SuggestedFolders []classifier.FolderSuggestion `json:"suggested_folders" yaml:"suggested_folders"`
	NoteAssignments  []classifier.NoteAssignment   `json:"note_assignments" yaml:"note_assignments"`
	// ExistingFolders are the folder names that existed when the preview was requested.
	ExistingFolders []string `json:"existing_folders" yaml:"existing_folders"`
}

// IsEmpty reports whether the preview proposes nothing.
func (p Preview) IsEmpty() bool {
	return len(p.SuggestedFolders) == 0 && len(p.NoteAssignments) == 0
}

func (p Preview) clone() Preview {
	assignments := slices.Clone(p.NoteAssignments)
	for i := range assignments {
		assignments[i].FolderNames = slices.Clone(assignments[i].FolderNames)
	}
	return Preview{
		SuggestedFolders: slices.Clone(p.SuggestedFolders),
		NoteAssignments:  assignments,
		ExistingFolders:  slices.Clone(p.ExistingFolders),
	}
}

func (p Preview) assignmentIndex(noteID string) int {
	return slices.IndexFunc(p.NoteAssignments, func(a classifier.NoteAssignment) bool {
		return a.NoteID == noteID
	})
}

// HasSuggestion reports whether name is one of the suggested folders.
func (p Preview) HasSuggestion(name string) bool {
	return slices.ContainsFunc(p.SuggestedFolders, func(s classifier.FolderSuggestion) bool {
		return s.Name == name
	})
}

// WithFolderAdded assigns name to the note. A note without an assignment gets one.
func (p Preview) WithFolderAdded(noteID, name string) Preview {
	next := p.clone()
	if name == "" {
		return next
	}
	i := next.assignmentIndex(noteID)
	if i < 0 {
		next.NoteAssignments = append(next.NoteAssignments, classifier.NoteAssignment{
			NoteID:      noteID,
			FolderNames: []string{name},
		})
		return next
	}
	if !slices.Contains(next.NoteAssignments[i].FolderNames, name) {
		next.NoteAssignments[i].FolderNames = append(next.NoteAssignments[i].FolderNames, name)
	}
	return next
}

// WithFolderRemoved unassigns name from the note.
func (p Preview) WithFolderRemoved(noteID, name string) Preview {
	next := p.clone()
	if i := next.assignmentIndex(noteID); i >= 0 {
		next.NoteAssignments[i].FolderNames = slices.DeleteFunc(next.NoteAssignments[i].FolderNames, func(n string) bool {
			return n == name
		})
	}
	return next
}

// WithSuggestionAdded suggests a new folder unless name is already suggested or exists.
func (p Preview) WithSuggestionAdded(name, color string) Preview {
	next := p.clone()
	if name == "" || next.HasSuggestion(name) || slices.Contains(next.ExistingFolders, name) {
		return next
	}
	next.SuggestedFolders = append(next.SuggestedFolders, classifier.FolderSuggestion{Name: name, Color: color})
	return next
}

// WithSuggestionRemoved drops the suggested folder and every assignment to it.
func (p Preview) WithSuggestionRemoved(name string) Preview {
	next := p.clone()
	next.SuggestedFolders = slices.DeleteFunc(next.SuggestedFolders, func(s classifier.FolderSuggestion) bool {
		return s.Name == name
	})
	for i := range next.NoteAssignments {
		next.NoteAssignments[i].FolderNames = slices.DeleteFunc(next.NoteAssignments[i].FolderNames, func(n string) bool {
			return n == name
		})
	}
	return next
}
