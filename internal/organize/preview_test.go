package organize

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/at-ishikawa/noteflow/internal/classifier"
)

func testPreview() Preview {
	return Preview{
		SuggestedFolders: []classifier.FolderSuggestion{{Name: "Travel", Color: "#00aaff"}, {Name: "Recipes"}},
		NoteAssignments: []classifier.NoteAssignment{
			{NoteID: "n1", FolderNames: []string{"Travel", "Work"}, Reasoning: "trip planning"},
			{NoteID: "n2", FolderNames: []string{"Recipes", "Travel"}},
		},
		ExistingFolders: []string{"Work"},
	}
}

func TestPreview_WithFolderAdded(t *testing.T) {
	tests := []struct {
		name   string
		noteID string
		folder string
		want   []classifier.NoteAssignment
	}{
		{
			name:   "appends a new name",
			noteID: "n2",
			folder: "Work",
			want: []classifier.NoteAssignment{
				{NoteID: "n1", FolderNames: []string{"Travel", "Work"}, Reasoning: "trip planning"},
				{NoteID: "n2", FolderNames: []string{"Recipes", "Travel", "Work"}},
			},
		},
		{
			name:   "present name is not duplicated",
			noteID: "n1",
			folder: "Travel",
			want:   testPreview().NoteAssignments,
		},
		{
			name:   "note without assignment gets one",
			noteID: "n9",
			folder: "Anything",
			want: append(testPreview().NoteAssignments,
				classifier.NoteAssignment{NoteID: "n9", FolderNames: []string{"Anything"}}),
		},
		{
			name:   "empty name is ignored",
			noteID: "n1",
			folder: "",
			want:   testPreview().NoteAssignments,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testPreview()
			got := p.WithFolderAdded(tt.noteID, tt.folder)
			assert.Equal(t, tt.want, got.NoteAssignments)
			assert.Equal(t, testPreview(), p, "receiver must not change")
		})
	}
}

func TestPreview_WithFolderRemoved(t *testing.T) {
	p := testPreview()

	got := p.WithFolderRemoved("n1", "Travel")
	assert.Equal(t, []string{"Work"}, got.NoteAssignments[0].FolderNames)
	assert.Equal(t, []string{"Recipes", "Travel"}, got.NoteAssignments[1].FolderNames)

	assert.Equal(t, got, got.WithFolderRemoved("n1", "Missing"))
	assert.Equal(t, got, got.WithFolderRemoved("n9", "Travel"))
	assert.Equal(t, testPreview(), p)
}

func TestPreview_WithSuggestionAdded(t *testing.T) {
	tests := []struct {
		name   string
		folder string
		want   []classifier.FolderSuggestion
	}{
		{
			name:   "new name",
			folder: "Books",
			want:   []classifier.FolderSuggestion{{Name: "Travel", Color: "#00aaff"}, {Name: "Recipes"}, {Name: "Books", Color: "#123456"}},
		},
		{
			name:   "already suggested",
			folder: "Travel",
			want:   testPreview().SuggestedFolders,
		},
		{
			name:   "existing folder",
			folder: "Work",
			want:   testPreview().SuggestedFolders,
		},
		{
			name:   "match is case-sensitive",
			folder: "travel",
			want:   []classifier.FolderSuggestion{{Name: "Travel", Color: "#00aaff"}, {Name: "Recipes"}, {Name: "travel", Color: "#123456"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := testPreview().WithSuggestionAdded(tt.folder, "#123456")
			assert.Equal(t, tt.want, got.SuggestedFolders)
		})
	}
}

func TestPreview_WithSuggestionRemoved(t *testing.T) {
	p := testPreview()

	got := p.WithSuggestionRemoved("Travel")

	assert.Equal(t, []classifier.FolderSuggestion{{Name: "Recipes"}}, got.SuggestedFolders)
	for _, a := range got.NoteAssignments {
		assert.NotContains(t, a.FolderNames, "Travel")
	}
	assert.Equal(t, []string{"Work"}, got.NoteAssignments[0].FolderNames)
	assert.Equal(t, []string{"Recipes"}, got.NoteAssignments[1].FolderNames)
	assert.Equal(t, testPreview(), p)
}

func TestSession(t *testing.T) {
	s := NewSession(testPreview())

	edited, err := s.Edit(func(p Preview) Preview { return p.WithSuggestionRemoved("Recipes") })
	assert.NoError(t, err)
	assert.Len(t, edited.SuggestedFolders, 1)
	assert.Equal(t, testPreview(), s.Original())
	assert.Equal(t, edited, s.Working())

	_, err = s.take()
	assert.NoError(t, err)
	assert.True(t, s.Consumed())
	_, err = s.take()
	assert.Error(t, err)
	_, err = s.Edit(func(p Preview) Preview { return p })
	assert.Error(t, err)

	s.release()
	assert.False(t, s.Consumed())
}
