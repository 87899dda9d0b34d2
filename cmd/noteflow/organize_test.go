package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/noteflow/internal/classifier"
	"github.com/at-ishikawa/noteflow/internal/organize"
)

func travelPreview() organize.Preview {
	return organize.Preview{
		SuggestedFolders: []classifier.FolderSuggestion{{Name: "Travel"}},
		NoteAssignments: []classifier.NoteAssignment{
			{NoteID: "n1", FolderNames: []string{"Travel"}, Reasoning: "trip plans"},
		},
		ExistingFolders: []string{"Work"},
	}
}

func TestEditPreview(t *testing.T) {
	tests := []struct {
		name      string
		add       []string
		remove    []string
		suggest   []string
		unsuggest []string
		want      organize.Preview
		wantErr   bool
	}{
		{
			name:    "suggest a folder and assign a new note to it",
			suggest: []string{"Recipes"},
			add:     []string{"n2=Recipes"},
			want: organize.Preview{
				SuggestedFolders: []classifier.FolderSuggestion{{Name: "Travel"}, {Name: "Recipes"}},
				NoteAssignments: []classifier.NoteAssignment{
					{NoteID: "n1", FolderNames: []string{"Travel"}, Reasoning: "trip plans"},
					{NoteID: "n2", FolderNames: []string{"Recipes"}},
				},
				ExistingFolders: []string{"Work"},
			},
		},
		{
			name:      "unsuggest cascades to assignments",
			unsuggest: []string{"Travel"},
			want: organize.Preview{
				NoteAssignments: []classifier.NoteAssignment{
					{NoteID: "n1", FolderNames: []string{}, Reasoning: "trip plans"},
				},
				ExistingFolders: []string{"Work"},
			},
		},
		{
			name:   "move a note to an existing folder",
			add:    []string{"n1=Work"},
			remove: []string{"n1=Travel"},
			want: organize.Preview{
				SuggestedFolders: []classifier.FolderSuggestion{{Name: "Travel"}},
				NoteAssignments: []classifier.NoteAssignment{
					{NoteID: "n1", FolderNames: []string{"Work"}, Reasoning: "trip plans"},
				},
				ExistingFolders: []string{"Work"},
			},
		},
		{
			name:    "malformed assignment",
			add:     []string{"n1"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := editPreview(travelPreview(), tt.add, tt.remove, tt.suggest, tt.unsuggest)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.ElementsMatch(t, tt.want.SuggestedFolders, got.SuggestedFolders)
			assert.Equal(t, tt.want.ExistingFolders, got.ExistingFolders)
			require.Len(t, got.NoteAssignments, len(tt.want.NoteAssignments))
			for i, want := range tt.want.NoteAssignments {
				assert.Equal(t, want.NoteID, got.NoteAssignments[i].NoteID)
				assert.ElementsMatch(t, want.FolderNames, got.NoteAssignments[i].FolderNames)
			}
		})
	}
}

func TestPreviewFile(t *testing.T) {
	t.Run("written preview is read back", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "preview.yml")
		require.NoError(t, writePreviewFile(path, travelPreview()))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "suggested_folders:")
		assert.Contains(t, string(data), "folder_names:")

		got, err := readPreviewFile(path)
		require.NoError(t, err)
		assert.Equal(t, travelPreview(), got)
	})

	t.Run("hand-written file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "preview.yml")
		require.NoError(t, os.WriteFile(path, []byte(`suggested_folders:
  - name: Travel
note_assignments:
  - note_id: n1
    folder_names: [Travel, Work]
`), 0644))

		got, err := readPreviewFile(path)
		require.NoError(t, err)
		require.Len(t, got.NoteAssignments, 1)
		assert.Equal(t, []string{"Travel", "Work"}, got.NoteAssignments[0].FolderNames)
		assert.Nil(t, got.ExistingFolders)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := readPreviewFile(filepath.Join(t.TempDir(), "missing.yml"))
		assert.Error(t, err)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "preview.yml")
		require.NoError(t, os.WriteFile(path, []byte("{{invalid"), 0644))
		_, err := readPreviewFile(path)
		assert.Error(t, err)
	})
}
