package pdf

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/at-ishikawa/noteflow/internal/content"
	mock_content "github.com/at-ishikawa/noteflow/internal/mocks/content"
)

func TestConvertMarkdownToPDF(t *testing.T) {
	tests := []struct {
		name       string
		setupFile  func(t *testing.T) string
		wantErrMsg string
	}{
		{
			name:       "invalid extension",
			setupFile:  func(t *testing.T) string { return "notes.txt" },
			wantErrMsg: "input file must have .md extension",
		},
		{
			name:       "file not found",
			setupFile:  func(t *testing.T) string { return filepath.Join(t.TempDir(), "missing.md") },
			wantErrMsg: "read markdown",
		},
		{
			name: "successful conversion",
			setupFile: func(t *testing.T) string {
				mdPath := filepath.Join(t.TempDir(), "travel.md")
				require.NoError(t, os.WriteFile(mdPath, []byte("# Travel\n\nKyoto in spring.\n"), 0o644))
				return mdPath
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pdfPath, err := ConvertMarkdownToPDF(tt.setupFile(t))
			if tt.wantErrMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErrMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, ".pdf", filepath.Ext(pdfPath))
			_, err = os.Stat(pdfPath)
			assert.NoError(t, err)
		})
	}
}

func TestRenderFolder(t *testing.T) {
	updated := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)
	tests := []struct {
		name  string
		notes []content.Note
		want  string
	}{
		{
			name: "notes",
			notes: []content.Note{
				{Title: "Kyoto", Body: "  Temples and tea.  ", UpdatedAt: updated},
				{Title: "Packing list", UpdatedAt: updated},
			},
			want: "# Travel\n\n" +
				"## Kyoto\n\n_Updated 2025-03-01 09:30_\n\nTemples and tea.\n\n" +
				"## Packing list\n\n_Updated 2025-03-01 09:30_\n\n",
		},
		{
			name: "empty folder",
			want: "# Travel\n\n_No notes._\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderFolder(content.Folder{Name: "Travel"}, tt.notes)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "Work_Projects", fileName("Work/Projects"))
	assert.Equal(t, "旅行", fileName("旅行"))
	assert.Equal(t, "folder", fileName("  "))
}

func TestFolderExporter_Export(t *testing.T) {
	ctrl := gomock.NewController(t)
	folders := mock_content.NewMockFolderRepository(ctrl)
	folders.EXPECT().ListNotes(gomock.Any(), "f1").Return([]content.Note{{ID: "n1", Title: "Kyoto", Body: "Temples"}}, nil)
	dir := filepath.Join(t.TempDir(), "exports")

	got, err := NewFolderExporter(folders, dir).Export(context.Background(), content.Folder{ID: "f1", Name: "Travel"})

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Travel.md"), got.MarkdownPath)
	markdown, err := os.ReadFile(got.MarkdownPath)
	require.NoError(t, err)
	assert.Contains(t, string(markdown), "## Kyoto")
	_, err = os.Stat(got.PDFPath)
	assert.NoError(t, err)
}
