package pdf

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/at-ishikawa/noteflow/internal/content"
)

// Export is the pair of files written for one folder.
type Export struct {
	MarkdownPath string
	PDFPath      string
}

// FolderExporter writes the notes of a folder into an output directory.
type FolderExporter struct {
	folders content.FolderRepository
	dir     string
}

func NewFolderExporter(folders content.FolderRepository, dir string) *FolderExporter {
	return &FolderExporter{folders: folders, dir: dir}
}

// Export writes <dir>/<folder>.md and renders it to PDF.
func (e *FolderExporter) Export(ctx context.Context, folder content.Folder) (Export, error) {
	notes, err := e.folders.ListNotes(ctx, folder.ID)
	if err != nil {
		return Export{}, fmt.Errorf("list notes of folder %s: %w", folder.Name, err)
	}
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return Export{}, fmt.Errorf("create export directory %s: %w", e.dir, err)
	}

	mdPath := filepath.Join(e.dir, fileName(folder.Name)+".md")
	if err := os.WriteFile(mdPath, RenderFolder(folder, notes), 0o644); err != nil {
		return Export{}, fmt.Errorf("write %s: %w", mdPath, err)
	}
	pdfPath, err := ConvertMarkdownToPDF(mdPath)
	if err != nil {
		return Export{MarkdownPath: mdPath}, err
	}
	return Export{MarkdownPath: mdPath, PDFPath: pdfPath}, nil
}

// RenderFolder renders the folder as a markdown document with one section per note.
func RenderFolder(folder content.Folder, notes []content.Note) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "# %s\n\n", folder.Name)
	if len(notes) == 0 {
		buf.WriteString("_No notes._\n")
		return buf.Bytes()
	}
	for _, note := range notes {
		fmt.Fprintf(&buf, "## %s\n\n", note.Title)
		fmt.Fprintf(&buf, "_Updated %s_\n\n", note.UpdatedAt.Format("2006-01-02 15:04"))
		if body := strings.TrimSpace(note.Body); body != "" {
			buf.WriteString(body)
			buf.WriteString("\n\n")
		}
	}
	return buf.Bytes()
}

func fileName(name string) string {
	mapped := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' {
			return r
		}
		return '_'
	}, strings.TrimSpace(name))
	if mapped == "" {
		return "folder"
	}
	return mapped
}
