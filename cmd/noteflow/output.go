package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/at-ishikawa/noteflow/internal/classification"
	"github.com/at-ishikawa/noteflow/internal/content"
	"github.com/at-ishikawa/noteflow/internal/converter"
	"github.com/at-ishikawa/noteflow/internal/flow"
	"github.com/at-ishikawa/noteflow/internal/inspiration"
	"github.com/at-ishikawa/noteflow/internal/organize"
)

// printer writes human-readable command output.
type printer struct {
	w       io.Writer
	bold    *color.Color
	faint   *color.Color
	green   *color.Color
	yellow  *color.Color
	red     *color.Color
	heading *color.Color
}

func newPrinter(w io.Writer) *printer {
	return &printer{
		w:       w,
		bold:    color.New(color.Bold),
		faint:   color.New(color.Faint),
		green:   color.New(color.FgGreen),
		yellow:  color.New(color.FgYellow),
		red:     color.New(color.FgRed),
		heading: color.New(color.Bold, color.Underline),
	}
}

func (p *printer) line(format string, args ...any) {
	_, _ = fmt.Fprintf(p.w, format+"\n", args...)
}

func (p *printer) success(format string, args ...any) {
	_, _ = p.green.Fprintf(p.w, format+"\n", args...)
}

func (p *printer) warn(format string, args ...any) {
	_, _ = p.yellow.Fprintf(p.w, format+"\n", args...)
}

func (p *printer) note(note content.Note) {
	var flags []string
	if note.IsInspiration {
		flags = append(flags, "inspiration")
	}
	if note.IsAnalyzed {
		flags = append(flags, "analyzed")
	}
	_, _ = p.bold.Fprintf(p.w, "%s", note.Title)
	_, _ = p.faint.Fprintf(p.w, "  %s", note.ID)
	if len(flags) > 0 {
		_, _ = p.yellow.Fprintf(p.w, "  [%s]", strings.Join(flags, ", "))
	}
	p.line("")
}

func (p *printer) folder(folder content.Folder) {
	_, _ = p.bold.Fprintf(p.w, "%s", folder.Name)
	_, _ = p.faint.Fprintf(p.w, "  %s", folder.ID)
	p.line("  (%d notes)", folder.NoteCount)
}

func (p *printer) plannerItem(item content.PlannerItem) {
	mark := "[ ]"
	if item.Status == content.PlannerCompleted {
		mark = "[x]"
	}
	when := item.Date
	if item.Time != "" {
		when += " " + item.Time
	}
	p.line("%s %s  %s (%s)  %s", mark, when, item.Title, item.ViewType, p.faint.Sprint(item.ID))
}

func (p *printer) classification(outcome classification.Outcome) {
	c := outcome.Classification
	_, _ = p.heading.Fprintln(p.w, "Classification")
	p.line("%s (confidence %.2f)", p.bold.Sprint(c.Kind), c.Confidence)
	if c.Reasoning != "" {
		p.line("%s", p.faint.Sprint(c.Reasoning))
	}
}

func (p *printer) categorizeResult(r inspiration.Result) {
	_, _ = p.heading.Fprintln(p.w, "Category")
	switch r.Status {
	case inspiration.StatusPendingApproval:
		p.warn("new category %q awaits approval (confidence %.2f)", r.Category, r.Confidence)
		p.line("approve: noteflow category approve %s --note <note id>", r.CategoryID)
		p.line("reject:  noteflow category reject %s", r.CategoryID)
	default:
		p.success("assigned to %q (confidence %.2f)", r.Category, r.Confidence)
	}
	if r.Reasoning != "" {
		p.line("%s", p.faint.Sprint(r.Reasoning))
	}
}

func (p *printer) conversion(s *converter.Session) {
	_, _ = p.heading.Fprintln(p.w, "Task suggestions")
	drafts := s.Drafts()
	if len(drafts) == 0 {
		p.warn("no suggestions")
		return
	}
	for i, d := range drafts {
		marker := " "
		if i == s.ActiveIndex() {
			marker = "*"
		}
		when := d.Date
		if d.Time != "" {
			when += " " + d.Time
		}
		p.line("%s %d. %s  %s (%s)", marker, i, p.bold.Sprint(d.Title), when, d.ViewType)
		if d.Body != "" {
			p.line("     %s", d.Body)
		}
	}
}

func (p *printer) steps(steps []flow.Step) {
	for _, step := range steps {
		switch step.Status {
		case flow.StepSucceeded:
			_, _ = p.green.Fprintf(p.w, "  ✓ %s\n", step.Name)
		case flow.StepFailed:
			_, _ = p.red.Fprintf(p.w, "  ✗ %s: %v\n", step.Name, step.Err)
		default:
			_, _ = p.faint.Fprintf(p.w, "  - %s (%s)\n", step.Name, step.Status)
		}
	}
}

func (p *printer) preview(preview organize.Preview, titles map[string]string) {
	if preview.IsEmpty() {
		p.warn("nothing to organize")
		return
	}
	_, _ = p.heading.Fprintln(p.w, "Suggested folders")
	for _, f := range preview.SuggestedFolders {
		p.line("  + %s", p.bold.Sprint(f.Name))
	}
	_, _ = p.heading.Fprintln(p.w, "Assignments")
	for _, a := range preview.NoteAssignments {
		title := titles[a.NoteID]
		if title == "" {
			title = a.NoteID
		}
		p.line("  %s -> %s", title, strings.Join(a.FolderNames, ", "))
		if a.Reasoning != "" {
			p.line("    %s", p.faint.Sprint(a.Reasoning))
		}
	}
}

func (p *printer) applyResult(r organize.ApplyResult) {
	for _, f := range r.CreatedFolders {
		p.success("created folder %s", f.Name)
	}
	p.steps(r.Steps)
	for _, n := range r.Notes {
		if n.Err != nil {
			_, _ = p.red.Fprintf(p.w, "  %s: %v\n", n.NoteID, n.Err)
			continue
		}
		p.line("  %s: %d folders", n.NoteID, len(n.FolderIDs))
	}
}

func (p *printer) chatMessage(m content.ChatMessage, showThinking bool) {
	role := p.bold.Sprint(m.Role)
	p.line("%s: %s", role, m.Content)
	if !showThinking || m.Thinking == nil {
		return
	}
	t := m.Thinking
	folders := make([]string, 0, len(t.SelectedFolders))
	for _, f := range t.SelectedFolders {
		folders = append(folders, f.Name)
	}
	notes := make([]string, 0, len(t.ExaminedNotes))
	for _, n := range t.ExaminedNotes {
		notes = append(notes, n.Title)
	}
	p.line("%s", p.faint.Sprintf("  folders: %s (%s)", strings.Join(folders, ", "), t.Step1Reasoning))
	p.line("%s", p.faint.Sprintf("  notes: %s (%s)", strings.Join(notes, ", "), t.Step2Reasoning))
}
