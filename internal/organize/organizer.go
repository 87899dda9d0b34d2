package organize

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/at-ishikawa/noteflow/internal/classifier"
	"github.com/at-ishikawa/noteflow/internal/content"
	"github.com/at-ishikawa/noteflow/internal/flow"
	"github.com/at-ishikawa/noteflow/internal/metrics"
)

// Apply step names, in execution order.
const (
	StepCreateFolders = "create_folders"
	StepAssignFolders = "assign_folders"
)

// NoteResult is the membership of one note after apply.
type NoteResult struct {
	NoteID    string   `json:"note_id" yaml:"note_id"`
	FolderIDs []string `json:"folder_ids,omitempty" yaml:"folder_ids,omitempty"`
	Error     string   `json:"error,omitempty" yaml:"error,omitempty"`
	Err       error    `json:"-" yaml:"-"`
}

// ApplyResult is what an apply wrote. Folder creation is all or nothing;
// note assignments succeed or fail one by one.
type ApplyResult struct {
	CreatedFolders []content.Folder  `json:"created_folders"`
	FolderIDs      map[string]string `json:"folder_ids"`
	Notes          []NoteResult      `json:"notes"`
	Steps          []flow.Step       `json:"steps"`
}

// Failed returns the notes whose assignment failed.
func (r ApplyResult) Failed() []NoteResult {
	var failed []NoteResult
	for _, n := range r.Notes {
		if n.Err != nil {
			failed = append(failed, n)
		}
	}
	return failed
}

type Organizer struct {
	gateway classifier.Gateway
	notes   content.NoteRepository
	folders content.FolderRepository
	metrics *metrics.Metrics
}

func NewOrganizer(gateway classifier.Gateway, notes content.NoteRepository, folders content.FolderRepository, m *metrics.Metrics) *Organizer {
	return &Organizer{gateway: gateway, notes: notes, folders: folders, metrics: m}
}

// RequestPreview asks the model to organize the notes that belong to no folder.
// Without such notes the preview is empty and the model is not called.
func (o *Organizer) RequestPreview(ctx context.Context) (*Session, error) {
	notes, err := o.notes.ListUnorganized(ctx)
	if err != nil {
		return nil, fmt.Errorf("list unorganized notes: %w", err)
	}
	folders, err := o.folders.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list folders: %w", err)
	}
	existing := make([]string, 0, len(folders))
	for _, f := range folders {
		existing = append(existing, f.Name)
	}
	if len(notes) == 0 {
		o.metrics.ObserveFlow("organize", "empty")
		return NewSession(Preview{ExistingFolders: existing}), nil
	}

	inputs := make([]classifier.NoteInput, 0, len(notes))
	requested := make(map[string]bool, len(notes))
	for _, note := range notes {
		inputs = append(inputs, classifier.NewNoteInput(note))
		requested[note.ID] = true
	}
	resp, err := o.gateway.Organize(ctx, classifier.OrganizeRequest{
		Notes:           inputs,
		ExistingFolders: existing,
	})
	if err != nil {
		o.metrics.ObserveFlow("organize", metrics.Outcome(err))
		return nil, err
	}

	preview := Preview{ExistingFolders: existing}
	for _, suggestion := range resp.SuggestedFolders {
		preview = preview.WithSuggestionAdded(suggestion.Name, suggestion.Color)
	}
	for _, assignment := range resp.NoteAssignments {
		if !requested[assignment.NoteID] {
			slog.Default().Warn("dropping assignment for a note that was not requested",
				"note_id", assignment.NoteID)
			continue
		}
		i := preview.assignmentIndex(assignment.NoteID)
		if i < 0 {
			preview.NoteAssignments = append(preview.NoteAssignments, classifier.NoteAssignment{
				NoteID:    assignment.NoteID,
				Reasoning: assignment.Reasoning,
			})
		}
		for _, name := range assignment.FolderNames {
			preview = preview.WithFolderAdded(assignment.NoteID, name)
		}
	}

	if preview.IsEmpty() {
		o.metrics.ObserveFlow("organize", "empty")
	} else {
		o.metrics.ObserveFlow("organize", "preview")
	}
	return newResponseSession(resp, preview), nil
}

// ApplySession applies the working copy of s once. A session whose apply
// created nothing can be edited and applied again.
func (o *Organizer) ApplySession(ctx context.Context, s *Session) (ApplyResult, error) {
	preview, err := s.take()
	if err != nil {
		return ApplyResult{}, err
	}
	result, err := o.Apply(ctx, preview)
	if err != nil && len(result.CreatedFolders) == 0 {
		s.release()
	}
	return result, err
}

// Apply creates the suggested folders that do not exist yet and replaces the
// AI-assigned folders of every listed note with the named ones. Folders a note
// holds from the user are kept. Every name must resolve to an existing or a
// suggested folder before anything is written.
func (o *Organizer) Apply(ctx context.Context, preview Preview) (ApplyResult, error) {
	result := ApplyResult{FolderIDs: make(map[string]string)}

	folders, err := o.folders.List(ctx)
	if err != nil {
		return result, fmt.Errorf("list folders: %w", err)
	}
	for _, f := range folders {
		result.FolderIDs[f.Name] = f.ID
	}
	if err := checkResolution(preview, result.FolderIDs); err != nil {
		o.metrics.ObserveFlow("organize_apply", metrics.Outcome(err))
		return result, err
	}

	var missing []content.NewFolder
	for _, suggestion := range preview.SuggestedFolders {
		if _, ok := result.FolderIDs[suggestion.Name]; ok {
			continue
		}
		if slices.ContainsFunc(missing, func(f content.NewFolder) bool { return f.Name == suggestion.Name }) {
			continue
		}
		missing = append(missing, content.NewFolder{Name: suggestion.Name, Color: suggestion.Color})
	}

	steps := flow.NewSteps("organize", StepCreateFolders, StepAssignFolders)
	err = steps.Run(ctx, StepCreateFolders, func(ctx context.Context) error {
		if len(missing) == 0 {
			return nil
		}
		created, err := o.folders.CreateBatch(ctx, missing)
		if err != nil {
			return err
		}
		result.CreatedFolders = created
		for _, f := range created {
			result.FolderIDs[f.Name] = f.ID
		}
		return nil
	})
	if err != nil {
		_ = steps.Run(ctx, StepAssignFolders, nil)
		result.Steps = steps.List()
		o.metrics.ObserveFlow("organize_apply", metrics.Outcome(err))
		return result, err
	}

	_ = steps.Run(ctx, StepAssignFolders, func(ctx context.Context) error {
		var errs []error
		for _, assignment := range preview.NoteAssignments {
			noteResult := o.assign(ctx, assignment, result.FolderIDs)
			if noteResult.Err != nil {
				errs = append(errs, noteResult.Err)
			}
			result.Notes = append(result.Notes, noteResult)
		}
		return errors.Join(errs...)
	})
	result.Steps = steps.List()

	outcome := "applied"
	if len(result.Failed()) > 0 {
		outcome = "partially_applied"
	}
	o.metrics.ObserveFlow("organize_apply", outcome)
	return result, nil
}

func (o *Organizer) assign(ctx context.Context, assignment classifier.NoteAssignment, folderIDs map[string]string) NoteResult {
	ids := make([]string, 0, len(assignment.FolderNames))
	for _, name := range assignment.FolderNames {
		id := folderIDs[name]
		if !slices.Contains(ids, id) {
			ids = append(ids, id)
		}
	}
	resultIDs, err := o.folders.ReplaceAssigned(ctx, assignment.NoteID, ids)
	if err != nil {
		err = fmt.Errorf("assign folders to note %s: %w", assignment.NoteID, err)
		return NoteResult{NoteID: assignment.NoteID, Error: err.Error(), Err: err}
	}
	return NoteResult{NoteID: assignment.NoteID, FolderIDs: resultIDs}
}

func checkResolution(preview Preview, existing map[string]string) error {
	var fields []flow.FieldViolation
	for i, suggestion := range preview.SuggestedFolders {
		if suggestion.Name == "" {
			fields = append(fields, flow.FieldViolation{
				Field:       fmt.Sprintf("suggested_folders[%d].name", i),
				Description: "folder name is empty",
			})
		}
	}
	for i, assignment := range preview.NoteAssignments {
		for _, name := range assignment.FolderNames {
			if _, ok := existing[name]; ok || preview.HasSuggestion(name) {
				continue
			}
			fields = append(fields, flow.FieldViolation{
				Field:       fmt.Sprintf("note_assignments[%d].folder_names", i),
				Description: fmt.Sprintf("folder %q of note %s is neither an existing nor a suggested folder", name, assignment.NoteID),
			})
		}
	}
	if len(fields) == 0 {
		return nil
	}
	return &flow.Error{
		Kind:   flow.ErrResolution,
		Op:     "apply preview",
		Msg:    fmt.Sprintf("%d unresolved folder names", len(fields)),
		Fields: fields,
	}
}
