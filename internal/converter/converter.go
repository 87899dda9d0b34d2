package converter

import (
	"context"
	"time"

	"github.com/at-ishikawa/noteflow/internal/classifier"
	"github.com/at-ishikawa/noteflow/internal/content"
	"github.com/at-ishikawa/noteflow/internal/flow"
)

// Commit step names, in execution order.
const (
	StepCreatePlannerItem = "create_planner_item"
	StepCreateLink        = "create_link"
	StepMarkAnalyzed      = "mark_analyzed"
)

// Commit is what a confirmation wrote. Fields of steps that did not succeed are nil.
type Commit struct {
	Item  *content.PlannerItem `json:"planner_item,omitempty"`
	Link  *content.Link        `json:"link,omitempty"`
	Note  *content.Note        `json:"note,omitempty"`
	Steps []flow.Step          `json:"steps"`
}

type Converter struct {
	gateway classifier.Gateway
	notes   content.NoteRepository
	planner content.PlannerRepository
	now     func() time.Time
}

func NewConverter(gateway classifier.Gateway, notes content.NoteRepository, planner content.PlannerRepository) *Converter {
	return &Converter{gateway: gateway, notes: notes, planner: planner, now: time.Now}
}

// Convert asks the model for task suggestions. An empty list is a valid session
// in StateNoSuggestions, not an error.
func (c *Converter) Convert(ctx context.Context, note content.Note) (*Session, error) {
	if note.ID == "" {
		return nil, flow.New(flow.ErrValidation, "convert", "note id is required")
	}
	resp, err := c.gateway.Translate(ctx, classifier.TranslateRequest{
		Note:  classifier.NewNoteInput(note),
		Today: c.now().Format(time.DateOnly),
	})
	if err != nil {
		return nil, err
	}
	return NewSession(note, resp.Suggestions), nil
}

// Confirm commits the active draft in three steps: create the planner item,
// link it to the note, mark the note analyzed. A failed step stops the later
// ones; earlier steps are not rolled back. Once the planner item exists the
// session is committed and cannot be confirmed again.
func (c *Converter) Confirm(ctx context.Context, s *Session) (Commit, error) {
	if err := s.CanConfirm(); err != nil {
		return Commit{}, err
	}
	draft := s.drafts[s.active]
	if draft.ViewType == "" {
		draft.ViewType = content.ViewDaily
	}

	var commit Commit
	steps := flow.NewSteps("convert", StepCreatePlannerItem, StepCreateLink, StepMarkAnalyzed)
	_ = steps.Run(ctx, StepCreatePlannerItem, func(ctx context.Context) error {
		item, err := c.planner.CreateItem(ctx, content.NewPlannerItem{
			Title:    draft.Title,
			Body:     draft.Body,
			Date:     draft.Date,
			Time:     draft.Time,
			ViewType: draft.ViewType,
		})
		commit.Item = item
		return err
	})
	_ = steps.Run(ctx, StepCreateLink, func(ctx context.Context) error {
		link, err := c.planner.CreateLink(ctx, s.note.ID, commit.Item.ID)
		commit.Link = link
		return err
	})
	_ = steps.Run(ctx, StepMarkAnalyzed, func(ctx context.Context) error {
		note, err := c.notes.MarkAnalyzed(ctx, s.note.ID)
		commit.Note = note
		return err
	})

	if steps.Status(StepCreatePlannerItem) == flow.StepSucceeded {
		s.state = StateCommitted
	}
	commit.Steps = steps.List()
	if err := steps.Err(); err != nil {
		return commit, err
	}
	if err := ctx.Err(); err != nil && steps.Status(StepMarkAnalyzed) != flow.StepSucceeded {
		return commit, err
	}
	return commit, nil
}
