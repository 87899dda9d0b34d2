// Package inspiration categorizes inspiration notes and gates AI-proposed
// categories behind user approval.
package inspiration

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/at-ishikawa/noteflow/internal/content"
	"github.com/at-ishikawa/noteflow/internal/flow"
)

// DefaultApprovalConfidence is recorded when a category is approved without the proposal at hand.
const DefaultApprovalConfidence = 0.95

// Proposal is a new category the model suggested for a note.
type Proposal struct {
	CategoryID string  `json:"category_id"`
	Category   string  `json:"category"`
	NoteID     string  `json:"note_id"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning,omitempty"`
}

// ApproveResult is the state after an approval.
type ApproveResult struct {
	Category    content.Category     `json:"category"`
	Inspiration *content.Inspiration `json:"inspiration,omitempty"`
	Note        *content.Note        `json:"note,omitempty"`
}

// Gate holds at most one open proposal. A newer proposal replaces an unresolved
// one; the replaced category stays pending in the store until approved or rejected.
type Gate struct {
	categories content.CategoryRepository
	notes      content.NoteRepository

	mu      sync.Mutex
	pending *Proposal
}

func NewGate(categories content.CategoryRepository, notes content.NoteRepository) *Gate {
	return &Gate{categories: categories, notes: notes}
}

// Propose opens p and returns the proposal it replaced, if any.
func (g *Gate) Propose(p Proposal) *Proposal {
	g.mu.Lock()
	defer g.mu.Unlock()

	previous := g.pending
	g.pending = &p
	if previous != nil && previous.CategoryID != p.CategoryID {
		slog.Default().Info("superseded unresolved category proposal",
			"previous_category_id", previous.CategoryID,
			"previous_category", previous.Category,
			"previous_note_id", previous.NoteID,
			"category_id", p.CategoryID)
		return previous
	}
	return nil
}

// Pending returns the open proposal.
func (g *Gate) Pending() (Proposal, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.pending == nil {
		return Proposal{}, false
	}
	return *g.pending, true
}

// resolve closes the slot if it holds categoryID and returns what it held.
func (g *Gate) resolve(categoryID string) *Proposal {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.pending == nil || g.pending.CategoryID != categoryID {
		return nil
	}
	p := g.pending
	g.pending = nil
	return p
}

func (g *Gate) peek(categoryID string) *Proposal {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.pending == nil || g.pending.CategoryID != categoryID {
		return nil
	}
	p := *g.pending
	return &p
}

// Approve activates the category and assigns noteID to it. With an empty noteID
// only the category is activated. Approving again is a no-op success.
func (g *Gate) Approve(ctx context.Context, categoryID, noteID string) (ApproveResult, error) {
	const op = "approve category"
	if categoryID == "" {
		return ApproveResult{}, flow.New(flow.ErrValidation, op, "category id is required")
	}

	category, err := g.categories.Get(ctx, categoryID)
	if err != nil {
		return ApproveResult{}, err
	}
	if category.Status != content.CategoryActive {
		category, err = g.categories.Activate(ctx, categoryID)
		if err != nil {
			return ApproveResult{}, err
		}
	}
	result := ApproveResult{Category: *category}

	if noteID == "" {
		g.resolve(categoryID)
		return result, nil
	}

	existing, err := g.categories.GetInspirationByNote(ctx, noteID)
	switch {
	case err == nil && existing.CategoryID == categoryID:
		note, err := g.notes.Get(ctx, noteID)
		if err != nil {
			return ApproveResult{}, err
		}
		g.resolve(categoryID)
		result.Inspiration = existing
		result.Note = note
		return result, nil
	case err != nil && !errors.Is(err, flow.ErrNotFound):
		return ApproveResult{}, err
	}

	confidence := DefaultApprovalConfidence
	if p := g.peek(categoryID); p != nil && p.NoteID == noteID && p.Confidence > 0 {
		confidence = p.Confidence
	}

	inspiration, err := g.categories.AssignInspiration(ctx, content.NewInspiration{
		NoteID:     noteID,
		CategoryID: categoryID,
		Confidence: confidence,
	})
	if err != nil {
		return ApproveResult{}, err
	}
	note, err := g.notes.MarkInspiration(ctx, noteID)
	if err != nil {
		return ApproveResult{}, err
	}
	g.resolve(categoryID)

	result.Inspiration = inspiration
	result.Note = note
	return result, nil
}

// Reject deletes a pending category. No inspiration ever references it afterwards.
func (g *Gate) Reject(ctx context.Context, categoryID string) error {
	const op = "reject category"
	if categoryID == "" {
		return flow.New(flow.ErrValidation, op, "category id is required")
	}

	category, err := g.categories.Get(ctx, categoryID)
	if err != nil {
		return err
	}
	if category.Status == content.CategoryActive {
		return flow.New(flow.ErrConflict, op, "category %q is already active", category.Name)
	}
	if err := g.categories.Delete(ctx, categoryID); err != nil {
		return err
	}
	g.resolve(categoryID)
	return nil
}
