package inspiration

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/at-ishikawa/noteflow/internal/classifier"
	"github.com/at-ishikawa/noteflow/internal/content"
	"github.com/at-ishikawa/noteflow/internal/flow"
)

type Status string

const (
	// StatusCommitted means the note is assigned to an existing category.
	StatusCommitted Status = "created"
	// StatusPendingApproval means a new category waits in the gate.
	StatusPendingApproval Status = "pending_approval"
)

// Result is the outcome of categorizing one note.
type Result struct {
	Category      string  `json:"category"`
	Confidence    float64 `json:"confidence"`
	IsNewCategory bool    `json:"is_new_category"`
	CategoryID    string  `json:"category_id,omitempty"`
	InspirationID string  `json:"inspiration_id,omitempty"`
	Reasoning     string  `json:"reasoning,omitempty"`
	Status        Status  `json:"status"`
}

// Categorizer assigns a note to an active category or proposes a new one through the Gate.
type Categorizer struct {
	gateway    classifier.Gateway
	categories content.CategoryRepository
	notes      content.NoteRepository
	gate       *Gate
}

func NewCategorizer(gateway classifier.Gateway, categories content.CategoryRepository, notes content.NoteRepository, gate *Gate) *Categorizer {
	return &Categorizer{gateway: gateway, categories: categories, notes: notes, gate: gate}
}

func (c *Categorizer) Categorize(ctx context.Context, note content.Note) (Result, error) {
	if note.ID == "" {
		return Result{}, flow.New(flow.ErrValidation, "categorize", "note id is required")
	}

	active, err := c.categories.List(ctx, content.CategoryActive)
	if err != nil {
		return Result{}, fmt.Errorf("list active categories: %w", err)
	}
	names := make([]string, 0, len(active))
	byName := make(map[string]content.Category, len(active))
	for _, category := range active {
		names = append(names, category.Name)
		byName[category.Name] = category
	}

	resp, err := c.gateway.Categorize(ctx, classifier.CategorizeRequest{
		Note:             classifier.NewNoteInput(note),
		ActiveCategories: names,
	})
	if err != nil {
		return Result{}, err
	}

	// An existing name always commits, whatever the model claims.
	if category, ok := byName[resp.Category]; ok {
		return c.commit(ctx, note, category, resp)
	}
	if !resp.IsNewCategory {
		slog.Default().Info("model picked an unknown category, proposing it",
			"note_id", note.ID,
			"category", resp.Category)
	}
	return c.propose(ctx, note, resp)
}

func (c *Categorizer) commit(ctx context.Context, note content.Note, category content.Category, resp classifier.CategorizeResponse) (Result, error) {
	inspiration, err := c.categories.AssignInspiration(ctx, content.NewInspiration{
		NoteID:     note.ID,
		CategoryID: category.ID,
		Confidence: resp.Confidence,
	})
	if err != nil {
		return Result{}, err
	}
	if _, err := c.notes.MarkInspiration(ctx, note.ID); err != nil {
		return Result{}, err
	}
	return Result{
		Category:      category.Name,
		Confidence:    resp.Confidence,
		CategoryID:    category.ID,
		InspirationID: inspiration.ID,
		Reasoning:     resp.Reasoning,
		Status:        StatusCommitted,
	}, nil
}

func (c *Categorizer) propose(ctx context.Context, note content.Note, resp classifier.CategorizeResponse) (Result, error) {
	category, err := c.categories.FindByName(ctx, resp.Category, content.CategoryPendingApproval)
	if errors.Is(err, flow.ErrNotFound) {
		category, err = c.categories.Create(ctx, content.NewCategory{
			Name:         resp.Category,
			Status:       content.CategoryPendingApproval,
			DiscoveredBy: content.OriginAI,
		})
	}
	if err != nil {
		return Result{}, err
	}

	c.gate.Propose(Proposal{
		CategoryID: category.ID,
		Category:   category.Name,
		NoteID:     note.ID,
		Confidence: resp.Confidence,
		Reasoning:  resp.Reasoning,
	})
	return Result{
		Category:      category.Name,
		Confidence:    resp.Confidence,
		IsNewCategory: true,
		CategoryID:    category.ID,
		Reasoning:     resp.Reasoning,
		Status:        StatusPendingApproval,
	}, nil
}
