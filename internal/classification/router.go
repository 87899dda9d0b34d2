// Package classification is the entry point of the note classification flow.
package classification

import (
	"context"

	"github.com/at-ishikawa/noteflow/internal/classifier"
	"github.com/at-ishikawa/noteflow/internal/content"
	"github.com/at-ishikawa/noteflow/internal/converter"
	"github.com/at-ishikawa/noteflow/internal/flow"
	"github.com/at-ishikawa/noteflow/internal/inspiration"
	"github.com/at-ishikawa/noteflow/internal/metrics"
)

//go:generate mockgen -source=router.go -destination=../mocks/classification/mock_router.go -package=mock_classification

// Categorizer handles notes classified as inspirations.
type Categorizer interface {
	Categorize(ctx context.Context, note content.Note) (inspiration.Result, error)
}

// Converter handles notes classified as tasks.
type Converter interface {
	Convert(ctx context.Context, note content.Note) (*converter.Session, error)
}

// Outcome is the classification and the result of the flow it was dispatched to.
// Exactly one of Inspiration and Conversion is set on success.
type Outcome struct {
	Classification classifier.ClassifyResponse `json:"classification"`
	Inspiration    *inspiration.Result         `json:"inspiration,omitempty"`
	Conversion     *converter.Session          `json:"-"`
}

type Router struct {
	gateway     classifier.Gateway
	categorizer Categorizer
	converter   Converter
	metrics     *metrics.Metrics
}

func NewRouter(gateway classifier.Gateway, categorizer Categorizer, converter Converter, m *metrics.Metrics) *Router {
	return &Router{gateway: gateway, categorizer: categorizer, converter: converter, metrics: m}
}

// Classify asks the model for the kind of note and runs the matching flow.
// A failed classification changes nothing. When the dispatched flow fails the
// classification is still returned with the error.
func (r *Router) Classify(ctx context.Context, note content.Note) (Outcome, error) {
	if note.ID == "" {
		return Outcome{}, flow.New(flow.ErrValidation, "classify", "note id is required")
	}

	classification, err := r.gateway.Classify(ctx, classifier.ClassifyRequest{
		Note: classifier.NewNoteInput(note),
	})
	if err != nil {
		r.metrics.ObserveFlow("classify", metrics.Outcome(err))
		return Outcome{}, err
	}
	outcome := Outcome{Classification: classification}

	if classification.Kind == classifier.KindTask {
		session, err := r.converter.Convert(ctx, note)
		if err != nil {
			r.metrics.ObserveFlow("convert", metrics.Outcome(err))
			return outcome, err
		}
		r.metrics.ObserveFlow("convert", string(session.State()))
		outcome.Conversion = session
		return outcome, nil
	}

	result, err := r.categorizer.Categorize(ctx, note)
	if err != nil {
		r.metrics.ObserveFlow("categorize", metrics.Outcome(err))
		return outcome, err
	}
	r.metrics.ObserveFlow("categorize", string(result.Status))
	outcome.Inspiration = &result
	return outcome, nil
}
