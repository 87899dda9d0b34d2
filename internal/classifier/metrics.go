package classifier

import (
	"context"
	"time"

	"github.com/at-ishikawa/noteflow/internal/metrics"
)

// InstrumentedGateway records a call counter and latency for every call of the wrapped Gateway.
type InstrumentedGateway struct {
	next    Gateway
	metrics *metrics.Metrics
}

func NewInstrumentedGateway(next Gateway, m *metrics.Metrics) *InstrumentedGateway {
	return &InstrumentedGateway{next: next, metrics: m}
}

func (g *InstrumentedGateway) Classify(ctx context.Context, req ClassifyRequest) (resp ClassifyResponse, err error) {
	defer g.observe("classify", time.Now(), &err)
	return g.next.Classify(ctx, req)
}

func (g *InstrumentedGateway) Categorize(ctx context.Context, req CategorizeRequest) (resp CategorizeResponse, err error) {
	defer g.observe("categorize", time.Now(), &err)
	return g.next.Categorize(ctx, req)
}

func (g *InstrumentedGateway) Translate(ctx context.Context, req TranslateRequest) (resp TranslateResponse, err error) {
	defer g.observe("translate", time.Now(), &err)
	return g.next.Translate(ctx, req)
}

func (g *InstrumentedGateway) Organize(ctx context.Context, req OrganizeRequest) (resp OrganizeResponse, err error) {
	defer g.observe("organize", time.Now(), &err)
	return g.next.Organize(ctx, req)
}

func (g *InstrumentedGateway) SelectFolders(ctx context.Context, req SelectFoldersRequest) (resp SelectFoldersResponse, err error) {
	defer g.observe("select_folders", time.Now(), &err)
	return g.next.SelectFolders(ctx, req)
}

func (g *InstrumentedGateway) AnswerQuestion(ctx context.Context, req AnswerQuestionRequest) (resp AnswerQuestionResponse, err error) {
	defer g.observe("answer_question", time.Now(), &err)
	return g.next.AnswerQuestion(ctx, req)
}

func (g *InstrumentedGateway) observe(operation string, start time.Time, err *error) {
	g.metrics.ObserveGatewayCall(operation, start, *err)
}
