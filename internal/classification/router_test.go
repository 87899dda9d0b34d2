package classification

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/at-ishikawa/noteflow/internal/classifier"
	"github.com/at-ishikawa/noteflow/internal/content"
	"github.com/at-ishikawa/noteflow/internal/converter"
	"github.com/at-ishikawa/noteflow/internal/flow"
	"github.com/at-ishikawa/noteflow/internal/inspiration"
	"github.com/at-ishikawa/noteflow/internal/metrics"
	mock_classification "github.com/at-ishikawa/noteflow/internal/mocks/classification"
	mock_classifier "github.com/at-ishikawa/noteflow/internal/mocks/classifier"
)

func TestRouter_Classify(t *testing.T) {
	note := content.Note{ID: "n1", Title: "Call mom", Body: "tomorrow 9am"}
	committed := inspiration.Result{Category: "Recipes", CategoryID: "c1", Status: inspiration.StatusCommitted}

	tests := []struct {
		name            string
		note            content.Note
		setupMocks      func(gateway *mock_classifier.MockGateway, categorizer *mock_classification.MockCategorizer, conv *mock_classification.MockConverter)
		wantKind        classifier.Kind
		wantInspiration bool
		wantConversion  bool
		wantErr         error
		wantFlow        [2]string
	}{
		{
			name: "task goes to the converter only",
			note: note,
			setupMocks: func(gateway *mock_classifier.MockGateway, categorizer *mock_classification.MockCategorizer, conv *mock_classification.MockConverter) {
				gateway.EXPECT().Classify(gomock.Any(), classifier.ClassifyRequest{Note: classifier.NewNoteInput(note)}).
					Return(classifier.ClassifyResponse{Kind: classifier.KindTask, Confidence: 0.9}, nil)
				conv.EXPECT().Convert(gomock.Any(), note).Return(converter.NewSession(note, nil), nil)
				categorizer.EXPECT().Categorize(gomock.Any(), gomock.Any()).Times(0)
			},
			wantKind:       classifier.KindTask,
			wantConversion: true,
			wantFlow:       [2]string{"convert", "no_suggestions"},
		},
		{
			name: "inspiration goes to the categorizer",
			note: note,
			setupMocks: func(gateway *mock_classifier.MockGateway, categorizer *mock_classification.MockCategorizer, conv *mock_classification.MockConverter) {
				gateway.EXPECT().Classify(gomock.Any(), gomock.Any()).
					Return(classifier.ClassifyResponse{Kind: classifier.KindInspiration, Confidence: 0.8}, nil)
				categorizer.EXPECT().Categorize(gomock.Any(), note).Return(committed, nil)
				conv.EXPECT().Convert(gomock.Any(), gomock.Any()).Times(0)
			},
			wantKind:        classifier.KindInspiration,
			wantInspiration: true,
			wantFlow:        [2]string{"categorize", "created"},
		},
		{
			name: "classify failure dispatches nothing",
			note: note,
			setupMocks: func(gateway *mock_classifier.MockGateway, categorizer *mock_classification.MockCategorizer, conv *mock_classification.MockConverter) {
				gateway.EXPECT().Classify(gomock.Any(), gomock.Any()).
					Return(classifier.ClassifyResponse{}, flow.New(flow.ErrNetwork, "classify", "connection refused"))
				categorizer.EXPECT().Categorize(gomock.Any(), gomock.Any()).Times(0)
				conv.EXPECT().Convert(gomock.Any(), gomock.Any()).Times(0)
			},
			wantErr:  flow.ErrNetwork,
			wantFlow: [2]string{"classify", "network_error"},
		},
		{
			name: "converter failure keeps the classification",
			note: note,
			setupMocks: func(gateway *mock_classifier.MockGateway, categorizer *mock_classification.MockCategorizer, conv *mock_classification.MockConverter) {
				gateway.EXPECT().Classify(gomock.Any(), gomock.Any()).
					Return(classifier.ClassifyResponse{Kind: classifier.KindTask}, nil)
				conv.EXPECT().Convert(gomock.Any(), note).Return(nil, flow.New(flow.ErrService, "translate", "empty response"))
				categorizer.EXPECT().Categorize(gomock.Any(), gomock.Any()).Times(0)
			},
			wantKind: classifier.KindTask,
			wantErr:  flow.ErrService,
			wantFlow: [2]string{"convert", "service_error"},
		},
		{
			name: "unsaved note",
			note: content.Note{Title: "draft"},
			setupMocks: func(gateway *mock_classifier.MockGateway, categorizer *mock_classification.MockCategorizer, conv *mock_classification.MockConverter) {
			},
			wantErr: flow.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			gateway := mock_classifier.NewMockGateway(ctrl)
			categorizer := mock_classification.NewMockCategorizer(ctrl)
			conv := mock_classification.NewMockConverter(ctrl)
			tt.setupMocks(gateway, categorizer, conv)
			m := metrics.New(prometheus.NewRegistry())

			router := NewRouter(gateway, categorizer, conv, m)
			got, err := router.Classify(context.Background(), tt.note)

			if tt.wantFlow[0] != "" {
				assert.Equal(t, 1.0, testutil.ToFloat64(m.FlowOutcomes.WithLabelValues(tt.wantFlow[0], tt.wantFlow[1])))
			}
			assert.Equal(t, tt.wantKind, got.Classification.Kind)
			assert.Equal(t, tt.wantInspiration, got.Inspiration != nil)
			assert.Equal(t, tt.wantConversion, got.Conversion != nil)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}
