package inspiration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/at-ishikawa/noteflow/internal/content"
	"github.com/at-ishikawa/noteflow/internal/flow"
	mock_content "github.com/at-ishikawa/noteflow/internal/mocks/content"
)

var testNow = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func pendingCategory(id, name string) *content.Category {
	return &content.Category{ID: id, Name: name, Status: content.CategoryPendingApproval, DiscoveredBy: content.OriginAI, CreatedAt: testNow}
}

func activeCategory(id, name string) *content.Category {
	return &content.Category{ID: id, Name: name, Status: content.CategoryActive, DiscoveredBy: content.OriginAI, CreatedAt: testNow}
}

func TestGate_Propose(t *testing.T) {
	gate := NewGate(nil, nil)

	_, ok := gate.Pending()
	assert.False(t, ok)

	assert.Nil(t, gate.Propose(Proposal{CategoryID: "c1", Category: "Recipes", NoteID: "n1"}))
	got, ok := gate.Pending()
	require.True(t, ok)
	assert.Equal(t, "c1", got.CategoryID)

	superseded := gate.Propose(Proposal{CategoryID: "c2", Category: "Travel", NoteID: "n2"})
	require.NotNil(t, superseded)
	assert.Equal(t, "c1", superseded.CategoryID)
	got, _ = gate.Pending()
	assert.Equal(t, "c2", got.CategoryID)

	assert.Nil(t, gate.Propose(Proposal{CategoryID: "c2", Category: "Travel", NoteID: "n3"}), "same category is not superseded")
}

func TestGate_Approve(t *testing.T) {
	tests := []struct {
		name       string
		categoryID string
		noteID     string
		proposal   *Proposal
		setupMocks func(categories *mock_content.MockCategoryRepository, notes *mock_content.MockNoteRepository)
		wantErr    error
		wantAssign bool
		wantOpen   bool
	}{
		{
			name:       "activates and assigns with the proposal confidence",
			categoryID: "c1",
			noteID:     "n1",
			proposal:   &Proposal{CategoryID: "c1", Category: "Recipes", NoteID: "n1", Confidence: 0.81},
			setupMocks: func(categories *mock_content.MockCategoryRepository, notes *mock_content.MockNoteRepository) {
				gomock.InOrder(
					categories.EXPECT().Get(gomock.Any(), "c1").Return(pendingCategory("c1", "Recipes"), nil),
					categories.EXPECT().Activate(gomock.Any(), "c1").Return(activeCategory("c1", "Recipes"), nil),
					categories.EXPECT().GetInspirationByNote(gomock.Any(), "n1").Return(nil, flow.New(flow.ErrNotFound, "load", "none")),
					categories.EXPECT().AssignInspiration(gomock.Any(), content.NewInspiration{NoteID: "n1", CategoryID: "c1", Confidence: 0.81}).
						Return(&content.Inspiration{ID: "i1", NoteID: "n1", CategoryID: "c1", CategoryName: "Recipes", Confidence: 0.81}, nil),
					notes.EXPECT().MarkInspiration(gomock.Any(), "n1").Return(&content.Note{ID: "n1", IsInspiration: true}, nil),
				)
			},
			wantAssign: true,
		},
		{
			name:       "without the proposal in the slot uses the default confidence",
			categoryID: "c1",
			noteID:     "n1",
			proposal:   &Proposal{CategoryID: "c9", Category: "Other", NoteID: "n9", Confidence: 0.5},
			setupMocks: func(categories *mock_content.MockCategoryRepository, notes *mock_content.MockNoteRepository) {
				categories.EXPECT().Get(gomock.Any(), "c1").Return(pendingCategory("c1", "Recipes"), nil)
				categories.EXPECT().Activate(gomock.Any(), "c1").Return(activeCategory("c1", "Recipes"), nil)
				categories.EXPECT().GetInspirationByNote(gomock.Any(), "n1").Return(nil, flow.New(flow.ErrNotFound, "load", "none"))
				categories.EXPECT().AssignInspiration(gomock.Any(), content.NewInspiration{NoteID: "n1", CategoryID: "c1", Confidence: DefaultApprovalConfidence}).
					Return(&content.Inspiration{ID: "i1"}, nil)
				notes.EXPECT().MarkInspiration(gomock.Any(), "n1").Return(&content.Note{ID: "n1", IsInspiration: true}, nil)
			},
			wantAssign: true,
			wantOpen:   true,
		},
		{
			name:       "re-approval of an assigned active category creates nothing",
			categoryID: "c1",
			noteID:     "n1",
			setupMocks: func(categories *mock_content.MockCategoryRepository, notes *mock_content.MockNoteRepository) {
				categories.EXPECT().Get(gomock.Any(), "c1").Return(activeCategory("c1", "Recipes"), nil)
				categories.EXPECT().GetInspirationByNote(gomock.Any(), "n1").
					Return(&content.Inspiration{ID: "i1", NoteID: "n1", CategoryID: "c1"}, nil)
				notes.EXPECT().Get(gomock.Any(), "n1").Return(&content.Note{ID: "n1", IsInspiration: true}, nil)
				categories.EXPECT().Activate(gomock.Any(), gomock.Any()).Times(0)
				categories.EXPECT().AssignInspiration(gomock.Any(), gomock.Any()).Times(0)
			},
			wantAssign: true,
		},
		{
			name:       "empty note only activates",
			categoryID: "c1",
			proposal:   &Proposal{CategoryID: "c1", Category: "Recipes", NoteID: "n1"},
			setupMocks: func(categories *mock_content.MockCategoryRepository, notes *mock_content.MockNoteRepository) {
				categories.EXPECT().Get(gomock.Any(), "c1").Return(pendingCategory("c1", "Recipes"), nil)
				categories.EXPECT().Activate(gomock.Any(), "c1").Return(activeCategory("c1", "Recipes"), nil)
			},
		},
		{
			name:       "unknown category",
			categoryID: "c1",
			noteID:     "n1",
			proposal:   &Proposal{CategoryID: "c1"},
			setupMocks: func(categories *mock_content.MockCategoryRepository, notes *mock_content.MockNoteRepository) {
				categories.EXPECT().Get(gomock.Any(), "c1").Return(nil, flow.New(flow.ErrNotFound, "load category", "c1"))
			},
			wantErr:  flow.ErrNotFound,
			wantOpen: true,
		},
		{
			name:       "missing category id",
			setupMocks: func(categories *mock_content.MockCategoryRepository, notes *mock_content.MockNoteRepository) {},
			wantErr:    flow.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			categories := mock_content.NewMockCategoryRepository(ctrl)
			notes := mock_content.NewMockNoteRepository(ctrl)
			tt.setupMocks(categories, notes)

			gate := NewGate(categories, notes)
			if tt.proposal != nil {
				gate.Propose(*tt.proposal)
			}

			got, err := gate.Approve(context.Background(), tt.categoryID, tt.noteID)
			_, open := gate.Pending()
			assert.Equal(t, tt.wantOpen, open)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, content.CategoryActive, got.Category.Status)
			if tt.wantAssign {
				require.NotNil(t, got.Inspiration)
				require.NotNil(t, got.Note)
				assert.True(t, got.Note.IsInspiration)
			} else {
				assert.Nil(t, got.Inspiration)
			}
		})
	}
}

func TestGate_Reject(t *testing.T) {
	tests := []struct {
		name       string
		setupMocks func(categories *mock_content.MockCategoryRepository)
		wantErr    error
		wantOpen   bool
	}{
		{
			name: "deletes the pending category and closes the slot",
			setupMocks: func(categories *mock_content.MockCategoryRepository) {
				gomock.InOrder(
					categories.EXPECT().Get(gomock.Any(), "c1").Return(pendingCategory("c1", "Recipes"), nil),
					categories.EXPECT().Delete(gomock.Any(), "c1").Return(nil),
				)
				categories.EXPECT().AssignInspiration(gomock.Any(), gomock.Any()).Times(0)
			},
		},
		{
			name: "active category is not a proposal",
			setupMocks: func(categories *mock_content.MockCategoryRepository) {
				categories.EXPECT().Get(gomock.Any(), "c1").Return(activeCategory("c1", "Recipes"), nil)
				categories.EXPECT().Delete(gomock.Any(), gomock.Any()).Times(0)
			},
			wantErr:  flow.ErrConflict,
			wantOpen: true,
		},
		{
			name: "already rejected",
			setupMocks: func(categories *mock_content.MockCategoryRepository) {
				categories.EXPECT().Get(gomock.Any(), "c1").Return(nil, flow.New(flow.ErrNotFound, "load category", "c1"))
			},
			wantErr:  flow.ErrNotFound,
			wantOpen: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			categories := mock_content.NewMockCategoryRepository(ctrl)
			tt.setupMocks(categories)

			gate := NewGate(categories, mock_content.NewMockNoteRepository(ctrl))
			gate.Propose(Proposal{CategoryID: "c1", Category: "Recipes", NoteID: "n2"})

			err := gate.Reject(context.Background(), "c1")
			_, open := gate.Pending()
			assert.Equal(t, tt.wantOpen, open)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
