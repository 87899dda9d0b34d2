package organize

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/at-ishikawa/noteflow/internal/classifier"
	"github.com/at-ishikawa/noteflow/internal/content"
	"github.com/at-ishikawa/noteflow/internal/flow"
	"github.com/at-ishikawa/noteflow/internal/metrics"
	mock_classifier "github.com/at-ishikawa/noteflow/internal/mocks/classifier"
	mock_content "github.com/at-ishikawa/noteflow/internal/mocks/content"
)

type organizerMocks struct {
	gateway *mock_classifier.MockGateway
	notes   *mock_content.MockNoteRepository
	folders *mock_content.MockFolderRepository
}

func newTestOrganizer(t *testing.T) (*Organizer, organizerMocks) {
	ctrl := gomock.NewController(t)
	m := organizerMocks{
		gateway: mock_classifier.NewMockGateway(ctrl),
		notes:   mock_content.NewMockNoteRepository(ctrl),
		folders: mock_content.NewMockFolderRepository(ctrl),
	}
	return NewOrganizer(m.gateway, m.notes, m.folders, metrics.New(prometheus.NewRegistry())), m
}

func TestOrganizer_RequestPreview(t *testing.T) {
	notes := []content.Note{{ID: "n1", Title: "Kyoto trip"}, {ID: "n2", Title: "Ramen broth"}}
	folders := []content.Folder{{ID: "f1", Name: "Work"}}
	raw := classifier.OrganizeResponse{
		SuggestedFolders: []classifier.FolderSuggestion{{Name: "Travel"}, {Name: "Travel"}, {Name: "Work"}},
		NoteAssignments: []classifier.NoteAssignment{
			{NoteID: "n1", FolderNames: []string{"Travel", "Travel"}, Reasoning: "trip"},
			{NoteID: "n7", FolderNames: []string{"Travel"}},
		},
	}

	tests := []struct {
		name         string
		setupMocks   func(m organizerMocks)
		want         Preview
		wantResponse classifier.OrganizeResponse
		wantErr      error
	}{
		{
			name: "builds a preview for unorganized notes",
			setupMocks: func(m organizerMocks) {
				m.notes.EXPECT().ListUnorganized(gomock.Any()).Return(notes, nil)
				m.folders.EXPECT().List(gomock.Any()).Return(folders, nil)
				m.gateway.EXPECT().Organize(gomock.Any(), classifier.OrganizeRequest{
					Notes:           []classifier.NoteInput{{ID: "n1", Title: "Kyoto trip"}, {ID: "n2", Title: "Ramen broth"}},
					ExistingFolders: []string{"Work"},
				}).Return(raw, nil)
			},
			wantResponse: raw,
			want: Preview{
				SuggestedFolders: []classifier.FolderSuggestion{{Name: "Travel"}},
				NoteAssignments:  []classifier.NoteAssignment{{NoteID: "n1", FolderNames: []string{"Travel"}, Reasoning: "trip"}},
				ExistingFolders:  []string{"Work"},
			},
		},
		{
			name: "no unorganized notes skips the model",
			setupMocks: func(m organizerMocks) {
				m.notes.EXPECT().ListUnorganized(gomock.Any()).Return([]content.Note{}, nil)
				m.folders.EXPECT().List(gomock.Any()).Return(folders, nil)
				m.gateway.EXPECT().Organize(gomock.Any(), gomock.Any()).Times(0)
			},
			want: Preview{ExistingFolders: []string{"Work"}},
		},
		{
			name: "service error",
			setupMocks: func(m organizerMocks) {
				m.notes.EXPECT().ListUnorganized(gomock.Any()).Return(notes, nil)
				m.folders.EXPECT().List(gomock.Any()).Return(folders, nil)
				m.gateway.EXPECT().Organize(gomock.Any(), gomock.Any()).
					Return(classifier.OrganizeResponse{}, flow.New(flow.ErrService, "organize", "invalid JSON"))
			},
			wantErr: flow.ErrService,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			organizer, m := newTestOrganizer(t)
			tt.setupMocks(m)

			session, err := organizer.RequestPreview(context.Background())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, session.Working())
			assert.Equal(t, tt.want, session.Original())
			assert.Equal(t, tt.wantResponse, session.Response())
		})
	}
}

func TestSession_ResponseIsACopy(t *testing.T) {
	organizer, m := newTestOrganizer(t)
	m.notes.EXPECT().ListUnorganized(gomock.Any()).Return([]content.Note{{ID: "n1"}}, nil)
	m.folders.EXPECT().List(gomock.Any()).Return(nil, nil)
	m.gateway.EXPECT().Organize(gomock.Any(), gomock.Any()).Return(classifier.OrganizeResponse{
		SuggestedFolders: []classifier.FolderSuggestion{{Name: "Travel"}},
		NoteAssignments:  []classifier.NoteAssignment{{NoteID: "n1", FolderNames: []string{"Travel"}}},
	}, nil)

	session, err := organizer.RequestPreview(context.Background())
	require.NoError(t, err)

	got := session.Response()
	got.SuggestedFolders[0].Name = "Work"
	got.NoteAssignments[0].FolderNames[0] = "Work"
	_, err = session.Edit(func(p Preview) Preview { return p.WithSuggestionRemoved("Travel") })
	require.NoError(t, err)

	assert.Equal(t, classifier.OrganizeResponse{
		SuggestedFolders: []classifier.FolderSuggestion{{Name: "Travel"}},
		NoteAssignments:  []classifier.NoteAssignment{{NoteID: "n1", FolderNames: []string{"Travel"}}},
	}, session.Response())
}

func TestOrganizer_Apply(t *testing.T) {
	travelPreview := Preview{
		SuggestedFolders: []classifier.FolderSuggestion{{Name: "Travel"}},
		NoteAssignments:  []classifier.NoteAssignment{{NoteID: "n1", FolderNames: []string{"Travel"}}},
	}
	errStore := errors.New("store unavailable")

	tests := []struct {
		name        string
		preview     Preview
		setupMocks  func(m organizerMocks)
		wantCreated []content.Folder
		wantNotes   []NoteResult
		wantFailed  int
		wantErr     error
	}{
		{
			name:    "creates the suggested folder and assigns the note",
			preview: travelPreview,
			setupMocks: func(m organizerMocks) {
				gomock.InOrder(
					m.folders.EXPECT().List(gomock.Any()).Return([]content.Folder{}, nil),
					m.folders.EXPECT().CreateBatch(gomock.Any(), []content.NewFolder{{Name: "Travel"}}).
						Return([]content.Folder{{ID: "f-travel", Name: "Travel"}}, nil),
					m.folders.EXPECT().ReplaceAssigned(gomock.Any(), "n1", []string{"f-travel"}).
						Return([]string{"f-travel"}, nil),
				)
			},
			wantCreated: []content.Folder{{ID: "f-travel", Name: "Travel"}},
			wantNotes:   []NoteResult{{NoteID: "n1", FolderIDs: []string{"f-travel"}}},
		},
		{
			name:    "second apply resolves to the existing folder",
			preview: travelPreview,
			setupMocks: func(m organizerMocks) {
				m.folders.EXPECT().List(gomock.Any()).Return([]content.Folder{{ID: "f-travel", Name: "Travel"}}, nil)
				m.folders.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).Times(0)
				m.folders.EXPECT().ReplaceAssigned(gomock.Any(), "n1", []string{"f-travel"}).
					Return([]string{"f-travel"}, nil)
			},
			wantNotes: []NoteResult{{NoteID: "n1", FolderIDs: []string{"f-travel"}}},
		},
		{
			name: "user folders are kept next to the assigned ones",
			preview: Preview{
				NoteAssignments: []classifier.NoteAssignment{{NoteID: "n1", FolderNames: []string{"Work", "Work"}}},
			},
			setupMocks: func(m organizerMocks) {
				m.folders.EXPECT().List(gomock.Any()).Return([]content.Folder{{ID: "f-work", Name: "Work"}}, nil)
				m.folders.EXPECT().ReplaceAssigned(gomock.Any(), "n1", []string{"f-work"}).
					Return([]string{"f-personal", "f-work"}, nil)
			},
			wantNotes: []NoteResult{{NoteID: "n1", FolderIDs: []string{"f-personal", "f-work"}}},
		},
		{
			name: "unresolved name writes nothing",
			preview: Preview{
				SuggestedFolders: []classifier.FolderSuggestion{{Name: "Travel"}},
				NoteAssignments:  []classifier.NoteAssignment{{NoteID: "n1", FolderNames: []string{"Travel", "travel"}}},
			},
			setupMocks: func(m organizerMocks) {
				m.folders.EXPECT().List(gomock.Any()).Return([]content.Folder{}, nil)
				m.folders.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).Times(0)
				m.folders.EXPECT().ReplaceAssigned(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			wantErr: flow.ErrResolution,
		},
		{
			name: "folder creation failure assigns nothing",
			preview: Preview{
				SuggestedFolders: []classifier.FolderSuggestion{{Name: "Travel"}, {Name: "Recipes"}},
				NoteAssignments:  []classifier.NoteAssignment{{NoteID: "n1", FolderNames: []string{"Travel"}}},
			},
			setupMocks: func(m organizerMocks) {
				m.folders.EXPECT().List(gomock.Any()).Return([]content.Folder{}, nil)
				m.folders.EXPECT().CreateBatch(gomock.Any(), []content.NewFolder{{Name: "Travel"}, {Name: "Recipes"}}).
					Return(nil, flow.New(flow.ErrConflict, "create folders", "duplicate name"))
				m.folders.EXPECT().ReplaceAssigned(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			wantErr: flow.ErrConflict,
		},
		{
			name: "one failing note does not stop the others",
			preview: Preview{
				SuggestedFolders: []classifier.FolderSuggestion{{Name: "Travel"}},
				NoteAssignments: []classifier.NoteAssignment{
					{NoteID: "n1", FolderNames: []string{"Travel"}},
					{NoteID: "n2", FolderNames: []string{"Travel"}},
				},
			},
			setupMocks: func(m organizerMocks) {
				m.folders.EXPECT().List(gomock.Any()).Return([]content.Folder{}, nil)
				m.folders.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).
					Return([]content.Folder{{ID: "f-travel", Name: "Travel"}}, nil)
				m.folders.EXPECT().ReplaceAssigned(gomock.Any(), "n1", gomock.Any()).Return(nil, errStore)
				m.folders.EXPECT().ReplaceAssigned(gomock.Any(), "n2", []string{"f-travel"}).Return([]string{"f-travel"}, nil)
			},
			wantCreated: []content.Folder{{ID: "f-travel", Name: "Travel"}},
			wantFailed:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			organizer, m := newTestOrganizer(t)
			tt.setupMocks(m)

			got, err := organizer.Apply(context.Background(), tt.preview)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, got.Notes)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCreated, got.CreatedFolders)
			assert.Len(t, got.Failed(), tt.wantFailed)
			if tt.wantNotes != nil {
				assert.Equal(t, tt.wantNotes, got.Notes)
			}
		})
	}
}

func TestOrganizer_ApplyResolutionError(t *testing.T) {
	organizer, m := newTestOrganizer(t)
	m.folders.EXPECT().List(gomock.Any()).Return([]content.Folder{}, nil)

	_, err := organizer.Apply(context.Background(), Preview{
		SuggestedFolders: []classifier.FolderSuggestion{{Name: ""}},
		NoteAssignments:  []classifier.NoteAssignment{{NoteID: "n1", FolderNames: []string{"Nowhere"}}},
	})

	require.ErrorIs(t, err, flow.ErrResolution)
	violations := flow.Violations(err)
	require.Len(t, violations, 2)
	assert.Equal(t, "suggested_folders[0].name", violations[0].Field)
	assert.Equal(t, "note_assignments[0].folder_names", violations[1].Field)
}

func TestOrganizer_ApplySession(t *testing.T) {
	organizer, m := newTestOrganizer(t)
	session := NewSession(Preview{
		NoteAssignments: []classifier.NoteAssignment{{NoteID: "n1", FolderNames: []string{"Nowhere"}}},
	})

	m.folders.EXPECT().List(gomock.Any()).Return([]content.Folder{}, nil).Times(2)
	_, err := organizer.ApplySession(context.Background(), session)
	require.ErrorIs(t, err, flow.ErrResolution)
	assert.False(t, session.Consumed(), "a failed apply that wrote nothing can be retried")

	_, err = session.Edit(func(p Preview) Preview {
		return p.WithFolderRemoved("n1", "Nowhere").WithSuggestionAdded("Somewhere", "").WithFolderAdded("n1", "Somewhere")
	})
	require.NoError(t, err)
	m.folders.EXPECT().CreateBatch(gomock.Any(), []content.NewFolder{{Name: "Somewhere"}}).
		Return([]content.Folder{{ID: "f1", Name: "Somewhere"}}, nil)
	m.folders.EXPECT().ReplaceAssigned(gomock.Any(), "n1", []string{"f1"}).Return([]string{"f1"}, nil)

	_, err = organizer.ApplySession(context.Background(), session)
	require.NoError(t, err)
	assert.True(t, session.Consumed())

	_, err = organizer.ApplySession(context.Background(), session)
	assert.ErrorIs(t, err, flow.ErrConflict)
}
