package content

import (
	"context"
	"database/sql/driver"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/noteflow/internal/flow"
)

var plannerRowColumns = []string{"id", "title", "body", "due_date", "due_time", "view_type", "status", "created_at", "updated_at"}

func newTestPlannerRepository(t *testing.T) (*DBPlannerRepository, sqlmock.Sqlmock) {
	db, mock := newMockDB(t)
	repo := NewDBPlannerRepository(db)
	repo.now = fixedClock
	repo.newID = sequentialIDs("item-1")
	return repo, mock
}

func TestDBPlannerRepository_CreateItem(t *testing.T) {
	tests := []struct {
		name      string
		params    NewPlannerItem
		setupMock func(mock sqlmock.Sqlmock)
		want      *PlannerItem
	}{
		{
			name:   "defaults to daily view without time",
			params: NewPlannerItem{Title: "Call mom", Date: "2025-03-02"},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO planner_items (id, title, body, due_date, due_time, view_type, status, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)")).
					WithArgs("item-1", "Call mom", "", "2025-03-02", nil, "daily", "pending", testNow, testNow).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			want: &PlannerItem{
				ID: "item-1", Title: "Call mom", Date: "2025-03-02", ViewType: ViewDaily,
				Status: PlannerPending, CreatedAt: testNow, UpdatedAt: testNow,
			},
		},
		{
			name:   "keeps time and view type",
			params: NewPlannerItem{Title: "Review", Body: "Q1", Date: "2025-03-31", Time: "14:00", ViewType: ViewMonthly},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO planner_items").
					WithArgs("item-1", "Review", "Q1", "2025-03-31", "14:00", "monthly", "pending", testNow, testNow).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			want: &PlannerItem{
				ID: "item-1", Title: "Review", Body: "Q1", Date: "2025-03-31", Time: "14:00", ViewType: ViewMonthly,
				Status: PlannerPending, CreatedAt: testNow, UpdatedAt: testNow,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestPlannerRepository(t)
			tt.setupMock(mock)

			got, err := repo.CreateItem(context.Background(), tt.params)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBPlannerRepository_ListItems(t *testing.T) {
	tests := []struct {
		name      string
		filter    PlannerFilter
		wantQuery string
		wantArgs  []driver.Value
	}{
		{
			name:      "no filter",
			wantQuery: plannerSelect + " ORDER BY p.due_date, p.created_at, p.id",
		},
		{
			name:      "date range and status",
			filter:    PlannerFilter{DateStart: "2025-03-01", DateEnd: "2025-03-31", Status: PlannerPending},
			wantQuery: plannerSelect + " WHERE p.due_date >= ? AND p.due_date <= ? AND p.status = ? ORDER BY p.due_date, p.created_at, p.id",
			wantArgs:  []driver.Value{"2025-03-01", "2025-03-31", "pending"},
		},
		{
			name:      "view type",
			filter:    PlannerFilter{ViewType: ViewWeekly},
			wantQuery: plannerSelect + " WHERE p.view_type = ? ORDER BY p.due_date, p.created_at, p.id",
			wantArgs:  []driver.Value{"weekly"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestPlannerRepository(t)
			expect := mock.ExpectQuery("^" + regexp.QuoteMeta(tt.wantQuery) + "$")
			if len(tt.wantArgs) > 0 {
				expect = expect.WithArgs(tt.wantArgs...)
			}
			expect.WillReturnRows(sqlmock.NewRows(plannerRowColumns).
				AddRow("item-1", "Call mom", "", "2025-03-02", "", "daily", "pending", testNow, testNow))

			got, err := repo.ListItems(context.Background(), tt.filter)
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.Equal(t, "", got[0].Time)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBPlannerRepository_ToggleItemStatus(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		wantKind error
	}{
		{name: "toggles", affected: 1},
		{name: "missing item", affected: 0, wantKind: flow.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestPlannerRepository(t)
			mock.ExpectExec(regexp.QuoteMeta("UPDATE planner_items SET status = CASE WHEN status = ? THEN ? ELSE ? END, updated_at = ? WHERE id = ?")).
				WithArgs("completed", "pending", "completed", testNow, "item-1").
				WillReturnResult(sqlmock.NewResult(0, tt.affected))
			if tt.wantKind == nil {
				mock.ExpectQuery("FROM planner_items p WHERE p.id = ?").
					WithArgs("item-1").
					WillReturnRows(sqlmock.NewRows(plannerRowColumns).
						AddRow("item-1", "Call mom", "", "2025-03-02", "", "daily", "completed", testNow, testNow))
			}

			got, err := repo.ToggleItemStatus(context.Background(), "item-1")
			if tt.wantKind != nil {
				assert.ErrorIs(t, err, tt.wantKind)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, PlannerCompleted, got.Status)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBPlannerRepository_CreateLink(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		wantID    string
	}{
		{
			name: "creates new link",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO links (id, note_id, planner_item_id, created_at) VALUES (?, ?, ?, ?)")).
					WithArgs("item-1", "note-1", "p-1", testNow).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			wantID: "item-1",
		},
		{
			name: "returns existing link on duplicate",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO links").
					WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, note_id, planner_item_id, created_at FROM links WHERE note_id = ? AND planner_item_id = ?")).
					WithArgs("note-1", "p-1").
					WillReturnRows(sqlmock.NewRows([]string{"id", "note_id", "planner_item_id", "created_at"}).
						AddRow("link-0", "note-1", "p-1", testNow))
			},
			wantID: "link-0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestPlannerRepository(t)
			tt.setupMock(mock)

			got, err := repo.CreateLink(context.Background(), "note-1", "p-1")
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, got.ID)
			assert.Equal(t, "p-1", got.PlannerItemID)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBPlannerRepository_ListLinked(t *testing.T) {
	repo, mock := newTestPlannerRepository(t)
	mock.ExpectQuery(regexp.QuoteMeta("JOIN links l ON l.planner_item_id = p.id WHERE l.note_id = ?")).
		WithArgs("note-1").
		WillReturnRows(sqlmock.NewRows(plannerRowColumns).
			AddRow("p-1", "Call mom", "", "2025-03-02", "09:00", "daily", "pending", testNow, testNow))
	mock.ExpectQuery(regexp.QuoteMeta("JOIN links l ON l.note_id = n.id WHERE l.planner_item_id = ?")).
		WithArgs("p-1").
		WillReturnRows(sqlmock.NewRows(noteRowColumns).AddRow("note-1", "Call mom", "", false, true, testNow, testNow))

	items, err := repo.ListLinkedItems(context.Background(), "note-1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "09:00", items[0].Time)

	notes, err := repo.ListLinkedNotes(context.Background(), "p-1")
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.True(t, notes[0].IsAnalyzed)
	assert.NoError(t, mock.ExpectationsWereMet())
}
