package content

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/noteflow/internal/database"
)

const plannerSelect = "SELECT p.id, p.title, p.body, p.due_date, COALESCE(p.due_time, '') AS due_time, " +
	"p.view_type, p.status, p.created_at, p.updated_at FROM planner_items p"

// DBPlannerRepository implements PlannerRepository using SQL.
type DBPlannerRepository struct {
	db    *sqlx.DB
	now   func() time.Time
	newID func() string
}

// NewDBPlannerRepository creates a new DBPlannerRepository.
func NewDBPlannerRepository(db *sqlx.DB) *DBPlannerRepository {
	return &DBPlannerRepository{db: db, now: utcNow, newID: uuid.NewString}
}

func (r *DBPlannerRepository) CreateItem(ctx context.Context, params NewPlannerItem) (*PlannerItem, error) {
	now := r.now()
	viewType := params.ViewType
	if viewType == "" {
		viewType = ViewDaily
	}
	item := &PlannerItem{
		ID:        r.newID(),
		Title:     params.Title,
		Body:      params.Body,
		Date:      params.Date,
		Time:      params.Time,
		ViewType:  viewType,
		Status:    PlannerPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := r.db.ExecContext(ctx,
		"INSERT INTO planner_items (id, title, body, due_date, due_time, view_type, status, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
		item.ID, item.Title, item.Body, item.Date, nullString(item.Time), string(item.ViewType), string(item.Status), item.CreatedAt, item.UpdatedAt,
	); err != nil {
		return nil, mapError(fmt.Sprintf("insert planner item %q", params.Title), err)
	}
	return item, nil
}

func (r *DBPlannerRepository) GetItem(ctx context.Context, id string) (*PlannerItem, error) {
	var item PlannerItem
	if err := r.db.GetContext(ctx, &item, plannerSelect+" WHERE p.id = ?", id); err != nil {
		return nil, mapError(fmt.Sprintf("load planner item %s", id), err)
	}
	return &item, nil
}

func (r *DBPlannerRepository) ListItems(ctx context.Context, filter PlannerFilter) ([]PlannerItem, error) {
	var conds []string
	var args []interface{}
	if filter.DateStart != "" {
		conds = append(conds, "p.due_date >= ?")
		args = append(args, filter.DateStart)
	}
	if filter.DateEnd != "" {
		conds = append(conds, "p.due_date <= ?")
		args = append(args, filter.DateEnd)
	}
	if filter.ViewType != "" {
		conds = append(conds, "p.view_type = ?")
		args = append(args, string(filter.ViewType))
	}
	if filter.Status != "" {
		conds = append(conds, "p.status = ?")
		args = append(args, string(filter.Status))
	}

	query := plannerSelect
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY p.due_date, p.created_at, p.id"

	var items []PlannerItem
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, mapError("load planner items", err)
	}
	return items, nil
}

func (r *DBPlannerRepository) ToggleItemStatus(ctx context.Context, id string) (*PlannerItem, error) {
	result, err := r.db.ExecContext(ctx,
		"UPDATE planner_items SET status = CASE WHEN status = ? THEN ? ELSE ? END, updated_at = ? WHERE id = ?",
		string(PlannerCompleted), string(PlannerPending), string(PlannerCompleted), r.now(), id,
	)
	if err != nil {
		return nil, mapError(fmt.Sprintf("toggle planner item %s", id), err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return nil, notFound("toggle planner item", "planner item %s", id)
	}
	return r.GetItem(ctx, id)
}

func (r *DBPlannerRepository) DeleteItem(ctx context.Context, id string) error {
	return database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM links WHERE planner_item_id = ?", id); err != nil {
			return mapError(fmt.Sprintf("delete links of planner item %s", id), err)
		}
		result, err := tx.ExecContext(ctx, "DELETE FROM planner_items WHERE id = ?", id)
		if err != nil {
			return mapError(fmt.Sprintf("delete planner item %s", id), err)
		}
		if n, err := result.RowsAffected(); err == nil && n == 0 {
			return notFound("delete planner item", "planner item %s", id)
		}
		return nil
	})
}

func (r *DBPlannerRepository) CreateLink(ctx context.Context, noteID, plannerItemID string) (*Link, error) {
	link := &Link{
		ID:            r.newID(),
		NoteID:        noteID,
		PlannerItemID: plannerItemID,
		CreatedAt:     r.now(),
	}
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO links (id, note_id, planner_item_id, created_at) VALUES (?, ?, ?, ?)",
		link.ID, link.NoteID, link.PlannerItemID, link.CreatedAt,
	)
	if err == nil {
		return link, nil
	}
	if !isUniqueViolation(err) {
		return nil, mapError(fmt.Sprintf("link note %s to planner item %s", noteID, plannerItemID), err)
	}

	var existing Link
	if err := r.db.GetContext(ctx, &existing,
		"SELECT id, note_id, planner_item_id, created_at FROM links WHERE note_id = ? AND planner_item_id = ?",
		noteID, plannerItemID,
	); err != nil {
		return nil, mapError(fmt.Sprintf("load link of note %s and planner item %s", noteID, plannerItemID), err)
	}
	return &existing, nil
}

func (r *DBPlannerRepository) ListLinkedItems(ctx context.Context, noteID string) ([]PlannerItem, error) {
	var items []PlannerItem
	if err := r.db.SelectContext(ctx, &items,
		plannerSelect+" JOIN links l ON l.planner_item_id = p.id WHERE l.note_id = ? ORDER BY p.due_date, p.id", noteID,
	); err != nil {
		return nil, mapError(fmt.Sprintf("load planner items linked to note %s", noteID), err)
	}
	return items, nil
}

func (r *DBPlannerRepository) ListLinkedNotes(ctx context.Context, plannerItemID string) ([]Note, error) {
	var notes []Note
	if err := r.db.SelectContext(ctx, &notes,
		"SELECT n.id, n.title, n.body, n.is_inspiration, n.is_analyzed, n.created_at, n.updated_at "+
			"FROM notes n JOIN links l ON l.note_id = n.id WHERE l.planner_item_id = ? ORDER BY n.created_at, n.id",
		plannerItemID,
	); err != nil {
		return nil, mapError(fmt.Sprintf("load notes linked to planner item %s", plannerItemID), err)
	}
	return notes, nil
}
