package content

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/noteflow/internal/database"
)

const (
	categoryColumns   = "id, name, status, discovered_by, created_at"
	inspirationSelect = "SELECT i.id, i.note_id, i.category_id, c.name AS category_name, i.ai_confidence, i.created_at " +
		"FROM inspirations i JOIN inspiration_categories c ON c.id = i.category_id"
)

// DBCategoryRepository implements CategoryRepository using SQL.
type DBCategoryRepository struct {
	db    *sqlx.DB
	now   func() time.Time
	newID func() string
}

// NewDBCategoryRepository creates a new DBCategoryRepository.
func NewDBCategoryRepository(db *sqlx.DB) *DBCategoryRepository {
	return &DBCategoryRepository{db: db, now: utcNow, newID: uuid.NewString}
}

func (r *DBCategoryRepository) Create(ctx context.Context, params NewCategory) (*Category, error) {
	category := &Category{
		ID:           r.newID(),
		Name:         params.Name,
		Status:       params.Status,
		DiscoveredBy: params.DiscoveredBy,
		CreatedAt:    r.now(),
	}
	if _, err := r.db.ExecContext(ctx,
		"INSERT INTO inspiration_categories ("+categoryColumns+") VALUES (?, ?, ?, ?, ?)",
		category.ID, category.Name, string(category.Status), string(category.DiscoveredBy), category.CreatedAt,
	); err != nil {
		return nil, mapError(fmt.Sprintf("insert category %q", params.Name), err)
	}
	return category, nil
}

func (r *DBCategoryRepository) Get(ctx context.Context, id string) (*Category, error) {
	var category Category
	if err := r.db.GetContext(ctx, &category, "SELECT "+categoryColumns+" FROM inspiration_categories WHERE id = ?", id); err != nil {
		return nil, mapError(fmt.Sprintf("load category %s", id), err)
	}
	return &category, nil
}

func (r *DBCategoryRepository) FindByName(ctx context.Context, name string, status CategoryStatus) (*Category, error) {
	var category Category
	if err := r.db.GetContext(ctx, &category,
		"SELECT "+categoryColumns+" FROM inspiration_categories WHERE name = ? AND status = ? ORDER BY created_at, id LIMIT 1",
		name, string(status),
	); err != nil {
		return nil, mapError(fmt.Sprintf("find %s category %q", status, name), err)
	}
	return &category, nil
}

func (r *DBCategoryRepository) List(ctx context.Context, status CategoryStatus) ([]Category, error) {
	var categories []Category
	var err error
	if status == "" {
		err = r.db.SelectContext(ctx, &categories, "SELECT "+categoryColumns+" FROM inspiration_categories ORDER BY name, id")
	} else {
		err = r.db.SelectContext(ctx, &categories,
			"SELECT "+categoryColumns+" FROM inspiration_categories WHERE status = ? ORDER BY name, id", string(status))
	}
	if err != nil {
		return nil, mapError("load categories", err)
	}
	return categories, nil
}

func (r *DBCategoryRepository) Activate(ctx context.Context, id string) (*Category, error) {
	if _, err := r.db.ExecContext(ctx,
		"UPDATE inspiration_categories SET status = ? WHERE id = ?", string(CategoryActive), id,
	); err != nil {
		return nil, mapError(fmt.Sprintf("activate category %s", id), err)
	}
	return r.Get(ctx, id)
}

func (r *DBCategoryRepository) Delete(ctx context.Context, id string) error {
	return database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM inspirations WHERE category_id = ?", id); err != nil {
			return mapError(fmt.Sprintf("delete inspirations of category %s", id), err)
		}
		result, err := tx.ExecContext(ctx, "DELETE FROM inspiration_categories WHERE id = ?", id)
		if err != nil {
			return mapError(fmt.Sprintf("delete category %s", id), err)
		}
		if n, err := result.RowsAffected(); err == nil && n == 0 {
			return notFound("delete category", "category %s", id)
		}
		return nil
	})
}

func (r *DBCategoryRepository) AssignInspiration(ctx context.Context, params NewInspiration) (*Inspiration, error) {
	var inspiration Inspiration
	err := database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM inspirations WHERE note_id = ?", params.NoteID); err != nil {
			return mapError(fmt.Sprintf("clear inspiration of note %s", params.NoteID), err)
		}
		id := r.newID()
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO inspirations (id, note_id, category_id, ai_confidence, created_at) VALUES (?, ?, ?, ?, ?)",
			id, params.NoteID, params.CategoryID, params.Confidence, r.now(),
		); err != nil {
			return mapError(fmt.Sprintf("assign note %s to category %s", params.NoteID, params.CategoryID), err)
		}
		if err := tx.GetContext(ctx, &inspiration, inspirationSelect+" WHERE i.id = ?", id); err != nil {
			return mapError(fmt.Sprintf("load inspiration %s", id), err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &inspiration, nil
}

func (r *DBCategoryRepository) GetInspirationByNote(ctx context.Context, noteID string) (*Inspiration, error) {
	var inspiration Inspiration
	if err := r.db.GetContext(ctx, &inspiration, inspirationSelect+" WHERE i.note_id = ?", noteID); err != nil {
		return nil, mapError(fmt.Sprintf("load inspiration of note %s", noteID), err)
	}
	return &inspiration, nil
}

func (r *DBCategoryRepository) ListInspirations(ctx context.Context) ([]Inspiration, error) {
	var inspirations []Inspiration
	if err := r.db.SelectContext(ctx, &inspirations, inspirationSelect+" ORDER BY i.created_at, i.id"); err != nil {
		return nil, mapError("load inspirations", err)
	}
	return inspirations, nil
}

func (r *DBCategoryRepository) DeleteInspiration(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM inspirations WHERE id = ?", id)
	if err != nil {
		return mapError(fmt.Sprintf("delete inspiration %s", id), err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return notFound("delete inspiration", "inspiration %s", id)
	}
	return nil
}
