package content

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const noteColumns = "id, title, body, is_inspiration, is_analyzed, created_at, updated_at"

// DBNoteRepository implements NoteRepository using SQL.
type DBNoteRepository struct {
	db    *sqlx.DB
	now   func() time.Time
	newID func() string
}

// NewDBNoteRepository creates a new DBNoteRepository.
func NewDBNoteRepository(db *sqlx.DB) *DBNoteRepository {
	return &DBNoteRepository{db: db, now: utcNow, newID: uuid.NewString}
}

func utcNow() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}

func (r *DBNoteRepository) Create(ctx context.Context, params NewNote) (*Note, error) {
	now := r.now()
	note := &Note{
		ID:        r.newID(),
		Title:     params.Title,
		Body:      params.Body,
		CreatedAt: now,
		UpdatedAt: now,
		FolderIDs: []string{},
	}
	if _, err := r.db.ExecContext(ctx,
		"INSERT INTO notes ("+noteColumns+") VALUES (?, ?, ?, ?, ?, ?, ?)",
		note.ID, note.Title, note.Body, note.IsInspiration, note.IsAnalyzed, note.CreatedAt, note.UpdatedAt,
	); err != nil {
		return nil, mapError("insert note", err)
	}
	return note, nil
}

func (r *DBNoteRepository) Get(ctx context.Context, id string) (*Note, error) {
	var note Note
	if err := r.db.GetContext(ctx, &note, "SELECT "+noteColumns+" FROM notes WHERE id = ?", id); err != nil {
		return nil, mapError(fmt.Sprintf("load note %s", id), err)
	}

	folderIDs := []string{}
	if err := r.db.SelectContext(ctx, &folderIDs, "SELECT folder_id FROM note_folders WHERE note_id = ? ORDER BY folder_id", id); err != nil {
		return nil, mapError(fmt.Sprintf("load folders of note %s", id), err)
	}
	note.FolderIDs = folderIDs
	return &note, nil
}

func (r *DBNoteRepository) List(ctx context.Context) ([]Note, error) {
	var notes []Note
	if err := r.db.SelectContext(ctx, &notes, "SELECT "+noteColumns+" FROM notes ORDER BY created_at, id"); err != nil {
		return nil, mapError("load all notes", err)
	}

	var memberships []struct {
		NoteID   string `db:"note_id"`
		FolderID string `db:"folder_id"`
	}
	if err := r.db.SelectContext(ctx, &memberships, "SELECT note_id, folder_id FROM note_folders ORDER BY note_id, folder_id"); err != nil {
		return nil, mapError("load note folders", err)
	}
	byNote := make(map[string][]string, len(notes))
	for _, m := range memberships {
		byNote[m.NoteID] = append(byNote[m.NoteID], m.FolderID)
	}
	for i := range notes {
		notes[i].FolderIDs = byNote[notes[i].ID]
		if notes[i].FolderIDs == nil {
			notes[i].FolderIDs = []string{}
		}
	}
	return notes, nil
}

func (r *DBNoteRepository) ListUnorganized(ctx context.Context) ([]Note, error) {
	var notes []Note
	if err := r.db.SelectContext(ctx, &notes,
		"SELECT "+noteColumns+" FROM notes n WHERE NOT EXISTS (SELECT 1 FROM note_folders nf WHERE nf.note_id = n.id) ORDER BY created_at, id",
	); err != nil {
		return nil, mapError("load unorganized notes", err)
	}
	for i := range notes {
		notes[i].FolderIDs = []string{}
	}
	return notes, nil
}

func (r *DBNoteRepository) Update(ctx context.Context, id string, params NoteUpdate) (*Note, error) {
	var sets []string
	var args []interface{}
	if params.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *params.Title)
	}
	if params.Body != nil {
		sets = append(sets, "body = ?")
		args = append(args, *params.Body)
	}
	if len(sets) == 0 {
		return r.Get(ctx, id)
	}
	sets = append(sets, "updated_at = ?")
	args = append(args, r.now(), id)

	if _, err := r.db.ExecContext(ctx, "UPDATE notes SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...); err != nil {
		return nil, mapError(fmt.Sprintf("update note %s", id), err)
	}
	return r.Get(ctx, id)
}

func (r *DBNoteRepository) MarkInspiration(ctx context.Context, id string) (*Note, error) {
	return r.setFlag(ctx, id, "is_inspiration")
}

func (r *DBNoteRepository) MarkAnalyzed(ctx context.Context, id string) (*Note, error) {
	return r.setFlag(ctx, id, "is_analyzed")
}

func (r *DBNoteRepository) setFlag(ctx context.Context, id, column string) (*Note, error) {
	if _, err := r.db.ExecContext(ctx, "UPDATE notes SET "+column+" = ?, updated_at = ? WHERE id = ?", true, r.now(), id); err != nil {
		return nil, mapError(fmt.Sprintf("set %s on note %s", column, id), err)
	}
	return r.Get(ctx, id)
}

func (r *DBNoteRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM notes WHERE id = ?", id)
	if err != nil {
		return mapError(fmt.Sprintf("delete note %s", id), err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return notFound("delete note", "note %s", id)
	}
	return nil
}
