package content

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/noteflow/internal/database"
)

const folderSelect = "SELECT f.id, f.name, COALESCE(f.color, '') AS color, f.created_at, " +
	"(SELECT COUNT(*) FROM note_folders nf WHERE nf.folder_id = f.id) AS note_count FROM folders f"

var folderColumns = []string{"id", "name", "color", "created_at"}

// DBFolderRepository implements FolderRepository using SQL.
type DBFolderRepository struct {
	db    *sqlx.DB
	now   func() time.Time
	newID func() string
}

// NewDBFolderRepository creates a new DBFolderRepository.
func NewDBFolderRepository(db *sqlx.DB) *DBFolderRepository {
	return &DBFolderRepository{db: db, now: utcNow, newID: uuid.NewString}
}

func (r *DBFolderRepository) Create(ctx context.Context, params NewFolder) (*Folder, error) {
	folder := r.newFolder(params)
	if _, err := r.db.ExecContext(ctx,
		database.BuildMultiRowInsert("folders", folderColumns, 1),
		folder.ID, folder.Name, nullString(folder.Color), folder.CreatedAt,
	); err != nil {
		return nil, mapError(fmt.Sprintf("insert folder %q", params.Name), err)
	}
	return &folder, nil
}

func (r *DBFolderRepository) CreateBatch(ctx context.Context, params []NewFolder) ([]Folder, error) {
	if len(params) == 0 {
		return []Folder{}, nil
	}

	folders := make([]Folder, 0, len(params))
	args := make([]interface{}, 0, len(params)*len(folderColumns))
	for _, p := range params {
		folder := r.newFolder(p)
		folders = append(folders, folder)
		args = append(args, folder.ID, folder.Name, nullString(folder.Color), folder.CreatedAt)
	}

	err := database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, database.BuildMultiRowInsert("folders", folderColumns, len(folders)), args...); err != nil {
			return mapError("insert folders", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return folders, nil
}

func (r *DBFolderRepository) newFolder(params NewFolder) Folder {
	return Folder{
		ID:        r.newID(),
		Name:      params.Name,
		Color:     params.Color,
		CreatedAt: r.now(),
	}
}

func (r *DBFolderRepository) List(ctx context.Context) ([]Folder, error) {
	var folders []Folder
	if err := r.db.SelectContext(ctx, &folders, folderSelect+" ORDER BY f.name"); err != nil {
		return nil, mapError("load folders", err)
	}
	return folders, nil
}

func (r *DBFolderRepository) Delete(ctx context.Context, id string) error {
	return database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM note_folders WHERE folder_id = ?", id); err != nil {
			return mapError(fmt.Sprintf("delete memberships of folder %s", id), err)
		}
		result, err := tx.ExecContext(ctx, "DELETE FROM folders WHERE id = ?", id)
		if err != nil {
			return mapError(fmt.Sprintf("delete folder %s", id), err)
		}
		if n, err := result.RowsAffected(); err == nil && n == 0 {
			return notFound("delete folder", "folder %s", id)
		}
		return nil
	})
}

func (r *DBFolderRepository) ListNoteFolderIDs(ctx context.Context, noteID string) ([]string, error) {
	return listNoteFolderIDs(ctx, r.db, noteID)
}

func listNoteFolderIDs(ctx context.Context, q sqlx.QueryerContext, noteID string) ([]string, error) {
	ids := []string{}
	if err := sqlx.SelectContext(ctx, q, &ids, "SELECT folder_id FROM note_folders WHERE note_id = ? ORDER BY folder_id", noteID); err != nil {
		return nil, mapError(fmt.Sprintf("load folders of note %s", noteID), err)
	}
	return ids, nil
}

// AddNote records a user-sourced membership. An existing AI-sourced membership
// of the same pair becomes user-sourced.
func (r *DBFolderRepository) AddNote(ctx context.Context, folderID, noteID string) ([]string, error) {
	var ids []string
	err := database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		result, err := tx.ExecContext(ctx,
			"UPDATE note_folders SET source = ? WHERE note_id = ? AND folder_id = ?",
			string(MembershipUser), noteID, folderID,
		)
		if err != nil {
			return mapError(fmt.Sprintf("update membership of note %s in folder %s", noteID, folderID), err)
		}
		if n, err := result.RowsAffected(); err != nil || n == 0 {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO note_folders (note_id, folder_id, source, created_at) VALUES (?, ?, ?, ?)",
				noteID, folderID, string(MembershipUser), r.now(),
			); err != nil && !isUniqueViolation(err) {
				return mapError(fmt.Sprintf("add note %s to folder %s", noteID, folderID), err)
			}
		}
		ids, err = listNoteFolderIDs(ctx, tx, noteID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *DBFolderRepository) RemoveNote(ctx context.Context, folderID, noteID string) ([]string, error) {
	var ids []string
	err := database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM note_folders WHERE note_id = ? AND folder_id = ?", noteID, folderID); err != nil {
			return mapError(fmt.Sprintf("remove note %s from folder %s", noteID, folderID), err)
		}
		var err error
		ids, err = listNoteFolderIDs(ctx, tx, noteID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *DBFolderRepository) ReplaceAssigned(ctx context.Context, noteID string, folderIDs []string) ([]string, error) {
	var ids []string
	err := database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx,
			"DELETE FROM note_folders WHERE note_id = ? AND source = ?",
			noteID, string(MembershipAI),
		); err != nil {
			return mapError(fmt.Sprintf("clear assigned folders of note %s", noteID), err)
		}

		current, err := listNoteFolderIDs(ctx, tx, noteID)
		if err != nil {
			return err
		}
		kept := make(map[string]bool, len(current))
		for _, id := range current {
			kept[id] = true
		}

		now := r.now()
		var args []interface{}
		rows := 0
		for _, folderID := range folderIDs {
			if kept[folderID] {
				continue
			}
			kept[folderID] = true
			args = append(args, noteID, folderID, string(MembershipAI), now)
			rows++
		}
		if rows > 0 {
			query := database.BuildMultiRowInsert("note_folders", []string{"note_id", "folder_id", "source", "created_at"}, rows)
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return mapError(fmt.Sprintf("assign folders to note %s", noteID), err)
			}
		}

		ids, err = listNoteFolderIDs(ctx, tx, noteID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *DBFolderRepository) ListNotes(ctx context.Context, folderID string) ([]Note, error) {
	var notes []Note
	if err := r.db.SelectContext(ctx, &notes,
		"SELECT n.id, n.title, n.body, n.is_inspiration, n.is_analyzed, n.created_at, n.updated_at "+
			"FROM notes n JOIN note_folders nf ON nf.note_id = n.id WHERE nf.folder_id = ? ORDER BY n.created_at, n.id",
		folderID,
	); err != nil {
		return nil, mapError(fmt.Sprintf("load notes of folder %s", folderID), err)
	}
	return notes, nil
}
