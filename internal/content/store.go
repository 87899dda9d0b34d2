package content

import (
	"database/sql"

	"github.com/jmoiron/sqlx"
)

// Store bundles the repositories backed by one database.
type Store struct {
	Notes      NoteRepository
	Folders    FolderRepository
	Categories CategoryRepository
	Planner    PlannerRepository
	Chat       ChatRepository
}

// NewDBStore creates a Store whose repositories share db.
func NewDBStore(db *sqlx.DB) *Store {
	return &Store{
		Notes:      NewDBNoteRepository(db),
		Folders:    NewDBFolderRepository(db),
		Categories: NewDBCategoryRepository(db),
		Planner:    NewDBPlannerRepository(db),
		Chat:       NewDBChatRepository(db),
	}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
