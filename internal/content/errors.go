package content

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/at-ishikawa/noteflow/internal/flow"
)

const mysqlDuplicateEntry = 1062

// mapError attaches a flow error kind to driver errors the flows react to.
func mapError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return flow.Wrap(flow.ErrNotFound, op, err)
	}
	if isUniqueViolation(err) {
		return flow.Wrap(flow.ErrConflict, op, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func isUniqueViolation(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == mysqlDuplicateEntry
	}
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		code := sqliteErr.Code()
		return code == sqlite3.SQLITE_CONSTRAINT_UNIQUE || code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
	}
	return false
}

func notFound(op, format string, args ...any) error {
	return flow.New(flow.ErrNotFound, op, format, args...)
}
