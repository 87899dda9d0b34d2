package content

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/noteflow/internal/testutil"
)

var testNow = time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	return testutil.NewMockDB(t, "mysql")
}

func fixedClock() time.Time { return testNow }

// sequentialIDs returns a generator yielding ids in order.
func sequentialIDs(ids ...string) func() string {
	i := 0
	return func() string {
		id := ids[i%len(ids)]
		i++
		return id
	}
}
