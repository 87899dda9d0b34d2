package database

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/noteflow/internal/config"
)

func TestOpen(t *testing.T) {
	tests := []struct {
		name       string
		cfg        config.DatabaseConfig
		wantDriver string
		wantErr    bool
	}{
		{
			name: "creates mysql connection with valid config",
			cfg: config.DatabaseConfig{
				Driver:   config.DriverMySQL,
				Host:     "localhost",
				Port:     3306,
				Database: "testdb",
				Username: "testuser",
				Password: "testpass",
			},
			wantDriver: "mysql",
		},
		{
			name: "empty driver defaults to mysql",
			cfg: config.DatabaseConfig{
				Host:     "db.example.com",
				Port:     3307,
				Database: "noteflow",
				Username: "admin",
			},
			wantDriver: "mysql",
		},
		{
			name: "creates mysql connection with pool settings and params",
			cfg: config.DatabaseConfig{
				Driver:          config.DriverMySQL,
				Host:            "localhost",
				Port:            3306,
				Database:        "testdb",
				Username:        "testuser",
				TLS:             true,
				Params:          map[string]string{"charset": "utf8mb4"},
				MaxOpenConns:    25,
				MaxIdleConns:    5,
				ConnMaxLifetime: 300,
			},
			wantDriver: "mysql",
		},
		{
			name: "creates sqlite connection",
			cfg: config.DatabaseConfig{
				Driver: config.DriverSQLite,
				Path:   filepath.Join(t.TempDir(), "noteflow.db"),
			},
			wantDriver: "sqlite",
		},
		{
			name:    "unsupported driver",
			cfg:     config.DatabaseConfig{Driver: "postgres"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Open(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, got)
			defer got.Close()

			assert.Equal(t, tt.wantDriver, got.DriverName())
		})
	}
}

func TestRunInTx(t *testing.T) {
	tests := []struct {
		name      string
		fn        func(ctx context.Context, tx *sqlx.Tx) error
		setupMock func(mock sqlmock.Sqlmock)
		wantErr   bool
		errMsg    string
	}{
		{
			name: "commits on success",
			fn: func(ctx context.Context, tx *sqlx.Tx) error {
				return nil
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectCommit()
			},
		},
		{
			name: "rolls back on error",
			fn: func(ctx context.Context, tx *sqlx.Tx) error {
				return fmt.Errorf("something failed")
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectRollback()
			},
			wantErr: true,
			errMsg:  "something failed",
		},
		{
			name: "begin error",
			fn: func(ctx context.Context, tx *sqlx.Tx) error {
				return nil
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin().WillReturnError(fmt.Errorf("begin failed"))
			},
			wantErr: true,
			errMsg:  "begin transaction",
		},
		{
			name: "commit error",
			fn: func(ctx context.Context, tx *sqlx.Tx) error {
				return nil
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectCommit().WillReturnError(fmt.Errorf("commit failed"))
			},
			wantErr: true,
			errMsg:  "commit transaction",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			sqlxDB := sqlx.NewDb(db, "mysql")
			tt.setupMock(mock)

			err = RunInTx(context.Background(), sqlxDB, tt.fn)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				require.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestBuildMultiRowInsert(t *testing.T) {
	tests := []struct {
		name    string
		columns []string
		rows    int
		want    string
	}{
		{
			name:    "single row",
			columns: []string{"id", "name"},
			rows:    1,
			want:    "INSERT INTO folders (id, name) VALUES (?, ?)",
		},
		{
			name:    "multiple rows",
			columns: []string{"id", "name", "color"},
			rows:    2,
			want:    "INSERT INTO folders (id, name, color) VALUES (?, ?, ?), (?, ?, ?)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildMultiRowInsert("folders", tt.columns, tt.rows))
		})
	}
}

func TestMigrate_SQLite(t *testing.T) {
	db, err := Open(config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "noteflow.db"),
	})
	require.NoError(t, err)
	defer db.Close()

	version, err := Migrate(db, config.DriverSQLite)
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)

	// Running again is a no-op
	version, err = Migrate(db, config.DriverSQLite)
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)

	var tables []string
	require.NoError(t, db.Select(&tables, "SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'schema_%' ORDER BY name"))
	assert.Equal(t, []string{
		"chat_messages", "chat_sessions", "folders", "inspiration_categories",
		"inspirations", "links", "note_folders", "notes", "planner_items",
	}, tables)
}
