// Package testutil provides shared test helpers for config files and databases.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

// SetupTestConfig creates a config file for a SQLite database and an export
// directory under tmpDir. Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	exportDir := filepath.Join(tmpDir, "exports")
	require.NoError(t, os.MkdirAll(exportDir, 0755))

	configContent := fmt.Sprintf(`database:
  driver: sqlite
  path: %s
outputs:
  export_directory: %s
chat:
  history_limit: 5
`,
		filepath.Join(tmpDir, "noteflow.db"),
		exportDir,
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// SetupTestConfigWithAPIKey creates a config file with a fake OpenAI API key
// pointing the client at baseURL, typically an httptest server.
func SetupTestConfigWithAPIKey(t *testing.T, tmpDir, baseURL string) string {
	t.Helper()
	cfgPath := SetupTestConfig(t, tmpDir)

	content, err := os.ReadFile(cfgPath)
	require.NoError(t, err)
	content = append(content, fmt.Appendf(nil, "openai:\n  api_key: fake-key-for-testing\n  model: gpt-4o-mini\n  base_url: %s\n  max_retry_attempts: 0\n", baseURL)...)
	require.NoError(t, os.WriteFile(cfgPath, content, 0644))
	return cfgPath
}

// NewMockDB returns a sqlx handle over go-sqlmock that is closed with the test.
func NewMockDB(t *testing.T, driver string) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return sqlx.NewDb(db, driver), mock
}
