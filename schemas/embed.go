// Package schemas provides embedded SQL migration files.
package schemas

import "embed"

// Migrations contains all SQL migration files.
// Statements stay within the subset shared by MySQL and SQLite.
//
//go:embed migrations/*.sql
var Migrations embed.FS
