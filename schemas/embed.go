// Package schemas provides the embedded goose SQL migrations for problems and solves.
package schemas

import "embed"

// MigrationsDir is the directory inside Migrations that holds the SQL files.
const MigrationsDir = "migrations"

// Migrations contains all SQL migration files.
//
//go:embed migrations/*.sql
var Migrations embed.FS
