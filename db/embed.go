// Package db embeds the goose SQL migrations applied at startup.
package db

import "embed"

// MigrationsDir is the directory inside Migrations that holds the scripts.
const MigrationsDir = "migrations"

//go:embed migrations/*.sql
var Migrations embed.FS
