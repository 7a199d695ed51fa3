// Package migrations embeds the goose migrations for the roomstats schema.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
