// Package migrations embeds the SQL migrations for the local document
// database, applied with goose at startup.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
