// Package migrations embeds the client's local schema.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
