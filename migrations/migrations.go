// Package migrations embeds the SQL schema for every supported driver.
package migrations

import "embed"

//go:embed sqlite3/*.sql postgres/*.sql
var FS embed.FS
