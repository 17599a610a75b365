// Package assets embeds the default word list and the SQL migrations.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed words.txt sql/*.sql
var FS embed.FS

// DefaultWordsFile is the embedded corpus used when no source is configured.
const DefaultWordsFile = "words.txt"

// Migrations returns the embedded sql directory as its own filesystem.
func Migrations() (fs.FS, error) {
	return fs.Sub(FS, "sql")
}
