// Package web holds the landing document and assets served at the site root.
package web

import (
	"embed"
	"io/fs"
	"os"
)

//go:embed public
var public embed.FS

// FS returns dir when it is set, otherwise the embedded public directory.
func FS(dir string) (fs.FS, error) {
	if dir != "" {
		if _, err := os.Stat(dir); err != nil {
			return nil, err
		}
		return os.DirFS(dir), nil
	}
	return fs.Sub(public, "public")
}
