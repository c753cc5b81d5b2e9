// Package web holds the static pages served next to the API.
package web

import (
	"embed"
	"fmt"
)

//go:embed static/*.html
var static embed.FS

const (
	PageLogin   = "index.html"
	PageShorten = "shorten.html"
	PageStats   = "stats.html"
)

// Page returns the contents of one of the embedded pages.
func Page(name string) ([]byte, error) {
	b, err := static.ReadFile("static/" + name)
	if err != nil {
		return nil, fmt.Errorf("failed to read page %s: %w", name, err)
	}
	return b, nil
}
