package main

import (
	_ "embed"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/html"
)

//go:embed web/index.html
var statusPage []byte

// minifiedStatusPage minifies the embedded diagnostics page once at startup.
// On a minify error the page is served as-is.
func minifiedStatusPage() []byte {
	m := minify.New()
	m.AddFunc("text/html", html.Minify)
	out, err := m.Bytes("text/html", statusPage)
	if err != nil {
		return statusPage
	}
	return out
}
