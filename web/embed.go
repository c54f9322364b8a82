// Package web provides the embedded single-page browser UI for logo
// generation. The page is self-contained (inline CSS and JS) so the binary
// ships with no external asset pipeline.
package web

import "embed"

// StaticFS embeds the web/static/ directory tree.
//
//go:embed all:static
var StaticFS embed.FS
