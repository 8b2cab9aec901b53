package static

import "embed"

// FS exposes gallery static assets for HTTP serving.
//
//go:embed *.css
var FS embed.FS
