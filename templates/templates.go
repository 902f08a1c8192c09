package templates

import "embed"

// FS holds the HTML page templates
//
//go:embed *.html
var FS embed.FS
