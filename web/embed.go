// Package web embeds assets shipped inside the binary.
package web

import "embed"

// TemplatesFS embeds HTML templates for report rendering.
//
//go:embed templates/*.html
var TemplatesFS embed.FS
