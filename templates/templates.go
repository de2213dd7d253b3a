// Package templates embeds the page templates so production binaries do not
// depend on the working directory.
package templates

import "embed"

// Patterns lists the globs that make up the page.
var Patterns = []string{"*.tmpl", "partials/*.tmpl"}

//go:embed *.tmpl partials/*.tmpl
var FS embed.FS
