package ducky

import _ "embed"

//go:embed ducky_template.md
var blankTemplate string

// BlankTemplate returns the empty session template. Callers print it,
// fill it in, and feed it back through Build's template mode.
func BlankTemplate() string {
	return blankTemplate
}
