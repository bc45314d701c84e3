package commands

import (
	"bytes"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// templateFuncs provides utility functions for message templates.
var templateFuncs = sprig.TxtFuncMap()

// MessageData is the data available to authored message templates.
type MessageData struct {
	Name  string // object display name
	Scene string // current scene display name
}

// ExpandMessage expands template markers in authored interaction and
// description text. Text without markers passes through untouched; a
// malformed template falls back to the raw text rather than failing the
// command.
func ExpandMessage(text string, data MessageData) string {
	if !strings.Contains(text, "{{") {
		return text
	}

	tmpl, err := template.New("").Funcs(templateFuncs).Parse(text)
	if err != nil {
		return text
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return text
	}
	return buf.String()
}
