// Package display formats engine output for terminal sessions.
package display

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const DefaultWidth = 80

var titleCaser = cases.Title(language.English)

// Wrap word-wraps text to DefaultWidth, preserving ANSI escape sequences.
// Existing newlines are kept, so pre-formatted listings survive.
func Wrap(text string) string {
	return wordwrap.String(text, DefaultWidth)
}

// Indent wraps text and indents every line, for nested listings such as
// inventory items.
func Indent(text string, levels uint) string {
	return indent.String(wordwrap.String(text, DefaultWidth-int(levels)), levels)
}

// Title renders a scene or object name as a heading.
func Title(name string) string {
	return titleCaser.String(name)
}

// StatusLine renders the one-line score/turn banner shown above the prompt.
func StatusLine(scene string, score, maxScore, turns int) string {
	left := Title(scene)
	right := fmt.Sprintf("Score: %d/%d  Turns: %d", score, maxScore, turns)
	pad := DefaultWidth - len(left) - len(right)
	if pad < 1 {
		pad = 1
	}
	return left + strings.Repeat(" ", pad) + right
}
