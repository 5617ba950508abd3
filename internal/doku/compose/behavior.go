// Package compose turns selections and activities into ready-to-copy German
// documentation snippets.
package compose

import (
	"regexp"
	"strings"

	"github.com/hauswerk/dokuhilfe/internal/doku/selection"
)

// NamePlaceholder stands in for a missing documenting-person name.
const NamePlaceholder = "[Name nicht angegeben]"

// Category resolves a selection's polarity. The first choice is the positive
// phrasing, the second the negative one.
type Category struct {
	ID      string
	Label   string
	Choices []string
}

// BehaviorOutput holds the two independently copyable strings for the
// work-behavior tab.
type BehaviorOutput struct {
	Header string
	Text   string
}

// labelPrefix matches a leading emoji run, optional whitespace and an
// ordinal like "1. " in category labels ("🧠 1. Konzentration").
var labelPrefix = regexp.MustCompile(`^[^\x00-\x7F\s]*\s*\d+\.\s*`)

// CleanLabel strips the emoji/ordinal prefix from a category label. Labels
// without such a prefix pass through unchanged.
func CleanLabel(label string) string {
	return strings.TrimSpace(labelPrefix.ReplaceAllString(label, ""))
}

// BehaviorText composes the header and documentation sentence for the given
// selections.
//
// The header comes from the first selection only: its cleaned category label
// plus "+" or "-" depending on polarity. The sentence lists every choice in
// selection order, joined German-style ("A", "A und B", "A, B und C"), and is
// wrapped with the documenting person (GL) and documented person (BE). With
// no selections both strings are empty; suppressing the display is the
// caller's concern.
func BehaviorText(selections []selection.Selection, categories []Category, personName, documentingPerson string) BehaviorOutput {
	if len(selections) == 0 {
		return BehaviorOutput{}
	}

	first := selections[0]
	symbol := "-"
	if isPositive(categories, first.CategoryID, first.Choice) {
		symbol = "+"
	}
	header := CleanLabel(first.CategoryLabel) + " " + symbol

	fragments := make([]string, len(selections))
	for i, sel := range selections {
		fragments[i] = strings.TrimSpace(strings.TrimRight(sel.Choice, "."))
	}

	documenter := documentingPerson
	if documenter == "" {
		documenter = NamePlaceholder
	}
	text := documenter + " (GL): " + personName + " (BE) " + joinGerman(fragments) + "."

	return BehaviorOutput{Header: header, Text: text}
}

// isPositive reports whether choice is the positive phrasing of the category
// with the given id. Unknown categories default to positive; a choice that is
// not the category's first phrasing counts as negative.
func isPositive(categories []Category, categoryID, choice string) bool {
	for _, cat := range categories {
		if cat.ID != categoryID {
			continue
		}
		return len(cat.Choices) > 0 && cat.Choices[0] == choice
	}
	return true
}

// joinGerman joins fragments into a German list: two items with "und", three
// or more with commas and a final "und" (no Oxford comma).
func joinGerman(fragments []string) string {
	switch len(fragments) {
	case 0:
		return ""
	case 1:
		return fragments[0]
	case 2:
		return fragments[0] + " und " + fragments[1]
	default:
		return strings.Join(fragments[:len(fragments)-1], ", ") + " und " + fragments[len(fragments)-1]
	}
}
