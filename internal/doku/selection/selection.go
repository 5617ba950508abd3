// Package selection tracks which work-behavior choices are active during one
// documentation pass.
//
// A ledger holds at most one choice per category and remembers the sequence
// in which categories were first picked. That sequence drives the generated
// text: the first-picked category supplies the header, and the sentence lists
// all choices in pick order.
package selection

import "sort"

// Selection records one chosen phrasing within a category.
type Selection struct {
	CategoryID    string
	CategoryLabel string
	Choice        string
	// Order is the 1-based position in which the category was first picked.
	// Orders stay dense: after any removal the remaining selections are
	// renumbered 1..N without gaps.
	Order int
}

// Ledger is the toggle state for one documentation pass. It is scoped to a
// single documented person and discarded when the caller switches subjects.
// The zero value is not usable; create ledgers with NewLedger.
type Ledger struct {
	selections map[string]Selection
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{selections: make(map[string]Selection)}
}

// Toggle applies one click on a choice.
//
// Picking a choice in an unselected category appends it with the next order
// number. Picking the already-active choice removes it and closes the gap in
// the remaining order numbers. Picking the other choice of an already-selected
// category swaps the phrasing in place and keeps the category's position.
func (l *Ledger) Toggle(categoryID, categoryLabel, choice string) {
	existing, ok := l.selections[categoryID]
	switch {
	case ok && existing.Choice == choice:
		delete(l.selections, categoryID)
		l.renumber()
	case ok:
		existing.Choice = choice
		l.selections[categoryID] = existing
	default:
		l.selections[categoryID] = Selection{
			CategoryID:    categoryID,
			CategoryLabel: categoryLabel,
			Choice:        choice,
			Order:         len(l.selections) + 1,
		}
	}
}

// Selections returns the active selections sorted by order ascending. The
// returned slice is a copy; callers may retain or modify it freely.
func (l *Ledger) Selections() []Selection {
	out := make([]Selection, 0, len(l.selections))
	for _, sel := range l.selections {
		out = append(out, sel)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

// Len reports the number of active selections.
func (l *Ledger) Len() int {
	return len(l.selections)
}

// renumber reassigns dense 1..N order values, preserving the relative
// sequence of the surviving selections.
func (l *Ledger) renumber() {
	ordered := l.Selections()
	for i, sel := range ordered {
		sel.Order = i + 1
		l.selections[sel.CategoryID] = sel
	}
}
