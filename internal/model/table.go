package model

import "slices"

// Table is the purchase table held in memory for one report run.
// It is immutable after NewTable returns; accessors hand out copies.
type Table struct {
	records   []PurchaseRecord
	players   []Player
	conflicts []string
}

// NewTable builds a Table from the given records.
//
// Players are deduplicated by screen name in order of first appearance.
// When later rows of the same screen name disagree on age or gender, the
// first row wins and the screen name is reported by Conflicts.
func NewTable(records []PurchaseRecord) *Table {
	t := &Table{
		records: slices.Clone(records),
	}

	seen := make(map[string]int, len(records))
	conflicted := make(map[string]bool)
	for _, r := range t.records {
		idx, ok := seen[r.ScreenName]
		if !ok {
			seen[r.ScreenName] = len(t.players)
			t.players = append(t.players, Player{
				ScreenName: r.ScreenName,
				Age:        r.Age,
				Gender:     r.Gender,
			})
			continue
		}

		p := t.players[idx]
		if (p.Age != r.Age || p.Gender != r.Gender) && !conflicted[r.ScreenName] {
			conflicted[r.ScreenName] = true
			t.conflicts = append(t.conflicts, r.ScreenName)
		}
	}

	return t
}

// Records returns a copy of all rows in load order.
func (t *Table) Records() []PurchaseRecord {
	return slices.Clone(t.records)
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.records)
}

// Players returns the distinct players in order of first appearance.
func (t *Table) Players() []Player {
	return slices.Clone(t.players)
}

// Conflicts returns the screen names whose rows disagree on age or gender.
func (t *Table) Conflicts() []string {
	return slices.Clone(t.conflicts)
}
