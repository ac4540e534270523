package model

import "strconv"

// OpenEnded marks an AgeBracket without an upper bound.
const OpenEnded = -1

// AgeBracket is one closed age interval of the fixed partition.
// Max is OpenEnded for the top bracket.
type AgeBracket struct {
	Label string `json:"label"`
	Min   int    `json:"min"`
	Max   int    `json:"max"`
}

var ageBrackets = []AgeBracket{
	{Label: "<10", Min: 0, Max: 9},
	{Label: "10-14", Min: 10, Max: 14},
	{Label: "15-19", Min: 15, Max: 19},
	{Label: "20-24", Min: 20, Max: 24},
	{Label: "25-29", Min: 25, Max: 29},
	{Label: "30-34", Min: 30, Max: 34},
	{Label: "35-39", Min: 35, Max: 39},
	{Label: "40+", Min: 40, Max: OpenEnded},
}

// AgeBrackets returns the age partition in ascending order.
func AgeBrackets() []AgeBracket {
	out := make([]AgeBracket, len(ageBrackets))
	copy(out, ageBrackets)
	return out
}

// Contains reports whether age falls inside the bracket. Both ends are inclusive.
func (b AgeBracket) Contains(age int) bool {
	if age < b.Min {
		return false
	}
	return b.Max == OpenEnded || age <= b.Max
}

// String returns the display label, or the numeric range when the label is empty.
func (b AgeBracket) String() string {
	if b.Label != "" {
		return b.Label
	}
	if b.Max == OpenEnded {
		return strconv.Itoa(b.Min) + "+"
	}
	return strconv.Itoa(b.Min) + "-" + strconv.Itoa(b.Max)
}

// BracketIndex returns the index into AgeBrackets of the bracket holding age,
// or -1 for a negative age.
func BracketIndex(age int) int {
	for i, b := range ageBrackets {
		if b.Contains(age) {
			return i
		}
	}
	return -1
}
