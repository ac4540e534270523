package model

import "testing"

// TestBracketIndex verifies that brackets are closed on both ends and
// that the top bracket is open-ended.
func TestBracketIndex(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		age      int
		expected string
	}{
		{0, "<10"},
		{9, "<10"},
		{10, "10-14"},
		{14, "10-14"},
		{15, "15-19"},
		{19, "15-19"},
		{20, "20-24"},
		{24, "20-24"},
		{25, "25-29"},
		{29, "25-29"},
		{30, "30-34"},
		{34, "30-34"},
		{35, "35-39"},
		{39, "35-39"},
		{40, "40+"},
		{49, "40+"},
		{50, "40+"},
		{120, "40+"},
	}

	brackets := AgeBrackets()
	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			t.Parallel()
			idx := BracketIndex(tc.age)
			if idx < 0 {
				t.Fatalf("BracketIndex(%d) = %d, expected a bracket", tc.age, idx)
			}
			if got := brackets[idx].Label; got != tc.expected {
				t.Errorf("BracketIndex(%d) -> %q, expected %q", tc.age, got, tc.expected)
			}
		})
	}

	t.Run("negative age has no bracket", func(t *testing.T) {
		t.Parallel()
		if idx := BracketIndex(-1); idx != -1 {
			t.Errorf("expected -1, got %d", idx)
		}
	})
}

// TestAgeBracketsPartition checks that every age up to well past the last
// lower bound lands in exactly one bracket.
func TestAgeBracketsPartition(t *testing.T) {
	t.Parallel()

	brackets := AgeBrackets()
	if len(brackets) != 8 {
		t.Fatalf("expected 8 brackets, got %d", len(brackets))
	}

	for age := 0; age <= 150; age++ {
		matches := 0
		for _, b := range brackets {
			if b.Contains(age) {
				matches++
			}
		}
		if matches != 1 {
			t.Errorf("age %d matched %d brackets", age, matches)
		}
	}
}

// TestAgeBracketsReturnsCopy ensures callers cannot alter the partition.
func TestAgeBracketsReturnsCopy(t *testing.T) {
	t.Parallel()

	brackets := AgeBrackets()
	brackets[0].Label = "changed"

	if AgeBrackets()[0].Label != "<10" {
		t.Error("expected partition to be unaffected by caller changes")
	}
}

// TestAgeBracketString tests the String method of AgeBracket.
func TestAgeBracketString(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		bracket  AgeBracket
		expected string
	}{
		{"label wins", AgeBracket{Label: "<10", Min: 0, Max: 9}, "<10"},
		{"closed range", AgeBracket{Min: 10, Max: 14}, "10-14"},
		{"open range", AgeBracket{Min: 40, Max: OpenEnded}, "40+"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := tc.bracket.String(); got != tc.expected {
				t.Errorf("got %q, expected %q", got, tc.expected)
			}
		})
	}
}
