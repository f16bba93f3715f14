package util

import "testing"

func TestTruncateForLog(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		limit    int
		expected string
	}{
		{"under limit", "short", 10, "short"},
		{"exact limit", "exact", 5, "exact"},
		{"truncated", "truncate me please", 8, "truncate..."},
		{"trims before measuring", "  padded  ", 6, "padded"},
		{"multibyte runes", "가나다라마", 3, "가나다..."},
		{"zero limit", "anything", 0, ""},
		{"negative limit", "anything", -1, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := TruncateForLog(tc.input, tc.limit); got != tc.expected {
				t.Fatalf("TruncateForLog(%q, %d) = %q, want %q", tc.input, tc.limit, got, tc.expected)
			}
		})
	}
}
