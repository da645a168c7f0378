package time

import "testing"

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		ok   bool
		year int
	}{
		{"2024-01-05", true, 2024},
		{"2023-12-31T22:00:00Z", true, 2023},
		{"2025-03", true, 2025},
		{"2022", true, 2022},
		{" 2024-06-01 ", true, 2024},
		{"", false, 0},
		{"not a date", false, 0},
		{"2024-13-01", false, 0},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := ParseDate(tc.in)
			if ok != tc.ok {
				t.Fatalf("ParseDate(%q) ok=%v want %v", tc.in, ok, tc.ok)
			}
			if ok && got.Year() != tc.year {
				t.Fatalf("ParseDate(%q) year=%d want %d", tc.in, got.Year(), tc.year)
			}
		})
	}
}
