package fold

import "testing"

func TestFold_Table(t *testing.T) {
	tests := []struct {
		name string
		in   string
		out  string
	}{
		{name: "empty", in: "", out: ""},
		{name: "ascii", in: "Cluj-Napoca", out: "cluj-napoca"},
		{name: "romanian diacritics keep marks", in: "TIMIȘOARA", out: "timișoara"},
		{name: "combining comma below composes", in: "Timis\u0326oara", out: "timi\u0219oara"},
		{name: "invalid utf8 dropped", in: string([]byte{0xff, 'A', 'b'}), out: "ab"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Fold(tc.in); got != tc.out {
				t.Fatalf("Fold(%q) = %q, want %q", tc.in, got, tc.out)
			}
		})
	}
}

func TestContains(t *testing.T) {
	if !Contains("Bosch Romania", "bosch") {
		t.Fatal("expected case insensitive match")
	}
	if Contains("Bosch", "continental") {
		t.Fatal("unexpected match")
	}
}

func TestEither_IsSymmetric(t *testing.T) {
	pairs := [][2]string{
		{"Cluj", "Cluj-Napoca"},
		{"IAȘI", "iași"},
		{"", "Brașov"},
	}
	for _, p := range pairs {
		if !Either(p[0], p[1]) || !Either(p[1], p[0]) {
			t.Fatalf("expected %q and %q to match both ways", p[0], p[1])
		}
	}
	if Either("Arad", "Oradea") {
		t.Fatal("Arad and Oradea must not match")
	}
}
