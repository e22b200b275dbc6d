package testutil

import "testing"

func TestStripANSI(t *testing.T) {
	in := "\x1b[1;31mbold red\x1b[0m plain"
	if got := StripANSI(in); got != "bold red plain" {
		t.Errorf("StripANSI() = %q", got)
	}
}

func TestMeasureWidth(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"hello", 5},
		{"\x1b[32mgreen\x1b[0m", 5},
		{"日本", 4},
		{"", 0},
	}
	for _, tt := range tests {
		if got := MeasureWidth(tt.in); got != tt.want {
			t.Errorf("MeasureWidth(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestLineWidths(t *testing.T) {
	got := LineWidths("ab\n\x1b[33mabcd\x1b[0m\n")
	want := []int{2, 4, 0}
	if len(got) != len(want) {
		t.Fatalf("LineWidths() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("LineWidths()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestMaxLineWidth(t *testing.T) {
	if got := MaxLineWidth("a\nabc\nab"); got != 3 {
		t.Errorf("MaxLineWidth() = %d, want 3", got)
	}
}

func TestContainsLine(t *testing.T) {
	out := "header\nbody text\nfooter"
	if !ContainsLine(out, "body") {
		t.Error("expected to find 'body'")
	}
	if ContainsLine(out, "missing") {
		t.Error("did not expect to find 'missing'")
	}
}
