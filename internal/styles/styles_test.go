package styles

import (
	"testing"

	"github.com/llehouerou/fracrow/internal/testutil"
)

func TestGradient_PreservesVisibleText(t *testing.T) {
	got := testutil.StripANSI(Gradient("Hello", "#ff0000", "#0000ff"))
	if got != "Hello" {
		t.Errorf("visible text = %q, want %q", got, "Hello")
	}
}

func TestGradient_Empty(t *testing.T) {
	if got := Gradient("", "#ff0000", "#0000ff"); got != "" {
		t.Errorf("Gradient(\"\") = %q, want empty", got)
	}
}

func TestGradient_SingleCluster(t *testing.T) {
	got := testutil.StripANSI(Gradient("x", "#ff0000", "#0000ff"))
	if got != "x" {
		t.Errorf("visible text = %q, want %q", got, "x")
	}
}

func TestGradient_BadHexStillRenders(t *testing.T) {
	got := testutil.StripANSI(Gradient("ok", "nope", "also nope"))
	if got != "ok" {
		t.Errorf("visible text = %q, want %q", got, "ok")
	}
}

func TestPalette(t *testing.T) {
	colors := Palette(4)
	if len(colors) != 4 {
		t.Fatalf("Palette(4) returned %d colors", len(colors))
	}
	seen := map[string]bool{}
	for _, c := range colors {
		if len(c) != 7 || c[0] != '#' {
			t.Errorf("color %q is not a hex string", c)
		}
		if seen[c] {
			t.Errorf("duplicate color %q", c)
		}
		seen[c] = true
	}
}

func TestPalette_Zero(t *testing.T) {
	if got := Palette(0); len(got) != 0 {
		t.Errorf("Palette(0) = %v, want empty", got)
	}
}
