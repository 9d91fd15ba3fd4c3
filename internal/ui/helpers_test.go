package ui

import (
	"strings"
	"testing"
)

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Fatalf("truncate = %q, want unchanged", got)
	}
	if got := truncate("abcdefgh", 5); got != "abcd…" {
		t.Fatalf("truncate = %q, want abcd…", got)
	}
	if got := truncate("anything", 0); got != "" {
		t.Fatalf("truncate = %q, want empty", got)
	}
	if got := truncate("ab", 1); got != "…" {
		t.Fatalf("truncate = %q, want …", got)
	}
}

func TestPad(t *testing.T) {
	if got := pad("ab", 5); got != "ab   " {
		t.Fatalf("pad = %q, want %q", got, "ab   ")
	}
	if got := pad("abcdefgh", 4); len([]rune(got)) != 4 {
		t.Fatalf("pad = %q, want width 4", got)
	}
}

func TestRenderTableHighlightsSelection(t *testing.T) {
	m := newTestModel(t)

	out := m.renderTable(
		[]string{"A", "B"},
		[]int{4, 4},
		[][]string{{"r1a", "r1b"}, {"r2a", "r2b"}},
		1,
	)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("table lines = %d, want header + 2 rows", len(lines))
	}
	if !strings.Contains(lines[1], "r1a") || !strings.Contains(lines[2], "r2a") {
		t.Fatalf("table rows out of order:\n%s", out)
	}
}
