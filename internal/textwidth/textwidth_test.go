package textwidth

import "testing"

func TestWidth_ASCII(t *testing.T) {
	if got := Width("1.1.1"); got != 5 {
		t.Fatalf("width=%d, want %d", got, 5)
	}
	if got := Width(""); got != 0 {
		t.Fatalf("empty width=%d, want 0", got)
	}
}

func TestWidth_WideAndCombining(t *testing.T) {
	if got := Width("一.二"); got != 5 {
		t.Fatalf("wide width=%d, want %d", got, 5)
	}
	// Combining accent stays inside one cluster of width 1.
	if got := Width("é"); got != 1 {
		t.Fatalf("combining width=%d, want %d", got, 1)
	}
}
