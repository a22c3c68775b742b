package narrative

import (
	"strings"
	"testing"
)

func TestStaticCoversAllQuarters(t *testing.T) {
	var g Static
	seen := make(map[string]bool)
	for q := 1; q <= 4; q++ {
		c := g.Caption(q)
		if c == "" {
			t.Fatalf("empty caption for quarter %d", q)
		}
		if seen[c] {
			t.Fatalf("duplicate caption for quarter %d: %q", q, c)
		}
		seen[c] = true
	}
}

func TestStaticFallback(t *testing.T) {
	var g Static
	if c := g.Caption(7); !strings.Contains(c, "7") {
		t.Fatalf("expected generic fallback naming the quarter, got %q", c)
	}
}
