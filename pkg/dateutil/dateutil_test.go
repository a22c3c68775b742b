package dateutil

import "testing"

func TestIsISODate(t *testing.T) {
	valid := []string{"2024-09-01", "1999-12-31"}
	for _, s := range valid {
		if !IsISODate(s) {
			t.Fatalf("expected %q valid", s)
		}
	}
	invalid := []string{"", "2024-9-1", "09-01-2024", "2024-13-01", "not a date"}
	for _, s := range invalid {
		if IsISODate(s) {
			t.Fatalf("expected %q invalid", s)
		}
	}
}

func TestYear(t *testing.T) {
	if y := Year("2024-09-01"); y != "2024" {
		t.Fatalf("expected 2024, got %q", y)
	}
	if y := Year(""); y != "" {
		t.Fatalf("expected empty year, got %q", y)
	}
	if y := Year("garbage"); y != "" {
		t.Fatalf("expected empty year for malformed date, got %q", y)
	}
}

func TestParseFlexible(t *testing.T) {
	tests := []struct{ in, want string }{
		{"2024-09-01", "2024-09-01"},
		{"2024/09/01", "2024-09-01"},
		{"2024", "2024-01-01"},
	}
	for _, tc := range tests {
		got, err := ParseFlexible(tc.in)
		if err != nil {
			t.Fatalf("%q: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("%q: expected %q, got %q", tc.in, tc.want, got)
		}
	}
	if _, err := ParseFlexible("yesterday"); err == nil {
		t.Fatal("expected error")
	}
}
