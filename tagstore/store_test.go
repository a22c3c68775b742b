package tagstore

import "testing"

func TestSetGetRoundTrip(t *testing.T) {
	s, err := NewStore(NewMemoryRepository())
	if err != nil {
		t.Fatal(err)
	}

	if err := s.Set("737", []string{"RZ", "QB Run"}); err != nil {
		t.Fatal(err)
	}
	got := s.Get("737")
	if len(got) != 2 || got[0] != "QB Run" || got[1] != "RZ" {
		t.Fatalf("unexpected labels: %v", got)
	}
}

func TestSetEmptyDeletesEntry(t *testing.T) {
	repo := NewMemoryRepository()
	s, err := NewStore(repo)
	if err != nil {
		t.Fatal(err)
	}

	if err := s.Set("737", []string{"RZ"}); err != nil {
		t.Fatal(err)
	}
	if err := s.Set("737", nil); err != nil {
		t.Fatal(err)
	}

	if got := s.Get("737"); len(got) != 0 {
		t.Fatalf("expected no labels, got %v", got)
	}
	// The persisted store must contain no entry at all: an untagged play
	// and an explicitly-emptied play are indistinguishable.
	persisted, err := repo.Load()
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := persisted["737"]; ok {
		t.Fatal("expected persisted entry removed")
	}
}

func TestGetUntaggedIsEmptyNotError(t *testing.T) {
	s, err := NewStore(NewMemoryRepository())
	if err != nil {
		t.Fatal(err)
	}
	if got := s.Get("never-tagged"); len(got) != 0 {
		t.Fatalf("expected empty set, got %v", got)
	}
}

func TestSetDeduplicatesAndTrims(t *testing.T) {
	s, err := NewStore(NewMemoryRepository())
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Set("1", []string{" RZ ", "RZ", "", "Screen"}); err != nil {
		t.Fatal(err)
	}
	got := s.Get("1")
	if len(got) != 2 || got[0] != "RZ" || got[1] != "Screen" {
		t.Fatalf("unexpected labels: %v", got)
	}
}

func TestVocabularyGrowsAndNeverShrinks(t *testing.T) {
	s, err := NewStore(NewMemoryRepository())
	if err != nil {
		t.Fatal(err)
	}

	base := len(s.Vocabulary())
	if base != len(DefaultLabels) {
		t.Fatalf("expected default vocabulary, got %d entries", base)
	}

	if err := s.Set("1", []string{"Wham Block"}); err != nil {
		t.Fatal(err)
	}
	if len(s.Vocabulary()) != base+1 {
		t.Fatalf("expected vocabulary to grow, got %v", s.Vocabulary())
	}

	// Untagging the only play using the label does not shrink the
	// vocabulary within the session.
	if err := s.Set("1", nil); err != nil {
		t.Fatal(err)
	}
	found := false
	for _, l := range s.Vocabulary() {
		if l == "Wham Block" {
			found = true
		}
	}
	if !found {
		t.Fatal("expected coined label to remain in vocabulary")
	}
}

func TestVocabularySeededFromPersistedState(t *testing.T) {
	repo := NewMemoryRepository()
	if err := repo.SaveAll(map[string][]string{"5": {"Historic Label"}}); err != nil {
		t.Fatal(err)
	}
	s, err := NewStore(repo)
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, l := range s.Vocabulary() {
		if l == "Historic Label" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected persisted label in vocabulary: %v", s.Vocabulary())
	}
}

func TestMatch(t *testing.T) {
	tests := []struct {
		label, query string
		want         bool
	}{
		{"QB Run", "run", true},     // token prefix
		{"QB Run", "b ru", true},    // substring
		{"Trick Play", "pl", true},  // token prefix
		{"Trick Play", "lay", true}, // substring
		{"Screen", "scr", true},
		{"Screen", "een", true},
		{"Screen", "xyz", false},
		{"QB Run", "uns", false},
		{"Anything", "", true}, // empty query matches all
	}
	for _, tc := range tests {
		if got := Match(tc.label, tc.query); got != tc.want {
			t.Fatalf("Match(%q, %q): expected %v, got %v", tc.label, tc.query, tc.want, got)
		}
	}
}

func TestFilterVocabulary(t *testing.T) {
	s, err := NewStore(NewMemoryRepository())
	if err != nil {
		t.Fatal(err)
	}
	got := s.FilterVocabulary("run")
	if len(got) != 1 || got[0] != "QB Run" {
		t.Fatalf("unexpected matches: %v", got)
	}
}
