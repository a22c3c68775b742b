package tagstore

import (
	"fmt"
	"sort"
	"strings"
)

// DefaultLabels is the fixed starter vocabulary offered before any user
// tagging has happened.
var DefaultLabels = []string{
	"RZ",
	"QB Run",
	"Trick Play",
	"3rd Down",
	"Goal Line",
	"Play Action",
	"Screen",
	"RPO",
	"Motion",
	"Shot Play",
}

// Store holds the in-memory tag assignments and vocabulary, persisting
// through a Repository on every mutation.
type Store struct {
	repo        Repository
	assignments map[string][]string
	// vocab accumulates every label ever assigned this session plus the
	// defaults. It never shrinks, even when a label's last assignment is
	// removed; see DESIGN.md.
	vocab map[string]bool
}

// NewStore loads persisted assignments through the repository and builds
// the initial vocabulary.
func NewStore(repo Repository) (*Store, error) {
	assignments, err := repo.Load()
	if err != nil {
		return nil, fmt.Errorf("load tag assignments: %w", err)
	}
	if assignments == nil {
		assignments = make(map[string][]string)
	}

	s := &Store{
		repo:        repo,
		assignments: assignments,
		vocab:       make(map[string]bool),
	}
	for _, l := range DefaultLabels {
		s.vocab[l] = true
	}
	for _, labels := range assignments {
		for _, l := range labels {
			s.vocab[l] = true
		}
	}
	return s, nil
}

// Get returns the labels assigned to a play, sorted. An untagged play
// yields an empty slice.
func (s *Store) Get(playID string) []string {
	labels := append([]string(nil), s.assignments[playID]...)
	sort.Strings(labels)
	return labels
}

// Set replaces a play's label set and synchronously persists the full
// mapping. An empty set deletes the entry entirely: an untagged play and
// an explicitly-emptied play are both represented by absence.
func (s *Store) Set(playID string, labels []string) error {
	cleaned := dedupe(labels)
	if len(cleaned) == 0 {
		delete(s.assignments, playID)
	} else {
		s.assignments[playID] = cleaned
		for _, l := range cleaned {
			s.vocab[l] = true
		}
	}
	if err := s.repo.SaveAll(s.assignments); err != nil {
		return fmt.Errorf("persist tag assignments: %w", err)
	}
	return nil
}

// Vocabulary returns every known label, sorted: the defaults plus every
// label assigned to any play this session or in the persisted state.
func (s *Store) Vocabulary() []string {
	labels := make([]string, 0, len(s.vocab))
	for l := range s.vocab {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	return labels
}

// Match reports whether a label matches a picker query: the lowercased
// label contains the lowercased query, or any whitespace-delimited token
// of the label starts with the query. The same rule serves the assignment
// picker and the tag filter picker.
func Match(label, query string) bool {
	if query == "" {
		return true
	}
	l := strings.ToLower(label)
	q := strings.ToLower(query)
	if strings.Contains(l, q) {
		return true
	}
	for _, token := range strings.Fields(l) {
		if strings.HasPrefix(token, q) {
			return true
		}
	}
	return false
}

// FilterVocabulary returns the vocabulary entries matching the query.
func (s *Store) FilterVocabulary(query string) []string {
	var out []string
	for _, l := range s.Vocabulary() {
		if Match(l, query) {
			out = append(out, l)
		}
	}
	return out
}

// dedupe trims, drops empties, and removes duplicate labels while keeping
// first-seen order.
func dedupe(labels []string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, l := range labels {
		l = strings.TrimSpace(l)
		if l == "" || seen[l] {
			continue
		}
		seen[l] = true
		out = append(out, l)
	}
	return out
}
