// Package tagstore owns user tag assignments: a durable mapping from play
// identity to a set of labels, plus the vocabulary of known labels.
package tagstore

// Repository abstracts the persistence medium for tag assignments. The
// whole mapping is read once at startup and fully rewritten on every edit;
// there is no partial-update API.
type Repository interface {
	// Load returns the persisted play-id → labels mapping. A missing or
	// unreadable payload yields an empty mapping, never an error: corrupt
	// tag state degrades to a fresh start.
	Load() (map[string][]string, error)
	// SaveAll replaces the persisted mapping with the given one.
	SaveAll(assignments map[string][]string) error
}

// MemoryRepository is an in-memory Repository for tests and ephemeral use.
type MemoryRepository struct {
	assignments map[string][]string
}

// NewMemoryRepository returns an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{assignments: make(map[string][]string)}
}

// Load returns a copy of the stored mapping.
func (r *MemoryRepository) Load() (map[string][]string, error) {
	out := make(map[string][]string, len(r.assignments))
	for id, labels := range r.assignments {
		out[id] = append([]string(nil), labels...)
	}
	return out, nil
}

// SaveAll replaces the stored mapping with a copy of the given one.
func (r *MemoryRepository) SaveAll(assignments map[string][]string) error {
	out := make(map[string][]string, len(assignments))
	for id, labels := range assignments {
		out[id] = append([]string(nil), labels...)
	}
	r.assignments = out
	return nil
}
