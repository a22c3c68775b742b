package play

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
)

// Load reads and parses plays.json at the given path.
// Any failure here is fatal to startup: the caller must surface the error
// and must not proceed to indexing or rendering.
func Load(path string) ([]Play, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open plays file: %w", err)
	}
	defer f.Close()

	plays, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse plays file %s: %w", path, err)
	}
	return plays, nil
}

// Parse decodes a play collection, normalizes each record, verifies ID
// uniqueness, and returns the plays in canonical order.
func Parse(r io.Reader) ([]Play, error) {
	var plays []Play
	if err := json.NewDecoder(r).Decode(&plays); err != nil {
		return nil, fmt.Errorf("decode plays: %w", err)
	}

	seen := make(map[string]bool, len(plays))
	for i := range plays {
		plays[i].Normalize()
		id := plays[i].ID
		if id == "" {
			return nil, fmt.Errorf("play at index %d has no identity", i)
		}
		if seen[id] {
			return nil, fmt.Errorf("duplicate play id %q", id)
		}
		seen[id] = true
	}

	Sort(plays)
	return plays, nil
}

// Sort orders plays canonically: date descending, ties broken by the
// lexicographically greater ID first. The sort is stable, and plays with
// no date sort last. Play numbers are not ordered by date (historical
// plays are backfilled with high numbers), so the date is authoritative.
func Sort(plays []Play) {
	sort.SliceStable(plays, func(i, j int) bool {
		if plays[i].Date != plays[j].Date {
			return plays[i].Date > plays[j].Date
		}
		return plays[i].ID > plays[j].ID
	})
}
