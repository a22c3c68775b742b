package filter

import (
	"strings"

	"github.com/user/play-gallery-cli/index"
	"github.com/user/play-gallery-cli/play"
)

// TagLookup reads the labels assigned to a play. The tag store satisfies
// it; tests use a plain map via MapTags.
type TagLookup interface {
	Get(playID string) []string
}

// MapTags adapts a literal map to TagLookup.
type MapTags map[string][]string

// Get implements TagLookup.
func (m MapTags) Get(playID string) []string { return m[playID] }

// Apply returns the plays that satisfy every active criterion, in the
// order they were given. It never mutates its inputs and has no effect
// beyond its return value; zero criteria return the full input.
func Apply(plays []play.Play, c Criteria, ix *index.Index, tags TagLookup) []play.Play {
	out := make([]play.Play, 0, len(plays))
	for _, p := range plays {
		if matches(p, c, ix, tags) {
			out = append(out, p)
		}
	}
	return out
}

func matches(p play.Play, c Criteria, ix *index.Index, tags TagLookup) bool {
	if c.Search != "" && !matchesSearch(p, c.Search) {
		return false
	}
	if c.Team != "" && ix.Teams[p.ID] != c.Team {
		return false
	}
	if c.Source != "" && p.Source != c.Source {
		return false
	}
	if c.Down != "" && !hasPrefixFold(p.PlayDetails.DownAndDistance, c.Down) {
		return false
	}
	if c.Personnel != "" && p.PlayDetails.Personnel != c.Personnel {
		return false
	}
	if c.Formation != "" && p.PlayDetails.Formation != c.Formation {
		return false
	}
	if c.Caller != "" && index.ResolveCaller(p, ix.Teams, ix.Callers) != c.Caller {
		return false
	}
	if c.DateFrom != "" || c.DateTo != "" {
		// A play with no date cannot be placed inside any range.
		if p.Date == "" {
			return false
		}
		if c.DateFrom != "" && p.Date < c.DateFrom {
			return false
		}
		if c.DateTo != "" && p.Date > c.DateTo {
			return false
		}
	}
	if len(c.Tags) > 0 && !anyTag(tags.Get(p.ID), c.Tags) {
		return false
	}
	return true
}

// matchesSearch checks the query against title, personnel, and formation;
// a hit on any one of them is enough.
func matchesSearch(p play.Play, query string) bool {
	q := strings.ToLower(query)
	for _, field := range []string{p.Title, p.PlayDetails.Personnel, p.PlayDetails.Formation} {
		if field != "" && strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

// anyTag reports whether the assigned and wanted sets intersect.
func anyTag(assigned, wanted []string) bool {
	for _, w := range wanted {
		for _, a := range assigned {
			if a == w {
				return true
			}
		}
	}
	return false
}
