// Package filter computes the derived, filtered view over the play
// collection. Apply is a pure function of (criteria, data); it never
// touches the UI and never re-derives indexes.
package filter

import "github.com/user/play-gallery-cli/play"

// Criteria is a snapshot of every active predicate value. The zero value
// means "no filtering". It is rebuilt in full by the controller on every
// UI mutation; there is no partial-update API.
type Criteria struct {
	// Search matches case-insensitively against title, personnel, or
	// formation (OR among the three).
	Search string
	// Team matches the derived team index exactly.
	Team string
	// Source is "email" or "twitter"; empty means both.
	Source play.Source
	// Down is a prefix match against down-and-distance ("1st" matches
	// "1st & 10").
	Down string
	// Personnel and Formation match their structured fields exactly.
	Personnel string
	Formation string
	// Caller matches the resolved play-caller exactly.
	Caller string
	// DateFrom and DateTo bound the play date inclusively (ISO strings).
	DateFrom string
	DateTo   string
	// Tags is ANY-of: a play survives if its tag set intersects this set.
	Tags []string
}

// IsZero reports whether no predicate is active.
func (c Criteria) IsZero() bool {
	return c.Search == "" && c.Team == "" && c.Source == "" && c.Down == "" &&
		c.Personnel == "" && c.Formation == "" && c.Caller == "" &&
		c.DateFrom == "" && c.DateTo == "" && len(c.Tags) == 0
}

// ActiveCount returns the number of active predicates, for the status bar.
func (c Criteria) ActiveCount() int {
	n := 0
	for _, active := range []bool{
		c.Search != "", c.Team != "", c.Source != "", c.Down != "",
		c.Personnel != "", c.Formation != "", c.Caller != "",
		c.DateFrom != "" || c.DateTo != "", len(c.Tags) > 0,
	} {
		if active {
			n++
		}
	}
	return n
}
