package index

import "github.com/user/play-gallery-cli/play"

// Index bundles the derived lookups built once after load. It is read-only
// for the rest of the session; the filter engine never re-derives it.
type Index struct {
	// Teams maps play ID → canonical team name (best-effort).
	Teams map[string]string
	// Callers maps "year|team" → play-caller name.
	Callers map[string]string
}

// Build constructs the derived index from the loaded collection and the
// optional caller directory (nil when the directory failed to load).
func Build(plays []play.Play, dir CallerDirectory) *Index {
	return &Index{
		Teams:   BuildTeamIndex(plays),
		Callers: BuildCallerIndex(dir),
	}
}

// TeamNames returns the distinct derived team names, for filter pickers.
func (ix *Index) TeamNames() []string {
	seen := make(map[string]bool)
	var names []string
	for _, t := range ix.Teams {
		if !seen[t] {
			seen[t] = true
			names = append(names, t)
		}
	}
	return names
}

// CallerNames returns the distinct play-caller names resolvable for the
// given plays, for filter pickers.
func (ix *Index) CallerNames(plays []play.Play) []string {
	seen := make(map[string]bool)
	var names []string
	for _, p := range plays {
		if c := ResolveCaller(p, ix.Teams, ix.Callers); c != "" && !seen[c] {
			seen[c] = true
			names = append(names, c)
		}
	}
	return names
}
