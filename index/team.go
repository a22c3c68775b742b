// Package index builds the derived lookups over the play collection:
// per-play team attribution parsed from titles, the (year, team) play-caller
// directory, and pattern-based auto-labels. Everything here is heuristic
// text parsing; absence of a result is a normal outcome, never an error.
// Indexes are built once after load and read-only afterward.
package index

import (
	"regexp"
	"strings"

	"github.com/user/play-gallery-cli/play"
)

// actionVerbs is the closed set of verbs that follow the team name in a
// well-formed title ("2024 Chiefs running a wheel route").
var actionVerbs = []string{
	"running", "using", "throwing", "lining", "faking", "motioning", "getting",
}

// titlePattern matches "<year> <team name> <action verb> ...". The team
// group is lazy so it stops before the verb.
var titlePattern = regexp.MustCompile(
	`(?i)^(\d{4})\s+(.+?)\s+(?:` + strings.Join(actionVerbs, "|") + `)\b`)

// teamAliases maps shorthand team names seen in titles to canonical names.
var teamAliases = map[string]string{
	"49ers":  "San Francisco 49ers",
	"Niners": "San Francisco 49ers",
	"Bucs":   "Tampa Bay Buccaneers",
	"Pats":   "New England Patriots",
	"Jags":   "Jacksonville Jaguars",
	"Skins":  "Washington Commanders",
}

// ExtractTeam parses the team name out of a play title. The trailing
// "Defense" qualifier is stripped and shorthand names are canonicalized.
// Titles that don't follow the year-team-verb shape yield no team.
func ExtractTeam(title string) (string, bool) {
	m := titlePattern.FindStringSubmatch(title)
	if m == nil {
		return "", false
	}
	team := strings.TrimSpace(m[2])
	team = strings.TrimSpace(strings.TrimSuffix(team, "Defense"))
	if team == "" {
		return "", false
	}
	// The parenthetical play-caller, when present, sits between the team
	// and the verb; it is not part of the team name.
	if i := strings.Index(team, "("); i >= 0 {
		team = strings.TrimSpace(team[:i])
	}
	if canonical, ok := teamAliases[team]; ok {
		team = canonical
	}
	return team, true
}

// ExtractTitleYear pulls a plausible season year out of a title.
func ExtractTitleYear(title string) string {
	m := titleYearPattern.FindString(title)
	return m
}

var titleYearPattern = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)

// BuildTeamIndex derives the play-ID → team lookup for the whole
// collection. Plays whose titles defeat the heuristic simply get no entry.
func BuildTeamIndex(plays []play.Play) map[string]string {
	teams := make(map[string]string)
	for _, p := range plays {
		if team, ok := ExtractTeam(p.Title); ok {
			teams[p.ID] = team
		}
	}
	return teams
}
