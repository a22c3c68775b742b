package index

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strings"
	"unicode"

	"github.com/user/play-gallery-cli/pkg/dateutil"
	"github.com/user/play-gallery-cli/play"
)

// CallerEntry is one leaf of the play-caller directory file.
type CallerEntry struct {
	PlayCaller string `json:"play_caller"`
}

// CallerDirectory is the two-level directory shape on disk:
// league → year → team → entry.
type CallerDirectory map[string]map[string]map[string]CallerEntry

// LoadCallerDirectory reads the optional play-caller directory file.
// The caller treats any error as a degraded (not fatal) condition.
func LoadCallerDirectory(path string) (CallerDirectory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read caller directory: %w", err)
	}
	var dir CallerDirectory
	if err := json.Unmarshal(data, &dir); err != nil {
		return nil, fmt.Errorf("decode caller directory: %w", err)
	}
	return dir, nil
}

// CallerKey builds the flattened "year|team" lookup key.
func CallerKey(year, team string) string {
	return year + "|" + team
}

// BuildCallerIndex flattens the directory into one "year|team" → caller
// lookup. Team names pass through the same alias normalization as title
// extraction so the two indexes agree. A nil directory yields an empty
// index; lookups then degrade to an empty caller.
func BuildCallerIndex(dir CallerDirectory) map[string]string {
	callers := make(map[string]string)
	for _, years := range dir {
		for year, teams := range years {
			for team, entry := range teams {
				if entry.PlayCaller == "" {
					continue
				}
				if canonical, ok := teamAliases[team]; ok {
					team = canonical
				}
				callers[CallerKey(year, team)] = entry.PlayCaller
			}
		}
	}
	return callers
}

// parentheticalPattern matches a parenthetical immediately preceding the
// action verb, e.g. "2006 Texas (Greg Davis) running Q Power".
var parentheticalPattern = regexp.MustCompile(
	`(?i)\(([^)]*)\)\s+(?:` + strings.Join(actionVerbs, "|") + `)\b`)

// isShorthandQualifier reports whether a parenthetical is an all-caps
// qualifier like "(OK)" or "(FCS - NC)" rather than a person's name.
// A real name contains at least one lowercase letter.
func isShorthandQualifier(s string) bool {
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
	}
	return true
}

// ResolveCaller resolves the play-caller for a play. Precedence: the
// explicit record field, then a name-like parenthetical in the title, then
// the directory keyed by (year, derived team). First match wins; an empty
// string means unresolved, which is a normal outcome.
func ResolveCaller(p play.Play, teams map[string]string, callers map[string]string) string {
	if p.PlayCaller != "" {
		return p.PlayCaller
	}

	if m := parentheticalPattern.FindStringSubmatch(p.Title); m != nil {
		name := strings.TrimSpace(m[1])
		if name != "" && !isShorthandQualifier(name) {
			return name
		}
	}

	year := dateutil.Year(p.Date)
	// The title year is the season the play is from; the record date is
	// the newsletter date. Prefer the title year when present.
	if y := ExtractTitleYear(p.Title); y != "" {
		year = y
	}
	team := teams[p.ID]
	if year == "" || team == "" {
		return ""
	}
	return callers[CallerKey(year, team)]
}
