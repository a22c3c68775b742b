package index

import (
	"regexp"
	"strings"

	"github.com/user/play-gallery-cli/play"
)

// autoTagPattern pairs a title pattern with the system label it produces.
// More specific patterns come before general ones so both can match.
type autoTagPattern struct {
	pattern *regexp.Regexp
	label   string
}

// autoTagTable is the fixed pattern table for title-derived labels.
// These are system labels ("auto-tags"), kept separate from user tags.
var autoTagTable = []autoTagPattern{
	// Run concepts
	{regexp.MustCompile(`counter`), "run:counter"},
	{regexp.MustCompile(`\biso\b`), "run:iso"},
	{regexp.MustCompile(`power`), "run:power"},
	{regexp.MustCompile(`\bduo\b`), "run:duo"},
	{regexp.MustCompile(`zone read`), "run:zone-read"},
	{regexp.MustCompile(`inside zone|\biz\b`), "run:inside-zone"},
	{regexp.MustCompile(`outside zone|\boz\b`), "run:outside-zone"},
	{regexp.MustCompile(`toss`), "run:toss"},
	{regexp.MustCompile(`sweep`), "run:sweep"},
	{regexp.MustCompile(`\bdraw\b`), "run:draw"},
	{regexp.MustCompile(`\btrap\b`), "run:trap"},
	{regexp.MustCompile(`option`), "run:option"},

	// Pass concepts
	{regexp.MustCompile(`flood`), "pass:flood"},
	{regexp.MustCompile(`dagger`), "pass:dagger"},
	{regexp.MustCompile(`\bmesh\b`), "pass:mesh"},
	{regexp.MustCompile(`shallow`), "pass:shallow"},
	{regexp.MustCompile(`four.?verts|4.?verts|verticals`), "pass:four-verts"},
	{regexp.MustCompile(`smash`), "pass:smash"},
	{regexp.MustCompile(`levels`), "pass:levels"},
	{regexp.MustCompile(`post.?wheel`), "pass:post-wheel"},
	{regexp.MustCompile(`\bwheel\b`), "pass:wheel"},
	{regexp.MustCompile(`\bstick\b`), "pass:stick"},

	// Play action and screens
	{regexp.MustCompile(`\bpa\b|play.?action`), "play-action"},
	{regexp.MustCompile(`\bboot\b`), "boot"},
	{regexp.MustCompile(`\bnaked\b`), "naked-boot"},
	{regexp.MustCompile(`tunnel\s+screen`), "screen:tunnel"},
	{regexp.MustCompile(`screen`), "screen"},
	{regexp.MustCompile(`\brpo\b`), "rpo"},

	// Trick plays
	{regexp.MustCompile(`flea\s*flicker`), "trick:flea-flicker"},
	{regexp.MustCompile(`reverse`), "trick:reverse"},
	{regexp.MustCompile(`philly\s*special`), "trick:philly-special"},
	{regexp.MustCompile(`trick`), "trick"},

	// Situations
	{regexp.MustCompile(`red\s*zone`), "situation:red-zone"},
	{regexp.MustCompile(`goal\s*line|\d(?:st|nd|rd|th)\s*&\s*goal`), "situation:goal-line"},
	{regexp.MustCompile(`3rd\s*(?:&|and)\s*(?:long|short|\d+)`), "situation:3rd-down"},
	{regexp.MustCompile(`4th\s*(?:&|and)\s*\d+`), "situation:4th-down"},

	// Penalties (drives the penalty marker in the gallery)
	{regexp.MustCompile(`penalt(?:y|ies)|flag on the play|illegal`), "penalty"},
}

// ExtractAutoTags derives system labels from a play title. Returned labels
// are unique and in table order; an unmatched title yields nil.
func ExtractAutoTags(title string) []string {
	lower := strings.ToLower(title)

	var tags []string
	seen := make(map[string]bool)
	for _, at := range autoTagTable {
		if at.pattern.MatchString(lower) && !seen[at.label] {
			tags = append(tags, at.label)
			seen[at.label] = true
		}
	}
	return tags
}

// ApplyAutoTags fills in AutoTags for every play that doesn't already
// carry them from ingestion.
func ApplyAutoTags(plays []play.Play) {
	for i := range plays {
		if len(plays[i].AutoTags) == 0 {
			plays[i].AutoTags = ExtractAutoTags(plays[i].Title)
		}
	}
}
