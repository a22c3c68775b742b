package index

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/user/play-gallery-cli/play"
)

func testDirectory() CallerDirectory {
	return CallerDirectory{
		"nfl": {
			"2024": {
				"Chiefs": {PlayCaller: "Andy Reid"},
				"49ers":  {PlayCaller: "Kyle Shanahan"},
			},
		},
		"cfb": {
			"2006": {
				"Texas": {PlayCaller: "Greg Davis"},
			},
		},
	}
}

func TestBuildCallerIndexFlattensAndNormalizes(t *testing.T) {
	callers := BuildCallerIndex(testDirectory())
	if callers[CallerKey("2024", "Chiefs")] != "Andy Reid" {
		t.Fatalf("missing Chiefs entry: %v", callers)
	}
	// Alias normalization applies to directory team names too.
	if callers[CallerKey("2024", "San Francisco 49ers")] != "Kyle Shanahan" {
		t.Fatalf("expected normalized 49ers key: %v", callers)
	}
	if len(BuildCallerIndex(nil)) != 0 {
		t.Fatal("nil directory should yield empty index")
	}
}

func TestResolveCallerPrecedence(t *testing.T) {
	callers := BuildCallerIndex(testDirectory())

	// 1. Explicit field wins over everything.
	p := play.Play{ID: "1", Title: "2024 Chiefs (Matt Nagy) running a screen", PlayCaller: "Explicit Name"}
	teams := BuildTeamIndex([]play.Play{p})
	if got := ResolveCaller(p, teams, callers); got != "Explicit Name" {
		t.Fatalf("expected explicit field, got %q", got)
	}

	// 2. Name-like parenthetical before the verb.
	p = play.Play{ID: "2", Title: "2006 Texas (Greg Davis) running Q Power"}
	teams = BuildTeamIndex([]play.Play{p})
	if got := ResolveCaller(p, teams, callers); got != "Greg Davis" {
		t.Fatalf("expected parenthetical name, got %q", got)
	}

	// All-caps shorthand parentheticals are qualifiers, not names; the
	// directory supplies the caller instead.
	p = play.Play{ID: "3", Title: "2024 Chiefs (KC) running a sweep"}
	teams = BuildTeamIndex([]play.Play{p})
	if got := ResolveCaller(p, teams, callers); got != "Andy Reid" {
		t.Fatalf("expected directory fallback past shorthand, got %q", got)
	}

	// 3. Directory lookup by (title year, derived team).
	p = play.Play{ID: "4", Title: "2024 Chiefs running a wheel route", Date: "2025-02-01"}
	teams = BuildTeamIndex([]play.Play{p})
	if got := ResolveCaller(p, teams, callers); got != "Andy Reid" {
		t.Fatalf("expected directory lookup, got %q", got)
	}

	// Unresolvable: empty string, never an error.
	p = play.Play{ID: "5", Title: "1999 Rams throwing deep"}
	teams = BuildTeamIndex([]play.Play{p})
	if got := ResolveCaller(p, teams, callers); got != "" {
		t.Fatalf("expected empty caller, got %q", got)
	}
}

func TestIsShorthandQualifier(t *testing.T) {
	shorthand := []string{"OK", "FCS - NC", "KC", "2X", "A&M"}
	for _, s := range shorthand {
		if !isShorthandQualifier(s) {
			t.Fatalf("expected %q to be shorthand", s)
		}
	}
	names := []string{"Greg Davis", "McVay", "Kyle Shanahan"}
	for _, s := range names {
		if isShorthandQualifier(s) {
			t.Fatalf("expected %q to be a name", s)
		}
	}
}

func TestLoadCallerDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "callers.json")
	data := `{"nfl": {"2024": {"Chiefs": {"play_caller": "Andy Reid"}}}}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	dir, err := LoadCallerDirectory(path)
	if err != nil {
		t.Fatal(err)
	}
	if dir["nfl"]["2024"]["Chiefs"].PlayCaller != "Andy Reid" {
		t.Fatalf("unexpected directory: %v", dir)
	}

	if _, err := LoadCallerDirectory(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
