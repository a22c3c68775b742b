package index

import (
	"testing"

	"github.com/user/play-gallery-cli/play"
)

func TestExtractTeam(t *testing.T) {
	tests := []struct {
		title string
		team  string
		ok    bool
	}{
		{"2024 Chiefs running a wheel route", "Chiefs", true},
		{"2025 Seattle Seahawks Defense getting a pick", "Seattle Seahawks", true},
		{"2023 49ers using motion to spring the sweep", "San Francisco 49ers", true},
		{"2006 Texas (Greg Davis) running Q Power", "Texas", true},
		{"1994 Niners throwing it deep", "San Francisco 49ers", true},
		{"A great play with no structure", "", false},
		{"Chiefs running without a year", "", false},
		{"", "", false},
	}

	for _, tc := range tests {
		team, ok := ExtractTeam(tc.title)
		if ok != tc.ok {
			t.Fatalf("%q: expected ok=%v, got %v", tc.title, tc.ok, ok)
		}
		if team != tc.team {
			t.Fatalf("%q: expected team %q, got %q", tc.title, tc.team, team)
		}
	}
}

func TestBuildTeamIndexSkipsUnparsedTitles(t *testing.T) {
	plays := []play.Play{
		{ID: "1", Title: "2024 Chiefs running a wheel route"},
		{ID: "2", Title: "An unstructured title"},
	}
	teams := BuildTeamIndex(plays)
	if teams["1"] != "Chiefs" {
		t.Fatalf("expected Chiefs for play 1, got %q", teams["1"])
	}
	if _, ok := teams["2"]; ok {
		t.Fatal("expected no entry for unparsed title")
	}
}

func TestExtractTitleYear(t *testing.T) {
	if y := ExtractTitleYear("1987 Bears running sweep"); y != "1987" {
		t.Fatalf("expected 1987, got %q", y)
	}
	if y := ExtractTitleYear("no year here"); y != "" {
		t.Fatalf("expected empty, got %q", y)
	}
}
