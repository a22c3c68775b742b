package index

import (
	"testing"

	"github.com/user/play-gallery-cli/play"
)

func TestExtractAutoTags(t *testing.T) {
	tests := []struct {
		title string
		want  []string
	}{
		{"2024 Chiefs running a wheel route", []string{"pass:wheel"}},
		{"2023 Lions running GT Counter on 3rd & 2", []string{"run:counter", "situation:3rd-down"}},
		{"2022 Eagles throwing the Philly Special", []string{"trick:philly-special"}},
		{"2021 Bills drawing a penalty with a hard count", []string{"penalty"}},
		{"A play with no recognizable concept", nil},
	}

	for _, tc := range tests {
		got := ExtractAutoTags(tc.title)
		if len(got) != len(tc.want) {
			t.Fatalf("%q: expected %v, got %v", tc.title, tc.want, got)
		}
		for i := range tc.want {
			if got[i] != tc.want[i] {
				t.Fatalf("%q: expected %v, got %v", tc.title, tc.want, got)
			}
		}
	}
}

func TestApplyAutoTagsPreservesIngested(t *testing.T) {
	plays := []play.Play{
		{ID: "1", Title: "2024 Chiefs running a counter", AutoTags: []string{"custom"}},
		{ID: "2", Title: "2024 Bears running a counter"},
	}
	ApplyAutoTags(plays)
	if len(plays[0].AutoTags) != 1 || plays[0].AutoTags[0] != "custom" {
		t.Fatalf("ingested auto-tags overwritten: %v", plays[0].AutoTags)
	}
	if len(plays[1].AutoTags) != 1 || plays[1].AutoTags[0] != "run:counter" {
		t.Fatalf("expected derived auto-tag, got %v", plays[1].AutoTags)
	}
}

func TestIsPenalty(t *testing.T) {
	p := play.Play{AutoTags: []string{"run:counter", "penalty"}}
	if !p.IsPenalty() {
		t.Fatal("expected penalty play")
	}
	q := play.Play{AutoTags: []string{"run:counter"}}
	if q.IsPenalty() {
		t.Fatal("expected non-penalty play")
	}
}
