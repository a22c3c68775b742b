package components

import (
	"strings"
	"testing"

	"github.com/user/play-gallery-cli/play"
)

func TestPlaylistSelectionBounds(t *testing.T) {
	s := PlaylistState{Plays: []play.Play{{ID: "1"}, {ID: "2"}}}

	s.MoveUp()
	if s.SelectedIndex != 0 {
		t.Fatalf("expected selection pinned at 0, got %d", s.SelectedIndex)
	}
	s.MoveDown()
	s.MoveDown()
	if s.SelectedIndex != 1 {
		t.Fatalf("expected selection pinned at last play, got %d", s.SelectedIndex)
	}
	if got := s.Selected(); got == nil || got.ID != "2" {
		t.Fatalf("unexpected selection: %v", got)
	}
}

func TestPlaylistSelectedEmpty(t *testing.T) {
	var s PlaylistState
	if got := s.Selected(); got != nil {
		t.Fatalf("expected nil selection on empty page, got %v", got)
	}
}

func TestPlaylistGroupsByQuarterAscending(t *testing.T) {
	s := PlaylistState{
		Plays: []play.Play{
			{ID: "a", Title: "fourth quarter play", Quarter: 4},
			{ID: "b", Title: "first quarter play", Quarter: 1},
		},
		Captions: map[int]string{
			1: "Opening script",
			4: "Closing time",
		},
	}

	out := Playlist(s, 100)
	first := strings.Index(out, "Opening script")
	fourth := strings.Index(out, "Closing time")
	if first < 0 || fourth < 0 {
		t.Fatalf("expected both captions rendered:\n%s", out)
	}
	if first > fourth {
		t.Fatal("expected quarter groups in ascending order")
	}
	if !strings.Contains(out, "first quarter play") || !strings.Contains(out, "fourth quarter play") {
		t.Fatalf("expected both plays rendered:\n%s", out)
	}
}
