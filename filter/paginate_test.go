package filter

import (
	"fmt"
	"testing"

	"github.com/user/play-gallery-cli/play"
)

func numberedPlays(n int) []play.Play {
	plays := make([]play.Play, n)
	for i := range plays {
		plays[i] = play.Play{ID: fmt.Sprintf("%d", i+1)}
	}
	return plays
}

func TestPageCount(t *testing.T) {
	tests := []struct {
		n, pageSize, want int
	}{
		{0, 10, 1},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 10, 3},
		{5, 0, 1}, // nonsense page size is clamped, not fatal
	}
	for _, tc := range tests {
		if got := PageCount(tc.n, tc.pageSize); got != tc.want {
			t.Fatalf("PageCount(%d, %d): expected %d, got %d", tc.n, tc.pageSize, tc.want, got)
		}
	}
}

func TestPaginateWindows(t *testing.T) {
	plays := numberedPlays(25)

	first := Paginate(plays, 1, 10)
	if len(first) != 10 || first[0].ID != "1" || first[9].ID != "10" {
		t.Fatalf("unexpected first page: %v", ids(first))
	}
	last := Paginate(plays, 3, 10)
	if len(last) != 5 || last[0].ID != "21" || last[4].ID != "25" {
		t.Fatalf("unexpected last page: %v", ids(last))
	}
}

func TestPaginateOutOfRange(t *testing.T) {
	plays := numberedPlays(5)
	if got := Paginate(plays, 0, 10); got != nil {
		t.Fatalf("expected empty window for page 0, got %v", ids(got))
	}
	if got := Paginate(plays, 2, 10); got != nil {
		t.Fatalf("expected empty window past the end, got %v", ids(got))
	}
	if got := Paginate(nil, 1, 10); got != nil {
		t.Fatalf("expected empty window for empty input, got %v", ids(got))
	}
}
