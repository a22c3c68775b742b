package tui

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/user/play-gallery-cli/index"
	"github.com/user/play-gallery-cli/play"
	"github.com/user/play-gallery-cli/tagstore"
)

func testModel(t *testing.T, n, pageSize int) *Model {
	t.Helper()
	plays := make([]play.Play, n)
	for i := range plays {
		plays[i] = play.Play{
			ID:    fmt.Sprintf("%d", i+1),
			Title: fmt.Sprintf("2024 Lions running play %d", i+1),
			Date:  fmt.Sprintf("2024-01-%02d", (i%28)+1),
		}
		plays[i].Normalize()
	}
	tags, err := tagstore.NewStore(tagstore.NewMemoryRepository())
	if err != nil {
		t.Fatal(err)
	}
	return NewModel(plays, index.Build(plays, nil), tags, pageSize)
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestPageBoundsAreNoOps(t *testing.T) {
	m := testModel(t, 25, 10)

	// Prev at the first page stays put
	m.handleNormalKeys(key("p"))
	if m.page != 1 {
		t.Fatalf("expected page 1, got %d", m.page)
	}

	m.handleNormalKeys(key("n"))
	m.handleNormalKeys(key("n"))
	if m.page != 3 {
		t.Fatalf("expected page 3, got %d", m.page)
	}

	// Next at the last page stays put
	m.handleNormalKeys(key("n"))
	if m.page != 3 {
		t.Fatalf("expected page pinned at 3, got %d", m.page)
	}
	if len(m.playlist.Plays) != 5 {
		t.Fatalf("expected 5 plays on the last page, got %d", len(m.playlist.Plays))
	}
}

func TestClearFiltersResetsToPageOne(t *testing.T) {
	m := testModel(t, 25, 10)
	m.handleNormalKeys(key("n"))

	m.handleNormalKeys(key("c"))
	if m.page != 1 {
		t.Fatalf("expected reset to page 1, got %d", m.page)
	}
	if !m.criteria.IsZero() {
		t.Fatalf("expected empty criteria, got %+v", m.criteria)
	}
}

func TestSearchAppliesAfterDebounce(t *testing.T) {
	m := testModel(t, 25, 10)
	m.handleNormalKeys(key("n"))

	m.handleNormalKeys(key("/"))
	if !m.searchMode {
		t.Fatal("expected search mode")
	}
	m.handleSearchInput(key("p"))
	m.handleSearchInput(key("l"))
	m.handleSearchInput(key("a"))
	m.handleSearchInput(key("y"))

	// Nothing applies while the quiescence window is open
	if m.criteria.Search != "" {
		t.Fatalf("expected search not applied yet, got %q", m.criteria.Search)
	}
	if !m.searchInput.Pending {
		t.Fatal("expected pending debounce state")
	}

	// Stale windows (earlier keystrokes) are ignored
	m.Update(searchDebounceMsg{seq: m.searchSeq - 1})
	if m.criteria.Search != "" {
		t.Fatalf("stale debounce applied the search: %q", m.criteria.Search)
	}

	// The latest window applies the search and resets the page
	m.Update(searchDebounceMsg{seq: m.searchSeq})
	if m.criteria.Search != "play" {
		t.Fatalf("expected search applied, got %q", m.criteria.Search)
	}
	if m.page != 1 {
		t.Fatalf("expected reset to page 1, got %d", m.page)
	}
	if m.searchInput.Pending {
		t.Fatal("expected pending state cleared")
	}
}

func TestSearchEnterAppliesImmediately(t *testing.T) {
	m := testModel(t, 25, 10)
	m.handleNormalKeys(key("/"))
	m.handleSearchInput(key("7"))
	m.handleSearchInput(tea.KeyMsg{Type: tea.KeyEnter})

	if m.searchMode {
		t.Fatal("expected search mode exited")
	}
	if m.criteria.Search != "7" {
		t.Fatalf("expected search applied on enter, got %q", m.criteria.Search)
	}
}
