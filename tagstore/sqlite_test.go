package tagstore

import (
	"path/filepath"
	"testing"
)

func openTestRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := OpenSQLite(filepath.Join(t.TempDir(), "tags.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestSQLiteEmptyLoad(t *testing.T) {
	repo := openTestRepo(t)
	got, err := repo.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty mapping, got %v", got)
	}
}

func TestSQLiteSaveLoadRoundTrip(t *testing.T) {
	repo := openTestRepo(t)

	in := map[string][]string{
		"737":  {"RZ", "QB Run"},
		"x-99": {"Trick Play"},
	}
	if err := repo.SaveAll(in); err != nil {
		t.Fatal(err)
	}

	got, err := repo.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %v", got)
	}
	if len(got["737"]) != 2 || got["737"][0] != "RZ" {
		t.Fatalf("unexpected labels for 737: %v", got["737"])
	}

	// A second save fully replaces the payload.
	if err := repo.SaveAll(map[string][]string{"1": {"Screen"}}); err != nil {
		t.Fatal(err)
	}
	got, err = repo.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got["1"][0] != "Screen" {
		t.Fatalf("expected replaced payload, got %v", got)
	}
}

func TestSQLiteCorruptPayloadStartsFresh(t *testing.T) {
	repo := openTestRepo(t)
	if _, err := repo.db.Exec(
		"INSERT INTO tag_state (namespace, payload) VALUES (?, ?)",
		Namespace, "{not json"); err != nil {
		t.Fatal(err)
	}

	got, err := repo.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Fatalf("expected fresh empty state, got %v", got)
	}
}

func TestSQLiteReopenPersists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tags.db")

	repo, err := OpenSQLite(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := repo.SaveAll(map[string][]string{"42": {"RZ"}}); err != nil {
		t.Fatal(err)
	}
	repo.Close()

	reopened, err := OpenSQLite(path)
	if err != nil {
		t.Fatal(err)
	}
	defer reopened.Close()
	got, err := reopened.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got["42"][0] != "RZ" {
		t.Fatalf("expected persisted state across sessions, got %v", got)
	}
}
