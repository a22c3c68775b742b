package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/user/play-gallery-cli/play"
)

func TestWriteJSONRoundTrip(t *testing.T) {
	plays := []play.Play{
		{ID: "737", Date: "2024-11-02", Title: "2024 Lions running a fake QB sneak"},
		{ID: "x-99", Date: "2024-09-02", Title: "2024 Eagles throwing deep"},
	}
	for i := range plays {
		plays[i].Normalize()
	}

	path := filepath.Join(t.TempDir(), "nested", "out.json")
	if err := WriteJSON(path, plays); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	got, err := play.Parse(f)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].ID != "737" || got[1].ID != "x-99" {
		t.Fatalf("unexpected round-trip result: %+v", got)
	}
}
