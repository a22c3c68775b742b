// Package export writes a filtered slice of the collection back out as
// plays.json-shaped JSON, so a curated subset can be shared or re-ingested.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/user/play-gallery-cli/play"
)

// WriteJSON writes the plays to path as an indented JSON array, creating
// parent directories as needed. The output re-parses through play.Parse.
func WriteJSON(path string, plays []play.Play) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create export directory: %w", err)
	}

	data, err := json.MarshalIndent(plays, "", "  ")
	if err != nil {
		return fmt.Errorf("encode plays: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write export file: %w", err)
	}
	return nil
}
