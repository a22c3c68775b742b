package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/user/play-gallery-cli/tui"
)

var browsePageSize int

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the play gallery interactively",
	Long: `Open the interactive gallery: a paginated list of plays grouped by
quarter, with search, filters, tag editing, and mpv playback.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		plays, idx, err := loadCollection()
		if err != nil {
			return fmt.Errorf("failed to load play collection: %w", err)
		}

		tags, closeTags, err := openTags()
		if err != nil {
			return fmt.Errorf("failed to open tag store: %w", err)
		}
		defer closeTags()

		return tui.Run(plays, idx, tags, browsePageSize)
	},
}

func init() {
	browseCmd.Flags().IntVar(&browsePageSize, "page-size", 10, "plays per page")
	rootCmd.AddCommand(browseCmd)
}
