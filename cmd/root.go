// Package cmd wires up the CLI command tree.
package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/user/play-gallery-cli/deps"
	"github.com/user/play-gallery-cli/index"
	"github.com/user/play-gallery-cli/play"
	"github.com/user/play-gallery-cli/tagstore"
)

var Version = "0.1.0"

var (
	playsPath   string
	callersPath string
	tagDBPath   string
)

var rootCmd = &cobra.Command{
	Use:   "play-gallery-cli",
	Short: "A browsable gallery of football plays",
	Long: `play-gallery-cli is a terminal gallery for the "One Play a Day"
football clip collection: browse, filter, and tag plays, and watch their
camera angles through mpv.

Features:
  - Paginated play list grouped by quarter
  - Search and per-field filters (team, source, down, personnel, ...)
  - Durable personal tags with a growing vocabulary
  - On-demand playback of a play's camera angles in mpv`,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("play-gallery-cli version %s\n", Version)
	},
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check system dependencies",
	Long:  `Check that the external tools (mpv, ffmpeg) are installed and available.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Checking dependencies...")
		fmt.Println()

		allGood := true
		for _, s := range deps.Report() {
			switch {
			case s.Err == nil:
				fmt.Printf("✓ %s: OK\n", s.Name)
			case s.Required:
				fmt.Printf("✗ %s: NOT FOUND\n", s.Name)
				if de, ok := s.Err.(*deps.DependencyError); ok {
					fmt.Printf("  Install from: %s\n", de.InstallURL)
				}
				allGood = false
			default:
				fmt.Printf("- %s: not found (optional)\n", s.Name)
			}
		}

		fmt.Println()
		if allGood {
			fmt.Println("All required dependencies are installed!")
		} else {
			fmt.Println("Some dependencies are missing. Please install them to use all features.")
			os.Exit(1)
		}
	},
}

// loadCollection loads the play collection and builds the derived indexes.
// A missing or unreadable collection is fatal; a missing caller directory
// only degrades the play-caller feature.
func loadCollection() ([]play.Play, *index.Index, error) {
	plays, err := play.Load(playsPath)
	if err != nil {
		return nil, nil, err
	}

	index.ApplyAutoTags(plays)

	dir, err := index.LoadCallerDirectory(callersPath)
	if err != nil {
		log.Printf("caller directory unavailable, play-caller lookups degraded: %v", err)
		dir = nil
	}

	return plays, index.Build(plays, dir), nil
}

// openTags opens the durable tag store. The returned closer shuts down the
// underlying database.
func openTags() (*tagstore.Store, func() error, error) {
	path := tagDBPath
	if path == "" {
		var err error
		path, err = tagstore.DefaultDBPath()
		if err != nil {
			return nil, nil, fmt.Errorf("resolve tag db path: %w", err)
		}
	}

	repo, err := tagstore.OpenSQLite(path)
	if err != nil {
		return nil, nil, err
	}

	store, err := tagstore.NewStore(repo)
	if err != nil {
		repo.Close()
		return nil, nil, err
	}
	return store, repo.Close, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&playsPath, "plays", "plays.json", "path to the play collection file")
	rootCmd.PersistentFlags().StringVar(&callersPath, "callers", "play_callers.json", "path to the play-caller directory file")
	rootCmd.PersistentFlags().StringVar(&tagDBPath, "db", "", "path to the tag database (default: user data dir)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(doctorCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
