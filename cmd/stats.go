package cmd

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/user/play-gallery-cli/pkg/dateutil"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize the play collection",
	Long: `Print summary statistics over the collection: plays per season,
plays per derived team, tag coverage, and source breakdown.`,
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

		byYear := make(map[string]int)
		byTeam := make(map[string]int)
		bySource := make(map[string]int)
		byLabel := make(map[string]int)
		tagged := 0
		for _, p := range plays {
			year := dateutil.Year(p.Date)
			if year == "" {
				year = "unknown"
			}
			byYear[year]++

			if team, ok := idx.Teams[p.ID]; ok {
				byTeam[team]++
			}
			bySource[string(p.Source)]++
			for _, l := range p.AutoTags {
				byLabel[l]++
			}
			if assigned := tags.Get(p.ID); len(assigned) > 0 {
				tagged++
				for _, l := range assigned {
					byLabel[l]++
				}
			}
		}

		fmt.Printf("Collection: %d play(s)\n\n", len(plays))

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)

		fmt.Fprintln(w, "SEASON\tPLAYS")
		for _, year := range sortedKeys(byYear) {
			fmt.Fprintf(w, "%s\t%d\n", year, byYear[year])
		}
		fmt.Fprintln(w)

		fmt.Fprintln(w, "SOURCE\tPLAYS")
		for _, src := range sortedKeys(bySource) {
			fmt.Fprintf(w, "%s\t%d\n", src, bySource[src])
		}
		fmt.Fprintln(w)

		// Teams sorted by play count, busiest first
		teams := sortedKeys(byTeam)
		sort.SliceStable(teams, func(i, j int) bool {
			return byTeam[teams[i]] > byTeam[teams[j]]
		})
		fmt.Fprintln(w, "TEAM\tPLAYS")
		for _, team := range teams {
			fmt.Fprintf(w, "%s\t%d\n", team, byTeam[team])
		}
		fmt.Fprintln(w)

		// Labels cover both auto-tags and user tags, busiest first
		labels := sortedKeys(byLabel)
		sort.SliceStable(labels, func(i, j int) bool {
			return byLabel[labels[i]] > byLabel[labels[j]]
		})
		fmt.Fprintln(w, "LABEL\tPLAYS")
		for _, label := range labels {
			fmt.Fprintf(w, "%s\t%d\n", label, byLabel[label])
		}
		if err := w.Flush(); err != nil {
			return err
		}

		fmt.Printf("\nTagged: %d/%d play(s), %d label(s) in the vocabulary\n",
			tagged, len(plays), len(tags.Vocabulary()))
		return nil
	},
}

func sortedKeys(m map[string]int) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
