package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/user/play-gallery-cli/filter"
	"github.com/user/play-gallery-cli/index"
	"github.com/user/play-gallery-cli/pkg/dateutil"
	"github.com/user/play-gallery-cli/pkg/export"
	"github.com/user/play-gallery-cli/play"
)

var listFlags struct {
	search    string
	team      string
	source    string
	down      string
	personnel string
	formation string
	caller    string
	dateFrom  string
	dateTo    string
	tags      []string
	out       string
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List plays matching the given filters",
	Long: `List plays in canonical order (newest first), optionally filtered by
the same predicates the interactive gallery offers. With --out the matching
plays are written to a JSON file instead of the terminal.`,
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

		dateFrom, dateTo := "", ""
		if listFlags.dateFrom != "" {
			if dateFrom, err = dateutil.ParseFlexible(listFlags.dateFrom); err != nil {
				return fmt.Errorf("invalid --from: %w", err)
			}
		}
		if listFlags.dateTo != "" {
			if dateTo, err = dateutil.ParseFlexible(listFlags.dateTo); err != nil {
				return fmt.Errorf("invalid --to: %w", err)
			}
		}

		criteria := filter.Criteria{
			Search:    listFlags.search,
			Team:      listFlags.team,
			Source:    play.Source(listFlags.source),
			Down:      listFlags.down,
			Personnel: listFlags.personnel,
			Formation: listFlags.formation,
			Caller:    listFlags.caller,
			DateFrom:  dateFrom,
			DateTo:    dateTo,
			Tags:      listFlags.tags,
		}

		matched := filter.Apply(plays, criteria, idx, tags)

		if listFlags.out != "" {
			if err := export.WriteJSON(listFlags.out, matched); err != nil {
				return err
			}
			fmt.Printf("Wrote %d play(s) to %s\n", len(matched), listFlags.out)
			return nil
		}

		if len(matched) == 0 {
			fmt.Println("No plays match the given filters.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tDATE\tTEAM\tCALLER\tTITLE")
		for _, p := range matched {
			date := p.Date
			if date == "" {
				date = "-"
			}
			team := idx.Teams[p.ID]
			if team == "" {
				team = "-"
			}
			caller := index.ResolveCaller(p, idx.Teams, idx.Callers)
			if caller == "" {
				caller = "-"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", p.ID, date, team, caller, p.Title)
		}
		if err := w.Flush(); err != nil {
			return err
		}
		fmt.Printf("\n%d play(s)\n", len(matched))
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&listFlags.search, "search", "", "substring match on title, personnel, or formation")
	listCmd.Flags().StringVar(&listFlags.team, "team", "", "exact match on derived team")
	listCmd.Flags().StringVar(&listFlags.source, "source", "", "source: email or twitter")
	listCmd.Flags().StringVar(&listFlags.down, "down", "", "prefix match on down and distance")
	listCmd.Flags().StringVar(&listFlags.personnel, "personnel", "", "exact match on personnel grouping")
	listCmd.Flags().StringVar(&listFlags.formation, "formation", "", "exact match on formation")
	listCmd.Flags().StringVar(&listFlags.caller, "caller", "", "exact match on resolved play-caller")
	listCmd.Flags().StringVar(&listFlags.dateFrom, "from", "", "earliest date, inclusive (YYYY-MM-DD)")
	listCmd.Flags().StringVar(&listFlags.dateTo, "to", "", "latest date, inclusive (YYYY-MM-DD)")
	listCmd.Flags().StringSliceVar(&listFlags.tags, "tag", nil, "match plays carrying any of these tags (repeatable)")
	listCmd.Flags().StringVar(&listFlags.out, "out", "", "write matching plays to a JSON file")

	rootCmd.AddCommand(listCmd)
}
