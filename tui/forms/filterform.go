package forms

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/user/play-gallery-cli/pkg/dateutil"
)

// FilterOptions carries the distinct values offered by each picker,
// derived once from the loaded collection.
type FilterOptions struct {
	Teams      []string
	Downs      []string
	Personnel  []string
	Formations []string
	Callers    []string
	Labels     []string
}

// FilterFormResult holds the data returned by a completed filter form.
// Empty string / empty slice means the predicate is inactive.
type FilterFormResult struct {
	Team      string
	Source    string
	Down      string
	Personnel string
	Formation string
	Caller    string
	DateFrom  string
	DateTo    string
	Tags      []string
}

// anyOption prefixes a value list with the inactive "(any)" choice.
func anyOption(values []string) []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(values)+1)
	opts = append(opts, huh.NewOption("(any)", ""))
	for _, v := range values {
		opts = append(opts, huh.NewOption(v, v))
	}
	return opts
}

// validDate accepts an empty value or a zero-padded ISO date.
func validDate(s string) error {
	if s == "" || dateutil.IsISODate(s) {
		return nil
	}
	return fmt.Errorf("expected YYYY-MM-DD, got %q", s)
}

// NewFilterForm creates a huh form with one control per filter predicate.
// The result pointer is bound to the form fields and will be populated on
// submit; pre-populating it makes the current criteria the initial state.
func NewFilterForm(opts FilterOptions, result *FilterFormResult) *huh.Form {
	labelOpts := make([]huh.Option[string], 0, len(opts.Labels))
	for _, l := range opts.Labels {
		labelOpts = append(labelOpts, huh.NewOption(l, l))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title("Filter Plays"),

			huh.NewSelect[string]().
				Title("Team").
				Options(anyOption(opts.Teams)...).
				Value(&result.Team),

			huh.NewSelect[string]().
				Title("Source").
				Options(
					huh.NewOption("(any)", ""),
					huh.NewOption("email", "email"),
					huh.NewOption("twitter", "twitter"),
				).
				Value(&result.Source),

			huh.NewSelect[string]().
				Title("Down").
				Options(anyOption(opts.Downs)...).
				Value(&result.Down),

			huh.NewSelect[string]().
				Title("Personnel").
				Options(anyOption(opts.Personnel)...).
				Value(&result.Personnel),

			huh.NewSelect[string]().
				Title("Formation").
				Options(anyOption(opts.Formations)...).
				Value(&result.Formation),

			huh.NewSelect[string]().
				Title("Play Caller").
				Options(anyOption(opts.Callers)...).
				Value(&result.Caller),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("From date").
				Description("YYYY-MM-DD, inclusive").
				Validate(validDate).
				Value(&result.DateFrom),

			huh.NewInput().
				Title("To date").
				Description("YYYY-MM-DD, inclusive").
				Validate(validDate).
				Value(&result.DateTo),

			huh.NewMultiSelect[string]().
				Title("Tags").
				Description("Match any selected tag").
				Options(labelOpts...).
				Value(&result.Tags),
		),
	).WithTheme(Theme())

	return form
}
