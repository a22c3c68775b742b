package forms

import (
	"strings"

	"github.com/charmbracelet/huh"
)

// TagFormResult holds the data returned by a completed tag editor form.
type TagFormResult struct {
	// Selected are the vocabulary labels chosen in the multi-select
	Selected []string
	// New is a comma-separated list of freshly coined labels
	New string
}

// Labels merges the selection with the coined labels, trimmed, preserving
// order with vocabulary picks first.
func (r *TagFormResult) Labels() []string {
	out := append([]string(nil), r.Selected...)
	for _, l := range strings.Split(r.New, ",") {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return out
}

// NewTagForm creates a huh form for editing one play's tag set. The
// vocabulary is offered as a multi-select with the play's current labels
// pre-selected; new labels can be coined in the free-text input.
func NewTagForm(title string, vocabulary []string, result *TagFormResult) *huh.Form {
	opts := make([]huh.Option[string], 0, len(vocabulary))
	for _, l := range vocabulary {
		opts = append(opts, huh.NewOption(l, l))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title("Tags — " + title),

			huh.NewMultiSelect[string]().
				Title("Labels").
				Description("Deselect everything to untag the play").
				Options(opts...).
				Value(&result.Selected),

			huh.NewInput().
				Title("New labels").
				Description("Comma-separated, added to the vocabulary").
				Value(&result.New),
		),
	).WithTheme(Theme())

	return form
}
