package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/user/play-gallery-cli/play"
	"github.com/user/play-gallery-cli/tui/styles"
)

// DetailCardState holds the resolved metadata for the highlighted play.
type DetailCardState struct {
	Play   *play.Play
	Team   string
	Caller string
	Labels []string
}

// DetailCard renders the detail panel for the highlighted play inside an
// info box. Fields with no value are simply omitted.
func DetailCard(state DetailCardState, width int) string {
	if state.Play == nil {
		return RenderInfoBox("Play", []string{" (nothing selected)"}, width, false)
	}
	p := state.Play

	labelStyle := lipgloss.NewStyle().Foreground(styles.Sage)
	valueStyle := lipgloss.NewStyle().Foreground(styles.Chalk)
	tagStyle := lipgloss.NewStyle().Foreground(styles.Sky)

	field := func(name, value string) string {
		return " " + labelStyle.Render(fmt.Sprintf("%-10s", name)) + valueStyle.Render(value)
	}

	var lines []string
	lines = append(lines, " "+valueStyle.Render(truncate(p.Title, width-4)))
	lines = append(lines, "")
	lines = append(lines, field("ID", p.ID))
	if p.Date != "" {
		lines = append(lines, field("Date", p.Date))
	}
	lines = append(lines, field("Source", string(p.Source)))
	if state.Team != "" {
		lines = append(lines, field("Team", state.Team))
	}
	if state.Caller != "" {
		lines = append(lines, field("Caller", state.Caller))
	}
	if p.PlayDetails.DownAndDistance != "" {
		lines = append(lines, field("Down", p.PlayDetails.DownAndDistance))
	}
	if p.PlayDetails.Personnel != "" {
		lines = append(lines, field("Personnel", p.PlayDetails.Personnel))
	}
	if p.PlayDetails.Formation != "" {
		lines = append(lines, field("Formation", p.PlayDetails.Formation))
	}
	lines = append(lines, field("Angles", fmt.Sprintf("%d", len(p.Angles))))
	if p.PlayDiagram != "" {
		lines = append(lines, field("Diagram", "yes"))
	}
	if len(p.AutoTags) > 0 {
		lines = append(lines, field("Auto", strings.Join(p.AutoTags, ", ")))
	}
	if len(state.Labels) > 0 {
		lines = append(lines, " "+labelStyle.Render(fmt.Sprintf("%-10s", "Tags"))+tagStyle.Render(strings.Join(state.Labels, ", ")))
	}

	return RenderInfoBox("Play", lines, width, false)
}
