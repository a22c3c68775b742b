// Package tui implements the interactive gallery: a paginated, filterable
// play list with tag editing and on-demand video playback through mpv.
package tui

import (
	"fmt"
	"os/exec"
	"sort"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/user/play-gallery-cli/filter"
	"github.com/user/play-gallery-cli/index"
	"github.com/user/play-gallery-cli/mpv"
	"github.com/user/play-gallery-cli/narrative"
	"github.com/user/play-gallery-cli/play"
	"github.com/user/play-gallery-cli/tagstore"
	"github.com/user/play-gallery-cli/tui/components"
	"github.com/user/play-gallery-cli/tui/forms"
	"github.com/user/play-gallery-cli/tui/layout"
	"github.com/user/play-gallery-cli/tui/styles"
)

const (
	// searchDebounce is the quiescence window before typed search text is
	// applied. Every other control applies immediately.
	searchDebounce = 300 * time.Millisecond
	// resultDisplayDuration is how long transient messages stay visible.
	resultDisplayDuration = 3 * time.Second
)

// searchDebounceMsg fires when a search quiescence window closes. Seq ties
// the message to the keystroke that scheduled it; stale windows are ignored.
type searchDebounceMsg struct {
	seq int
}

// clearResultMsg clears the transient status bar message.
type clearResultMsg struct{}

// Model is the Bubbletea model for the gallery.
// It implements the tea.Model interface with Init, Update, and View methods.
type Model struct {
	// full collection in canonical order; never mutated after load
	plays []play.Play
	// derived team/caller lookups, built once
	idx *index.Index
	// tag assignments and vocabulary
	tags *tagstore.Store
	// quarter caption source
	captions narrative.Generator

	// current filter criteria; rebuilt in full on every control change
	criteria filter.Criteria
	// plays surviving the current criteria, in canonical order
	filtered []play.Play
	// current 1-based page
	page int
	// plays per page
	pageSize int

	// search input state and debounce bookkeeping
	searchInput components.SearchInputState
	searchMode  bool
	searchSeq   int

	playlist  components.PlaylistState
	statusBar components.StatusBarState

	// filter form overlay; nil when closed
	filterForm   *huh.Form
	filterResult *forms.FilterFormResult

	// tag editor overlay; nil when closed
	tagForm   *huh.Form
	tagResult *forms.TagFormResult
	tagPlayID string

	// running mpv process and its IPC client; nil/disconnected when idle
	client    *mpv.Client
	playerCmd *exec.Cmd

	showHelp bool
	quitting bool
	width    int
	height   int
	err      error
}

// NewModel creates the gallery model over a loaded collection. A pageSize
// below 1 falls back to the default.
func NewModel(plays []play.Play, idx *index.Index, tags *tagstore.Store, pageSize int) *Model {
	if pageSize < 1 {
		pageSize = filter.DefaultPageSize
	}
	m := &Model{
		plays:    plays,
		idx:      idx,
		tags:     tags,
		captions: narrative.Static{},
		page:     1,
		pageSize: pageSize,
		client:   mpv.NewClient(""),
	}
	m.applyFilters()
	return m
}

// Init initializes the model. It returns an optional command to run.
func (m *Model) Init() tea.Cmd {
	return nil
}

// debounceCmd schedules the close of a search quiescence window.
func debounceCmd(seq int) tea.Cmd {
	return tea.Tick(searchDebounce, func(time.Time) tea.Msg {
		return searchDebounceMsg{seq: seq}
	})
}

// clearResultCmd schedules clearing of the transient message.
func clearResultCmd() tea.Cmd {
	return tea.Tick(resultDisplayDuration, func(time.Time) tea.Msg {
		return clearResultMsg{}
	})
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case searchDebounceMsg:
		// Only the latest keystroke's window may apply the search
		if msg.seq != m.searchSeq {
			return m, nil
		}
		m.searchInput.Pending = false
		if m.criteria.Search != m.searchInput.Input {
			m.criteria.Search = m.searchInput.Input
			m.page = 1
			m.applyFilters()
		}
		return m, nil

	case clearResultMsg:
		m.statusBar.Message = ""
		m.statusBar.MessageIsError = false
		return m, nil

	case tea.KeyMsg:
		// Help overlay - any key dismisses it
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}

		// Form overlays swallow all key input
		if m.filterForm != nil {
			return m.updateFilterForm(msg)
		}
		if m.tagForm != nil {
			return m.updateTagForm(msg)
		}

		// Search input mode
		if m.searchMode {
			return m.handleSearchInput(msg)
		}

		return m.handleNormalKeys(msg)
	}

	// Forms also react to non-key messages (spinners, blink)
	if m.filterForm != nil {
		return m.updateFilterForm(msg)
	}
	if m.tagForm != nil {
		return m.updateTagForm(msg)
	}

	return m, nil
}

// handleNormalKeys handles key events in browse mode.
func (m *Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "?":
		m.showHelp = true
		return m, nil

	case "q", "ctrl+c":
		m.quitting = true
		m.stopPlayer()
		return m, tea.Quit

	case "/":
		m.searchMode = true
		return m, nil

	case "f":
		return m.openFilterForm()

	case "t":
		return m.openTagForm()

	case "c":
		// Clear every filter, including pending search text
		m.criteria = filter.Criteria{}
		m.searchInput.Clear()
		m.page = 1
		m.applyFilters()
		return m.showMessage("Filters cleared", false)

	case "j", "down":
		m.playlist.MoveDown()
		return m, nil

	case "k", "up":
		m.playlist.MoveUp()
		return m, nil

	case "n", "right":
		// No-op at the last page
		if m.page < filter.PageCount(len(m.filtered), m.pageSize) {
			m.page++
			m.refreshPage()
		}
		return m, nil

	case "p", "left":
		// No-op at the first page
		if m.page > 1 {
			m.page--
			m.refreshPage()
		}
		return m, nil

	case "enter":
		return m.playSelected()

	case " ":
		return m.togglePause()
	}

	return m, nil
}

// handleSearchInput handles key events while typing in the search box.
func (m *Model) handleSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searchMode = false
		return m, nil

	case "enter":
		// Apply immediately, skipping the debounce window
		m.searchMode = false
		m.searchInput.Pending = false
		m.searchSeq++
		if m.criteria.Search != m.searchInput.Input {
			m.criteria.Search = m.searchInput.Input
			m.page = 1
			m.applyFilters()
		}
		return m, nil

	case "backspace":
		m.searchInput.Backspace()
		return m.scheduleSearch()

	case "left":
		m.searchInput.MoveCursorLeft()
		return m, nil

	case "right":
		m.searchInput.MoveCursorRight()
		return m, nil

	default:
		if msg.Type == tea.KeyRunes {
			for _, r := range msg.Runes {
				m.searchInput.InsertChar(r)
			}
			return m.scheduleSearch()
		}
		return m, nil
	}
}

// scheduleSearch opens a fresh debounce window for the current input.
func (m *Model) scheduleSearch() (tea.Model, tea.Cmd) {
	m.searchSeq++
	m.searchInput.Pending = true
	return m, debounceCmd(m.searchSeq)
}

// openFilterForm builds and shows the filter form pre-populated with the
// current criteria.
func (m *Model) openFilterForm() (tea.Model, tea.Cmd) {
	m.filterResult = &forms.FilterFormResult{
		Team:      m.criteria.Team,
		Source:    string(m.criteria.Source),
		Down:      m.criteria.Down,
		Personnel: m.criteria.Personnel,
		Formation: m.criteria.Formation,
		Caller:    m.criteria.Caller,
		DateFrom:  m.criteria.DateFrom,
		DateTo:    m.criteria.DateTo,
		Tags:      append([]string(nil), m.criteria.Tags...),
	}
	m.filterForm = forms.NewFilterForm(m.filterOptions(), m.filterResult)
	return m, m.filterForm.Init()
}

// updateFilterForm forwards messages to the filter form and applies the
// result when it completes.
func (m *Model) updateFilterForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		m.filterForm = nil
		return m, nil
	}

	form, cmd := m.filterForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.filterForm = f
	}

	if m.filterForm.State == huh.StateCompleted {
		r := m.filterResult
		m.criteria.Team = r.Team
		m.criteria.Source = play.Source(r.Source)
		m.criteria.Down = r.Down
		m.criteria.Personnel = r.Personnel
		m.criteria.Formation = r.Formation
		m.criteria.Caller = r.Caller
		m.criteria.DateFrom = r.DateFrom
		m.criteria.DateTo = r.DateTo
		m.criteria.Tags = r.Tags
		m.filterForm = nil
		// Any criteria change lands back on page 1
		m.page = 1
		m.applyFilters()
		return m, nil
	}
	if m.filterForm.State == huh.StateAborted {
		m.filterForm = nil
		return m, nil
	}

	return m, cmd
}

// openTagForm builds and shows the tag editor for the highlighted play.
func (m *Model) openTagForm() (tea.Model, tea.Cmd) {
	selected := m.playlist.Selected()
	if selected == nil {
		return m.showMessage("No play selected", true)
	}

	m.tagPlayID = selected.ID
	m.tagResult = &forms.TagFormResult{
		Selected: m.tags.Get(selected.ID),
	}
	m.tagForm = forms.NewTagForm(selected.Title, m.tags.Vocabulary(), m.tagResult)
	return m, m.tagForm.Init()
}

// updateTagForm forwards messages to the tag editor and persists the new
// label set when it completes.
func (m *Model) updateTagForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		m.tagForm = nil
		return m, nil
	}

	form, cmd := m.tagForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.tagForm = f
	}

	if m.tagForm.State == huh.StateCompleted {
		labels := m.tagResult.Labels()
		playID := m.tagPlayID
		m.tagForm = nil
		if err := m.tags.Set(playID, labels); err != nil {
			return m.showMessage("Error: "+err.Error(), true)
		}
		// Tag edits can change what an active tag filter matches
		m.page = 1
		m.applyFilters()
		if len(labels) == 0 {
			return m.showMessage("Play untagged", false)
		}
		return m.showMessage(fmt.Sprintf("Tagged with %d label(s)", len(labels)), false)
	}
	if m.tagForm.State == huh.StateAborted {
		m.tagForm = nil
		return m, nil
	}

	return m, cmd
}

// playSelected launches mpv on the highlighted play's angles. Only one
// player runs at a time; activating a play replaces the previous one.
func (m *Model) playSelected() (tea.Model, tea.Cmd) {
	selected := m.playlist.Selected()
	if selected == nil {
		return m.showMessage("No play selected", true)
	}
	if len(selected.Angles) == 0 {
		return m.showMessage("Play has no media angles", true)
	}

	m.stopPlayer()

	cmd, err := mpv.LaunchPlay(selected.Title, selected.Angles)
	if err != nil {
		return m.showMessage("Error: "+err.Error(), true)
	}
	m.playerCmd = cmd
	return m.showMessage("Playing: "+selected.Title, false)
}

// togglePause flips the running player's pause state over IPC.
func (m *Model) togglePause() (tea.Model, tea.Cmd) {
	if m.playerCmd == nil {
		return m, nil
	}
	if !m.client.IsConnected() {
		if err := m.client.Connect(); err != nil {
			return m.showMessage("Player not reachable", true)
		}
	}
	if err := m.client.TogglePause(); err != nil {
		return m.showMessage("Error: "+err.Error(), true)
	}
	return m, nil
}

// stopPlayer shuts down the running mpv process, if any.
func (m *Model) stopPlayer() {
	if m.playerCmd == nil {
		return
	}
	if m.client.IsConnected() || m.client.Connect() == nil {
		_ = m.client.Quit()
	}
	_ = m.client.Close()
	_ = m.playerCmd.Process.Kill()
	_ = m.playerCmd.Wait()
	m.playerCmd = nil
}

// showMessage sets a transient status bar message.
func (m *Model) showMessage(text string, isError bool) (tea.Model, tea.Cmd) {
	m.statusBar.Message = text
	m.statusBar.MessageIsError = isError
	return m, clearResultCmd()
}

// applyFilters recomputes the filtered view and refreshes the current page.
func (m *Model) applyFilters() {
	m.filtered = filter.Apply(m.plays, m.criteria, m.idx, m.tags)
	m.refreshPage()
}

// refreshPage rebuilds the playlist window and status bar for the current
// page. Only the visible window gets labels resolved, keeping per-render
// work proportional to the page, not the collection.
func (m *Model) refreshPage() {
	pageCount := filter.PageCount(len(m.filtered), m.pageSize)
	if m.page > pageCount {
		m.page = pageCount
	}
	if m.page < 1 {
		m.page = 1
	}

	window := filter.Paginate(m.filtered, m.page, m.pageSize)

	labels := make(map[string][]string, len(window))
	captions := make(map[int]string)
	for _, p := range window {
		if l := m.tags.Get(p.ID); len(l) > 0 {
			labels[p.ID] = l
		}
		if _, ok := captions[p.Quarter]; !ok {
			captions[p.Quarter] = m.captions.Caption(p.Quarter)
		}
	}

	m.playlist = components.PlaylistState{
		Plays:    window,
		Teams:    m.idx.Teams,
		Labels:   labels,
		Captions: captions,
	}

	m.statusBar.TotalPlays = len(m.plays)
	m.statusBar.FilteredCount = len(m.filtered)
	m.statusBar.Page = m.page
	m.statusBar.PageCount = pageCount
	m.statusBar.ActiveFilters = m.criteria.ActiveCount()
}

// filterOptions derives the distinct picker values from the collection.
func (m *Model) filterOptions() forms.FilterOptions {
	downs := make(map[string]bool)
	personnel := make(map[string]bool)
	formations := make(map[string]bool)
	for _, p := range m.plays {
		if v := p.PlayDetails.DownAndDistance; v != "" {
			downs[v] = true
		}
		if v := p.PlayDetails.Personnel; v != "" {
			personnel[v] = true
		}
		if v := p.PlayDetails.Formation; v != "" {
			formations[v] = true
		}
	}

	opts := forms.FilterOptions{
		Teams:      m.idx.TeamNames(),
		Downs:      keys(downs),
		Personnel:  keys(personnel),
		Formations: keys(formations),
		Callers:    m.idx.CallerNames(m.plays),
		Labels:     m.tags.Vocabulary(),
	}
	sort.Strings(opts.Teams)
	sort.Strings(opts.Callers)
	return opts
}

func keys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// View renders the current state of the model as a string.
func (m *Model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	if m.err != nil {
		return styles.Warning.Render("Error: "+m.err.Error()) + "\n\nPress q to quit.\n"
	}

	if m.showHelp {
		return components.HelpOverlay(m.width, m.height)
	}

	if m.filterForm != nil {
		return m.filterForm.View()
	}
	if m.tagForm != nil {
		return m.tagForm.View()
	}

	statusBar := components.StatusBar(m.statusBar, m.width)
	searchBox := components.SearchInput(m.searchInput, m.width, m.searchMode)

	// Height left for the columns: status bar line plus three box lines
	colHeight := m.height - 4
	if colHeight < 5 {
		colHeight = 5
	}

	listWidth, detailWidth, showDetail := layout.ComputeColumnWidths(m.width)

	listBox := layout.Container{Width: listWidth, Height: colHeight}
	listContent := listBox.Render(components.Playlist(m.playlist, listWidth))

	var body string
	if showDetail {
		detail := m.renderDetail(detailWidth)
		detailBox := layout.Container{Width: detailWidth, Height: colHeight}
		body = layout.JoinColumns(
			[]string{listContent, detailBox.Render(detail)},
			[]int{listWidth, detailWidth},
			colHeight,
		)
	} else {
		body = listContent
	}

	return statusBar + "\n" + body + "\n" + searchBox
}

// renderDetail renders the detail card for the highlighted play.
func (m *Model) renderDetail(width int) string {
	selected := m.playlist.Selected()
	state := components.DetailCardState{Play: selected}
	if selected != nil {
		state.Team = m.idx.Teams[selected.ID]
		state.Caller = index.ResolveCaller(*selected, m.idx.Teams, m.idx.Callers)
		state.Labels = m.tags.Get(selected.ID)
	}
	return components.DetailCard(state, width)
}

// Run starts the Bubbletea program over a loaded collection.
func Run(plays []play.Play, idx *index.Index, tags *tagstore.Store, pageSize int) error {
	model := NewModel(plays, idx, tags, pageSize)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
