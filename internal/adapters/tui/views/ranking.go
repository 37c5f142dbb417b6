package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"vimwiki/internal/adapters/tui/styles"
	"vimwiki/internal/application/commands"
	"vimwiki/internal/domain"
)

// RankingKeyMap defines key bindings for the ranking view
type RankingKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextPage key.Binding
	PrevPage key.Binding
	Filter   key.Binding
	Copy     key.Binding
	Open     key.Binding
	Clear    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

var RankingKeys = RankingKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("n", "right", "pgdown"),
		key.WithHelp("n/→", "next page"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("p", "left", "pgup"),
		key.WithHelp("p/←", "prev page"),
	),
	Filter: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "filter"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy link"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "edit"),
	),
	Clear: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "clear filter"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// RankLoader produces the ranking shown by the view
type RankLoader func(ctx context.Context) (*commands.RankResult, error)

// RankingModel lists the pages of a wiki, most referenced first
type RankingModel struct {
	ViewState

	load RankLoader
	copy func(string) error

	result   *commands.RankResult
	visible  []domain.IndexEntry
	maxCount int

	pager     *Paginator
	filter    textinput.Model
	filtering bool
}

// NewRankingModel creates a new ranking view model
func NewRankingModel(load RankLoader) *RankingModel {
	input := textinput.New()
	input.Placeholder = "filter pages..."
	input.Prompt = "/ "

	return &RankingModel{
		load:   load,
		copy:   clipboard.WriteAll,
		pager:  NewPaginator(20),
		filter: input,
	}
}

// SetClipboard replaces the clipboard writer
func (m *RankingModel) SetClipboard(fn func(string) error) {
	m.copy = fn
}

// Init loads the ranking
func (m *RankingModel) Init() tea.Cmd {
	return m.loadRanking
}

func (m *RankingModel) loadRanking() tea.Msg {
	result, err := m.load(context.Background())
	if err != nil {
		return errMsg{err}
	}
	return rankingLoadedMsg{result}
}

type rankingLoadedMsg struct {
	result *commands.RankResult
}

type errMsg struct {
	err error
}

// Update handles messages for the ranking view
func (m *RankingModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case rankingLoadedMsg:
		m.result = msg.result
		m.maxCount = 0
		if len(msg.result.Entries) > 0 {
			m.maxCount = msg.result.Entries[0].Count
		}
		m.applyFilter()
		return m, nil

	case errMsg:
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case tea.KeyMsg:
		if m.filtering {
			return m.updateFilter(msg)
		}
		m.ClearMessage()

		switch {
		case key.Matches(msg, RankingKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, RankingKeys.Up):
			m.pager.CursorUp()
			return m, nil

		case key.Matches(msg, RankingKeys.Down):
			m.pager.CursorDown()
			return m, nil

		case key.Matches(msg, RankingKeys.NextPage):
			m.pager.NextPage()
			return m, nil

		case key.Matches(msg, RankingKeys.PrevPage):
			m.pager.PrevPage()
			return m, nil

		case key.Matches(msg, RankingKeys.Filter):
			m.filtering = true
			return m, m.filter.Focus()

		case key.Matches(msg, RankingKeys.Clear):
			if m.filter.Value() != "" {
				m.filter.SetValue("")
				m.applyFilter()
			}
			return m, nil

		case key.Matches(msg, RankingKeys.Copy):
			if entry, ok := m.Selected(); ok {
				token := domain.LinkToken(entry.Name)
				if err := m.copy(token); err != nil {
					m.SetMessage(fmt.Sprintf("clipboard: %v", err), true)
				} else {
					m.SetMessage("Copied "+token, false)
				}
			}
			return m, nil

		case key.Matches(msg, RankingKeys.Open):
			if entry, ok := m.Selected(); ok {
				path := m.result.Paths[entry.Name]
				return m, func() tea.Msg {
					return OpenEditorMsg{Path: path}
				}
			}
			return m, nil

		case key.Matches(msg, RankingKeys.Help):
			return m, func() tea.Msg {
				return SwitchToHelpMsg{}
			}
		}
	}

	return m, nil
}

// updateFilter routes keys to the filter input while it has focus
func (m *RankingModel) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.filtering = false
		m.filter.Blur()
		m.filter.SetValue("")
		m.applyFilter()
		return m, nil
	case tea.KeyEnter:
		m.filtering = false
		m.filter.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.applyFilter()
	return m, cmd
}

// applyFilter keeps the entries whose name contains the filter text
func (m *RankingModel) applyFilter() {
	if m.result == nil {
		return
	}

	query := strings.ToLower(strings.TrimSpace(m.filter.Value()))
	if query == "" {
		m.visible = m.result.Entries
	} else {
		m.visible = nil
		for _, e := range m.result.Entries {
			if strings.Contains(strings.ToLower(e.Name), query) {
				m.visible = append(m.visible, e)
			}
		}
	}

	m.pager.Reset()
	m.pager.SetTotal(len(m.visible))
}

// Selected returns the entry under the cursor
func (m *RankingModel) Selected() (domain.IndexEntry, bool) {
	i := m.pager.Cursor()
	if i >= 0 && i < len(m.visible) {
		return m.visible[i], true
	}
	return domain.IndexEntry{}, false
}

// Visible returns the entries that pass the filter
func (m *RankingModel) Visible() []domain.IndexEntry {
	return m.visible
}

// SetSize updates the view dimensions and fits the page to the height
func (m *RankingModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	// title, filter, status and help lines
	m.pager.SetPageSize(max(height-12, 5))
}

// View renders the ranking
func (m *RankingModel) View() string {
	if m.result == nil {
		if m.MessageErr {
			return styles.App.Render(styles.ErrorMsg.Render(m.Message))
		}
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(styles.Title.Render("vimwiki: " + m.result.Wiki))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render(m.result.WikiPath))
	b.WriteString("\n\n")

	if m.filtering || m.filter.Value() != "" {
		b.WriteString(styles.InputFocused.Render(m.filter.View()))
		b.WriteString("\n")
	}

	if len(m.visible) == 0 {
		b.WriteString(styles.MutedText.Render("No pages"))
		b.WriteString("\n")
	}

	width := countWidth(m.maxCount)
	start, end := m.pager.VisibleRange()
	for i := start; i < end; i++ {
		b.WriteString(m.renderRow(i, width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.StatusBar.Render(fmt.Sprintf("page %d/%d  %d of %d pages",
		m.pager.CurrentPage(), m.pager.TotalPages(), len(m.visible), m.result.Total)))
	b.WriteString("\n")

	if m.Message != "" {
		if m.MessageErr {
			b.WriteString(styles.ErrorMsg.Render(m.Message))
		} else {
			b.WriteString(styles.Success.Render(m.Message))
		}
		b.WriteString("\n")
	}

	b.WriteString(m.renderHelpLine())

	return styles.App.Render(b.String())
}

func (m *RankingModel) renderRow(i, width int) string {
	entry := m.visible[i]
	count := fmt.Sprintf("%*d", width, entry.Count)

	if i == m.pager.Cursor() {
		return styles.Selected.Render(fmt.Sprintf("%s  %s", count, entry.Name))
	}

	countStyle := styles.PageCount.Foreground(styles.HeatColor(entry.Count, m.maxCount))
	name := highlight(entry.Name, m.filter.Value())
	if entry.Count == 0 {
		countStyle = styles.Unreferenced
		name = styles.Unreferenced.Render(entry.Name)
	}
	return fmt.Sprintf("%s  %s", countStyle.Render(count), name)
}

// highlight marks the first case-insensitive occurrence of query in name
func highlight(name, query string) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return styles.PageName.Render(name)
	}
	i := strings.Index(strings.ToLower(name), strings.ToLower(query))
	if i < 0 {
		return styles.PageName.Render(name)
	}
	j := i + len(query)
	return lipgloss.JoinHorizontal(lipgloss.Top,
		styles.PageName.Render(name[:i]),
		styles.FilterMatch.Render(name[i:j]),
		styles.PageName.Render(name[j:]),
	)
}

func countWidth(maxCount int) int {
	return len(fmt.Sprint(maxCount))
}

func (m *RankingModel) renderHelpLine() string {
	keys := []key.Binding{
		RankingKeys.Down,
		RankingKeys.NextPage,
		RankingKeys.Filter,
		RankingKeys.Copy,
		RankingKeys.Open,
		RankingKeys.Help,
		RankingKeys.Quit,
	}

	var parts []string
	for _, k := range keys {
		h := k.Help()
		parts = append(parts, fmt.Sprintf("%s %s",
			styles.HelpKey.Render(h.Key),
			styles.HelpDesc.Render(h.Desc),
		))
	}

	return strings.Join(parts, styles.HelpSeparator.String())
}
