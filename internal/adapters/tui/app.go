package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"vimwiki/internal/adapters/tui/views"
	"vimwiki/internal/application/commands"
	"vimwiki/internal/logger"
	"vimwiki/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewRanking ViewState = iota
	ViewHelp
)

// App is the main TUI application model
type App struct {
	editor ports.EditorOpener

	state   ViewState
	ranking *views.RankingModel
	help    *views.HelpModel

	width  int
	height int
}

// NewApp creates a browser of the reference ranking of one wiki.
// ed may be nil, in which case enter does nothing.
func NewApp(repo ports.WikiRepository, ed ports.EditorOpener, log *logger.Logger, wikiPath string) *App {
	load := func(ctx context.Context) (*commands.RankResult, error) {
		return commands.NewRankCommand(repo, log, wikiPath, 0).Execute(ctx)
	}
	return &App{
		editor:  ed,
		state:   ViewRanking,
		ranking: views.NewRankingModel(load),
		help:    views.NewHelpModel(),
	}
}

// Ranking returns the ranking view, e.g. to replace its clipboard
func (a *App) Ranking() *views.RankingModel {
	return a.ranking
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.ranking.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ranking.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	// View switching messages
	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToRankingMsg:
		a.state = ViewRanking
		return a, nil

	case views.OpenEditorMsg:
		a.state = ViewRanking
		return a, a.openEditor(msg.Path)

	case views.EditorFinishedMsg:
		if msg.Err != nil {
			a.ranking.SetMessage(msg.Err.Error(), true)
			return a, nil
		}
		// The page may have new links
		return a, a.ranking.Init()
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewRanking:
		_, cmd = a.ranking.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

func (a *App) openEditor(path string) tea.Cmd {
	if a.editor == nil || path == "" {
		return nil
	}

	cmd, err := a.editor.Command(path)
	if err != nil {
		return func() tea.Msg {
			return views.EditorFinishedMsg{Err: err}
		}
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return views.EditorFinishedMsg{Err: err}
	})
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewHelp:
		return a.help.View()
	default:
		return a.ranking.View()
	}
}
