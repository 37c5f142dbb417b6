package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"vimwiki/internal/adapters/editor"
	"vimwiki/internal/adapters/tui"
	"vimwiki/internal/logger"
)

func newBrowseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "browse [wiki-folder]",
		Short: "Browse the reference ranking of a wiki",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// log lines would draw over the alt screen
			model := tui.NewApp(a.repo, editor.NewOpener(), logger.Discard(), a.wikiArg(args))

			p := tea.NewProgram(model, tea.WithAltScreen())
			_, err := p.Run()
			return err
		},
	}
}
