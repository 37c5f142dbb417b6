package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"vimwiki/internal/adapters/sqlite"
	"vimwiki/internal/application/commands"
)

func newBacklinksCmd(a *app) *cobra.Command {
	var (
		outgoing bool
		dangling bool
	)

	cmd := &cobra.Command{
		Use:   "backlinks <wiki-folder> <page>",
		Short: "List the pages linking to a page",
		Long: `Rebuild the SQLite link index of a wiki and list the pages that
reference <page>, with the number of links each one holds.

Examples:
  vimwiki backlinks ~/vimwiki/work linux
  vimwiki backlinks ~/vimwiki/work linux --outgoing
  vimwiki backlinks ~/vimwiki/work linux --dangling`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := commands.NewBacklinksCommand(a.repo, sqlite.NewIndex(), a.log, args[0], args[1]).Execute(context.Background())
			if err != nil {
				return err
			}

			if !res.Exists {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s has no page file\n", res.Page)
			}
			for _, b := range res.Backlinks {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %d\n", b.Source, b.LinkText, b.Count)
			}
			if outgoing {
				for _, e := range res.Outlinks {
					fmt.Fprintf(cmd.OutOrStdout(), "-> %s  %s\n", e.Target, e.LinkText)
				}
			}
			if dangling {
				for _, d := range res.Dangling {
					fmt.Fprintf(cmd.ErrOrStderr(), "dangling %s (%d)\n", d.Name, d.Count)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&outgoing, "outgoing", false, "also list the links written in <page>")
	cmd.Flags().BoolVar(&dangling, "dangling", false, "report references to missing pages on stderr")

	return cmd
}
