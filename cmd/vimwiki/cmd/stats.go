package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"vimwiki/internal/application/commands"
)

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats [root-folder]",
		Short: "Count the pages of every wiki under a root",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := commands.NewStatsCommand(a.repo, a.log, a.wikiArg(args)).Execute(context.Background())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), res.Output)
			return nil
		},
	}
}
