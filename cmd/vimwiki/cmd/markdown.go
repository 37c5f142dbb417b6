package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"vimwiki/internal/application/commands"
)

func newMarkdownCmd(a *app) *cobra.Command {
	var outputExtension string

	cmd := &cobra.Command{
		Use:   "2markdown [wiki-folder]",
		Short: "Convert wiki pages to markdown",
		Long: `Rewrite = headings = as # headings and {{{ }}} blocks as fences.
Each changed page is written next to its source with the output extension.

Example:
  vimwiki 2markdown ~/vimwiki/work --output-extension md`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := commands.NewConvertCommand(a.repo, a.log, a.wikiArg(args), outputExtension).Execute(context.Background())
			if err != nil {
				return err
			}

			for _, path := range res.Written {
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			}
			for _, page := range res.Skipped {
				fmt.Fprintf(cmd.ErrOrStderr(), "skipped %s: output would overwrite an existing page\n", page)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&outputExtension, "output-extension", "", "extension of the markdown files, e.g. md")
	_ = cmd.MarkFlagRequired("output-extension")

	return cmd
}
