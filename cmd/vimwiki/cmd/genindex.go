package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"vimwiki/internal/application/commands"
	"vimwiki/internal/domain"
)

// copyToClipboard is replaced in tests
var copyToClipboard = clipboard.WriteAll

func newGenIndexCmd(a *app) *cobra.Command {
	var (
		outputType string
		extension  string
		write      bool
		bulk       bool
		copyOut    bool
		dangling   bool
	)

	cmd := &cobra.Command{
		Use:   "gen-index [wiki-folder]",
		Short: "Generate the reference index of a wiki",
		Long: `Count every [[page]] and [[page|alias]] reference in a wiki folder and
render one entry per page, most referenced first.

Examples:
  vimwiki gen-index ~/vimwiki/work
  vimwiki gen-index ~/vimwiki/work -o html
  vimwiki gen-index ~/vimwiki/work --write --extension wiki
  vimwiki gen-index ~/vimwiki --bulk --write`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if outputType == "" {
				outputType = a.cfg.OutputType
			}
			output, err := domain.ParseOutputType(outputType)
			if err != nil {
				return err
			}
			if extension == "" {
				extension = a.cfg.Extension
			}

			ctx := context.Background()
			opts := commands.IndexOptions{
				OutputType: output,
				Extension:  extension,
				Write:      write,
			}

			var results []*commands.IndexResult
			if bulk {
				res, err := commands.NewBulkGenIndexCommand(a.repo, a.log, a.wikiArg(args), opts).Execute(ctx)
				if err != nil {
					return err
				}
				results = res.Results
			} else {
				res, err := commands.NewGenIndexCommand(a.repo, a.log, a.wikiArg(args), opts).Execute(ctx)
				if err != nil {
					return err
				}
				results = []*commands.IndexResult{res}
			}

			var printed []string
			for _, r := range results {
				if dangling {
					for _, d := range r.Dangling {
						fmt.Fprintf(cmd.ErrOrStderr(), "%s: dangling %s (%d)\n", r.Wiki, d.Name, d.Count)
					}
				}
				if r.WrittenPath != "" {
					fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", r.WrittenPath)
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), r.Output)
				printed = append(printed, r.Output)
			}

			if copyOut && len(printed) > 0 {
				if err := copyToClipboard(strings.Join(printed, "\n")); err != nil {
					return fmt.Errorf("failed to copy to clipboard: %w", err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputType, "output-type", "o", "", "wiki or html (default from config)")
	cmd.Flags().StringVar(&extension, "extension", "", "extension of the written index file (default from config)")
	cmd.Flags().BoolVarP(&write, "write", "w", false, "write index.<extension> into the wiki folder")
	cmd.Flags().BoolVarP(&bulk, "bulk", "b", false, "treat the folder as a root of wikis")
	cmd.Flags().BoolVar(&copyOut, "copy", false, "copy the printed index to the clipboard")
	cmd.Flags().BoolVar(&dangling, "dangling", false, "report references to missing pages on stderr")

	return cmd
}
