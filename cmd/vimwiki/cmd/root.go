package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"vimwiki/internal/adapters/filesystem"
	"vimwiki/internal/config"
	"vimwiki/internal/logger"
	"vimwiki/internal/ports"
)

// app holds what PersistentPreRunE sets up for the subcommands
type app struct {
	configPath string
	verbose    bool

	cfg  config.Config
	log  *logger.Logger
	repo ports.WikiRepository
}

// wikiArg returns the wiki folder argument, or the configured root when absent
func (a *app) wikiArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return a.cfg.Root
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "vimwiki",
		Short: "Tools for vimwiki folders",
		Long: `vimwiki counts [[page]] references across a folder of wiki pages.

It renders the counts as an index page (wiki tag list or HTML tag cloud),
converts pages to markdown, reports page counts per wiki, answers
backlink queries and browses the reference ranking in a terminal UI.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip initialization for help commands
			if cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			var err error
			if a.configPath != "" {
				a.cfg, err = config.LoadFrom(a.configPath)
			} else {
				a.cfg, err = config.Load()
			}
			if err != nil {
				return err
			}

			level := logger.ParseLevel(a.cfg.LogLevel)
			if a.verbose {
				level = log.DebugLevel
			}
			// stdout carries only command output
			a.log = logger.NewWithLevel(cmd.ErrOrStderr(), level)
			a.repo = filesystem.NewRepository("")
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "path to the config file")
	rootCmd.PersistentFlags().BoolVar(&a.verbose, "verbose", false, "debug logging on stderr")

	rootCmd.AddCommand(
		newGenIndexCmd(a),
		newMarkdownCmd(a),
		newStatsCmd(a),
		newBacklinksCmd(a),
		newBrowseCmd(a),
		newVersionCmd(),
	)

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
