// Package root provides the root command for the bbc CLI.
package root

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/bbcode-cli/internal/cmd/completion"
	"github.com/open-cli-collective/bbcode-cli/internal/cmd/configcmd"
	"github.com/open-cli-collective/bbcode-cli/internal/cmd/frommd"
	initcmd "github.com/open-cli-collective/bbcode-cli/internal/cmd/init"
	"github.com/open-cli-collective/bbcode-cli/internal/cmd/render"
	"github.com/open-cli-collective/bbcode-cli/internal/cmd/serve"
	"github.com/open-cli-collective/bbcode-cli/internal/cmd/tree"
	"github.com/open-cli-collective/bbcode-cli/internal/logging"
	"github.com/open-cli-collective/bbcode-cli/internal/version"
)

// NewCmdRoot creates the root command for bbc.
func NewCmdRoot() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bbc",
		Short: "Parse and render BBCode-style markup",
		Long: `bbc parses a small BBCode dialect into a node tree and renders it.

Supported tags:
  [B]bold[/B]  [U]underline[/U]  [I]italic[/I]  [S]strike[/S]
  [#FF0000]colored[/#]

Anything that is not a matched tag pair is kept as literal text.

Get started by running: bbc render "[B]hello[/B]"`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.Version,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			verbosity, _ := cmd.Flags().GetCount("verbose")
			noColor, _ := cmd.Flags().GetBool("no-color")
			logging.Setup(verbosity, cmd.ErrOrStderr(), noColor)
		},
	}

	// Global flags
	cmd.PersistentFlags().StringP("config", "c", "", "config file (default: ~/.config/bbc/config.yml)")
	cmd.PersistentFlags().StringP("output", "o", "table", "output format: table, json, plain")
	cmd.PersistentFlags().Bool("no-color", os.Getenv("NO_COLOR") != "", "disable colored output")
	cmd.PersistentFlags().CountP("verbose", "v", "increase log verbosity (-v info, -vv debug, -vvv trace)")

	// Set version template
	cmd.SetVersionTemplate("bbc version " + version.String() + "\n")

	// Subcommands
	cmd.AddCommand(render.NewCmdRender())
	cmd.AddCommand(tree.NewCmdTree())
	cmd.AddCommand(frommd.NewCmdFromMarkdown())
	cmd.AddCommand(serve.NewCmdServe())
	cmd.AddCommand(initcmd.NewCmdInit())
	cmd.AddCommand(configcmd.NewCmdConfig())
	cmd.AddCommand(completion.NewCmdCompletion())

	return cmd
}
