package configcmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/bbcode-cli/internal/cmd/cmdutil"
	"github.com/open-cli-collective/bbcode-cli/internal/view"
)

type clearOptions struct {
	configPath string
	noColor    bool
	out        io.Writer
}

// NewCmdClear creates the config clear command.
func NewCmdClear() *cobra.Command {
	opts := &clearOptions{}

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove stored configuration",
		Long:  `Delete the bbc configuration file. Environment variables will still be used if set.`,
		Example: `  # Clear config
  bbc config clear`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g := cmdutil.Globals(cmd)
			opts.configPath = g.ConfigPath
			opts.noColor = g.NoColor
			opts.out = cmd.OutOrStdout()
			return runClear(opts)
		},
	}

	return cmd
}

func runClear(opts *clearOptions) error {
	configPath := cmdutil.ConfigPath(opts.configPath)

	err := os.Remove(configPath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove config file: %w", err)
	}

	renderer := view.NewRenderer(view.FormatTable, opts.noColor)
	if opts.out != nil {
		renderer.SetWriter(opts.out)
	}

	if os.IsNotExist(err) {
		renderer.Success("No config file to remove")
	} else {
		renderer.Success(fmt.Sprintf("Configuration cleared from %s", configPath))
	}

	var activeVars []string
	for _, v := range envVars {
		if os.Getenv(v) != "" {
			activeVars = append(activeVars, v)
		}
	}

	if len(activeVars) > 0 {
		renderer.Dim(fmt.Sprintf("\nNote: Environment variables will still be used: %s", strings.Join(activeVars, ", ")))
	}

	return nil
}
