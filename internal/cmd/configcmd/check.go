package configcmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/bbcode-cli/internal/cmd/cmdutil"
	"github.com/open-cli-collective/bbcode-cli/internal/config"
	"github.com/open-cli-collective/bbcode-cli/internal/view"
	"github.com/open-cli-collective/bbcode-cli/pkg/bbcode"
)

// sampleMarkup is parsed with the configured limits to confirm they admit
// ordinary nested markup.
const sampleMarkup = "[B]bold [I]italic[/I][/B]"

type checkOptions struct {
	configPath string
	noColor    bool
	out        io.Writer
}

// NewCmdCheck creates the config check command.
func NewCmdCheck() *cobra.Command {
	opts := &checkOptions{}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the current configuration",
		Long: `Load the configuration file and environment overrides, validate every
value, and parse a sample document with the configured limits.`,
		Example: `  # Check config
  bbc config check`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g := cmdutil.Globals(cmd)
			opts.configPath = g.ConfigPath
			opts.noColor = g.NoColor
			opts.out = cmd.OutOrStdout()
			return runCheck(opts)
		},
	}

	return cmd
}

func runCheck(opts *checkOptions) error {
	configPath := cmdutil.ConfigPath(opts.configPath)
	renderer := view.NewRenderer(view.FormatTable, opts.noColor)
	if opts.out != nil {
		renderer.SetWriter(opts.out)
	}

	cfg, err := config.LoadWithEnv(configPath)
	if err != nil {
		renderer.Error(fmt.Sprintf("Failed to load %s: %v", configPath, err))
		return fmt.Errorf("config check failed: %w", err)
	}
	renderer.Success("Configuration loaded")

	if err := cfg.Validate(); err != nil {
		renderer.Error(fmt.Sprintf("Invalid value: %v", err))
		renderer.RenderText("\nReconfigure with: bbc init")
		return fmt.Errorf("config check failed: %w", err)
	}
	renderer.Success("All values valid")

	if _, err := bbcode.ParseWithOptions(sampleMarkup, cfg.ParseOptions()); err != nil {
		renderer.Error(fmt.Sprintf("Limits reject nested markup: %v", err))
		return fmt.Errorf("config check failed: %w", err)
	}
	renderer.Success(fmt.Sprintf("Parser limits OK (max depth %d, max input %d bytes)", cfg.MaxDepth, cfg.MaxInputBytes))

	return nil
}
