// Package init provides the init command for bbc.
package init

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/bbcode-cli/internal/cmd/cmdutil"
	"github.com/open-cli-collective/bbcode-cli/internal/config"
	"github.com/open-cli-collective/bbcode-cli/internal/view"
	"github.com/open-cli-collective/bbcode-cli/pkg/bbcode"
)

type initOptions struct {
	configPath  string
	format      string
	colorFormat string
	defaults    bool
	force       bool
	noColor     bool
	out         io.Writer

	// Replaceable for tests.
	confirm func(path string) (bool, error)
	prompt  func(cfg *config.Config) error
}

// NewCmdInit creates the init command.
func NewCmdInit() *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize bbc configuration",
		Long: `Initialize bbc with your preferred defaults.

This command asks for the default render format, the color style used
in HTML output, the parser limits and the address used by 'bbc serve'.
The configuration is saved to ~/.config/bbc/config.yml.`,
		Example: `  # Interactive setup
  bbc init

  # Pre-select the render format
  bbc init --format ansi

  # Write defaults without prompting
  bbc init --defaults --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g := cmdutil.Globals(cmd)
			opts.configPath = g.ConfigPath
			opts.noColor = g.NoColor
			opts.out = cmd.OutOrStdout()
			return runInit(opts)
		},
	}

	cmd.Flags().StringVar(&opts.format, "format", "", "Default render format")
	cmd.Flags().StringVar(&opts.colorFormat, "color-format", "", "HTML color style: hex or rgb")
	cmd.Flags().BoolVar(&opts.defaults, "defaults", false, "Write the configuration without prompting")
	cmd.Flags().BoolVar(&opts.force, "force", false, "Overwrite an existing configuration without asking")

	return cmd
}

func runInit(opts *initOptions) error {
	configPath := cmdutil.ConfigPath(opts.configPath)
	renderer := view.NewRenderer(view.FormatTable, opts.noColor)
	if opts.out != nil {
		renderer.SetWriter(opts.out)
	}

	// Check if config already exists
	if _, err := os.Stat(configPath); err == nil && !opts.force {
		if opts.defaults {
			return fmt.Errorf("configuration already exists at %s (use --force to overwrite)", configPath)
		}
		confirm := opts.confirm
		if confirm == nil {
			confirm = confirmOverwrite
		}
		overwrite, err := confirm(configPath)
		if err != nil {
			return err
		}
		if !overwrite {
			renderer.RenderText("Initialization cancelled.")
			return nil
		}
	}

	cfg := config.Default()
	if opts.format != "" {
		cfg.DefaultFormat = opts.format
	}
	if opts.colorFormat != "" {
		cfg.ColorFormat = opts.colorFormat
	}

	if !opts.defaults {
		prompt := opts.prompt
		if prompt == nil {
			prompt = runForm
		}
		if err := prompt(cfg); err != nil {
			return err
		}
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := cfg.Save(configPath); err != nil {
		return err
	}

	renderer.Success(fmt.Sprintf("Configuration saved to %s", configPath))
	renderer.RenderText("\nTry running:")
	renderer.RenderText(`  bbc render "[B]hello[/B] [#FF0000]world[/#]"`)
	renderer.RenderText(`  bbc tree "[B]hello [I]world[/I][/B]"`)

	return nil
}

func confirmOverwrite(path string) (bool, error) {
	var overwrite bool
	err := huh.NewConfirm().
		Title("Configuration already exists").
		Description(fmt.Sprintf("Overwrite %s?", path)).
		Value(&overwrite).
		Run()
	return overwrite, err
}

func runForm(cfg *config.Config) error {
	formatOptions := make([]huh.Option[string], 0, len(bbcode.Formats()))
	for _, f := range config.RenderFormats() {
		formatOptions = append(formatOptions, huh.NewOption(f, f))
	}

	maxDepth := strconv.Itoa(cfg.MaxDepth)
	maxInput := strconv.Itoa(cfg.MaxInputBytes)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Default format").
				Description("Used by 'bbc render' when --format is not given").
				Options(formatOptions...).
				Value(&cfg.DefaultFormat),

			huh.NewSelect[string]().
				Title("Color style").
				Description("How [#HEX] colors are written in HTML").
				Options(
					huh.NewOption("hex (as written, e.g. #FF0000)", string(bbcode.ColorFormatHex)),
					huh.NewOption("rgb (e.g. rgb(255, 0, 0))", string(bbcode.ColorFormatRGB)),
				).
				Value(&cfg.ColorFormat),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Maximum nesting depth").
				Description("0 disables the limit").
				Value(&maxDepth).
				Validate(validateNonNegative),

			huh.NewInput().
				Title("Maximum input size (bytes)").
				Description("0 disables the limit").
				Value(&maxInput).
				Validate(validateNonNegative),

			huh.NewInput().
				Title("Listen address").
				Description("Address used by 'bbc serve'").
				Placeholder("127.0.0.1:8080").
				Value(&cfg.Listen).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("listen address is required")
					}
					return nil
				}),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	// Validated by the form.
	cfg.MaxDepth, _ = strconv.Atoi(maxDepth)
	cfg.MaxInputBytes, _ = strconv.Atoi(maxInput)
	return nil
}

func validateNonNegative(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("must be a whole number")
	}
	if n < 0 {
		return fmt.Errorf("must not be negative")
	}
	return nil
}
