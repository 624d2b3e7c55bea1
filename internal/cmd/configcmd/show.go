package configcmd

import (
	"errors"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/bbcode-cli/internal/cmd/cmdutil"
	"github.com/open-cli-collective/bbcode-cli/internal/config"
	"github.com/open-cli-collective/bbcode-cli/internal/view"
)

type showOptions struct {
	configPath string
	output     string
	noColor    bool
	out        io.Writer
}

// NewCmdShow creates the config show command.
func NewCmdShow() *cobra.Command {
	opts := &showOptions{}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display current configuration",
		Long:  `Display the effective bbc configuration and where each value comes from.`,
		Example: `  # Show current config
  bbc config show

  # As JSON
  bbc config show -o json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g := cmdutil.Globals(cmd)
			opts.configPath = g.ConfigPath
			opts.output = g.Output
			opts.noColor = g.NoColor
			opts.out = cmd.OutOrStdout()
			return runShow(opts)
		},
	}

	return cmd
}

// field is one row of config show output.
type field struct {
	Key    string `json:"key"`
	Value  string `json:"value"`
	Source string `json:"source"`
}

func runShow(opts *showOptions) error {
	if err := view.ValidateFormat(opts.output); err != nil {
		return err
	}

	configPath := cmdutil.ConfigPath(opts.configPath)

	// Load file config (may not exist)
	fileCfg, fileErr := config.Load(configPath)
	if fileErr != nil {
		if !errors.Is(fileErr, os.ErrNotExist) {
			return fileErr
		}
		fileCfg = nil
	}

	// Load full config with env overrides
	cfg, err := config.LoadWithEnv(configPath)
	if err != nil {
		return err
	}

	fields := []field{
		{"default_format", cfg.DefaultFormat, source(fileCfg, "BBC_FORMAT", func(c *config.Config) string { return c.DefaultFormat })},
		{"color_format", cfg.ColorFormat, source(fileCfg, "BBC_COLOR_FORMAT", func(c *config.Config) string { return c.ColorFormat })},
		{"max_depth", strconv.Itoa(cfg.MaxDepth), source(fileCfg, "BBC_MAX_DEPTH", func(c *config.Config) string { return strconv.Itoa(c.MaxDepth) })},
		{"max_input_bytes", strconv.Itoa(cfg.MaxInputBytes), source(fileCfg, "BBC_MAX_INPUT_BYTES", func(c *config.Config) string { return strconv.Itoa(c.MaxInputBytes) })},
		{"listen", cfg.Listen, source(fileCfg, "BBC_LISTEN", func(c *config.Config) string { return c.Listen })},
	}

	renderer := view.NewRenderer(view.Format(opts.output), opts.noColor)
	if opts.out != nil {
		renderer.SetWriter(opts.out)
	}

	if opts.output == "json" {
		return renderer.RenderJSON(map[string]interface{}{
			"path":   configPath,
			"exists": fileCfg != nil,
			"fields": fields,
		})
	}

	var rows [][]string
	for _, f := range fields {
		rows = append(rows, []string{f.Key, f.Value, f.Source})
	}
	renderer.RenderTable([]string{"KEY", "VALUE", "SOURCE"}, rows)

	if opts.output != "plain" {
		renderer.RenderText("")
		renderer.RenderKeyValue("Config file", configPath)
		if fileCfg == nil {
			renderer.Dim("(file not found)")
		}
	}

	return nil
}

// source reports where a value comes from: the environment variable if it
// is set, the config file if it differs from the default there, else default.
func source(fileCfg *config.Config, envVar string, get func(*config.Config) string) string {
	if os.Getenv(envVar) != "" {
		return envVar
	}
	if fileCfg != nil && get(fileCfg) != get(config.Default()) {
		return "config"
	}
	return "default"
}
