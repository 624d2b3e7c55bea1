// Package cmdutil holds helpers shared by bbc subcommands.
package cmdutil

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/bbcode-cli/api"
	"github.com/open-cli-collective/bbcode-cli/internal/config"
)

// ErrNoInput is returned when no markup was given and stdin is a terminal.
var ErrNoInput = errors.New("no input: pass text as an argument, use --file, or pipe to stdin")

// GlobalOptions are the persistent flags defined on the root command.
type GlobalOptions struct {
	ConfigPath string
	Output     string
	NoColor    bool
}

// Globals reads the persistent flags from cmd.
func Globals(cmd *cobra.Command) GlobalOptions {
	var g GlobalOptions
	g.ConfigPath, _ = cmd.Flags().GetString("config")
	g.Output, _ = cmd.Flags().GetString("output")
	g.NoColor, _ = cmd.Flags().GetBool("no-color")
	return g
}

// ConfigPath returns path, or the default config path when path is empty.
func ConfigPath(path string) string {
	if path == "" {
		return config.DefaultConfigPath()
	}
	return path
}

// LoadConfig loads and validates the effective configuration: file values
// (if the file exists) overridden by BBC_* environment variables.
func LoadConfig(path string) (*config.Config, error) {
	cfg, err := config.LoadWithEnv(ConfigPath(path))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w (run 'bbc config check' for details)", err)
	}
	return cfg, nil
}

// RemoteClient returns a client for the 'bbc serve' instance at addr once it
// has answered its health check.
func RemoteClient(ctx context.Context, addr string) (*api.Client, error) {
	client := api.NewClient(addr)
	if err := client.Health(ctx); err != nil {
		return nil, fmt.Errorf("service at %s is not available: %w", addr, err)
	}
	return client, nil
}

// ReadInput returns the input text from, in order of preference, the
// joined args, the named file, or stdin. Surrounding whitespace is trimmed.
// Stdin is only read when it is not an interactive terminal.
func ReadInput(args []string, file string, stdin io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.TrimSpace(strings.Join(args, " ")), nil
	}

	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("failed to read file: %w", err)
		}
		return strings.TrimSpace(string(data)), nil
	}

	if stdin == nil {
		return "", ErrNoInput
	}
	if f, ok := stdin.(*os.File); ok {
		stat, err := f.Stat()
		if err != nil || stat.Mode()&os.ModeCharDevice != 0 {
			return "", ErrNoInput
		}
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}
