// Package configcmd provides config management commands.
package configcmd

import (
	"github.com/spf13/cobra"
)

// envVars lists every environment variable that overrides the config file.
var envVars = []string{"BBC_FORMAT", "BBC_COLOR_FORMAT", "BBC_MAX_DEPTH", "BBC_MAX_INPUT_BYTES", "BBC_LISTEN"}

// NewCmdConfig creates the config command.
func NewCmdConfig() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage bbc configuration",
		Long:  `Commands for viewing, checking, and clearing bbc configuration.`,
	}

	cmd.AddCommand(NewCmdShow())
	cmd.AddCommand(NewCmdCheck())
	cmd.AddCommand(NewCmdClear())

	return cmd
}
