// Package completion provides shell completion generation commands.
package completion

import (
	"io"

	"github.com/spf13/cobra"
)

// shell describes one completion subcommand.
type shell struct {
	name    string
	title   string
	install string
	gen     func(root *cobra.Command, w io.Writer) error
}

var shells = []shell{
	{
		name:  "bash",
		title: "bash",
		install: `  # Load in current session
  source <(bbc completion bash)

  # Install permanently (Linux)
  bbc completion bash | sudo tee /etc/bash_completion.d/bbc > /dev/null

  # Install permanently (macOS with Homebrew)
  bbc completion bash > $(brew --prefix)/etc/bash_completion.d/bbc`,
		gen: func(root *cobra.Command, w io.Writer) error {
			return root.GenBashCompletion(w)
		},
	},
	{
		name:  "zsh",
		title: "zsh",
		install: `  # Load in current session
  source <(bbc completion zsh)

  # Install permanently (requires compinit in ~/.zshrc)
  mkdir -p ~/.zsh/completions
  bbc completion zsh > ~/.zsh/completions/_bbc
  # then add fpath=(~/.zsh/completions $fpath) to ~/.zshrc`,
		gen: func(root *cobra.Command, w io.Writer) error {
			return root.GenZshCompletion(w)
		},
	},
	{
		name:  "fish",
		title: "fish",
		install: `  # Load in current session
  bbc completion fish | source

  # Install permanently
  bbc completion fish > ~/.config/fish/completions/bbc.fish`,
		gen: func(root *cobra.Command, w io.Writer) error {
			return root.GenFishCompletion(w, true)
		},
	},
	{
		name:  "powershell",
		title: "PowerShell",
		install: `  # Load in current session
  bbc completion powershell | Out-String | Invoke-Expression

  # Install permanently: add the line above to your $PROFILE`,
		gen: func(root *cobra.Command, w io.Writer) error {
			return root.GenPowerShellCompletionWithDesc(w)
		},
	},
}

// NewCmdCompletion creates the completion command.
func NewCmdCompletion() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for bbc.

These scripts enable tab-completion for commands and flags.
See each sub-command's help for installation instructions.`,
	}

	for _, s := range shells {
		cmd.AddCommand(newShellCmd(s))
	}

	return cmd
}

func newShellCmd(s shell) *cobra.Command {
	return &cobra.Command{
		Use:                   s.name,
		Short:                 "Generate " + s.title + " completion script",
		Long:                  "Generate " + s.title + " completion script for bbc.",
		Example:               s.install,
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return s.gen(cmd.Root(), cmd.OutOrStdout())
		},
	}
}
