// Package frommd provides the from-markdown command.
package frommd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/bbcode-cli/internal/cmd/cmdutil"
	"github.com/open-cli-collective/bbcode-cli/pkg/bbcode"
)

type fromMarkdownOptions struct {
	file   string
	remote string
	stdin  io.Reader
	out    io.Writer
}

// NewCmdFromMarkdown creates the from-markdown command.
func NewCmdFromMarkdown() *cobra.Command {
	opts := &fromMarkdownOptions{}

	cmd := &cobra.Command{
		Use:   "from-markdown [text]",
		Short: "Convert Markdown to BBCode",
		Long: `Convert Markdown to BBCode.

Strong emphasis becomes [B], emphasis becomes [I] and strikethrough
becomes [S]. Each block is written on its own line; other formatting
is reduced to its text.`,
		Example: `  bbc from-markdown "**bold** and _italic_"
  bbc from-markdown --file README.md

  # Convert with a running 'bbc serve'
  bbc from-markdown --remote localhost:8080 "~~gone~~"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.stdin = cmd.InOrStdin()
			opts.out = cmd.OutOrStdout()
			return runFromMarkdown(cmd.Context(), args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.file, "file", "", "Read Markdown from file")
	cmd.Flags().StringVar(&opts.remote, "remote", "", "Convert with the 'bbc serve' instance at this address")

	return cmd
}

func runFromMarkdown(ctx context.Context, args []string, opts *fromMarkdownOptions) error {
	stdin := opts.stdin
	if stdin == nil {
		stdin = os.Stdin
	}
	src, err := cmdutil.ReadInput(args, opts.file, stdin)
	if err != nil {
		return err
	}

	var markup string
	if opts.remote != "" {
		markup, err = convertRemote(ctx, opts.remote, src)
	} else {
		markup, err = convertLocal(src)
	}
	if err != nil {
		return err
	}

	out := opts.out
	if out == nil {
		out = os.Stdout
	}
	_, err = fmt.Fprintln(out, markup)
	return err
}

func convertLocal(src string) (string, error) {
	markup, err := bbcode.FromMarkdown([]byte(src))
	if err != nil {
		return "", fmt.Errorf("failed to convert markdown: %w", err)
	}
	return markup, nil
}

func convertRemote(ctx context.Context, addr, src string) (string, error) {
	client, err := cmdutil.RemoteClient(ctx, addr)
	if err != nil {
		return "", err
	}
	markup, err := client.FromMarkdown(ctx, src)
	if err != nil {
		return "", fmt.Errorf("remote conversion failed: %w", err)
	}
	return markup, nil
}
