// Package tree provides the tree command, which shows the parsed node tree.
package tree

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/bbcode-cli/internal/cmd/cmdutil"
	"github.com/open-cli-collective/bbcode-cli/internal/view"
	"github.com/open-cli-collective/bbcode-cli/pkg/bbcode"
)

// maxTextWidth bounds the TEXT column of table output, in runes.
const maxTextWidth = 60

type treeOptions struct {
	file       string
	remote     string
	configPath string
	output     string
	noColor    bool
	stdin      io.Reader
	out        io.Writer
}

// NewCmdTree creates the tree command.
func NewCmdTree() *cobra.Command {
	opts := &treeOptions{}

	cmd := &cobra.Command{
		Use:   "tree [text]",
		Short: "Show the parsed node tree",
		Long: `Parse BBCode markup and print one row per node in document order.

Text nodes show their (quoted) content; tag nodes show their kind and the
text they contain. Empty text nodes are listed too: every tag boundary
produces one.`,
		Example: `  # Show the tree as a table
  bbc tree "[B]bold [I]both[/I][/B]"

  # As JSON
  bbc tree -o json "[#00FF00]green[/#]"

  # Parse with a running 'bbc serve'
  bbc tree --remote localhost:8080 "[S]gone[/S]"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			g := cmdutil.Globals(cmd)
			opts.configPath = g.ConfigPath
			opts.output = g.Output
			opts.noColor = g.NoColor
			opts.stdin = cmd.InOrStdin()
			opts.out = cmd.OutOrStdout()
			return runTree(cmd.Context(), args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.file, "file", "", "Read markup from file")
	cmd.Flags().StringVar(&opts.remote, "remote", "", "Parse with the 'bbc serve' instance at this address")

	return cmd
}

func runTree(ctx context.Context, args []string, opts *treeOptions) error {
	if err := view.ValidateFormat(opts.output); err != nil {
		return err
	}

	cfg, err := cmdutil.LoadConfig(opts.configPath)
	if err != nil {
		return err
	}

	stdin := opts.stdin
	if stdin == nil {
		stdin = os.Stdin
	}
	text, err := cmdutil.ReadInput(args, opts.file, stdin)
	if err != nil {
		return err
	}

	var entries []bbcode.Entry
	if opts.remote != "" {
		entries, err = treeRemote(ctx, opts.remote, text)
	} else {
		entries, err = treeLocal(text, cfg.ParseOptions())
	}
	if err != nil {
		return err
	}

	renderer := view.NewRenderer(view.Format(opts.output), opts.noColor)
	if opts.out != nil {
		renderer.SetWriter(opts.out)
	}

	if opts.output == "json" {
		return renderer.RenderJSON(entries)
	}

	headers := []string{"DEPTH", "NODE", "KIND", "TEXT"}
	var rows [][]string
	for _, e := range entries {
		node, content := e.Type, e.Text
		if opts.output != "plain" {
			node = strings.Repeat("  ", e.Depth) + node
			content = view.Truncate(content, maxTextWidth)
		}
		rows = append(rows, []string{
			strconv.Itoa(e.Depth),
			node,
			e.Kind,
			view.Quote(content),
		})
	}

	renderer.RenderTable(headers, rows)
	return nil
}

func treeLocal(text string, opts bbcode.Options) ([]bbcode.Entry, error) {
	doc, err := bbcode.ParseWithOptions(text, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to parse input: %w", err)
	}
	return bbcode.Flatten(doc), nil
}

func treeRemote(ctx context.Context, addr, text string) ([]bbcode.Entry, error) {
	client, err := cmdutil.RemoteClient(ctx, addr)
	if err != nil {
		return nil, err
	}
	entries, err := client.Tree(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("remote parse failed: %w", err)
	}
	return entries, nil
}
