// Package render provides the render command.
package render

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/bbcode-cli/api"
	"github.com/open-cli-collective/bbcode-cli/internal/cmd/cmdutil"
	"github.com/open-cli-collective/bbcode-cli/internal/config"
	"github.com/open-cli-collective/bbcode-cli/internal/logging"
	"github.com/open-cli-collective/bbcode-cli/pkg/bbcode"
)

type renderOptions struct {
	file        string
	format      string
	colorFormat string
	remote      string
	configPath  string
	noColor     bool
	stdin       io.Reader
	out         io.Writer
}

// NewCmdRender creates the render command.
func NewCmdRender() *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render [text]",
		Short: "Render BBCode markup",
		Long: `Parse BBCode markup and render it in another format.

Supported tags are [B], [U], [I], [S] and [#RRGGBB] (closed by [/#]).
Unmatched or malformed tags are kept as literal text.

Input is taken from the arguments, from --file, or from stdin.

Formats:
  html      HTML fragment (default)
  ansi      styled terminal text
  text      plain text with tags stripped
  bbcode    normalized BBCode
  markdown  Markdown
  adf       Atlassian Document Format JSON`,
		Example: `  # Render to HTML
  bbc render "[B]bold[/B] and [#FF0000]red[/#]"

  # Render to the terminal
  bbc render --format ansi "[I]hello[/I]"

  # CSS rgb() colors
  bbc render --color-format rgb "[#F00]red[/#]"

  # From a file or stdin
  bbc render --file post.txt
  echo "[S]old[/S]" | bbc render -f markdown

  # Render with a running 'bbc serve'
  bbc render --remote localhost:8080 "[U]remote[/U]"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			g := cmdutil.Globals(cmd)
			opts.configPath = g.ConfigPath
			opts.noColor = g.NoColor
			opts.stdin = cmd.InOrStdin()
			opts.out = cmd.OutOrStdout()
			return runRender(cmd.Context(), args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.file, "file", "", "Read markup from file")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "Output format: html, ansi, text, bbcode, markdown, adf (default from config)")
	cmd.Flags().StringVar(&opts.colorFormat, "color-format", "", "HTML color style: hex or rgb (default from config)")
	cmd.Flags().StringVar(&opts.remote, "remote", "", "Render with the 'bbc serve' instance at this address")

	return cmd
}

func runRender(ctx context.Context, args []string, opts *renderOptions) error {
	cfg, err := cmdutil.LoadConfig(opts.configPath)
	if err != nil {
		return err
	}

	format := opts.format
	if format == "" {
		format = cfg.DefaultFormat
	}
	if err := config.ValidateRenderFormat(format); err != nil {
		return err
	}

	colorFormat := opts.colorFormat
	if colorFormat == "" {
		colorFormat = cfg.ColorFormat
	}
	if err := bbcode.ValidateColorFormat(colorFormat); err != nil {
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

	log := logging.Get("render")
	log.Debug().Str("format", format).Int("bytes", len(text)).Str("remote", opts.remote).Msg("Rendering input")
	defer logging.LogOperationStart(log, "render")()

	var result string
	if opts.remote != "" {
		result, err = renderRemote(ctx, opts.remote, text, format, colorFormat)
	} else {
		result, err = renderLocal(text, cfg, format, colorFormat, opts.noColor)
	}
	if err != nil {
		return err
	}

	out := opts.out
	if out == nil {
		out = os.Stdout
	}
	_, err = fmt.Fprintln(out, result)
	return err
}

func renderLocal(text string, cfg *config.Config, format, colorFormat string, noColor bool) (string, error) {
	doc, err := bbcode.ParseWithOptions(text, cfg.ParseOptions())
	if err != nil {
		return "", fmt.Errorf("failed to parse input: %w", err)
	}

	result, err := bbcode.Render(doc, bbcode.Format(format), bbcode.RenderOptions{
		HTML:    bbcode.HTMLOptions{ColorFormat: bbcode.ColorFormat(colorFormat)},
		NoColor: noColor,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render %s: %w", format, err)
	}
	return result, nil
}

func renderRemote(ctx context.Context, addr, text, format, colorFormat string) (string, error) {
	if format == string(bbcode.FormatANSI) {
		return "", fmt.Errorf("format %s cannot be rendered remotely", format)
	}

	client, err := cmdutil.RemoteClient(ctx, addr)
	if err != nil {
		return "", err
	}
	result, err := client.Render(ctx, text, api.RenderOptions{
		Format:      bbcode.Format(format),
		ColorFormat: bbcode.ColorFormat(colorFormat),
	})
	if err != nil {
		return "", fmt.Errorf("remote render failed: %w", err)
	}
	return result, nil
}
