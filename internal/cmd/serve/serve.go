// Package serve provides the serve command.
package serve

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/bbcode-cli/internal/cmd/cmdutil"
	"github.com/open-cli-collective/bbcode-cli/internal/logging"
	"github.com/open-cli-collective/bbcode-cli/internal/server"
)

type serveOptions struct {
	listen     string
	configPath string
}

// NewCmdServe creates the serve command.
func NewCmdServe() *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the renderers over HTTP",
		Long: `Start an HTTP server that renders BBCode.

Endpoints:
  GET  /health                     liveness check
  POST /render?format=<format>     body is BBCode; format is html, text,
                                   bbcode, markdown, adf or json (node tree)
  POST /from-markdown              body is Markdown; returns BBCode

Oversized bodies get 413 and over-nested markup gets 422.`,
		Example: `  bbc serve
  bbc serve --listen :9000
  curl -d '[B]hi[/B]' 'localhost:8080/render?format=html'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.configPath = cmdutil.Globals(cmd).ConfigPath
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, opts)
		},
	}

	cmd.Flags().StringVar(&opts.listen, "listen", "", "Address to listen on (default from config, 127.0.0.1:8080)")

	return cmd
}

func runServe(ctx context.Context, opts *serveOptions) error {
	cfg, err := cmdutil.LoadConfig(opts.configPath)
	if err != nil {
		return err
	}

	addr := opts.listen
	if addr == "" {
		addr = cfg.Listen
	}

	srv := server.New(cfg, logging.Get("server"))
	return srv.ListenAndServe(ctx, addr)
}
