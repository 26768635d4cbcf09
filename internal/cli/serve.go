package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/lidkit/pkg/catalog"
	"github.com/matzehuels/lidkit/pkg/server"
)

func (c *CLI) serveCommand() *cobra.Command {
	var addr string
	var noCatalog bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the parse, average, render and catalog API over HTTP",
		Long: `Start the HTTP API. Uploads are parsed through the same cached pipeline
as the CLI; the catalog routes are served from the configured database
unless --no-catalog is given. The server stops gracefully on SIGINT.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if addr == "" {
				addr = c.Config.Server.Addr
			}

			runner, err := c.newRunner(ctx)
			if err != nil {
				return err
			}
			defer runner.Close()

			var cat *catalog.Catalog
			if !noCatalog {
				if cat, err = c.openCatalog(); err != nil {
					return err
				}
				defer cat.Close()
			}

			srv := server.New(runner, cat, c.Logger, server.Options{
				MaxUploadBytes: int64(c.Config.Server.MaxUploadMB) << 20,
				Defaults:       c.renderDefaults(""),
			})
			printInfo("Listening on %s", StyleHighlight.Render(addr))
			return srv.ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().BoolVar(&noCatalog, "no-catalog", false, "disable the catalog routes")

	return cmd
}
