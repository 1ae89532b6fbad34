package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/whisker/pkg/cache"
	"github.com/matzehuels/whisker/pkg/server"
)

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve faces over HTTP",
		Long: `Serve starts an HTTP server that renders faces on request:

  GET /faces                     list expressions
  GET /faces/{expression}.png    PNG (cols, rows, scale, bg)
  GET /faces/{expression}.txt    half-block text (cols, rows, bg, color=never)
  GET /stats                     cache counters
  GET /healthz                   liveness`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("addr") {
				c.Config.Serve.Addr = addr
			}
			store, err := c.newStore()
			if err != nil {
				return err
			}

			srv := server.New(cache.NewSynchronized(store),
				server.WithLogger(c.Logger),
				server.WithMaxCells(c.Config.Serve.MaxCells),
			)
			printInfo(cmd.OutOrStdout(), "Serving on %s", StyleLink.Render("http://"+c.Config.Serve.Addr+"/faces"))
			return srv.ListenAndServe(cmd.Context(), c.Config.Serve.Addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, 127.0.0.1:8080)")
	return cmd
}
