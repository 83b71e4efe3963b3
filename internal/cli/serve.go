package cli

import (
	"github.com/spf13/cobra"

	"github.com/specband/specband/internal/api"
)

// serveCommand creates the serve command running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string
	var noCache bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the assignment HTTP API",
		Long: `Run the HTTP API exposing the assignment pipeline.

The API accepts POST /v1/assignments with a network recipe and returns the
computed frequency assignment. Generator defaults from the config file apply
to API requests as well.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = c.Config.Server.Addr
			}

			runner, err := c.newRunner(noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			srv := api.NewServer(runner, c.Logger, c.Config.PipelineOptions())
			return api.Serve(cmd.Context(), addr, srv.Handler(), c.Logger)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, \":8080\")")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}
