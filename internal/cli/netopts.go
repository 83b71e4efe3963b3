package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/specband/specband/pkg/graph"
	"github.com/specband/specband/pkg/pipeline"
)

// netOpts holds the network source flags shared by color, compare, and
// render. A network comes either from a JSON file (--input) or from the
// generator flags.
type netOpts struct {
	input        string
	topology     string
	nodes        int
	radius       float64
	width        float64
	height       float64
	rows         int
	cols         int
	connectivity string
	attachment   int
	seed         uint64
	refresh      bool
	noCache      bool
}

// register adds the shared network source flags to a command.
func (o *netOpts) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.input, "input", "i", "", "network JSON file (generates one when empty)")
	cmd.Flags().StringVarP(&o.topology, "topology", "t", "", "topology when generating: geometric, grid, or scalefree")
	cmd.Flags().IntVarP(&o.nodes, "nodes", "n", 0, "number of transmitters")
	cmd.Flags().Float64VarP(&o.radius, "radius", "r", 0, "interference radius (geometric)")
	cmd.Flags().Float64Var(&o.width, "width", 0, "deployment area width (geometric)")
	cmd.Flags().Float64Var(&o.height, "height", 0, "deployment area height (geometric)")
	cmd.Flags().IntVar(&o.rows, "rows", 0, "grid rows")
	cmd.Flags().IntVar(&o.cols, "cols", 0, "grid columns")
	cmd.Flags().StringVar(&o.connectivity, "connectivity", "", "grid adjacency: square or hex")
	cmd.Flags().IntVarP(&o.attachment, "attachment", "m", 0, "links per new transmitter (scalefree)")
	cmd.Flags().Uint64Var(&o.seed, "seed", 0, "random seed (0 = config default)")
	cmd.Flags().BoolVar(&o.refresh, "refresh", false, "bypass cache")
	cmd.Flags().BoolVar(&o.noCache, "no-cache", false, "disable caching")
}

// pipelineOptions converts the flags, leaving unset fields zero so config
// defaults can fill them.
func (o *netOpts) pipelineOptions() pipeline.Options {
	return pipeline.Options{
		Topology:     o.topology,
		Nodes:        o.nodes,
		Radius:       o.radius,
		Width:        o.width,
		Height:       o.height,
		Rows:         o.rows,
		Cols:         o.cols,
		Connectivity: o.connectivity,
		Attachment:   o.attachment,
		Seed:         o.seed,
		Refresh:      o.refresh,
	}
}

// loadNetwork returns the input network, generating one when no file is
// given. The bool reports whether a generated network came from the cache;
// file input always reports false.
func (c *CLI) loadNetwork(ctx context.Context, runner *pipeline.Runner, o *netOpts) (*graph.Graph, bool, error) {
	if o.input != "" {
		g, err := graph.ReadFile(o.input)
		return g, false, err
	}
	popts := o.pipelineOptions()
	c.applyConfigDefaults(&popts)
	return runner.GenerateWithCacheInfo(ctx, popts)
}
