package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/specband/specband/pkg/graph"
	"github.com/specband/specband/pkg/pipeline"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	nodes        int     // node count (geometric, scalefree)
	radius       float64 // interference radius (geometric)
	width        float64 // deployment area width (geometric)
	height       float64 // deployment area height (geometric)
	rows         int     // grid rows
	cols         int     // grid columns
	connectivity string  // grid adjacency: square or hex
	attachment   int     // links per new node (scalefree)
	seed         uint64  // random seed
	refresh      bool    // bypass cache
	noCache      bool    // disable cache entirely
	output       string  // output file path (stdout if empty)
}

// pipelineOptions converts the flags for the given topology, leaving unset
// fields zero so config defaults can fill them.
func (o *generateOpts) pipelineOptions(topology string) pipeline.Options {
	return pipeline.Options{
		Topology:     topology,
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

// generateCommand creates the generate command with topology subcommands.
func (c *CLI) generateCommand() *cobra.Command {
	opts := generateOpts{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a synthetic interference network",
		Long: `Generate a synthetic interference network and write it as JSON.

Topologies:
  geometric  Transmitters scattered uniformly in an area; links within radius
  grid       Cellular grid with square or hex adjacency
  scalefree  Preferential attachment, a few towers carry most interference

Examples:
  specband generate geometric --nodes 80 --radius 18 -o net.json
  specband generate grid --rows 6 --cols 6 --connectivity hex
  specband generate scalefree --nodes 100 --attachment 3 --seed 7`,
	}

	cmd.PersistentFlags().Uint64Var(&opts.seed, "seed", 0, "random seed (0 = config default)")
	cmd.PersistentFlags().BoolVar(&opts.refresh, "refresh", false, "bypass cache")
	cmd.PersistentFlags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.PersistentFlags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")

	geometric := &cobra.Command{
		Use:   "geometric",
		Short: "Generate a random geometric network",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd, &opts, pipeline.TopologyGeometric)
		},
	}
	geometric.Flags().IntVarP(&opts.nodes, "nodes", "n", 0, "number of transmitters")
	geometric.Flags().Float64VarP(&opts.radius, "radius", "r", 0, "interference radius")
	geometric.Flags().Float64Var(&opts.width, "width", 0, "deployment area width")
	geometric.Flags().Float64Var(&opts.height, "height", 0, "deployment area height")

	grid := &cobra.Command{
		Use:   "grid",
		Short: "Generate a cellular grid network",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd, &opts, pipeline.TopologyGrid)
		},
	}
	grid.Flags().IntVar(&opts.rows, "rows", 0, "grid rows")
	grid.Flags().IntVar(&opts.cols, "cols", 0, "grid columns")
	grid.Flags().StringVar(&opts.connectivity, "connectivity", "", "cell adjacency: square or hex")

	scalefree := &cobra.Command{
		Use:   "scalefree",
		Short: "Generate a scale-free network",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd, &opts, pipeline.TopologyScaleFree)
		},
	}
	scalefree.Flags().IntVarP(&opts.nodes, "nodes", "n", 0, "number of transmitters")
	scalefree.Flags().IntVarP(&opts.attachment, "attachment", "m", 0, "links per new transmitter")

	cmd.AddCommand(geometric)
	cmd.AddCommand(grid)
	cmd.AddCommand(scalefree)

	return cmd
}

// runGenerate executes network generation and writes the result.
func (c *CLI) runGenerate(cmd *cobra.Command, opts *generateOpts, topology string) error {
	popts := opts.pipelineOptions(topology)
	c.applyConfigDefaults(&popts)

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	p := newProgress(c.Logger)
	g, hit, err := runner.GenerateWithCacheInfo(cmd.Context(), popts)
	if err != nil {
		return err
	}
	p.done(fmt.Sprintf("Generated %s network with %d nodes", topology, g.NodeCount()))

	if opts.output == "" {
		return graph.Write(g, cmd.OutOrStdout())
	}
	if err := graph.WriteFile(g, opts.output); err != nil {
		return err
	}

	printSuccess("Network written")
	printFile(opts.output)
	printNetworkStats(g.NodeCount(), g.EdgeCount(), hit)
	printNextStep("Assign frequencies", fmt.Sprintf("specband color -i %s", opts.output))
	return nil
}
