package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/specband/specband/pkg/pipeline"
	"github.com/specband/specband/pkg/report"
)

// colorCommand creates the color command.
func (c *CLI) colorCommand() *cobra.Command {
	net := netOpts{}
	var algorithm string
	var output string

	cmd := &cobra.Command{
		Use:   "color",
		Short: "Assign frequencies to an interference network",
		Long: `Assign frequencies to an interference network with a coloring heuristic.

The network comes from --input, or is generated on the fly from the
topology flags.

Examples:
  specband color -i net.json -a dsatur -o assignment.json
  specband color -t geometric -n 80 -r 18 --seed 7
  specband color -t grid --rows 6 --cols 6 -a welsh-powell`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := c.newRunner(net.noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			g, netHit, err := c.loadNetwork(cmd.Context(), runner, &net)
			if err != nil {
				return err
			}

			popts := pipeline.Options{Algorithm: algorithm, Refresh: net.refresh}
			c.applyConfigDefaults(&popts)

			p := newProgress(c.Logger)
			snapshot, hit, err := runner.ColorWithCacheInfo(cmd.Context(), g, popts)
			if err != nil {
				return err
			}
			p.done(fmt.Sprintf("Assigned %d frequencies to %d transmitters",
				snapshot.ChromaticNumber, snapshot.Nodes))

			printSuccess("Frequencies assigned")
			printKeyValue("algorithm", snapshot.Algorithm)
			printKeyValue("frequencies", fmt.Sprintf("%d", snapshot.ChromaticNumber))
			printKeyValue("conflicts", fmt.Sprintf("%d", snapshot.Conflicts))
			printKeyValue("efficiency", fmt.Sprintf("%.1f%%", report.SnapshotEfficiency(snapshot)))
			printNetworkStats(snapshot.Nodes, snapshot.Edges, netHit || hit)

			if snapshot.Conflicts > 0 {
				printError("Assignment has %d conflicting links", snapshot.Conflicts)
			}

			if output != "" {
				if err := report.WriteFile(snapshot, output); err != nil {
					return err
				}
				printFile(output)
			}
			return nil
		},
	}

	net.register(cmd)
	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "", "heuristic: greedy, welsh-powell, or dsatur")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the assignment snapshot to a JSON file")

	return cmd
}
