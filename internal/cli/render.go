package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/specband/specband/pkg/pipeline"
	"github.com/specband/specband/pkg/report"
)

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	net := netOpts{}
	var algorithm string
	var format string
	var output string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render an assigned network as DOT or SVG",
		Long: `Assign frequencies to a network and render the result as a Graphviz
picture. Nodes are filled by assigned frequency.

Examples:
  specband render -i net.json -a dsatur -o net.svg
  specband render -t grid --rows 5 --cols 5 --format dot
  specband render -t geometric -n 60 --format svg -o net.svg`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "dot" && format != "svg" {
				return fmt.Errorf("invalid format: %q (must be dot or svg)", format)
			}
			if format == "svg" && output == "" {
				return fmt.Errorf("svg output requires --output")
			}

			runner, err := c.newRunner(net.noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			g, _, err := c.loadNetwork(cmd.Context(), runner, &net)
			if err != nil {
				return err
			}

			popts := pipeline.Options{Algorithm: algorithm, Refresh: net.refresh}
			c.applyConfigDefaults(&popts)

			snapshot, _, err := runner.ColorWithCacheInfo(cmd.Context(), g, popts)
			if err != nil {
				return err
			}

			dot := report.ToDOT(g)

			if format == "dot" {
				if output == "" {
					fmt.Fprint(cmd.OutOrStdout(), dot)
					return nil
				}
				if err := os.WriteFile(output, []byte(dot), 0644); err != nil {
					return err
				}
			} else {
				p := newProgress(c.Logger)
				svg, err := report.RenderSVG(dot)
				if err != nil {
					return err
				}
				if err := os.WriteFile(output, svg, 0644); err != nil {
					return err
				}
				p.done("Rendered SVG")
			}

			printSuccess("Rendered %d transmitters on %d frequencies",
				snapshot.Nodes, snapshot.ChromaticNumber)
			printFile(output)
			return nil
		},
	}

	net.register(cmd)
	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "", "heuristic: greedy, welsh-powell, or dsatur")
	cmd.Flags().StringVarP(&format, "format", "f", "svg", "output format: dot or svg")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout for dot)")

	return cmd
}
