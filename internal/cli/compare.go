package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/specband/specband/pkg/coloring"
	"github.com/specband/specband/pkg/report"
)

// compareCommand creates the compare command.
func (c *CLI) compareCommand() *cobra.Command {
	net := netOpts{}
	var output string

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run every heuristic on one network and compare results",
		Long: `Run all coloring heuristics on the same network and compare frequency
counts, conflicts, and run time. The heuristic using the fewest
frequencies is highlighted.

Examples:
  specband compare -i net.json
  specband compare -t geometric -n 100 --seed 3 -o comparison.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := c.newRunner(net.noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			g, _, err := c.loadNetwork(cmd.Context(), runner, &net)
			if err != nil {
				return err
			}

			printInfo("Comparing heuristics on %d nodes, %d edges", g.NodeCount(), g.EdgeCount())

			snapshots := make(map[string]report.Snapshot)
			rows := make([]compareRow, 0, len(coloring.Algorithms()))
			for _, algo := range coloring.Algorithms() {
				res, err := coloring.Run(g, algo)
				if err != nil {
					return err
				}
				snapshot := report.Take(g, string(algo))
				snapshots[string(algo)] = snapshot
				rows = append(rows, compareRow{
					Algorithm:   string(algo),
					Frequencies: snapshot.ChromaticNumber,
					Conflicts:   snapshot.Conflicts,
					Efficiency:  report.SnapshotEfficiency(snapshot),
					Duration:    res.Duration.Round(time.Microsecond).String(),
				})
			}

			// Highlight the winner. Ties go to the earlier algorithm, which
			// keeps the ordering greedy < welsh-powell < dsatur stable.
			best := 0
			for i, row := range rows {
				if row.Frequencies < rows[best].Frequencies {
					best = i
				}
			}
			rows[best].Best = true

			fmt.Print(renderCompareTable(rows))

			if output != "" {
				data, err := json.MarshalIndent(snapshots, "", "  ")
				if err != nil {
					return err
				}
				if err := os.WriteFile(output, data, 0644); err != nil {
					return err
				}
				printFile(output)
			}
			return nil
		},
	}

	net.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "write all snapshots to a JSON file")

	return cmd
}
