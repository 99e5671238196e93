package main

import (
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/iwvelando/saas-metrics/internal/graph"
	"github.com/iwvelando/saas-metrics/pkg/constants"
)

var graphCmd = &cobra.Command{
	Use:   "graph <metric-id>",
	Short: "Query the metric relationship graph",
	Long: "Prints the direct connections of a metric, its focus-mode neighborhood, or\n" +
		"its full upstream/downstream paths. Metric ids use the dashed form shown in\n" +
		"the dashboard, e.g. ltv-cac-ratio or net-new-arr.",
	Args: cobra.ExactArgs(1),
	RunE: runGraph,
}

func init() {
	f := graphCmd.Flags()
	f.Bool("focus", false, "show the two-degree focus neighborhood")
	f.Bool("upstream", false, "show the full upstream path")
	f.Bool("downstream", false, "show the full downstream path")
	f.Int("depth", constants.DefaultTraversalDepth, "traversal depth for path queries")

	rootCmd.AddCommand(graphCmd)
}

func runGraph(cmd *cobra.Command, args []string) error {
	id := args[0]
	if !graph.Contains(id) {
		return eris.Errorf("graph: unknown metric id %q", id)
	}

	depth, _ := cmd.Flags().GetInt("depth")
	focus, _ := cmd.Flags().GetBool("focus")
	upstream, _ := cmd.Flags().GetBool("upstream")
	downstream, _ := cmd.Flags().GetBool("downstream")

	fmt.Printf("%s (tier: %s)\n", id, graph.Tier(id))

	direct := graph.DirectConnections(id)
	fmt.Printf("inputs:  %s\n", formatIDList(direct.Inputs))
	fmt.Printf("outputs: %s\n", formatIDList(direct.Outputs))

	if focus {
		degrees := graph.TwoDegrees(id)
		fmt.Printf("primary:   %s\n", formatIDList(degrees.Primary))
		fmt.Printf("secondary: %s\n", formatIDList(degrees.Secondary))
	}
	if upstream {
		fmt.Printf("upstream (depth %d): %s\n", depth, formatIDList(graph.UpstreamPath(id, depth)))
	}
	if downstream {
		fmt.Printf("downstream (depth %d): %s\n", depth, formatIDList(graph.DownstreamPath(id, depth)))
	}

	return nil
}

func formatIDList(ids []string) string {
	if len(ids) == 0 {
		return "(none)"
	}
	return strings.Join(ids, ", ")
}
