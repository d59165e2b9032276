// Package main provides the shortestpath CLI: Dijkstra queries over graph
// documents read by the graphfile package.
package main

import (
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/shortestpath/dijkstra"
	"github.com/katalvlaran/shortestpath/graphfile"
)

// Version is the current shortestpath CLI version.
var Version = "0.1.0"

const (
	outputText = "text"
	outputYAML = "yaml"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	graphPath string
	trace     bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	gf := &globalFlags{}

	root := &cobra.Command{
		Use:     "shortestpath",
		Short:   "Shortest paths over weighted directed graphs",
		Long:    `shortestpath runs Dijkstra's algorithm over a graph document (YAML or JSON) and prints single paths or full distance tables.`,
		Version: Version,
		// Usage is noise for runtime failures such as an unknown source.
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&gf.graphPath, "graph", "g", "", "graph document (YAML or JSON)")
	root.PersistentFlags().BoolVar(&gf.trace, "trace", false, "log every settled node to stderr")
	_ = root.MarkPersistentFlagRequired("graph")

	root.AddCommand(newPathCmd(gf), newAllCmd(gf))

	return root
}

func newPathCmd(gf *globalFlags) *cobra.Command {
	var from, to, output string
	var maxDistance float64

	cmd := &cobra.Command{
		Use:   "path",
		Short: "Print the shortest path between two nodes",
		Long: `Print the shortest path between two nodes.

Examples:
  shortestpath path -g roads.yaml --from A --to E
  shortestpath path -g roads.yaml --from A --to E --max-distance 10 -o yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkOutput(output); err != nil {
				return err
			}
			g, err := graphfile.Load(gf.graphPath)
			if err != nil {
				return err
			}

			opts := engineOptions(cmd, gf)
			if cmd.Flags().Changed("max-distance") {
				if maxDistance < 0 || math.IsNaN(maxDistance) {
					return dijkstra.ErrBadMaxDistance
				}
				opts = append(opts, dijkstra.WithMaxDistance(maxDistance))
			}

			res, err := dijkstra.FindShortestPath(g, from, to, opts...)
			if err != nil {
				return err
			}

			return writePath(cmd.OutOrStdout(), output, res)
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "source node")
	cmd.Flags().StringVar(&to, "to", "", "destination node")
	cmd.Flags().Float64Var(&maxDistance, "max-distance", 0, "leave nodes farther than this unreached")
	cmd.Flags().StringVarP(&output, "output", "o", outputText, "output format: text or yaml")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func newAllCmd(gf *globalFlags) *cobra.Command {
	var from, output string
	var withPaths bool

	cmd := &cobra.Command{
		Use:   "all",
		Short: "Print the distance from one node to every node",
		Long: `Print the distance from one node to every node of the graph.
Unreached nodes are reported as inf.

Examples:
  shortestpath all -g roads.yaml --from A
  shortestpath all -g roads.yaml --from A --paths -o yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkOutput(output); err != nil {
				return err
			}
			g, err := graphfile.Load(gf.graphPath)
			if err != nil {
				return err
			}

			p, err := dijkstra.ComputeDistancesAndPaths(g, from, engineOptions(cmd, gf)...)
			if err != nil {
				return err
			}

			return writeAll(cmd.OutOrStdout(), output, p, withPaths)
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "source node")
	cmd.Flags().BoolVar(&withPaths, "paths", false, "also print the path to each reached node")
	cmd.Flags().StringVarP(&output, "output", "o", outputText, "output format: text or yaml")
	_ = cmd.MarkFlagRequired("from")

	return cmd
}

func checkOutput(output string) error {
	switch output {
	case outputText, outputYAML:
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want %s or %s)", output, outputText, outputYAML)
	}
}

// engineOptions wires --trace to the engine's settle hook.
func engineOptions(cmd *cobra.Command, gf *globalFlags) []dijkstra.Option {
	if !gf.trace {
		return nil
	}
	logger := log.New(cmd.ErrOrStderr(), "", 0)

	return []dijkstra.Option{
		dijkstra.WithOnSettle(func(node string, dist float64) {
			logger.Printf("settle %s %s", node, formatDistance(dist))
		}),
	}
}

func formatDistance(d float64) string {
	if math.IsInf(d, 1) {
		return "inf"
	}
	return fmt.Sprintf("%g", d)
}

type pathReport struct {
	Status   string   `yaml:"status"`
	Path     []string `yaml:"path,omitempty"`
	Distance *float64 `yaml:"distance,omitempty"`
}

func writePath(w io.Writer, output string, res dijkstra.Result) error {
	if output == outputYAML {
		rep := pathReport{Status: res.Status.String()}
		if res.Reachable() {
			d := res.Distance
			rep.Path, rep.Distance = res.Path, &d
		}
		return writeYAML(w, rep)
	}

	if !res.Reachable() {
		_, err := fmt.Fprintln(w, dijkstra.StatusUnreachable)
		return err
	}
	_, err := fmt.Fprintf(w, "%s\ndistance: %s\n", strings.Join(res.Path, " -> "), formatDistance(res.Distance))

	return err
}

type nodeReport struct {
	Node     string   `yaml:"node"`
	Distance float64  `yaml:"distance"`
	Path     []string `yaml:"path,omitempty"`
}

func writeAll(w io.Writer, output string, p dijkstra.Paths, withPaths bool) error {
	nodes := make([]string, 0, len(p.Distances))
	for n := range p.Distances {
		nodes = append(nodes, n)
	}
	sort.Strings(nodes)

	reports := make([]nodeReport, 0, len(nodes))
	for _, n := range nodes {
		rep := nodeReport{Node: n, Distance: p.Distances[n]}
		if withPaths {
			rep.Path, _ = p.PathTo(n)
		}
		reports = append(reports, rep)
	}

	if output == outputYAML {
		return writeYAML(w, reports)
	}

	for _, rep := range reports {
		line := fmt.Sprintf("%s\t%s", rep.Node, formatDistance(rep.Distance))
		if len(rep.Path) > 0 {
			line += "\t" + strings.Join(rep.Path, " -> ")
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	return nil
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}

	return enc.Close()
}
