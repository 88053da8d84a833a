package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlath-mst/core"
	"github.com/katalvlaran/lvlath-mst/internal/config"
	"github.com/katalvlaran/lvlath-mst/loader"
	"github.com/katalvlaran/lvlath-mst/prim_kruskal"
	"github.com/katalvlaran/lvlath-mst/report"
)

const emptyGraphMessage = "Graph is empty. MST is zero length."

var runBindings = []binding{
	{flag: "input", key: "run.input"},
	{flag: "format", key: "run.format"},
	{flag: "method", key: "run.method"},
	{flag: "start", key: "run.start"},
	{flag: "output", key: "run.output"},
	{flag: "show-edges", key: "run.show-edges"},
}

func newRunCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "compute the MST of a graph file",
		Example: "  mstlab run -i testdata/SmallGraph_1.json\n" +
			"  mstlab run -i graph.yaml.gz --method prim --start A -o table --show-edges",
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd, runBindings)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runMST(cmd.OutOrStdout())
		},
	}
	addInputFlags(cmd, a.cfg.Run)
	cmd.Flags().StringP("method", "m", a.cfg.Run.Method,
		fmt.Sprintf("algorithm [%s|%s]", prim_kruskal.MethodKruskal, prim_kruskal.MethodPrim))

	return cmd
}

// addInputFlags registers the flags shared by run and compare.
func addInputFlags(cmd *cobra.Command, def config.Run) {
	f := cmd.Flags()
	f.StringP("input", "i", def.Input, "graph file (.json, .yaml, .yml, optionally .gz)")
	f.String("format", def.Format, "input format [json|yaml]; detected from the extension when empty")
	f.StringP("start", "s", def.Start, "Prim start vertex; the smallest vertex ID when empty")
	f.StringP("output", "o", def.Output,
		fmt.Sprintf("output [%s|%s|%s]", config.OutputText, config.OutputTable, config.OutputJSON))
	f.Bool("show-edges", def.ShowEdges, "list the accepted edges; --show-edges=false prints only the totals")
}

func (a *app) runMST(out io.Writer) error {
	rc := a.cfg.Run
	if err := rc.Validate(); err != nil {
		return fmt.Errorf("validate run config: %w", err)
	}

	g, err := readGraph(rc)
	if err != nil {
		return err
	}
	runID := uuid.NewString()
	lg := a.log.With().Str("run_id", runID).Str("graph", g.Name).Logger()

	if len(g.Edges) == 0 {
		lg.Info().Msg("graph has no edges")
		_, err = fmt.Fprintln(out, emptyGraphMessage)
		return err
	}

	start := rc.Start
	if rc.Method == prim_kruskal.MethodPrim {
		if start, err = startVertex(g, start); err != nil {
			return err
		}
	}
	s, err := compute(g, rc.Method, start, runID, lg)
	if err != nil {
		return err
	}

	return render(out, rc.Output, rc.ShowEdges, s)
}

func readGraph(rc config.Run) (*core.Graph, error) {
	f, err := loader.ParseFormat(rc.Format)
	if err != nil {
		return nil, err
	}

	return loader.ReadFile(rc.Input, f)
}

// startVertex falls back to the smallest vertex ID and rejects a start vertex
// the graph does not contain before any algorithm runs.
func startVertex(g *core.Graph, start string) (string, error) {
	if start == "" {
		if vs := g.Vertices(); len(vs) > 0 {
			return vs[0], nil
		}
		return "", nil
	}
	if !g.HasVertex(start) {
		return "", fmt.Errorf("start vertex %q: %w", start, prim_kruskal.ErrVertexNotFound)
	}

	return start, nil
}

// compute times one algorithm over g and summarizes the result.
func compute(g *core.Graph, method, start, runID string, lg zerolog.Logger) (report.Summary, error) {
	opts := prim_kruskal.NewOptions(
		prim_kruskal.WithMethod(method),
		prim_kruskal.WithRoot(start),
		prim_kruskal.WithLogger(lg),
	)

	began := time.Now()
	res, err := prim_kruskal.Compute(g, opts)
	elapsed := time.Since(began)
	if err != nil {
		return report.Summary{}, fmt.Errorf("%s: %w", method, err)
	}

	lg.Debug().
		Str("method", method).
		Int64("weight", res.TotalWeight()).
		Int64("operations", res.Operations).
		Dur("elapsed", elapsed).
		Msg("mst computed")

	s := report.NewSummary(runID, g, res, elapsed)
	if method == prim_kruskal.MethodPrim {
		s.Start = start
	}

	return s, nil
}

func render(w io.Writer, output string, showEdges bool, summaries ...report.Summary) error {
	switch output {
	case config.OutputJSON:
		return report.RenderJSON(w, summaries...)
	case config.OutputTable:
		report.RenderTable(w, summaries...)
		if showEdges {
			for _, s := range summaries {
				if _, err := fmt.Fprintf(w, "\n%s (%s)\n", s.Graph, s.Method); err != nil {
					return err
				}
				report.RenderEdges(w, s.Edges)
			}
		}
		return nil
	default:
		for _, s := range summaries {
			if err := report.RenderText(w, s, showEdges); err != nil {
				return err
			}
		}
		return nil
	}
}
