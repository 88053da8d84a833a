package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvlath-mst/prim_kruskal"
	"github.com/katalvlaran/lvlath-mst/report"
)

var errWeightsDiffer = errors.New("kruskal and prim disagree on the MST weight")

var compareBindings = []binding{
	{flag: "input", key: "run.input"},
	{flag: "format", key: "run.format"},
	{flag: "start", key: "run.start"},
	{flag: "output", key: "run.output"},
	{flag: "show-edges", key: "run.show-edges"},
}

func newCompareCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "run Kruskal and Prim side by side on one graph",
		Long: "compare runs both algorithms concurrently on the same graph and reports " +
			"their weights and operation counts. On a connected graph the weights must agree.",
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd, compareBindings)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.compare(cmd.OutOrStdout())
		},
	}
	addInputFlags(cmd, a.cfg.Run)

	return cmd
}

func (a *app) compare(out io.Writer) error {
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
		_, err = fmt.Fprintln(out, emptyGraphMessage)
		return err
	}

	methods := []string{prim_kruskal.MethodKruskal, prim_kruskal.MethodPrim}
	start, err := startVertex(g, rc.Start)
	if err != nil {
		return err
	}
	summaries := make([]report.Summary, len(methods))

	var eg errgroup.Group
	for i, method := range methods {
		i, method := i, method
		own := g.Clone()
		eg.Go(func() error {
			s, err := compute(own, method, start, runID, lg)
			if err != nil {
				return err
			}
			summaries[i] = s
			return nil
		})
	}
	if err = eg.Wait(); err != nil {
		return err
	}

	if err = render(out, rc.Output, rc.ShowEdges, summaries...); err != nil {
		return err
	}

	k, p := summaries[0], summaries[1]
	if !k.Spanning || !p.Spanning {
		// Prim only covers the component of its start vertex.
		lg.Warn().Msg("graph is disconnected, weights are not comparable")
		return nil
	}
	if k.TotalWeight != p.TotalWeight {
		return fmt.Errorf("kruskal=%d prim=%d: %w", k.TotalWeight, p.TotalWeight, errWeightsDiffer)
	}
	lg.Info().Int64("weight", k.TotalWeight).Msg("weights agree")

	return nil
}
