package cli

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlath-mst/builder"
	"github.com/katalvlaran/lvlath-mst/core"
	"github.com/katalvlaran/lvlath-mst/internal/config"
	"github.com/katalvlaran/lvlath-mst/loader"
)

var errWeightRangeTooSmall = errors.New("not enough distinct weights for the requested edges")

var generateBindings = []binding{
	{flag: "output", key: "generate.output"},
	{flag: "format", key: "generate.format"},
	{flag: "name", key: "generate.name"},
	{flag: "kind", key: "generate.kind"},
	{flag: "vertices", key: "generate.vertices"},
	{flag: "edges", key: "generate.edges"},
	{flag: "islands", key: "generate.islands"},
	{flag: "probability", key: "generate.probability"},
	{flag: "seed", key: "generate.seed"},
	{flag: "min-weight", key: "generate.min-weight"},
	{flag: "max-weight", key: "generate.max-weight"},
	{flag: "distinct", key: "generate.distinct"},
	{flag: "prefix", key: "generate.prefix"},
}

func newGenerateCmd(a *app) *cobra.Command {
	def := a.cfg.Generate
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "write a synthetic graph file",
		Example: "  mstlab generate -o big.json.gz -n 10000 -m 50000 --seed 7\n" +
			"  mstlab generate -o forest.yaml --kind islands --islands 3 -n 5",
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd, generateBindings)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.generate(cmd.OutOrStdout())
		},
	}

	f := cmd.Flags()
	f.StringP("output", "o", def.Output, "destination file (.json, .yaml, .yml, optionally .gz)")
	f.String("format", def.Format, "output format [json|yaml]; detected from the extension when empty")
	f.String("name", def.Name, "graph name")
	f.String("kind", def.Kind,
		fmt.Sprintf("shape [%s|%s|%s|%s|%s|%s|%s]",
			config.KindConnected, config.KindSparse, config.KindComplete, config.KindIslands,
			config.KindPath, config.KindCycle, config.KindStar))
	f.IntP("vertices", "n", def.Vertices, "vertices (per island for islands)")
	f.IntP("edges", "m", def.Edges, "edges, connected only")
	f.Int("islands", def.Islands, "number of islands")
	f.Float64("probability", def.Probability, "edge probability, sparse only")
	f.Int64("seed", def.Seed, "random seed; current time when 0")
	f.Int64("min-weight", def.MinWeight, "smallest edge weight; must stay 1 with --distinct")
	f.Int64("max-weight", def.MaxWeight, "largest edge weight")
	f.Bool("distinct", def.Distinct, "draw pairwise distinct weights from [1, max-weight]")
	f.String("prefix", def.Prefix, "vertex ID prefix")

	return cmd
}

func (a *app) generate(out io.Writer) error {
	gc := a.cfg.Generate
	if err := gc.Validate(); err != nil {
		return fmt.Errorf("validate generate config: %w", err)
	}

	g, seed, err := buildGraph(gc)
	if err != nil {
		return err
	}
	format, err := loader.ParseFormat(gc.Format)
	if err != nil {
		return err
	}
	if err = loader.WriteFile(gc.Output, g, format); err != nil {
		return err
	}

	vertices := len(g.Vertices())
	a.log.Info().
		Str("kind", gc.Kind).
		Int64("seed", seed).
		Int("vertices", vertices).
		Int("edges", len(g.Edges)).
		Str("path", gc.Output).
		Msg("graph generated")
	_, err = fmt.Fprintf(out, "Wrote %s: %d vertices, %d edges to %s\n", g.Name, vertices, len(g.Edges), gc.Output)

	return err
}

// buildGraph turns the generate config into builder calls and returns the seed used.
func buildGraph(gc config.Generate) (*core.Graph, int64, error) {
	seed := gc.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	bopts := []builder.BuilderOption{
		builder.WithSymbNumb(gc.Prefix),
		builder.WithSeed(seed),
	}
	if gc.Distinct {
		if limit := maxEdges(gc); gc.MaxWeight < int64(limit) {
			return nil, 0, fmt.Errorf("max-weight=%d, up to %d edges: %w", gc.MaxWeight, limit, errWeightRangeTooSmall)
		}
		bopts = append(bopts, builder.WithDistinctWeights(gc.MaxWeight))
	} else {
		bopts = append(bopts, builder.WithUniformWeight(gc.MinWeight, gc.MaxWeight))
	}

	var cons builder.Constructor
	switch gc.Kind {
	case config.KindSparse:
		cons = builder.RandomSparse(gc.Vertices, gc.Probability)
	case config.KindComplete:
		cons = builder.Complete(gc.Vertices)
	case config.KindIslands:
		cons = builder.Islands(gc.Islands, gc.Vertices)
	case config.KindPath:
		cons = builder.Path(gc.Vertices)
	case config.KindCycle:
		cons = builder.Cycle(gc.Vertices)
	case config.KindStar:
		cons = builder.Star(gc.Vertices)
	default:
		cons = builder.RandomConnected(gc.Vertices, gc.Edges)
	}

	name := gc.Name
	if name == "" {
		name = fmt.Sprintf("Generated_%s_%d", gc.Kind, gc.Vertices)
	}
	g, err := builder.BuildGraph(name, bopts, cons)
	if err != nil {
		return nil, 0, err
	}

	return g, seed, nil
}

// maxEdges is an upper bound on the edges the configured shape can produce.
func maxEdges(gc config.Generate) int {
	n := gc.Vertices
	switch gc.Kind {
	case config.KindSparse, config.KindComplete:
		return n * (n - 1) / 2
	case config.KindIslands:
		return gc.Islands * (n - 1)
	case config.KindPath, config.KindStar:
		return n - 1
	case config.KindCycle:
		return n
	default:
		return gc.Edges
	}
}
