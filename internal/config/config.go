// Package config holds the mstlab configuration tree decoded by viper.
package config

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvlath-mst/loader"
	"github.com/katalvlaran/lvlath-mst/prim_kruskal"
)

// Output modes for run/compare.
const (
	OutputText  = "text"
	OutputTable = "table"
	OutputJSON  = "json"
)

// Generator kinds understood by the generate command.
const (
	KindConnected = "connected"
	KindSparse    = "sparse"
	KindComplete  = "complete"
	KindIslands   = "islands"
	KindPath      = "path"
	KindCycle     = "cycle"
	KindStar      = "star"
)

var (
	errUnknownMethod = errors.New("unknown method")
	errUnknownOutput = errors.New("unknown output")
	errUnknownKind   = errors.New("unknown generator kind")
	errMissingPath   = errors.New("path is required")
	errBadSize       = errors.New("size must be positive")
	errBadWeights    = errors.New("weight range is invalid")
	errUnknownLevel  = errors.New("unknown log level")
	errDistinctMin   = errors.New("distinct weights always start at 1")
)

// Log configures the zerolog output of every command.
type Log struct {
	Format string `mapstructure:"format" yaml:"format" json:"format,omitempty"`
	Level  string `mapstructure:"level" yaml:"level" json:"level,omitempty"`
}

// Run configures the run and compare commands.
type Run struct {
	Input     string `mapstructure:"input" yaml:"input" json:"input"`
	Format    string `mapstructure:"format" yaml:"format" json:"format,omitempty"`
	Method    string `mapstructure:"method" yaml:"method" json:"method,omitempty"`
	Start     string `mapstructure:"start" yaml:"start" json:"start,omitempty"`
	Output    string `mapstructure:"output" yaml:"output" json:"output,omitempty"`
	ShowEdges bool   `mapstructure:"show-edges" yaml:"show-edges" json:"show-edges"`
}

// Generate configures the generate command.
type Generate struct {
	Output      string  `mapstructure:"output" yaml:"output" json:"output"`
	Format      string  `mapstructure:"format" yaml:"format" json:"format,omitempty"`
	Name        string  `mapstructure:"name" yaml:"name" json:"name,omitempty"`
	Kind        string  `mapstructure:"kind" yaml:"kind" json:"kind"`
	Vertices    int     `mapstructure:"vertices" yaml:"vertices" json:"vertices"`
	Edges       int     `mapstructure:"edges" yaml:"edges" json:"edges"`
	Islands     int     `mapstructure:"islands" yaml:"islands" json:"islands"`
	Probability float64 `mapstructure:"probability" yaml:"probability" json:"probability"`
	Seed        int64   `mapstructure:"seed" yaml:"seed" json:"seed"`
	MinWeight   int64   `mapstructure:"min-weight" yaml:"min-weight" json:"min-weight"`
	MaxWeight   int64   `mapstructure:"max-weight" yaml:"max-weight" json:"max-weight"`
	Distinct    bool    `mapstructure:"distinct" yaml:"distinct" json:"distinct"`
	Prefix      string  `mapstructure:"prefix" yaml:"prefix" json:"prefix,omitempty"`
}

// Config is the root of the tree decoded from flags, environment and config file.
type Config struct {
	Log      Log      `mapstructure:"log" yaml:"log" json:"log"`
	Run      Run      `mapstructure:"run" yaml:"run" json:"run"`
	Generate Generate `mapstructure:"generate" yaml:"generate" json:"generate"`
}

// NewConfig returns a Config filled with the flag defaults.
func NewConfig() *Config {
	return &Config{
		Log: Log{
			Format: "text",
			Level:  zerolog.LevelInfoValue,
		},
		Run: Run{
			Method:    prim_kruskal.MethodKruskal,
			Output:    OutputText,
			ShowEdges: true,
		},
		Generate: Generate{
			Kind:      KindConnected,
			Vertices:  100,
			Edges:     300,
			Islands:   2,
			MinWeight: 1,
			MaxWeight: 100,
			Prefix:    "v",
		},
	}
}

// Validate checks the sections every command needs. Run and Generate are
// validated by the command that consumes them.
func (c *Config) Validate() error {
	if err := c.Log.Validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}

	return nil
}

// Validate rejects level names zerolog does not know.
func (l *Log) Validate() error {
	switch l.Level {
	case zerolog.LevelDebugValue, zerolog.LevelInfoValue, zerolog.LevelWarnValue, zerolog.LevelErrorValue:
		return nil
	default:
		return fmt.Errorf("log level %q: %w", l.Level, errUnknownLevel)
	}
}

// Validate checks the enum fields and that an input path is set.
func (r *Run) Validate() error {
	switch r.Method {
	case prim_kruskal.MethodKruskal, prim_kruskal.MethodPrim:
	default:
		return fmt.Errorf("method %q: %w", r.Method, errUnknownMethod)
	}
	switch r.Output {
	case OutputText, OutputTable, OutputJSON:
	default:
		return fmt.Errorf("output %q: %w", r.Output, errUnknownOutput)
	}
	if r.Input == "" {
		return fmt.Errorf("input: %w", errMissingPath)
	}
	if _, err := loader.ParseFormat(r.Format); err != nil {
		return err
	}

	return nil
}

// Validate checks the path, format, shape and weight range of a generate run.
func (g *Generate) Validate() error {
	if g.Output == "" {
		return fmt.Errorf("output: %w", errMissingPath)
	}
	if _, err := loader.ParseFormat(g.Format); err != nil {
		return err
	}
	switch g.Kind {
	case KindConnected, KindSparse, KindComplete, KindIslands, KindPath, KindCycle, KindStar:
	default:
		return fmt.Errorf("kind %q: %w", g.Kind, errUnknownKind)
	}
	if g.Vertices < 1 || g.Edges < 0 || g.Islands < 1 {
		return fmt.Errorf("vertices=%d edges=%d islands=%d: %w", g.Vertices, g.Edges, g.Islands, errBadSize)
	}
	if g.MinWeight < 0 || g.MaxWeight < g.MinWeight {
		return fmt.Errorf("min=%d max=%d: %w", g.MinWeight, g.MaxWeight, errBadWeights)
	}
	if g.Distinct && g.MinWeight != 1 {
		return fmt.Errorf("min=%d: %w", g.MinWeight, errDistinctMin)
	}

	return nil
}
