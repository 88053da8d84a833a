// Package report renders MST results for humans and machines.
//
// The core packages never print or time anything; the caller measures elapsed
// time and hands it here together with the Result.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/mitchellh/go-wordwrap"
	"github.com/olekukonko/tablewriter"

	"github.com/katalvlaran/lvlath-mst/core"
	"github.com/katalvlaran/lvlath-mst/prim_kruskal"
)

const (
	separator    = "------------------------------------"
	metadataWrap = 72
)

// Summary is one algorithm run over one graph.
type Summary struct {
	RunID       string        `json:"run_id"`
	Graph       string        `json:"graph"`
	Metadata    string        `json:"metadata,omitempty"`
	Method      string        `json:"method"`
	Start       string        `json:"start,omitempty"`
	Vertices    int           `json:"vertices"`
	Edges       []core.Edge   `json:"-"`
	EdgeCount   int           `json:"edge_count"`
	TotalWeight int64         `json:"total_weight"`
	Operations  int64         `json:"operations"`
	Elapsed     time.Duration `json:"elapsed_ns"`
	Spanning    bool          `json:"spanning"`
	Warning     string        `json:"warning,omitempty"`
}

// NewSummary collects everything worth reporting about res.
func NewSummary(runID string, g *core.Graph, res *prim_kruskal.Result, elapsed time.Duration) Summary {
	s := Summary{
		RunID:       runID,
		Graph:       g.Name,
		Metadata:    g.Metadata,
		Method:      res.Method,
		Vertices:    res.Vertices,
		Edges:       res.Edges,
		EdgeCount:   len(res.Edges),
		TotalWeight: res.TotalWeight(),
		Operations:  res.Operations,
		Elapsed:     elapsed,
		Spanning:    res.Spanning(),
	}
	if res.Method == prim_kruskal.MethodPrim && len(res.Edges) > 0 {
		s.Start = res.Edges[0].Source
	}
	if res.Warning != nil {
		s.Warning = res.Warning.Error()
	}

	return s
}

// RenderText writes the classic console report: header, one line per edge,
// total weight, execution time and key operations.
func RenderText(w io.Writer, s Summary, withEdges bool) error {
	var b strings.Builder
	fmt.Fprintln(&b, separator)
	fmt.Fprintf(&b, "Minimum Spanning Tree (MST) for: %s\n", s.Graph)
	if s.Metadata != "" {
		fmt.Fprintln(&b, wordwrap.WrapString(s.Metadata, metadataWrap))
	}
	switch s.Method {
	case prim_kruskal.MethodPrim:
		fmt.Fprintf(&b, "Algorithm: Prim's\nStarting Vertex: %s\n", s.Start)
	default:
		fmt.Fprintln(&b, "Algorithm: Kruskal's")
	}
	fmt.Fprintln(&b, separator)

	if withEdges {
		for _, e := range s.Edges {
			fmt.Fprintf(&b, "  - %s\n", e)
		}
		fmt.Fprintln(&b, separator)
	}

	fmt.Fprintf(&b, "Total MST Weight: %d\n", s.TotalWeight)
	fmt.Fprintf(&b, "Execution Time: %d ms\n", s.Elapsed.Milliseconds())
	fmt.Fprintf(&b, "Total Key Operations: %d\n", s.Operations)
	if s.Warning != "" {
		fmt.Fprintf(&b, "Warning: %s\n", s.Warning)
	}
	fmt.Fprintln(&b, separator)

	_, err := io.WriteString(w, b.String())
	return err
}

// RenderTable writes one row per summary, handy to compare both algorithms.
func RenderTable(w io.Writer, summaries ...Summary) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"graph", "method", "start", "vertices", "edges", "weight", "operations", "elapsed", "spanning"})
	table.SetAutoWrapText(false)

	data := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		data = append(data, []string{
			s.Graph,
			s.Method,
			s.Start,
			strconv.Itoa(s.Vertices),
			strconv.Itoa(s.EdgeCount),
			strconv.FormatInt(s.TotalWeight, 10),
			strconv.FormatInt(s.Operations, 10),
			s.Elapsed.String(),
			strconv.FormatBool(s.Spanning),
		})
	}
	table.AppendBulk(data)
	table.Render()
}

// RenderEdges writes the accepted edges as a table.
func RenderEdges(w io.Writer, edges []core.Edge) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "source", "destination", "weight"})
	for i, e := range edges {
		table.Append([]string{strconv.Itoa(i + 1), e.Source, e.Destination, strconv.FormatInt(e.Weight, 10)})
	}
	table.SetFooter([]string{"", "", "total", strconv.FormatInt(core.SumWeights(edges), 10)})
	table.Render()
}

// RenderJSON writes summaries as a JSON array.
func RenderJSON(w io.Writer, summaries ...Summary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if summaries == nil {
		summaries = []Summary{}
	}

	return enc.Encode(summaries)
}
