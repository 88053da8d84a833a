package loader

import (
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlath-mst/core"
)

type yamlEdge struct {
	Source      *string `yaml:"source"`
	Destination *string `yaml:"destination"`
	Weight      *int64  `yaml:"weight"`
}

type yamlGraph struct {
	GraphName string     `yaml:"graphName"`
	Metadata  string     `yaml:"number_OF_Edge_and_Vertices,omitempty"`
	Edges     []yamlEdge `yaml:"edges"`
}

// ReadYAML parses a YAML graph document from r.
func ReadYAML(r io.Reader) (*core.Graph, error) {
	// Edges stay a node so a missing key is told apart from an empty list.
	var doc struct {
		GraphName string     `yaml:"graphName"`
		Metadata  string     `yaml:"number_OF_Edge_and_Vertices"`
		Raw       *yaml.Node `yaml:"edges"`
	}
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrMissingEdges
		}
		return nil, errors.Wrap(ErrMalformedDocument, err.Error())
	}
	if doc.Raw == nil || doc.Raw.Kind != yaml.SequenceNode {
		return nil, ErrMissingEdges
	}

	var items []yamlEdge
	if err := doc.Raw.Decode(&items); err != nil {
		return nil, errors.Wrap(ErrMalformedEdge, err.Error())
	}

	g := core.NewGraph(doc.GraphName, core.WithMetadata(doc.Metadata))
	for i, it := range items {
		if it.Source == nil || it.Destination == nil || it.Weight == nil {
			return nil, errors.Wrapf(ErrMalformedEdge, "edge #%d: source, destination and weight are required", i)
		}
		g.AddEdge(*it.Source, *it.Destination, *it.Weight)
	}

	return g, nil
}

// WriteYAML encodes g as a YAML graph document.
func WriteYAML(w io.Writer, g *core.Graph) error {
	doc := yamlGraph{GraphName: g.Name, Metadata: g.Metadata, Edges: make([]yamlEdge, len(g.Edges))}
	for i := range g.Edges {
		e := &g.Edges[i]
		doc.Edges[i] = yamlEdge{Source: &e.Source, Destination: &e.Destination, Weight: &e.Weight}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return errors.Wrap(err, "encode yaml")
	}

	return errors.Wrap(enc.Close(), "close yaml encoder")
}
