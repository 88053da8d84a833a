package loader

import (
	"bytes"
	"io"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/katalvlaran/lvlath-mst/core"
)

// ReadJSON parses a JSON graph document from r.
func ReadJSON(r io.Reader) (*core.Graph, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read json")
	}
	if !gjson.ValidBytes(data) {
		return nil, errors.Wrap(ErrMalformedDocument, "invalid json")
	}

	doc := gjson.ParseBytes(data)
	edges := doc.Get(keyEdges)
	if !edges.IsArray() {
		return nil, ErrMissingEdges
	}

	g := core.NewGraph(doc.Get(keyName).String(), core.WithMetadata(doc.Get(keyMetadata).String()))
	var (
		parseErr error
		idx      int
	)
	edges.ForEach(func(_, item gjson.Result) bool {
		e, err := jsonEdge(item)
		if err != nil {
			parseErr = errors.Wrapf(err, "edge #%d", idx)
			return false
		}
		g.Edges = append(g.Edges, e)
		idx++
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	return g, nil
}

func jsonEdge(item gjson.Result) (core.Edge, error) {
	if !item.IsObject() {
		return core.Edge{}, errors.Wrap(ErrMalformedEdge, "not an object")
	}
	src, dst, w := item.Get(keySource), item.Get(keyDest), item.Get(keyWeight)
	if src.Type != gjson.String {
		return core.Edge{}, errors.Wrapf(ErrMalformedEdge, "%s must be a string", keySource)
	}
	if dst.Type != gjson.String {
		return core.Edge{}, errors.Wrapf(ErrMalformedEdge, "%s must be a string", keyDest)
	}
	if w.Type != gjson.Number || w.Float() != float64(w.Int()) {
		return core.Edge{}, errors.Wrapf(ErrMalformedEdge, "%s must be an integer, got %s", keyWeight, w.Raw)
	}

	return core.NewEdge(src.String(), dst.String(), w.Int()), nil
}

// WriteJSON encodes g as a JSON graph document.
func WriteJSON(w io.Writer, g *core.Graph) error {
	doc, err := sjson.SetBytes([]byte(`{}`), keyName, g.Name)
	if err != nil {
		return errors.Wrap(err, "set graph name")
	}
	if doc, err = sjson.SetBytes(doc, keyMetadata, g.Metadata); err != nil {
		return errors.Wrap(err, "set metadata")
	}

	// Edges are rendered one by one and spliced in as a raw array; appending
	// through sjson path "edges.-1" would re-scan the document per edge.
	var arr bytes.Buffer
	arr.WriteByte('[')
	for i, e := range g.Edges {
		item, err := sjson.SetBytes([]byte(`{}`), keySource, e.Source)
		if err == nil {
			item, err = sjson.SetBytes(item, keyDest, e.Destination)
		}
		if err == nil {
			item, err = sjson.SetBytes(item, keyWeight, e.Weight)
		}
		if err != nil {
			return errors.Wrapf(err, "encode edge #%d", i)
		}
		if i > 0 {
			arr.WriteByte(',')
		}
		arr.Write(item)
	}
	arr.WriteByte(']')

	if doc, err = sjson.SetRawBytes(doc, keyEdges, arr.Bytes()); err != nil {
		return errors.Wrap(err, "set edges")
	}
	doc = append(doc, '\n')
	if _, err = w.Write(doc); err != nil {
		return errors.Wrap(err, "write json")
	}

	return nil
}
