package loader_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-mst/builder"
	"github.com/katalvlaran/lvlath-mst/core"
	"github.com/katalvlaran/lvlath-mst/loader"
)

func TestReadFile_Fixtures(t *testing.T) {
	g, err := loader.ReadFile(filepath.Join("testdata", "SmallGraph_1.json"), loader.FormatAuto)
	require.NoError(t, err)
	assert.Equal(t, "SmallGraph_1", g.Name)
	assert.Equal(t, "Vertices: 4, Edges: 4", g.Metadata)
	assert.Equal(t, []core.Edge{
		core.NewEdge("A", "B", 1),
		core.NewEdge("B", "C", 2),
		core.NewEdge("C", "D", 3),
		core.NewEdge("A", "D", 10),
	}, g.Edges)

	g, err = loader.ReadFile(filepath.Join("testdata", "tie.yaml"), loader.FormatAuto)
	require.NoError(t, err)
	assert.Equal(t, "Tie", g.Name)
	assert.Empty(t, g.Metadata)
	assert.Len(t, g.Edges, 2)
}

func TestReadFile_Missing(t *testing.T) {
	_, err := loader.ReadFile(filepath.Join(t.TempDir(), "nope.json"), loader.FormatAuto)
	assert.Error(t, err)

	_, err = loader.ReadFile("graph.txt", loader.FormatAuto)
	assert.ErrorIs(t, err, loader.ErrUnsupportedFormat)
}

func TestReadJSON_Rejects(t *testing.T) {
	cases := map[string]struct {
		doc  string
		want error
	}{
		"not json":        {`{"edges": [`, loader.ErrMalformedDocument},
		"no edges":        {`{"graphName": "x"}`, loader.ErrMissingEdges},
		"edges not array": {`{"edges": {}}`, loader.ErrMissingEdges},
		"edge not object": {`{"edges": [1]}`, loader.ErrMalformedEdge},
		"missing weight":  {`{"edges": [{"source":"A","destination":"B"}]}`, loader.ErrMalformedEdge},
		"string weight":   {`{"edges": [{"source":"A","destination":"B","weight":"3"}]}`, loader.ErrMalformedEdge},
		"fraction weight": {`{"edges": [{"source":"A","destination":"B","weight":1.5}]}`, loader.ErrMalformedEdge},
		"numeric source":  {`{"edges": [{"source":1,"destination":"B","weight":1}]}`, loader.ErrMalformedEdge},
		"negative weight": {`{"edges": [{"source":"A","destination":"B","weight":-1}]}`, core.ErrNegativeWeight},
		"empty label":     {`{"edges": [{"source":"","destination":"B","weight":1}]}`, core.ErrEmptyVertexID},
	}
	for name, tc := range cases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			_, err := loader.Read(strings.NewReader(tc.doc), loader.FormatJSON)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestReadJSON_EmptyEdges(t *testing.T) {
	g, err := loader.Read(strings.NewReader(`{"graphName":"Empty","edges":[]}`), loader.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "Empty", g.Name)
	assert.Empty(t, g.Edges)
}

func TestReadYAML_Rejects(t *testing.T) {
	_, err := loader.Read(strings.NewReader("graphName: x\n"), loader.FormatYAML)
	assert.ErrorIs(t, err, loader.ErrMissingEdges)

	_, err = loader.Read(strings.NewReader("edges:\n  - source: A\n    weight: 1\n"), loader.FormatYAML)
	assert.ErrorIs(t, err, loader.ErrMalformedEdge)

	_, err = loader.Read(strings.NewReader("edges:\n  - {source: A, destination: B, weight: 1.5}\n"), loader.FormatYAML)
	assert.ErrorIs(t, err, loader.ErrMalformedEdge)

	_, err = loader.Read(strings.NewReader("edges: [\n"), loader.FormatYAML)
	assert.ErrorIs(t, err, loader.ErrMalformedDocument)
}

// TestWriteFile_Compression writes a generated graph in each supported layout and
// reads it back, exercising the gzip path selection.
func TestWriteFile_Compression(t *testing.T) {
	g := builder.MustBuildGraph("Generated",
		[]builder.BuilderOption{builder.WithSeed(9), builder.WithUniformWeight(0, 50), builder.WithSymbNumb("№")},
		builder.RandomConnected(25, 60),
	)
	dir := t.TempDir()

	for _, name := range []string{"g.json", "g.json.gz", "g.yaml", "g.yml.gz"} {
		path := filepath.Join(dir, name)
		require.NoError(t, loader.WriteFile(path, g, loader.FormatAuto), name)

		back, err := loader.ReadFile(path, loader.FormatAuto)
		require.NoError(t, err, name)
		assert.Equal(t, g.Name, back.Name, name)
		assert.Equal(t, g.Metadata, back.Metadata, name)
		assert.Equal(t, g.Edges, back.Edges, name)
	}
}

func TestWriteJSON_Shape(t *testing.T) {
	g := core.NewGraph("tiny", core.WithMetadata("V=2, E=1"), core.WithEdges(core.NewEdge("A", "B", 7)))
	var buf bytes.Buffer
	require.NoError(t, loader.WriteJSON(&buf, g))
	assert.JSONEq(t,
		`{"graphName":"tiny","number_OF_Edge_and_Vertices":"V=2, E=1","edges":[{"source":"A","destination":"B","weight":7}]}`,
		buf.String())

	buf.Reset()
	require.NoError(t, loader.WriteJSON(&buf, core.NewGraph("none")))
	assert.JSONEq(t, `{"graphName":"none","number_OF_Edge_and_Vertices":"","edges":[]}`, buf.String())
}

func TestFormatHelpers(t *testing.T) {
	f, gz, err := loader.DetectFormat("/tmp/Big.JSON.gz")
	require.NoError(t, err)
	assert.Equal(t, loader.FormatJSON, f)
	assert.True(t, gz)

	f, gz, err = loader.DetectFormat("x.yml")
	require.NoError(t, err)
	assert.Equal(t, loader.FormatYAML, f)
	assert.False(t, gz)

	f, err = loader.ParseFormat("YML")
	require.NoError(t, err)
	assert.Equal(t, loader.FormatYAML, f)

	_, err = loader.ParseFormat("xml")
	assert.ErrorIs(t, err, loader.ErrUnsupportedFormat)

	assert.ErrorIs(t, loader.Write(&bytes.Buffer{}, core.NewGraph("x"), "csv"), loader.ErrUnsupportedFormat)
}
