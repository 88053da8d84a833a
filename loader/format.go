package loader

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// Format names a serialization of a graph description.
type Format string

const (
	// FormatAuto picks the format from the file extension.
	FormatAuto Format = ""
	// FormatJSON is the native fixture format.
	FormatJSON Format = "json"
	// FormatYAML mirrors the JSON keys in YAML.
	FormatYAML Format = "yaml"
)

const gzipExt = ".gz"

// Document keys shared by every format.
const (
	keyName     = "graphName"
	keyMetadata = "number_OF_Edge_and_Vertices"
	keyEdges    = "edges"
	keySource   = "source"
	keyDest     = "destination"
	keyWeight   = "weight"
)

var (
	// ErrUnsupportedFormat indicates an unknown format name or file extension.
	ErrUnsupportedFormat = errors.New("loader: unsupported format")
	// ErrMissingEdges indicates the document has no "edges" array.
	ErrMissingEdges = errors.New("loader: edges array is missing")
	// ErrMalformedEdge indicates an edge entry with a missing or mistyped field.
	ErrMalformedEdge = errors.New("loader: malformed edge")
	// ErrMalformedDocument indicates input that is not a valid document at all.
	ErrMalformedDocument = errors.New("loader: malformed document")
)

// ParseFormat validates a user supplied format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatAuto, FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", errors.Wrapf(ErrUnsupportedFormat, "format %q", s)
	}
}

// DetectFormat derives the format and compression from a path such as
// "graph.json", "graph.yaml.gz" or "graph.yml".
func DetectFormat(path string) (Format, bool, error) {
	name := strings.ToLower(filepath.Base(path))
	compressed := strings.HasSuffix(name, gzipExt)
	name = strings.TrimSuffix(name, gzipExt)

	switch filepath.Ext(name) {
	case ".json":
		return FormatJSON, compressed, nil
	case ".yaml", ".yml":
		return FormatYAML, compressed, nil
	default:
		return "", compressed, errors.Wrapf(ErrUnsupportedFormat, "file %q", path)
	}
}
