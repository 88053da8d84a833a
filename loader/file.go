package loader

import (
	"bufio"
	"io"
	"os"

	"github.com/klauspost/pgzip"
	"github.com/pkg/errors"

	"github.com/katalvlaran/lvlath-mst/core"
)

// Read decodes a graph in format f from r and validates it.
func Read(r io.Reader, f Format) (*core.Graph, error) {
	var (
		g   *core.Graph
		err error
	)
	switch f {
	case FormatJSON:
		g, err = ReadJSON(r)
	case FormatYAML:
		g, err = ReadYAML(r)
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "format %q", f)
	}
	if err != nil {
		return nil, err
	}
	if err = g.Validate(); err != nil {
		return nil, errors.Wrap(err, "validate graph")
	}

	return g, nil
}

// Write encodes g in format f to w.
func Write(w io.Writer, g *core.Graph, f Format) error {
	switch f {
	case FormatJSON:
		return WriteJSON(w, g)
	case FormatYAML:
		return WriteYAML(w, g)
	default:
		return errors.Wrapf(ErrUnsupportedFormat, "format %q", f)
	}
}

// ReadFile opens path and decodes it. With FormatAuto the format and
// compression come from the extension; otherwise only ".gz" is inspected.
func ReadFile(path string, f Format) (*core.Graph, error) {
	detected, compressed, derr := DetectFormat(path)
	if f == FormatAuto {
		if derr != nil {
			return nil, derr
		}
		f = detected
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer file.Close()

	var r io.Reader = bufio.NewReader(file)
	if compressed {
		gz, err := pgzip.NewReader(r)
		if err != nil {
			return nil, errors.Wrapf(err, "cannot create pgzip reader for %s", path)
		}
		defer gz.Close()
		r = gz
	}

	g, err := Read(r, f)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}

	return g, nil
}

// WriteFile creates path and encodes g into it, compressing when the name ends in ".gz".
func WriteFile(path string, g *core.Graph, f Format) (err error) {
	detected, compressed, derr := DetectFormat(path)
	if f == FormatAuto {
		if derr != nil {
			return derr
		}
		f = detected
	}

	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "close %s", path)
		}
	}()

	buf := bufio.NewWriter(file)
	var w io.Writer = buf
	var gz *pgzip.Writer
	if compressed {
		gz = pgzip.NewWriter(buf)
		w = gz
	}

	if err = Write(w, g, f); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	if gz != nil {
		if err = gz.Close(); err != nil {
			return errors.Wrap(err, "error flushing gzip buffer")
		}
	}

	return errors.Wrapf(buf.Flush(), "flush %s", path)
}
