package dataset

import (
	"bytes"
	"context"
	_ "embed"
	"os"

	"layoffs/internal/core/layoff"
	perr "layoffs/internal/platform/errors"
)

//go:embed data/layoffs.json
var embedded []byte

// EmbeddedJSON returns a copy of the bundled dataset document
func EmbeddedJSON() []byte { return bytes.Clone(embedded) }

type bytesLoader struct {
	name string
	b    []byte
}

// Bytes loads a layoffs document held in memory
func Bytes(name string, b []byte) Loader { return bytesLoader{name: name, b: b} }

// Embedded loads the dataset bundled into the binary
func Embedded() Loader { return bytesLoader{name: "embedded", b: embedded} }

func (l bytesLoader) Name() string { return l.name }

func (l bytesLoader) Load(ctx context.Context) ([]layoff.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return layoff.Decode(bytes.NewReader(l.b))
}

type fileLoader struct{ path string }

// File loads a layoffs document from disk
func File(path string) Loader { return fileLoader{path: path} }

func (l fileLoader) Name() string { return "file:" + l.path }

func (l fileLoader) Load(ctx context.Context) ([]layoff.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, perr.Wrapf(err, perr.ErrorCodeDataset, "dataset file %s not found", l.path)
		}
		return nil, perr.Wrapf(err, perr.ErrorCodeDataset, "open dataset file %s", l.path)
	}
	defer func() { _ = f.Close() }()
	return layoff.Decode(f)
}

// Func adapts a function to Loader
type Func struct {
	Label string
	Fn    func(ctx context.Context) ([]layoff.Record, error)
}

// Name implements Loader
func (f Func) Name() string { return f.Label }

// Load implements Loader
func (f Func) Load(ctx context.Context) ([]layoff.Record, error) { return f.Fn(ctx) }
