// Package compiler turns instruction tables into Go source.
//
// The pipeline is: read tables -> parse -> link -> generate -> write.
package compiler

import (
	"context"
	"os"
	"path/filepath"

	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/slowlang/irgen/compiler/gen"
	"github.com/slowlang/irgen/compiler/table"
)

type (
	// Writer stores generated files.
	Writer interface {
		WriteFile(name string, data []byte) error
	}
)

// Load reads, parses and links the tables named in cfg.
func Load(ctx context.Context, cfg *Config) (t *table.Tables, err error) {
	tr, ctx := tlog.SpawnFromContextAndWrap(ctx, "load tables", "formats", cfg.Formats, "operators", cfg.Operators)
	defer tr.Finish("err", &err)

	text, err := readFile(ctx, cfg.Path(cfg.Formats))
	if err != nil {
		return nil, err
	}

	fs, cs, err := table.ParseFormats(ctx, cfg.Formats, text)
	if err != nil {
		return nil, errors.Wrap(err, "parse formats")
	}

	text, err = readFile(ctx, cfg.Path(cfg.Operators))
	if err != nil {
		return nil, err
	}

	ops, err := table.ParseOperators(ctx, cfg.Operators, text)
	if err != nil {
		return nil, errors.Wrap(err, "parse operators")
	}

	t, err = table.Link(ctx, fs, cs, ops)
	if err != nil {
		return nil, errors.Wrap(err, "link")
	}

	return t, nil
}

// Generate loads the tables and writes both generated files.
// Both files are generated before either is written,
// so a table error leaves the tree untouched.
// A failed write stops Generate and may leave the files written before it updated.
func Generate(ctx context.Context, cfg *Config, w Writer) (err error) {
	tr, ctx := tlog.SpawnFromContextAndWrap(ctx, "generate", "package", cfg.Package, "dir", cfg.Dir)
	defer tr.Finish("err", &err)

	t, err := Load(ctx, cfg)
	if err != nil {
		return err
	}

	gcfg := gen.Config{
		Package:  cfg.Package,
		IRImport: cfg.IRImport,
		Source:   filepath.Base(cfg.Formats),
	}

	formats, err := gen.Formats(ctx, gcfg, t)
	if err != nil {
		return errors.Wrap(err, "formats")
	}

	gcfg.Source = filepath.Base(cfg.Operators)

	operators, err := gen.Operators(ctx, gcfg, t)
	if err != nil {
		return errors.Wrap(err, "operators")
	}

	for _, f := range []struct {
		name string
		data []byte
	}{
		{cfg.FormatsOut, formats},
		{cfg.OperatorsOut, operators},
	} {
		err = w.WriteFile(cfg.Path(f.name), f.data)
		if err != nil {
			return errors.Wrap(err, "write %v", f.name)
		}

		tr.Printw("file generated", "name", f.name, "size", len(f.data))
	}

	return nil
}

func readFile(ctx context.Context, name string) ([]byte, error) {
	text, err := os.ReadFile(name)
	if err != nil {
		return nil, errors.Wrap(err, "read file")
	}

	tlog.SpanFromContext(ctx).Printw("read file", "size", len(text), "name", name)

	return text, nil
}
