package gen

import (
	"context"
	"go/format"
	"strings"

	"github.com/nikandfor/hacked/hfmt"
	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/slowlang/irgen/compiler/table"
)

type (
	Config struct {
		// Package is the name of the generated package.
		Package string
		// IRImport is the import path of the ir package.
		IRImport string
		// Source names the table file in the generated header.
		Source string
	}
)

// Formats emits the format views and carriers.
func Formats(ctx context.Context, cfg Config, t *table.Tables) (_ []byte, err error) {
	tr, ctx := tlog.SpawnFromContextAndWrap(ctx, "gen: formats", "package", cfg.Package, "formats", len(t.Formats))
	defer tr.Finish("err", &err)

	b := header(nil, cfg)

	b = formatTags(b, t)

	for _, f := range t.Formats {
		b = formatView(b, f)

		if tr.If("dump_format") {
			tr.Printw("format emitted", "name", f.Name, "format", f, "size", len(b))
		}
	}

	for _, c := range t.Carriers {
		b = carrierView(b, c)
	}

	return gofmt(b)
}

// Operators emits opcodes and the operator table.
func Operators(ctx context.Context, cfg Config, t *table.Tables) (_ []byte, err error) {
	tr, ctx := tlog.SpawnFromContextAndWrap(ctx, "gen: operators", "package", cfg.Package, "operators", len(t.Operators))
	defer tr.Finish("err", &err)

	b := header(nil, cfg)

	b, err = operators(b, t)
	if err != nil {
		return nil, err
	}

	return gofmt(b)
}

func header(b []byte, cfg Config) []byte {
	b = app(b, 0, "// Code generated by irgen from %s; DO NOT EDIT.\n\n", cfg.Source)
	b = app(b, 0, "package %s\n\n", cfg.Package)
	b = app(b, 0, "import %q\n", cfg.IRImport)

	return b
}

func gofmt(b []byte) ([]byte, error) {
	r, err := format.Source(b)
	if err != nil {
		return nil, errors.Wrap(err, "gofmt")
	}

	return r, nil
}

func goType(t string) string {
	if t == table.AnyOperand {
		return "ir.Operand"
	}

	return "*ir." + t
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}

	return strings.ToLower(s[:1]) + s[1:]
}

func app(b []byte, d int, f string, args ...any) []byte {
	const tabs = "\t\t\t\t\t\t\t\t\t\t\t\t\t\t\t"
	b = append(b, tabs[:d]...)
	b = hfmt.Appendf(b, f, args...)
	return b
}
