package table

import (
	"bufio"
	"bytes"
	"context"

	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/slowlang/irgen/compiler/parse"
)

var (
	kindParser = parse.AnyOf{parse.Keyword("defuse"), parse.Keyword("def"), parse.Keyword("use")}

	slotParser = parse.AllOf{
		kindParser,
		parse.Spaced(parse.Ident{}),
		parse.Spaced(parse.Ident{}),
		parse.Optional{Parser: parse.Spaced(parse.Keyword("opt"))},
	}

	formatLine = parse.AnyOf{
		parse.AllOf{parse.Keyword("format"), parse.Spaced(parse.Ident{})},
		parse.AllOf{
			parse.Keyword("var"),
			parse.Spaced(kindParser),
			parse.Spaced(parse.List{
				Of:  parse.AllOf{parse.Spaced(parse.Ident{}), parse.Spaced(parse.Ident{})},
				Sep: parse.Spaced(parse.Const(",")),
			}),
		},
		parse.AllOf{parse.Keyword("carrier"), parse.Spaced(parse.Ident{}), parse.Spaced(parse.Ident{})},
		slotParser,
	}

	operatorLine = parse.List{
		Of:  parse.Ident{},
		Sep: parse.Spaced(parse.None{}),
	}
)

// ParseFormats reads the formats table.
func ParseFormats(ctx context.Context, file string, text []byte) (fs []*Format, cs []*Carrier, err error) {
	tr := tlog.SpanFromContext(ctx)

	var cur *Format

	err = scanLines(file, text, func(pos Pos, line []byte) error {
		x, err := parse.Line(ctx, formatLine, line)
		if err != nil {
			return err
		}

		l := x.([]parse.Node)

		switch l[0] {
		case "format":
			cur = &Format{
				Name: l[1].(string),
				Pos:  pos,
			}

			fs = append(fs, cur)
		case "carrier":
			cur = nil

			cs = append(cs, &Carrier{
				Name: l[1].(string),
				Slot: l[2].(string),
				Pos:  pos,
			})
		case "var":
			if cur == nil {
				return errors.New("var group outside of format")
			}
			if cur.Var != nil {
				return errors.New("second var group in %v", cur.Name)
			}

			kind, _ := ParseKind(l[1].(string))

			g := &VarGroup{Kind: kind}

			for _, p := range l[2].([]parse.Node) {
				p := p.([]parse.Node)

				g.Slots = append(g.Slots, Slot{
					Name: p[0].(string),
					Type: p[1].(string),
					Kind: kind,
				})
			}

			cur.Var = g
		default:
			if cur == nil {
				return errors.New("slot outside of format")
			}
			if cur.Var != nil {
				return errors.New("fixed slot after var group in %v", cur.Name)
			}

			kind, _ := ParseKind(l[0].(string))
			_, opt := l[3].(string)

			cur.Slots = append(cur.Slots, Slot{
				Name:     l[1].(string),
				Type:     l[2].(string),
				Kind:     kind,
				Optional: opt,
			})
		}

		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	tr.V("table").Printw("formats parsed", "file", file, "formats", len(fs), "carriers", len(cs))

	return fs, cs, nil
}

// ParseOperators reads the operators table.
func ParseOperators(ctx context.Context, file string, text []byte) (ops []*Operator, err error) {
	tr := tlog.SpanFromContext(ctx)

	err = scanLines(file, text, func(pos Pos, line []byte) error {
		x, err := parse.Line(ctx, operatorLine, line)
		if err != nil {
			return err
		}

		l := x.([]parse.Node)
		if len(l) < 2 {
			return errors.New("operator format expected")
		}

		o := &Operator{
			Name:   l[0].(string),
			Format: l[1].(string),
			Pos:    pos,
		}

		for _, t := range l[2:] {
			o.Traits = append(o.Traits, t.(string))
		}

		ops = append(ops, o)

		return nil
	})
	if err != nil {
		return nil, err
	}

	tr.V("table").Printw("operators parsed", "file", file, "operators", len(ops))

	return ops, nil
}

func scanLines(file string, text []byte, f func(pos Pos, line []byte) error) error {
	s := bufio.NewScanner(bytes.NewReader(text))

	pos := Pos{File: file}

	for s.Scan() {
		pos.Line++

		line := s.Bytes()

		if parse.IsBlank(line) {
			continue
		}

		err := f(pos, line)
		if err != nil {
			return PosError{Pos: pos, Err: err}
		}
	}

	if err := s.Err(); err != nil {
		return errors.Wrap(err, "scanner")
	}

	return nil
}
