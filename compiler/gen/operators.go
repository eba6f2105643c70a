package gen

import (
	"strings"

	"tlog.app/go/errors"

	"github.com/slowlang/irgen/compiler/ir"
	"github.com/slowlang/irgen/compiler/table"
)

var traitIdents = map[ir.Traits]string{
	ir.Move:        "ir.Move",
	ir.Branch:      "ir.Branch",
	ir.Conditional: "ir.Conditional",
	ir.Compare:     "ir.Compare",
	ir.Commutative: "ir.Commutative",
	ir.Load:        "ir.Load",
	ir.Store:       "ir.Store",
	ir.Call:        "ir.Call",
	ir.Return:      "ir.Return",
	ir.Alloc:       "ir.Alloc",
}

func operators(b []byte, t *table.Tables) ([]byte, error) {
	b = app(b, 0, "\n// Opcodes.\n")
	b = app(b, 0, "const (\n")

	for k, o := range t.Operators {
		if k == 0 {
			b = app(b, 1, "Opcode%s ir.Opcode = iota\n", table.GoName(o.Name))
		} else {
			b = app(b, 1, "Opcode%s\n", table.GoName(o.Name))
		}
	}

	b = app(b, 1, "NumOpcodes\n")
	b = app(b, 0, ")\n")

	b = app(b, 0, "\n// Operators is the operator table indexed by opcode.\n")
	b = app(b, 0, "var Operators = [NumOpcodes]ir.Operator{\n")

	for _, o := range t.Operators {
		var err error

		b, err = operator(b, t, o)
		if err != nil {
			return nil, errors.Wrap(err, "operator %v", o.Name)
		}
	}

	b = app(b, 0, "}\n")

	for _, o := range t.Operators {
		name := table.GoName(o.Name)

		b = app(b, 0, "\n// Op%s is the %s operator.\n", name, strings.ToLower(o.Name))
		b = app(b, 0, "var Op%s = &Operators[Opcode%s]\n", name, name)
	}

	return b, nil
}

func operator(b []byte, t *table.Tables, o *table.Operator) ([]byte, error) {
	f := t.Format(o.Format)
	if f == nil {
		return nil, errors.New("unknown format %v", o.Format)
	}

	b = app(b, 1, "{Opcode: Opcode%s, Name: %q, Format: %sTag", table.GoName(o.Name), strings.ToLower(o.Name), f.Name)

	if len(o.Traits) != 0 {
		var l []string

		for _, tn := range o.Traits {
			tr, ok := ir.TraitByName(tn)
			if !ok {
				return nil, errors.New("unknown trait %v", tn)
			}

			l = append(l, traitIdents[tr])
		}

		b = app(b, 0, ", Traits: %s", strings.Join(l, " | "))
	}

	for _, x := range []struct {
		name string
		n    int
	}{
		{"NumDefs", f.Count(table.Def)},
		{"NumDefUses", f.Count(table.DefUse)},
		{"NumUses", f.Count(table.Use)},
	} {
		if x.n != 0 {
			b = app(b, 0, ", %s: %d", x.name, x.n)
		}
	}

	if f.Var != nil && f.Var.Kind == table.Def {
		b = app(b, 0, ", VarDefs: true")
	}

	b = app(b, 0, "},\n")

	return b, nil
}
