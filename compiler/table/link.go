package table

import (
	"context"
	"unicode"

	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/slowlang/irgen/compiler/ir"
	"github.com/slowlang/irgen/compiler/set"
)

// MaxFormats is the number of format tags ir.Format can hold next to NumFormats.
const MaxFormats = 1<<8 - 1

// MaxFixedSlots bounds carrier offsets stored as int8.
const MaxFixedSlots = 127

// Link validates parsed tables, assigns format tags and opcodes
// and computes carrier offset tables.
func Link(ctx context.Context, fs []*Format, cs []*Carrier, ops []*Operator) (t *Tables, err error) {
	tr, ctx := tlog.SpawnFromContextAndWrap(ctx, "link tables", "formats", len(fs), "carriers", len(cs), "operators", len(ops))
	defer tr.Finish("err", &err)

	if len(fs) > MaxFormats {
		return nil, errors.New("too many formats: %d > %d", len(fs), MaxFormats)
	}

	t = &Tables{
		Formats:   fs,
		Carriers:  cs,
		Operators: ops,
		byName:    make(map[string]*Format, len(fs)),
	}

	idents := map[string]Pos{}

	ident := func(name string, pos Pos) error {
		if prev, ok := idents[name]; ok {
			return PosError{Pos: pos, Err: errors.New("identifier %v clashes with %v", name, prev)}
		}

		idents[name] = pos

		return nil
	}

	for _, name := range []string{"NumFormats", "NumOpcodes", "Operators", "OperatorByName", "FormatName", "Lookup"} {
		_ = ident(name, Pos{File: "<builtin>"})
	}

	for tag, f := range fs {
		f.Tag = tag

		if err = checkFormat(f); err != nil {
			return nil, PosError{Pos: f.Pos, Err: err}
		}

		for _, name := range []string{f.Name, f.Name + "Format", f.Name + "Tag"} {
			if err = ident(name, f.Pos); err != nil {
				return nil, err
			}
		}

		t.byName[f.Name] = f
	}

	for _, c := range cs {
		if err = linkCarrier(t, c); err != nil {
			return nil, PosError{Pos: c.Pos, Err: err}
		}

		for _, name := range []string{c.Name, c.Name + "View"} {
			if err = ident(name, c.Pos); err != nil {
				return nil, err
			}
		}
	}

	used := set.MakeBits(0)

	for opcode, o := range ops {
		o.Opcode = opcode

		f := t.byName[o.Format]
		if f == nil {
			return nil, PosError{Pos: o.Pos, Err: errors.New("operator %v: unknown format %v", o.Name, o.Format)}
		}

		used.Set(f.Tag)

		for _, tn := range o.Traits {
			if _, ok := ir.TraitByName(tn); !ok {
				return nil, PosError{Pos: o.Pos, Err: errors.New("operator %v: unknown trait %v", o.Name, tn)}
			}
		}

		for _, name := range []string{"Op" + GoName(o.Name), "Opcode" + GoName(o.Name)} {
			if err = ident(name, o.Pos); err != nil {
				return nil, err
			}
		}
	}

	for _, f := range fs {
		if !used.IsSet(f.Tag) {
			tr.Printw("format has no operators", "format", f.Name, "pos", f.Pos)
		}
	}

	return t, nil
}

func checkFormat(f *Format) error {
	if !exported(f.Name) {
		return errors.New("format name %v is not exported", f.Name)
	}

	if f.NumFixed() > MaxFixedSlots {
		return errors.New("%v: too many fixed slots: %d > %d", f.Name, f.NumFixed(), MaxFixedSlots)
	}

	last := Def

	for _, s := range f.Slots {
		if err := checkSlot(s); err != nil {
			return errors.Wrap(err, "%v", f.Name)
		}

		if s.Kind < last {
			return errors.New("%v: %v slot %v after %v slots", f.Name, s.Kind, s.Name, last)
		}

		last = s.Kind
	}

	if f.Var != nil {
		if len(f.Var.Slots) == 0 {
			return errors.New("%v: empty var group", f.Name)
		}

		if f.Var.Kind == DefUse {
			return errors.New("%v: var group can't be defuse", f.Name)
		}

		if f.Var.Kind == Def && (f.Count(DefUse) != 0 || f.Count(Use) != 0) {
			return errors.New("%v: var def group after fixed uses", f.Name)
		}

		for _, s := range f.Var.Slots {
			if err := checkSlot(s); err != nil {
				return errors.Wrap(err, "%v", f.Name)
			}
		}
	}

	seen := map[string]bool{}

	for _, m := range f.methodNames() {
		if seen[m] {
			return errors.New("%v: generated method %v clashes", f.Name, m)
		}

		seen[m] = true
	}

	seen = map[string]bool{}

	for _, p := range f.paramNames() {
		if seen[p] || reservedParams[p] {
			return errors.New("%v: parameter name %v clashes", f.Name, p)
		}

		seen[p] = true
	}

	return nil
}

func checkSlot(s Slot) error {
	if !exported(s.Name) {
		return errors.New("slot name %v is not exported", s.Name)
	}

	for _, t := range OperandTypes {
		if t == s.Type {
			return nil
		}
	}

	return errors.New("slot %v: unknown operand type %v", s.Name, s.Type)
}

func linkCarrier(t *Tables, c *Carrier) error {
	carried := set.MakeBits(0)

	c.Index = make([]int, len(t.Formats))

	for _, f := range t.Formats {
		idx, ok := f.Index(c.Slot)
		if !ok {
			c.Index[f.Tag] = -1
			continue
		}

		carried.Set(f.Tag)

		c.Index[f.Tag] = idx

		typ := f.Slots[idx].Type

		switch {
		case c.Type == "":
			c.Type = typ
		case c.Type != typ:
			c.Type = AnyOperand
		}
	}

	if carried.Size() == 0 {
		return errors.New("carrier %v: no format has slot %v", c.Name, c.Slot)
	}

	return nil
}

func exported(name string) bool {
	for _, r := range name {
		return unicode.IsUpper(r)
	}

	return false
}
