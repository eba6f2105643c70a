package gen

import (
	"strconv"

	"github.com/slowlang/irgen/compiler/table"
)

func formatTags(b []byte, t *table.Tables) []byte {
	b = app(b, 0, "\n// Format tags.\n")
	b = app(b, 0, "const (\n")

	for k, f := range t.Formats {
		if k == 0 {
			b = app(b, 1, "%sTag ir.Format = iota\n", f.Name)
		} else {
			b = app(b, 1, "%sTag\n", f.Name)
		}
	}

	b = app(b, 1, "NumFormats\n")
	b = app(b, 0, ")\n")

	b = app(b, 0, "\nvar formatNames = [NumFormats]string{\n")

	for _, f := range t.Formats {
		b = app(b, 1, "%q,\n", f.Name)
	}

	b = app(b, 0, "}\n")

	return b
}

func formatView(b []byte, f *table.Format) []byte {
	tp := f.Name + "Format"

	b = app(b, 0, "\n// %s is the view of instructions in the %s format.\n", tp, f.Name)

	if len(f.Slots) != 0 || f.Var != nil {
		b = app(b, 0, "//\n")

		for _, s := range f.Slots {
			b = app(b, 0, "//   - %s: %s\n", s.Name, slotDoc(s))
		}

		if f.Var != nil {
			for _, s := range f.Var.Slots {
				b = app(b, 0, "//   - %s(k): %s\n", s.Name, slotDoc(s))
			}
		}
	}

	b = app(b, 0, "type %s struct{}\n", tp)
	b = app(b, 0, "\n// %s is the %s format view.\n", f.Name, f.Name)
	b = app(b, 0, "var %s %s\n", f.Name, tp)

	b = conforms(b, f)

	for k, s := range f.Slots {
		b = fixedSlot(b, f, k, s)
	}

	if f.Var != nil {
		for off, s := range f.Var.Slots {
			b = varSlot(b, f, off, s)
		}
	}

	b = create(b, f, false)
	b = create(b, f, true)

	return b
}

func conforms(b []byte, f *table.Format) []byte {
	tp := f.Name + "Format"
	tag := f.Name + "Tag"

	b = app(b, 0, "\n// Conforms reports whether i has the %s format.\n", f.Name)
	b = app(b, 0, "func (%s) Conforms(i *ir.Instruction) bool {\n", tp)
	b = app(b, 1, "return i.Operator().Format == %s\n", tag)
	b = app(b, 0, "}\n")

	b = app(b, 0, "\n// ConformsOperator reports whether o has the %s format.\n", f.Name)
	b = app(b, 0, "func (%s) ConformsOperator(o *ir.Operator) bool {\n", tp)
	b = app(b, 1, "return o.Format == %s\n", tag)
	b = app(b, 0, "}\n")

	b = app(b, 0, "\nfunc (%s) check(i *ir.Instruction) {\n", tp)
	b = app(b, 1, "if ir.Checks && i.Operator().Format != %s {\n", tag)
	b = app(b, 2, "ir.Fail(i, %q)\n", f.Name)
	b = app(b, 1, "}\n")
	b = app(b, 0, "}\n")

	b = app(b, 0, "\nfunc (%s) checkOperator(o *ir.Operator) {\n", tp)
	b = app(b, 1, "if ir.Checks && o.Format != %s {\n", tag)
	b = app(b, 2, "ir.FailOperator(o, %q)\n", f.Name)
	b = app(b, 1, "}\n")
	b = app(b, 0, "}\n")

	return b
}

func fixedSlot(b []byte, f *table.Format, idx int, s table.Slot) []byte {
	tp := f.Name + "Format"
	gt := goType(s.Type)
	at := strconv.Itoa(idx)

	b = app(b, 0, "\n// %s returns the %s operand of i.\n", s.Name, s.Name)
	b = app(b, 0, "func (f %s) %s(i *ir.Instruction) %s {\n", tp, s.Name, gt)
	b = app(b, 1, "f.check(i)\n\n")
	b = typedReturn(b, s.Type, "i.Operand("+at+")")
	b = app(b, 0, "}\n")

	b = app(b, 0, "\n// Set%s stores x as the %s operand of i.\n", s.Name, s.Name)
	b = app(b, 0, "func (f %s) Set%s(i *ir.Instruction, x %s) {\n", tp, s.Name, gt)
	b = app(b, 1, "f.check(i)\n\n")
	b = app(b, 1, "i.SetOperand(%s, x)\n", at)
	b = app(b, 0, "}\n")

	b = app(b, 0, "\n// Clear%s detaches and returns the %s operand of i.\n", s.Name, s.Name)
	b = app(b, 0, "func (f %s) Clear%s(i *ir.Instruction) %s {\n", tp, s.Name, gt)
	b = app(b, 1, "f.check(i)\n\n")
	b = typedReturn(b, s.Type, "i.ClearOperand("+at+")")
	b = app(b, 0, "}\n")

	b = app(b, 0, "\n// IndexOf%s returns the slot index of the %s operand.\n", s.Name, s.Name)
	b = app(b, 0, "func (%s) IndexOf%s() int {\n", tp, s.Name)
	b = app(b, 1, "return %s\n", at)
	b = app(b, 0, "}\n")

	b = app(b, 0, "\n// Has%s reports whether i has the %s operand.\n", s.Name, s.Name)
	b = app(b, 0, "func (f %s) Has%s(i *ir.Instruction) bool {\n", tp, s.Name)
	b = app(b, 1, "f.check(i)\n\n")
	b = app(b, 1, "return i.Operand(%s) != nil\n", at)
	b = app(b, 0, "}\n")

	return b
}

func varSlot(b []byte, f *table.Format, off int, s table.Slot) []byte {
	tp := f.Name + "Format"
	gt := goType(s.Type)
	p := table.Plural(s.Name)
	at := "f.IndexOf" + s.Name + "(k)"
	n := f.NumFixed()
	stride := f.Stride()

	b = app(b, 0, "\n// %s returns the k-th %s operand of i.\n", s.Name, s.Name)
	b = app(b, 0, "func (f %s) %s(i *ir.Instruction, k int) %s {\n", tp, s.Name, gt)
	b = app(b, 1, "f.check(i)\n\n")
	b = typedReturn(b, s.Type, "i.Operand("+at+")")
	b = app(b, 0, "}\n")

	b = app(b, 0, "\n// Set%s stores x as the k-th %s operand of i.\n", s.Name, s.Name)
	b = app(b, 0, "func (f %s) Set%s(i *ir.Instruction, k int, x %s) {\n", tp, s.Name, gt)
	b = app(b, 1, "f.check(i)\n\n")
	b = app(b, 1, "i.SetOperand(%s, x)\n", at)
	b = app(b, 0, "}\n")

	b = app(b, 0, "\n// Clear%s detaches and returns the k-th %s operand of i.\n", s.Name, s.Name)
	b = app(b, 0, "func (f %s) Clear%s(i *ir.Instruction, k int) %s {\n", tp, s.Name, gt)
	b = app(b, 1, "f.check(i)\n\n")
	b = typedReturn(b, s.Type, "i.ClearOperand("+at+")")
	b = app(b, 0, "}\n")

	b = app(b, 0, "\n// IndexOf%s returns the slot index of the k-th %s operand.\n", s.Name, s.Name)
	b = app(b, 0, "func (%s) IndexOf%s(k int) int {\n", tp, s.Name)
	b = app(b, 1, "return %s\n", linear(n+off, "k", stride))
	b = app(b, 0, "}\n")

	b = app(b, 0, "\n// Has%s reports whether i has the k-th %s operand.\n", s.Name, s.Name)
	b = app(b, 0, "func (f %s) Has%s(i *ir.Instruction, k int) bool {\n", tp, s.Name)
	b = app(b, 1, "f.check(i)\n\n")
	b = app(b, 1, "return i.Operand(%s) != nil\n", at)
	b = app(b, 0, "}\n")

	b = app(b, 0, "\n// NumberOf%s returns the number of %s operands of i.\n", p, s.Name)
	b = app(b, 0, "func (f %s) NumberOf%s(i *ir.Instruction) int {\n", tp, p)
	b = app(b, 1, "f.check(i)\n\n")
	b = app(b, 1, "return %s\n", count(n, stride))
	b = app(b, 0, "}\n")

	b = app(b, 0, "\n// ResizeNumberOf%s changes the number of %s operands of i to n.\n", p, s.Name)
	b = app(b, 0, "func (f %s) ResizeNumberOf%s(i *ir.Instruction, n int) {\n", tp, p)
	b = app(b, 1, "f.check(i)\n\n")
	b = app(b, 1, "i.ResizeOperands(%s)\n", linear(n, "n", stride))
	b = app(b, 0, "}\n")

	b = app(b, 0, "\n// IndexOf%s returns the slot index of the first %s operand.\n", p, s.Name)
	b = app(b, 0, "func (%s) IndexOf%s() int {\n", tp, p)
	b = app(b, 1, "return %d\n", n+off)
	b = app(b, 0, "}\n")

	b = app(b, 0, "\n// Has%s reports whether i has any %s operands.\n", p, s.Name)
	b = app(b, 0, "func (f %s) Has%s(i *ir.Instruction) bool {\n", tp, p)
	b = app(b, 1, "f.check(i)\n\n")
	b = app(b, 1, "return i.NumOperands() > %d\n", n+off)
	b = app(b, 0, "}\n")

	return b
}

func create(b []byte, f *table.Format, mutate bool) []byte {
	tp := f.Name + "Format"

	if mutate {
		b = app(b, 0, "\n// Mutate turns i into a %s instruction in place and returns it.\n", f.Name)
		b = app(b, 0, "func (f %s) Mutate(i *ir.Instruction, o *ir.Operator", tp)
	} else {
		b = app(b, 0, "\n// Create returns a new %s instruction.\n", f.Name)
		b = app(b, 0, "func (f %s) Create(o *ir.Operator", tp)
	}

	for _, s := range f.Slots {
		b = app(b, 0, ", %s %s", table.ParamName(s.Name), goType(s.Type))
	}

	size := strconv.Itoa(f.NumFixed())

	if f.Var != nil {
		cp := table.CountParam(f)

		b = app(b, 0, ", %s int", cp)
		size = "size"
	}

	b = app(b, 0, ") *ir.Instruction {\n")
	b = app(b, 1, "f.checkOperator(o)\n\n")

	if f.Var != nil {
		b = app(b, 1, "size := %s\n", linear(f.NumFixed(), table.CountParam(f), f.Stride()))
	}

	if mutate {
		b = app(b, 1, "i.Reset(o, %s)\n", size)
	} else {
		b = app(b, 1, "i := ir.New(o, %s)\n", size)
	}

	for k, s := range f.Slots {
		b = app(b, 1, "i.SetOperand(%d, %s)\n", k, table.ParamName(s.Name))
	}

	b = app(b, 0, "\n")
	b = app(b, 1, "return i\n")
	b = app(b, 0, "}\n")

	return b
}

func typedReturn(b []byte, typ, expr string) []byte {
	if typ == table.AnyOperand {
		return app(b, 1, "return %s\n", expr)
	}

	b = app(b, 1, "x, _ := %s.(%s)\n\n", expr, goType(typ))
	b = app(b, 1, "return x\n")

	return b
}

func slotDoc(s table.Slot) string {
	d := s.Kind.String() + " " + s.Type

	if s.Optional {
		d += ", optional"
	}

	return d
}

// linear renders c + v*stride.
func linear(c int, v string, stride int) string {
	r := v
	if stride != 1 {
		r = v + "*" + strconv.Itoa(stride)
	}

	switch {
	case c == 0 && stride == 1:
		return v
	case c == 0:
		return v + " * " + strconv.Itoa(stride)
	default:
		return strconv.Itoa(c) + " + " + r
	}
}

// count renders (i.NumOperands() - fixed) / stride.
func count(fixed, stride int) string {
	r := "i.NumOperands()"

	switch {
	case fixed == 0 && stride == 1:
		return r
	case fixed == 0:
		return r + " / " + strconv.Itoa(stride)
	case stride == 1:
		return r + " - " + strconv.Itoa(fixed)
	default:
		return "(" + r + " - " + strconv.Itoa(fixed) + ") / " + strconv.Itoa(stride)
	}
}
