package gen

import (
	"strconv"

	"github.com/slowlang/irgen/compiler/table"
)

func carrierView(b []byte, c *table.Carrier) []byte {
	tp := c.Name + "View"
	idx := lowerFirst(c.Name) + "Index"
	gt := goType(c.Type)
	at := "c.IndexOf" + c.Slot + "(i)"

	b = app(b, 0, "\n// %s is the view of the %s operand across all formats declaring it.\n", tp, c.Slot)
	b = app(b, 0, "type %s struct{}\n", tp)
	b = app(b, 0, "\n// %s is the %s view.\n", c.Name, c.Name)
	b = app(b, 0, "var %s %s\n", c.Name, tp)

	b = app(b, 0, "\nvar %s = [NumFormats]int8{", idx)

	for k, x := range c.Index {
		if k != 0 {
			b = append(b, ", "...)
		}

		b = strconv.AppendInt(b, int64(x), 10)
	}

	b = app(b, 0, "}\n")

	b = app(b, 0, "\n// Conforms reports whether i has a format with the %s operand.\n", c.Slot)
	b = app(b, 0, "func (%s) Conforms(i *ir.Instruction) bool {\n", tp)
	b = app(b, 1, "return %s[i.Operator().Format] >= 0\n", idx)
	b = app(b, 0, "}\n")

	b = app(b, 0, "\n// ConformsOperator reports whether o has a format with the %s operand.\n", c.Slot)
	b = app(b, 0, "func (%s) ConformsOperator(o *ir.Operator) bool {\n", tp)
	b = app(b, 1, "return %s[o.Format] >= 0\n", idx)
	b = app(b, 0, "}\n")

	b = app(b, 0, "\nfunc (%s) check(i *ir.Instruction) {\n", tp)
	b = app(b, 1, "if ir.Checks && %s[i.Operator().Format] < 0 {\n", idx)
	b = app(b, 2, "ir.Fail(i, %q)\n", c.Name)
	b = app(b, 1, "}\n")
	b = app(b, 0, "}\n")

	b = app(b, 0, "\n// %s returns the %s operand of i.\n", c.Slot, c.Slot)
	b = app(b, 0, "func (c %s) %s(i *ir.Instruction) %s {\n", tp, c.Slot, gt)
	b = app(b, 1, "c.check(i)\n\n")
	b = typedReturn(b, c.Type, "i.Operand("+at+")")
	b = app(b, 0, "}\n")

	b = app(b, 0, "\n// Set%s stores x as the %s operand of i.\n", c.Slot, c.Slot)
	b = app(b, 0, "func (c %s) Set%s(i *ir.Instruction, x %s) {\n", tp, c.Slot, gt)
	b = app(b, 1, "c.check(i)\n\n")
	b = app(b, 1, "i.SetOperand(%s, x)\n", at)
	b = app(b, 0, "}\n")

	b = app(b, 0, "\n// Clear%s detaches and returns the %s operand of i.\n", c.Slot, c.Slot)
	b = app(b, 0, "func (c %s) Clear%s(i *ir.Instruction) %s {\n", tp, c.Slot, gt)
	b = app(b, 1, "c.check(i)\n\n")
	b = typedReturn(b, c.Type, "i.ClearOperand("+at+")")
	b = app(b, 0, "}\n")

	b = app(b, 0, "\n// IndexOf%s returns the slot index of the %s operand in the format of i.\n", c.Slot, c.Slot)
	b = app(b, 0, "func (%s) IndexOf%s(i *ir.Instruction) int {\n", tp, c.Slot)
	b = app(b, 1, "return int(%s[i.Operator().Format])\n", idx)
	b = app(b, 0, "}\n")

	b = app(b, 0, "\n// Has%s reports whether i has the %s operand.\n", c.Slot, c.Slot)
	b = app(b, 0, "func (c %s) Has%s(i *ir.Instruction) bool {\n", tp, c.Slot)
	b = app(b, 1, "c.check(i)\n\n")
	b = app(b, 1, "return i.Operand(%s) != nil\n", at)
	b = app(b, 0, "}\n")

	return b
}
