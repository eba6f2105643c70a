package ir

import (
	"strings"

	"tlog.app/go/tlog/tlwire"
)

type (
	// Instruction is an operator applied to a flat array of operand slots.
	// The meaning of each slot is defined by the operator's format.
	Instruction struct {
		op  *Operator
		ops []Operand
	}
)

// New allocates an instruction with n empty slots.
func New(op *Operator, n int) *Instruction {
	return &Instruction{
		op:  op,
		ops: make([]Operand, n),
	}
}

func (i *Instruction) Operator() *Operator { return i.op }

func (i *Instruction) NumOperands() int { return len(i.ops) }

func (i *Instruction) Operand(k int) Operand {
	return i.ops[k]
}

// SetOperand stores x in slot k.
// The operand previously held in the slot is detached.
// If x already sits in some other slot, a copy of it is stored instead.
func (i *Instruction) SetOperand(k int, x Operand) {
	if isNil(x) {
		x = nil
	}

	old := i.ops[k]
	if old == x && x != nil {
		return
	}

	if old != nil {
		old.base().instr = nil
	}

	if x != nil {
		if x.base().instr != nil {
			x = x.Copy()
		}

		x.base().instr = i
	}

	i.ops[k] = x
}

// ClearOperand empties slot k and returns the detached operand.
func (i *Instruction) ClearOperand(k int) Operand {
	x := i.ops[k]
	if x == nil {
		return nil
	}

	x.base().instr = nil
	i.ops[k] = nil

	return x
}

// ResizeOperands changes the number of slots to n.
// New slots are empty, dropped operands are detached.
func (i *Instruction) ResizeOperands(n int) {
	if n < 0 {
		panic(n)
	}

	for k := n; k < len(i.ops); k++ {
		i.ClearOperand(k)
	}

	if n <= cap(i.ops) {
		l := len(i.ops)
		i.ops = i.ops[:n]

		for k := l; k < n; k++ {
			i.ops[k] = nil
		}

		return
	}

	ops := make([]Operand, n)
	copy(ops, i.ops)

	i.ops = ops
}

// Reset turns i into an instruction of op with n empty slots.
// The instruction keeps its identity, all its operands are detached.
func (i *Instruction) Reset(op *Operator, n int) {
	for k := range i.ops {
		i.ClearOperand(k)
	}

	i.op = op
	i.ResizeOperands(n)
}

// Copy returns a new instruction with the same operator and copies of the operands.
func (i *Instruction) Copy() *Instruction {
	c := New(i.op, len(i.ops))

	for k, x := range i.ops {
		if x != nil {
			c.SetOperand(k, x.Copy())
		}
	}

	return c
}

// NumDefs is the number of slots written by the instruction, def-uses included.
func (i *Instruction) NumDefs() int {
	n := i.op.NumDefs + i.op.NumDefUses

	if i.op.VarDefs {
		n += len(i.ops) - i.op.NumFixed()
	}

	return n
}

// NumUses is the number of slots read by the instruction, def-uses included.
func (i *Instruction) NumUses() int {
	if i.op.VarDefs {
		return i.op.NumDefUses + i.op.NumUses
	}

	return len(i.ops) - i.op.NumDefs
}

// IsPureUse reports whether slot k is only read.
func (i *Instruction) IsPureUse(k int) bool {
	if i.op.VarDefs {
		return k >= i.op.NumDefs+i.op.NumDefUses && k < i.op.NumFixed()
	}

	return k >= i.op.NumDefs+i.op.NumDefUses
}

// RangeDefs calls f for each non-empty def slot until f returns false.
func (i *Instruction) RangeDefs(f func(k int, x Operand) bool) {
	n := i.op.NumDefs + i.op.NumDefUses

	if !i.rangeSlots(0, n, f) {
		return
	}

	if i.op.VarDefs {
		i.rangeSlots(i.op.NumFixed(), len(i.ops), f)
	}
}

// RangeUses calls f for each non-empty use slot until f returns false.
func (i *Instruction) RangeUses(f func(k int, x Operand) bool) {
	end := len(i.ops)
	if i.op.VarDefs {
		end = i.op.NumFixed()
	}

	i.rangeSlots(i.op.NumDefs, end, f)
}

func (i *Instruction) rangeSlots(st, end int, f func(k int, x Operand) bool) bool {
	for k := st; k < end && k < len(i.ops); k++ {
		x := i.ops[k]
		if x == nil {
			continue
		}

		if !f(k, x) {
			return false
		}
	}

	return true
}

func (i *Instruction) String() string {
	var b strings.Builder

	b.WriteString(i.op.String())

	sep := " "

	i.RangeDefs(func(k int, x Operand) bool {
		b.WriteString(sep)
		b.WriteString(x.String())
		sep = ", "

		return true
	})

	if sep == ", " {
		sep = " = "
	}

	i.RangeUses(func(k int, x Operand) bool {
		if !i.IsPureUse(k) {
			return true
		}

		b.WriteString(sep)
		b.WriteString(x.String())
		sep = ", "

		return true
	})

	return b.String()
}

func (i *Instruction) TlogAppend(b []byte) []byte {
	var e tlwire.Encoder

	if i == nil {
		return e.AppendNil(b)
	}

	return e.AppendFormat(b, "%s", i.String())
}
