package ir

import (
	"fmt"
	"strconv"

	"tlog.app/go/tlog/tlwire"
)

type (
	// Operand is a value stored in an instruction slot.
	Operand interface {
		// Copy returns an unattached copy.
		Copy() Operand
		// Similar reports whether the operands denote the same value.
		Similar(Operand) bool
		// Instruction returns the instruction holding the operand, if any.
		Instruction() *Instruction

		String() string

		base() *operandBase
	}

	operandBase struct {
		instr *Instruction
	}

	Register struct {
		Num  int
		Type Type
	}

	RegisterOperand struct {
		operandBase

		Reg  *Register
		Type Type
	}

	IntConstantOperand struct {
		operandBase

		Value int32
	}

	LongConstantOperand struct {
		operandBase

		Value int64
	}

	NullConstantOperand struct {
		operandBase
	}

	ConditionOperand struct {
		operandBase

		Cond Cond
	}

	BasicBlock struct {
		Number int
	}

	BranchOperand struct {
		operandBase

		Target *BasicBlock
	}

	BasicBlockOperand struct {
		operandBase

		Block *BasicBlock
	}

	TypeOperand struct {
		operandBase

		Name string
	}

	MethodOperand struct {
		operandBase

		Name string
	}

	// LocationOperand names the memory location of a field or array element access.
	LocationOperand struct {
		operandBase

		Name  string
		Array bool
	}

	BranchProfileOperand struct {
		operandBase

		Taken float32
	}
)

func (b *operandBase) Instruction() *Instruction { return b.instr }

func NewRegister(r *Register) *RegisterOperand {
	return &RegisterOperand{Reg: r, Type: r.Type}
}

func NewInt(v int32) *IntConstantOperand { return &IntConstantOperand{Value: v} }

func NewLong(v int64) *LongConstantOperand { return &LongConstantOperand{Value: v} }

func (r *Register) String() string {
	if r == nil {
		return "<nil>"
	}

	return "t" + strconv.Itoa(r.Num) + r.Type.Suffix()
}

func (x *RegisterOperand) base() *operandBase {
	if x == nil {
		return nil
	}

	return &x.operandBase
}

func (x *RegisterOperand) Copy() Operand {
	return &RegisterOperand{Reg: x.Reg, Type: x.Type}
}

func (x *RegisterOperand) Similar(y Operand) bool {
	r, ok := y.(*RegisterOperand)

	return ok && r.Reg == x.Reg
}

func (x *RegisterOperand) String() string { return x.Reg.String() }

func (x *IntConstantOperand) base() *operandBase {
	if x == nil {
		return nil
	}

	return &x.operandBase
}

func (x *IntConstantOperand) Copy() Operand { return &IntConstantOperand{Value: x.Value} }

func (x *IntConstantOperand) Similar(y Operand) bool {
	c, ok := y.(*IntConstantOperand)

	return ok && c.Value == x.Value
}

func (x *IntConstantOperand) String() string { return strconv.FormatInt(int64(x.Value), 10) }

func (x *LongConstantOperand) base() *operandBase {
	if x == nil {
		return nil
	}

	return &x.operandBase
}

func (x *LongConstantOperand) Copy() Operand { return &LongConstantOperand{Value: x.Value} }

func (x *LongConstantOperand) Similar(y Operand) bool {
	c, ok := y.(*LongConstantOperand)

	return ok && c.Value == x.Value
}

func (x *LongConstantOperand) String() string { return strconv.FormatInt(x.Value, 10) + "L" }

func (x *NullConstantOperand) base() *operandBase {
	if x == nil {
		return nil
	}

	return &x.operandBase
}

func (x *NullConstantOperand) Copy() Operand { return &NullConstantOperand{} }

func (x *NullConstantOperand) Similar(y Operand) bool {
	_, ok := y.(*NullConstantOperand)

	return ok
}

func (x *NullConstantOperand) String() string { return "<null>" }

func (x *ConditionOperand) base() *operandBase {
	if x == nil {
		return nil
	}

	return &x.operandBase
}

func (x *ConditionOperand) Copy() Operand { return &ConditionOperand{Cond: x.Cond} }

func (x *ConditionOperand) Similar(y Operand) bool {
	c, ok := y.(*ConditionOperand)

	return ok && c.Cond == x.Cond
}

func (x *ConditionOperand) String() string { return x.Cond.String() }

func (x *BranchOperand) base() *operandBase {
	if x == nil {
		return nil
	}

	return &x.operandBase
}

func (x *BranchOperand) Copy() Operand { return &BranchOperand{Target: x.Target} }

func (x *BranchOperand) Similar(y Operand) bool {
	b, ok := y.(*BranchOperand)

	return ok && b.Target == x.Target
}

func (x *BranchOperand) String() string { return x.Target.String() }

func (x *BasicBlockOperand) base() *operandBase {
	if x == nil {
		return nil
	}

	return &x.operandBase
}

func (x *BasicBlockOperand) Copy() Operand { return &BasicBlockOperand{Block: x.Block} }

func (x *BasicBlockOperand) Similar(y Operand) bool {
	b, ok := y.(*BasicBlockOperand)

	return ok && b.Block == x.Block
}

func (x *BasicBlockOperand) String() string { return x.Block.String() }

func (b *BasicBlock) String() string {
	if b == nil {
		return "<nil>"
	}

	return "BB" + strconv.Itoa(b.Number)
}

func (x *TypeOperand) base() *operandBase {
	if x == nil {
		return nil
	}

	return &x.operandBase
}

func (x *TypeOperand) Copy() Operand { return &TypeOperand{Name: x.Name} }

func (x *TypeOperand) Similar(y Operand) bool {
	t, ok := y.(*TypeOperand)

	return ok && t.Name == x.Name
}

func (x *TypeOperand) String() string { return x.Name }

func (x *MethodOperand) base() *operandBase {
	if x == nil {
		return nil
	}

	return &x.operandBase
}

func (x *MethodOperand) Copy() Operand { return &MethodOperand{Name: x.Name} }

func (x *MethodOperand) Similar(y Operand) bool {
	m, ok := y.(*MethodOperand)

	return ok && m.Name == x.Name
}

func (x *MethodOperand) String() string { return x.Name }

func (x *LocationOperand) base() *operandBase {
	if x == nil {
		return nil
	}

	return &x.operandBase
}

func (x *LocationOperand) Copy() Operand { return &LocationOperand{Name: x.Name, Array: x.Array} }

func (x *LocationOperand) Similar(y Operand) bool {
	l, ok := y.(*LocationOperand)

	return ok && l.Name == x.Name && l.Array == x.Array
}

func (x *LocationOperand) String() string {
	if x.Array {
		return "<array " + x.Name + ">"
	}

	return "<" + x.Name + ">"
}

func (x *BranchProfileOperand) base() *operandBase {
	if x == nil {
		return nil
	}

	return &x.operandBase
}

func (x *BranchProfileOperand) Copy() Operand { return &BranchProfileOperand{Taken: x.Taken} }

func (x *BranchProfileOperand) Similar(y Operand) bool {
	p, ok := y.(*BranchProfileOperand)

	return ok && p.Taken == x.Taken
}

func (x *BranchProfileOperand) String() string {
	return fmt.Sprintf("Probability: %g", x.Taken)
}

// IntValue returns the value of an int or long constant operand.
func IntValue(x Operand) (int64, bool) {
	switch x := x.(type) {
	case *IntConstantOperand:
		return int64(x.Value), true
	case *LongConstantOperand:
		return x.Value, true
	}

	return 0, false
}

func (r *Register) TlogAppend(b []byte) []byte {
	var e tlwire.Encoder

	if r == nil {
		return e.AppendNil(b)
	}

	return e.AppendFormat(b, "t%d%s", r.Num, r.Type.Suffix())
}

func isNil(x Operand) bool {
	return x == nil || x.base() == nil
}
