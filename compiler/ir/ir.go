package ir

import (
	"strings"

	"tlog.app/go/tlog/tlwire"
)

type (
	Opcode uint16

	// Format is an instruction format tag.
	// Tags are assigned by the generator in format declaration order.
	Format uint8

	Traits uint16

	// Operator describes an IR operator.
	// Slot counts describe the fixed part of the operand array
	// laid out as defs, def-uses, uses. If VarDefs is set
	// the trailing variable group holds defs, otherwise it holds uses.
	Operator struct {
		Opcode Opcode
		Name   string
		Format Format
		Traits Traits

		NumDefs    int
		NumDefUses int
		NumUses    int
		VarDefs    bool
	}

	Type uint8

	Cond uint8
)

const (
	Move Traits = 1 << iota
	Branch
	Conditional
	Compare
	Commutative
	Load
	Store
	Call
	Return
	Alloc
)

const (
	Void Type = iota
	Int
	Long
	Float
	Double
	Ref
)

const (
	EQ Cond = iota
	NE
	LT
	GE
	GT
	LE
)

var traitNames = []string{"move", "branch", "conditional", "compare", "commutative", "load", "store", "call", "return", "alloc"}

// TraitByName returns the trait with the given table name.
func TraitByName(name string) (Traits, bool) {
	for i, n := range traitNames {
		if n == name {
			return 1 << i, true
		}
	}

	return 0, false
}

func (t Traits) Has(x Traits) bool { return t&x == x }

func (t Traits) String() string {
	if t == 0 {
		return "none"
	}

	var b strings.Builder

	for i, n := range traitNames {
		if t&(1<<i) == 0 {
			continue
		}

		if b.Len() != 0 {
			b.WriteByte('|')
		}

		b.WriteString(n)
	}

	return b.String()
}

// NumFixed is the number of operand slots before the variable group.
func (o *Operator) NumFixed() int {
	return o.NumDefs + o.NumDefUses + o.NumUses
}

func (o *Operator) String() string {
	if o == nil {
		return "<nil>"
	}

	return o.Name
}

func (o *Operator) TlogAppend(b []byte) []byte {
	var e tlwire.Encoder

	if o == nil {
		return e.AppendNil(b)
	}

	return e.AppendFormat(b, "%s", o.Name)
}

func (t Type) String() string {
	switch t {
	case Void:
		return "void"
	case Int:
		return "int"
	case Long:
		return "long"
	case Float:
		return "float"
	case Double:
		return "double"
	case Ref:
		return "ref"
	}

	return "type?"
}

// Suffix is the short type marker used when printing registers.
func (t Type) Suffix() string {
	switch t {
	case Int:
		return "i"
	case Long:
		return "l"
	case Float:
		return "f"
	case Double:
		return "d"
	case Ref:
		return "a"
	}

	return "v"
}

func (c Cond) String() string {
	switch c {
	case EQ:
		return "=="
	case NE:
		return "!="
	case LT:
		return "<"
	case GE:
		return ">="
	case GT:
		return ">"
	case LE:
		return "<="
	}

	return "cond?"
}

// Flip returns the condition with swapped operands: a c b == b c.Flip() a.
func (c Cond) Flip() Cond {
	switch c {
	case LT:
		return GT
	case GE:
		return LE
	case GT:
		return LT
	case LE:
		return GE
	}

	return c
}

// Negate returns the condition that holds exactly when c does not.
func (c Cond) Negate() Cond {
	switch c {
	case EQ:
		return NE
	case NE:
		return EQ
	case LT:
		return GE
	case GE:
		return LT
	case GT:
		return LE
	case LE:
		return GT
	}

	return c
}

func (c Cond) Eval(a, b int64) bool {
	switch c {
	case EQ:
		return a == b
	case NE:
		return a != b
	case LT:
		return a < b
	case GE:
		return a >= b
	case GT:
		return a > b
	case LE:
		return a <= b
	}

	panic(c)
}
