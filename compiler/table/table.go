package table

import (
	"fmt"

	"tlog.app/go/tlog/tlwire"
)

type (
	Kind uint8

	// Slot is a named operand slot of a format.
	Slot struct {
		Name     string
		Type     string
		Kind     Kind
		Optional bool `json:",omitempty"`
	}

	// VarGroup is the trailing run of repeated slots.
	// Each repetition holds all Slots in order.
	VarGroup struct {
		Kind  Kind
		Slots []Slot
	}

	Format struct {
		Name  string
		Tag   int
		Slots []Slot
		Var   *VarGroup `json:",omitempty"`

		Pos Pos `json:"-"`
	}

	// Carrier exposes one slot name across all formats declaring it.
	Carrier struct {
		Name string
		Slot string
		Type string

		// Index is the slot index per format tag, -1 if not carried.
		Index []int

		Pos Pos `json:"-"`
	}

	Operator struct {
		Name   string
		Format string
		Traits []string `json:",omitempty"`
		Opcode int

		Pos Pos `json:"-"`
	}

	Tables struct {
		Formats   []*Format
		Carriers  []*Carrier
		Operators []*Operator

		byName map[string]*Format
	}

	Pos struct {
		File string
		Line int
	}

	PosError struct {
		Pos Pos
		Err error
	}
)

const (
	Def Kind = iota
	DefUse
	Use
)

// AnyOperand is the slot type that accepts any operand.
const AnyOperand = "Operand"

// OperandTypes are the operand kinds a slot may be declared with.
var OperandTypes = []string{
	AnyOperand,
	"RegisterOperand",
	"IntConstantOperand",
	"LongConstantOperand",
	"NullConstantOperand",
	"ConditionOperand",
	"BranchOperand",
	"BasicBlockOperand",
	"TypeOperand",
	"MethodOperand",
	"LocationOperand",
	"BranchProfileOperand",
}

func (k Kind) String() string {
	switch k {
	case Def:
		return "def"
	case DefUse:
		return "defuse"
	case Use:
		return "use"
	}

	return fmt.Sprintf("kind(%d)", int(k))
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func ParseKind(s string) (Kind, bool) {
	switch s {
	case "def":
		return Def, true
	case "defuse":
		return DefUse, true
	case "use":
		return Use, true
	}

	return 0, false
}

// NumFixed is the number of slots before the variable group.
func (f *Format) NumFixed() int { return len(f.Slots) }

// Stride is the size of one repetition of the variable group, 0 if there is none.
func (f *Format) Stride() int {
	if f.Var == nil {
		return 0
	}

	return len(f.Var.Slots)
}

// Count is the number of fixed slots of the kind.
func (f *Format) Count(k Kind) (n int) {
	for _, s := range f.Slots {
		if s.Kind == k {
			n++
		}
	}

	return n
}

// Index returns the index of the fixed slot.
func (f *Format) Index(name string) (int, bool) {
	for i, s := range f.Slots {
		if s.Name == name {
			return i, true
		}
	}

	return -1, false
}

// VarOffset returns the offset of the slot within one repetition of the variable group.
func (f *Format) VarOffset(name string) (int, bool) {
	if f.Var == nil {
		return -1, false
	}

	for i, s := range f.Var.Slots {
		if s.Name == name {
			return i, true
		}
	}

	return -1, false
}

func (t *Tables) Format(name string) *Format {
	return t.byName[name]
}

func (p Pos) String() string {
	return fmt.Sprintf("%s:%d", p.File, p.Line)
}

func (e PosError) Error() string {
	return fmt.Sprintf("%v: %v", e.Pos, e.Err)
}

func (e PosError) Unwrap() error { return e.Err }

func (f *Format) TlogAppend(b []byte) []byte {
	var e tlwire.Encoder

	b = e.AppendMap(b, 4)
	b = e.AppendKeyInt(b, "tag", f.Tag)
	b = e.AppendKeyInt(b, "fixed", f.NumFixed())
	b = e.AppendKeyInt(b, "stride", f.Stride())
	b = e.AppendKeyInt(b, "line", f.Pos.Line)

	return b
}
