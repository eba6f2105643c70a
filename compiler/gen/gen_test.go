package gen

import (
	"context"
	"go/parser"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slowlang/irgen/compiler/table"
)

const testFormats = `
format Empty

format Binary
	def Result RegisterOperand
	use Val1 Operand
	use Val2 Operand

format Phi
	def Result Operand
	var use Value Operand, Pred BasicBlockOperand

format Prologue
	var def Formal RegisterOperand

carrier ResultCarrier Result
`

const testOperators = `
NOP         Empty
INT_ADD     Binary commutative
PHI         Phi
IR_PROLOGUE Prologue
INT_IFCMP   Binary branch conditional compare
`

var testConfig = Config{
	Package:  "hir",
	IRImport: "github.com/slowlang/irgen/compiler/ir",
	Source:   "formats.txt",
}

func testTables(t *testing.T) *table.Tables {
	t.Helper()

	ctx := context.Background()

	fs, cs, err := table.ParseFormats(ctx, "formats.txt", []byte(testFormats))
	require.NoError(t, err)

	ops, err := table.ParseOperators(ctx, "operators.txt", []byte(testOperators))
	require.NoError(t, err)

	tb, err := table.Link(ctx, fs, cs, ops)
	require.NoError(t, err)

	return tb
}

func parses(t *testing.T, name string, src []byte) {
	t.Helper()

	_, err := parser.ParseFile(token.NewFileSet(), name, src, parser.AllErrors)
	require.NoError(t, err, "%s", src)
}

func TestFormats(t *testing.T) {
	tb := testTables(t)

	src, err := Formats(context.Background(), testConfig, tb)
	require.NoError(t, err)

	parses(t, "formats_gen.go", src)

	s := string(src)

	assert.Contains(t, s, "// Code generated by irgen from formats.txt; DO NOT EDIT.")
	assert.Contains(t, s, "package hir")
	assert.Contains(t, s, "EmptyTag ir.Format = iota")

	for _, sub := range []string{
		"func (f BinaryFormat) Result(i *ir.Instruction) *ir.RegisterOperand {",
		"func (f BinaryFormat) SetVal1(i *ir.Instruction, x ir.Operand) {",
		"func (BinaryFormat) IndexOfVal2() int {\n\treturn 2\n}",
		"func (f BinaryFormat) Create(o *ir.Operator, result *ir.RegisterOperand, val1 ir.Operand, val2 ir.Operand) *ir.Instruction {",
		"func (f BinaryFormat) Mutate(i *ir.Instruction, o *ir.Operator, result *ir.RegisterOperand, val1 ir.Operand, val2 ir.Operand) *ir.Instruction {",
		"func (PhiFormat) IndexOfValue(k int) int {\n\treturn 1 + k*2\n}",
		"func (PhiFormat) IndexOfPred(k int) int {\n\treturn 2 + k*2\n}",
		"return (i.NumOperands() - 1) / 2",
		"i.ResizeOperands(1 + n*2)",
		"func (f PhiFormat) Create(o *ir.Operator, result ir.Operand, numValues int) *ir.Instruction {",
		"size := 1 + numValues*2",
		"func (PrologueFormat) IndexOfFormal(k int) int {\n\treturn k\n}",
		"size := numFormals",
		"var resultCarrierIndex = [NumFormats]int8{-1, 0, 0, -1}",
		"func (c ResultCarrierView) Result(i *ir.Instruction) ir.Operand {",
		`ir.Fail(i, "Binary")`,
		`ir.FailOperator(o, "Phi")`,
	} {
		assert.Contains(t, s, sub)
	}
}

func TestOperators(t *testing.T) {
	tb := testTables(t)

	cfg := testConfig
	cfg.Source = "operators.txt"

	src, err := Operators(context.Background(), cfg, tb)
	require.NoError(t, err)

	parses(t, "operators_gen.go", src)

	s := string(src)

	for _, sub := range []string{
		"OpcodeNop ir.Opcode = iota",
		"NumOpcodes",
		`{Opcode: OpcodeNop, Name: "nop", Format: EmptyTag},`,
		`{Opcode: OpcodeIntAdd, Name: "int_add", Format: BinaryTag, Traits: ir.Commutative, NumDefs: 1, NumUses: 2},`,
		`Traits: ir.Branch | ir.Conditional | ir.Compare`,
		`{Opcode: OpcodeIrPrologue, Name: "ir_prologue", Format: PrologueTag, VarDefs: true},`,
		"var OpPhi = &Operators[OpcodePhi]",
	} {
		assert.Contains(t, s, sub)
	}
}

func TestExpressions(t *testing.T) {
	assert.Equal(t, "k", linear(0, "k", 1))
	assert.Equal(t, "k * 3", linear(0, "k", 3))
	assert.Equal(t, "2 + k", linear(2, "k", 1))
	assert.Equal(t, "1 + k*2", linear(1, "k", 2))

	assert.Equal(t, "i.NumOperands()", count(0, 1))
	assert.Equal(t, "i.NumOperands() / 3", count(0, 3))
	assert.Equal(t, "i.NumOperands() - 2", count(2, 1))
	assert.Equal(t, "(i.NumOperands() - 1) / 2", count(1, 2))
}
