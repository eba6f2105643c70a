package table

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tlog.app/go/errors"
)

const testFormats = `
# test formats
format Move
	def Result RegisterOperand
	use Val Operand

format Acc
	defuse Result RegisterOperand
	use Val Operand opt

format Phi
	def Result Operand
	var use Value Operand, Pred BasicBlockOperand

format Args
	var def Formal RegisterOperand

carrier ResultCarrier Result
`

const testOperators = `
INT_MOVE  Move move
INT_ACC   Acc  commutative
PHI       Phi
IR_PROLOGUE Args
`

func link(t *testing.T, formats, operators string) (*Tables, error) {
	t.Helper()

	ctx := context.Background()

	fs, cs, err := ParseFormats(ctx, "formats.txt", []byte(formats))
	require.NoError(t, err)

	ops, err := ParseOperators(ctx, "operators.txt", []byte(operators))
	require.NoError(t, err)

	return Link(ctx, fs, cs, ops)
}

func TestParseAndLink(t *testing.T) {
	tb, err := link(t, testFormats, testOperators)
	require.NoError(t, err)

	require.Len(t, tb.Formats, 4)
	require.Len(t, tb.Operators, 4)
	require.Len(t, tb.Carriers, 1)

	mv := tb.Format("Move")
	require.NotNil(t, mv)
	assert.Equal(t, 0, mv.Tag)
	assert.Equal(t, 2, mv.NumFixed())
	assert.Equal(t, 0, mv.Stride())
	assert.Equal(t, Pos{File: "formats.txt", Line: 3}, mv.Pos)

	acc := tb.Format("Acc")
	assert.Equal(t, 1, acc.Count(DefUse))
	assert.True(t, acc.Slots[1].Optional)

	phi := tb.Format("Phi")
	assert.Equal(t, 1, phi.NumFixed())
	assert.Equal(t, 2, phi.Stride())
	assert.Equal(t, Use, phi.Var.Kind)

	off, ok := phi.VarOffset("Pred")
	assert.True(t, ok)
	assert.Equal(t, 1, off)

	idx, ok := phi.Index("Result")
	assert.True(t, ok)
	assert.Equal(t, 0, idx)

	_, ok = phi.Index("Value")
	assert.False(t, ok, "var slots have no fixed index")

	c := tb.Carriers[0]
	assert.Equal(t, []int{0, 0, 0, -1}, c.Index)
	assert.Equal(t, AnyOperand, c.Type, "types differ across formats")

	assert.Equal(t, 2, tb.Operators[2].Opcode)
	assert.Equal(t, []string{"commutative"}, tb.Operators[1].Traits)
}

func TestParseErrors(t *testing.T) {
	ctx := context.Background()

	for _, tc := range []struct {
		name string
		text string
		line int
	}{
		{"slot outside", "def Result Operand\n", 1},
		{"bad kind", "format X\n\tdefine Result Operand\n", 2},
		{"trailing text", "format X\n\tuse A Operand opt extra\n", 2},
		{"slot after var", "format X\n\tvar use A Operand\n\tuse B Operand\n", 3},
		{"two vars", "format X\n\tvar use A Operand\n\tvar use B Operand\n", 3},
		{"var list", "format X\n\tvar use A Operand,\n", 2},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := ParseFormats(ctx, "f.txt", []byte(tc.text))
			require.Error(t, err)

			var perr PosError
			require.True(t, errors.As(err, &perr), "%v", err)
			assert.Equal(t, tc.line, perr.Pos.Line)
		})
	}

	_, err := ParseOperators(ctx, "o.txt", []byte("ONLY_NAME\n"))
	assert.Error(t, err)
}

func TestLinkErrors(t *testing.T) {
	for _, tc := range []struct {
		name      string
		formats   string
		operators string
		msg       string
	}{
		{"unknown format", "format A\n", "X B\n", "unknown format"},
		{"unknown trait", "format A\n", "X A flying\n", "unknown trait"},
		{"unknown type", "format A\n\tuse V Value\n", "", "unknown operand type"},
		{"kind order", "format A\n\tuse V Operand\n\tdef R Operand\n", "", "after use slots"},
		{"var def after uses", "format A\n\tuse V Operand\n\tvar def D Operand\n", "", "var def group"},
		{"unexported", "format A\n\tuse v Operand\n", "", "not exported"},
		{"method clash", "format A\n\tuse V Operand\n\tuse SetV Operand\n", "", "clashes"},
		{"reserved param", "format A\n\tuse Size Operand\n", "", "parameter name"},
		{"duplicate format", "format A\nformat A\n", "", "clashes"},
		{"operator clash", "format A\n", "X A\nX A\n", "clashes"},
		{"empty carrier", "format A\n\tuse V Operand\ncarrier C R\n", "", "no format has slot"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := link(t, tc.formats, tc.operators)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.msg)
		})
	}
}

func TestLinkFormatLimit(t *testing.T) {
	formats := func(n int) string {
		var b strings.Builder

		for k := 0; k < n; k++ {
			fmt.Fprintf(&b, "format F%d\n", k)
		}

		return b.String()
	}

	tb, err := link(t, formats(MaxFormats), "")
	require.NoError(t, err)
	assert.Len(t, tb.Formats, MaxFormats)

	_, err = link(t, formats(MaxFormats+1), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too many formats")
}

func TestNames(t *testing.T) {
	assert.Equal(t, "IntAdd", GoName("INT_ADD"))
	assert.Equal(t, "Int2Long", GoName("INT_2LONG"))
	assert.Equal(t, "Newobjmultiarray", GoName("NEWOBJMULTIARRAY"))

	assert.Equal(t, "val1", ParamName("Val1"))
	assert.Equal(t, "guardResult", ParamName("GuardResult"))
	assert.Equal(t, "typeOp", ParamName("Type"))
	assert.Equal(t, "defaultOp", ParamName("Default"))
	assert.Equal(t, "urlPath", ParamName("URLPath"))

	assert.Equal(t, "Values", Plural("Value"))
	assert.Equal(t, "Matches", Plural("Match"))
	assert.Equal(t, "Entries", Plural("Entry"))
	assert.Equal(t, "Keys", Plural("Key"))
}
