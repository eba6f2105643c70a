package parse

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tlog.app/go/errors"
)

func TestLine(t *testing.T) {
	ctx := context.Background()

	slot := AllOf{
		AnyOf{Keyword("defuse"), Keyword("def"), Keyword("use")},
		Spaced(Ident{}),
		Spaced(Ident{}),
		Optional{Spaced(Keyword("opt"))},
	}

	x, err := Line(ctx, slot, []byte("\tdef Result RegisterOperand # comment"))
	require.NoError(t, err)
	assert.Equal(t, []Node{"def", "Result", "RegisterOperand", None{}}, x)

	x, err = Line(ctx, slot, []byte("  defuse Acc Operand opt  "))
	require.NoError(t, err)
	assert.Equal(t, []Node{"defuse", "Acc", "Operand", "opt"}, x)

	_, err = Line(ctx, slot, []byte("define Result Operand"))
	assert.Error(t, err)

	_, err = Line(ctx, slot, []byte("use Val Operand 12"))

	var perr PartialReadError
	require.True(t, errors.As(err, &perr), "%v", err)
	assert.Equal(t, 16, perr.End)
}

func TestList(t *testing.T) {
	ctx := context.Background()

	pair := AllOf{Spaced(Ident{}), Spaced(Ident{})}
	l := List{Of: pair, Sep: Spaced(Const(","))}

	x, err := Line(ctx, l, []byte("Value Operand, Pred BasicBlockOperand"))
	require.NoError(t, err)
	assert.Equal(t, []Node{
		[]Node{"Value", "Operand"},
		[]Node{"Pred", "BasicBlockOperand"},
	}, x)

	_, err = Line(ctx, l, []byte("Value Operand,"))
	assert.Error(t, err)
}

func TestAnyOfExpected(t *testing.T) {
	ctx := context.Background()

	_, i, err := AnyOf{Keyword("format"), Keyword("carrier")}.Parse(ctx, []byte("123"), 0)
	require.Error(t, err)
	assert.Equal(t, 0, i)
	assert.Contains(t, err.Error(), "format or carrier")
}

func TestStripComment(t *testing.T) {
	assert.Equal(t, "a b", string(StripComment([]byte("a b  # c d"))))
	assert.Equal(t, "a b", string(StripComment([]byte("a b \t \t\r\n"))))
	assert.Equal(t, "x", string(StripComment([]byte("x\t\t# y"))))
	assert.Equal(t, "", string(StripComment([]byte(" \t  "))))
	assert.True(t, IsBlank([]byte("   # only comment")))
	assert.True(t, IsBlank([]byte("")))
	assert.False(t, IsBlank([]byte(" x")))
}
