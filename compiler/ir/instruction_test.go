package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testAdd  = &Operator{Name: "int_add", Format: 1, Traits: Commutative, NumDefs: 1, NumUses: 2}
	testMove = &Operator{Name: "int_move", Format: 2, Traits: Move, NumDefs: 1, NumUses: 1}
	testPhi  = &Operator{Name: "phi", Format: 3, NumDefs: 1}
	testArgs = &Operator{Name: "ir_prologue", Format: 4, VarDefs: true}
	testAcc  = &Operator{Name: "int_add_acc", Format: 5, NumDefUses: 1, NumUses: 1}
)

func TestInstructionSlots(t *testing.T) {
	r1 := &Register{Num: 1, Type: Int}
	r2 := &Register{Num: 2, Type: Int}

	i := New(testAdd, 3)
	require.Equal(t, 3, i.NumOperands())

	res := NewRegister(r1)
	i.SetOperand(0, res)
	i.SetOperand(1, NewRegister(r2))
	i.SetOperand(2, NewInt(3))

	assert.Same(t, res, i.Operand(0))
	assert.Same(t, i, res.Instruction())
	assert.Equal(t, "int_add t1i = t2i, 3", i.String())

	x := i.ClearOperand(0)
	assert.Same(t, res, x)
	assert.Nil(t, i.Operand(0))
	assert.Nil(t, x.Instruction())
}

func TestSetOperandTypedNil(t *testing.T) {
	i := New(testMove, 2)

	var r *RegisterOperand

	i.SetOperand(0, r)
	assert.Nil(t, i.Operand(0))
}

func TestSetOperandAttachedIsCopied(t *testing.T) {
	r := NewRegister(&Register{Num: 7, Type: Int})

	a := New(testMove, 2)
	b := New(testMove, 2)

	a.SetOperand(1, r)
	b.SetOperand(1, r)

	assert.Same(t, r, a.Operand(1))
	assert.NotSame(t, r, b.Operand(1))
	assert.True(t, r.Similar(b.Operand(1)))
	assert.Same(t, b, b.Operand(1).Instruction())

	a.SetOperand(1, r)
	assert.Same(t, r, a.Operand(1), "same slot keeps identity")

	old := a.Operand(1)
	a.SetOperand(1, NewInt(1))
	assert.Nil(t, old.Instruction(), "replaced operand is detached")
}

func TestResizeAndReset(t *testing.T) {
	i := New(testPhi, 1)

	i.ResizeOperands(5)
	require.Equal(t, 5, i.NumOperands())

	v := NewInt(4)
	i.SetOperand(4, v)

	i.ResizeOperands(3)
	assert.Equal(t, 3, i.NumOperands())
	assert.Nil(t, v.Instruction())

	i.ResizeOperands(5)
	assert.Nil(t, i.Operand(4), "regrown slots are empty")

	p := i
	i.Reset(testMove, 2)
	assert.Same(t, p, i)
	assert.Equal(t, testMove, i.Operator())
	assert.Equal(t, 2, i.NumOperands())
	assert.Nil(t, i.Operand(0))
}

func TestCopy(t *testing.T) {
	i := New(testMove, 2)
	i.SetOperand(0, NewRegister(&Register{Num: 1, Type: Long}))
	i.SetOperand(1, NewLong(10))

	c := i.Copy()
	require.NotSame(t, i, c)
	assert.Equal(t, i.String(), c.String())
	assert.NotSame(t, i.Operand(1), c.Operand(1))
	assert.Same(t, c, c.Operand(1).Instruction())
}

func TestDefsUses(t *testing.T) {
	collect := func(rng func(func(int, Operand) bool)) (ks []int) {
		rng(func(k int, x Operand) bool {
			ks = append(ks, k)
			return true
		})

		return ks
	}

	i := New(testAdd, 3)
	for k := 0; k < 3; k++ {
		i.SetOperand(k, NewInt(int32(k)))
	}

	assert.Equal(t, 1, i.NumDefs())
	assert.Equal(t, 2, i.NumUses())
	assert.Equal(t, []int{0}, collect(i.RangeDefs))
	assert.Equal(t, []int{1, 2}, collect(i.RangeUses))

	p := New(testArgs, 3)
	for k := 0; k < 3; k++ {
		p.SetOperand(k, NewRegister(&Register{Num: k}))
	}

	assert.Equal(t, 3, p.NumDefs())
	assert.Equal(t, 0, p.NumUses())
	assert.Equal(t, []int{0, 1, 2}, collect(p.RangeDefs))
	assert.Nil(t, collect(p.RangeUses))

	a := New(testAcc, 2)
	a.SetOperand(0, NewRegister(&Register{Num: 1, Type: Int}))
	a.SetOperand(1, NewInt(5))

	assert.Equal(t, 1, a.NumDefs())
	assert.Equal(t, 2, a.NumUses())
	assert.False(t, a.IsPureUse(0))
	assert.True(t, a.IsPureUse(1))
	assert.Equal(t, "int_add_acc t1i = 5", a.String())
}

func TestRangeDefsStops(t *testing.T) {
	op := &Operator{Name: "call_multi", Format: 6, NumDefs: 1, VarDefs: true}

	i := New(op, 3)
	for k := 0; k < 3; k++ {
		i.SetOperand(k, NewRegister(&Register{Num: k}))
	}

	var ks []int

	i.RangeDefs(func(k int, x Operand) bool {
		ks = append(ks, k)
		return false
	})

	assert.Equal(t, []int{0}, ks)

	ks = ks[:0]

	i.RangeDefs(func(k int, x Operand) bool {
		ks = append(ks, k)
		return k < 1
	})

	assert.Equal(t, []int{0, 1}, ks)
}

func TestTraits(t *testing.T) {
	tr, ok := TraitByName("branch")
	require.True(t, ok)

	tr |= Conditional

	assert.True(t, tr.Has(Branch))
	assert.False(t, tr.Has(Call))
	assert.Equal(t, "branch|conditional", tr.String())

	_, ok = TraitByName("teleport")
	assert.False(t, ok)
}

func TestCond(t *testing.T) {
	for _, c := range []Cond{EQ, NE, LT, GE, GT, LE} {
		for _, ab := range [][2]int64{{1, 2}, {2, 2}, {3, 2}} {
			a, b := ab[0], ab[1]

			assert.Equal(t, !c.Eval(a, b), c.Negate().Eval(a, b), "%v %v %v", a, c, b)
			assert.Equal(t, c.Eval(a, b), c.Flip().Eval(b, a), "%v %v %v", a, c, b)
		}
	}
}

func TestFail(t *testing.T) {
	i := New(testMove, 2)

	defer func() {
		p := recover()
		require.NotNil(t, p)

		err, ok := p.(*FormatError)
		require.True(t, ok, "%T", p)
		assert.Equal(t, "Binary", err.Format)
		assert.Equal(t, "int_move", err.Operator)
		assert.Contains(t, err.Error(), "Binary")
	}()

	Fail(i, "Binary")
}
