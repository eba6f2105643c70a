package opt

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slowlang/irgen/compiler/ir"
	"github.com/slowlang/irgen/compiler/ir/hir"
)

type regs map[int]*ir.Register

func (rs regs) get(n int, t ir.Type) *ir.RegisterOperand {
	r, ok := rs[n]
	if !ok {
		r = &ir.Register{Num: n, Type: t}
		rs[n] = r
	}

	return ir.NewRegister(r)
}

func TestSimplifyPropagates(t *testing.T) {
	rs := regs{}

	code := []*ir.Instruction{
		hir.Move.Create(hir.OpIntMove, rs.get(1, ir.Int), ir.NewInt(2)),
		hir.Move.Create(hir.OpIntMove, rs.get(2, ir.Int), ir.NewInt(3)),
		hir.Binary.Create(hir.OpIntMul, rs.get(3, ir.Int), rs.get(1, ir.Int), rs.get(2, ir.Int)),
		hir.Binary.Create(hir.OpIntAdd, rs.get(4, ir.Int), rs.get(3, ir.Int), ir.NewInt(1)),
		hir.Unary.Create(hir.OpInt2Long, rs.get(5, ir.Long), rs.get(4, ir.Int)),
		hir.Return.Create(hir.OpReturn, rs.get(5, ir.Long)),
	}

	changed, err := Simplify(context.Background(), code)
	require.NoError(t, err)
	assert.Equal(t, 4, changed)

	assert.Equal(t, "int_move t3i = 6", code[2].String())
	assert.Equal(t, "int_move t4i = 7", code[3].String())
	assert.Equal(t, "long_move t5l = 7L", code[4].String())
	assert.Equal(t, "return 7L", code[5].String())

	assert.True(t, hir.Move.Conforms(code[4]))
	assert.Same(t, rs[5], hir.Move.Result(code[4]).Reg)
}

func TestSimplifyIdentities(t *testing.T) {
	rs := regs{}

	code := []*ir.Instruction{
		hir.Prologue.Create(hir.OpIrPrologue, 1),
		hir.Binary.Create(hir.OpIntAdd, rs.get(2, ir.Int), ir.NewInt(0), rs.get(1, ir.Int)),
		hir.Binary.Create(hir.OpIntSub, rs.get(3, ir.Int), ir.NewInt(0), rs.get(1, ir.Int)),
		hir.Binary.Create(hir.OpIntMul, rs.get(4, ir.Int), rs.get(1, ir.Int), ir.NewInt(0)),
		hir.Binary.Create(hir.OpIntAnd, rs.get(5, ir.Int), rs.get(1, ir.Int), ir.NewInt(-1)),
	}

	hir.Prologue.SetFormal(code[0], 0, rs.get(1, ir.Int))

	changed, err := Simplify(context.Background(), code)
	require.NoError(t, err)
	assert.Equal(t, 3, changed)

	assert.Equal(t, "int_move t2i = t1i", code[1].String())
	assert.Equal(t, "int_sub t3i = 0, t1i", code[2].String(), "sub is not commutative")
	assert.Equal(t, "int_move t4i = 0", code[3].String())
	assert.Equal(t, "int_move t5i = t1i", code[4].String())
}

func TestSimplifyBranches(t *testing.T) {
	rs := regs{}

	l1 := &ir.BasicBlock{Number: 1}
	l2 := &ir.BasicBlock{Number: 2}

	code := []*ir.Instruction{
		hir.Move.Create(hir.OpIntMove, rs.get(1, ir.Int), ir.NewInt(5)),
		hir.IfCmp.Create(hir.OpIntIfcmp, nil, rs.get(1, ir.Int), ir.NewInt(5), &ir.ConditionOperand{Cond: ir.EQ}, &ir.BranchOperand{Target: l1}, nil),
		hir.IfCmp.Create(hir.OpIntIfcmp, nil, rs.get(1, ir.Int), ir.NewInt(5), &ir.ConditionOperand{Cond: ir.LT}, &ir.BranchOperand{Target: l2}, nil),
		hir.CondMove.Create(hir.OpIntCondMove, rs.get(2, ir.Int), rs.get(1, ir.Int), ir.NewInt(0), &ir.ConditionOperand{Cond: ir.GT}, ir.NewInt(10), ir.NewInt(20)),
	}

	changed, err := Simplify(context.Background(), code)
	require.NoError(t, err)
	assert.Equal(t, 3, changed)

	require.True(t, hir.Goto.Conforms(code[1]))
	assert.Same(t, l1, hir.Goto.Target(code[1]).Target)

	assert.Same(t, hir.OpNop, code[2].Operator())
	assert.Equal(t, 0, code[2].NumOperands())

	assert.Equal(t, "int_move t2i = 10", code[3].String())
}

func TestSimplifyBranchKeepsUsedGuard(t *testing.T) {
	rs := regs{}

	l1 := &ir.BasicBlock{Number: 1}
	l2 := &ir.BasicBlock{Number: 2}

	code := []*ir.Instruction{
		hir.IfCmp.Create(hir.OpIntIfcmp, rs.get(3, ir.Void), ir.NewInt(5), ir.NewInt(5), &ir.ConditionOperand{Cond: ir.EQ}, &ir.BranchOperand{Target: l1}, nil),
		hir.ALoad.Create(hir.OpIntAload, rs.get(4, ir.Int), rs.get(1, ir.Ref), ir.NewInt(0), &ir.LocationOperand{Name: "a", Array: true}, rs.get(3, ir.Void)),
		hir.IfCmp.Create(hir.OpIntIfcmp, rs.get(5, ir.Void), ir.NewInt(5), ir.NewInt(5), &ir.ConditionOperand{Cond: ir.EQ}, &ir.BranchOperand{Target: l2}, nil),
	}

	changed, err := Simplify(context.Background(), code)
	require.NoError(t, err)
	assert.Equal(t, 1, changed)

	require.True(t, hir.IfCmp.Conforms(code[0]))
	assert.Same(t, rs[3], hir.IfCmp.GuardResult(code[0]).Reg)
	assert.Same(t, rs[3], hir.ALoad.Guard(code[1]).(*ir.RegisterOperand).Reg)

	require.True(t, hir.Goto.Conforms(code[2]))
	assert.Same(t, l2, hir.Goto.Target(code[2]).Target)
}

func TestSimplifyPhi(t *testing.T) {
	rs := regs{}

	b1 := &ir.BasicBlock{Number: 1}
	b2 := &ir.BasicBlock{Number: 2}

	phi := func(res int, vals ...ir.Operand) *ir.Instruction {
		p := hir.Phi.Create(hir.OpPhi, rs.get(res, ir.Int), len(vals))

		for k, v := range vals {
			hir.Phi.SetValue(p, k, v)
			hir.Phi.SetPred(p, k, &ir.BasicBlockOperand{Block: []*ir.BasicBlock{b1, b2}[k]})
		}

		return p
	}

	code := []*ir.Instruction{
		phi(1, ir.NewInt(4), ir.NewInt(4)),
		phi(2, rs.get(1, ir.Int), ir.NewInt(5)),
		phi(3, rs.get(7, ir.Int), rs.get(7, ir.Int)),
	}

	changed, err := Simplify(context.Background(), code)
	require.NoError(t, err)
	assert.Equal(t, 3, changed)

	assert.Equal(t, "int_move t1i = 4", code[0].String())
	assert.True(t, hir.Phi.Conforms(code[1]))
	assert.Equal(t, "phi t2i = 4, BB1, 5, BB2", code[1].String())
	assert.Equal(t, "int_move t3i = t7i", code[2].String())
}

func TestSimplifyErrors(t *testing.T) {
	foreign := &ir.Operator{Name: "foreign", Opcode: hir.OpcodeNop}

	_, err := Simplify(context.Background(), []*ir.Instruction{ir.New(foreign, 0)})
	assert.Error(t, err)

	_, err = Simplify(context.Background(), []*ir.Instruction{nil})
	assert.Error(t, err)
}
