package opt

import (
	"github.com/slowlang/irgen/compiler/ir"
	"github.com/slowlang/irgen/compiler/ir/hir"
)

func (s *simplifier) fold(i *ir.Instruction) bool {
	switch {
	case hir.Binary.Conforms(i):
		return foldBinary(i)
	case hir.Unary.Conforms(i):
		return foldUnary(i)
	case hir.CondMove.Conforms(i):
		return foldCondMove(i)
	case hir.Phi.Conforms(i):
		return foldPhi(i)
	case hir.IfCmp.Conforms(i):
		return s.foldIfCmp(i)
	}

	return false
}

func foldBinary(i *ir.Instruction) bool {
	res := hir.Binary.Result(i)
	if res == nil {
		return false
	}

	op := i.Operator()
	x, y := hir.Binary.Val1(i), hir.Binary.Val2(i)

	a, aok := ir.IntValue(x)
	b, bok := ir.IntValue(y)

	if aok && bok {
		v, ok := eval(op.Opcode, a, b)
		if !ok {
			return false
		}

		hir.Move.Mutate(i, moveFor(res), res, constFor(op.Opcode, v))

		return true
	}

	// x op c
	if bok {
		if r, ok := identity(op.Opcode, x, b); ok {
			hir.Move.Mutate(i, moveFor(res), res, r)
			return true
		}
	}

	// c op x
	if aok && op.Traits.Has(ir.Commutative) {
		if r, ok := identity(op.Opcode, y, a); ok {
			hir.Move.Mutate(i, moveFor(res), res, r)
			return true
		}
	}

	return false
}

func eval(op ir.Opcode, a, b int64) (int64, bool) {
	x, y := int32(a), int32(b)

	switch op {
	case hir.OpcodeIntAdd:
		return int64(x + y), true
	case hir.OpcodeIntSub:
		return int64(x - y), true
	case hir.OpcodeIntMul:
		return int64(x * y), true
	case hir.OpcodeIntAnd:
		return int64(x & y), true
	case hir.OpcodeIntOr:
		return int64(x | y), true
	case hir.OpcodeIntXor:
		return int64(x ^ y), true
	case hir.OpcodeIntShl:
		return int64(x << (y & 31)), true
	case hir.OpcodeIntShr:
		return int64(x >> (y & 31)), true
	case hir.OpcodeLongAdd:
		return a + b, true
	case hir.OpcodeLongSub:
		return a - b, true
	}

	return 0, false
}

// identity simplifies x op c where the result doesn't depend on the operation.
func identity(op ir.Opcode, x ir.Operand, c int64) (ir.Operand, bool) {
	switch op {
	case hir.OpcodeIntAdd, hir.OpcodeIntSub, hir.OpcodeIntOr, hir.OpcodeIntXor,
		hir.OpcodeIntShl, hir.OpcodeIntShr, hir.OpcodeLongAdd, hir.OpcodeLongSub:
		if c == 0 {
			return x, true
		}
	case hir.OpcodeIntMul:
		switch c {
		case 1:
			return x, true
		case 0:
			return ir.NewInt(0), true
		}
	case hir.OpcodeIntAnd:
		switch c {
		case -1:
			return x, true
		case 0:
			return ir.NewInt(0), true
		}
	}

	return nil, false
}

func foldUnary(i *ir.Instruction) bool {
	res := hir.Unary.Result(i)
	if res == nil {
		return false
	}

	a, ok := ir.IntValue(hir.Unary.Val(i))
	if !ok {
		return false
	}

	var v ir.Operand

	switch i.Operator().Opcode {
	case hir.OpcodeIntNeg:
		v = ir.NewInt(-int32(a))
	case hir.OpcodeIntNot:
		v = ir.NewInt(^int32(a))
	case hir.OpcodeInt2Long:
		v = ir.NewLong(int64(int32(a)))
	case hir.OpcodeLong2Int:
		v = ir.NewInt(int32(a))
	default:
		return false
	}

	hir.Move.Mutate(i, moveFor(res), res, v)

	return true
}

func foldCondMove(i *ir.Instruction) bool {
	res := hir.CondMove.Result(i)
	cond := hir.CondMove.Cond(i)

	if res == nil || cond == nil {
		return false
	}

	a, aok := ir.IntValue(hir.CondMove.Val1(i))
	b, bok := ir.IntValue(hir.CondMove.Val2(i))

	var v ir.Operand

	switch {
	case aok && bok && cond.Cond.Eval(a, b):
		v = hir.CondMove.TrueValue(i)
	case aok && bok:
		v = hir.CondMove.FalseValue(i)
	case similar(hir.CondMove.TrueValue(i), hir.CondMove.FalseValue(i)):
		v = hir.CondMove.TrueValue(i)
	default:
		return false
	}

	if v == nil {
		return false
	}

	hir.Move.Mutate(i, moveFor(res), res, v)

	return true
}

func foldPhi(i *ir.Instruction) bool {
	res, ok := hir.Phi.Result(i).(*ir.RegisterOperand)
	if !ok {
		return false
	}

	n := hir.Phi.NumberOfValues(i)
	if n == 0 {
		return false
	}

	v := hir.Phi.Value(i, 0)

	for k := 1; k < n; k++ {
		if !similar(v, hir.Phi.Value(i, k)) {
			return false
		}
	}

	if v == nil {
		return false
	}

	hir.Move.Mutate(i, moveFor(res), res, v)

	return true
}

// foldIfCmp keeps branches whose guard result is still used.
func (s *simplifier) foldIfCmp(i *ir.Instruction) bool {
	if g := hir.IfCmp.GuardResult(i); g != nil && len(s.users[g.Reg]) != 0 {
		return false
	}

	cond := hir.IfCmp.Cond(i)
	if cond == nil {
		return false
	}

	a, aok := ir.IntValue(hir.IfCmp.Val1(i))
	b, bok := ir.IntValue(hir.IfCmp.Val2(i))

	if !aok || !bok {
		return false
	}

	if !cond.Cond.Eval(a, b) {
		hir.Empty.Mutate(i, hir.OpNop)
		return true
	}

	target := hir.IfCmp.Target(i)
	if target == nil {
		return false
	}

	hir.Goto.Mutate(i, hir.OpGoto, target)

	return true
}

func moveFor(r *ir.RegisterOperand) *ir.Operator {
	switch r.Reg.Type {
	case ir.Long:
		return hir.OpLongMove
	case ir.Ref:
		return hir.OpRefMove
	}

	return hir.OpIntMove
}

func constFor(op ir.Opcode, v int64) ir.Operand {
	switch op {
	case hir.OpcodeLongAdd, hir.OpcodeLongSub:
		return ir.NewLong(v)
	}

	return ir.NewInt(int32(v))
}

func similar(x, y ir.Operand) bool {
	if x == nil || y == nil {
		return x == y
	}

	return x.Similar(y)
}
