package hir

import (
	"github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/slowlang/irgen/compiler/ir"
)

type conformer interface {
	Conforms(i *ir.Instruction) bool
	ConformsOperator(o *ir.Operator) bool
}

var views = []conformer{
	Empty, Nullary, Move, Unary, Binary, CondMove, NullCheck, ALoad, AStore, GetField,
	PutField, Label, Goto, IfCmp, Return, Phi, Call, Prologue, Multianewarray, LookupSwitch,
}

func reg(n int, t ir.Type) *ir.RegisterOperand {
	return ir.NewRegister(&ir.Register{Num: n, Type: t})
}

var _ = ginkgo.Describe("Operator table", func() {
	ginkgo.It("should be indexed by opcode", func() {
		for k := range Operators {
			Expect(Operators[k].Opcode).To(Equal(ir.Opcode(k)))
			Expect(Lookup(ir.Opcode(k))).To(BeIdenticalTo(&Operators[k]))
		}

		Expect(Lookup(NumOpcodes)).To(BeNil())
	})

	ginkgo.It("should find operators by name", func() {
		Expect(OperatorByName("int_add")).To(BeIdenticalTo(OpIntAdd))
		Expect(OperatorByName("null_check")).To(BeIdenticalTo(OpNullCheck))
		Expect(OperatorByName("no_such_op")).To(BeNil())
	})

	ginkgo.It("should name formats", func() {
		Expect(FormatName(BinaryTag)).To(Equal("Binary"))
		Expect(FormatName(LookupSwitchTag)).To(Equal("LookupSwitch"))
		Expect(FormatName(NumFormats)).To(Equal(""))
	})

	ginkgo.It("should list one view per format tag", func() {
		Expect(views).To(HaveLen(int(NumFormats)))
	})

	ginkgo.It("should match each operator to exactly one format", func() {
		for k := range Operators {
			o := &Operators[k]

			n := 0
			for tag, v := range views {
				if v.ConformsOperator(o) {
					n++
					Expect(o.Format).To(Equal(ir.Format(tag)), o.Name)
				}
			}

			Expect(n).To(Equal(1), o.Name)
		}
	})

	ginkgo.It("should carry slot counts of the format", func() {
		Expect(OpIntAdd.NumDefs).To(Equal(1))
		Expect(OpIntAdd.NumUses).To(Equal(2))
		Expect(OpIntAdd.Traits.Has(ir.Commutative)).To(BeTrue())
		Expect(OpIntIfcmp.Traits.Has(ir.Branch | ir.Conditional)).To(BeTrue())
		Expect(OpIrPrologue.VarDefs).To(BeTrue())
		Expect(OpPhi.NumFixed()).To(Equal(1))
	})
})

var _ = ginkgo.Describe("Fixed formats", func() {
	var (
		res, a *ir.RegisterOperand
		b      *ir.IntConstantOperand
		i      *ir.Instruction
	)

	ginkgo.BeforeEach(func() {
		res = reg(1, ir.Int)
		a = reg(2, ir.Int)
		b = ir.NewInt(3)
		i = Binary.Create(OpIntAdd, res, a, b)
	})

	ginkgo.It("should return what was created", func() {
		Expect(i.Operator()).To(BeIdenticalTo(OpIntAdd))
		Expect(i.NumOperands()).To(Equal(3))
		Expect(Binary.Result(i)).To(BeIdenticalTo(res))
		Expect(Binary.Val1(i)).To(BeIdenticalTo(a))
		Expect(Binary.Val2(i)).To(BeIdenticalTo(b))
		Expect(res.Instruction()).To(BeIdenticalTo(i))
	})

	ginkgo.It("should use fixed slot indices", func() {
		Expect(Binary.IndexOfResult()).To(Equal(0))
		Expect(Binary.IndexOfVal1()).To(Equal(1))
		Expect(Binary.IndexOfVal2()).To(Equal(2))
		Expect(i.Operand(Binary.IndexOfVal2())).To(BeIdenticalTo(b))

		Expect(IfCmp.IndexOfBranchProfile()).To(Equal(5))
		Expect(ALoad.IndexOfGuard()).To(Equal(4))
	})

	ginkgo.It("should set and clear slots", func() {
		c := ir.NewInt(5)
		Binary.SetVal2(i, c)

		Expect(Binary.Val2(i)).To(BeIdenticalTo(c))
		Expect(b.Instruction()).To(BeNil())

		x := Binary.ClearVal1(i)
		Expect(x).To(BeIdenticalTo(a))
		Expect(Binary.HasVal1(i)).To(BeFalse())
		Expect(Binary.Val1(i)).To(BeNil())
	})

	ginkgo.It("should return nil for a slot of another operand kind", func() {
		i.SetOperand(Binary.IndexOfResult(), ir.NewInt(7))

		Expect(Binary.HasResult(i)).To(BeTrue())
		Expect(Binary.Result(i)).To(BeNil())
	})

	ginkgo.It("should return nil for an empty slot", func() {
		Binary.SetResult(i, nil)

		Expect(Binary.Result(i)).To(BeNil())
		Expect(Binary.HasResult(i)).To(BeFalse())
	})

	ginkgo.It("should leave optional slots empty", func() {
		r := Return.Create(OpReturn, nil)
		Expect(Return.HasVal(r)).To(BeFalse())

		l := &ir.LocationOperand{Name: "x"}
		ld := ALoad.Create(OpIntAload, reg(4, ir.Int), reg(5, ir.Ref), ir.NewInt(0), l, nil)
		Expect(ALoad.HasGuard(ld)).To(BeFalse())
		Expect(ALoad.Location(ld)).To(BeIdenticalTo(l))
	})

	ginkgo.It("should copy operands attached elsewhere", func() {
		j := Move.Create(OpIntMove, reg(9, ir.Int), a)

		Expect(Move.Val(j)).NotTo(BeIdenticalTo(a))
		Expect(Move.Val(j).Similar(a)).To(BeTrue())
		Expect(a.Instruction()).To(BeIdenticalTo(i))
	})

	ginkgo.It("should conform to its format only", func() {
		for tag, v := range views {
			Expect(v.Conforms(i)).To(Equal(ir.Format(tag) == BinaryTag), FormatName(ir.Format(tag)))
		}
	})

	ginkgo.It("should mutate in place", func() {
		j := Move.Mutate(i, OpIntMove, Binary.Result(i), Binary.Val1(i))

		Expect(j).To(BeIdenticalTo(i))
		Expect(i.Operator()).To(BeIdenticalTo(OpIntMove))
		Expect(i.NumOperands()).To(Equal(2))
		Expect(Move.Result(i)).To(BeIdenticalTo(res))
		Expect(Move.Val(i)).To(BeIdenticalTo(a))
		Expect(b.Instruction()).To(BeNil())
	})

	ginkgo.It("should create new instructions", func() {
		j := Binary.Create(OpIntAdd, nil, nil, nil)

		Expect(j).NotTo(BeIdenticalTo(i))
		Expect(j.NumOperands()).To(Equal(3))
		Expect(Binary.HasResult(j)).To(BeFalse())
	})
})

var _ = ginkgo.Describe("Variable formats", func() {
	ginkgo.It("should lay out interleaved groups", func() {
		p := Phi.Create(OpPhi, reg(1, ir.Int), 2)

		Expect(p.NumOperands()).To(Equal(5))
		Expect(Phi.NumberOfValues(p)).To(Equal(2))
		Expect(Phi.NumberOfPreds(p)).To(Equal(2))
		Expect(Phi.IndexOfValues()).To(Equal(1))
		Expect(Phi.IndexOfPreds()).To(Equal(2))

		for k := 0; k < 2; k++ {
			Expect(Phi.IndexOfValue(k)).To(Equal(1 + 2*k))
			Expect(Phi.IndexOfPred(k)).To(Equal(2 + 2*k))
		}

		Expect(Phi.HasValue(p, 0)).To(BeFalse())
		Expect(Phi.HasValues(p)).To(BeTrue())
	})

	ginkgo.It("should get and set repeated slots", func() {
		p := Phi.Create(OpPhi, reg(1, ir.Int), 2)

		v0 := ir.NewInt(1)
		b1 := &ir.BasicBlockOperand{Block: &ir.BasicBlock{Number: 1}}

		Phi.SetValue(p, 0, v0)
		Phi.SetPred(p, 1, b1)

		Expect(Phi.Value(p, 0)).To(BeIdenticalTo(v0))
		Expect(Phi.Pred(p, 1)).To(BeIdenticalTo(b1))
		Expect(p.Operand(Phi.IndexOfPred(1))).To(BeIdenticalTo(b1))
		Expect(Phi.Pred(p, 0)).To(BeNil())
	})

	ginkgo.It("should resize keeping the fixed part", func() {
		res := reg(1, ir.Int)
		p := Phi.Create(OpPhi, res, 1)

		v0 := ir.NewInt(1)
		Phi.SetValue(p, 0, v0)

		Phi.ResizeNumberOfValues(p, 3)
		Expect(Phi.NumberOfValues(p)).To(Equal(3))
		Expect(Phi.Result(p)).To(BeIdenticalTo(res))
		Expect(Phi.Value(p, 0)).To(BeIdenticalTo(v0))
		Expect(Phi.Value(p, 2)).To(BeNil())

		Phi.ResizeNumberOfValues(p, 0)
		Expect(Phi.NumberOfValues(p)).To(Equal(0))
		Expect(Phi.HasValues(p)).To(BeFalse())
		Expect(v0.Instruction()).To(BeNil())
	})

	ginkgo.It("should put var defs after nothing", func() {
		p := Prologue.Create(OpIrPrologue, 3)

		Prologue.SetFormal(p, 2, reg(7, ir.Long))

		Expect(Prologue.IndexOfFormal(2)).To(Equal(2))
		Expect(Prologue.NumberOfFormals(p)).To(Equal(3))
		Expect(p.NumDefs()).To(Equal(3))
		Expect(p.NumUses()).To(Equal(0))
	})

	ginkgo.It("should place groups after fixed slots", func() {
		s := LookupSwitch.Create(OpLookupswitch, reg(1, ir.Int), &ir.BranchOperand{}, nil, 2)

		Expect(s.NumOperands()).To(Equal(9))
		Expect(LookupSwitch.IndexOfMatch(1)).To(Equal(6))
		Expect(LookupSwitch.IndexOfTarget(1)).To(Equal(7))
		Expect(LookupSwitch.IndexOfBranchProfile(1)).To(Equal(8))
		Expect(LookupSwitch.NumberOfMatches(s)).To(Equal(2))

		LookupSwitch.SetMatch(s, 1, ir.NewInt(42))
		Expect(LookupSwitch.Match(s, 1).Value).To(Equal(int32(42)))

		c := Call.Create(OpCall, nil, reg(2, ir.Ref), nil, nil, 2)
		Expect(Call.IndexOfParam(0)).To(Equal(4))
		Expect(Call.NumberOfParams(c)).To(Equal(2))
	})
})

var _ = ginkgo.Describe("Carriers", func() {
	ginkgo.It("should reach the slot in every carrying format", func() {
		r1 := reg(1, ir.Int)
		r2 := reg(2, ir.Int)

		add := Binary.Create(OpIntAdd, r1, reg(3, ir.Int), ir.NewInt(1))
		ld := GetField.Create(OpGetfield, r2, reg(4, ir.Ref), ir.NewInt(8), &ir.LocationOperand{Name: "f"}, nil)

		Expect(ResultCarrier.Conforms(add)).To(BeTrue())
		Expect(ResultCarrier.Result(add)).To(BeIdenticalTo(r1))
		Expect(ResultCarrier.Result(ld)).To(BeIdenticalTo(r2))
		Expect(ResultCarrier.IndexOfResult(ld)).To(Equal(GetField.IndexOfResult()))

		Expect(LocationCarrier.IndexOfLocation(ld)).To(Equal(3))

		r3 := reg(5, ir.Int)
		ResultCarrier.SetResult(add, r3)
		Expect(Binary.Result(add)).To(BeIdenticalTo(r3))
	})

	ginkgo.It("should not conform to formats without the slot", func() {
		g := Goto.Create(OpGoto, &ir.BranchOperand{})

		Expect(ResultCarrier.Conforms(g)).To(BeFalse())
		Expect(ResultCarrier.ConformsOperator(OpGoto)).To(BeFalse())
		Expect(GuardResultCarrier.ConformsOperator(OpNullCheck)).To(BeTrue())
		Expect(GuardResultCarrier.ConformsOperator(OpIntIfcmp)).To(BeTrue())
	})
})

var _ = ginkgo.Describe("Checks", func() {
	ginkgo.BeforeEach(func() {
		ir.Checks = true
	})

	ginkgo.AfterEach(func() {
		ir.Checks = false
	})

	ginkgo.It("should panic on format mismatch", func() {
		g := Goto.Create(OpGoto, &ir.BranchOperand{})

		Expect(func() { Binary.Result(g) }).To(PanicWith(BeAssignableToTypeOf(&ir.FormatError{})))
		Expect(func() { ResultCarrier.Result(g) }).To(PanicWith(BeAssignableToTypeOf(&ir.FormatError{})))
	})

	ginkgo.It("should panic on operator mismatch", func() {
		Expect(func() { Binary.Create(OpGoto, nil, nil, nil) }).To(PanicWith(BeAssignableToTypeOf(&ir.FormatError{})))
	})

	ginkgo.It("should pass on matching format", func() {
		i := Unary.Create(OpIntNeg, reg(1, ir.Int), reg(2, ir.Int))

		Expect(func() { Unary.Val(i) }).NotTo(Panic())
	})
})
