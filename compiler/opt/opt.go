// Package opt simplifies high-level IR in SSA form.
//
// It is the main client of the generated format views:
// instructions are inspected and rewritten in place through hir.
package opt

import (
	"context"

	"nikand.dev/go/heap"
	"tlog.app/go/errors"
	"tlog.app/go/loc"
	"tlog.app/go/tlog"

	"github.com/slowlang/irgen/compiler/ir"
	"github.com/slowlang/irgen/compiler/ir/hir"
	"github.com/slowlang/irgen/compiler/set"
)

type (
	simplifier struct {
		code []*ir.Instruction

		defs   map[*ir.Register]int
		users  map[*ir.Register][]int
		consts map[*ir.Register]ir.Operand

		work worklist

		changed set.Bits[int]
	}

	worklist struct {
		heap.Heap[int]

		queued set.Bits[int]
	}
)

// Simplify propagates constants and folds instructions of code in place.
// Registers are expected to be defined once.
// It returns the number of rewritten instructions.
func Simplify(ctx context.Context, code []*ir.Instruction) (changed int, err error) {
	tr, ctx := tlog.SpawnFromContextAndWrap(ctx, "opt: simplify", "instrs", len(code))
	defer tr.Finish("err", &err)

	s := &simplifier{
		code:   code,
		defs:   map[*ir.Register]int{},
		users:  map[*ir.Register][]int{},
		consts: map[*ir.Register]ir.Operand{},
		work: worklist{
			Heap:   heap.Heap[int]{Less: posLess},
			queued: set.MakeBits(len(code)),
		},
		changed: set.MakeBits(len(code)),
	}

	for pos, i := range code {
		if i == nil || i.Operator() == nil {
			return 0, errors.New("instruction %d: no operator", pos)
		}

		if hir.Lookup(i.Operator().Opcode) != i.Operator() {
			return 0, errors.New("instruction %d: operator %v is not hir", pos, i.Operator())
		}

		s.index(pos, i)

		s.work.Push(pos)
	}

	if tr.If("dump_code_before") {
		for pos, i := range code {
			tr.Printw("code before", "pos", pos, "instr", i)
		}
	}

	for s.work.Len() != 0 {
		pos := s.work.Pop()

		s.visit(ctx, pos)
	}

	if tr.If("dump_code_after") {
		for pos, i := range code {
			tr.Printw("code after", "pos", pos, "instr", i)
		}
	}

	return s.changed.Size(), nil
}

func (s *simplifier) index(pos int, i *ir.Instruction) {
	i.RangeDefs(func(k int, x ir.Operand) bool {
		if r, ok := x.(*ir.RegisterOperand); ok {
			s.defs[r.Reg]++
		}

		return true
	})

	i.RangeUses(func(k int, x ir.Operand) bool {
		if r, ok := x.(*ir.RegisterOperand); ok && i.IsPureUse(k) {
			s.users[r.Reg] = append(s.users[r.Reg], pos)
		}

		return true
	})
}

func (s *simplifier) visit(ctx context.Context, pos int) {
	tr := tlog.SpanFromContext(ctx)

	i := s.code[pos]

	if s.substitute(i) {
		s.changed.Set(pos)
	}

	before := i.String()

	if s.fold(i) {
		s.changed.Set(pos)

		tr.V("fold").Printw("folded", "pos", pos, "from", before, "to", i)
	}

	if !hir.Move.Conforms(i) {
		return
	}

	r := hir.Move.Result(i)
	if r == nil || s.defs[r.Reg] != 1 || s.consts[r.Reg] != nil {
		return
	}

	if _, ok := ir.IntValue(hir.Move.Val(i)); !ok {
		return
	}

	s.consts[r.Reg] = hir.Move.Val(i)

	tr.V("const").Printw("constant register", "pos", pos, "reg", r.Reg, "val", hir.Move.Val(i).String(), "users", len(s.users[r.Reg]))

	for _, u := range s.users[r.Reg] {
		s.work.Push(u)
	}
}

// substitute replaces pure uses of constant registers by the constants.
func (s *simplifier) substitute(i *ir.Instruction) (changed bool) {
	i.RangeUses(func(k int, x ir.Operand) bool {
		r, ok := x.(*ir.RegisterOperand)
		if !ok || !i.IsPureUse(k) {
			return true
		}

		c := s.consts[r.Reg]
		if c == nil {
			return true
		}

		i.SetOperand(k, c)
		changed = true

		return true
	})

	return changed
}

func (w *worklist) Push(pos int) {
	if w.queued.IsSet(pos) {
		return
	}

	tlog.V("work_push").Printw("queued", "pos", pos, "from", loc.Caller(1))

	w.queued.Set(pos)
	w.Heap.Push(pos)
}

func (w *worklist) Pop() int {
	pos := w.Heap.Pop()
	w.queued.Clear(pos)

	return pos
}

func posLess(d []int, i, j int) bool {
	return d[i] < d[j]
}
