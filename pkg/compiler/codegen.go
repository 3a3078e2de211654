package compiler

import (
	"fmt"
	"strings"
)

// Generator consumes the Tokenizer's events and writes statements to a
// Builder.
type Generator interface {
	HandleInstruction(Instruction) error
	HandleComment(CommentRun) error
	HandleFinish() error
}

// NewGenerator returns the generator for cfg.Tier writing to b. The
// preamble is written immediately.
func NewGenerator(cfg Config, b *Builder) (Generator, error) {
	e := emitter{b: b, cfg: cfg}
	var g Generator
	switch cfg.Tier {
	case TierDirect:
		g = &directGenerator{emitter: e}
	case TierFused:
		g = newFusedGenerator(e)
	case TierOffset:
		g = newOffsetGenerator(e)
	default:
		return nil, fmt.Errorf("unknown optimization level %d", int(cfg.Tier))
	}
	e.preamble()
	return g, nil
}

// emitter renders the statements shared by every tier.
type emitter struct {
	b     *Builder
	cfg   Config
	loops []openLoop
}

// openLoop is a '[' whose block is still open.
type openLoop struct {
	pos  Pos
	line int // index of the first line of the loop body
}

func (e *emitter) preamble() {
	e.b.Append("# -*- coding: UTF-8 -*-")
	e.b.Append("import sys")
	e.b.Append(fmt.Sprintf("m = [0] * %d", e.cfg.MemorySize))
	e.b.Append("p = 0")
}

// pointerExpr renders the address at offset cells from the pointer.
func pointerExpr(offset int) string {
	switch {
	case offset > 0:
		return fmt.Sprintf("p + %d", offset)
	case offset < 0:
		return fmt.Sprintf("p - %d", -offset)
	}
	return "p"
}

// commit renders the assignment that moves the pointer by offset, or reports
// false when there is nothing to move.
func commit(offset, memorySize int) (string, bool) {
	if offset == 0 {
		return "", false
	}
	return fmt.Sprintf("p = (%s) %% %d", pointerExpr(offset), memorySize), true
}

// cell renders the memory cell at offset from the pointer. Relative
// addresses wrap like the pointer itself.
func (e *emitter) cell(offset int) string {
	if offset == 0 {
		return "m[p]"
	}
	return fmt.Sprintf("m[(%s) %% %d]", pointerExpr(offset), e.cfg.MemorySize)
}

// arith adds (OpIncrement) or subtracts (OpDecrement) count at offset.
func (e *emitter) arith(offset int, op Op, count int) {
	sign := "+"
	if op == OpDecrement {
		sign = "-"
	}
	e.b.Append(fmt.Sprintf("%s %s= %d", e.cell(offset), sign, count))
}

// move assigns the pointer delta cells away, wrapping around memory.
func (e *emitter) move(delta int) {
	if stmt, ok := commit(delta, e.cfg.MemorySize); ok {
		e.b.Append(stmt)
	}
}

// control emits read, write and loop instructions. Read and write address
// the cell at offset; loops always test the cell under the pointer.
func (e *emitter) control(ins Instruction, offset int) error {
	switch ins.Op {
	case OpRead:
		e.b.Append(fmt.Sprintf("%s = int(sys.stdin.readline().strip() or 0)", e.cell(offset)))
	case OpWrite:
		e.b.Append(fmt.Sprintf("print(%s)", e.cell(offset)))
	case OpLoopOpen:
		e.b.Append(fmt.Sprintf("while %s != 0:", e.cell(0)))
		e.b.StartBlock()
		e.loops = append(e.loops, openLoop{pos: ins.Pos, line: len(e.b.Lines())})
	case OpLoopClose:
		if len(e.loops) == 0 {
			return &StructuralError{Kind: ErrUnmatchedLoopClose, Pos: ins.Pos}
		}
		open := e.loops[len(e.loops)-1]
		e.loops = e.loops[:len(e.loops)-1]
		if !hasStatement(e.b.Lines()[open.line:]) {
			e.b.Append("pass")
		}
		return e.b.EndBlock()
	default:
		return fmt.Errorf("unexpected instruction %s at %s", ins.Op, ins.Pos)
	}
	return nil
}

// hasStatement reports whether lines contain anything but comments.
func hasStatement(lines []string) bool {
	for _, line := range lines {
		if !isCommentLine(line) {
			return true
		}
	}
	return false
}

// comment writes one comment line per non-blank line of the run.
func (e *emitter) comment(run CommentRun) {
	for _, line := range strings.Split(run.Text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			e.b.Append(commentMarker + " " + line)
		}
	}
}

// finish checks that every loop was closed and appends the dump epilogue
// when requested.
func (e *emitter) finish() error {
	if depth := e.b.Level(); depth != 0 {
		var pos Pos
		if len(e.loops) > 0 {
			pos = e.loops[len(e.loops)-1].pos
		}
		return &StructuralError{Kind: ErrUnclosedLoop, Pos: pos, Depth: depth}
	}
	if e.cfg.DumpMemory {
		e.dump()
	}
	return nil
}

// runFuser counts consecutive occurrences of one accumulable instruction
// and hands the finished run to flush.
type runFuser struct {
	op    Op
	count int
	flush func(op Op, count int)
}

// push adds op to the pending run. It returns false, after flushing, when op
// cannot be accumulated.
func (f *runFuser) push(op Op) bool {
	if op.Accumulable() && op == f.op {
		f.count++
		return true
	}
	f.drain()
	if !op.Accumulable() {
		return false
	}
	f.op, f.count = op, 1
	return true
}

// drain flushes the pending run, if any, and resets it.
func (f *runFuser) drain() {
	if f.count > 0 {
		f.flush(f.op, f.count)
	}
	f.op, f.count = OpIllegal, 0
}
