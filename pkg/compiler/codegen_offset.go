package compiler

// offsetGenerator fuses runs like fusedGenerator and additionally keeps
// pointer movements as a pending offset. Cells are addressed relative to the
// pointer until a loop boundary or the end of the program forces the offset
// into a real pointer assignment.
type offsetGenerator struct {
	emitter
	runs   runFuser
	offset int // cells between the pointer variable and the logical pointer
}

func newOffsetGenerator(e emitter) *offsetGenerator {
	g := &offsetGenerator{emitter: e}
	g.runs.flush = g.flushRun
	return g
}

func (g *offsetGenerator) flushRun(op Op, count int) {
	switch op {
	case OpIncrement, OpDecrement:
		g.arith(g.offset, op, count)
	case OpMoveLeft:
		g.offset -= count
	case OpMoveRight:
		g.offset += count
	}
}

// commitPointer materializes the pending offset.
func (g *offsetGenerator) commitPointer() {
	if stmt, ok := commit(g.offset, g.cfg.MemorySize); ok {
		g.b.Append(stmt)
	}
	g.offset = 0
}

func (g *offsetGenerator) HandleInstruction(ins Instruction) error {
	if g.runs.push(ins.Op) {
		return nil
	}
	if ins.Op == OpLoopOpen || ins.Op == OpLoopClose {
		g.commitPointer()
	}
	return g.control(ins, g.offset)
}

func (g *offsetGenerator) HandleComment(run CommentRun) error {
	g.comment(run)
	return nil
}

func (g *offsetGenerator) HandleFinish() error {
	g.runs.drain()
	g.commitPointer()
	return g.finish()
}
