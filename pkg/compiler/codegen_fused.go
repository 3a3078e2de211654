package compiler

// fusedGenerator emits one statement per run of identical arithmetic or
// pointer instructions, e.g. "+++" becomes "m[p] += 3".
type fusedGenerator struct {
	emitter
	runs runFuser
}

func newFusedGenerator(e emitter) *fusedGenerator {
	g := &fusedGenerator{emitter: e}
	g.runs.flush = g.flushRun
	return g
}

func (g *fusedGenerator) flushRun(op Op, count int) {
	switch op {
	case OpIncrement, OpDecrement:
		g.arith(0, op, count)
	case OpMoveLeft:
		g.move(-count)
	case OpMoveRight:
		g.move(count)
	}
}

func (g *fusedGenerator) HandleInstruction(ins Instruction) error {
	if g.runs.push(ins.Op) {
		return nil
	}
	return g.control(ins, 0)
}

// HandleComment does not flush the pending run, so comments never split a
// fused statement.
func (g *fusedGenerator) HandleComment(run CommentRun) error {
	g.comment(run)
	return nil
}

func (g *fusedGenerator) HandleFinish() error {
	g.runs.drain()
	return g.finish()
}
