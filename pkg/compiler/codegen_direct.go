package compiler

// directGenerator translates every instruction into its own statement.
type directGenerator struct {
	emitter
}

func (g *directGenerator) HandleInstruction(ins Instruction) error {
	switch ins.Op {
	case OpIncrement, OpDecrement:
		g.arith(0, ins.Op, 1)
	case OpMoveLeft:
		g.move(-1)
	case OpMoveRight:
		g.move(1)
	default:
		return g.control(ins, 0)
	}
	return nil
}

func (g *directGenerator) HandleComment(run CommentRun) error {
	g.comment(run)
	return nil
}

func (g *directGenerator) HandleFinish() error {
	return g.finish()
}
