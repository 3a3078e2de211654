package compiler

import "fmt"

// Op identifies one of the eight source instructions.
type Op uint8

const (
	OpIllegal Op = iota // sentinel: not an instruction

	// Accumulable instructions
	OpIncrement // +
	OpDecrement // -
	OpMoveLeft  // <
	OpMoveRight // >

	// I/O
	OpRead  // ,
	OpWrite // .

	// Loops
	OpLoopOpen  // [
	OpLoopClose // ]
)

// opNames is indexed by Op.
var opNames = [...]string{
	OpIllegal:   "ILLEGAL",
	OpIncrement: "INCREMENT",
	OpDecrement: "DECREMENT",
	OpMoveLeft:  "MOVE_LEFT",
	OpMoveRight: "MOVE_RIGHT",
	OpRead:      "READ",
	OpWrite:     "WRITE",
	OpLoopOpen:  "LOOP_OPEN",
	OpLoopClose: "LOOP_CLOSE",
}

var opSymbols = [...]byte{
	OpIncrement: '+',
	OpDecrement: '-',
	OpMoveLeft:  '<',
	OpMoveRight: '>',
	OpRead:      ',',
	OpWrite:     '.',
	OpLoopOpen:  '[',
	OpLoopClose: ']',
}

// symbolOps maps every instruction byte to its Op; all other bytes map to OpIllegal.
var symbolOps [256]Op

func init() {
	for op, sym := range opSymbols {
		if sym != 0 {
			symbolOps[sym] = Op(op)
		}
	}
}

// LookupOp reports the instruction denoted by c.
func LookupOp(c byte) (Op, bool) {
	op := symbolOps[c]
	return op, op != OpIllegal
}

func (op Op) String() string {
	if int(op) < len(opNames) {
		return opNames[op]
	}
	return fmt.Sprintf("Op(%d)", int(op))
}

// Symbol returns the source character of op, or 0 for OpIllegal.
func (op Op) Symbol() byte {
	if int(op) < len(opSymbols) {
		return opSymbols[op]
	}
	return 0
}

// Accumulable reports whether consecutive occurrences of op may be fused
// into a single statement.
func (op Op) Accumulable() bool {
	switch op {
	case OpIncrement, OpDecrement, OpMoveLeft, OpMoveRight:
		return true
	}
	return false
}

// Pos is a location in the source text.
type Pos struct {
	Offset int // byte offset, 0-based
	Line   int // 1-based
	Column int // 1-based, in bytes
}

func (p Pos) String() string {
	return fmt.Sprintf("line %d, column %d", p.Line, p.Column)
}

// EventKind tags the variants of Event.
type EventKind uint8

const (
	EventInstruction EventKind = iota
	EventComment
	EventFinish
)

func (k EventKind) String() string {
	switch k {
	case EventInstruction:
		return "instruction"
	case EventComment:
		return "comment"
	case EventFinish:
		return "finish"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event is one item of the Tokenizer's output stream. It is implemented by
// Instruction, CommentRun and Finish only.
type Event interface {
	Kind() EventKind
}

// Instruction is a single instruction character.
type Instruction struct {
	Op  Op
	Pos Pos
}

// CommentRun is a maximal run of non-instruction characters. Text is
// src[Start.Offset:End.Offset].
type CommentRun struct {
	Text  string
	Start Pos
	End   Pos
}

// Finish marks the end of the source. It is emitted exactly once.
type Finish struct{}

func (Instruction) Kind() EventKind { return EventInstruction }
func (CommentRun) Kind() EventKind { return EventComment }
func (Finish) Kind() EventKind { return EventFinish }

func (i Instruction) String() string {
	return fmt.Sprintf("%-11s %q  %s", i.Op, i.Op.Symbol(), i.Pos)
}

func (c CommentRun) String() string {
	return fmt.Sprintf("%-11s %q  %s", "COMMENT", c.Text, c.Start)
}

func (Finish) String() string { return "FINISH" }
