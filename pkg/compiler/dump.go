package compiler

import (
	"fmt"
	"strings"
)

// dumpRow is the number of cells per row of the memory dump.
const dumpRow = 16

// dump appends the epilogue printing the pointer and the memory, padded
// with zero cells to a whole number of rows.
func (e *emitter) dump() {
	if e.cfg.Comments {
		e.b.Append(commentMarker + " dump the memory")
	}
	size := e.cfg.MemorySize
	lines := []string{
		`print('\n~~~ Program Terminated ~~~')`,
		`print('Pointer:', p)`,
		`print('Memory:')`,
	}
	if pad := (dumpRow - size%dumpRow) % dumpRow; pad > 0 {
		lines = append(lines, fmt.Sprintf("m += [0] * %d", pad))
	}
	lines = append(lines,
		fmt.Sprintf("dump = ('{:4d}' * %d).format", dumpRow),
		fmt.Sprintf("for i in range(0, %d, %d):", size, dumpRow),
	)
	e.b.Append(strings.Join(lines, "\n"))

	e.b.StartBlock()
	e.b.Append(fmt.Sprintf("print('{:7d} | {}'.format(i, dump(*m[i:i + %d])))", dumpRow))
	_ = e.b.EndBlock() // balanced with StartBlock above
}
