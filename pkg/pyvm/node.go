package pyvm

import (
	"fmt"
	"strings"
)

// addr is "p + offset", reduced modulo mod when mod > 0.
type addr struct {
	offset int
	mod    int
}

func (a addr) eval(p int) int {
	v := p + a.offset
	if a.mod > 0 {
		v = floorMod(v, a.mod)
	}
	return v
}

type node interface {
	exec(vm *Machine) error
}

// blockNode is a statement that owns an indented body.
type blockNode interface {
	node
	setBody([]node)
}

// m = [0] * size
type allocNode struct{ size int }

func (n *allocNode) exec(vm *Machine) error {
	vm.Memory = make([]int, n.size)
	return nil
}

// m += [0] * size
type padNode struct{ size int }

func (n *padNode) exec(vm *Machine) error {
	if vm.Memory == nil {
		return ErrNoMemory
	}
	vm.Memory = append(vm.Memory, make([]int, n.size)...)
	return nil
}

// pass
type passNode struct{}

func (n *passNode) exec(vm *Machine) error { return nil }

// p = 0
type resetPointerNode struct{}

func (n *resetPointerNode) exec(vm *Machine) error {
	vm.Pointer = 0
	return nil
}

// p = (p ± k) % n
type movePointerNode struct{ to addr }

func (n *movePointerNode) exec(vm *Machine) error {
	vm.Pointer = n.to.eval(vm.Pointer)
	return nil
}

// m[...] ±= k
type arithNode struct {
	cell  addr
	delta int
}

func (n *arithNode) exec(vm *Machine) error {
	i, err := vm.index(n.cell)
	if err != nil {
		return err
	}
	vm.Memory[i] += n.delta
	return nil
}

// m[...] = int(sys.stdin.readline().strip() or 0)
type readNode struct{ cell addr }

func (n *readNode) exec(vm *Machine) error {
	i, err := vm.index(n.cell)
	if err != nil {
		return err
	}
	vm.Memory[i] = vm.read()
	return nil
}

// print(m[...])
type printCellNode struct{ cell addr }

func (n *printCellNode) exec(vm *Machine) error {
	i, err := vm.index(n.cell)
	if err != nil {
		return err
	}
	vm.Output = append(vm.Output, vm.Memory[i])
	fmt.Fprintln(&vm.stdout, vm.Memory[i])
	return nil
}

// print('text')
type printTextNode struct{ text string }

func (n *printTextNode) exec(vm *Machine) error {
	fmt.Fprintln(&vm.stdout, n.text)
	return nil
}

// print('label', p)
type printPointerNode struct{ label string }

func (n *printPointerNode) exec(vm *Machine) error {
	fmt.Fprintln(&vm.stdout, n.label, vm.Pointer)
	return nil
}

// dump = ('{:width d}' * cells).format
type dumpFormatNode struct{ width, cells int }

func (n *dumpFormatNode) exec(vm *Machine) error {
	vm.dumpWidth, vm.dumpCells = n.width, n.cells
	return nil
}

// while m[...] != 0:
type whileNode struct {
	cell addr
	body []node
}

func (n *whileNode) setBody(body []node) { n.body = body }

func (n *whileNode) exec(vm *Machine) error {
	for {
		i, err := vm.index(n.cell)
		if err != nil {
			return err
		}
		if vm.Memory[i] == 0 {
			return nil
		}
		if err := vm.execBlock(n.body); err != nil {
			return err
		}
		if err := vm.step(); err != nil {
			return err
		}
	}
}

// for i in range(start, stop, step):
type forRangeNode struct {
	start, stop, step int
	body              []node
}

func (n *forRangeNode) setBody(body []node) { n.body = body }

func (n *forRangeNode) exec(vm *Machine) error {
	for i := n.start; (n.step > 0 && i < n.stop) || (n.step < 0 && i > n.stop); i += n.step {
		vm.loopVar = i
		if err := vm.execBlock(n.body); err != nil {
			return err
		}
	}
	return nil
}

// print('{:width d} | {}'.format(i, dump(*m[i:i + cells])))
type printRowNode struct{ width, cells int }

func (n *printRowNode) exec(vm *Machine) error {
	if vm.dumpWidth == 0 {
		return fmt.Errorf("name 'dump' is not defined")
	}
	lo, hi := vm.loopVar, vm.loopVar+n.cells
	if hi > len(vm.Memory) {
		hi = len(vm.Memory)
	}
	if lo > hi {
		lo = hi
	}
	row := vm.Memory[lo:hi]
	if len(row) != vm.dumpCells {
		return fmt.Errorf("dump() expects %d cells, got %d", vm.dumpCells, len(row))
	}
	var sb strings.Builder
	for _, v := range row {
		fmt.Fprintf(&sb, "%*d", vm.dumpWidth, v)
	}
	fmt.Fprintf(&vm.stdout, "%*d | %s\n", n.width, vm.loopVar, sb.String())
	return nil
}
