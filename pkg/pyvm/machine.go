// Package pyvm executes the Python 3 programs produced by pkg/compiler.
//
// Only the statement shapes the compiler generates are understood. The
// machine mirrors Python semantics where they matter: floor modulo,
// negative list indices and IndexError on out-of-range access.
package pyvm

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrIndex     = errors.New("list index out of range")
	ErrStepLimit = errors.New("step limit exceeded")
	ErrNoMemory  = errors.New("memory used before allocation")
)

// Machine is the state of one program run.
type Machine struct {
	Memory  []int
	Pointer int
	Output  []int // values printed by print(m[...])

	stdout    strings.Builder
	input     []int
	steps     int
	stepLimit int
	loopVar   int // value of i inside a range loop
	dumpWidth int // field width bound by the dump formatter, 0 if unbound
	dumpCells int
}

// Stdout returns everything the program printed.
func (vm *Machine) Stdout() string {
	return vm.stdout.String()
}

// Steps returns the number of statements executed.
func (vm *Machine) Steps() int {
	return vm.steps
}

type Option func(*Machine)

// WithStepLimit aborts the run with ErrStepLimit after n statements.
func WithStepLimit(n int) Option {
	return func(vm *Machine) { vm.stepLimit = n }
}

// Run executes the program. Each read statement consumes the next input
// value; a missing value reads as 0.
func (p *Program) Run(input []int, opts ...Option) (*Machine, error) {
	vm := &Machine{input: input}
	for _, opt := range opts {
		opt(vm)
	}
	if err := vm.execBlock(p.body); err != nil {
		return vm, err
	}
	return vm, nil
}

// Exec loads and runs code in one step.
func Exec(code string, input []int, opts ...Option) (*Machine, error) {
	p, err := Load(code)
	if err != nil {
		return nil, err
	}
	return p.Run(input, opts...)
}

func (vm *Machine) step() error {
	vm.steps++
	if vm.stepLimit > 0 && vm.steps > vm.stepLimit {
		return ErrStepLimit
	}
	return nil
}

func (vm *Machine) execBlock(body []node) error {
	for _, n := range body {
		if err := vm.step(); err != nil {
			return err
		}
		if err := n.exec(vm); err != nil {
			return err
		}
	}
	return nil
}

// floorMod is Python's % operator.
func floorMod(a, n int) int {
	r := a % n
	if r != 0 && (r < 0) != (n < 0) {
		r += n
	}
	return r
}

// index resolves a into a position of Memory with Python list indexing.
func (vm *Machine) index(a addr) (int, error) {
	if vm.Memory == nil {
		return 0, ErrNoMemory
	}
	i := a.eval(vm.Pointer)
	if i < 0 {
		i += len(vm.Memory)
	}
	if i < 0 || i >= len(vm.Memory) {
		return 0, fmt.Errorf("%w: %d", ErrIndex, a.eval(vm.Pointer))
	}
	return i, nil
}

func (vm *Machine) read() int {
	if len(vm.input) == 0 {
		return 0
	}
	v := vm.input[0]
	vm.input = vm.input[1:]
	return v
}
