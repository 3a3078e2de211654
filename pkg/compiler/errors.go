package compiler

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
)

var (
	ErrInvalidConfig      = errors.New("invalid configuration")
	ErrUnmatchedLoopClose = errors.New("unmatched loop close")
	ErrUnclosedLoop       = errors.New("unclosed loop(s)")
)

// ConfigError reports every invalid Config field found by Validate.
type ConfigError struct {
	Problems *multierror.Error
}

func (e *ConfigError) Error() string {
	if len(e.Problems.Errors) == 1 {
		return fmt.Sprintf("%v: %v", ErrInvalidConfig, e.Problems.Errors[0])
	}
	return fmt.Sprintf("%v: %v", ErrInvalidConfig, e.Problems)
}

func (e *ConfigError) Unwrap() error { return ErrInvalidConfig }

// StructuralError reports unbalanced loops. Kind is ErrUnmatchedLoopClose
// or ErrUnclosedLoop.
type StructuralError struct {
	Kind  error
	Pos   Pos // position of the offending ']', or end of input
	Depth int // open loops when the error was detected
}

func (e *StructuralError) Error() string {
	if e.Kind == ErrUnclosedLoop {
		return fmt.Sprintf("%v: %d loop(s) still open at end of input (%s)", e.Kind, e.Depth, e.Pos)
	}
	return fmt.Sprintf("%v at %s", e.Kind, e.Pos)
}

func (e *StructuralError) Unwrap() error { return e.Kind }
