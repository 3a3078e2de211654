package compiler

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Tier selects the code generation strategy.
type Tier int

const (
	TierDirect Tier = iota // one statement per instruction
	TierFused              // run-length fusion
	TierOffset             // fusion plus deferred pointer offsets
)

func (t Tier) String() string {
	switch t {
	case TierDirect:
		return "direct"
	case TierFused:
		return "fused"
	case TierOffset:
		return "offset"
	}
	return fmt.Sprintf("Tier(%d)", int(t))
}

// Config controls a single compilation.
type Config struct {
	MemorySize  int  // cells in the wraparound memory
	IndentWidth int  // indentation characters per block level
	IndentChar  byte // ' ' or '\t'
	Comments    bool // pass comment runs through as comment lines
	DumpMemory  bool // append the memory dump epilogue
	Tier        Tier
}

// DefaultConfig returns the settings used when nothing else is specified.
func DefaultConfig() Config {
	return Config{
		MemorySize:  1024,
		IndentWidth: 4,
		IndentChar:  ' ',
		Tier:        TierOffset,
	}
}

// Validate returns a *ConfigError listing every invalid field, or nil.
func (c Config) Validate() error {
	var problems *multierror.Error
	if c.MemorySize <= 0 {
		problems = multierror.Append(problems, fmt.Errorf("memory size must be larger than 0, got %d", c.MemorySize))
	}
	if c.IndentWidth <= 0 {
		problems = multierror.Append(problems, fmt.Errorf("indentation width must be larger than 0, got %d", c.IndentWidth))
	}
	if c.IndentChar != ' ' && c.IndentChar != '\t' {
		problems = multierror.Append(problems, fmt.Errorf("indentation character must be a space or a tab, got %q", c.IndentChar))
	}
	if c.Tier < TierDirect || c.Tier > TierOffset {
		problems = multierror.Append(problems, fmt.Errorf("optimization level must be 0, 1 or 2, got %d", int(c.Tier)))
	}
	if problems == nil {
		return nil
	}
	return &ConfigError{Problems: problems}
}
