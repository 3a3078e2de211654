// Package config resolves compiler settings from a YAML file and BPC_*
// environment variables.
package config

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v2"

	"gobpc/pkg/compiler"
)

// File is the on-disk configuration. Unset keys keep their current value.
type File struct {
	Memory        *int    `yaml:"memory"`
	Indent        *int    `yaml:"indent"`
	IndentChar    *string `yaml:"indent_char"`
	Comments      *bool   `yaml:"comments"`
	Dump          *bool   `yaml:"dump"`
	Optimizations *int    `yaml:"optimizations"`
}

// Environment variables read by ApplyEnv.
const (
	EnvMemory        = "BPC_MEMORY"
	EnvIndent        = "BPC_INDENT"
	EnvTabIndent     = "BPC_TAB_INDENT"
	EnvComments      = "BPC_COMMENTS"
	EnvDump          = "BPC_DUMP"
	EnvOptimizations = "BPC_OPTIMIZATIONS"
)

// ParseIndentChar accepts "space", "tab" or the character itself.
func ParseIndentChar(s string) (byte, error) {
	switch strings.ToLower(s) {
	case "space", " ":
		return ' ', nil
	case "tab", "\t":
		return '\t', nil
	}
	return 0, errors.Errorf("indent_char must be \"space\" or \"tab\", got %q", s)
}

// Apply overwrites the fields of cfg that are set in f.
func (f *File) Apply(cfg *compiler.Config) error {
	if f.Memory != nil {
		cfg.MemorySize = *f.Memory
	}
	if f.Indent != nil {
		cfg.IndentWidth = *f.Indent
	}
	if f.IndentChar != nil {
		c, err := ParseIndentChar(*f.IndentChar)
		if err != nil {
			return err
		}
		cfg.IndentChar = c
	}
	if f.Comments != nil {
		cfg.Comments = *f.Comments
	}
	if f.Dump != nil {
		cfg.DumpMemory = *f.Dump
	}
	if f.Optimizations != nil {
		cfg.Tier = compiler.Tier(*f.Optimizations)
	}
	return nil
}

// Parse decodes a YAML document. Unknown keys are rejected.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.UnmarshalStrict(data, &f); err != nil {
		return nil, errors.Wrap(err, "parsing configuration")
	}
	return &f, nil
}

// LoadFile reads and applies the YAML file at path to cfg.
func LoadFile(path string, cfg *compiler.Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "reading configuration %s", path)
	}
	f, err := Parse(data)
	if err != nil {
		return errors.Wrapf(err, "in %s", path)
	}
	return f.Apply(cfg)
}

// ApplyEnv overwrites cfg with every BPC_* variable set in the environment.
// lookup is normally os.LookupEnv.
func ApplyEnv(cfg *compiler.Config, lookup func(string) (string, bool)) error {
	ints := []struct {
		name string
		dst  *int
	}{
		{EnvMemory, &cfg.MemorySize},
		{EnvIndent, &cfg.IndentWidth},
	}
	for _, v := range ints {
		if s, ok := lookup(v.name); ok {
			n, err := cast.ToIntE(strings.TrimSpace(s))
			if err != nil {
				return errors.Wrapf(err, "%s", v.name)
			}
			*v.dst = n
		}
	}

	bools := []struct {
		name string
		dst  *bool
	}{
		{EnvComments, &cfg.Comments},
		{EnvDump, &cfg.DumpMemory},
	}
	for _, v := range bools {
		if s, ok := lookup(v.name); ok {
			b, err := cast.ToBoolE(strings.TrimSpace(s))
			if err != nil {
				return errors.Wrapf(err, "%s", v.name)
			}
			*v.dst = b
		}
	}

	if s, ok := lookup(EnvTabIndent); ok {
		tab, err := cast.ToBoolE(strings.TrimSpace(s))
		if err != nil {
			return errors.Wrapf(err, "%s", EnvTabIndent)
		}
		cfg.IndentChar = ' '
		if tab {
			cfg.IndentChar = '\t'
		}
	}
	if s, ok := lookup(EnvOptimizations); ok {
		n, err := cast.ToIntE(strings.TrimSpace(s))
		if err != nil {
			return errors.Wrapf(err, "%s", EnvOptimizations)
		}
		cfg.Tier = compiler.Tier(n)
	}
	return nil
}

// Resolve starts from compiler.DefaultConfig, applies the file at path (when
// path is not empty) and then the environment.
func Resolve(path string, lookup func(string) (string, bool)) (compiler.Config, error) {
	cfg := compiler.DefaultConfig()
	if path != "" {
		if err := LoadFile(path, &cfg); err != nil {
			return cfg, err
		}
	}
	if err := ApplyEnv(&cfg, lookup); err != nil {
		return cfg, err
	}
	return cfg, nil
}
