package compiler

import "log/slog"

// Compile translates src into a Python 3 program according to cfg. The
// configuration is validated first; structural errors abort the
// compilation and no partial output is returned.
func Compile(src string, cfg Config) (string, error) {
	if err := cfg.Validate(); err != nil {
		return "", err
	}

	builder := NewBuilder(cfg.IndentWidth, cfg.IndentChar)
	gen, err := NewGenerator(cfg, builder)
	if err != nil {
		return "", err
	}

	instructions := 0
	tokenizer := NewTokenizer()
	tokenizer.OnInstruction(func(Instruction) error {
		instructions++
		return nil
	})
	tokenizer.Listen(gen, cfg.Comments)

	if err := tokenizer.Tokenize(src); err != nil {
		slog.Debug("compilation failed", "tier", cfg.Tier, "error", err)
		return "", err
	}

	code := builder.Render()
	slog.Debug("compiled program",
		"tier", cfg.Tier,
		"instructions", instructions,
		"lines", len(builder.Lines()),
		"bytes", len(code),
	)
	return code, nil
}
