package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"gobpc/pkg/compiler"
	"gobpc/pkg/config"
	"gobpc/pkg/utils"
)

type options struct {
	output        string
	configPath    string
	memory        int
	indent        int
	optimizations int
	comments      bool
	dump          bool
	tabIndent     bool
	verbose       bool
}

func newRootCmd(lookupEnv func(string) (string, bool)) *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "bpc <input>",
		Short: "Compile a tape-machine program (+-<>,.[]) into Python",
		Long: "Compile a tape-machine program (+-<>,.[]) into Python 3.\n" +
			"\n" +
			"Every character other than the eight instructions is a comment. Settings are\n" +
			"read from the --config YAML file, then from BPC_* environment variables, and\n" +
			"finally from the flags given on the command line. Use '-' as input to read\n" +
			"the program from standard input and '-o -' to write the result to standard output.",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if opts.verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

			cfg, err := config.Resolve(opts.configPath, lookupEnv)
			if err != nil {
				return err
			}
			applyFlags(cmd, &opts, &cfg)

			return compileFile(cmd, args[0], opts.output, cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.output, "output", "o", "",
		"Compiled python file name or '-' for stdout (default: input name with .py extension)")
	flags.StringVar(&opts.configPath, "config", "", "YAML file with compiler settings")
	flags.IntVarP(&opts.memory, "memory", "m", 1024, "The size of the memory used by the program")
	flags.BoolVarP(&opts.comments, "comments", "c", false, "Include comments in generated file")
	flags.BoolVarP(&opts.dump, "dump", "d", false, "Dump the memory and the pointer at the end of the program")
	flags.IntVarP(&opts.indent, "indent", "i", 4, "Number of characters used to indent the code")
	flags.BoolVarP(&opts.tabIndent, "tab-indent", "t", false, "Indent with tabs instead of spaces")
	flags.IntVarP(&opts.optimizations, "optimizations", "O", 2, "Optimization level (0, 1, 2)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log compilation details")

	return cmd
}

// applyFlags overrides cfg with the flags set explicitly on the command line.
func applyFlags(cmd *cobra.Command, opts *options, cfg *compiler.Config) {
	flags := cmd.Flags()
	if flags.Changed("memory") {
		cfg.MemorySize = opts.memory
	}
	if flags.Changed("indent") {
		cfg.IndentWidth = opts.indent
	}
	if flags.Changed("tab-indent") {
		cfg.IndentChar = ' '
		if opts.tabIndent {
			cfg.IndentChar = '\t'
		}
	}
	if flags.Changed("comments") {
		cfg.Comments = opts.comments
	}
	if flags.Changed("dump") {
		cfg.DumpMemory = opts.dump
	}
	if flags.Changed("optimizations") {
		cfg.Tier = compiler.Tier(opts.optimizations)
	}
}

func compileFile(cmd *cobra.Command, input, output string, cfg compiler.Config) error {
	var source []byte
	var err error
	if input == utils.StdioPath {
		source, err = io.ReadAll(cmd.InOrStdin())
	} else {
		var fullPath string
		fullPath, _, err = utils.GetPathInfo(input)
		if err == nil {
			source, err = os.ReadFile(fullPath)
		}
	}
	if err != nil {
		return errors.Wrapf(err, "reading %s", input)
	}

	code, err := compiler.Compile(string(source), cfg)
	if err != nil {
		return errors.Wrapf(err, "compiling %s", input)
	}

	if output == "" {
		output = utils.DefaultOutputPath(input)
	}
	if output == utils.StdioPath {
		_, err = io.WriteString(cmd.OutOrStdout(), code)
		return errors.Wrap(err, "writing to stdout")
	}
	if err := writeFileAtomic(output, []byte(code)); err != nil {
		return errors.Wrapf(err, "writing %s", output)
	}

	slog.Info("compiled",
		"input", input,
		"output", output,
		"tier", cfg.Tier,
		"size", humanize.Bytes(uint64(len(code))),
	)
	return nil
}

// writeFileAtomic writes data next to path and renames it into place. A
// temporary file left behind by a failed write is removed at exit.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	name := tmp.Name()
	atexit.Register(func() { _ = os.Remove(name) })

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(name, 0o644); err != nil {
		return err
	}
	return os.Rename(name, path)
}

func main() {
	if err := newRootCmd(os.LookupEnv).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "bpc: %v\n", err)
		atexit.Exit(1)
	}
	atexit.Exit(0)
}
