package config

import (
	"flag"
	"fmt"
	"io"
	"strings"
	"time"
)

// defineList collects repeated -D name=expr flags in order.
type defineList []string

func (d *defineList) String() string { return strings.Join(*d, ",") }

func (d *defineList) Set(v string) error {
	if !strings.Contains(v, "=") {
		return fmt.Errorf("expected name=expr, got %q", v)
	}
	*d = append(*d, v)
	return nil
}

// Flags are the command-line flags of scadgen, bound to their own FlagSet.
type Flags struct {
	fs *flag.FlagSet

	config      string
	output      string
	diff        bool
	detail      int
	color       string
	debug       bool
	timeout     time.Duration
	printConfig bool
	defines     defineList
}

// NewFlags registers the flags on a new ContinueOnError FlagSet. Usage
// text goes to out.
func NewFlags(name string, out io.Writer) *Flags {
	f := &Flags{fs: flag.NewFlagSet(name, flag.ContinueOnError)}
	fs := f.fs
	fs.SetOutput(out)
	fs.StringVar(&f.config, "config", "", "path to config file (default ./scadgen.yaml if present)")
	fs.StringVar(&f.output, "o", "", "write the generated document to this file instead of stdout")
	fs.BoolVar(&f.diff, "d", false, "print a diff against the existing output file instead of writing it")
	fs.IntVar(&f.detail, "detail", 0, "global $fn detail level when the script sets none")
	fs.StringVar(&f.color, "color", "", "colorize terminal output: auto, always or never")
	fs.BoolVar(&f.debug, "debug", false, "enable debug logging")
	fs.DurationVar(&f.timeout, "timeout", 0, "evaluation time limit")
	fs.BoolVar(&f.printConfig, "print-config", false, "print the effective configuration as YAML and exit")
	fs.Var(&f.defines, "D", "define a global, name=expr (repeatable)")
	fs.Usage = func() {
		fmt.Fprintf(out, "usage: %s [flags] script.zy\n", name)
		fs.PrintDefaults()
	}
	return f
}

// Parse parses command-line arguments, excluding the program name.
func (f *Flags) Parse(args []string) error {
	return f.fs.Parse(args)
}

// Args returns the positional arguments left after parsing.
func (f *Flags) Args() []string { return f.fs.Args() }

// Usage prints the usage text.
func (f *Flags) Usage() { f.fs.Usage() }

// ConfigPath returns the explicit config path if provided via -config.
func (f *Flags) ConfigPath() string { return f.config }

// Diff reports whether -d was given.
func (f *Flags) Diff() bool { return f.diff }

// PrintConfig reports whether -print-config was given.
func (f *Flags) PrintConfig() bool { return f.printConfig }

// Defines returns the -D flags in command-line order.
func (f *Flags) Defines() []string { return f.defines }

// apply copies the flags that were set on the command line into cfg.
func (f *Flags) apply(cfg *Config) {
	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "o":
			cfg.Output = f.output
		case "detail":
			cfg.Detail = f.detail
		case "color":
			cfg.Color = f.color
		case "timeout":
			cfg.Timeout = f.timeout
		case "debug":
			if f.debug {
				cfg.Logging.Level = "debug"
			}
		}
	})
}
