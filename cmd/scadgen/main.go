// Command scadgen evaluates a modelling script and writes the resulting
// OpenSCAD document.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/chazu/scadgen/internal/config"
	"github.com/chazu/scadgen/internal/defines"
	"github.com/chazu/scadgen/internal/diffview"
	"github.com/chazu/scadgen/internal/highlight"
	"github.com/chazu/scadgen/internal/logger"
	"github.com/chazu/scadgen/pkg/engine"
	"github.com/chazu/scadgen/pkg/scad"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
)

// Exit codes.
const (
	exitOK        = 0
	exitError     = 1
	exitEvalError = 2
)

// diffContext is the number of unchanged lines shown around each change.
const diffContext = 3

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := config.NewFlags("scadgen", stderr)
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitError
	}

	cfg, err := config.Load(flags)
	if err != nil {
		fmt.Fprintf(stderr, "scadgen: %v\n", err)
		return exitError
	}

	if flags.PrintConfig() {
		data, err := cfg.Marshal()
		if err != nil {
			fmt.Fprintf(stderr, "scadgen: %v\n", err)
			return exitError
		}
		stdout.Write(data)
		return exitOK
	}

	if len(flags.Args()) != 1 {
		flags.Usage()
		return exitError
	}
	script := flags.Args()[0]

	log, err := newLogger(cfg, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "scadgen: %v\n", err)
		return exitError
	}
	defer logger.Sync(log)

	defs := defines.FromMap(cfg.Defines)
	for _, s := range flags.Defines() {
		d, err := defines.Parse(s)
		if err != nil {
			log.Error("bad define", zap.Error(err))
			return exitError
		}
		defs = append(defs, d)
	}
	values, err := defines.Resolve(defs)
	if err != nil {
		log.Error("resolving defines", zap.Error(err))
		return exitError
	}

	src, err := os.ReadFile(script)
	if err != nil {
		log.Error("reading script", zap.String("path", script), zap.Error(err))
		return exitError
	}

	eng := engine.NewEngine(
		engine.WithTimeout(cfg.Timeout),
		engine.WithDefines(values),
		engine.WithLogger(log.Named("engine")),
	)
	doc, evalErrs, err := eng.Evaluate(string(src))
	if err != nil {
		log.Error("evaluation failed", zap.String("script", script), zap.Error(err))
		return exitError
	}
	if len(evalErrs) > 0 {
		for _, e := range evalErrs {
			fmt.Fprintf(stderr, "%s: %v\n", script, e)
		}
		return exitEvalError
	}

	if doc.Detail == 0 && cfg.Detail > 0 {
		doc.SetDetail(cfg.Detail)
	}
	log.Debug("document ready",
		zap.Int("objects", len(doc.Objects())),
		zap.Int("detail", doc.Detail))

	hl := highlight.New(colorEnabled(cfg.Color, stdout))

	switch {
	case flags.Diff():
		if cfg.Output == "" {
			log.Error("-d needs an output file")
			return exitError
		}
		old, err := os.ReadFile(cfg.Output)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			log.Error("reading output file", zap.String("path", cfg.Output), zap.Error(err))
			return exitError
		}
		lines := diffview.Lines(string(old), doc.Code())
		if !diffview.Changed(lines) {
			log.Info("no changes", zap.String("path", cfg.Output))
			return exitOK
		}
		io.WriteString(stdout, diffview.Format(lines, diffContext, hl))
		inserted, deleted := diffview.Stats(lines)
		log.Info("diff",
			zap.String("path", cfg.Output),
			zap.Int("inserted", inserted),
			zap.Int("deleted", deleted))

	case cfg.Output != "":
		if err := doc.Save(cfg.Output); err != nil {
			var perr *scad.PersistError
			if errors.As(err, &perr) {
				log.Error("writing document", zap.String("path", perr.Path), zap.Error(perr.Err))
			} else {
				log.Error("writing document", zap.Error(err))
			}
			return exitError
		}
		log.Info("wrote document", zap.String("path", cfg.Output))

	default:
		io.WriteString(stdout, hl.Code(doc.Code()))
	}
	return exitOK
}

func newLogger(cfg *config.Config, stderr io.Writer) (*zap.Logger, error) {
	opts := logger.Options{
		Level:   cfg.Logging.Level,
		Console: stderr,
		Color:   colorEnabled(cfg.Color, stderr),
	}
	if cfg.Logging.File != "" {
		opts.File = logger.DefaultFileConfig(cfg.Logging.File)
	}
	return logger.New(opts)
}

// colorEnabled resolves a colour mode for w. In auto mode only terminals
// get colour.
func colorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
