package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
)

// invocation is one run of the command with its streams and environment.
type invocation struct {
	Program     string
	Args        []string
	Stdin       io.Reader
	Stdout      io.Writer
	Stderr      io.Writer
	Getenv      func(string) string
	Interactive bool // stdin is a terminal
	Columns     int  // stdout terminal width, 0 if not a terminal
}

// run executes the invocation and returns the process exit code.
func (inv *invocation) run() int {
	cfg, cfgErr := configFromEnv(inv.Getenv)
	level := DefaultConfig.LogLevel
	if cfgErr == nil {
		level = cfg.LogLevel
	}
	logger := slog.New(slog.NewTextHandler(inv.Stderr, &slog.HandlerOptions{Level: level}))

	if cfgErr != nil {
		return inv.fail(logger, newError(ArgError, 0, "", "invalid environment").withCause(cfgErr))
	}

	help, err := parseArgs(inv.Program, inv.Args)
	if err != nil {
		return inv.fail(logger, err)
	}
	if help {
		fmt.Fprint(inv.Stdout, renderUsage(inv.Program, cfg, inv.Columns))
		return 0
	}

	if inv.Interactive {
		logger.Info("reading source from the terminal, end input with Ctrl-D")
	}

	t := newTranslator(cfg, logger)
	if err := t.translate(inv.Stdout, inv.Stdin); err != nil {
		return inv.fail(logger, err)
	}
	return 0
}

func (inv *invocation) fail(logger *slog.Logger, err error) int {
	code := exitCode(err)
	attrs := []any{"exit", code, "err", err}
	var terr *Error
	if errors.As(err, &terr) {
		attrs = append(attrs, "kind", terr.Kind.String())
		if terr.Line > 0 {
			attrs = append(attrs, "line", terr.Line)
		}
		if terr.Lexeme != "" {
			attrs = append(attrs, "lexeme", terr.Lexeme)
		}
	}
	logger.Error("translation failed", attrs...)
	return code
}

// parseArgs accepts either no arguments or a single --help. Anything
// else, including a repeated --help, is an ArgError.
func parseArgs(program string, args []string) (help bool, err error) {
	if len(args) == 0 {
		return false, nil
	}
	if len(args) > 1 {
		return false, newError(ArgError, 0, "", "expected at most one argument, got %d", len(args))
	}
	if args[0] != "--help" && args[0] != "-help" {
		return false, newError(ArgError, 0, args[0], "unrecognized argument %q", args[0])
	}

	fs := flag.NewFlagSet(program, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	flagHelp := fs.Bool("help", false, "print usage and exit")
	if err := fs.Parse(args); err != nil {
		return false, newError(ArgError, 0, "", "invalid arguments").withCause(err)
	}
	return *flagHelp, nil
}
