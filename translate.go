package main

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
)

// translator turns IPPcode24 source into the XML representation.
type translator struct {
	Config
	Logger *slog.Logger
}

func newTranslator(cfg *Config, logger *slog.Logger) *translator {
	if cfg == nil {
		cfg = &DefaultConfig
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &translator{Config: *cfg, Logger: logger}
}

// parse runs the lexer and the grammar validator over input.
func (t *translator) parse(input io.Reader) (*Program, error) {
	return newParser(&t.Config, t.Logger).parse(newLexer(input))
}

// translate writes the XML document for input to output. Nothing is
// written unless the whole input is valid.
func (t *translator) translate(output io.Writer, input io.Reader) error {
	prog, err := t.parse(input)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := prog.writeXML(&buf, t.Indent); err != nil {
		return newError(OtherError, 0, "", "rendering XML").withCause(err)
	}

	if t.Verify {
		if err := verifyRoundtrip(prog, buf.Bytes(), t.Indent); err != nil {
			return newError(OtherError, 0, "", "round-trip check failed").withCause(err)
		}
		t.Logger.Debug("round-trip verified", "instructions", len(prog.Instructions))
	}

	t.Logger.Info("translated", "instructions", len(prog.Instructions), "bytes", buf.Len())
	if _, err := output.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("error writing output: %w", err)
	}
	return nil
}
