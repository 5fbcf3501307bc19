package main

import (
	"log/slog"
	"strings"
)

type parseState int

const (
	awaitHeader parseState = iota
	parsing
	done
)

func (s parseState) String() string {
	switch s {
	case awaitHeader:
		return "await-header"
	case parsing:
		return "parsing"
	}
	return "done"
}

// parser validates significant lines and accumulates the program. The
// first violation ends the run; there is no recovery.
type parser struct {
	header string
	set    instructionSet
	logger *slog.Logger

	state parseState
	prog  *Program
}

func newParser(cfg *Config, logger *slog.Logger) *parser {
	return &parser{
		header: cfg.header(),
		set:    instructionSetFor(cfg),
		logger: logger,
		prog:   newProgram(cfg.Language),
	}
}

// parse consumes the lexer and returns the built program.
func (p *parser) parse(lx *lexer) (*Program, error) {
	for {
		line, ok := lx.Next()
		if !ok {
			break
		}
		if err := p.parseLine(line); err != nil {
			p.logger.Debug("parse stopped", "state", p.state, "line", line.Number)
			return nil, err
		}
	}
	if err := lx.Err(); err != nil {
		return nil, err
	}
	if p.state == awaitHeader {
		return nil, newError(HeaderError, 0, "", "missing header %s", p.header)
	}
	p.state = done
	return p.prog, nil
}

func (p *parser) parseLine(line sourceLine) error {
	first := line.Tokens[0]

	if p.state == awaitHeader {
		if !strings.EqualFold(first.Lexeme, p.header) {
			return newError(HeaderError, line.Number, first.Lexeme, "expected header %s, found %q", p.header, first.Lexeme)
		}
		if len(line.Tokens) > 1 {
			return newError(HeaderError, line.Number, line.Tokens[1].Lexeme, "unexpected %q after header", line.Tokens[1].Lexeme)
		}
		p.prog.HeaderSeen = true
		p.state = parsing
		p.logger.Debug("header accepted", "line", line.Number, "language", p.prog.Language)
		return nil
	}

	if strings.EqualFold(first.Lexeme, p.header) {
		return newError(OtherError, line.Number, first.Lexeme, "header %s is only allowed on the first line", p.header)
	}

	opcode, pattern, ok := p.set.lookup(first.Lexeme)
	if !ok {
		return newError(OpcodeError, line.Number, first.Lexeme, "unknown opcode %q", first.Lexeme)
	}

	operands := line.Tokens[1:]
	if len(operands) != len(pattern) {
		return newError(OtherError, line.Number, first.Lexeme, "%s expects %d operand(s), got %d", opcode, len(pattern), len(operands))
	}

	args := make([]Literal, len(operands))
	for i, tok := range operands {
		lit, err := classify(tok.Lexeme)
		if err != nil {
			return newError(OtherError, tok.Line, tok.Lexeme, "operand %d of %s", i+1, opcode).withCause(err)
		}
		if !pattern[i].accepts(lit.Kind) {
			return newError(OtherError, tok.Line, tok.Lexeme, "operand %d of %s must be <%s>, got %s %q", i+1, opcode, pattern[i], lit.Kind, tok.Lexeme)
		}
		args[i] = lit
	}

	inst := p.prog.append(opcode, args)
	p.logger.Debug("instruction", "line", line.Number, "order", inst.Order, "opcode", opcode)
	return nil
}
