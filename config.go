package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

// Config controls a translation run.
type Config struct {
	Language string     // language name after the leading dot of the header
	UnaryNot bool       // NOT takes <var> <symb> instead of <var> <symb> <symb>
	Indent   string     // per-level indentation of the XML document
	Verify   bool       // decode the rendered document and compare before writing it
	LogLevel slog.Level // minimum level of diagnostics on stderr
}

var DefaultConfig = Config{
	Language: "IPPcode24",
	UnaryNot: false,
	Indent:   "  ",
	Verify:   false,
	LogLevel: slog.LevelWarn,
}

// Environment variables read by configFromEnv.
const (
	envUnaryNot = "IPPCODE_UNARY_NOT"
	envIndent   = "IPPCODE_INDENT"
	envVerify   = "IPPCODE_VERIFY"
	envLogLevel = "IPPCODE_LOG_LEVEL"
)

// header returns the header lexeme for the configured language.
func (c *Config) header() string {
	return "." + c.Language
}

// configFromEnv returns DefaultConfig with any overrides found through
// getenv applied.
func configFromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{}
	*cfg = DefaultConfig
	if getenv == nil {
		return cfg, nil
	}

	if v := getenv(envUnaryNot); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", envUnaryNot, err)
		}
		cfg.UnaryNot = b
	}

	if v := getenv(envVerify); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", envVerify, err)
		}
		cfg.Verify = b
	}

	if v, ok, err := lookupIndent(getenv); err != nil {
		return nil, err
	} else if ok {
		cfg.Indent = v
	}

	if v := getenv(envLogLevel); v != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(strings.TrimSpace(v))); err != nil {
			return nil, fmt.Errorf("%s: %w", envLogLevel, err)
		}
	}
	return cfg, nil
}

// lookupIndent accepts either a number of spaces or the literal
// indentation string ("\t" is spelled as such). Only spaces and tabs
// may appear in the result.
func lookupIndent(getenv func(string) string) (string, bool, error) {
	v := getenv(envIndent)
	if v == "" {
		return "", false, nil
	}
	if n, err := strconv.Atoi(v); err == nil {
		if n < 0 {
			return "", false, fmt.Errorf("%s: negative width %d", envIndent, n)
		}
		return strings.Repeat(" ", n), true, nil
	}
	indent := strings.ReplaceAll(v, `\t`, "\t")
	if strings.Trim(indent, " \t") != "" {
		return "", false, fmt.Errorf("%s: %q may only contain spaces and tabs", envIndent, v)
	}
	return indent, true, nil
}
