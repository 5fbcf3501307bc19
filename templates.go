package main

import (
	"bytes"
	_ "embed"
	"strings"
	"text/template"

	"golang.org/x/tools/txtar"
)

//go:embed templates.txt
var defaultTemplates string

var usageTemplate = loadTemplate("usage.tmpl")

// loadTemplate parses one file of the embedded template bundle.
func loadTemplate(name string) *template.Template {
	archive := txtar.Parse([]byte(defaultTemplates))
	for _, file := range archive.Files {
		if file.Name == name {
			return template.Must(template.New(name).Parse(string(file.Data)))
		}
	}
	panic("missing embedded template " + name)
}

type usageEnv struct {
	Name  string
	Usage string
}

type usageExit struct {
	Code    int
	Meaning string
}

type usageData struct {
	Program   string
	Language  string
	Rule      string
	Env       []usageEnv
	ExitCodes []usageExit
}

// renderUsage renders the help text. width is the terminal width, or 0
// when the output is not a terminal.
func renderUsage(program string, cfg *Config, width int) string {
	if width <= 0 || width > 72 {
		width = 72
	}
	data := usageData{
		Program:  program,
		Language: cfg.Language,
		Rule:     strings.Repeat("-", width),
		Env: []usageEnv{
			{envLogLevel, "debug, info, warn or error (default warn)"},
			{envUnaryNot, "if true, NOT takes <var> <symb>"},
			{envIndent, "XML indentation, spaces count or literal text"},
			{envVerify, "if true, re-read the output before writing it"},
		},
		ExitCodes: []usageExit{
			{0, "success"},
			{int(ArgError), "invalid arguments or environment"},
			{int(HeaderError), "missing or invalid header"},
			{int(OpcodeError), "unknown opcode"},
			{int(OtherError), "other lexical or syntactic error"},
		},
	}

	var buf bytes.Buffer
	if err := usageTemplate.Execute(&buf, data); err != nil {
		panic(err)
	}
	return buf.String()
}
