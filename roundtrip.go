package main

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

type xmlProgram struct {
	XMLName      xml.Name         `xml:"program"`
	Language     string           `xml:"language,attr"`
	Instructions []xmlInstruction `xml:"instruction"`
}

type xmlInstruction struct {
	Order  int      `xml:"order,attr"`
	Opcode string   `xml:"opcode,attr"`
	Args   []xmlArg `xml:",any"`
}

type xmlArg struct {
	XMLName xml.Name
	Type    string `xml:"type,attr"`
	Text    string `xml:",chardata"`
}

// decodeProgram reads a document produced by writeXML back into a
// Program. Every argument is validated again from its type and text.
func decodeProgram(r io.Reader) (*Program, error) {
	var doc xmlProgram
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("error decoding XML: %w", err)
	}

	sort.SliceStable(doc.Instructions, func(i, j int) bool {
		return doc.Instructions[i].Order < doc.Instructions[j].Order
	})

	prog := newProgram(doc.Language)
	prog.HeaderSeen = true
	for i, xi := range doc.Instructions {
		if xi.Order != i+1 {
			return nil, fmt.Errorf("instruction %q: expected order %d, got %d", xi.Opcode, i+1, xi.Order)
		}
		args, err := decodeArgs(xi.Args)
		if err != nil {
			return nil, fmt.Errorf("instruction %d: %w", xi.Order, err)
		}
		prog.append(xi.Opcode, args)
	}
	return prog, nil
}

func decodeArgs(xargs []xmlArg) ([]Literal, error) {
	positions := make(map[int]xmlArg, len(xargs))
	for _, xa := range xargs {
		n, err := strconv.Atoi(strings.TrimPrefix(xa.XMLName.Local, "arg"))
		if err != nil || !strings.HasPrefix(xa.XMLName.Local, "arg") || n < 1 || n > len(xargs) {
			return nil, fmt.Errorf("unexpected element <%s>", xa.XMLName.Local)
		}
		if _, dup := positions[n]; dup {
			return nil, fmt.Errorf("duplicate element <%s>", xa.XMLName.Local)
		}
		positions[n] = xa
	}

	args := make([]Literal, len(xargs))
	for n := 1; n <= len(xargs); n++ {
		xa := positions[n]
		kind := LiteralKind(xa.Type)
		lexeme := xa.Text
		if kind.isConstant() {
			lexeme = xa.Type + "@" + xa.Text
		}
		lit, err := classify(lexeme)
		if err != nil {
			return nil, fmt.Errorf("arg%d: %w", n, err)
		}
		if lit.Kind != kind {
			return nil, fmt.Errorf("arg%d: type %q does not match value %q", n, xa.Type, xa.Text)
		}
		args[n-1] = lit
	}
	return args, nil
}

// verifyRoundtrip decodes rendered and checks that serializing the
// decoded program reproduces it byte for byte.
func verifyRoundtrip(prog *Program, rendered []byte, indent string) error {
	decoded, err := decodeProgram(bytes.NewReader(rendered))
	if err != nil {
		return err
	}
	if got, want := len(decoded.Instructions), len(prog.Instructions); got != want {
		return fmt.Errorf("decoded %d instructions, want %d", got, want)
	}

	var again bytes.Buffer
	if err := decoded.writeXML(&again, indent); err != nil {
		return err
	}
	if !bytes.Equal(again.Bytes(), rendered) {
		return fmt.Errorf("re-serialized document differs from the original")
	}
	return nil
}
