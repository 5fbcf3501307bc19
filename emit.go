package main

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
)

func attr(name, value string) xml.Attr {
	return xml.Attr{Name: xml.Name{Local: name}, Value: value}
}

// writeXML serializes the program. Elements and attributes are always
// written in the same order so equal programs produce equal bytes.
func (p *Program) writeXML(w io.Writer, indent string) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("error writing XML header: %w", err)
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", indent)

	root := xml.StartElement{
		Name: xml.Name{Local: "program"},
		Attr: []xml.Attr{attr("language", p.Language)},
	}
	if err := enc.EncodeToken(root); err != nil {
		return fmt.Errorf("error encoding program: %w", err)
	}

	for _, inst := range p.Instructions {
		if err := encodeInstruction(enc, inst); err != nil {
			return fmt.Errorf("error encoding instruction %d: %w", inst.Order, err)
		}
	}

	if err := enc.EncodeToken(root.End()); err != nil {
		return fmt.Errorf("error encoding program: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("error flushing XML: %w", err)
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func encodeInstruction(enc *xml.Encoder, inst Instruction) error {
	start := xml.StartElement{
		Name: xml.Name{Local: "instruction"},
		Attr: []xml.Attr{
			attr("order", strconv.Itoa(inst.Order)),
			attr("opcode", inst.Opcode),
		},
	}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}

	for i, arg := range inst.Args {
		el := xml.StartElement{
			Name: xml.Name{Local: "arg" + strconv.Itoa(i+1)},
			Attr: []xml.Attr{attr("type", string(arg.Kind))},
		}
		if err := enc.EncodeToken(el); err != nil {
			return err
		}
		if arg.Text != "" {
			if err := enc.EncodeToken(xml.CharData(arg.Text)); err != nil {
				return err
			}
		}
		if err := enc.EncodeToken(el.End()); err != nil {
			return err
		}
	}

	return enc.EncodeToken(start.End())
}
