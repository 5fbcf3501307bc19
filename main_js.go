//go:build js

package main

import (
	"fmt"
	"strings"
	"syscall/js"
)

func ippToXMLFunction(this js.Value, p []js.Value) any {
	if len(p) != 1 {
		return js.ValueOf(fmt.Sprintf("error %d: expected one argument", int(ArgError)))
	}
	var out strings.Builder
	t := newTranslator(&DefaultConfig, nil)
	if err := t.translate(&out, strings.NewReader(p[0].String())); err != nil {
		return js.ValueOf(fmt.Sprintf("error %d: %v", exitCode(err), err))
	}
	return js.ValueOf(out.String())
}

func main() {
	c := make(chan struct{})

	js.Global().Set("ippToXML", js.FuncOf(ippToXMLFunction))

	<-c
}
