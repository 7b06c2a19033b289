//go:build js && wasm

package main

import (
	"bytes"
	"syscall/js"

	"github.com/OrangeBacon/orange-sub000/colors"
	"github.com/OrangeBacon/orange-sub000/internal/compiler"
	"github.com/OrangeBacon/orange-sub000/internal/orange"
	"github.com/OrangeBacon/orange-sub000/internal/program"
)

func main() {
	colors.Enabled = false
	js.Global().Set("orangeCompile", js.FuncOf(compile))
	js.Global().Set("orangeWasmVersion", "0.1.0")
	println("Orange microcode compiler ready")
	<-make(chan struct{})
}

// compile(debug: bool) analyses the reference microcode and returns the
// diagnostics, the opcode table and the dependency graphs as text.
func compile(this js.Value, args []js.Value) any {
	if len(args) < 1 {
		return map[string]any{
			"success": false,
			"output":  "Invalid arguments: expected (debug: bool)",
		}
	}

	var output, graphs, table bytes.Buffer
	cat := orange.Catalogue()
	result, err := compiler.Compile(&compiler.Options{
		File:      orange.Microcode(),
		Catalogue: cat,
		Debug:     args[0].Bool(),
		Graphs:    &graphs,
		Output:    &output,
	})
	if err != nil {
		return map[string]any{
			"success": false,
			"output":  err.Error(),
		}
	}
	program.Dump(&table, result.Program, cat)

	return map[string]any{
		"success": result.Success,
		"output":  output.String(),
		"program": table.String(),
		"graphs":  graphs.String(),
	}
}
