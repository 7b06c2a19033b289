package compiler

import (
	"io"
	"os"

	"github.com/OrangeBacon/orange-sub000/colors"
	"github.com/OrangeBacon/orange-sub000/internal/catalogue"
	"github.com/OrangeBacon/orange-sub000/internal/diagnostics"
	"github.com/OrangeBacon/orange-sub000/internal/frontend/ast"
	"github.com/OrangeBacon/orange-sub000/internal/program"
	"github.com/OrangeBacon/orange-sub000/internal/semantics/analyzer"
)

// Options for compilation
type Options struct {
	// Parsed microcode description
	File *ast.File
	// Hardware the microcode drives
	Catalogue *catalogue.Catalogue
	// Debug output
	Debug bool
	// Write the dependency graph of every scheduled line here (nil disables)
	Graphs io.Writer
	// Diagnostics are written here, os.Stderr when nil
	Output io.Writer
}

// Result of compilation
type Result struct {
	// true when no errors were recorded, warnings are allowed
	Success     bool
	Program     *program.Program
	Diagnostics *diagnostics.DiagnosticBag
}

// Compile analyses a microcode description and emits its diagnostics. The
// error is only set when the catalogue itself is broken.
func Compile(opts *Options) (Result, error) {
	output := opts.Output
	if output == nil {
		output = os.Stderr
	}

	filePath := ""
	if opts.File != nil {
		filePath = opts.File.FileName
	}

	ctx, err := analyzer.New(filePath, opts.Catalogue)
	if err != nil {
		return Result{Success: false}, err
	}
	ctx.Debug = opts.Debug
	ctx.GraphOutput = opts.Graphs

	if opts.Debug {
		colors.PURPLE.Printf("[Compile] %s with %d components, %d commands\n",
			filePath, len(opts.Catalogue.Components), len(opts.Catalogue.Commands))
	}

	if opts.File != nil {
		analyzer.Analyse(ctx, opts.File)
	}

	ctx.Diagnostics.EmitAll(output)

	if opts.Debug {
		if ctx.Diagnostics.HasErrors() {
			colors.RED.Println("[Compile] analysis failed")
		} else {
			colors.GREEN.Printf("[Compile] %d opcodes ready for generation\n", len(ctx.Program.ValidOpcodes()))
		}
	}

	return Result{
		Success:     !ctx.Diagnostics.HasErrors(),
		Program:     ctx.Program,
		Diagnostics: ctx.Diagnostics,
	}, nil
}
