//go:build !js && !wasm

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/OrangeBacon/orange-sub000/colors"
	"github.com/OrangeBacon/orange-sub000/internal/compiler"
	"github.com/OrangeBacon/orange-sub000/internal/orange"
	"github.com/OrangeBacon/orange-sub000/internal/program"
)

const version = "0.1.0"

func main() {
	// Define flags
	debug := flag.Bool("d", false, "Enable debug output")
	showVersion := flag.Bool("v", false, "Show version")
	flag.BoolVar(debug, "debug", false, "Enable debug output")
	flag.BoolVar(showVersion, "version", false, "Show version")
	noColor := flag.Bool("no-color", false, "Disable coloured output")
	dump := flag.Bool("dump", false, "Print the generated opcode table")
	graph := flag.Bool("graph", false, "Print the dependency graph of every line as graphviz dot")
	showSource := flag.Bool("source", false, "Print the reference microcode and exit")

	flag.Parse()

	if *noColor {
		colors.Enabled = false
	}

	// Handle version
	if *showVersion {
		fmt.Printf("Orange microcode compiler version %s\n", version)
		os.Exit(0)
	}

	if *showSource {
		fmt.Print(orange.Source)
		os.Exit(0)
	}

	if flag.NArg() > 0 {
		fmt.Fprintln(os.Stderr, "Usage: orange [options]")
		fmt.Fprintln(os.Stderr, "\nAnalyses the bundled Orange reference microcode.")
		fmt.Fprintln(os.Stderr, "\nOptions:")
		flag.PrintDefaults()
		os.Exit(1)
	}

	opts := &compiler.Options{
		File:      orange.Microcode(),
		Catalogue: orange.Catalogue(),
		Debug:     *debug,
		Output:    os.Stderr,
	}
	if *graph {
		opts.Graphs = os.Stdout
	}

	result, err := compiler.Compile(opts)
	if err != nil {
		colors.RED.Fprintln(os.Stderr, "internal error:", err)
		os.Exit(2)
	}

	if *dump {
		if *debug {
			program.DebugDump(os.Stdout, result.Program)
		} else {
			program.Dump(os.Stdout, result.Program, opts.Catalogue)
		}
	}

	// Exit code
	if !result.Success {
		os.Exit(1)
	}
}
