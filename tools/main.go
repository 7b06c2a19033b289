package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/OrangeBacon/orange-sub000/colors"
	"github.com/OrangeBacon/orange-sub000/internal/compiler"
	"github.com/OrangeBacon/orange-sub000/internal/orange"
	"github.com/OrangeBacon/orange-sub000/internal/program"
)

// Renders the reference microcode into build/: the opcode table, the
// dependency graph of every scheduled line and, when graphviz is installed,
// an svg per graph.
func main() {
	if err := run(); err != nil {
		colors.RED.Fprintln(os.Stderr, "graphs:", err)
		os.Exit(1)
	}

	colors.GREEN.Println("rendered successfully!")
}

func run() error {
	root, err := findRepoRoot()
	if err != nil {
		return err
	}

	buildDir := filepath.Join(root, "build")
	if err := os.MkdirAll(buildDir, 0755); err != nil {
		return fmt.Errorf("create build dir: %w", err)
	}

	dotPath := filepath.Join(buildDir, "orange.dot")
	if err := writeOutputs(dotPath, filepath.Join(buildDir, "orange.txt")); err != nil {
		return err
	}

	dot, err := resolveTool("ORANGE_DOT", "dot")
	if err != nil {
		colors.YELLOW.Println("graphviz not found, skipping svg output")
		return nil
	}

	// -O names the outputs after the input, one file per graph
	cmd := exec.Command(dot, "-Tsvg", "-O", dotPath)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("render %s: %w", filepath.Base(dotPath), err)
	}
	return nil
}

func writeOutputs(dotPath, tablePath string) error {
	graphs, err := os.Create(dotPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", dotPath, err)
	}
	defer graphs.Close()

	cat := orange.Catalogue()
	result, err := compiler.Compile(&compiler.Options{
		File:      orange.Microcode(),
		Catalogue: cat,
		Graphs:    graphs,
	})
	if err != nil {
		return fmt.Errorf("compile: %w", err)
	}
	if !result.Success {
		return fmt.Errorf("reference microcode failed to compile")
	}

	table, err := os.Create(tablePath)
	if err != nil {
		return fmt.Errorf("create %s: %w", tablePath, err)
	}
	defer table.Close()
	program.Dump(table, result.Program, cat)
	return nil
}

func findRepoRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get cwd: %w", err)
	}

	dir := cwd
	for {
		if fileExists(filepath.Join(dir, "go.mod")) {
			return dir, nil
		}
		next := filepath.Dir(dir)
		if next == dir {
			break
		}
		dir = next
	}

	return "", fmt.Errorf("go.mod not found from %s", cwd)
}

func resolveTool(env, defaultName string) (string, error) {
	if val := os.Getenv(env); val != "" {
		return resolveToolPath(val)
	}
	return resolveToolPath(defaultName)
}

func resolveToolPath(name string) (string, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("tool not found: %s", name)
	}
	return path, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
