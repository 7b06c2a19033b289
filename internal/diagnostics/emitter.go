package diagnostics

import (
	"fmt"
	"io"
	"strings"

	"github.com/OrangeBacon/orange-sub000/colors"
)

const (
	LINE_POS = "%s--> %s:%d:%d\n"
)

// Emitter handles the rendering and output of diagnostics.
// Source snippets are not printed, only positions and messages.
type Emitter struct {
	writer io.Writer
}

// NewEmitter creates an emitter that writes to a specific writer
func NewEmitter(w io.Writer) *Emitter {
	return &Emitter{
		writer: w,
	}
}

func (e *Emitter) Emit(diag *Diagnostic) {
	e.printHeader(diag)

	for _, label := range diag.Labels {
		e.printLabel(diag.FilePath, label, diag.Severity)
	}

	for _, note := range diag.Notes {
		e.printNote(note)
	}

	if diag.Help != "" {
		e.printHelp(diag.Help)
	}

	if diag.Graph != "" {
		e.printGraph(diag.Graph)
	}

	fmt.Fprintln(e.writer)
}

func (e *Emitter) printHeader(diag *Diagnostic) {
	color := e.getSeverityColor(diag.Severity)

	fmt.Fprintf(e.writer, "%s ", diag.Stage)
	color.Fprint(e.writer, diag.Severity.String())
	if diag.Code != "" {
		fmt.Fprintf(e.writer, "[%s]", diag.Code)
	}
	fmt.Fprint(e.writer, ": ")
	color.Fprintln(e.writer, diag.Message)
}

func (e *Emitter) printLabel(filepath string, label Label, severity Severity) {
	if label.Location == nil || label.Location.Start == nil {
		return
	}

	start := label.Location.Start
	if file := label.Location.File(); file != "" {
		filepath = file
	}

	colors.BLUE.Fprintf(e.writer, LINE_POS, "  ", filepath, start.Line, start.Column)
	if label.Message == "" {
		return
	}

	fmt.Fprint(e.writer, "   ")
	colors.GREY.Fprint(e.writer, "| ")
	if label.Style == Primary {
		e.getSeverityColor(severity).Fprintln(e.writer, label.Message)
	} else {
		colors.BLUE.Fprintln(e.writer, label.Message)
	}
}

func (e *Emitter) printNote(note Note) {
	fmt.Fprint(e.writer, "   ")
	colors.CYAN.Fprint(e.writer, "= note: ")
	fmt.Fprintln(e.writer, note.Message)
}

func (e *Emitter) printHelp(help string) {
	fmt.Fprint(e.writer, "   ")
	colors.GREEN.Fprint(e.writer, "= help: ")
	fmt.Fprintln(e.writer, help)
}

func (e *Emitter) printGraph(dot string) {
	fmt.Fprint(e.writer, "   ")
	colors.CYAN.Fprintln(e.writer, "= command graph (graphviz dot):")
	for _, line := range strings.Split(strings.TrimRight(dot, "\n"), "\n") {
		fmt.Fprintf(e.writer, "     %s\n", line)
	}
}

func (e *Emitter) getSeverityColor(severity Severity) colors.COLOR {
	switch severity {
	case Error:
		return colors.BOLD_RED
	case Warning:
		return colors.BOLD_YELLOW
	case Info:
		return colors.BOLD_CYAN
	default:
		return colors.BOLD_PURPLE
	}
}
