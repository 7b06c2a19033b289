package diagnostics

import (
	"github.com/OrangeBacon/orange-sub000/internal/source"
)

// Severity represents the severity level of a diagnostic
type Severity int

const (
	Error Severity = iota
	Warning
	Info
	Hint
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Info:
		return "info"
	case Hint:
		return "hint"
	default:
		return "unknown"
	}
}

// Stage is the compiler stage that produced a diagnostic
type Stage int

const (
	Semantic Stage = iota
	Schedule
	Syntax
)

func (s Stage) String() string {
	switch s {
	case Semantic:
		return "semantic"
	case Schedule:
		return "schedule"
	case Syntax:
		return "syntax"
	default:
		return "unknown"
	}
}

// Label represents a labeled section of code in a diagnostic
type Label struct {
	Location *source.Location
	Message  string
	Style    LabelStyle
}

type LabelStyle int

const (
	Primary   LabelStyle = iota // The main error location
	Secondary                   // Additional context
)

// Note represents additional information attached to a diagnostic
type Note struct {
	Message string
}

// Diagnostic represents a compiler diagnostic (error, warning, etc.)
type Diagnostic struct {
	Severity Severity
	Stage    Stage
	Message  string
	Code     string // Error code like "A0001"
	FilePath string // Source file for this diagnostic
	Labels   []Label
	Notes    []Note
	Help     string // Suggestion for fixing the error
	Graph    string // Dependency graph in graphviz dot format, if any
}

func newDiagnostic(severity Severity, message string) *Diagnostic {
	return &Diagnostic{
		Severity: severity,
		Stage:    Semantic,
		Message:  message,
		Labels:   make([]Label, 0),
		Notes:    make([]Note, 0),
	}
}

// NewError creates a new error diagnostic
func NewError(message string) *Diagnostic {
	return newDiagnostic(Error, message)
}

// NewWarning creates a new warning diagnostic
func NewWarning(message string) *Diagnostic {
	return newDiagnostic(Warning, message)
}

// WithCode sets the error code
func (d *Diagnostic) WithCode(code string) *Diagnostic {
	d.Code = code
	return d
}

// WithStage sets the stage that produced the diagnostic
func (d *Diagnostic) WithStage(stage Stage) *Diagnostic {
	d.Stage = stage
	return d
}

// WithLabel adds a labeled location to the diagnostic
func (d *Diagnostic) WithLabel(loc *source.Location, message string, style LabelStyle) *Diagnostic {
	if d.FilePath == "" {
		d.FilePath = loc.File()
	}
	d.Labels = append(d.Labels, Label{
		Location: loc,
		Message:  message,
		Style:    style,
	})
	return d
}

// WithPrimaryLabel adds the primary labeled location.
// A diagnostic has at most one primary label and it is always first.
func (d *Diagnostic) WithPrimaryLabel(loc *source.Location, message string) *Diagnostic {
	for _, label := range d.Labels {
		if label.Style == Primary {
			return d
		}
	}
	if len(d.Labels) > 0 {
		d.Labels = append([]Label{{
			Location: loc,
			Message:  message,
			Style:    Primary,
		}}, d.Labels...)
		if d.FilePath == "" {
			d.FilePath = loc.File()
		}
		return d
	}
	return d.WithLabel(loc, message, Primary)
}

// WithSecondaryLabel adds a secondary labeled location
// Primary label must exist before adding secondary labels
func (d *Diagnostic) WithSecondaryLabel(loc *source.Location, message string) *Diagnostic {
	if d.Primary() == nil {
		// programming error, make it visible
		panic("Cannot add secondary label without primary label. Call WithPrimaryLabel first.")
	}

	return d.WithLabel(loc, message, Secondary)
}

// WithNote adds a note to the diagnostic
func (d *Diagnostic) WithNote(message string) *Diagnostic {
	d.Notes = append(d.Notes, Note{Message: message})
	return d
}

// WithHelp sets helpful suggestion for fixing the error
func (d *Diagnostic) WithHelp(help string) *Diagnostic {
	d.Help = help
	return d
}

// WithGraph attaches a graphviz rendering of a dependency graph
func (d *Diagnostic) WithGraph(dot string) *Diagnostic {
	d.Graph = dot
	return d
}

// Primary returns the primary label, or nil if there is none
func (d *Diagnostic) Primary() *Label {
	for i := range d.Labels {
		if d.Labels[i].Style == Primary {
			return &d.Labels[i]
		}
	}
	return nil
}
