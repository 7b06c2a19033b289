package diagnostics

import (
	"fmt"

	"github.com/OrangeBacon/orange-sub000/internal/source"
)

// Common diagnostic builders for the analyser

// UndefinedIdentifier creates a diagnostic for a name that is not declared
func UndefinedIdentifier(loc *source.Location, name string) *Diagnostic {
	return NewError(fmt.Sprintf("identifier '%s' was not defined", name)).
		WithCode(ErrUndefinedIdentifier).
		WithPrimaryLabel(loc, "not found")
}

// WrongKind creates a diagnostic for an identifier of the wrong kind
func WrongKind(loc *source.Location, name, expected, found string) *Diagnostic {
	return NewError(fmt.Sprintf("expecting identifier '%s' to be a %s, but found %s", name, expected, found)).
		WithCode(ErrWrongIdentifierKind).
		WithPrimaryLabel(loc, "must be a "+expected)
}

// AlreadyDefined creates a diagnostic for a redefinition, pointing at the first
// definition when it has a source location
func AlreadyDefined(newLoc, prevLoc *source.Location, name, kind string) *Diagnostic {
	diag := NewError(fmt.Sprintf("'%s' is already defined as a %s", name, kind)).
		WithCode(ErrAlreadyDefined).
		WithPrimaryLabel(newLoc, "redefined here")
	if prevLoc != nil {
		diag.WithSecondaryLabel(prevLoc, "first defined here")
	} else {
		diag.WithNote(fmt.Sprintf("'%s' is provided by the hardware description", name))
	}
	return diag.WithHelp("use a different name, the first definition is kept")
}

// MissingParameter creates a diagnostic for a required parameter that is not declared
func MissingParameter(loc *source.Location, name, usage string) *Diagnostic {
	return NewError(fmt.Sprintf("parameter '%s' required to analyse %s not found", name, usage)).
		WithCode(ErrMissingParameter).
		WithPrimaryLabel(loc, "required here").
		WithHelp(fmt.Sprintf("declare it before this statement, e.g. '%s: 4;'", name))
}

// ParameterKind creates a diagnostic for a required parameter declared as something else
func ParameterKind(loc *source.Location, name, usage, found string) *Diagnostic {
	return NewError(fmt.Sprintf("to analyse %s, '%s' must be a parameter but found %s", usage, name, found)).
		WithCode(ErrWrongIdentifierKind).
		WithPrimaryLabel(loc, "required here")
}
