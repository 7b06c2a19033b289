// Package analyzer checks a parsed microcode description against the hardware
// catalogue and fills in the program handed to code generation.
//
// Statements are analysed strictly in declaration order: opcodes rely on the
// header and on parameters declared before them.
package analyzer

import (
	"fmt"
	"io"

	"github.com/OrangeBacon/orange-sub000/internal/catalogue"
	"github.com/OrangeBacon/orange-sub000/internal/diagnostics"
	"github.com/OrangeBacon/orange-sub000/internal/frontend/ast"
	"github.com/OrangeBacon/orange-sub000/internal/program"
	"github.com/OrangeBacon/orange-sub000/internal/semantics/symbols"
	"github.com/OrangeBacon/orange-sub000/internal/semantics/table"
	"github.com/OrangeBacon/orange-sub000/internal/source"
)

// MaxWidth bounds enum widths and the phase and opsize parameters, keeping the
// opcode table and per-opcode line count small enough to allocate
const MaxWidth = 16

// Context is the state of one analysis run
type Context struct {
	FilePath    string
	Catalogue   *catalogue.Catalogue
	Symbols     *table.SymbolTable
	Diagnostics *diagnostics.DiagnosticBag
	Program     *program.Program

	Debug bool
	// when set, the dependency graph of every scheduled line is written here
	GraphOutput io.Writer

	// names already reported by RequireParameter
	erroredParameters map[string]bool

	header      *ast.HeaderStmt
	headerLines uint
}

// New creates a context with every catalogue command declared as a control
// bit. A catalogue that fails validation is a bug in its builder and is
// returned as an error rather than a diagnostic.
func New(filePath string, cat *catalogue.Catalogue) (*Context, error) {
	if err := cat.Validate(); err != nil {
		return nil, fmt.Errorf("invalid hardware catalogue: %w", err)
	}

	ctx := &Context{
		FilePath:          filePath,
		Catalogue:         cat,
		Symbols:           table.NewSymbolTable(),
		Diagnostics:       diagnostics.NewDiagnosticBag(),
		Program:           program.New(),
		erroredParameters: make(map[string]bool),
	}

	for i, cmd := range cat.Commands {
		if err := ctx.Symbols.Declare(cmd.Name, &symbols.ControlBit{Command: catalogue.CommandID(i)}); err != nil {
			return nil, fmt.Errorf("%w: %v", catalogue.ErrDuplicateCommand, err)
		}
	}

	return ctx, nil
}

func (ctx *Context) report(diag *diagnostics.Diagnostic) {
	if diag.FilePath == "" {
		diag.FilePath = ctx.FilePath
	}
	ctx.Diagnostics.Add(diag)
}

// declare adds a user identifier, reporting a redefinition if the name is
// taken. The first definition always wins.
func (ctx *Context) declare(name ast.Token, ident symbols.Identifier) bool {
	err := ctx.Symbols.Declare(name.Value, ident)
	if err == nil {
		return true
	}
	if defined, ok := err.(*table.AlreadyDefinedError); ok {
		ctx.AlreadyDefined(name, defined.Existing)
	}
	return false
}

// AlreadyDefined reports a second definition of a name
func (ctx *Context) AlreadyDefined(name ast.Token, existing symbols.Identifier) {
	ctx.report(diagnostics.AlreadyDefined(name.Location, existing.Definition(), name.Value, existing.Kind().String()))
}

// RequireParameter looks up a parameter needed to analyse usage. Each missing
// or mistyped name is reported once per run, later requests for it fail
// silently.
func (ctx *Context) RequireParameter(loc *source.Location, name, usage string) (*symbols.Parameter, bool) {
	if ctx.erroredParameters[name] {
		return nil, false
	}

	ident, ok := ctx.Symbols.Lookup(name)
	if !ok {
		ctx.report(diagnostics.MissingParameter(loc, name, usage))
		ctx.erroredParameters[name] = true
		return nil, false
	}

	param, ok := ident.(*symbols.Parameter)
	if !ok {
		ctx.report(diagnostics.ParameterKind(loc, name, usage, ident.Kind().String()))
		ctx.erroredParameters[name] = true
		return nil, false
	}

	return param, true
}

// requireWidth is RequireParameter for parameters used as a bit count
func (ctx *Context) requireWidth(loc *source.Location, name, usage string) (uint, bool) {
	param, ok := ctx.RequireParameter(loc, name, usage)
	if !ok {
		return 0, false
	}

	if param.Value > MaxWidth {
		ctx.report(diagnostics.NewError(fmt.Sprintf("parameter '%s' is %d, the maximum is %d", name, param.Value, MaxWidth)).
			WithCode(diagnostics.ErrWidthTooLarge).
			WithPrimaryLabel(param.Def, "too large").
			WithSecondaryLabel(loc, "required here"))
		ctx.erroredParameters[name] = true
		return 0, false
	}

	return param.Value, true
}

// RequireUserType resolves the type of an opcode or bitgroup parameter. An
// enum that was itself rejected fails without a new diagnostic.
func (ctx *Context) RequireUserType(typ ast.Token) (*symbols.Enum, bool) {
	ident, ok := ctx.Symbols.Lookup(typ.Value)
	if !ok {
		ctx.report(diagnostics.NewError(fmt.Sprintf("identifier '%s' is not defined, %s type expected", typ.Value, symbols.UserTypeEnum)).
			WithCode(diagnostics.ErrUndefinedIdentifier).
			WithPrimaryLabel(typ.Location, "not found"))
		return nil, false
	}

	enum, ok := ident.(*symbols.Enum)
	if !ok {
		ctx.report(diagnostics.WrongKind(typ.Location, typ.Value, symbols.KindUserType.String(), ident.Kind().String()))
		return nil, false
	}

	return enum, enum.Valid
}
