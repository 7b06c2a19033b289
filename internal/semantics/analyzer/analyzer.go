package analyzer

import (
	"fmt"

	"github.com/OrangeBacon/orange-sub000/colors"
	"github.com/OrangeBacon/orange-sub000/internal/diagnostics"
	"github.com/OrangeBacon/orange-sub000/internal/frontend/ast"
	"github.com/OrangeBacon/orange-sub000/internal/semantics/symbols"
)

// Analyse walks the statements of a file in order. Problems are recorded in
// ctx.Diagnostics and the results in ctx.Program.
func Analyse(ctx *Context, file *ast.File) {
	if ctx.Debug {
		colors.CYAN.Printf("[Analyse] %s: %d statements, %d control bits\n",
			file.FileName, len(file.Statements), len(ctx.Catalogue.Commands))
	}

	for _, stmt := range file.Statements {
		switch s := stmt.(type) {
		case *ast.ParameterStmt:
			analyseParameter(ctx, s)
		case *ast.HeaderStmt:
			analyseHeader(ctx, s)
		case *ast.OpcodeStmt:
			analyseOpcode(ctx, s)
		case *ast.EnumStmt:
			analyseType(ctx, s)
		case *ast.BitGroupStmt:
			analyseBitGroup(ctx, s)
		}
	}

	if ctx.Debug {
		colors.CYAN.Printf("[Analyse] done: %d errors, %d warnings\n",
			ctx.Diagnostics.ErrorCount(), ctx.Diagnostics.WarningCount())
	}
}

func analyseParameter(ctx *Context, s *ast.ParameterStmt) {
	if ctx.Debug {
		colors.BROWN.Printf("  parameter %s = %d\n", s.Name.Value, s.Value.Value)
	}

	ctx.declare(s.Name, &symbols.Parameter{
		Def:   s.Name.Location,
		Value: s.Value.Value,
	})
}

func analyseHeader(ctx *Context, s *ast.HeaderStmt) {
	if ctx.Debug {
		colors.BROWN.Printf("  header with %d lines\n", len(s.Lines))
	}

	if ctx.header != nil {
		ctx.report(diagnostics.NewError("cannot have more than one header statement in a microcode").
			WithCode(diagnostics.ErrDuplicateHeader).
			WithPrimaryLabel(s.ErrorPoint, "second header").
			WithSecondaryLabel(ctx.header.ErrorPoint, "header first included here"))
		return
	}
	ctx.header = s
	ctx.headerLines = uint(len(s.Lines))

	phase, ok := ctx.requireWidth(s.ErrorPoint, "phase", "header")
	if !ok {
		return
	}

	valid := true
	maxLines := uint(1) << phase
	if ctx.headerLines > maxLines {
		ctx.report(diagnostics.NewError(fmt.Sprintf("number of lines in header (%d) is too high, the maximum is %d", ctx.headerLines, maxLines)).
			WithCode(diagnostics.ErrTooManyLines).
			WithPrimaryLabel(s.ErrorPoint, "too many lines"))
		valid = false
	}

	for i, line := range s.Lines {
		bits, ok := checkBitArray(ctx, line, nil)
		if !ok {
			valid = false
			continue
		}

		result := scheduleLine(ctx, lineSite{loc: s.ErrorPoint, name: "header", line: i}, substituteLine(ctx, bits, 0, nil), nil)
		if !result.Valid() {
			valid = false
			continue
		}
		ctx.Program.HeadBits = append(ctx.Program.HeadBits, result.Order...)
	}

	ctx.Program.HeaderValid = valid
}
