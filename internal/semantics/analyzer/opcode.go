package analyzer

import (
	"fmt"

	"github.com/OrangeBacon/orange-sub000/colors"
	"github.com/OrangeBacon/orange-sub000/internal/diagnostics"
	"github.com/OrangeBacon/orange-sub000/internal/frontend/ast"
	"github.com/OrangeBacon/orange-sub000/internal/program"
	"github.com/OrangeBacon/orange-sub000/internal/semantics/expand"
	"github.com/OrangeBacon/orange-sub000/internal/semantics/schedule"
	"github.com/OrangeBacon/orange-sub000/internal/semantics/symbols"
	"github.com/OrangeBacon/orange-sub000/internal/utils/numeric"
	"github.com/OrangeBacon/orange-sub000/internal/utils/strings"
)

type checkedLine struct {
	hasCondition bool
	low, high    []lineBit
}

// analyseOpcode expands an opcode into one table entry per combination of its
// parameters. The declared id is shifted left past every parameter, so the
// variants occupy consecutive ids with the first parameter in the high bits.
func analyseOpcode(ctx *Context, s *ast.OpcodeStmt) {
	if ctx.Debug {
		colors.BROWN.Printf("  opcode %s (0b%0*b, %d params, %d lines)\n",
			s.Name.Value, int(max(s.ID.Width, 1)), s.ID.Value, len(s.Params), len(s.Lines))
	}

	if ctx.header == nil {
		ctx.report(diagnostics.NewError(fmt.Sprintf("opcode '%s' declared before the header", s.Name.Value)).
			WithCode(diagnostics.ErrOpcodeBeforeHeader).
			WithPrimaryLabel(s.Name.Location, "header required first").
			WithHelp("move the header statement above the first opcode"))
		return
	}

	phase, ok := ctx.requireWidth(s.Name.Location, "phase", "opcode")
	if !ok {
		return
	}
	maxLines := uint(0)
	if phaseLines := uint(1) << phase; phaseLines > ctx.headerLines {
		maxLines = phaseLines - ctx.headerLines
	}

	opsize, ok := ctx.requireWidth(s.Name.Location, "opsize", "opcode")
	if !ok {
		return
	}
	if !ctx.Program.Allocated() {
		if ctx.Debug {
			colors.CYAN.Printf("[Analyse] allocating opcode table, size = %d\n", 1<<opsize)
		}
		ctx.Program.NewTable(opsize)
	}

	params := make(map[string]opcodeParam, len(s.Params))
	enums := make([]*symbols.Enum, 0, len(s.Params))
	names := make([]string, 0, len(s.Params))
	levels := make([]uint, 0, len(s.Params))
	headerBits := s.ID.Width
	id := s.ID.Value
	passed := true

	for _, p := range s.Params {
		enum, ok := ctx.RequireUserType(p.Type)
		if !ok {
			passed = false
			continue
		}

		if first, dup := params[p.Name.Value]; dup {
			ctx.report(diagnostics.NewError(fmt.Sprintf("parameter name '%s' is used multiple times", p.Name.Value)).
				WithCode(diagnostics.ErrDuplicateParameterName).
				WithPrimaryLabel(p.Name.Location, "duplicate parameter").
				WithSecondaryLabel(first.name.Location, "first used here"))
			passed = false
			continue
		}

		params[p.Name.Value] = opcodeParam{index: len(levels), enum: enum, name: p.Name}
		enums = append(enums, enum)
		names = append(names, p.Name.Value)
		levels = append(levels, enum.MemberCount())
		headerBits += enum.BitWidth
		id <<= enum.BitWidth
	}
	if !passed {
		return
	}

	if !numeric.FitsInBits(s.ID.Value, s.ID.Width) {
		ctx.report(diagnostics.NewError(fmt.Sprintf("opcode id %d does not fit in %d bits", s.ID.Value, s.ID.Width)).
			WithCode(diagnostics.ErrOpcodeTooManyBits).
			WithPrimaryLabel(s.ID.Location, "id too large"))
		return
	}

	if headerBits > opsize {
		ctx.report(diagnostics.NewError(fmt.Sprintf("opcode header contains too many bits, found %d, expected %d", headerBits, opsize)).
			WithCode(diagnostics.ErrOpcodeTooManyBits).
			WithPrimaryLabel(s.ID.Location, fmt.Sprintf("%d bits with parameters", headerBits)))
		return
	}
	if headerBits < opsize {
		ctx.report(diagnostics.NewError(fmt.Sprintf("opcode header does not contain enough bits, found %d, expected %d", headerBits, opsize)).
			WithCode(diagnostics.ErrOpcodeTooFewBits).
			WithPrimaryLabel(s.ID.Location, fmt.Sprintf("%d bits with parameters", headerBits)))
		return
	}

	if uint(len(s.Lines)) > maxLines {
		ctx.report(diagnostics.NewError(fmt.Sprintf("number of lines in opcode '%s' (%d) is too high, the maximum is %d", s.Name.Value, len(s.Lines), maxLines)).
			WithCode(diagnostics.ErrTooManyLines).
			WithPrimaryLabel(s.Name.Location, "too many lines").
			WithNote(fmt.Sprintf("each instruction has %s, %d %s by the header",
				strings.Count(1<<phase, "phase", "phases"), ctx.headerLines, strings.Pluralize("is used", "are used", int(ctx.headerLines)))))
		return
	}

	lines := make([]checkedLine, len(s.Lines))
	for i, line := range s.Lines {
		low, ok := checkBitArray(ctx, line.Low, params)
		if !ok {
			passed = false
			continue
		}
		lines[i] = checkedLine{hasCondition: line.HasCondition, low: low}

		// without a condition both halves are the same bits
		if line.HasCondition {
			high, ok := checkBitArray(ctx, line.High, params)
			if !ok {
				passed = false
				continue
			}
			lines[i].high = high
		}
	}
	if !passed {
		return
	}

	possibilities := expand.Possibilities(levels)
	for p := uint(0); p < possibilities; p++ {
		slot, ok := ctx.Program.Opcode(id + p)
		if !ok {
			ctx.report(diagnostics.NewError(fmt.Sprintf("opcode id %d does not fit in %d bits", id+p, opsize)).
				WithCode(diagnostics.ErrOpcodeTooManyBits).
				WithPrimaryLabel(s.ID.Location, "id too large"))
			return
		}
		if slot.Declared {
			diag := diagnostics.NewError(fmt.Sprintf("opcode id 0b%0*b is already used by '%s'", int(opsize), id+p, slot.Name)).
				WithCode(diagnostics.ErrOpcodeSlotUsed).
				WithPrimaryLabel(s.ID.Location, "id collides")
			if slot.Location != nil {
				diag.WithSecondaryLabel(slot.Location, "first used here")
			}
			ctx.report(diag)
			return
		}
	}

	cache := make(map[string]*schedule.Result)
	for p, choice := range expand.FullFactorial(levels) {
		possibility := uint(p)
		op, _ := ctx.Program.Opcode(id + possibility)
		*op = program.Opcode{
			Valid:     true,
			Declared:  true,
			ID:        id + possibility,
			Name:      s.Name.Value,
			Arguments: make([]string, len(choice)),
			Lines:     make([]program.Line, 0, len(lines)),
			Location:  s.Name.Location,
		}
		for i, member := range choice {
			op.Arguments[i] = names[i] + "=" + enums[i].MemberName(member)
		}

		site := lineSite{loc: s.Name.Location, name: "opcode '" + op.Signature() + "'", bindings: op.Arguments}
		for j, line := range lines {
			site.line = j

			low := scheduleLine(ctx, site, substituteLine(ctx, line.low, possibility, levels), cache)
			generated := program.Line{
				HasCondition: line.hasCondition,
				Valid:        low.Valid(),
				Low:          low.Order,
				High:         low.Order,
			}
			if line.hasCondition {
				high := scheduleLine(ctx, site, substituteLine(ctx, line.high, possibility, levels), cache)
				generated.Valid = generated.Valid && high.Valid()
				generated.High = high.Order
			}

			if !generated.Valid {
				op.Valid = false
			}
			op.Lines = append(op.Lines, generated)
		}
	}
}
