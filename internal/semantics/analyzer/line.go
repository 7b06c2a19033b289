package analyzer

import (
	"fmt"

	"github.com/OrangeBacon/orange-sub000/colors"
	"github.com/OrangeBacon/orange-sub000/internal/catalogue"
	"github.com/OrangeBacon/orange-sub000/internal/diagnostics"
	"github.com/OrangeBacon/orange-sub000/internal/frontend/ast"
	"github.com/OrangeBacon/orange-sub000/internal/semantics/expand"
	"github.com/OrangeBacon/orange-sub000/internal/semantics/schedule"
	"github.com/OrangeBacon/orange-sub000/internal/semantics/symbols"
	"github.com/OrangeBacon/orange-sub000/internal/source"
	"github.com/OrangeBacon/orange-sub000/internal/utils/strings"
)

// opcodeParam is an opcode parameter visible to bitgroup calls in its lines
type opcodeParam struct {
	index int
	enum  *symbols.Enum
	name  ast.Token
}

// lineBit is a checked bit: a control bit, or a bitgroup call bound to an
// opcode parameter
type lineBit struct {
	command catalogue.CommandID
	group   *symbols.BitGroup
	param   int
}

// checkBitArray resolves every bit of a line. params holds the parameters of
// the enclosing opcode and is nil for the header.
func checkBitArray(ctx *Context, bits ast.BitArray, params map[string]opcodeParam) ([]lineBit, bool) {
	passed := true
	checked := make([]lineBit, 0, len(bits))

	for _, bit := range bits {
		ident, ok := ctx.Symbols.Lookup(bit.Name.Value)
		if !ok {
			ctx.report(diagnostics.UndefinedIdentifier(bit.Name.Location, bit.Name.Value))
			passed = false
			continue
		}

		switch val := ident.(type) {
		case *symbols.ControlBit:
			if len(bit.Params) != 0 {
				ctx.report(diagnostics.NewError(fmt.Sprintf("'%s' is a vm control bit and takes no arguments", bit.Name.Value)).
					WithCode(diagnostics.ErrBitGroupArgumentCount).
					WithPrimaryLabel(bit.Name.Location, "called here"))
				passed = false
				continue
			}
			checked = append(checked, lineBit{command: val.Command})

		case *symbols.BitGroup:
			call, ok := checkBitGroupCall(ctx, bit, val, params)
			if !ok {
				passed = false
				continue
			}
			checked = append(checked, call)

		default:
			ctx.report(diagnostics.WrongKind(bit.Name.Location, bit.Name.Value, symbols.KindControlBit.String(), ident.Kind().String()))
			passed = false
		}
	}

	return checked, passed
}

func checkBitGroupCall(ctx *Context, bit ast.Bit, group *symbols.BitGroup, params map[string]opcodeParam) (lineBit, bool) {
	passed := true

	if len(bit.Params) != 1 || len(group.Params) != 1 {
		ctx.report(diagnostics.NewError(fmt.Sprintf("bitgroup '%s' must be called with exactly one argument", bit.Name.Value)).
			WithCode(diagnostics.ErrBitGroupArgumentCount).
			WithPrimaryLabel(bit.Name.Location, fmt.Sprintf("called with %d", len(bit.Params))).
			WithNote(fmt.Sprintf("'%s' declares %s", bit.Name.Value, strings.Count(len(group.Params), "parameter", "parameters"))))
		passed = false
	}

	var call lineBit
	for _, arg := range bit.Params {
		param, ok := params[arg.Value]
		if !ok {
			ctx.report(diagnostics.NewError(fmt.Sprintf("could not resolve argument name '%s'", arg.Value)).
				WithCode(diagnostics.ErrUnresolvedArgument).
				WithPrimaryLabel(arg.Location, "not a parameter of this opcode"))
			passed = false
			continue
		}

		if len(group.Params) == 1 && group.Params[0].Type != param.enum {
			ctx.report(diagnostics.NewError(fmt.Sprintf("bitgroup '%s' expects a %s argument, '%s' is a %s",
				bit.Name.Value, group.Params[0].Type.Name, arg.Value, param.enum.Name)).
				WithCode(diagnostics.ErrBitGroupArgumentType).
				WithPrimaryLabel(arg.Location, "wrong type").
				WithSecondaryLabel(param.name.Location, "parameter declared here"))
			passed = false
			continue
		}
		call = lineBit{group: group, param: param.index}
	}

	// an invalid group was reported where it was declared
	if !group.Valid {
		passed = false
	}

	return call, passed
}

// substituteLine picks the control bit each bitgroup call expands to for one
// possibility of the enclosing opcode
func substituteLine(ctx *Context, bits []lineBit, possibility uint, levels []uint) []catalogue.CommandID {
	commands := make([]catalogue.CommandID, 0, len(bits))
	for _, bit := range bits {
		if bit.group == nil {
			commands = append(commands, bit.command)
			continue
		}

		member := expand.Digit(possibility, levels, bit.param)
		ident, _ := ctx.Symbols.Lookup(bit.group.Substituted[member])
		commands = append(commands, ident.(*symbols.ControlBit).Command)
	}
	return commands
}

// lineSite identifies a line in diagnostics
type lineSite struct {
	loc  *source.Location
	name string
	line int
	// parameter bindings of the possibility being scheduled
	bindings []string
}

// scheduleLine orders one concrete line and reports cycles and bus hazards.
// Lines already in cache are returned without reporting again.
func scheduleLine(ctx *Context, site lineSite, commands []catalogue.CommandID, cache map[string]*schedule.Result) *schedule.Result {
	key := fmt.Sprint(commands)
	if result, ok := cache[key]; ok {
		return result
	}

	result := schedule.Line(ctx.Catalogue, commands)
	if cache != nil {
		cache[key] = result
	}

	if ctx.Debug {
		colors.BROWN.Printf("  %s line %d: %s\n", site.name, site.line, describeOrder(ctx, result))
	}
	if ctx.GraphOutput != nil {
		fmt.Fprintf(ctx.GraphOutput, "// %s line %d\n", site.name, site.line)
		fmt.Fprint(ctx.GraphOutput, result.Dot())
	}

	if !result.Ordered {
		diag := diagnostics.NewWarning(fmt.Sprintf("unable to order microcode bits in line %d of %s", site.line, site.name)).
			WithCode(diagnostics.WarnUnorderable).
			WithStage(diagnostics.Schedule).
			WithPrimaryLabel(site.loc, fmt.Sprintf("line %d has a dependency cycle", site.line)).
			WithGraph(result.Dot())
		ctx.report(withBindings(diag, site))
		return result
	}

	for _, hazard := range result.Hazards {
		code := diagnostics.ErrBusReadBeforeWrite
		if hazard.Kind == schedule.WriteTwice {
			code = diagnostics.ErrBusWrittenTwice
		}
		diag := diagnostics.NewError(fmt.Sprintf("%s in line %d of %s", schedule.Describe(ctx.Catalogue, hazard), site.line, site.name)).
			WithCode(code).
			WithStage(diagnostics.Schedule).
			WithPrimaryLabel(site.loc, fmt.Sprintf("in line %d", site.line)).
			WithGraph(result.Dot())
		ctx.report(withBindings(diag, site))
	}

	return result
}

func withBindings(diag *diagnostics.Diagnostic, site lineSite) *diagnostics.Diagnostic {
	for _, binding := range site.bindings {
		diag.WithNote("while substituting " + binding)
	}
	return diag
}

func describeOrder(ctx *Context, result *schedule.Result) string {
	if !result.Ordered {
		return "<cycle>"
	}
	names := ""
	for i, id := range result.Order {
		if i > 0 {
			names += ", "
		}
		names += ctx.Catalogue.Commands[id].Name
	}
	return names
}
