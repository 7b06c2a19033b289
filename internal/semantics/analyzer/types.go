package analyzer

import (
	"fmt"

	"github.com/OrangeBacon/orange-sub000/colors"
	"github.com/OrangeBacon/orange-sub000/internal/diagnostics"
	"github.com/OrangeBacon/orange-sub000/internal/frontend/ast"
	"github.com/OrangeBacon/orange-sub000/internal/semantics/expand"
	"github.com/OrangeBacon/orange-sub000/internal/semantics/symbols"
	"github.com/OrangeBacon/orange-sub000/internal/utils/strings"
)

func analyseType(ctx *Context, stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.EnumStmt:
		analyseEnum(ctx, s)
	}
}

// analyseEnum declares an enum. Enum members are not identifiers, so they may
// share names with anything else.
func analyseEnum(ctx *Context, s *ast.EnumStmt) {
	if ctx.Debug {
		colors.BROWN.Printf("  enum %s(%d) with %d members\n", s.Name.Value, s.Width.Value, len(s.Members))
	}

	enum := symbols.NewEnum(s.Name.Value, s.Name.Location, s.Width.Value)
	if !ctx.declare(s.Name, enum) {
		return
	}

	if s.Width.Value > MaxWidth {
		ctx.report(diagnostics.NewError(fmt.Sprintf("enum width %d is too large, the maximum is %d", s.Width.Value, MaxWidth)).
			WithCode(diagnostics.ErrWidthTooLarge).
			WithPrimaryLabel(s.Width.Location, "too wide"))
		enum.Valid = false
		return
	}

	required := expand.RequiredMembers(s.Width.Value)
	count := uint(len(s.Members))
	if count < required {
		ctx.report(diagnostics.NewError(fmt.Sprintf("enum statement requires %s, got %d", strings.Count(int(required), "member", "members"), count)).
			WithCode(diagnostics.ErrEnumMemberCount).
			WithPrimaryLabel(s.Name.Location, fmt.Sprintf("%d missing", required-count)))
		enum.Valid = false
	} else if count > required {
		ctx.report(diagnostics.NewError(fmt.Sprintf("enum statement requires %s, got %d", strings.Count(int(required), "member", "members"), count)).
			WithCode(diagnostics.ErrEnumMemberCount).
			WithPrimaryLabel(s.Members[required].Location, "first surplus member").
			WithSecondaryLabel(s.Name.Location, fmt.Sprintf("enum(%d) declared here", s.Width.Value)))
		enum.Valid = false
	}

	for _, member := range s.Members {
		if original, ok := enum.AddMember(member); !ok {
			ctx.report(diagnostics.NewError(fmt.Sprintf("duplicated enum member '%s'", member.Value)).
				WithCode(diagnostics.ErrDuplicateEnumMember).
				WithPrimaryLabel(member.Location, "duplicate").
				WithSecondaryLabel(original.Location, "originally defined here"))
			enum.Valid = false
		}
	}
}

// analyseBitGroup declares a bitgroup and precomputes the control bit every
// combination of its parameters names
func analyseBitGroup(ctx *Context, s *ast.BitGroupStmt) {
	if ctx.Debug {
		colors.BROWN.Printf("  bitgroup %s with %d params\n", s.Name.Value, len(s.Params))
	}

	group := &symbols.BitGroup{Def: s.Name.Location, Valid: true}
	if !ctx.declare(s.Name, group) {
		return
	}

	params := make(map[string]int, len(s.Params))
	declared := make(map[string]ast.Token, len(s.Params))
	for _, p := range s.Params {
		enum, ok := ctx.RequireUserType(p.Type)
		if !ok {
			group.Valid = false
			continue
		}

		if first, dup := declared[p.Name.Value]; dup {
			ctx.report(diagnostics.NewError(fmt.Sprintf("parameter name '%s' collides with another parameter of the same name", p.Name.Value)).
				WithCode(diagnostics.ErrDuplicateParameterName).
				WithPrimaryLabel(p.Name.Location, "duplicate parameter").
				WithSecondaryLabel(first.Location, "first used here"))
			group.Valid = false
			continue
		}

		declared[p.Name.Value] = p.Name
		params[p.Name.Value] = len(group.Params)
		group.Params = append(group.Params, symbols.BitGroupParam{Name: p.Name.Value, Type: enum})
	}
	if !group.Valid {
		return
	}

	pieces := make([]expand.Piece, 0, len(s.Segments))
	for _, seg := range s.Segments {
		if seg.Kind == ast.SegmentLiteral {
			pieces = append(pieces, expand.Piece{Literal: seg.Ident.Value})
			continue
		}

		index, ok := params[seg.Ident.Value]
		if !ok {
			ctx.report(diagnostics.NewError(fmt.Sprintf("variable to substitute '%s' is not defined", seg.Ident.Value)).
				WithCode(diagnostics.ErrUndefinedSubstitution).
				WithPrimaryLabel(seg.Ident.Location, "not a parameter of this bitgroup"))
			group.Valid = false
			continue
		}
		pieces = append(pieces, expand.Piece{Param: index, Subst: true})
	}
	if !group.Valid {
		return
	}

	levels := make([]uint, len(group.Params))
	members := make([][]string, len(group.Params))
	for i, p := range group.Params {
		levels[i] = p.Type.MemberCount()
		members[i] = make([]string, 0, levels[i])
		for _, tok := range p.Type.Members {
			members[i] = append(members[i], tok.Value)
		}
	}

	substituted := make([]string, 0, expand.Possibilities(levels))
	for _, choice := range expand.FullFactorial(levels) {
		name := expand.Substitute(pieces, choice, members)

		ident, ok := ctx.Symbols.Lookup(name)
		if !ok {
			ctx.report(diagnostics.NewError(fmt.Sprintf("found undefined resultant identifier '%s' while substituting into bitgroup '%s'", name, s.Name.Value)).
				WithCode(diagnostics.ErrSubstitutionUndefined).
				WithPrimaryLabel(s.Name.Location, "substitution failed"))
			group.Valid = false
			return
		}
		if ident.Kind() != symbols.KindControlBit {
			ctx.report(diagnostics.NewError(fmt.Sprintf("found resultant identifier '%s' to be a %s, expecting a %s while substituting into bitgroup '%s'",
				name, ident.Kind(), symbols.KindControlBit, s.Name.Value)).
				WithCode(diagnostics.ErrSubstitutionKind).
				WithPrimaryLabel(s.Name.Location, "substitution failed"))
			group.Valid = false
			return
		}

		substituted = append(substituted, name)
	}

	group.Substituted = substituted
}
