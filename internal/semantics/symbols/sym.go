package symbols

import (
	"github.com/OrangeBacon/orange-sub000/internal/catalogue"
	"github.com/OrangeBacon/orange-sub000/internal/source"
)

// Kind categorises identifiers
type Kind int

const (
	KindParameter Kind = iota
	KindControlBit
	KindUserType
	KindBitGroup
)

func (k Kind) String() string {
	switch k {
	case KindParameter:
		return "parameter"
	case KindControlBit:
		return "vm control bit"
	case KindUserType:
		return "user type"
	case KindBitGroup:
		return "bitgroup"
	default:
		return "unknown"
	}
}

// UserTypeKind categorises user defined types
type UserTypeKind int

const (
	UserTypeAny UserTypeKind = iota
	UserTypeEnum
)

func (k UserTypeKind) String() string {
	switch k {
	case UserTypeAny:
		return "any"
	case UserTypeEnum:
		return "enum"
	default:
		return "unknown"
	}
}

// Identifier is anything a name in a microcode description can refer to.
// The set of implementations is closed: Parameter, ControlBit, Enum and
// BitGroup.
type Identifier interface {
	Kind() Kind
	// Definition is where the identifier was declared, nil for control bits
	// which come from the hardware catalogue
	Definition() *source.Location
	identifier()
}

// Parameter is a named number, e.g. `phase: 4`
type Parameter struct {
	Def   *source.Location
	Value uint
}

func (p *Parameter) Kind() Kind                   { return KindParameter }
func (p *Parameter) Definition() *source.Location { return p.Def }
func (p *Parameter) identifier()                  {}

// ControlBit refers to one command of the hardware catalogue
type ControlBit struct {
	Command catalogue.CommandID
}

func (c *ControlBit) Kind() Kind                   { return KindControlBit }
func (c *ControlBit) Definition() *source.Location { return nil }
func (c *ControlBit) identifier()                  {}

// BitGroupParam is an enum typed parameter of a bitgroup
type BitGroupParam struct {
	Name string
	Type *Enum
}

// BitGroup is a template expanded to one control bit name per combination of
// its parameters. Substituted is indexed by that combination, with the first
// parameter varying slowest.
type BitGroup struct {
	Def         *source.Location
	Params      []BitGroupParam
	Substituted []string

	// false when the declaration had errors, uses are then not reported again
	Valid bool
}

func (b *BitGroup) Kind() Kind                   { return KindBitGroup }
func (b *BitGroup) Definition() *source.Location { return b.Def }
func (b *BitGroup) identifier()                  {}

// LineLength is the length of the longest substituted name
func (b *BitGroup) LineLength() int {
	longest := 0
	for _, name := range b.Substituted {
		longest = max(longest, len(name))
	}
	return longest
}
