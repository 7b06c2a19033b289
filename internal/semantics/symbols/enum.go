package symbols

import (
	"github.com/OrangeBacon/orange-sub000/internal/frontend/ast"
	"github.com/OrangeBacon/orange-sub000/internal/source"
)

// Enum is a user type with a fixed set of named members, stored in a field
// BitWidth bits wide
type Enum struct {
	Def      *source.Location
	Name     string
	BitWidth uint
	Members  []ast.Token

	index map[string]int

	// false when the member list did not match the width or had duplicates
	Valid bool
}

func (e *Enum) Kind() Kind                   { return KindUserType }
func (e *Enum) Definition() *source.Location { return e.Def }
func (e *Enum) identifier()                  {}

// UserType is the kind of user type this is
func (e *Enum) UserType() UserTypeKind { return UserTypeEnum }

// NewEnum creates an enum with no members
func NewEnum(name string, def *source.Location, width uint) *Enum {
	return &Enum{
		Def:      def,
		Name:     name,
		BitWidth: width,
		Members:  make([]ast.Token, 0),
		index:    make(map[string]int),
		Valid:    true,
	}
}

// AddMember appends a member. If the name is already a member the original
// token is returned and nothing is added.
func (e *Enum) AddMember(tok ast.Token) (ast.Token, bool) {
	if i, ok := e.index[tok.Value]; ok {
		return e.Members[i], false
	}
	e.index[tok.Value] = len(e.Members)
	e.Members = append(e.Members, tok)
	return tok, true
}

// MemberCount is the number of distinct members
func (e *Enum) MemberCount() uint {
	return uint(len(e.Members))
}

// MemberIndex returns the position of a member by name
func (e *Enum) MemberIndex(name string) (int, bool) {
	i, ok := e.index[name]
	return i, ok
}

// MemberName returns the name of the member at index i
func (e *Enum) MemberName(i uint) string {
	return e.Members[i].Value
}
