package table

import (
	"fmt"

	"github.com/OrangeBacon/orange-sub000/internal/semantics/symbols"
)

// AlreadyDefinedError is returned by Declare when the name is taken. The first
// definition is kept.
type AlreadyDefinedError struct {
	Name     string
	Existing symbols.Identifier
}

func (e *AlreadyDefinedError) Error() string {
	return fmt.Sprintf("'%s' already defined as a %s", e.Name, e.Existing.Kind())
}

// SymbolTable maps names to identifiers for one analysis run
type SymbolTable struct {
	symbols map[string]symbols.Identifier
}

// NewSymbolTable creates an empty symbol table
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		symbols: make(map[string]symbols.Identifier),
	}
}

// Declare adds an identifier to the table
func (st *SymbolTable) Declare(name string, ident symbols.Identifier) error {
	if existing, exists := st.symbols[name]; exists {
		return &AlreadyDefinedError{Name: name, Existing: existing}
	}
	st.symbols[name] = ident
	return nil
}

// Lookup finds an identifier by name
func (st *SymbolTable) Lookup(name string) (symbols.Identifier, bool) {
	ident, ok := st.symbols[name]
	return ident, ok
}

// Len is the number of declared names
func (st *SymbolTable) Len() int {
	return len(st.symbols)
}
