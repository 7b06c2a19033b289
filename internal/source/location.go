package source

import "fmt"

// Position is a point in a microcode description file.
type Position struct {
	Line   int // 1-based line number
	Column int // 1-based column number
	Index  int // byte offset into the file
}

// Location represents a span of source code with start and end positions
type Location struct {
	Start    *Position
	End      *Position
	Filename *string
}

// NewLocation creates a new Location with the given start and end positions
func NewLocation(filename *string, start, end *Position) *Location {
	return &Location{
		Filename: filename,
		Start:    start,
		End:      end,
	}
}

// Span builds a single line location covering length columns.
func Span(filename string, line, column, length int) *Location {
	return NewLocation(&filename,
		&Position{Line: line, Column: column},
		&Position{Line: line, Column: column + length})
}

// File returns the file name, or "" when the location has none.
func (l *Location) File() string {
	if l == nil || l.Filename == nil {
		return ""
	}
	return *l.Filename
}

func (l *Location) String() string {
	if l == nil || l.Start == nil || l.End == nil {
		return "location(unknown)"
	}

	return fmt.Sprintf("location(%d:%d - %d:%d)", l.Start.Line, l.Start.Column, l.End.Line, l.End.Column)
}
