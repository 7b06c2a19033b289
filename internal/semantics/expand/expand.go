// Package expand enumerates the concrete variants of parameterised opcodes and
// bitgroups.
//
// A variant ("possibility") is one choice of member for every enum parameter.
// Possibilities are numbered so that the parameter declared first varies
// slowest and the last one fastest, the same order the opcode id bits are
// laid out in: the first parameter occupies the highest bits.
package expand

// RequiredMembers is the exact number of members an enum of the given width
// must declare. A one bit enum needs both of its values.
func RequiredMembers(width uint) uint {
	if width == 1 {
		return 2
	}
	return 1 << width
}

// Possibilities is the number of combinations of the given member counts
func Possibilities(levels []uint) uint {
	total := uint(1)
	for _, level := range levels {
		total *= level
	}
	return total
}

// FullFactorial lists every combination of member indices. Row p holds the
// member index of each parameter for possibility p.
//
// It is built column by column: the last parameter changes every row, each
// earlier parameter holds each value for as many rows as there are
// combinations of the parameters after it.
func FullFactorial(levels []uint) [][]uint {
	possibilities := Possibilities(levels)
	rows := make([][]uint, possibilities)
	for p := range rows {
		rows[p] = make([]uint, len(levels))
	}
	if possibilities == 0 {
		return rows
	}

	ncycles := possibilities
	for i := len(levels) - 1; i >= 0; i-- {
		level := levels[i]
		nreps := possibilities / ncycles
		ncycles /= level

		count := 0
		for cycle := uint(0); cycle < ncycles; cycle++ {
			for num := uint(0); num < level; num++ {
				for rep := uint(0); rep < nreps; rep++ {
					rows[count][i] = num
					count++
				}
			}
		}
	}
	return rows
}

// Digit returns the member index of parameter index for a possibility, by
// peeling mixed radix digits off from the last parameter backwards.
func Digit(possibility uint, levels []uint, index int) uint {
	for j := len(levels) - 1; j >= 0; j-- {
		current := possibility % levels[j]
		possibility /= levels[j]
		if j == index {
			return current
		}
	}
	return 0
}

// Piece is part of a name template, either literal text or a reference to a
// parameter by position
type Piece struct {
	Literal string
	Param   int // index of the substituted parameter, ignored for literals
	Subst   bool
}

// Substitute builds the name for one possibility. choice holds the member
// index of every parameter and members the member names of every parameter.
func Substitute(pieces []Piece, choice []uint, members [][]string) string {
	size := 0
	for _, piece := range pieces {
		if piece.Subst {
			size += len(members[piece.Param][choice[piece.Param]])
		} else {
			size += len(piece.Literal)
		}
	}

	name := make([]byte, 0, size)
	for _, piece := range pieces {
		if piece.Subst {
			name = append(name, members[piece.Param][choice[piece.Param]]...)
		} else {
			name = append(name, piece.Literal...)
		}
	}
	return string(name)
}
