package numeric

import (
	"fmt"
	"math/bits"
	"regexp"
	"strconv"
	"strings"
)

// Regex pattern components for number formats
const (
	HexDigits = `[0-9a-fA-F]`
	HexNumber = `0[xX]` + HexDigits + `(?:` + HexDigits + `|_` + HexDigits + `)*`

	OctDigits = `[0-7]`
	OctNumber = `0[oO]` + OctDigits + `(?:` + OctDigits + `|_` + OctDigits + `)*`

	BinDigits = `[01]`
	BinNumber = `0[bB]` + BinDigits + `(?:` + BinDigits + `|_` + BinDigits + `)*`

	DecDigits = `[0-9]`
	DecNumber = DecDigits + `(?:` + DecDigits + `|_` + DecDigits + `)*`

	// Complete number pattern for tokenizing, microcode numbers are unsigned
	NumberPattern = HexNumber + `|` + OctNumber + `|` + BinNumber + `|` + DecNumber
)

var (
	// Regular expressions for different number formats (validation with anchors)
	// Allow underscores between digits for readability
	decimalRegex = regexp.MustCompile(`^` + DecNumber + `$`)
	hexRegex     = regexp.MustCompile(`^` + HexNumber + `$`)
	octalRegex   = regexp.MustCompile(`^` + OctNumber + `$`)
	binaryRegex  = regexp.MustCompile(`^` + BinNumber + `$`)
)

// IsDecimal checks if the string represents a decimal
func IsDecimal(s string) bool {
	return decimalRegex.MatchString(s)
}

// IsHexadecimal checks if the string represents a hexadecimal integer
func IsHexadecimal(s string) bool {
	return hexRegex.MatchString(s)
}

// IsOctal checks if the string represents an octal integer
func IsOctal(s string) bool {
	return octalRegex.MatchString(s)
}

// IsBinary checks if the string represents a binary integer
func IsBinary(s string) bool {
	return binaryRegex.MatchString(s)
}

// Literal is a parsed number and the number of bits its spelling occupies.
// For opcode ids the written digits matter: 0b0001 is four bits wide.
type Literal struct {
	Value uint
	Width uint
}

// ParseLiteral parses a microcode number. Prefixed literals are as wide as
// their digits (one bit per binary digit, three per octal, four per hex),
// decimal literals are as wide as their value.
func ParseLiteral(s string) (Literal, error) {
	base := 10
	digitBits := uint(0)
	switch {
	case IsHexadecimal(s):
		base, digitBits = 16, 4
	case IsOctal(s):
		base, digitBits = 8, 3
	case IsBinary(s):
		base, digitBits = 2, 1
	case IsDecimal(s):
	default:
		return Literal{}, fmt.Errorf("invalid integer literal: %s", s)
	}

	// Remove any underscores used for readability
	digits := strings.ReplaceAll(s, "_", "")
	if base != 10 {
		digits = digits[2:]
	}

	value, err := strconv.ParseUint(digits, base, bits.UintSize)
	if err != nil {
		return Literal{}, fmt.Errorf("invalid integer literal: %s: %w", s, err)
	}

	width := digitBits * uint(len(digits))
	if base == 10 {
		width = uint(max(bits.Len(uint(value)), 1))
	}
	return Literal{Value: uint(value), Width: width}, nil
}

// FitsInBits checks if value can be stored in an unsigned field of the given width
func FitsInBits(value, width uint) bool {
	if width >= bits.UintSize {
		return true
	}
	return value < 1<<width
}
