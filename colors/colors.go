package colors

// COLOR is an ANSI escape sequence selecting a terminal colour
type COLOR string

const (
	RESET COLOR = "\033[0m"

	RED    COLOR = "\033[31m"
	GREEN  COLOR = "\033[32m"
	YELLOW COLOR = "\033[33m"
	BLUE   COLOR = "\033[34m"
	PURPLE COLOR = "\033[35m"
	CYAN   COLOR = "\033[36m"
	WHITE  COLOR = "\033[37m"
	GREY   COLOR = "\033[90m"

	BOLD_RED    COLOR = "\033[1;31m"
	BOLD_YELLOW COLOR = "\033[1;33m"
	BOLD_PURPLE COLOR = "\033[1;35m"
	BOLD_CYAN   COLOR = "\033[1;36m"

	ORANGE COLOR = "\033[38;5;208m"
	BROWN  COLOR = "\033[38;5;130m"
)

// Enabled controls whether escape sequences are written at all.
// The CLI clears it for -no-color.
var Enabled = true

func (c COLOR) wrap(s string) string {
	if !Enabled {
		return s
	}
	return string(c) + s + string(RESET)
}
