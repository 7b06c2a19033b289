package colors

import (
	"bytes"
	"testing"
)

func TestStripANSI(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "hello", "hello"},
		{"single", string(RED) + "bad" + string(RESET), "bad"},
		{"bold", string(BOLD_YELLOW) + "warn" + string(RESET) + ": x", "warn: x"},
		{"extended", string(ORANGE) + "o" + string(RESET), "o"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripANSI(tt.in); got != tt.want {
				t.Errorf("StripANSI(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDisabledColorsWritePlainText(t *testing.T) {
	Enabled = false
	defer func() { Enabled = true }()

	var buf bytes.Buffer
	RED.Fprintf(&buf, "%d errors", 3)
	if buf.String() != "3 errors" {
		t.Errorf("Expected plain text, got %q", buf.String())
	}
}

func TestFprintlnResetsBeforeNewline(t *testing.T) {
	var buf bytes.Buffer
	GREEN.Fprintln(&buf, "ok")
	want := string(GREEN) + "ok" + string(RESET) + "\n"
	if buf.String() != want {
		t.Errorf("Fprintln = %q, want %q", buf.String(), want)
	}
}
