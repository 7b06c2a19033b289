package source

import "testing"

func TestSpan(t *testing.T) {
	loc := Span("core.uasm", 3, 5, 4)

	if loc.File() != "core.uasm" {
		t.Errorf("Expected file core.uasm, got %q", loc.File())
	}
	if loc.Start.Line != 3 || loc.Start.Column != 5 {
		t.Errorf("Unexpected start %+v", loc.Start)
	}
	if loc.End.Line != 3 || loc.End.Column != 9 {
		t.Errorf("Unexpected end %+v", loc.End)
	}
	if got := loc.String(); got != "location(3:5 - 3:9)" {
		t.Errorf("String() = %q", got)
	}
}

func TestNilLocation(t *testing.T) {
	var loc *Location
	if loc.File() != "" {
		t.Error("Expected empty file for nil location")
	}
	if loc.String() != "location(unknown)" {
		t.Errorf("String() = %q", loc.String())
	}
}
