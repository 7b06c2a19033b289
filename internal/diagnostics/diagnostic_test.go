package diagnostics

import (
	"testing"

	"github.com/OrangeBacon/orange-sub000/internal/source"
)

func TestSeverity_String(t *testing.T) {
	tests := []struct {
		severity Severity
		expected string
	}{
		{Error, "error"},
		{Warning, "warning"},
		{Info, "info"},
		{Hint, "hint"},
		{Severity(999), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.severity.String(); got != tt.expected {
			t.Errorf("Severity(%d).String() = %q, want %q", tt.severity, got, tt.expected)
		}
	}
}

func TestStage_String(t *testing.T) {
	tests := []struct {
		stage    Stage
		expected string
	}{
		{Semantic, "semantic"},
		{Schedule, "schedule"},
		{Syntax, "syntax"},
		{Stage(42), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.stage.String(); got != tt.expected {
			t.Errorf("Stage(%d).String() = %q, want %q", tt.stage, got, tt.expected)
		}
	}
}

func TestNewError(t *testing.T) {
	diag := NewError("test error message")

	if diag == nil {
		t.Fatal("NewError returned nil")
	}

	if diag.Severity != Error {
		t.Errorf("Expected severity Error, got %v", diag.Severity)
	}

	if diag.Stage != Semantic {
		t.Errorf("Expected stage Semantic, got %v", diag.Stage)
	}

	if diag.Labels == nil || diag.Notes == nil {
		t.Error("Labels and Notes should be initialized, not nil")
	}
}

func TestNewWarning(t *testing.T) {
	diag := NewWarning("test warning message").WithStage(Schedule)

	if diag.Severity != Warning {
		t.Errorf("Expected severity Warning, got %v", diag.Severity)
	}

	if diag.Stage != Schedule {
		t.Errorf("Expected stage Schedule, got %v", diag.Stage)
	}
}

func TestDiagnostic_WithPrimaryLabel(t *testing.T) {
	loc := source.Span("core.uasm", 1, 5, 5)

	diag := NewError("undefined identifier").
		WithPrimaryLabel(loc, "not found here")

	if len(diag.Labels) != 1 {
		t.Fatalf("Expected 1 label, got %d", len(diag.Labels))
	}

	label := diag.Labels[0]
	if label.Style != Primary {
		t.Errorf("Expected Primary style, got %v", label.Style)
	}

	if label.Message != "not found here" {
		t.Errorf("Expected message 'not found here', got %q", label.Message)
	}

	if diag.FilePath != "core.uasm" {
		t.Errorf("Expected diagnostic filepath to be set to 'core.uasm', got %q", diag.FilePath)
	}
}

func TestDiagnostic_OnlyOnePrimaryLabel(t *testing.T) {
	first := source.Span("a", 1, 1, 1)
	second := source.Span("a", 2, 1, 1)

	diag := NewError("x").
		WithPrimaryLabel(first, "first").
		WithPrimaryLabel(second, "second")

	if len(diag.Labels) != 1 {
		t.Fatalf("Expected 1 label, got %d", len(diag.Labels))
	}
	if diag.Primary().Message != "first" {
		t.Errorf("Expected first primary label to win, got %q", diag.Primary().Message)
	}
}

func TestDiagnostic_PrimaryInsertedBeforeSecondary(t *testing.T) {
	diag := NewError("x")
	diag.WithLabel(source.Span("a", 3, 1, 1), "context", Secondary)
	diag.WithPrimaryLabel(source.Span("a", 1, 1, 1), "main")

	if diag.Labels[0].Style != Primary {
		t.Error("Expected primary label to be moved first")
	}
	if len(diag.Labels) != 2 {
		t.Errorf("Expected 2 labels, got %d", len(diag.Labels))
	}
}

func TestDiagnostic_SecondaryWithoutPrimaryPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic when adding secondary label first")
		}
	}()

	NewError("x").WithSecondaryLabel(source.Span("a", 1, 1, 1), "context")
}

func TestDiagnostic_NotesHelpGraph(t *testing.T) {
	diag := NewWarning("unable to order microcode bits").
		WithCode(WarnUnorderable).
		WithNote("first").
		WithNote("second").
		WithHelp("split the line").
		WithGraph("digraph g {\n}\n")

	if diag.Code != WarnUnorderable {
		t.Errorf("Expected code %s, got %q", WarnUnorderable, diag.Code)
	}
	if len(diag.Notes) != 2 || diag.Notes[1].Message != "second" {
		t.Errorf("Unexpected notes %+v", diag.Notes)
	}
	if diag.Help != "split the line" {
		t.Errorf("Unexpected help %q", diag.Help)
	}
	if diag.Graph == "" {
		t.Error("Expected graph attachment")
	}
}

func TestAlreadyDefinedBuilder(t *testing.T) {
	newLoc := source.Span("a", 4, 1, 3)
	prevLoc := source.Span("a", 1, 1, 3)

	diag := AlreadyDefined(newLoc, prevLoc, "Reg", "user type")
	if diag.Code != ErrAlreadyDefined {
		t.Errorf("Expected code %s, got %s", ErrAlreadyDefined, diag.Code)
	}
	if len(diag.Labels) != 2 || diag.Labels[1].Location != prevLoc {
		t.Errorf("Expected secondary label at first definition, got %+v", diag.Labels)
	}

	builtin := AlreadyDefined(newLoc, nil, "halt", "vm control bit")
	if len(builtin.Labels) != 1 || len(builtin.Notes) != 1 {
		t.Errorf("Expected a note instead of a secondary label, got %+v", builtin)
	}
}
