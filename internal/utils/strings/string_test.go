package strings

import "testing"

func TestPluralize(t *testing.T) {
	tests := []struct {
		count int
		want  string
	}{
		{0, "members"},
		{1, "member"},
		{2, "members"},
	}

	for _, tt := range tests {
		if got := Pluralize("member", "members", tt.count); got != tt.want {
			t.Errorf("Pluralize(%d) = %q, want %q", tt.count, got, tt.want)
		}
	}
}

func TestCount(t *testing.T) {
	if got := Count(1, "phase", "phases"); got != "1 phase" {
		t.Errorf("Count(1) = %q", got)
	}
	if got := Count(4, "phase", "phases"); got != "4 phases" {
		t.Errorf("Count(4) = %q", got)
	}
}
