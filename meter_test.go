package prosody

import (
	"strings"
	"testing"
)

// lineOf builds a line from quantity marks, one word per argument.
func lineOf(marks ...string) []Word {
	line := make([]Word, 0, len(marks))
	for _, m := range marks {
		var w Word
		for _, r := range m {
			w = append(w, Syllable{Text: "la", Quantity: Quantity(r)})
		}
		line = append(line, w)
	}
	return line
}

func TestMatchesHexameter(t *testing.T) {
	tests := []struct {
		name string
		line []Word
		want bool
	}{
		{"six spondees", lineOf("------------"), true},
		{"five dactyls", lineOf("-uu-uu-uu", "-uu-uu", "--"), true},
		{"brevis in longo", lineOf("-uu--", "-uu--", "-uu-u"), true},
		{"ambiguous in anceps slot", lineOf("-uu-uu-uu-uu-uu-?"), true},
		{"ambiguous as short of dactyl", lineOf("?uu", "-uu-uu-uu-uu", "--"), true},
		{"ambiguous against concrete slots", lineOf("??", "----------"), false},
		{"19 syllables", lineOf(strings.Repeat("-", 19)), false},
		{"13 syllables", lineOf(strings.Repeat("-", 13)), false},
		{"too short", lineOf("----"), false},
		{"unmatched foot", lineOf("uu", "--"), false},
		{"empty", nil, false},
	}
	for _, tt := range tests {
		if got := Matches(tt.line, Hexameter); got != tt.want {
			t.Errorf("%s: Matches(%q) = %v, want %v", tt.name, lineMarks(tt.line), got, tt.want)
		}
	}
}

func TestMatchUnsupportedMeter(t *testing.T) {
	got := Match(lineOf("------------"), Meter(42))
	if got.Valid {
		t.Errorf("Match with unsupported meter is valid")
	}
	if !strings.Contains(got.Reason, "unsupported") {
		t.Errorf("Match reason = %q, want unsupported meter", got.Reason)
	}
}

func TestMatchFeet(t *testing.T) {
	got := Match(lineOf("-uu-uu-uu", "-uu--", "-u"), Hexameter)
	if !got.Valid {
		t.Fatalf("Match invalid: %s", got.Reason)
	}
	want := []string{"dactyl", "dactyl", "dactyl", "dactyl", "spondee", "final spondee"}
	if len(got.Feet) != len(want) {
		t.Fatalf("Match returned %d feet, want %d", len(got.Feet), len(want))
	}
	for i, f := range got.Feet {
		if f.Group != want[i] {
			t.Errorf("foot %d = %s, want %s", i+1, f.Group, want[i])
		}
		if len(f.Syllables) != len(f.Template) {
			t.Errorf("foot %d covers %d syllables, template %s", i+1, len(f.Syllables), f.Template)
		}
	}
	// "-x" precedes "-u" in the final group
	if got.Feet[5].Template.String() != "-x" {
		t.Errorf("final foot template = %s, want -x", got.Feet[5].Template)
	}
}

func TestMatchReasons(t *testing.T) {
	tests := []struct {
		line   []Word
		reason string
	}{
		{nil, "empty line"},
		{lineOf("----"), "line too short: foot 4 missing"},
		{lineOf("uu", "--"), "foot 5 unmatched"},
		{lineOf(strings.Repeat("-", 13)), "1 syllable left over"},
		{lineOf(strings.Repeat("-", 14)), "2 syllables left over"},
		{lineOf("u?"), "foot 6 unmatched"},
	}
	for _, tt := range tests {
		got := Match(tt.line, Hexameter)
		if got.Valid || got.Reason != tt.reason {
			t.Errorf("Match(%q) = %v %q, want false %q", lineMarks(tt.line), got.Valid, got.Reason, tt.reason)
		}
	}
}
