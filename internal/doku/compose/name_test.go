package compose

import "testing"

func TestReverseName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "two tokens", input: "Max Mustermann", want: "Mustermann, Max"},
		{name: "single word", input: "Madonna", want: "Madonna"},
		{name: "empty", input: "", want: ""},
		{name: "whitespace only", input: "   ", want: ""},
		{name: "placeholder bracket", input: "[Name nicht angegeben]", want: "[Name nicht angegeben]"},
		{name: "placeholder paren", input: "(unbekannt)", want: "(unbekannt)"},
		{name: "multiple given names", input: "  Anna Maria Schmidt ", want: "Schmidt, Anna Maria"},
		{name: "collapses inner whitespace", input: "Jan  Peter  Vogel", want: "Vogel, Jan Peter"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ReverseName(tt.input); got != tt.want {
				t.Fatalf("ReverseName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
