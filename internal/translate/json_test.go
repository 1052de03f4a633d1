package translate

import "testing"

func TestFixInvalidEscapes(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`a\Nb`, `a\\Nb`},
		{`a\nb`, `a\nb`},
		{`a\"b`, `a\"b`},
		{`aé`, `aé`},
		{`plain`, `plain`},
		{`trailing\`, `trailing\`},
	}

	for _, tt := range tests {
		if got := fixInvalidEscapes(tt.in); got != tt.want {
			t.Errorf("fixInvalidEscapes(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
