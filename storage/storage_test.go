package storage

import "testing"

func TestMatch(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		input   string
		want    bool
	}{
		{"two digit slot", "game.s##", "game.s05", true},
		{"max slot", "game.s##", "game.s14", true},
		{"letters are not digits", "game.s##", "game.sAB", false},
		{"one digit short", "game.s##", "game.s5", false},
		{"extra characters", "game.s##", "game.s051", false},
		{"different target", "game.s##", "other.s05", false},
		{"question mark wildcard", "game.s?#", "game.sX5", true},
		{"literal match", "game.s05", "game.s05", true},
		{"empty pattern", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Match(tt.pattern, tt.input); got != tt.want {
				t.Errorf("Match(%q, %q) = %v, want %v", tt.pattern, tt.input, got, tt.want)
			}
		})
	}
}
