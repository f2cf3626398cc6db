package utils

import "testing"

func TestSplitCommandLine(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantCmd  string
		wantArgs []string
	}{
		{"bare command", "list", "list", []string{}},
		{"command with args", "info mystery 5", "info", []string{"mystery", "5"}},
		{"quoted argument", `remove "hires adventure" 3`, "remove", []string{"hires adventure", "3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, args, err := SplitCommandLine(tt.line)
			if err != nil {
				t.Fatalf("SplitCommandLine failed: %v", err)
			}
			if cmd != tt.wantCmd {
				t.Errorf("cmd mismatch: got %q, want %q", cmd, tt.wantCmd)
			}
			if len(args) != len(tt.wantArgs) {
				t.Fatalf("args mismatch: got %v, want %v", args, tt.wantArgs)
			}
			for i := range args {
				if args[i] != tt.wantArgs[i] {
					t.Errorf("arg %d mismatch: got %q, want %q", i, args[i], tt.wantArgs[i])
				}
			}
		})
	}
}

func TestSplitCommandLineErrors(t *testing.T) {
	if _, _, err := SplitCommandLine(""); err == nil {
		t.Fatal("expected an error for an empty line")
	}
	if _, _, err := SplitCommandLine(`info "unterminated`); err == nil {
		t.Fatal("expected an error for an unterminated quote")
	}
}
