package utils

import (
	"errors"

	"github.com/kballard/go-shellquote"
)

// SplitCommandLine tokenizes an interactive shell line into a command name
// and its arguments, honoring quotes so save names with spaces survive.
func SplitCommandLine(line string) (cmd string, args []string, err error) {
	words, err := shellquote.Split(line)
	if err != nil {
		return "", nil, err
	}

	if len(words) == 0 {
		return "", nil, errors.New("empty command")
	}

	return words[0], words[1:], nil
}
