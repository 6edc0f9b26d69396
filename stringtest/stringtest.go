package stringtest

import "strings"

// Input dedents an indented raw string literal so it can be used as YAML or
// text fixture input.
//
// One leading and one trailing newline are removed, the indentation common
// to all non-blank lines is stripped, and whitespace-only lines become empty.
//
// Example:
//
//	in := stringtest.Input(`
//		- size: 10
//		  cost: 100
//	`) // -> "- size: 10\n  cost: 100"
func Input(s string) string {
	s = strings.TrimPrefix(s, "\n")
	s = strings.TrimSuffix(s, "\n")

	lines := strings.Split(s, "\n")

	indent := -1

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		n := len(line) - len(strings.TrimLeft(line, " \t"))
		if indent < 0 || n < indent {
			indent = n
		}
	}

	for i, line := range lines {
		switch {
		case strings.TrimSpace(line) == "":
			lines[i] = ""
		case indent > 0:
			lines[i] = line[indent:]
		}
	}

	return strings.Join(lines, "\n")
}

// JoinLF joins lines with LF line endings, for expected multi-line output.
func JoinLF(lines ...string) string {
	return strings.Join(lines, "\n")
}
