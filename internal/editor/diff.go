package editor

import (
	"fmt"
	"strings"

	"github.com/mitchellh/colorstring"
	"github.com/pmezard/go-difflib/difflib"
)

// printConflictDiff shows a conflicting line in two rows: what is on disk
// now with removals in red, and what the edit intended with insertions in
// green.
func printConflictDiff(lineno int, current, updated string) {
	a := splitChars(current)
	b := splitChars(updated)
	opcodes := difflib.NewMatcher(a, b).GetOpCodes()

	var oldRow, newRow strings.Builder
	for _, op := range opcodes {
		switch op.Tag {
		case 'e':
			oldRow.WriteString(strings.Join(a[op.I1:op.I2], ""))
			newRow.WriteString(strings.Join(b[op.J1:op.J2], ""))
		case 'd':
			oldRow.WriteString(colorstring.Color("[red]" + strings.Join(a[op.I1:op.I2], "") + "[reset]"))
		case 'i':
			newRow.WriteString(colorstring.Color("[green]" + strings.Join(b[op.J1:op.J2], "") + "[reset]"))
		case 'r':
			oldRow.WriteString(colorstring.Color("[red]" + strings.Join(a[op.I1:op.I2], "") + "[reset]"))
			newRow.WriteString(colorstring.Color("[green]" + strings.Join(b[op.J1:op.J2], "") + "[reset]"))
		}
	}

	fmt.Printf(" orig: %4d ░ %s\n", lineno, oldRow.String())
	fmt.Printf("okapi: %4d > ░ %s\n", lineno, newRow.String())
}

func splitChars(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}
