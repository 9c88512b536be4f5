package search

import (
	"fmt"
	"strconv"
	"strings"
)

// defaultMaxColumn caps open-ended column ranges like "198..".
const defaultMaxColumn = 200

// ColumnSet is the set of 1-based columns a match may start in.
type ColumnSet map[int]bool

// ParseColumns parses a column range expression: ";"-separated "a..b" spans
// where either end may be omitted ("..35" means 1..35, "15.." means
// 15..200).
func ParseColumns(expr string) (ColumnSet, error) {
	set := make(ColumnSet)
	for _, part := range strings.Split(expr, ";") {
		lo, hi, ok := strings.Cut(part, "..")
		if !ok {
			return nil, fmt.Errorf("invalid column range %q: missing '..'", part)
		}
		start := 1
		end := defaultMaxColumn
		var err error
		if lo != "" {
			if start, err = strconv.Atoi(lo); err != nil {
				return nil, fmt.Errorf("invalid column range %q: %w", part, err)
			}
		}
		if hi != "" {
			if end, err = strconv.Atoi(hi); err != nil {
				return nil, fmt.Errorf("invalid column range %q: %w", part, err)
			}
		}
		if start < 1 {
			start = 1
		}
		if end < start {
			return nil, fmt.Errorf("invalid column range %q: end before start", part)
		}
		for c := start; c <= end; c++ {
			set[c] = true
		}
	}
	return set, nil
}
