package search

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// FromList reads a file of "path:lineno" entries and returns them as
// matches, so a prepared line list can drive an editing session instead of
// a live search. Text is left empty; the session fills it in from the file
// contents it loads.
func FromList(listPath, workingDir string) ([]Match, error) {
	content, err := os.ReadFile(listPath)
	if err != nil {
		return nil, fmt.Errorf("reading list file: %w", err)
	}

	var matches []Match
	for _, line := range strings.Split(string(content), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		path, lineStr, ok := cutLast(line, ':')
		if !ok {
			return nil, fmt.Errorf("invalid list entry %q: want path:lineno", line)
		}
		lineno, err := strconv.Atoi(lineStr)
		if err != nil {
			return nil, fmt.Errorf("invalid line number in %q: %w", line, err)
		}
		matches = append(matches, Match{Path: path, Line: lineno, Column: 1})
	}
	return matches, nil
}

// cutLast splits on the last occurrence of sep, so Windows-style or
// colon-bearing paths keep their prefix intact.
func cutLast(s string, sep byte) (before, after string, ok bool) {
	i := strings.LastIndexByte(s, sep)
	if i < 0 {
		return s, "", false
	}
	return s[:i], s[i+1:], true
}
