// Package search finds regex matches across files and directories, one
// match per line, in the shape okapi's editing buffer consumes.
package search

import (
	"bufio"
	"bytes"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// Match is one matching line in one file. Line and Column are 1-based;
// Path is relative to the working directory when one was given.
type Match struct {
	Path   string
	Line   int
	Column int
	Text   string
}

// Options configures a search.
type Options struct {
	Pattern    string
	Paths      []string // files or directories; empty means "."
	IgnoreCase bool
	Exclude    []string // drop matches whose line also matches any of these
	MaxCount   int      // truncate the match list to this many; <= 0 means no limit
	Columns    ColumnSet
	WorkingDir string // prepended for I/O, stripped from Match.Path
}

// Report holds the surviving matches plus the pre-truncation total so
// callers can tell the user when the list was cut.
type Report struct {
	Matches []Match
	Total   int
}

// Run scans every file reachable from opts.Paths and returns matches sorted
// by path then line number.
func Run(opts Options) (Report, error) {
	pattern := opts.Pattern
	if opts.IgnoreCase {
		pattern = "(?i)" + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return Report{}, fmt.Errorf("invalid pattern: %w", err)
	}

	excludes := make([]*regexp.Regexp, 0, len(opts.Exclude))
	for _, pat := range opts.Exclude {
		if opts.IgnoreCase {
			pat = "(?i)" + pat
		}
		ex, err := regexp.Compile(pat)
		if err != nil {
			return Report{}, fmt.Errorf("invalid exclude pattern %q: %w", pat, err)
		}
		excludes = append(excludes, ex)
	}

	files, err := expandPaths(opts.Paths, opts.WorkingDir)
	if err != nil {
		return Report{}, err
	}

	var matches []Match
	for _, path := range files {
		ms, err := scanFile(path, re, excludes, opts)
		if err != nil {
			return Report{}, err
		}
		matches = append(matches, ms...)
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Path != matches[j].Path {
			return matches[i].Path < matches[j].Path
		}
		return matches[i].Line < matches[j].Line
	})

	report := Report{Matches: matches, Total: len(matches)}
	if opts.MaxCount > 0 && len(matches) > opts.MaxCount {
		report.Matches = matches[:opts.MaxCount]
	}
	return report, nil
}

func expandPaths(paths []string, workingDir string) ([]string, error) {
	if len(paths) == 0 {
		paths = []string{"."}
	}

	var files []string
	for _, p := range paths {
		if workingDir != "" {
			p = filepath.Join(workingDir, p)
		}
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, p)
			continue
		}
		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				// Hidden directories are never searched.
				if name := d.Name(); name != "." && strings.HasPrefix(name, ".") {
					return filepath.SkipDir
				}
				return nil
			}
			if d.Type().IsRegular() {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return files, nil
}

func scanFile(path string, re *regexp.Regexp, excludes []*regexp.Regexp, opts Options) ([]Match, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	display := path
	if opts.WorkingDir != "" {
		if rel, err := filepath.Rel(opts.WorkingDir, path); err == nil {
			display = rel
		}
	}

	br := bufio.NewReaderSize(f, 64*1024)
	if peek, _ := br.Peek(8192); bytes.IndexByte(peek, 0) >= 0 {
		slog.Debug("skipping binary file", "path", path)
		return nil, nil
	}

	var matches []Match
	scanner := bufio.NewScanner(br)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Bytes()
		loc := re.FindIndex(line)
		if loc == nil {
			continue
		}
		col := loc[0] + 1
		if opts.Columns != nil && !opts.Columns[col] {
			slog.Debug("excluding match outside column range", "path", display, "line", lineno, "column", col)
			continue
		}
		text := string(line)
		if excluded(excludes, text) {
			slog.Debug("excluding match by pattern", "path", display, "line", lineno)
			continue
		}
		matches = append(matches, Match{Path: display, Line: lineno, Column: col, Text: text})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning %s: %w", path, err)
	}
	return matches, nil
}

func excluded(excludes []*regexp.Regexp, line string) bool {
	for _, ex := range excludes {
		if ex.MatchString(line) {
			return true
		}
	}
	return false
}
