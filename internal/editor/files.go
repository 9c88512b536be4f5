package editor

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/nk9/okapi/internal/alias"
	"github.com/nk9/okapi/internal/buffer"
	"github.com/nk9/okapi/internal/search"
)

// Collect assigns an alias to each distinct file in the match list, loads
// file contents and mtimes in parallel, and builds the editable lines. For
// matches without text (list mode) the text is filled in from the loaded
// content; requests past the end of a file are dropped.
func Collect(matches []search.Match, workingDir string) (map[alias.Alias]*buffer.File, []buffer.Line, error) {
	files := make(map[alias.Alias]*buffer.File)
	pathAlias := make(map[string]alias.Alias)
	var seq alias.Sequence

	for _, m := range matches {
		if _, ok := pathAlias[m.Path]; ok {
			continue
		}
		a, err := seq.Next()
		if err != nil {
			slog.Error("too many files, stopping alias assignment", "path", m.Path, "max", alias.Max)
			break
		}
		fullPath := m.Path
		if workingDir != "" {
			fullPath = filepath.Join(workingDir, m.Path)
		}
		f := &buffer.File{Path: m.Path, FullPath: fullPath, Alias: a}
		pathAlias[m.Path] = a
		files[a] = f
	}

	g := new(errgroup.Group)
	g.SetLimit(16)
	for _, f := range files {
		g.Go(func() error {
			content, err := os.ReadFile(f.FullPath)
			if err != nil {
				return fmt.Errorf("reading %s: %w", f.FullPath, err)
			}
			info, err := os.Stat(f.FullPath)
			if err != nil {
				return fmt.Errorf("reading metadata for %s: %w", f.FullPath, err)
			}
			f.Content = string(content)
			f.ModTime = info.ModTime()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	var lines []buffer.Line
	for _, m := range matches {
		a, ok := pathAlias[m.Path]
		if !ok {
			continue
		}
		text := m.Text
		if text == "" {
			line, ok := nthLine(files[a].Content, m.Line)
			if !ok {
				slog.Warn("line out of range, skipping", "path", m.Path, "line", m.Line)
				continue
			}
			text = line
		}
		lines = append(lines, buffer.Line{Alias: a, LineNo: m.Line, Text: text})
	}
	return files, lines, nil
}

// nthLine returns the 1-based nth line of content.
func nthLine(content string, n int) (string, bool) {
	lines := splitLines(content)
	if n < 1 || n > len(lines) {
		return "", false
	}
	return lines[n-1], true
}

// splitLines splits on newlines without manufacturing a trailing empty line
// for newline-terminated content.
func splitLines(content string) []string {
	content = strings.TrimSuffix(content, "\n")
	if content == "" {
		return nil
	}
	return strings.Split(content, "\n")
}
