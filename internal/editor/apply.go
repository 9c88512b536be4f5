package editor

import (
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/nk9/okapi/internal/alias"
	"github.com/nk9/okapi/internal/buffer"
)

// A nil change deletes the line; otherwise it replaces the line's content.
type fileChanges map[int]*string

// Apply computes the difference between the edited buffer lines and the
// session's captured file contents, then writes the changes back file by
// file.
func (s *Session) Apply(parsed []buffer.Line, files map[alias.Alias]*buffer.File) error {
	changes := make(map[alias.Alias]fileChanges)

	for _, l := range parsed {
		file, ok := files[l.Alias]
		if !ok {
			continue
		}
		orig, ok := nthLine(file.Content, l.LineNo)
		if !ok {
			slog.Warn("line out of range", "path", file.Path, "line", l.LineNo)
			continue
		}
		switch {
		case strings.TrimSpace(l.Text) == "":
			slog.Debug("line deletion detected", "path", file.Path, "line", l.LineNo)
			setChange(changes, l.Alias, l.LineNo, nil)
		case orig != l.Text:
			slog.Debug("change detected", "path", file.Path, "line", l.LineNo)
			text := l.Text
			setChange(changes, l.Alias, l.LineNo, &text)
		}
	}

	if len(changes) == 0 {
		fmt.Println("No actual changes detected.")
		return nil
	}

	// Sorted alias order keeps output stable run to run.
	aliases := make([]alias.Alias, 0, len(changes))
	for a := range changes {
		aliases = append(aliases, a)
	}
	sort.Slice(aliases, func(i, j int) bool { return aliases[i].Compare(aliases[j]) < 0 })

	var linesChanged, filesChanged int
	for _, a := range aliases {
		n, changed, err := s.updateFile(files[a], changes[a])
		if err != nil {
			return err
		}
		linesChanged += n
		if changed {
			filesChanged++
		}
	}

	printSummary(linesChanged, filesChanged, len(parsed), len(files))
	return nil
}

func setChange(changes map[alias.Alias]fileChanges, a alias.Alias, lineno int, text *string) {
	if changes[a] == nil {
		changes[a] = make(fileChanges)
	}
	changes[a][lineno] = text
}

// updateFile applies one file's changes. If the file was modified while the
// buffer was open, changes the other writer already made are verified rather
// than re-applied, and anything that diverged from both the original and the
// intended result is a conflict that skips the whole file.
func (s *Session) updateFile(file *buffer.File, pending fileChanges) (linesChanged int, changed bool, err error) {
	info, err := os.Stat(file.FullPath)
	if err != nil {
		return 0, false, fmt.Errorf("reading current metadata for %s: %w", file.FullPath, err)
	}

	lines := splitLines(file.Content)
	onDisk := file.Content

	if !info.ModTime().Equal(file.ModTime) {
		current, err := os.ReadFile(file.FullPath)
		if err != nil {
			return 0, false, fmt.Errorf("re-reading %s: %w", file.FullPath, err)
		}
		onDisk = string(current)
		currentLines := splitLines(onDisk)
		originalLines := lines

		type conflict struct {
			lineno           int
			current, updated string
		}
		var conflicts []conflict
		var applied []int

		for lineno, newVal := range pending {
			currentLine := lineAt(currentLines, lineno)
			intended := ""
			if newVal != nil {
				intended = *newVal
			}
			switch {
			case currentLine == intended:
				applied = append(applied, lineno)
			case currentLine != lineAt(originalLines, lineno):
				conflicts = append(conflicts, conflict{lineno, currentLine, intended})
			}
		}

		if len(conflicts) > 0 {
			fmt.Fprintf(os.Stderr, "\nConflict in %s: modified externally\n", file.Path)
			sort.Slice(conflicts, func(i, j int) bool { return conflicts[i].lineno < conflicts[j].lineno })
			for _, c := range conflicts {
				printConflictDiff(c.lineno, c.current, c.updated)
			}
			return 0, false, nil
		}

		for _, lineno := range applied {
			delete(pending, lineno)
			linesChanged++
		}
		lines = currentLines
	}

	if len(pending) == 0 {
		if linesChanged > 0 {
			fmt.Printf("Verified %s (already up to date)\n", file.Path)
			return linesChanged, true, nil
		}
		return 0, false, nil
	}

	out := make([]string, 0, len(lines))
	for i, line := range lines {
		change, ok := pending[i+1]
		if !ok {
			out = append(out, line)
			continue
		}
		delete(pending, i+1)
		linesChanged++
		if change != nil {
			out = append(out, *change)
		}
	}
	for lineno := range pending {
		slog.Warn("line out of range", "path", file.Path, "line", lineno)
	}

	output := strings.Join(out, "\n")
	if strings.HasSuffix(file.Content, "\n") {
		output += "\n"
	}

	if s.Journal != nil {
		if err := s.Journal.Snapshot(s.journalEntry(), file.FullPath, []byte(onDisk)); err != nil {
			return linesChanged, false, fmt.Errorf("journaling %s: %w", file.FullPath, err)
		}
	}

	if err := os.WriteFile(file.FullPath, []byte(output), 0644); err != nil {
		return linesChanged, false, fmt.Errorf("writing changes back to %s: %w", file.FullPath, err)
	}
	fmt.Printf("Updated %s\n", file.Path)
	return linesChanged, true, nil
}

func lineAt(lines []string, lineno int) string {
	if lineno < 1 || lineno > len(lines) {
		return ""
	}
	return lines[lineno-1]
}

func printSummary(linesChanged, filesChanged, totalLines, totalFiles int) {
	w := len(strconv.Itoa(totalLines))
	fmt.Printf("\n  Changed: %*d line(s), %*d file(s)\n", w, linesChanged, w, filesChanged)
	fmt.Printf("Unchanged: %*d line(s), %*d file(s)\n", w, totalLines-linesChanged, w, totalFiles-filesChanged)
}
