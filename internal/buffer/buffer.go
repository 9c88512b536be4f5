// Package buffer renders an editing session's matches into a single
// editable text buffer and parses the buffer back after the user's editor
// exits.
package buffer

import (
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/nk9/okapi/internal/alias"
)

// Shade blocks separate the alias/lineno gutter from the editable text. The
// block alternates per file so runs of lines from one file read as a unit.
const (
	shadeHeavy = "▓"
	shadeLight = "░"
)

// File is one source file participating in a session, with its content and
// mtime as captured when the session started.
type File struct {
	Path     string // display path (working directory stripped)
	FullPath string // path used for I/O
	Alias    alias.Alias
	Content  string
	ModTime  time.Time
}

// Line is one editable line of the buffer.
type Line struct {
	Alias  alias.Alias
	LineNo int
	Text   string
}

// Render writes the buffer: instruction header, one gutter-prefixed line per
// match, and an alias table footer.
func Render(w io.Writer, label string, lines []Line, files map[alias.Alias]*File) error {
	header := []string{
		"# okapi – bulk editing buffer",
		"# " + label,
		"#",
		"# - Save and close to apply changes.",
		"# - Unchanged lines and those starting with '#' are ignored.",
		"# - Delete everything after the shade block (▓) to remove a line.",
		"#",
		"# --- Begin editable lines ---",
		"",
	}
	if _, err := io.WriteString(w, strings.Join(header, "\n")+"\n"); err != nil {
		return err
	}

	width := 1
	for _, l := range lines {
		if w := len(strconv.Itoa(l.LineNo)); w > width {
			width = w
		}
	}

	var current alias.Alias
	shade := shadeLight
	for _, l := range lines {
		if l.Alias != current {
			current = l.Alias
			if shade == shadeHeavy {
				shade = shadeLight
			} else {
				shade = shadeHeavy
			}
		}
		if _, err := fmt.Fprintf(w, "%3s %*d %s %s\n", l.Alias, width, l.LineNo, shade, l.Text); err != nil {
			return err
		}
	}

	if _, err := io.WriteString(w, "\n# --- File Aliases ---\n"); err != nil {
		return err
	}
	for _, f := range sortedFiles(files) {
		if _, err := fmt.Fprintf(w, "# %3s = %s\n", f.Alias, f.FullPath); err != nil {
			return err
		}
	}
	return nil
}

func sortedFiles(files map[alias.Alias]*File) []*File {
	out := make([]*File, 0, len(files))
	for _, f := range files {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Alias.Compare(out[j].Alias) < 0 })
	return out
}

var lineRe = regexp.MustCompile(`^\s*([A-Z]+)\s+(\d+)\s+[▓░]\s?(.*)$`)

// Parse extracts the editable lines from buffer text. Comment and blank
// lines are skipped. A physical line containing more than one shade block is
// a join artifact (the user deleted a newline) and is dropped with a warning
// rather than guessed at.
func Parse(text string) []Line {
	var lines []Line
	for _, raw := range strings.Split(text, "\n") {
		if strings.HasPrefix(raw, "#") || strings.TrimSpace(raw) == "" {
			continue
		}
		if strings.Count(raw, shadeHeavy)+strings.Count(raw, shadeLight) > 1 {
			slog.Warn("detected concatenation, skipping joined lines", "line", raw)
			continue
		}
		m := lineRe.FindStringSubmatch(raw)
		if m == nil {
			continue
		}
		a, err := alias.Parse(m[1])
		if err != nil {
			continue
		}
		lineno, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		lines = append(lines, Line{Alias: a, LineNo: lineno, Text: m[3]})
	}
	return lines
}
