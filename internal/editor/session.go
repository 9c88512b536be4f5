// Package editor owns an okapi editing session: it renders the buffer into
// a temp file, hands it to the user's editor, and writes the edits back to
// the source files.
package editor

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nk9/okapi/internal/alias"
	"github.com/nk9/okapi/internal/buffer"
	"github.com/nk9/okapi/internal/journal"
)

var ErrEmptyEditor = errors.New("empty editor command")

// Session is one edit-apply cycle over a set of files.
type Session struct {
	ID        uuid.UUID
	Label     string
	StartedAt time.Time

	// Editor is the editor command line. Empty falls back to $EDITOR,
	// then vim.
	Editor string

	// Journal, when non-nil, receives a pre-write snapshot of every file
	// the session modifies.
	Journal *journal.Journal
}

// NewSession creates a session with a fresh ID.
func NewSession(label, editorCmd string, j *journal.Journal) *Session {
	return &Session{
		ID:        uuid.New(),
		Label:     label,
		StartedAt: time.Now(),
		Editor:    editorCmd,
		Journal:   j,
	}
}

// Run renders the buffer, launches the editor, and applies whatever the
// user changed. An untouched buffer applies nothing.
func (s *Session) Run(lines []buffer.Line, files map[alias.Alias]*buffer.File) error {
	tmpDir, err := os.MkdirTemp("", "okapi")
	if err != nil {
		return fmt.Errorf("creating temporary directory: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	bufPath := filepath.Join(tmpDir, fmt.Sprintf("edit-%s.okapi.txt", s.ID))
	f, err := os.Create(bufPath)
	if err != nil {
		return err
	}
	if err := buffer.Render(f, s.Label, lines, files); err != nil {
		f.Close()
		return fmt.Errorf("writing edit buffer: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	original, err := os.ReadFile(bufPath)
	if err != nil {
		return err
	}

	if err := s.launchEditor(bufPath); err != nil {
		return err
	}

	edited, err := os.ReadFile(bufPath)
	if err != nil {
		return err
	}
	if bytes.Equal(edited, original) {
		fmt.Println("No changes saved. Exiting.")
		return nil
	}

	return s.Apply(buffer.Parse(string(edited)), files)
}

func (s *Session) launchEditor(path string) error {
	cmdline := s.Editor
	if cmdline == "" {
		cmdline = os.Getenv("EDITOR")
	}
	if cmdline == "" {
		cmdline = "vim"
	}

	parts := strings.Fields(cmdline)
	if len(parts) == 0 {
		return ErrEmptyEditor
	}

	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("launching editor %q: %w", cmdline, err)
	}
	return nil
}

func (s *Session) journalEntry() journal.Session {
	return journal.Session{
		ID:        s.ID.String(),
		Label:     s.Label,
		StartedAt: s.StartedAt,
	}
}
