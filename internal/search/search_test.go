package search

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestRunBasic(t *testing.T) {
	t.Parallel()

	dir := writeFiles(t, map[string]string{
		"a.txt": "alpha\nbeta\ngamma\n",
		"b.txt": "beta max\ndelta\n",
	})

	report, err := Run(Options{Pattern: "beta", Paths: []string{dir}})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.Total != 2 {
		t.Fatalf("Total = %d, want 2", report.Total)
	}

	// Sorted by path then line.
	if got := report.Matches[0]; filepath.Base(got.Path) != "a.txt" || got.Line != 2 || got.Text != "beta" {
		t.Errorf("first match = %+v", got)
	}
	if got := report.Matches[1]; filepath.Base(got.Path) != "b.txt" || got.Line != 1 || got.Text != "beta max" {
		t.Errorf("second match = %+v", got)
	}
}

func TestRunIgnoreCase(t *testing.T) {
	t.Parallel()

	dir := writeFiles(t, map[string]string{"a.txt": "Alpha\nALPHA\nalpha\n"})

	report, err := Run(Options{Pattern: "alpha", Paths: []string{dir}, IgnoreCase: true})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.Total != 3 {
		t.Errorf("Total = %d, want 3", report.Total)
	}
}

func TestRunExclude(t *testing.T) {
	t.Parallel()

	dir := writeFiles(t, map[string]string{
		"a.txt": "match one\nmatch two skipme\nmatch three\n",
	})

	report, err := Run(Options{
		Pattern: "match",
		Paths:   []string{dir},
		Exclude: []string{"skipme"},
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.Total != 2 {
		t.Fatalf("Total = %d, want 2", report.Total)
	}
	for _, m := range report.Matches {
		if m.Line == 2 {
			t.Errorf("excluded line survived: %+v", m)
		}
	}
}

func TestRunMaxCount(t *testing.T) {
	t.Parallel()

	dir := writeFiles(t, map[string]string{
		"a.txt": "x\nx\nx\nx\nx\n",
	})

	report, err := Run(Options{Pattern: "x", Paths: []string{dir}, MaxCount: 3})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.Total != 5 {
		t.Errorf("Total = %d, want 5", report.Total)
	}
	if len(report.Matches) != 3 {
		t.Errorf("len(Matches) = %d, want 3", len(report.Matches))
	}
}

func TestRunColumnFilter(t *testing.T) {
	t.Parallel()

	dir := writeFiles(t, map[string]string{
		"a.txt": "needle at start\n    needle indented\n",
	})

	cols, err := ParseColumns("..2")
	if err != nil {
		t.Fatal(err)
	}
	report, err := Run(Options{Pattern: "needle", Paths: []string{dir}, Columns: cols})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.Total != 1 {
		t.Fatalf("Total = %d, want 1", report.Total)
	}
	if report.Matches[0].Column != 1 {
		t.Errorf("Column = %d, want 1", report.Matches[0].Column)
	}
}

func TestRunWorkingDir(t *testing.T) {
	t.Parallel()

	dir := writeFiles(t, map[string]string{"sub/a.txt": "hit\n"})

	report, err := Run(Options{Pattern: "hit", Paths: []string{"sub"}, WorkingDir: dir})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.Total != 1 {
		t.Fatalf("Total = %d, want 1", report.Total)
	}
	if want := filepath.Join("sub", "a.txt"); report.Matches[0].Path != want {
		t.Errorf("Path = %q, want %q (working dir stripped)", report.Matches[0].Path, want)
	}
}

func TestRunSkipsBinaryAndHidden(t *testing.T) {
	t.Parallel()

	dir := writeFiles(t, map[string]string{
		"a.txt":      "needle\n",
		".git/b.txt": "needle\n",
		"blob.bin":   "nee\x00dle\n",
	})

	report, err := Run(Options{Pattern: "needle", Paths: []string{dir}})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.Total != 1 {
		t.Errorf("Total = %d, want 1 (binary and hidden-dir files skipped)", report.Total)
	}
}

func TestRunInvalidPattern(t *testing.T) {
	t.Parallel()

	if _, err := Run(Options{Pattern: "(", Paths: []string{t.TempDir()}}); err == nil {
		t.Error("invalid pattern should fail")
	}
	if _, err := Run(Options{Pattern: "x", Exclude: []string{"("}, Paths: []string{t.TempDir()}}); err == nil {
		t.Error("invalid exclude pattern should fail")
	}
}

func TestFromList(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	list := filepath.Join(dir, "lines.txt")
	content := "src/a.go:10\nsrc/b.go:3\n\n"
	if err := os.WriteFile(list, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	matches, err := FromList(list, "")
	if err != nil {
		t.Fatalf("FromList: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("len = %d, want 2", len(matches))
	}
	if matches[0].Path != "src/a.go" || matches[0].Line != 10 {
		t.Errorf("first entry = %+v", matches[0])
	}
	if matches[1].Path != "src/b.go" || matches[1].Line != 3 {
		t.Errorf("second entry = %+v", matches[1])
	}
}

func TestFromListInvalid(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	list := filepath.Join(dir, "bad.txt")
	if err := os.WriteFile(list, []byte("no-line-number\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := FromList(list, ""); err == nil {
		t.Error("entry without line number should fail")
	}
}
