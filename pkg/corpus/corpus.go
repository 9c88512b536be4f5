package corpus

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Defaults reproduce the standard fixture corpus layout.
const (
	DefaultDir       = "ocr_csv_corpus"
	DefaultFileCount = 30

	filePattern = "ocr_page_%02d.txt"
)

// Options controls a corpus write.
type Options struct {
	// OutputDir is created if missing. Existing files with colliding names
	// are truncated.
	OutputDir string

	// FileCount is the number of output files (pages) to write.
	FileCount int

	// LinesPerFile overrides the generator's DefaultCount when > 0.
	LinesPerFile int64

	// Progress, when non-nil, is called with each file's name after the
	// file has been fully written and closed.
	Progress func(name string)
}

// Stats reports what a corpus write produced.
type Stats struct {
	Files int
	Lines int64
	Bytes int64
}

// Write produces opts.FileCount files under opts.OutputDir, each holding
// generated lines from gen. Each file is fully written and closed before the
// next is opened, so a failure leaves at most the active file truncated.
func Write(gen Generator, opts Options) (Stats, error) {
	if opts.OutputDir == "" {
		opts.OutputDir = DefaultDir
	}
	if opts.FileCount <= 0 {
		opts.FileCount = DefaultFileCount
	}
	lines := opts.LinesPerFile
	if lines <= 0 {
		lines = gen.DefaultCount()
	}

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return Stats{}, err
	}

	var stats Stats
	for i := 1; i <= opts.FileCount; i++ {
		name := fmt.Sprintf(filePattern, i)
		n, err := writeFile(filepath.Join(opts.OutputDir, name), gen, lines)
		stats.Bytes += n
		if err != nil {
			return stats, fmt.Errorf("writing %s: %w", name, err)
		}
		stats.Files++
		stats.Lines += lines
		if opts.Progress != nil {
			opts.Progress(name)
		}
	}
	return stats, nil
}

func writeFile(path string, gen Generator, lines int64) (int64, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, err
	}

	bw := bufio.NewWriter(f)
	cw := &countingWriter{w: bw}
	for i := int64(0); i < lines; i++ {
		if err := gen.WriteLine(cw); err != nil {
			f.Close()
			return cw.n, err
		}
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return cw.n, err
	}
	return cw.n, f.Close()
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
