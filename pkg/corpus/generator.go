// Package corpus generates synthetic OCR-like fixture files for okapi's
// tests and demos.
package corpus

import (
	"io"
	"math/rand/v2"
)

// Generator produces one line of fixture data at a time.
type Generator interface {
	// Init hands the generator its random source. Callers own seeding, so
	// a fixed seed reproduces a corpus exactly.
	Init(r *rand.Rand)

	// WriteLine writes a single newline-terminated record to the writer.
	WriteLine(w io.Writer) error

	// Description returns a human-readable description of the data format.
	Description() string

	// DefaultCount returns the suggested number of lines per output file.
	DefaultCount() int64
}
