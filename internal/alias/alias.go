// Package alias assigns short letter identifiers (A, B, ... Z, AA ... ZZZ)
// to the files in an editing session.
package alias

import (
	"errors"
	"fmt"
	"strings"
)

// Max is how many aliases exist: 26 + 26² + 26³.
const Max = 26 + 26*26 + 26*26*26

var ErrExhausted = errors.New("exhausted 3-letter aliases")

// Alias is a 1-3 letter uppercase file identifier.
type Alias string

// Parse validates an alias string.
func Parse(s string) (Alias, error) {
	if len(s) < 1 || len(s) > 3 {
		return "", fmt.Errorf("invalid alias %q: must be 1-3 letters", s)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return "", fmt.Errorf("invalid alias %q: must be uppercase A-Z", s)
		}
	}
	return Alias(s), nil
}

func (a Alias) String() string { return string(a) }

// Compare orders aliases length-first, then lexicographically, so the
// sequence order A < Z < AA < ZZ < AAA holds.
func (a Alias) Compare(b Alias) int {
	if d := len(a) - len(b); d != 0 {
		return d
	}
	return strings.Compare(string(a), string(b))
}

// Sequence yields aliases in assignment order. The zero value is ready to use.
type Sequence struct {
	n int
}

// Next returns the next alias in the sequence, or ErrExhausted after Max
// aliases have been handed out.
func (s *Sequence) Next() (Alias, error) {
	if s.n >= Max {
		return "", ErrExhausted
	}
	a := fromIndex(s.n)
	s.n++
	return a, nil
}

func fromIndex(n int) Alias {
	switch {
	case n < 26:
		return Alias(rune('A' + n))
	case n < 26+26*26:
		n -= 26
		return Alias([]byte{byte('A' + n/26), byte('A' + n%26)})
	default:
		n -= 26 + 26*26
		return Alias([]byte{byte('A' + n/(26*26)), byte('A' + n/26%26), byte('A' + n%26)})
	}
}
