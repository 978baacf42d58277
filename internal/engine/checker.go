package engine

import (
	"errors"
	"strings"
	"unicode"
)

// ErrBadSubmission is returned when a submitted solution contains
// characters outside letters, digits, punctuation, and whitespace.
var ErrBadSubmission = errors.New("engine: submission contains invalid characters")

// CheckSolution reports whether submitted matches the puzzle's plaintext.
// The comparison is case-insensitive but position-exact: whitespace runs
// and punctuation must match verbatim.
func CheckSolution(p *Puzzle, submitted string) (bool, error) {
	normalized, err := normalizeSolution(submitted)
	if err != nil {
		return false, err
	}
	return normalized == strings.ToUpper(p.Plaintext), nil
}

func normalizeSolution(s string) (string, error) {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case unicode.IsLetter(r):
			b.WriteRune(unicode.ToUpper(r))
		case unicode.IsDigit(r), unicode.IsPunct(r), unicode.IsSymbol(r), unicode.IsSpace(r):
			b.WriteRune(r)
		default:
			return "", ErrBadSubmission
		}
	}
	return b.String(), nil
}
