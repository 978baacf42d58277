package engine

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// ErrBadKeyword is returned when a cipher keyword contains non-ASCII
// letters or is longer than the alphabet.
var ErrBadKeyword = errors.New("engine: invalid cipher keyword")

// Mapping is a bijection over the 26 uppercase letters, held in both
// directions for constant-time lookup.
type Mapping struct {
	plainToCipher map[rune]rune
	cipherToPlain map[rune]rune
}

// BuildMapping constructs a keyword-cipher permutation:
//
//  1. Uppercase the keyword and keep the first occurrence of each letter,
//     giving a distinct prefix.
//  2. Rotate the remaining letters of the alphabet by seed and append them
//     in reverse order.
//
// Position i of the resulting ciphertext alphabet is the image of plaintext
// letter i. Fixed points are allowed; some keywords produce them naturally.
// The construction is deterministic in (keyword, seed).
func BuildMapping(keyword string, seed uint32) (*Mapping, error) {
	if len(keyword) > 26 {
		return nil, fmt.Errorf("%w: %q is longer than the alphabet", ErrBadKeyword, keyword)
	}

	seen := make(map[rune]bool, 26)
	prefix := make([]rune, 0, 26)
	for _, r := range strings.ToUpper(keyword) {
		if r < 'A' || r > 'Z' {
			return nil, fmt.Errorf("%w: %q contains %q", ErrBadKeyword, keyword, r)
		}
		if !seen[r] {
			seen[r] = true
			prefix = append(prefix, r)
		}
	}

	var remaining []rune
	for _, r := range alphabet {
		if !seen[r] {
			remaining = append(remaining, r)
		}
	}
	if len(remaining) > 0 {
		rot := int(seed % uint32(len(remaining)))
		rotated := append(append([]rune{}, remaining[rot:]...), remaining[:rot]...)
		for i, j := 0, len(rotated)-1; i < j; i, j = i+1, j-1 {
			rotated[i], rotated[j] = rotated[j], rotated[i]
		}
		remaining = rotated
	}

	cipherAlphabet := append(prefix, remaining...)

	m := &Mapping{
		plainToCipher: make(map[rune]rune, 26),
		cipherToPlain: make(map[rune]rune, 26),
	}
	for i, plain := range alphabet {
		cipher := cipherAlphabet[i]
		m.plainToCipher[plain] = cipher
		m.cipherToPlain[cipher] = plain
	}
	return m, nil
}

// Cipher returns the ciphertext image of an uppercase plaintext letter.
func (m *Mapping) Cipher(plain rune) (rune, bool) {
	c, ok := m.plainToCipher[plain]
	return c, ok
}

// Plain returns the plaintext preimage of an uppercase ciphertext letter.
func (m *Mapping) Plain(cipher rune) (rune, bool) {
	p, ok := m.cipherToPlain[cipher]
	return p, ok
}

// Apply encrypts text: letters are uppercased and substituted, everything
// else passes through verbatim.
func (m *Mapping) Apply(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if unicode.IsLetter(r) {
			u := unicode.ToUpper(r)
			if c, ok := m.plainToCipher[u]; ok {
				b.WriteRune(c)
				continue
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}
