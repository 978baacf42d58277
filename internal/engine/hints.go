package engine

// Hint reveals that one ciphertext letter decodes to a plaintext letter.
type Hint struct {
	Cipher rune
	Plain  rune
}

// SelectHints picks up to n reveals for a ciphertext, biased toward rare
// plaintext letters: rare-letter hints remove the least information a
// solver could have recovered by frequency analysis alone.
//
// Every returned hint satisfies m.Cipher(h.Plain) == h.Cipher, its cipher
// letter occurs in the ciphertext, and cipher letters are distinct. An
// empty mapping, empty ciphertext, or n <= 0 yields no hints.
func SelectHints(m *Mapping, ciphertext string, n int) []Hint {
	if m == nil || n <= 0 || ciphertext == "" {
		return nil
	}

	present := make(map[rune]bool, 26)
	for _, r := range ciphertext {
		if p, ok := m.Plain(r); ok {
			present[p] = true
		}
	}
	if len(present) == 0 {
		return nil
	}

	// Walk the frequency table from the rare end.
	hints := make([]Hint, 0, n)
	for i := len(lettersByFrequency) - 1; i >= 0 && len(hints) < n; i-- {
		plain := rune(lettersByFrequency[i])
		if !present[plain] {
			continue
		}
		cipher, _ := m.Cipher(plain)
		hints = append(hints, Hint{Cipher: cipher, Plain: plain})
	}
	return hints
}
