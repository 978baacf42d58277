package engine

import (
	"strings"
	"unicode"
)

// lettersByFrequency orders A–Z from most to least common in English prose.
const lettersByFrequency = "ETAOINSHRDLCUMWFGYPBVKJXQZ"

// rareLetters are the eight least common letters; quotes containing them
// give solvers fewer frequency-analysis footholds.
const rareLetters = "PBVKJXQZ"

// Score rates how hard a quote is to solve under a given mapping, from 0
// (trivial) to 100 (expert). Four components, each normalized to [0,1]:
//
//   - distinct letters in the plaintext (more letters, more unknowns)
//   - average word length (long words defeat pattern spotting)
//   - presence of rare letters (fewer frequency footholds)
//   - dispersion of the mapping relative to the identity alphabet
func Score(text string, m *Mapping) int {
	upper := strings.ToUpper(text)

	distinct := make(map[rune]bool)
	for _, r := range upper {
		if r >= 'A' && r <= 'Z' {
			distinct[r] = true
		}
	}
	uniq := float64(len(distinct)) / 26

	words := strings.FieldsFunc(upper, func(r rune) bool { return unicode.IsSpace(r) })
	var letterCount int
	for _, w := range words {
		for _, r := range w {
			if r >= 'A' && r <= 'Z' {
				letterCount++
			}
		}
	}
	var wordLen float64
	if len(words) > 0 {
		wordLen = float64(letterCount) / float64(len(words)) / 10
		if wordLen > 1 {
			wordLen = 1
		}
	}

	var rare float64
	for _, r := range rareLetters {
		if distinct[r] {
			rare++
		}
	}
	rare /= float64(len(rareLetters))

	score := 35*uniq + 25*wordLen + 20*rare + 20*dispersion(m)
	n := int(score + 0.5)
	if n < 0 {
		n = 0
	}
	if n > 100 {
		n = 100
	}
	return n
}

// dispersion measures how far the mapping strays from the identity, as the
// mean circular distance between each letter and its image, normalized so
// the maximum possible mean is 1.
func dispersion(m *Mapping) float64 {
	if m == nil {
		return 0
	}
	var total float64
	for _, plain := range alphabet {
		cipher := m.plainToCipher[plain]
		d := int(cipher) - int(plain)
		if d < 0 {
			d = -d
		}
		if d > 13 {
			d = 26 - d
		}
		total += float64(d)
	}
	return total / (26 * 13)
}

// Label maps a score onto the fixed difficulty bands.
func Label(score int) string {
	switch {
	case score <= 25:
		return "Easy"
	case score <= 50:
		return "Medium"
	case score <= 75:
		return "Hard"
	default:
		return "Expert"
	}
}
