package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMappingIsBijection(t *testing.T) {
	keywords := []string{"", "KEY", "PUZZLE", "ZEPHYR", "ABCDEFGHIJKLMNOPQRSTUVWXYZ", "mississippi"}
	seeds := []uint32{0, 1, 7, 25, 26, 1<<31 - 1, 4294967295}

	for _, kw := range keywords {
		for _, seed := range seeds {
			m, err := BuildMapping(kw, seed)
			require.NoError(t, err, "keyword %q seed %d", kw, seed)

			seen := make(map[rune]bool)
			for _, plain := range alphabet {
				c, ok := m.Cipher(plain)
				require.True(t, ok)
				assert.False(t, seen[c], "keyword %q seed %d: %c mapped twice", kw, seed, c)
				seen[c] = true

				back, ok := m.Plain(c)
				require.True(t, ok)
				assert.Equal(t, plain, back, "inverse broken for %c", plain)
			}
			assert.Len(t, seen, 26)
		}
	}
}

func TestBuildMappingDeterministic(t *testing.T) {
	a, err := BuildMapping("CIPHER", 42)
	require.NoError(t, err)
	b, err := BuildMapping("CIPHER", 42)
	require.NoError(t, err)

	for _, plain := range alphabet {
		ca, _ := a.Cipher(plain)
		cb, _ := b.Cipher(plain)
		assert.Equal(t, ca, cb)
	}
}

func TestBuildMappingKeywordPrefix(t *testing.T) {
	// The deduplicated keyword forms the head of the ciphertext alphabet:
	// A maps to the keyword's first distinct letter, B to its second, etc.
	m, err := BuildMapping("BALLOON", 3)
	require.NoError(t, err)

	want := []rune("BALON")
	for i, c := range want {
		got, _ := m.Cipher(rune(alphabet[i]))
		assert.Equal(t, c, got, "position %d", i)
	}
}

func TestBuildMappingRejectsBadKeywords(t *testing.T) {
	for _, kw := range []string{"NOT A KEYWORD", "naïve", "K3Y", "ABCDEFGHIJKLMNOPQRSTUVWXYZA"} {
		_, err := BuildMapping(kw, 0)
		assert.ErrorIs(t, err, ErrBadKeyword, "keyword %q", kw)
	}
}

func TestApplyRoundTrip(t *testing.T) {
	m, err := BuildMapping("TEMPEST", 99)
	require.NoError(t, err)

	plain := "THE QUICK BROWN FOX, JUMPS; OVER 2 LAZY DOGS!"
	ct := m.Apply(plain)

	var back []rune
	for _, r := range ct {
		if p, ok := m.Plain(r); ok {
			back = append(back, p)
		} else {
			back = append(back, r)
		}
	}
	assert.Equal(t, plain, string(back))
}

func TestApplyPreservesNonLetters(t *testing.T) {
	m, err := BuildMapping("KEY", 1)
	require.NoError(t, err)

	ct := m.Apply("a-b c2d!")
	assert.Len(t, ct, len("a-b c2d!"))
	assert.Equal(t, byte('-'), ct[1])
	assert.Equal(t, byte(' '), ct[3])
	assert.Equal(t, byte('2'), ct[5])
	assert.Equal(t, byte('!'), ct[7])
}
