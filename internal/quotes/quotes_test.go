package quotes

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCorpus(t *testing.T, contents string) *Source {
	t.Helper()
	path := filepath.Join(t.TempDir(), "quotes.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return NewSource(path)
}

const validCorpus = `[
	{"id": "q1", "text": "HELLO", "author": "Anon", "category": "test", "difficulty": 10},
	{"id": "q2", "text": "Talk is cheap. Show me the code.", "author": "Linus Torvalds", "category": "programming", "difficulty": 35},
	{"id": "q3", "text": "Simplicity is the soul of efficiency.", "author": "Austin Freeman", "category": "programming", "difficulty": 55}
]`

func TestLoadValidCorpus(t *testing.T) {
	s := writeCorpus(t, validCorpus)
	require.NoError(t, s.Load())

	n, err := s.Len()
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestLoadNamesOffendingEntry(t *testing.T) {
	cases := []struct {
		name    string
		corpus  string
		wantSub string
	}{
		{"missing id", `[{"id": "", "text": "X", "difficulty": 1}]`, "missing id"},
		{"missing text", `[{"id": "q1", "text": "", "difficulty": 1}]`, `entry 0 (id "q1")`},
		{"difficulty too high", `[{"id": "q1", "text": "X", "difficulty": 101}]`, "outside [0,100]"},
		{"difficulty negative", `[{"id": "q1", "text": "X", "difficulty": -1}]`, "outside [0,100]"},
		{"not json", `{nope`, "parsing"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := writeCorpus(t, tc.corpus)
			err := s.Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantSub)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	s := NewSource(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, s.Load())
}

func TestGet(t *testing.T) {
	s := writeCorpus(t, validCorpus)

	q, err := s.Get("q2")
	require.NoError(t, err)
	assert.Equal(t, "Linus Torvalds", q.Author)

	_, err = s.Get("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRandomDeterministic(t *testing.T) {
	s := writeCorpus(t, validCorpus)

	a, err := s.Random("2026-02-01")
	require.NoError(t, err)
	b, err := s.Random("2026-02-01")
	require.NoError(t, err)
	assert.Equal(t, a.ID, b.ID)
}

func TestRandomEmptyCorpus(t *testing.T) {
	s := writeCorpus(t, `[]`)
	_, err := s.Random("seed")
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = s.RandomAny()
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestConcurrentFirstAccessParsesOnce(t *testing.T) {
	s := writeCorpus(t, validCorpus)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.Random("seed")
		}()
	}
	wg.Wait()

	n, err := s.Len()
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}
