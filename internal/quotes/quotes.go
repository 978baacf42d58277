// Package quotes loads and serves the quote corpus backing the daily
// puzzles. The corpus is a JSON array on disk, parsed once behind a
// one-shot guard and immutable afterwards.
package quotes

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"sync"

	"github.com/bojanrajkovic/unquote/internal/rng"
)

var (
	// ErrNotFound is returned when no quote has the requested id.
	ErrNotFound = errors.New("quotes: not found")
	// ErrEmpty is returned when a selection is made against an empty corpus.
	ErrEmpty = errors.New("quotes: corpus is empty")
	// ErrUnavailable wraps corpus read/parse failures so transports can
	// report the dependency as down rather than the request as broken.
	ErrUnavailable = errors.New("quotes: corpus unavailable")
)

// Quote is one corpus entry. Immutable once loaded.
type Quote struct {
	ID         string `json:"id"`
	Text       string `json:"text"`
	Author     string `json:"author"`
	Category   string `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// Source reads the corpus lazily on first use and caches it. All methods
// are safe for concurrent use; the sync.Once prevents duplicate parses
// under concurrent first access.
type Source struct {
	path string

	once    sync.Once
	quotes  []Quote
	loadErr error
}

// NewSource creates a source over the JSON file at path. Nothing is read
// until Load or the first lookup.
func NewSource(path string) *Source {
	return &Source{path: path}
}

// Load forces the one-shot parse. Servers call this at startup so a bad
// corpus fails fast with a message naming the offending entry.
func (s *Source) Load() error {
	s.once.Do(s.load)
	return s.loadErr
}

func (s *Source) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		s.loadErr = fmt.Errorf("%w: reading %s: %v", ErrUnavailable, s.path, err)
		return
	}
	var qs []Quote
	if err := json.Unmarshal(data, &qs); err != nil {
		s.loadErr = fmt.Errorf("%w: parsing %s: %v", ErrUnavailable, s.path, err)
		return
	}
	for i, q := range qs {
		if err := validate(q); err != nil {
			s.loadErr = fmt.Errorf("quotes: %s entry %d (id %q): %w", s.path, i, q.ID, err)
			return
		}
	}
	s.quotes = qs
}

func validate(q Quote) error {
	switch {
	case q.ID == "":
		return errors.New("missing id")
	case q.Text == "":
		return errors.New("missing text")
	case q.Difficulty < 0 || q.Difficulty > 100:
		return fmt.Errorf("difficulty %d outside [0,100]", q.Difficulty)
	}
	return nil
}

// Len reports the corpus size.
func (s *Source) Len() (int, error) {
	if err := s.Load(); err != nil {
		return 0, err
	}
	return len(s.quotes), nil
}

// Get returns the quote with the given id via linear scan.
func (s *Source) Get(id string) (*Quote, error) {
	if err := s.Load(); err != nil {
		return nil, err
	}
	for i := range s.quotes {
		if s.quotes[i].ID == id {
			q := s.quotes[i]
			return &q, nil
		}
	}
	return nil, fmt.Errorf("%w: id %q", ErrNotFound, id)
}

// Random selects a quote deterministically from the seed: the same seed
// always selects the same quote.
func (s *Source) Random(seed string) (*Quote, error) {
	if err := s.Load(); err != nil {
		return nil, err
	}
	q, err := rng.Pick(rng.New(seed), s.quotes)
	if err != nil {
		return nil, ErrEmpty
	}
	return &q, nil
}

// RandomAny selects a quote nondeterministically.
func (s *Source) RandomAny() (*Quote, error) {
	if err := s.Load(); err != nil {
		return nil, err
	}
	if len(s.quotes) == 0 {
		return nil, ErrEmpty
	}
	q := s.quotes[rand.IntN(len(s.quotes))]
	return &q, nil
}
