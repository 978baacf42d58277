// Package gameid encodes UTC calendar days as short opaque tokens. The
// token is a sqids encoding of (year, month, day), so ids are URL-safe,
// reversible, and carry no sequence information a player could enumerate
// by accident.
package gameid

import (
	"errors"
	"time"

	"github.com/sqids/sqids-go"
)

const (
	idAlphabet  = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	idMinLength = 8

	// MinYear and MaxYear bound the dates a game id may name.
	MinYear = 1970
	MaxYear = 2100
)

// ErrNotFound is returned for any token that does not decode to a real
// calendar day in range.
var ErrNotFound = errors.New("gameid: no such game")

// Codec converts between calendar days and game-id tokens.
type Codec struct {
	s *sqids.Sqids
}

// New builds a codec with the fixed alphabet and minimum length. The
// options are part of the wire contract; changing them invalidates every
// issued id.
func New() (*Codec, error) {
	s, err := sqids.New(sqids.Options{
		Alphabet:  idAlphabet,
		MinLength: idMinLength,
	})
	if err != nil {
		return nil, err
	}
	return &Codec{s: s}, nil
}

// Encode returns the token for t's UTC calendar day.
func (c *Codec) Encode(t time.Time) (string, error) {
	u := t.UTC()
	return c.s.Encode([]uint64{uint64(u.Year()), uint64(u.Month()), uint64(u.Day())})
}

// Decode returns the UTC calendar day named by id. It fails with
// ErrNotFound for malformed tokens, wrong-arity sequences, out-of-range
// fields, and combinations that are not real dates (Feb 30 and friends).
func (c *Codec) Decode(id string) (time.Time, error) {
	nums := c.s.Decode(id)
	if len(nums) != 3 {
		return time.Time{}, ErrNotFound
	}
	year, month, day := int(nums[0]), int(nums[1]), int(nums[2])
	switch {
	case year < MinYear || year > MaxYear:
		return time.Time{}, ErrNotFound
	case month < 1 || month > 12:
		return time.Time{}, ErrNotFound
	case day < 1 || day > 31:
		return time.Time{}, ErrNotFound
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes impossible dates (Feb 30 becomes Mar 1/2), so a
	// round-trip mismatch means the components never named a real day.
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, ErrNotFound
	}
	return t, nil
}
