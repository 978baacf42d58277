package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Stats aggregates a player's completions.
type Stats struct {
	Solved        int
	MedianSeconds int
	CurrentStreak int
	RecentTimes   []int // completion seconds, oldest first, capped at 20
}

// Stats computes counts and aggregates for a player. The streak is
// measured in consecutive puzzle dates ending today or yesterday (a streak
// survives until a full day is missed).
func (s *Store) Stats(ctx context.Context, playerID uuid.UUID) (*Stats, error) {
	var out Stats
	// percentile_cont yields a float8 (the median of an even count falls
	// between two rows), so round and cast in SQL before scanning.
	err := s.pool.QueryRow(ctx,
		`SELECT count(*),
		        coalesce(round(percentile_cont(0.5) WITHIN GROUP (ORDER BY completion_time)), 0)::int
		 FROM game_sessions WHERE player_id = $1`,
		playerID,
	).Scan(&out.Solved, &out.MedianSeconds)
	if err != nil {
		return nil, fmt.Errorf("store: stats aggregates: %w", err)
	}

	rows, err := s.pool.Query(ctx,
		`SELECT completion_time FROM (
		   SELECT completion_time, solved_at FROM game_sessions
		   WHERE player_id = $1 ORDER BY solved_at DESC LIMIT 20
		 ) recent ORDER BY solved_at ASC`,
		playerID,
	)
	if err != nil {
		return nil, fmt.Errorf("store: recent times: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var t int
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}
		out.RecentTimes = append(out.RecentTimes, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	dates, err := s.solvedDates(ctx, playerID)
	if err != nil {
		return nil, err
	}
	out.CurrentStreak = streakLength(dates, time.Now().UTC())
	return &out, nil
}

func (s *Store) solvedDates(ctx context.Context, playerID uuid.UUID) ([]time.Time, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT DISTINCT puzzle_date FROM game_sessions
		 WHERE player_id = $1 ORDER BY puzzle_date DESC`,
		playerID,
	)
	if err != nil {
		return nil, fmt.Errorf("store: solved dates: %w", err)
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}
	return dates, rows.Err()
}

// streakLength counts consecutive solved days walking back from today.
// dates must be distinct calendar days sorted descending. Today itself is
// optional: solving yesterday but not (yet) today keeps the streak alive.
func streakLength(dates []time.Time, now time.Time) int {
	if len(dates) == 0 {
		return 0
	}
	day := func(t time.Time) time.Time {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	}

	expected := day(now)
	if !day(dates[0]).Equal(expected) {
		expected = expected.AddDate(0, 0, -1)
		if !day(dates[0]).Equal(expected) {
			return 0
		}
	}

	streak := 0
	for _, d := range dates {
		if !day(d).Equal(expected) {
			break
		}
		streak++
		expected = expected.AddDate(0, 0, -1)
	}
	return streak
}
