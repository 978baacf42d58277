// Package store persists players and their completed game sessions in
// Postgres. It is the only mutable shared state in the server; everything
// else is deterministic. The unique constraint on (player_id, game_id) is
// the single source of truth for idempotent session recording.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// ErrPlayerNotFound is returned when a claim code matches no player.
var ErrPlayerNotFound = errors.New("store: player not found")

const uniqueViolation = "23505"

const schemaSQL = `
CREATE TABLE IF NOT EXISTS players (
  id          uuid PRIMARY KEY,
  claim_code  text NOT NULL UNIQUE,
  created_at  timestamptz NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS game_sessions (
  player_id        uuid NOT NULL REFERENCES players(id),
  game_id          text NOT NULL,
  puzzle_date      date NOT NULL,
  completion_time  integer NOT NULL CHECK (completion_time >= 0),
  solved_at        timestamptz NOT NULL DEFAULT now(),
  PRIMARY KEY (player_id, game_id)
);

CREATE INDEX IF NOT EXISTS game_sessions_player_date
  ON game_sessions (player_id, puzzle_date);
`

// Player is a registered, otherwise-anonymous identity.
type Player struct {
	ID        uuid.UUID
	ClaimCode string
	CreatedAt time.Time
}

// Health is the readiness probe's view of the store.
type Health struct {
	Status string // connected | error | unconfigured
	Err    string
}

// db is the subset of pgxpool.Pool the store actually uses, narrowed so
// tests can stand in a mock pool.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

// Store wraps a pgx pool. A nil *Store is valid and means "no database
// configured": reads report unconfigured, writes are unavailable.
type Store struct {
	pool   db
	log    *log.Logger
	tracer trace.Tracer
}

// New connects to databaseURL.
func New(ctx context.Context, databaseURL string, logger *log.Logger) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("store: connecting: %w", err)
	}
	return &Store{
		pool:   pool,
		log:    logger,
		tracer: otel.Tracer("unquote/store"),
	}, nil
}

// Migrate applies the idempotent schema.
func (s *Store) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, schemaSQL)
	return err
}

// Close releases the pool.
func (s *Store) Close() {
	if s != nil {
		s.pool.Close()
	}
}

// CheckHealth probes connectivity. Safe on a nil receiver.
func (s *Store) CheckHealth(ctx context.Context) Health {
	if s == nil {
		return Health{Status: "unconfigured"}
	}
	if err := s.pool.Ping(ctx); err != nil {
		return Health{Status: "error", Err: err.Error()}
	}
	return Health{Status: "connected"}
}

// RegisterPlayer mints a new player with a fresh claim code, retrying the
// code on the (astronomically unlikely) collision.
func (s *Store) RegisterPlayer(ctx context.Context) (*Player, error) {
	ctx, span := s.tracer.Start(ctx, "store.RegisterPlayer")
	defer span.End()

	for attempt := 0; attempt < 5; attempt++ {
		code, err := NewClaimCode()
		if err != nil {
			return nil, err
		}
		p := &Player{ID: uuid.New(), ClaimCode: code}

		err = s.pool.QueryRow(ctx,
			`INSERT INTO players (id, claim_code) VALUES ($1, $2) RETURNING created_at`,
			p.ID, p.ClaimCode,
		).Scan(&p.CreatedAt)
		if err == nil {
			return p, nil
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			s.log.Warn("claim code collision, retrying", "attempt", attempt)
			continue
		}
		return nil, fmt.Errorf("store: registering player: %w", err)
	}
	return nil, errors.New("store: could not mint a unique claim code")
}

// FindPlayer looks a player up by claim code.
func (s *Store) FindPlayer(ctx context.Context, claimCode string) (*Player, error) {
	var p Player
	err := s.pool.QueryRow(ctx,
		`SELECT id, claim_code, created_at FROM players WHERE claim_code = $1`,
		claimCode,
	).Scan(&p.ID, &p.ClaimCode, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrPlayerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("store: finding player: %w", err)
	}
	return &p, nil
}

// RecordSession stores a completion. Idempotent to first write: a repeat
// for the same (player, game) leaves the stored row untouched and reports
// alreadyRecorded instead of failing.
func (s *Store) RecordSession(ctx context.Context, playerID uuid.UUID, gameID string, puzzleDate time.Time, completionSeconds int) (alreadyRecorded bool, err error) {
	ctx, span := s.tracer.Start(ctx, "store.RecordSession",
		trace.WithAttributes(attribute.String("game.id", gameID)))
	defer span.End()

	tag, err := s.pool.Exec(ctx,
		`INSERT INTO game_sessions (player_id, game_id, puzzle_date, completion_time)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (player_id, game_id) DO NOTHING`,
		playerID, gameID, puzzleDate.UTC(), completionSeconds,
	)
	if err != nil {
		return false, fmt.Errorf("store: recording session: %w", err)
	}
	return tag.RowsAffected() == 0, nil
}
