// Package pgx implements core.CredentialStore on a pgx connection pool.
//
// Expected schema:
//
//	CREATE TABLE public.players (
//	    email             text PRIMARY KEY,
//	    password_hash     text NOT NULL,
//	    display_name      text NOT NULL,
//	    role              text NOT NULL DEFAULT 'USER',
//	    league_name       text NOT NULL DEFAULT '',
//	    favorite_position text NOT NULL DEFAULT '',
//	    favorite_champion text NOT NULL DEFAULT '',
//	    description       text NOT NULL DEFAULT '',
//	    player_type       text NOT NULL DEFAULT '',
//	    win_rate          real NOT NULL DEFAULT 0,
//	    created_at        timestamptz NOT NULL DEFAULT now(),
//	    updated_at        timestamptz NOT NULL DEFAULT now()
//	);
//
// The primary key on email is what resolves concurrent registrations for
// the same address to a single winner.
package pgx

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/leaguebuddies/backend/core"
)

type Store struct {
	pool *pgxpool.Pool
}

var _ core.CredentialStore = (*Store)(nil)

func New(pool *pgxpool.Pool) *Store {
	return &Store{
		pool: pool,
	}
}
