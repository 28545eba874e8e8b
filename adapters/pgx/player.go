package pgx

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/leaguebuddies/backend/core"
)

func (s *Store) FindByEmail(ctx context.Context, email string) (*core.Account, error) {
	q := `SELECT email, password_hash, display_name, role, league_name, favorite_position,
	             favorite_champion, description, player_type, win_rate, created_at, updated_at
	      FROM public.players WHERE email = $1`

	account := &core.Account{}
	var role, position, playerType string
	err := s.pool.QueryRow(ctx, q, email).Scan(
		&account.Email, &account.PasswordHash, &account.DisplayName, &role,
		&account.LeagueName, &position, &account.FavoriteChampion,
		&account.Description, &playerType, &account.WinRate,
		&account.CreatedAt, &account.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, core.ErrAccountNotFound
		}
		return nil, err
	}

	account.Role = core.Role(role)
	account.FavoritePosition = core.Position(position)
	account.PlayerType = core.PlayerType(playerType)
	return account, nil
}

func (s *Store) Create(ctx context.Context, account *core.Account) error {
	q := `INSERT INTO public.players (email, password_hash, display_name, role, league_name,
	             favorite_position, favorite_champion, description, player_type, win_rate)
	      VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	      RETURNING created_at, updated_at`

	var createdAt, updatedAt time.Time
	err := s.pool.QueryRow(ctx, q,
		account.Email, account.PasswordHash, account.DisplayName, string(account.Role),
		account.LeagueName, string(account.FavoritePosition), account.FavoriteChampion,
		account.Description, string(account.PlayerType), account.WinRate,
	).Scan(&createdAt, &updatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return core.ErrAccountExists
		}
		return err
	}

	account.CreatedAt = createdAt
	account.UpdatedAt = updatedAt
	return nil
}

func (s *Store) Update(ctx context.Context, account *core.Account) error {
	q := `UPDATE public.players
	      SET password_hash = $1, display_name = $2, role = $3, league_name = $4,
	          favorite_position = $5, favorite_champion = $6, description = $7,
	          player_type = $8, win_rate = $9, updated_at = now()
	      WHERE email = $10 RETURNING updated_at`

	var updatedAt time.Time
	err := s.pool.QueryRow(ctx, q,
		account.PasswordHash, account.DisplayName, string(account.Role),
		account.LeagueName, string(account.FavoritePosition), account.FavoriteChampion,
		account.Description, string(account.PlayerType), account.WinRate,
		account.Email,
	).Scan(&updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return core.ErrAccountNotFound
		}
		return err
	}

	account.UpdatedAt = updatedAt
	return nil
}

func (s *Store) Delete(ctx context.Context, email string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM public.players WHERE email = $1`, email)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return core.ErrAccountNotFound
	}
	return nil
}
