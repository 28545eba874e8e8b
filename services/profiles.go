package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/leaguebuddies/backend/core"
)

// ProfileService is the thin profile CRUD surface on top of the credential
// store. It validates input and delegates; authorization happens in the
// HTTP layer.
type ProfileService struct {
	store core.CredentialStore
}

func NewProfileService(store core.CredentialStore) *ProfileService {
	return &ProfileService{store: store}
}

func (s *ProfileService) Get(ctx context.Context, email string) (*core.Account, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, core.ErrIdentifierRequired
	}
	return s.store.FindByEmail(ctx, email)
}

// Update applies the provided profile fields to the account. Zero values are
// skipped, so a partial body only touches what it names. Credentials and
// role are never updated here.
func (s *ProfileService) Update(ctx context.Context, email string, changes core.ProfileUpdate) (*core.Account, error) {
	account, err := s.Get(ctx, email)
	if err != nil {
		return nil, err
	}

	if changes.DisplayName != "" {
		account.DisplayName = changes.DisplayName
	}
	if changes.LeagueName != "" {
		account.LeagueName = changes.LeagueName
	}
	if changes.FavoritePosition != "" {
		account.FavoritePosition = changes.FavoritePosition
	}
	if changes.FavoriteChampion != "" {
		account.FavoriteChampion = changes.FavoriteChampion
	}
	if changes.Description != "" {
		account.Description = changes.Description
	}
	if changes.PlayerType != "" {
		account.PlayerType = changes.PlayerType
	}
	if changes.WinRate > 0 {
		account.WinRate = changes.WinRate
	}

	if err := s.store.Update(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	return account, nil
}

func (s *ProfileService) Delete(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return core.ErrIdentifierRequired
	}
	return s.store.Delete(ctx, email)
}
