// Package memory implements core.CredentialStore with a mutex-guarded map.
// Intended for local development and wiring tests; nothing survives a
// restart.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/leaguebuddies/backend/core"
)

type Store struct {
	accounts map[string]*core.Account
	mu       sync.RWMutex
}

var _ core.CredentialStore = (*Store)(nil)

func New() *Store {
	return &Store{
		accounts: make(map[string]*core.Account),
	}
}

func (s *Store) FindByEmail(_ context.Context, email string) (*core.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := s.accounts[email]
	if !ok {
		return nil, core.ErrAccountNotFound
	}

	// Callers get a copy so they cannot mutate the stored record
	clone := *account
	return &clone, nil
}

func (s *Store) Create(_ context.Context, account *core.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[account.Email]; ok {
		return core.ErrAccountExists
	}

	now := time.Now()
	account.CreatedAt = now
	account.UpdatedAt = now

	clone := *account
	s.accounts[account.Email] = &clone
	return nil
}

func (s *Store) Update(_ context.Context, account *core.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.accounts[account.Email]
	if !ok {
		return core.ErrAccountNotFound
	}

	account.CreatedAt = existing.CreatedAt
	account.UpdatedAt = time.Now()

	clone := *account
	s.accounts[account.Email] = &clone
	return nil
}

func (s *Store) Delete(_ context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[email]; !ok {
		return core.ErrAccountNotFound
	}

	delete(s.accounts, email)
	return nil
}
