package services

import (
	"context"
	"sync"

	"github.com/leaguebuddies/backend/core"
)

// FakeCredentialStore is a test-only fake implementing core.CredentialStore.
// It stores accounts in a map keyed by email and exposes error fields for
// behavior injection.
type FakeCredentialStore struct {
	accounts map[string]*core.Account
	mu       sync.RWMutex

	findErr   error
	createErr error
	updateErr error
	deleteErr error
}

func NewFakeCredentialStore() *FakeCredentialStore {
	return &FakeCredentialStore{
		accounts: make(map[string]*core.Account),
	}
}

func (f *FakeCredentialStore) FindByEmail(_ context.Context, email string) (*core.Account, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.findErr != nil {
		return nil, f.findErr
	}
	account, ok := f.accounts[email]
	if !ok {
		return nil, core.ErrAccountNotFound
	}
	clone := *account
	return &clone, nil
}

func (f *FakeCredentialStore) Create(_ context.Context, account *core.Account) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	if _, ok := f.accounts[account.Email]; ok {
		return core.ErrAccountExists
	}
	clone := *account
	f.accounts[account.Email] = &clone
	return nil
}

func (f *FakeCredentialStore) Update(_ context.Context, account *core.Account) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return f.updateErr
	}
	if _, ok := f.accounts[account.Email]; !ok {
		return core.ErrAccountNotFound
	}
	clone := *account
	f.accounts[account.Email] = &clone
	return nil
}

func (f *FakeCredentialStore) Delete(_ context.Context, email string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.accounts[email]; !ok {
		return core.ErrAccountNotFound
	}
	delete(f.accounts, email)
	return nil
}
