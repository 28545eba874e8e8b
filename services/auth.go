package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/leaguebuddies/backend/core"
	"github.com/leaguebuddies/backend/crypto"
	"github.com/leaguebuddies/backend/token"
)

// AuthService orchestrates registration and login. Both flows are linear
// fail-fast pipelines: no side effect happens before every prior check
// passes, and failures propagate as the typed errors in core.
type AuthService struct {
	store     core.CredentialStore
	passwords crypto.PasswordHandler
	tokens    *token.Service
}

func NewAuthService(store core.CredentialStore, passwords crypto.PasswordHandler, tokens *token.Service) *AuthService {
	return &AuthService{
		store:     store,
		passwords: passwords,
		tokens:    tokens,
	}
}

// Register creates an account for the identifier and returns its first
// token. The identifier becomes both email and display name. Only the hash
// of the secret is persisted, never the plaintext.
func (s *AuthService) Register(ctx context.Context, identifier, secret string) (string, error) {
	identifier, secret, err := normalizeCredentials(identifier, secret)
	if err != nil {
		return "", err
	}

	// Step 1: Reject if the identifier is already taken
	existing, err := s.store.FindByEmail(ctx, identifier)
	if err != nil && !errors.Is(err, core.ErrAccountNotFound) {
		return "", fmt.Errorf("failed to check existing account: %w", err)
	}
	if existing != nil {
		return "", core.ErrAccountExists
	}

	// Step 2: Hash the secret
	hash, err := s.passwords.Hash(secret)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	// Step 3: Persist the account. The store's uniqueness constraint decides
	// the winner of a concurrent registration race; the loser sees
	// ErrAccountExists here.
	account := &core.Account{
		Email:        identifier,
		DisplayName:  identifier,
		PasswordHash: hash,
		Role:         core.RoleUser,
	}
	if err := s.store.Create(ctx, account); err != nil {
		if errors.Is(err, core.ErrAccountExists) {
			return "", core.ErrAccountExists
		}
		return "", fmt.Errorf("failed to create account: %w", err)
	}

	// Step 4: Issue the token
	signed, err := s.tokens.Issue(account.Email)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	return signed, nil
}

// Login verifies the credentials and returns a fresh token. An unknown
// identifier and a wrong secret stay distinct error kinds, but neither
// message says which field was wrong.
func (s *AuthService) Login(ctx context.Context, identifier, secret string) (string, error) {
	identifier, secret, err := normalizeCredentials(identifier, secret)
	if err != nil {
		return "", err
	}

	// Step 1: Find the account
	account, err := s.store.FindByEmail(ctx, identifier)
	if err != nil {
		if errors.Is(err, core.ErrAccountNotFound) {
			return "", core.ErrAccountNotFound
		}
		return "", fmt.Errorf("failed to find account: %w", err)
	}

	// Step 2: Verify the secret against the stored hash
	valid, err := s.passwords.Verify(secret, account.PasswordHash)
	if err != nil {
		return "", fmt.Errorf("failed to verify password: %w", err)
	}
	if !valid {
		return "", core.ErrInvalidCredentials
	}

	// Step 3: Issue the token
	signed, err := s.tokens.Issue(account.Email)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	return signed, nil
}

// normalizeCredentials applies the one trimming rule used by both flows:
// trim, then reject empties.
func normalizeCredentials(identifier, secret string) (string, string, error) {
	identifier = strings.TrimSpace(identifier)
	secret = strings.TrimSpace(secret)
	if identifier == "" {
		return "", "", core.ErrIdentifierRequired
	}
	if secret == "" {
		return "", "", core.ErrSecretRequired
	}
	return identifier, secret, nil
}
