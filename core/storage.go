package core

import "context"

// CredentialStore is the persistence port for accounts. The auth core never
// issues raw queries or owns a schema; adapters implement this interface.
//
// FindByEmail returns ErrAccountNotFound when no account matches. Create
// returns ErrAccountExists when the email is already taken; uniqueness is
// the store's responsibility so concurrent registrations across process
// instances still resolve to a single winner.
type CredentialStore interface {
	FindByEmail(ctx context.Context, email string) (*Account, error)
	Create(ctx context.Context, account *Account) error
	Update(ctx context.Context, account *Account) error
	Delete(ctx context.Context, email string) error
}
