package core

import "errors"

// Authentication errors
var (
	ErrAccountExists      = errors.New("account already exists")    // 409 Conflict
	ErrAccountNotFound    = errors.New("account not found")         // 404 Not Found
	ErrInvalidCredentials = errors.New("invalid email or password") // 401 Unauthorized
)

// Token errors. The request authenticator never surfaces these to clients;
// an invalid or expired token simply leaves the request anonymous.
var (
	ErrTokenInvalid = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// Validation errors (client input)
var (
	ErrIdentifierRequired = errors.New("identifier is required") // 400
	ErrSecretRequired     = errors.New("secret is required")     // 400
)

// Config errors (server-side configuration)
var (
	ErrSigningKeyRequired = errors.New("signing key is required")
	ErrSigningKeyTooShort = errors.New("signing key too short")
	ErrStoreRequired      = errors.New("credential store is required")
)
