// Package token issues and validates the signed bearer tokens that carry a
// player's identity between requests. Tokens are self-contained HS256 JWTs:
// validation is a pure function of the token, the clock, and the signing key,
// so no server-side session state exists and no revocation list is kept.
// Rotating the key invalidates every outstanding token; that is an accepted
// operational constraint, not a bug.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/leaguebuddies/backend/core"
)

// DefaultTTL is the fixed token lifetime. Expiry is the only way a token dies.
const DefaultTTL = 24 * time.Hour

const minKeyLen = 32

// Service signs and verifies identity tokens with a process-wide symmetric
// key fixed at startup. Safe for concurrent use; nothing is mutated after
// construction.
type Service struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

func NewService(key []byte, ttl time.Duration) (*Service, error) {
	if len(key) == 0 {
		return nil, core.ErrSigningKeyRequired
	}
	if len(key) < minKeyLen {
		return nil, core.ErrSigningKeyTooShort
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{key: key, ttl: ttl, now: time.Now}, nil
}

// Issue builds a signed token for the subject with issuedAt = now and
// expiresAt = now + ttl. Timestamps are absolute UTC instants (JWT
// NumericDate, second resolution).
func (s *Service) Issue(subject string) (string, error) {
	if subject == "" {
		return "", core.ErrIdentifierRequired
	}

	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key)
}

// Validate parses the token, checks the signature and expiry, and returns
// the embedded subject. Tampered or forged tokens yield ErrTokenInvalid;
// expired ones yield ErrTokenExpired.
func (s *Service) Validate(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}

	parsed, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (any, error) {
			return s.key, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", core.ErrTokenExpired
		}
		return "", core.ErrTokenInvalid
	}
	if !parsed.Valid || claims.Subject == "" {
		return "", core.ErrTokenInvalid
	}

	return claims.Subject, nil
}

// ValidFor reports whether the token is valid and was issued for the
// expected subject. Used to reject cross-subject replay.
func (s *Service) ValidFor(tokenString, expectedSubject string) bool {
	subject, err := s.Validate(tokenString)
	if err != nil {
		return false
	}
	return subject == expectedSubject
}
