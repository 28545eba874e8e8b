package fiber

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/leaguebuddies/backend/core"
)

// identityKey is where the request-scoped identity lives in the context
// locals. It is set at most once per request.
const identityKey = "identity"

const bearerPrefix = "Bearer "

// Authenticate runs once per inbound request, before any authorization or
// business logic. A missing or malformed Authorization header, an invalid
// or expired token, or a subject with no matching account all leave the
// request anonymous and let the pipeline continue; rejecting anonymous
// access is downstream authorization's call, since some routes are public.
//
// The raw token value is never logged.
func (a *Adapter) Authenticate() fiber.Handler {
	return func(c fiber.Ctx) error {
		authorization := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(authorization, bearerPrefix) {
			return c.Next()
		}

		// Idempotent: a second pass on the same request is a no-op.
		if c.Locals(identityKey) != nil {
			return c.Next()
		}

		subject, err := a.tokens.Validate(strings.TrimPrefix(authorization, bearerPrefix))
		if err != nil {
			return c.Next()
		}

		account, err := a.store.FindByEmail(c.Context(), subject)
		if err != nil {
			if errors.Is(err, core.ErrAccountNotFound) {
				return c.Next()
			}
			return err
		}

		c.Locals(identityKey, &core.AuthenticatedIdentity{
			Subject:     account.Email,
			Authorities: core.AuthoritiesFor(account.Role),
		})

		return c.Next()
	}
}

// Identity returns the authenticated identity attached to the request, or
// nil when the request is anonymous.
func Identity(c fiber.Ctx) *core.AuthenticatedIdentity {
	identity, _ := c.Locals(identityKey).(*core.AuthenticatedIdentity)
	return identity
}

// RequireAuth rejects anonymous requests with 401.
func RequireAuth() fiber.Handler {
	return func(c fiber.Ctx) error {
		if Identity(c) == nil {
			return unauthorized(c)
		}
		return c.Next()
	}
}

// RequireSelfOrAdmin allows the request through when the authenticated
// subject matches the :email route parameter, or when the caller holds the
// ADMIN authority.
func RequireSelfOrAdmin() fiber.Handler {
	return func(c fiber.Ctx) error {
		identity := Identity(c)
		if identity == nil {
			return unauthorized(c)
		}
		if identity.Subject != c.Params("email") && !identity.HasAuthority(string(core.RoleAdmin)) {
			return forbidden(c)
		}
		return c.Next()
	}
}
