package fiber

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/leaguebuddies/backend/core"
)

// apiError is the error body returned for every failed request
type apiError struct {
	Status    int       `json:"status"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

func (a *Adapter) register(c fiber.Ctx) error {
	var req core.AuthRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	signed, err := a.auth.Register(c.Context(), req.Identifier, req.Secret)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(http.StatusOK).JSON(core.AuthResponse{Token: signed})
}

func (a *Adapter) login(c fiber.Ctx) error {
	var req core.AuthRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	signed, err := a.auth.Login(c.Context(), req.Identifier, req.Secret)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(http.StatusOK).JSON(core.AuthResponse{Token: signed})
}

func (a *Adapter) currentPlayer(c fiber.Ctx) error {
	account, err := a.profiles.Get(c.Context(), Identity(c).Subject)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(http.StatusOK).JSON(account)
}

func (a *Adapter) getPlayer(c fiber.Ctx) error {
	account, err := a.profiles.Get(c.Context(), c.Params("email"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(http.StatusOK).JSON(account)
}

func (a *Adapter) updatePlayer(c fiber.Ctx) error {
	var changes core.ProfileUpdate
	if err := c.Bind().Body(&changes); err != nil {
		return badRequest(c, "invalid request body")
	}

	account, err := a.profiles.Update(c.Context(), c.Params("email"), changes)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(http.StatusOK).JSON(account)
}

func (a *Adapter) deletePlayer(c fiber.Ctx) error {
	if err := a.profiles.Delete(c.Context(), c.Params("email")); err != nil {
		return errorResponse(c, err)
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "account deleted",
	})
}

// errorResponse maps a service error to a fixed status code and the
// original's error body shape.
func errorResponse(c fiber.Ctx, err error) error {
	status := statusFor(err)
	return c.Status(status).JSON(apiError{
		Status:    status,
		Message:   err.Error(),
		Timestamp: time.Now().UTC(),
	})
}

func badRequest(c fiber.Ctx, message string) error {
	return c.Status(http.StatusBadRequest).JSON(apiError{
		Status:    http.StatusBadRequest,
		Message:   message,
		Timestamp: time.Now().UTC(),
	})
}

func unauthorized(c fiber.Ctx) error {
	return c.Status(http.StatusUnauthorized).JSON(apiError{
		Status:    http.StatusUnauthorized,
		Message:   "authentication required",
		Timestamp: time.Now().UTC(),
	})
}

func forbidden(c fiber.Ctx) error {
	return c.Status(http.StatusForbidden).JSON(apiError{
		Status:    http.StatusForbidden,
		Message:   "insufficient permissions",
		Timestamp: time.Now().UTC(),
	})
}

// statusFor maps error kinds to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, core.ErrIdentifierRequired),
		errors.Is(err, core.ErrSecretRequired):
		return http.StatusBadRequest

	case errors.Is(err, core.ErrAccountExists):
		return http.StatusConflict

	case errors.Is(err, core.ErrAccountNotFound):
		return http.StatusNotFound

	case errors.Is(err, core.ErrInvalidCredentials):
		return http.StatusUnauthorized

	default:
		return http.StatusInternalServerError
	}
}
