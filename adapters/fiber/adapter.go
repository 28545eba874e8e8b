package fiber

import (
	"github.com/gofiber/fiber/v3"

	"github.com/leaguebuddies/backend/core"
	"github.com/leaguebuddies/backend/services"
	"github.com/leaguebuddies/backend/token"
)

// Adapter registers the HTTP surface on a Fiber app and bridges requests
// into the auth core.
type Adapter struct {
	auth     *services.AuthService
	profiles *services.ProfileService
	tokens   *token.Service
	store    core.CredentialStore
}

func New(auth *services.AuthService, profiles *services.ProfileService, tokens *token.Service, store core.CredentialStore) *Adapter {
	return &Adapter{
		auth:     auth,
		profiles: profiles,
		tokens:   tokens,
		store:    store,
	}
}

// RegisterRoutes wires the authentication middleware and all routes.
// Auth routes and profile reads are public; profile writes require the
// caller to be the profile owner or an admin.
func (a *Adapter) RegisterRoutes(app *fiber.App) {
	app.Use(a.Authenticate())

	auth := app.Group("/auth")
	auth.Post("/register", a.register)
	auth.Post("/login", a.login)

	players := app.Group("/players")
	players.Get("/me", a.currentPlayer, RequireAuth())
	players.Get("/:email", a.getPlayer)
	players.Put("/:email", a.updatePlayer, RequireSelfOrAdmin())
	players.Delete("/:email", a.deletePlayer, RequireSelfOrAdmin())
}
