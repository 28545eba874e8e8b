package fiber

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/leaguebuddies/backend/adapters/memory"
	"github.com/leaguebuddies/backend/core"
	"github.com/leaguebuddies/backend/crypto"
	"github.com/leaguebuddies/backend/services"
	"github.com/leaguebuddies/backend/token"
)

var testKey = []byte("test-signing-key-0123456789abcdef")

var testConfig = fiber.TestConfig{Timeout: 10 * time.Second}

// newTestApp wires a full app against the in-memory store with
// reduced-cost hashing.
func newTestApp(t *testing.T) (*fiber.App, *token.Service, core.CredentialStore) {
	t.Helper()

	store := memory.New()
	tokens, err := token.NewService(testKey, token.DefaultTTL)
	if err != nil {
		t.Fatalf("token.NewService() error = %v", err)
	}
	hasher := &crypto.Argon2{
		Memory:      1024,
		Iterations:  1,
		Parallelism: 1,
		SaltLength:  16,
		KeyLength:   32,
	}

	auth := services.NewAuthService(store, hasher, tokens)
	profiles := services.NewProfileService(store)

	app := fiber.New()
	New(auth, profiles, tokens, store).RegisterRoutes(app)
	return app, tokens, store
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req, testConfig)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	return resp
}

func decodeToken(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	var body core.AuthResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return body.Token
}

// Requirement: the register/login surface maps each error kind to its
// fixed status code.
func TestAuthEndpoints(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		body       core.AuthRequest
		setup      func(t *testing.T, app *fiber.App)
		wantStatus int
	}{
		{
			name:       "register succeeds",
			path:       "/auth/register",
			body:       core.AuthRequest{Identifier: "alice@example.com", Secret: "pw123"},
			wantStatus: http.StatusOK,
		},
		{
			name:       "register rejects empty identifier",
			path:       "/auth/register",
			body:       core.AuthRequest{Identifier: "", Secret: "pw123"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "register conflicts on duplicate",
			path: "/auth/register",
			body: core.AuthRequest{Identifier: "alice@example.com", Secret: "pw123"},
			setup: func(t *testing.T, app *fiber.App) {
				resp := postJSON(t, app, "/auth/register", core.AuthRequest{Identifier: "alice@example.com", Secret: "pw123"})
				resp.Body.Close()
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "login succeeds",
			path: "/auth/login",
			body: core.AuthRequest{Identifier: "alice@example.com", Secret: "pw123"},
			setup: func(t *testing.T, app *fiber.App) {
				resp := postJSON(t, app, "/auth/register", core.AuthRequest{Identifier: "alice@example.com", Secret: "pw123"})
				resp.Body.Close()
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "login rejects wrong secret",
			path: "/auth/login",
			body: core.AuthRequest{Identifier: "alice@example.com", Secret: "wrong"},
			setup: func(t *testing.T, app *fiber.App) {
				resp := postJSON(t, app, "/auth/register", core.AuthRequest{Identifier: "alice@example.com", Secret: "pw123"})
				resp.Body.Close()
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "login unknown identifier is not found",
			path:       "/auth/login",
			body:       core.AuthRequest{Identifier: "bob@example.com", Secret: "x"},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "login rejects blank secret",
			path:       "/auth/login",
			body:       core.AuthRequest{Identifier: "alice@example.com", Secret: "   "},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			// Arrange
			app, _, _ := newTestApp(t)
			if test.setup != nil {
				test.setup(t, app)
			}

			// Act
			resp := postJSON(t, app, test.path, test.body)
			defer resp.Body.Close()

			// Assert
			if resp.StatusCode != test.wantStatus {
				raw, _ := io.ReadAll(resp.Body)
				t.Fatalf("status = %d, want %d, body = %s", resp.StatusCode, test.wantStatus, raw)
			}
			if test.wantStatus == http.StatusOK {
				var body core.AuthResponse
				if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
					t.Fatalf("decode response: %v", err)
				}
				if body.Token == "" {
					t.Error("success response should carry a non-empty token")
				}
			}
		})
	}
}

// Requirement: a registered token authenticates its own profile routes;
// anonymous and cross-user writes are rejected by authorization, not by
// the authenticator.
func TestProtectedPlayerRoutes(t *testing.T) {
	// Arrange: two registered players
	app, _, _ := newTestApp(t)
	aliceToken := decodeToken(t, postJSON(t, app, "/auth/register", core.AuthRequest{Identifier: "alice@example.com", Secret: "pw123"}))
	bobToken := decodeToken(t, postJSON(t, app, "/auth/register", core.AuthRequest{Identifier: "bob@example.com", Secret: "pw456"}))

	tests := []struct {
		name       string
		method     string
		path       string
		token      string
		wantStatus int
	}{
		{
			name:       "profile read is public",
			method:     http.MethodGet,
			path:       "/players/alice@example.com",
			wantStatus: http.StatusOK,
		},
		{
			name:       "me resolves the authenticated player",
			method:     http.MethodGet,
			path:       "/players/me",
			token:      aliceToken,
			wantStatus: http.StatusOK,
		},
		{
			name:       "anonymous me is unauthorized",
			method:     http.MethodGet,
			path:       "/players/me",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "anonymous update is unauthorized",
			method:     http.MethodPut,
			path:       "/players/alice@example.com",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "owner can update own profile",
			method:     http.MethodPut,
			path:       "/players/alice@example.com",
			token:      aliceToken,
			wantStatus: http.StatusOK,
		},
		{
			name:       "cross-user update is forbidden",
			method:     http.MethodPut,
			path:       "/players/alice@example.com",
			token:      bobToken,
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "garbage token stays anonymous and is unauthorized",
			method:     http.MethodDelete,
			path:       "/players/alice@example.com",
			token:      "not-a-real-token",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "owner can delete own account",
			method:     http.MethodDelete,
			path:       "/players/bob@example.com",
			token:      bobToken,
			wantStatus: http.StatusOK,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var reqBody io.Reader
			if test.method == http.MethodPut {
				reqBody = bytes.NewReader([]byte(`{"description":"updated"}`))
			}
			req := httptest.NewRequest(test.method, test.path, reqBody)
			if reqBody != nil {
				req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
			}
			if test.token != "" {
				req.Header.Set(fiber.HeaderAuthorization, fmt.Sprintf("Bearer %s", test.token))
			}

			resp, err := app.Test(req, testConfig)
			if err != nil {
				t.Fatalf("app.Test() error = %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != test.wantStatus {
				raw, _ := io.ReadAll(resp.Body)
				t.Errorf("status = %d, want %d, body = %s", resp.StatusCode, test.wantStatus, raw)
			}
		})
	}
}

// Requirement: error responses carry the status, message, and timestamp
// body shape.
func TestErrorBodyShape(t *testing.T) {
	// Arrange
	app, _, _ := newTestApp(t)

	// Act
	resp := postJSON(t, app, "/auth/login", core.AuthRequest{Identifier: "ghost@example.com", Secret: "x"})
	defer resp.Body.Close()

	// Assert
	var body apiError
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Status != http.StatusNotFound {
		t.Errorf("body status = %d, want 404", body.Status)
	}
	if body.Message == "" {
		t.Error("error body should carry a message")
	}
	if body.Timestamp.IsZero() {
		t.Error("error body should carry a timestamp")
	}
}
