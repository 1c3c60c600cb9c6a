package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/studio-cms/internal/api/http/handlers"
	"github.com/spec-kit/studio-cms/internal/auth"
	"github.com/spec-kit/studio-cms/internal/bootstrap"
	"github.com/spec-kit/studio-cms/internal/config"
	"github.com/spec-kit/studio-cms/internal/observability"
	"github.com/spec-kit/studio-cms/internal/repository"
	"github.com/spec-kit/studio-cms/internal/service"
)

var e2eAdminCfg = config.AdminConfig{
	Name:     "Admin User",
	Email:    "admin@example.com",
	Password: "admin123",
}

// newTestServer wires the user and admin surface over an in-memory account
// store, with the same middlewares and routes as production.
func newTestServer(t *testing.T) (*fiber.App, repository.UserRepository) {
	t.Helper()

	users := repository.NewMemoryUserRepository()
	authCfg := config.AuthConfig{JWTSecret: "e2e-test-secret", TokenTTLHours: 1, BcryptCost: bcrypt.MinCost}

	authService := service.NewAuthService(authCfg, users)
	adminService := service.NewAdminService(authCfg, service.AdminDependencies{Users: users})

	app := fiber.New()
	RegisterMiddlewares(app, zap.NewNop(), observability.NewMetrics(), 0)
	RegisterRoutes(app, RouteConfig{
		Health:         handlers.NewHealthHandler("studio-cms-test", "test", nil, nil),
		Users:          handlers.NewUsersHandler(authService),
		Admin:          handlers.NewAdminHandler(adminService),
		Services:       handlers.NewServicesHandler(nil, nil),
		Trainings:      handlers.NewTrainingsHandler(nil, nil),
		Reviews:        handlers.NewReviewsHandler(nil),
		Contacts:       handlers.NewContactsHandler(nil),
		Bookings:       handlers.NewBookingsHandler(nil),
		Menu:           handlers.NewMenuHandler(nil, nil),
		AuthMiddleware: auth.NewAuthMiddleware(authService.TokenManager(), users),
		UploadsDir:     t.TempDir(),
	})
	return app, users
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, payload any) (int, map[string]any) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	decoded := map[string]any{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded), "body: %s", raw)
	}
	return resp.StatusCode, decoded
}

func errCode(body map[string]any) string {
	errObj, _ := body["error"].(map[string]any)
	code, _ := errObj["code"].(string)
	return code
}

func login(t *testing.T, app *fiber.App, email, password string) string {
	t.Helper()
	status, body := doJSON(t, app, nethttp.MethodPost, "/api/users/login", "", fiber.Map{
		"email": email, "password": password,
	})
	require.Equal(t, nethttp.StatusOK, status, "login %s", email)
	data := body["data"].(map[string]any)
	token := data["auth"].(map[string]any)["token"].(string)
	require.NotEmpty(t, token)
	return token
}

// Walks the lifecycle of a fresh deployment: bootstrap, first login with the
// default credentials, admin operations, and the deletion policy.
func TestAdminLifecycle(t *testing.T) {
	app, users := newTestServer(t)
	ctx := context.Background()

	require.NoError(t, bootstrap.EnsureAdmin(ctx, users, e2eAdminCfg, bcrypt.MinCost, zap.NewNop()))

	adminToken := login(t, app, e2eAdminCfg.Email, e2eAdminCfg.Password)

	// Admin surface is reachable with the bootstrap credentials.
	status, body := doJSON(t, app, nethttp.MethodGet, "/api/admin/users", adminToken, nil)
	require.Equal(t, nethttp.StatusOK, status)
	require.Len(t, body["data"], 1)

	// Same route without a token is rejected before any handler runs.
	status, body = doJSON(t, app, nethttp.MethodGet, "/api/admin/users", "", nil)
	assert.Equal(t, nethttp.StatusUnauthorized, status)
	assert.Equal(t, "UNAUTHORIZED", errCode(body))

	// A self-registered visitor gets a token but no admin capability.
	status, _ = doJSON(t, app, nethttp.MethodPost, "/api/users/register", "", fiber.Map{
		"name": "Visitor", "email": "visitor@example.com", "password": "visitor-pass",
	})
	require.Equal(t, nethttp.StatusCreated, status)
	visitorToken := login(t, app, "visitor@example.com", "visitor-pass")

	status, body = doJSON(t, app, nethttp.MethodGet, "/api/admin/users", visitorToken, nil)
	assert.Equal(t, nethttp.StatusForbidden, status)
	assert.Equal(t, "FORBIDDEN", errCode(body))

	// Visitors can still read their own profile.
	status, body = doJSON(t, app, nethttp.MethodGet, "/api/users/profile", visitorToken, nil)
	require.Equal(t, nethttp.StatusOK, status)
	profile := body["data"].(map[string]any)
	assert.Equal(t, "visitor@example.com", profile["email"])

	// The admin promotes the visitor; the next request with the old visitor
	// token already carries the new capability.
	var adminID, visitorID string
	status, body = doJSON(t, app, nethttp.MethodGet, "/api/admin/users", adminToken, nil)
	require.Equal(t, nethttp.StatusOK, status)
	for _, entry := range body["data"].([]any) {
		u := entry.(map[string]any)
		switch u["email"] {
		case e2eAdminCfg.Email:
			adminID = u["id"].(string)
		case "visitor@example.com":
			visitorID = u["id"].(string)
		}
	}
	require.NotEmpty(t, adminID)
	require.NotEmpty(t, visitorID)

	status, _ = doJSON(t, app, nethttp.MethodPut, "/api/admin/users/"+visitorID, adminToken, fiber.Map{
		"is_admin": true,
	})
	require.Equal(t, nethttp.StatusOK, status)
	status, _ = doJSON(t, app, nethttp.MethodGet, "/api/admin/users", visitorToken, nil)
	assert.Equal(t, nethttp.StatusOK, status)

	// No admin may delete themselves or another admin.
	status, body = doJSON(t, app, nethttp.MethodDelete, "/api/admin/users/"+adminID, adminToken, nil)
	assert.Equal(t, nethttp.StatusForbidden, status)
	assert.Equal(t, "FORBIDDEN", errCode(body))

	status, body = doJSON(t, app, nethttp.MethodDelete, "/api/admin/users/"+visitorID, adminToken, nil)
	assert.Equal(t, nethttp.StatusForbidden, status)
	assert.Equal(t, "FORBIDDEN", errCode(body))

	// Demoted back to a plain account, the visitor can be removed.
	status, _ = doJSON(t, app, nethttp.MethodPut, "/api/admin/users/"+visitorID, adminToken, fiber.Map{
		"is_admin": false,
	})
	require.Equal(t, nethttp.StatusOK, status)
	status, _ = doJSON(t, app, nethttp.MethodDelete, "/api/admin/users/"+visitorID, adminToken, nil)
	require.Equal(t, nethttp.StatusOK, status)

	// The deleted account's token no longer authenticates.
	status, body = doJSON(t, app, nethttp.MethodGet, "/api/users/profile", visitorToken, nil)
	assert.Equal(t, nethttp.StatusUnauthorized, status)
	assert.Equal(t, "UNAUTHORIZED", errCode(body))
}

func TestRegisterValidation(t *testing.T) {
	app, _ := newTestServer(t)

	status, body := doJSON(t, app, nethttp.MethodPost, "/api/users/register", "", fiber.Map{
		"email": "half@example.com",
	})
	assert.Equal(t, nethttp.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION_FAILED", errCode(body))
}

func TestRegisterDuplicateEmailConflict(t *testing.T) {
	app, _ := newTestServer(t)

	payload := fiber.Map{"name": "Jane", "email": "jane@example.com", "password": "pass1234"}
	status, _ := doJSON(t, app, nethttp.MethodPost, "/api/users/register", "", payload)
	require.Equal(t, nethttp.StatusCreated, status)

	status, body := doJSON(t, app, nethttp.MethodPost, "/api/users/register", "", payload)
	assert.Equal(t, nethttp.StatusConflict, status)
	assert.Equal(t, "CONFLICT", errCode(body))
}

func TestLoginInvalidCredentials(t *testing.T) {
	app, _ := newTestServer(t)

	status, body := doJSON(t, app, nethttp.MethodPost, "/api/users/login", "", fiber.Map{
		"email": "nobody@example.com", "password": "whatever",
	})
	assert.Equal(t, nethttp.StatusUnauthorized, status)
	assert.Equal(t, "UNAUTHORIZED", errCode(body))
}

func TestResponsesNeverLeakPasswordHash(t *testing.T) {
	app, users := newTestServer(t)
	require.NoError(t, bootstrap.EnsureAdmin(context.Background(), users, e2eAdminCfg, bcrypt.MinCost, zap.NewNop()))

	status, body := doJSON(t, app, nethttp.MethodPost, "/api/users/register", "", fiber.Map{
		"name": "Jane", "email": "jane@example.com", "password": "pass1234",
	})
	require.Equal(t, nethttp.StatusCreated, status)
	registered := body["data"].(map[string]any)["user"].(map[string]any)
	assert.NotContains(t, registered, "password")
	assert.NotContains(t, registered, "password_hash")
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "$2a$")

	adminToken := login(t, app, e2eAdminCfg.Email, e2eAdminCfg.Password)
	status, body = doJSON(t, app, nethttp.MethodGet, "/api/admin/users", adminToken, nil)
	require.Equal(t, nethttp.StatusOK, status)
	raw, err = json.Marshal(body)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "$2a$")
}
