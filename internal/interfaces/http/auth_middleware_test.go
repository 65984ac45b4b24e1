package http

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udhaydurai/donor-breeze/internal/domain/entity"
	"github.com/udhaydurai/donor-breeze/pkg/jwt"
)

const (
	testAllowedEmail = "sdts.mails@gmail.com"
	testJWTSecret    = "test-secret-key-for-http-tests"
)

// memSessionRepo in-memory SessionRepository for handler tests.
type memSessionRepo struct {
	pending *entity.PendingCode
	session entity.Session
}

func (m *memSessionRepo) SetPendingCode(code entity.PendingCode) error {
	m.pending = &code
	return nil
}
func (m *memSessionRepo) GetPendingCode() (*entity.PendingCode, error) { return m.pending, nil }
func (m *memSessionRepo) ClearPendingCode() error                      { m.pending = nil; return nil }
func (m *memSessionRepo) SetSession(s entity.Session) error            { m.session = s; return nil }
func (m *memSessionRepo) GetSession() (entity.Session, error)          { return m.session, nil }
func (m *memSessionRepo) ClearSession() error                          { m.session = entity.Session{}; return nil }

func newGuardedApp(sessions *memSessionRepo) *fiber.App {
	app := fiber.New()
	app.Get("/protected", AuthMiddleware(testJWTSecret, sessions), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"email": GetUserEmail(c)})
	})
	return app
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	app := newGuardedApp(&memSessionRepo{})

	resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	app := newGuardedApp(&memSessionRepo{})

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	app := newGuardedApp(&memSessionRepo{})

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_WrongSecretRejected(t *testing.T) {
	app := newGuardedApp(&memSessionRepo{
		session: entity.Session{Authenticated: true, Email: testAllowedEmail},
	})

	token, err := jwt.Generate("a-different-secret", testAllowedEmail, "test", 60)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

// A structurally valid token is not enough: the durable session flag must
// still be set. Signing out invalidates outstanding tokens.
func TestAuthMiddleware_SignedOutSessionRejected(t *testing.T) {
	sessions := &memSessionRepo{}
	app := newGuardedApp(sessions)

	token, err := jwt.Generate(testJWTSecret, testAllowedEmail, "test", 60)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_ValidTokenAndSession(t *testing.T) {
	sessions := &memSessionRepo{
		session: entity.Session{Authenticated: true, Email: testAllowedEmail},
	}
	app := newGuardedApp(sessions)

	token, err := jwt.Generate(testJWTSecret, testAllowedEmail, "test", 60)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAuthMiddleware_SessionEmailMismatchRejected(t *testing.T) {
	sessions := &memSessionRepo{
		session: entity.Session{Authenticated: true, Email: "someone-else@example.com"},
	}
	app := newGuardedApp(sessions)

	token, err := jwt.Generate(testJWTSecret, testAllowedEmail, "test", 60)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
