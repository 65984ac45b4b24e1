package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udhaydurai/donor-breeze/internal/application/auth"
	"github.com/udhaydurai/donor-breeze/internal/application/dto"
	"github.com/udhaydurai/donor-breeze/internal/application/invoicing"
	"github.com/udhaydurai/donor-breeze/internal/domain/entity"
)

// memInvoiceRepo in-memory InvoiceRepository for end-to-end handler tests.
type memInvoiceRepo struct {
	invoices []entity.Invoice
}

func (m *memInvoiceRepo) List() ([]entity.Invoice, error) {
	return append([]entity.Invoice(nil), m.invoices...), nil
}
func (m *memInvoiceRepo) Create(invoice entity.Invoice) error {
	m.invoices = append(m.invoices, invoice)
	return nil
}
func (m *memInvoiceRepo) Update(id string, invoice entity.Invoice) error {
	for i := range m.invoices {
		if m.invoices[i].ID == id {
			m.invoices[i] = invoice
			break
		}
	}
	return nil
}
func (m *memInvoiceRepo) Delete(id string) error {
	kept := m.invoices[:0]
	for _, inv := range m.invoices {
		if inv.ID != id {
			kept = append(kept, inv)
		}
	}
	m.invoices = kept
	return nil
}
func (m *memInvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	for i := range m.invoices {
		if m.invoices[i].ID == id {
			inv := m.invoices[i]
			return &inv, nil
		}
	}
	return nil, nil
}

// memSettingsRepo single settings record in memory.
type memSettingsRepo struct {
	settings entity.OrganizationSettings
}

func (m *memSettingsRepo) Get() (entity.OrganizationSettings, error) { return m.settings, nil }
func (m *memSettingsRepo) Update(s entity.OrganizationSettings) error {
	m.settings = s
	return nil
}

// spySender captures the last delivered code instead of sending mail.
type spySender struct {
	lastEmail string
	lastCode  string
}

func (s *spySender) SendCode(email, code string) error {
	s.lastEmail = email
	s.lastCode = code
	return nil
}

// stubGenerator returns canned PDF bytes.
type stubGenerator struct{}

func (stubGenerator) GenerateInvoicePDF(context.Context, *entity.Invoice, entity.OrganizationSettings) ([]byte, error) {
	return []byte("%PDF-1.7 stub"), nil
}

func newTestApp(t *testing.T) (*fiber.App, *spySender) {
	t.Helper()
	sessions := &memSessionRepo{}
	invoices := &memInvoiceRepo{}
	settings := &memSettingsRepo{settings: entity.DefaultOrganizationSettings()}
	sender := &spySender{}

	authUC := auth.NewUseCase(sessions, sender,
		auth.Config{AllowedEmail: testAllowedEmail, CodeTTL: 10 * time.Minute},
		auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: 60, Issuer: "donor-breeze-test"},
	)
	invoicingUC := invoicing.NewUseCase(invoices, settings, nil)
	pdfUC := invoicing.NewPDFUseCase(invoices, settings, stubGenerator{})

	app := fiber.New()
	Router(app, RouterDeps{
		AuthUC:      authUC,
		InvoicingUC: invoicingUC,
		InvoicePDF:  pdfUC,
		Sessions:    sessions,
		JWTSecret:   testJWTSecret,
	})
	return app, sender
}

func request(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (int, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
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
	return resp.StatusCode, raw
}

func signIn(t *testing.T, app *fiber.App, sender *spySender) string {
	t.Helper()
	status, _ := request(t, app, "POST", "/api/auth/request-code", "",
		dto.RequestCodeRequest{Email: testAllowedEmail})
	require.Equal(t, fiber.StatusAccepted, status)
	require.NotEmpty(t, sender.lastCode)

	status, body := request(t, app, "POST", "/api/auth/verify", "",
		dto.VerifyCodeRequest{Code: sender.lastCode})
	require.Equal(t, fiber.StatusOK, status)

	var out dto.VerifyCodeResponse
	require.NoError(t, json.Unmarshal(body, &out))
	require.NotEmpty(t, out.Token)
	return out.Token
}

func TestRouter_SignInFlow(t *testing.T) {
	app, sender := newTestApp(t)

	// Unknown identity is refused outright.
	status, body := request(t, app, "POST", "/api/auth/request-code", "",
		dto.RequestCodeRequest{Email: "intruder@example.com"})
	assert.Equal(t, fiber.StatusForbidden, status)
	var fail dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &fail))
	assert.Equal(t, "ACCESS_DENIED", fail.Code)

	// The allowed identity gets a code.
	status, _ = request(t, app, "POST", "/api/auth/request-code", "",
		dto.RequestCodeRequest{Email: testAllowedEmail})
	assert.Equal(t, fiber.StatusAccepted, status)
	assert.Equal(t, testAllowedEmail, sender.lastEmail)

	// A wrong guess is rejected but leaves the code pending.
	status, body = request(t, app, "POST", "/api/auth/verify", "",
		dto.VerifyCodeRequest{Code: "000000"})
	assert.Equal(t, fiber.StatusUnauthorized, status)
	require.NoError(t, json.Unmarshal(body, &fail))
	assert.Equal(t, "INVALID_CODE", fail.Code)

	// The right code signs in.
	status, body = request(t, app, "POST", "/api/auth/verify", "",
		dto.VerifyCodeRequest{Code: sender.lastCode})
	assert.Equal(t, fiber.StatusOK, status)
	var verified dto.VerifyCodeResponse
	require.NoError(t, json.Unmarshal(body, &verified))
	assert.Equal(t, testAllowedEmail, verified.Email)

	// The session probe reflects the signed-in state.
	status, body = request(t, app, "GET", "/api/auth/session", "", nil)
	assert.Equal(t, fiber.StatusOK, status)
	var session dto.SessionResponse
	require.NoError(t, json.Unmarshal(body, &session))
	assert.True(t, session.Authenticated)
	assert.Equal(t, testAllowedEmail, session.Email)
}

func TestRouter_ProtectedRoutesRequireSignIn(t *testing.T) {
	app, _ := newTestApp(t)

	for _, route := range []struct{ method, path string }{
		{"GET", "/api/invoices"},
		{"POST", "/api/invoices"},
		{"GET", "/api/settings"},
		{"GET", "/api/dashboard"},
		{"POST", "/api/auth/logout"},
	} {
		status, _ := request(t, app, route.method, route.path, "", nil)
		assert.Equal(t, fiber.StatusUnauthorized, status, "%s %s must be guarded", route.method, route.path)
	}
}

func TestRouter_InvoiceLifecycle(t *testing.T) {
	app, sender := newTestApp(t)
	token := signIn(t, app, sender)

	// Create.
	status, body := request(t, app, "POST", "/api/invoices", token, fiber.Map{
		"invoiceNumber": "INV-001",
		"billTo":        fiber.Map{"name": "Chennai Cultural Committee"},
		"items": []fiber.Map{
			{"description": "Hall rental", "quantity": 2, "price": 10.5},
		},
	})
	require.Equal(t, fiber.StatusCreated, status)
	var created dto.InvoiceResponse
	require.NoError(t, json.Unmarshal(body, &created))
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "21.00", created.Subtotal)
	assert.Equal(t, "21.00", created.Total)
	assert.Equal(t, "San Diego Tamil Sangam", created.OrganizationInfo.Name)

	// List with a search filter.
	status, body = request(t, app, "GET", "/api/invoices?search=chennai", token, nil)
	require.Equal(t, fiber.StatusOK, status)
	var list dto.InvoiceListResponse
	require.NoError(t, json.Unmarshal(body, &list))
	require.Len(t, list.Items, 1)
	assert.Equal(t, 1, list.Total)

	// Fetch.
	status, _ = request(t, app, "GET", "/api/invoices/"+created.ID, token, nil)
	assert.Equal(t, fiber.StatusOK, status)

	// Update with an empty item list is rejected.
	status, body = request(t, app, "PUT", "/api/invoices/"+created.ID, token, fiber.Map{
		"invoiceNumber": "INV-001",
		"items":         []fiber.Map{},
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
	var fail dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &fail))
	assert.Equal(t, "VALIDATION", fail.Code)

	// A proper update goes through.
	status, body = request(t, app, "PUT", "/api/invoices/"+created.ID, token, fiber.Map{
		"invoiceNumber": "INV-001-REV",
		"billTo":        fiber.Map{"name": "Chennai Cultural Committee"},
		"items": []fiber.Map{
			{"description": "Hall rental", "quantity": 1, "price": 5},
		},
	})
	require.Equal(t, fiber.StatusOK, status)
	var updated dto.InvoiceResponse
	require.NoError(t, json.Unmarshal(body, &updated))
	assert.Equal(t, "INV-001-REV", updated.InvoiceNumber)
	assert.Equal(t, "5.00", updated.Total)

	// PDF download.
	status, raw := request(t, app, "GET", "/api/invoices/"+created.ID+"/pdf", token, nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, []byte("%PDF-1.7 stub"), raw)

	// Dashboard.
	status, body = request(t, app, "GET", "/api/dashboard", token, nil)
	require.Equal(t, fiber.StatusOK, status)
	var dashboard dto.DashboardResponse
	require.NoError(t, json.Unmarshal(body, &dashboard))
	assert.Equal(t, 1, dashboard.InvoiceCount)
	assert.Equal(t, "5.00", dashboard.TotalBilled)

	// Delete, then the fetch misses.
	status, _ = request(t, app, "DELETE", "/api/invoices/"+created.ID, token, nil)
	assert.Equal(t, fiber.StatusOK, status)
	status, body = request(t, app, "GET", "/api/invoices/"+created.ID, token, nil)
	assert.Equal(t, fiber.StatusNotFound, status)
	require.NoError(t, json.Unmarshal(body, &fail))
	assert.Equal(t, "NOT_FOUND", fail.Code)

	// Unknown PDF target is also a 404.
	status, _ = request(t, app, "GET", "/api/invoices/"+created.ID+"/pdf", token, nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestRouter_SettingsRoundTrip(t *testing.T) {
	app, sender := newTestApp(t)
	token := signIn(t, app, sender)

	status, body := request(t, app, "GET", "/api/settings", token, nil)
	require.Equal(t, fiber.StatusOK, status)
	var settings dto.OrganizationSettingsDTO
	require.NoError(t, json.Unmarshal(body, &settings))
	assert.Equal(t, "San Diego Tamil Sangam", settings.Name)

	// A nameless record is invalid.
	status, _ = request(t, app, "PUT", "/api/settings", token, dto.OrganizationSettingsDTO{})
	assert.Equal(t, fiber.StatusBadRequest, status)

	settings.Phone = "(555) 987-6543"
	status, _ = request(t, app, "PUT", "/api/settings", token, settings)
	require.Equal(t, fiber.StatusOK, status)

	status, body = request(t, app, "GET", "/api/settings", token, nil)
	require.Equal(t, fiber.StatusOK, status)
	require.NoError(t, json.Unmarshal(body, &settings))
	assert.Equal(t, "(555) 987-6543", settings.Phone)
}

// Logout flips the durable flag, so the very token that just worked stops
// working.
func TestRouter_LogoutInvalidatesToken(t *testing.T) {
	app, sender := newTestApp(t)
	token := signIn(t, app, sender)

	status, _ := request(t, app, "GET", "/api/invoices", token, nil)
	require.Equal(t, fiber.StatusOK, status)

	status, _ = request(t, app, "POST", "/api/auth/logout", token, nil)
	require.Equal(t, fiber.StatusOK, status)

	status, _ = request(t, app, "GET", "/api/invoices", token, nil)
	assert.Equal(t, fiber.StatusUnauthorized, status)

	// And the probe reports signed-out.
	status, body := request(t, app, "GET", "/api/auth/session", "", nil)
	require.Equal(t, fiber.StatusOK, status)
	var session dto.SessionResponse
	require.NoError(t, json.Unmarshal(body, &session))
	assert.False(t, session.Authenticated)
}
