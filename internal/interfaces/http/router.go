package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/udhaydurai/donor-breeze/internal/application/auth"
	"github.com/udhaydurai/donor-breeze/internal/application/invoicing"
	"github.com/udhaydurai/donor-breeze/internal/domain/repository"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	AuthUC      *auth.UseCase
	InvoicingUC *invoicing.UseCase
	InvoicePDF  *invoicing.PDFUseCase
	Sessions    repository.SessionRepository
	JWTSecret   string
}

// Router registers the API routes. Everything except the sign-in flow and
// the session probe sits behind the route guard.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/request-code", authHandler.RequestCode)
	authGroup.Post("/verify", authHandler.VerifyCode)
	authGroup.Get("/session", authHandler.Session)

	// Protected routes (Bearer token + durable session flag)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.Sessions))

	protected.Post("/auth/logout", authHandler.Logout)

	// Invoices (protected)
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoicingUC, deps.InvoicePDF)
	invoices.Get("/", invoiceHandler.List)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Put("/:id", invoiceHandler.Update)
	invoices.Delete("/:id", invoiceHandler.Delete)
	invoices.Get("/:id/pdf", invoiceHandler.DownloadPDF)

	// Organization settings (protected)
	settingsHandler := NewSettingsHandler(deps.InvoicingUC)
	protected.Get("/settings", settingsHandler.Get)
	protected.Put("/settings", settingsHandler.Update)

	// Dashboard (protected)
	dashboardHandler := NewDashboardHandler(deps.InvoicingUC)
	protected.Get("/dashboard", dashboardHandler.Summary)
}
