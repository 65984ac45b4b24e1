package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/udhaydurai/donor-breeze/internal/application/auth"
	"github.com/udhaydurai/donor-breeze/internal/application/invoicing"
	"github.com/udhaydurai/donor-breeze/internal/infrastructure/bolt"
	"github.com/udhaydurai/donor-breeze/internal/infrastructure/mail"
	"github.com/udhaydurai/donor-breeze/internal/infrastructure/notify"
	infrapdf "github.com/udhaydurai/donor-breeze/internal/infrastructure/pdf"
	httpRouter "github.com/udhaydurai/donor-breeze/internal/interfaces/http"
	"github.com/udhaydurai/donor-breeze/pkg/config"
	"github.com/udhaydurai/donor-breeze/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	store, err := bolt.Open(cfg.Store.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("open local store")
	}
	defer store.Close()

	invoiceRepo := bolt.NewInvoiceRepository(store)
	settingsRepo := bolt.NewSettingsRepository(store)
	sessionRepo := bolt.NewSessionRepository(store)

	codeSender := mail.NewLogCodeSender(log.Zerolog())
	authUC := auth.NewUseCase(sessionRepo, codeSender,
		auth.Config{
			AllowedEmail: cfg.Auth.AllowedEmail,
			CodeTTL:      time.Duration(cfg.Auth.CodeTTLMinutes) * time.Minute,
		},
		auth.JWTConfig{
			Secret:     cfg.JWT.Secret,
			ExpMinutes: cfg.JWT.Expiration,
			Issuer:     cfg.JWT.Issuer,
		},
	)

	notifier := notify.NewLogNotifier(log.Zerolog())
	invoicingUC := invoicing.NewUseCase(invoiceRepo, settingsRepo, notifier)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	invoicePDFUC := invoicing.NewPDFUseCase(invoiceRepo, settingsRepo, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI locally: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "donor-breeze API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		InvoicingUC: invoicingUC,
		InvoicePDF:  invoicePDFUC,
		Sessions:    sessionRepo,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
