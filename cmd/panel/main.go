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

	"github.com/jhoicas/crm-panel/internal/application/session"
	"github.com/jhoicas/crm-panel/internal/application/usecase"
	infrachat "github.com/jhoicas/crm-panel/internal/infrastructure/chat"
	"github.com/jhoicas/crm-panel/internal/infrastructure/crm"
	httpRouter "github.com/jhoicas/crm-panel/internal/interfaces/http"
	"github.com/jhoicas/crm-panel/pkg/config"
	"github.com/jhoicas/crm-panel/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando panel")

	// URL del backend del CRM, ajustable en caliente y persistida
	runtime := config.NewRuntime(cfg.CRM.OverridePath, cfg.CRM.APIBase)
	crmClient := crm.NewClient(runtime.APIBase)

	store := httpRouter.TokenStore{
		Name:        cfg.Cookie.Name,
		Domain:      cfg.Cookie.Domain,
		Secure:      cfg.Cookie.Secure,
		RememberTTL: time.Duration(cfg.Cookie.RememberDays) * 24 * time.Hour,
	}

	sessions := session.NewService(crmClient)
	sessions.OnLogout(func() {
		log.Info().Msg("sesión cerrada")
	})

	leadUC := usecase.NewLeadUseCase(crmClient)
	chatUC := usecase.NewChatUseCase(infrachat.NewMemoryStore())
	reportUC := usecase.NewReportUseCase()
	userUC := usecase.NewUserUseCase(crmClient)
	settingsUC := usecase.NewSettingsUseCase(runtime)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.MetricsMiddleware())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "CRM Panel API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", httpRouter.MetricsHandler())

	httpRouter.Router(app, httpRouter.RouterDeps{
		Sessions:   sessions,
		Store:      store,
		LeadUC:     leadUC,
		ChatUC:     chatUC,
		ReportUC:   reportUC,
		UserUC:     userUC,
		SettingsUC: settingsUC,
		Log:        log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("panel detenido")
}
