package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/crm-panel/internal/application/session"
	"github.com/jhoicas/crm-panel/internal/application/usecase"
	"github.com/jhoicas/crm-panel/internal/domain/entity"
	"github.com/jhoicas/crm-panel/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Sessions   *session.Service
	Store      TokenStore
	LeadUC     *usecase.LeadUseCase
	ChatUC     *usecase.ChatUseCase
	ReportUC   *usecase.ReportUseCase
	UserUC     *usecase.UserUseCase
	SettingsUC *usecase.SettingsUseCase
	Log        *logger.Logger
}

// Router registra las rutas del panel. La tabla de roles replica la del SPA:
// leads y chat para cualquier usuario autenticado; reportes, usuarios y
// configuración solo admin/superadmin; el cambio de servidor solo superadmin.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(SessionMiddleware(deps.Store, deps.Sessions))

	// Auth (público salvo /me)
	authHandler := NewAuthHandler(deps.Sessions, deps.Store, deps.Log)
	auth := app.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/logout", authHandler.Logout)
	auth.Get("/me", RequireAuth(), authHandler.Me)

	// Rutas protegidas del panel
	api := app.Group("/api", RequireAuth())

	leads := api.Group("/leads")
	leadHandler := NewLeadHandler(deps.LeadUC, deps.Store)
	leads.Get("/", leadHandler.List)

	chat := api.Group("/chat")
	chatHandler := NewChatHandler(deps.ChatUC)
	chat.Get("/conversations", chatHandler.Conversations)
	chat.Get("/conversations/:id/messages", chatHandler.Messages)
	chat.Post("/conversations/:id/messages", chatHandler.Send)

	admin := []entity.Role{entity.RoleAdmin, entity.RoleSuperadmin}

	reports := api.Group("/reportes", RequireRoles(admin...))
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/mensajes", reportHandler.Messages)
	reports.Get("/agentes", reportHandler.Agents)
	reports.Get("/resumen", reportHandler.Summary)

	users := api.Group("/usuarios", RequireRoles(admin...))
	userHandler := NewUserHandler(deps.UserUC, deps.Store)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	settings := api.Group("/configuracion", RequireRoles(admin...))
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	settings.Get("/", settingsHandler.Get)
	settings.Put("/", settingsHandler.Update)
	settings.Get("/servidor", settingsHandler.ServerConfig)
	settings.Put("/servidor", RequireRoles(entity.RoleSuperadmin), settingsHandler.SetServerConfig)
}
