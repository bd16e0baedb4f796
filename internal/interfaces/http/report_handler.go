package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/crm-panel/internal/application/usecase"
)

// ReportHandler reportes y tablero (solo admin y superadmin, ver router).
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler de reportes.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Messages maneja GET /api/reportes/mensajes.
func (h *ReportHandler) Messages(c *fiber.Ctx) error {
	return c.JSON(h.uc.MessageSeries())
}

// Agents maneja GET /api/reportes/agentes.
func (h *ReportHandler) Agents(c *fiber.Ctx) error {
	return c.JSON(h.uc.AgentMetrics())
}

// Summary maneja GET /api/reportes/resumen.
func (h *ReportHandler) Summary(c *fiber.Ctx) error {
	return c.JSON(h.uc.Summary())
}
