package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stockbook/internal/application/reporting"
)

// StatisticsHandler maneja los endpoints de la vista de estadísticas.
type StatisticsHandler struct {
	uc *reporting.StatisticsUseCase
}

// NewStatisticsHandler construye el handler.
func NewStatisticsHandler(uc *reporting.StatisticsUseCase) *StatisticsHandler {
	return &StatisticsHandler{uc: uc}
}

// Summary tarjetas: ingresos, costos, utilidad, unidades vendidas y stock.
// GET /api/statistics/summary
func (h *StatisticsHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary(c.Context(), GetUserID(c))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Graph serie temporal por período.
// GET /api/statistics/graph?range=daily|weekly|monthly|yearly
func (h *StatisticsHandler) Graph(c *fiber.Ctx) error {
	out, err := h.uc.Graph(c.Context(), GetUserID(c), c.Query("range"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// TopProducts los productos más vendidos.
// GET /api/statistics/top-products
func (h *StatisticsHandler) TopProducts(c *fiber.Ctx) error {
	out, err := h.uc.TopProducts(c.Context(), GetUserID(c))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}
