package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stockbook/internal/application/reporting"
)

// DashboardHandler maneja los endpoints del dashboard principal.
type DashboardHandler struct {
	uc *reporting.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *reporting.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Home devuelve el dashboard principal: resumen de ventas/compras, inventario
// por estado y métricas de los últimos 7 días.
// GET /api/dashboard
func (h *DashboardHandler) Home(c *fiber.Ctx) error {
	out, err := h.uc.Home(c.Context(), GetUserID(c))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Graph serie temporal de ventas y compras.
// GET /api/dashboard/graph?range=daily|weekly|monthly|yearly
func (h *DashboardHandler) Graph(c *fiber.Ctx) error {
	out, err := h.uc.Graph(c.Context(), GetUserID(c), c.Query("range"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Summary resumen rápido ventas/compras.
// GET /api/dashboard/summary
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary(c.Context(), GetUserID(c))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// TopSelling productos más vendidos.
// GET /api/dashboard/top-selling?limit=5
func (h *DashboardHandler) TopSelling(c *fiber.Ctx) error {
	out, err := h.uc.TopSelling(c.Context(), GetUserID(c), c.QueryInt("limit", 5))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// LowStock productos en o por debajo de su umbral.
// GET /api/dashboard/low-stock
func (h *DashboardHandler) LowStock(c *fiber.Ctx) error {
	out, err := h.uc.LowStock(c.Context(), GetUserID(c))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Expiring productos que vencen en los próximos 30 días.
// GET /api/dashboard/expiring
func (h *DashboardHandler) Expiring(c *fiber.Ctx) error {
	out, err := h.uc.Expiring(c.Context(), GetUserID(c))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// TopStats métricas de cabecera: ingresos, unidades vendidas, productos con stock.
// GET /api/dashboard/top-stats
func (h *DashboardHandler) TopStats(c *fiber.Ctx) error {
	out, err := h.uc.TopStats(c.Context(), GetUserID(c))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}
