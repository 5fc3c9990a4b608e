package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stockbook/internal/application/dto"
	"github.com/tu-usuario/stockbook/internal/application/reporting"
	"github.com/tu-usuario/stockbook/internal/domain/repository"
)

// TransactionHandler lectura del ledger crudo (protegido).
type TransactionHandler struct {
	uc *reporting.LedgerQueryUseCase
}

// NewTransactionHandler construye el handler.
func NewTransactionHandler(uc *reporting.LedgerQueryUseCase) *TransactionHandler {
	return &TransactionHandler{uc: uc}
}

// List godoc
// @Summary      Listar transacciones del ledger
// @Tags         transactions
// @Security     Bearer
// @Produce      json
// @Param        type  query  string  false  "PURCHASE o SALE"
// @Param        from  query  string  false  "Desde (YYYY-MM-DD)"
// @Param        to    query  string  false  "Hasta (YYYY-MM-DD, exclusivo)"
// @Success      200   {array}   dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/transactions [get]
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	userID := GetUserID(c)

	filter := repository.TransactionFilter{Type: c.Query("type")}
	if s := c.Query("from"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from: formato YYYY-MM-DD"})
		}
		filter.From = t
	}
	if s := c.Query("to"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to: formato YYYY-MM-DD"})
		}
		filter.To = t
	}

	out, err := h.uc.List(c.Context(), userID, filter)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}
