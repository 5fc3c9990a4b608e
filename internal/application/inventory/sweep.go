package inventory

import (
	"context"
	"time"

	"github.com/tu-usuario/stockbook/internal/domain/repository"
	"github.com/tu-usuario/stockbook/pkg/logger"
)

// StatusSweep barrido periódico que reescribe el estado derivado de todos los
// productos a partir de cantidad y umbral actuales. Es best-effort e
// idempotente: solo toca la columna caché de status, por lo que puede correr
// concurrente con cualquier compra o venta sin perder actualizaciones.
type StatusSweep struct {
	products repository.ProductRepository
	interval time.Duration
	log      *logger.Logger
}

// NewStatusSweep construye el barrido.
func NewStatusSweep(products repository.ProductRepository, interval time.Duration, log *logger.Logger) *StatusSweep {
	return &StatusSweep{products: products, interval: interval, log: log}
}

// Run ejecuta el barrido cada intervalo hasta que el contexto se cancele.
// Pensado para correr en una goroutine desde main.
func (s *StatusSweep) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *StatusSweep) sweep(ctx context.Context) {
	updated, err := s.products.RecomputeStatuses(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("barrido de estados de stock")
		return
	}
	if updated > 0 {
		s.log.Info().Int64("updated", updated).Msg("estados de stock recalculados")
	}
}
