package notification

import (
	"context"

	"github.com/hugohenrick/vendas-api/internal/domain/sale"
	"github.com/hugohenrick/vendas-api/pkg/logger"
)

// Sink recebe os eventos de domínio drenados do agregado, um por vez,
// em ordem de emissão, após a gravação durável. Uma falha do sink não
// desfaz a gravação.
type Sink interface {
	Notify(ctx context.Context, event sale.Event) error
}

// LoggerSink é a implementação de Sink que registra os eventos no log
type LoggerSink struct {
	logger logger.Logger
}

// NewLoggerSink cria uma nova instância de LoggerSink
func NewLoggerSink(logger logger.Logger) *LoggerSink {
	return &LoggerSink{logger: logger}
}

// Notify registra o evento recebido
func (s *LoggerSink) Notify(_ context.Context, event sale.Event) error {
	switch e := event.(type) {
	case sale.SaleCreatedEvent:
		s.logger.Info("venda criada", "event", e.Name(), "sale_id", e.SaleID)
	case sale.SaleModifiedEvent:
		s.logger.Info("venda modificada", "event", e.Name(), "sale_id", e.SaleID)
	case sale.ItemCancelledEvent:
		s.logger.Info("item cancelado", "event", e.Name(), "sale_id", e.SaleID, "item_id", e.ItemID)
	case sale.SaleCancelledEvent:
		s.logger.Info("venda cancelada", "event", e.Name(), "sale_id", e.SaleID)
	default:
		s.logger.Warn("evento de domínio desconhecido", "event", event.Name())
	}
	return nil
}
