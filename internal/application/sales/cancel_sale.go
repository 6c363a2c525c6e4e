package sales

import (
	"context"
	"errors"

	"github.com/hugohenrick/vendas-api/internal/domain/sale"
	"github.com/hugohenrick/vendas-api/pkg/apperror"
)

// Cancel processa o comando de cancelamento de uma venda.
// O cancelamento é uma exclusão lógica: a venda permanece gravada com a
// flag de cancelamento e os últimos totais calculados.
func (s *Service) Cancel(ctx context.Context, cmd CancelSaleCommand) (*CancelSaleResult, error) {
	if err := validateCommand(cmd); err != nil {
		return nil, err
	}

	current, err := s.saleRepo.FindByID(ctx, cmd.ID)
	if err != nil {
		if errors.Is(err, sale.ErrSaleNotFound) {
			return nil, apperror.NewNotFound("venda", cmd.ID)
		}
		s.logger.Error("erro ao buscar venda", "error", err)
		return nil, apperror.NewUnexpected(err)
	}

	current.Cancel()

	cancelled, err := s.saleRepo.Cancel(ctx, current)
	if err != nil {
		s.logger.Error("erro ao cancelar venda", "error", err)
		return nil, apperror.NewUnexpected(err)
	}

	return &CancelSaleResult{
		ID:        cancelled.ID,
		Cancelled: cancelled.Cancelled,
	}, nil
}
