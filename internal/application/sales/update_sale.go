package sales

import (
	"context"
	"errors"

	"github.com/hugohenrick/vendas-api/internal/domain/sale"
	"github.com/hugohenrick/vendas-api/pkg/apperror"
)

// Update processa o comando de atualização dos itens de uma venda.
// Para cada item de entrada: se o produto não existe na venda, adiciona;
// se a entrada marca o item como cancelado, cancela; caso contrário,
// substitui quantidade e preço.
func (s *Service) Update(ctx context.Context, cmd UpdateSaleCommand) (*SaleResult, error) {
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

	for _, item := range cmd.Items {
		if item.Quantity > sale.MaxQuantityPerProduct {
			return nil, apperror.NewBusinessRule(msgMaxQuantityExceeded)
		}

		if err := s.applyItem(current, item); err != nil {
			return nil, err
		}
	}

	updated, err := s.saleRepo.Update(ctx, current)
	if err != nil {
		s.logger.Error("erro ao atualizar venda", "error", err)
		return nil, apperror.NewUnexpected(err)
	}

	return toSaleResult(updated), nil
}

// applyItem aplica uma linha de entrada sobre o agregado carregado
func (s *Service) applyItem(current *sale.Sale, item SaleItemCommand) error {
	var err error
	switch {
	case !current.HasItem(item.ProductID):
		err = current.AddItem(item.ProductID, item.Quantity, item.Price)
	case item.Cancelled:
		err = current.CancelItem(item.ProductID)
	default:
		err = current.UpdateItem(item.ProductID, item.Quantity, item.Price)
	}

	switch {
	case err == nil:
		return nil
	case errors.Is(err, sale.ErrSaleCancelled):
		return apperror.NewBusinessRule(err.Error())
	case errors.Is(err, sale.ErrItemNotFound):
		return apperror.NewNotFound("item", item.ProductID)
	default:
		return apperror.NewUnexpected(err)
	}
}
