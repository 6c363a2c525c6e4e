package sales

import (
	"context"

	"github.com/hugohenrick/vendas-api/internal/domain/sale"
	"github.com/hugohenrick/vendas-api/pkg/apperror"
)

// Create processa o comando de criação de venda.
// Os itens são processados um a um, em ordem de entrada, com interrupção
// imediata na primeira quantidade acima do limite; nesse caso nada é
// persistido, pois o agregado em memória é descartado.
func (s *Service) Create(ctx context.Context, cmd CreateSaleCommand) (*CreateSaleResult, error) {
	if err := validateCommand(cmd); err != nil {
		return nil, err
	}

	newSale := sale.NewSale(cmd.CustomerID, cmd.BranchID)

	for _, item := range cmd.Items {
		if item.Quantity > sale.MaxQuantityPerProduct {
			return nil, apperror.NewBusinessRule(msgMaxQuantityExceeded)
		}

		if err := newSale.AddItem(item.ProductID, item.Quantity, item.Price); err != nil {
			return nil, apperror.NewUnexpected(err)
		}
	}

	created, err := s.saleRepo.Create(ctx, newSale)
	if err != nil {
		s.logger.Error("erro ao criar venda", "error", err)
		return nil, apperror.NewUnexpected(err)
	}

	return &CreateSaleResult{
		ID:          created.ID,
		Number:      created.Number,
		TotalAmount: created.TotalAmount,
		Discount:    created.Discount,
	}, nil
}
