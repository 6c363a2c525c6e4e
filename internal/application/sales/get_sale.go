package sales

import (
	"context"
	"errors"

	"github.com/hugohenrick/vendas-api/internal/domain/sale"
	"github.com/hugohenrick/vendas-api/pkg/apperror"
)

// Get retorna o estado de uma venda pelo ID
func (s *Service) Get(ctx context.Context, query GetSaleQuery) (*SaleResult, error) {
	if err := validateCommand(query); err != nil {
		return nil, err
	}

	found, err := s.saleRepo.FindByID(ctx, query.ID)
	if err != nil {
		if errors.Is(err, sale.ErrSaleNotFound) {
			return nil, apperror.NewNotFound("venda", query.ID)
		}
		s.logger.Error("erro ao buscar venda", "error", err)
		return nil, apperror.NewUnexpected(err)
	}

	return toSaleResult(found), nil
}

// List retorna todas as vendas, sem filtro ou paginação
func (s *Service) List(ctx context.Context) ([]*SaleResult, error) {
	found, err := s.saleRepo.List(ctx)
	if err != nil {
		s.logger.Error("erro ao listar vendas", "error", err)
		return nil, apperror.NewUnexpected(err)
	}

	results := make([]*SaleResult, len(found))
	for i, item := range found {
		results[i] = toSaleResult(item)
	}

	return results, nil
}
