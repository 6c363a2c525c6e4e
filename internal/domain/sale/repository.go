package sale

import (
	"context"
	"errors"
)

// ErrSaleNotFound é retornado quando a venda não existe no repositório
var ErrSaleNotFound = errors.New("venda não encontrada")

// Repository define a interface para operações de repositório de vendas.
// As implementações são responsáveis por drenar e despachar os eventos
// de domínio do agregado após cada gravação bem-sucedida.
type Repository interface {
	// Create grava uma nova venda e seus itens, atribuindo o número sequencial
	Create(ctx context.Context, s *Sale) (*Sale, error)

	// FindByID busca uma venda pelo ID, incluindo os itens
	FindByID(ctx context.Context, id string) (*Sale, error)

	// Update grava o estado dos itens (quantidade, preço, desconto,
	// cancelamento) e os novos totais do agregado
	Update(ctx context.Context, s *Sale) (*Sale, error)

	// Cancel grava o cancelamento da venda (apenas a flag de cancelamento)
	Cancel(ctx context.Context, s *Sale) (*Sale, error)

	// List retorna todas as vendas
	List(ctx context.Context) ([]*Sale, error)
}
