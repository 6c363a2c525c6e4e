package sales

import (
	"github.com/hugohenrick/vendas-api/internal/domain/sale"
	"github.com/hugohenrick/vendas-api/pkg/logger"
)

// msgMaxQuantityExceeded é a mensagem da regra de limite de itens idênticos
const msgMaxQuantityExceeded = "não é possível adicionar mais de 20 itens idênticos"

// Service orquestra os comandos e consultas de vendas.
// Cada operação valida a entrada, carrega ou constrói o agregado,
// invoca as mutações, persiste pelo gateway e mapeia o resultado.
type Service struct {
	saleRepo sale.Repository
	logger   logger.Logger
}

// NewService cria uma nova instância de Service
func NewService(saleRepo sale.Repository, logger logger.Logger) *Service {
	return &Service{
		saleRepo: saleRepo,
		logger:   logger,
	}
}
