package dto

import (
	"time"

	"github.com/hugohenrick/vendas-api/internal/application/sales"
)

// SaleItemRequest representa uma linha de item nas requisições de venda
type SaleItemRequest struct {
	ProductID string  `json:"product_id" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required"`
	Price     float64 `json:"price" binding:"required"`
	Cancelled bool    `json:"cancelled"`
}

// CreateSaleRequest representa a requisição de criação de venda
type CreateSaleRequest struct {
	CustomerID string            `json:"customer_id" binding:"required"`
	BranchID   string            `json:"branch_id" binding:"required"`
	Items      []SaleItemRequest `json:"items" binding:"required,min=1"`
}

// UpdateSaleRequest representa a requisição de atualização de venda
type UpdateSaleRequest struct {
	ID    string            `json:"id" binding:"required"`
	Items []SaleItemRequest `json:"items" binding:"required,min=1"`
}

// CreateSaleResponse representa a resposta de criação de venda
type CreateSaleResponse struct {
	ID          string  `json:"id"`
	Number      int64   `json:"number"`
	TotalAmount float64 `json:"total_amount"`
	Discount    float64 `json:"discount"`
}

// SaleItemResponse representa um item nas respostas de venda
type SaleItemResponse struct {
	ID          string  `json:"id"`
	ProductID   string  `json:"product_id"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	Discount    float64 `json:"discount"`
	TotalAmount float64 `json:"total_amount"`
	Cancelled   bool    `json:"cancelled"`
}

// SaleResponse representa a resposta de venda
type SaleResponse struct {
	ID          string             `json:"id"`
	Number      int64              `json:"number"`
	CustomerID  string             `json:"customer_id"`
	BranchID    string             `json:"branch_id"`
	TotalAmount float64            `json:"total_amount"`
	Discount    float64            `json:"discount"`
	Cancelled   bool               `json:"cancelled"`
	Items       []SaleItemResponse `json:"items"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   *time.Time         `json:"updated_at,omitempty"`
}

// CancelSaleResponse representa a resposta de cancelamento de venda
type CancelSaleResponse struct {
	ID        string `json:"id"`
	Cancelled bool   `json:"cancelled"`
}

// SaleListResponse representa a resposta de lista de vendas
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Total int            `json:"total"`
}

// ToCreateSaleCommand converte a requisição para o comando de criação
func (r CreateSaleRequest) ToCreateSaleCommand() sales.CreateSaleCommand {
	return sales.CreateSaleCommand{
		CustomerID: r.CustomerID,
		BranchID:   r.BranchID,
		Items:      toItemCommands(r.Items),
	}
}

// ToUpdateSaleCommand converte a requisição para o comando de atualização
func (r UpdateSaleRequest) ToUpdateSaleCommand() sales.UpdateSaleCommand {
	return sales.UpdateSaleCommand{
		ID:    r.ID,
		Items: toItemCommands(r.Items),
	}
}

func toItemCommands(items []SaleItemRequest) []sales.SaleItemCommand {
	commands := make([]sales.SaleItemCommand, len(items))
	for i, item := range items {
		commands[i] = sales.SaleItemCommand{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
			Cancelled: item.Cancelled,
		}
	}
	return commands
}

// ToCreateSaleResponse converte o resultado de criação para DTO
func ToCreateSaleResponse(result *sales.CreateSaleResult) *CreateSaleResponse {
	return &CreateSaleResponse{
		ID:          result.ID,
		Number:      result.Number,
		TotalAmount: result.TotalAmount,
		Discount:    result.Discount,
	}
}

// ToSaleResponse converte o resultado de venda para DTO
func ToSaleResponse(result *sales.SaleResult) *SaleResponse {
	items := make([]SaleItemResponse, len(result.Items))
	for i, item := range result.Items {
		items[i] = SaleItemResponse{
			ID:          item.ID,
			ProductID:   item.ProductID,
			Quantity:    item.Quantity,
			Price:       item.Price,
			Discount:    item.Discount,
			TotalAmount: item.TotalAmount,
			Cancelled:   item.Cancelled,
		}
	}

	return &SaleResponse{
		ID:          result.ID,
		Number:      result.Number,
		CustomerID:  result.CustomerID,
		BranchID:    result.BranchID,
		TotalAmount: result.TotalAmount,
		Discount:    result.Discount,
		Cancelled:   result.Cancelled,
		Items:       items,
		CreatedAt:   result.CreatedAt,
		UpdatedAt:   result.UpdatedAt,
	}
}

// ToCancelSaleResponse converte o resultado de cancelamento para DTO
func ToCancelSaleResponse(result *sales.CancelSaleResult) *CancelSaleResponse {
	return &CancelSaleResponse{
		ID:        result.ID,
		Cancelled: result.Cancelled,
	}
}

// ToSaleListResponse converte a lista de resultados para DTO
func ToSaleListResponse(results []*sales.SaleResult) *SaleListResponse {
	items := make([]SaleResponse, len(results))
	for i, result := range results {
		items[i] = *ToSaleResponse(result)
	}

	return &SaleListResponse{
		Items: items,
		Total: len(items),
	}
}
