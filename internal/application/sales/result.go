package sales

import (
	"time"

	"github.com/hugohenrick/vendas-api/internal/domain/sale"
)

// CreateSaleResult resume a venda recém-criada
type CreateSaleResult struct {
	ID          string
	Number      int64
	TotalAmount float64
	Discount    float64
}

// SaleItemResult representa um item nos resultados de venda
type SaleItemResult struct {
	ID          string
	ProductID   string
	Quantity    int
	Price       float64
	Discount    float64
	TotalAmount float64
	Cancelled   bool
}

// SaleResult representa o estado completo de uma venda
type SaleResult struct {
	ID          string
	Number      int64
	CustomerID  string
	BranchID    string
	TotalAmount float64
	Discount    float64
	Cancelled   bool
	Items       []SaleItemResult
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// CancelSaleResult resume a venda cancelada
type CancelSaleResult struct {
	ID        string
	Cancelled bool
}

// toSaleResult converte o agregado para o resultado da operação
func toSaleResult(s *sale.Sale) *SaleResult {
	items := make([]SaleItemResult, len(s.Items))
	for i, item := range s.Items {
		items[i] = SaleItemResult{
			ID:          item.ID,
			ProductID:   item.ProductID,
			Quantity:    item.Quantity,
			Price:       item.Price,
			Discount:    item.Discount,
			TotalAmount: item.TotalAmount,
			Cancelled:   item.Cancelled,
		}
	}

	return &SaleResult{
		ID:          s.ID,
		Number:      s.Number,
		CustomerID:  s.CustomerID,
		BranchID:    s.BranchID,
		TotalAmount: s.TotalAmount,
		Discount:    s.Discount,
		Cancelled:   s.Cancelled,
		Items:       items,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}
