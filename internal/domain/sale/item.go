package sale

import (
	"time"

	"github.com/google/uuid"
)

// MaxQuantityPerProduct é o limite de unidades idênticas por produto em uma venda.
// O limite é aplicado na camada de comandos, antes de o item ser construído.
const MaxQuantityPerProduct = 20

// Faixas de desconto por quantidade
const (
	tierTenPercentMin    = 4
	tierTwentyPercentMin = 10
)

// Item representa uma linha de produto precificada dentro de uma venda
type Item struct {
	ID          string     `json:"id"`
	SaleID      string     `json:"sale_id"`
	ProductID   string     `json:"product_id"`
	Quantity    int        `json:"quantity"`
	Price       float64    `json:"price"`
	Discount    float64    `json:"discount"`
	TotalAmount float64    `json:"total_amount"`
	Cancelled   bool       `json:"cancelled"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// newItem cria um novo item de venda com desconto e total derivados
func newItem(saleID, productID string, quantity int, price float64) *Item {
	return &Item{
		ID:          uuid.New().String(),
		SaleID:      saleID,
		ProductID:   productID,
		Quantity:    quantity,
		Price:       price,
		Discount:    calculateDiscount(quantity, price),
		TotalAmount: float64(quantity) * price,
		Cancelled:   false,
		CreatedAt:   time.Now(),
	}
}

// Update substitui quantidade e preço e recalcula os valores derivados
func (i *Item) Update(quantity int, price float64) {
	now := time.Now()
	i.Quantity = quantity
	i.Price = price
	i.Discount = calculateDiscount(quantity, price)
	i.TotalAmount = float64(quantity) * price
	i.UpdatedAt = &now
}

// Cancel marca o item como cancelado, excluindo-o dos totais da venda.
// O item permanece na coleção (exclusão lógica).
func (i *Item) Cancel() {
	now := time.Now()
	i.Cancelled = true
	i.UpdatedAt = &now
}

// calculateDiscount aplica a regra de desconto por faixa de quantidade:
// menos de 4 unidades não há desconto, de 4 a 9 o desconto é de 10%
// e de 10 a 20 o desconto é de 20% sobre o valor bruto da linha
func calculateDiscount(quantity int, price float64) float64 {
	gross := float64(quantity) * price
	switch {
	case quantity >= tierTwentyPercentMin:
		return gross * 0.20
	case quantity >= tierTenPercentMin:
		return gross * 0.10
	default:
		return 0
	}
}
