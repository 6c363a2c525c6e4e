package sale

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCalculateDiscount(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
		price    float64
		expected float64
	}{
		{"sem desconto com 1 unidade", 1, 10.0, 0},
		{"sem desconto com 3 unidades", 3, 10.0, 0},
		{"10% com 4 unidades", 4, 10.0, 4.0},
		{"10% com 9 unidades", 9, 10.0, 9.0},
		{"20% com 10 unidades", 10, 10.0, 20.0},
		{"20% com 15 unidades", 15, 10.0, 30.0},
		{"20% com 20 unidades", 20, 10.0, 40.0},
		{"preço fracionado", 5, 2.50, 1.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, calculateDiscount(tt.quantity, tt.price), 1e-9)
		})
	}
}

func TestNewItem(t *testing.T) {
	saleID := uuid.New().String()
	productID := uuid.New().String()

	item := newItem(saleID, productID, 5, 10.0)

	assert.NotEmpty(t, item.ID)
	assert.Equal(t, saleID, item.SaleID)
	assert.Equal(t, productID, item.ProductID)
	assert.Equal(t, 5, item.Quantity)
	assert.InDelta(t, 10.0, item.Price, 1e-9)
	assert.InDelta(t, 5.0, item.Discount, 1e-9)
	// O total da linha é bruto; o desconto é controlado separadamente
	assert.InDelta(t, 50.0, item.TotalAmount, 1e-9)
	assert.False(t, item.Cancelled)
	assert.Nil(t, item.UpdatedAt)
}

func TestItemUpdate(t *testing.T) {
	item := newItem(uuid.New().String(), uuid.New().String(), 1, 10.0)

	item.Update(2, 15.0)

	assert.Equal(t, 2, item.Quantity)
	assert.InDelta(t, 15.0, item.Price, 1e-9)
	assert.InDelta(t, 30.0, item.TotalAmount, 1e-9)
	assert.InDelta(t, 0.0, item.Discount, 1e-9)
	assert.NotNil(t, item.UpdatedAt)
}

func TestItemCancel(t *testing.T) {
	item := newItem(uuid.New().String(), uuid.New().String(), 4, 10.0)

	item.Cancel()

	assert.True(t, item.Cancelled)
	assert.NotNil(t, item.UpdatedAt)
}
