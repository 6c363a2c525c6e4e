package sale

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSale(t *testing.T) *Sale {
	t.Helper()
	return NewSale(uuid.New().String(), uuid.New().String())
}

// assertTotals verifica o invariante do agregado: desconto e total
// sempre iguais à soma dos itens não cancelados
func assertTotals(t *testing.T, s *Sale) {
	t.Helper()
	discount := 0.0
	total := 0.0
	for _, item := range s.Items {
		if item.Cancelled {
			continue
		}
		discount += item.Discount
		total += item.TotalAmount
	}
	assert.InDelta(t, discount, s.Discount, 1e-9)
	assert.InDelta(t, total, s.TotalAmount, 1e-9)
}

func TestNewSale(t *testing.T) {
	customerID := uuid.New().String()
	branchID := uuid.New().String()

	s := NewSale(customerID, branchID)

	assert.NotEmpty(t, s.ID)
	assert.Equal(t, customerID, s.CustomerID)
	assert.Equal(t, branchID, s.BranchID)
	assert.InDelta(t, 0.0, s.TotalAmount, 1e-9)
	assert.InDelta(t, 0.0, s.Discount, 1e-9)
	assert.False(t, s.Cancelled)
	assert.Empty(t, s.Items)

	events := s.DrainEvents()
	require.Len(t, events, 1)
	assert.Equal(t, SaleCreatedEvent{SaleID: s.ID}, events[0])
}

func TestSaleAddItem(t *testing.T) {
	s := newTestSale(t)
	s.DrainEvents()

	productID := uuid.New().String()
	require.NoError(t, s.AddItem(productID, 3, 10.0))
	require.NoError(t, s.AddItem(uuid.New().String(), 9, 10.0))
	require.NoError(t, s.AddItem(uuid.New().String(), 15, 10.0))

	assert.Len(t, s.Items, 3)
	assert.InDelta(t, 270.0, s.TotalAmount, 1e-9)
	assert.InDelta(t, 39.0, s.Discount, 1e-9)
	assertTotals(t, s)

	events := s.DrainEvents()
	require.Len(t, events, 3)
	for _, event := range events {
		assert.Equal(t, SaleModifiedEvent{SaleID: s.ID}, event)
	}

	// Um segundo AddItem para o mesmo produto cria uma segunda linha
	require.NoError(t, s.AddItem(productID, 2, 5.0))
	assert.Len(t, s.Items, 4)
	assertTotals(t, s)
}

func TestSaleUpdateItem(t *testing.T) {
	s := newTestSale(t)
	productID := uuid.New().String()
	require.NoError(t, s.AddItem(productID, 1, 10.0))
	require.NoError(t, s.AddItem(uuid.New().String(), 4, 10.0))
	before := s.TotalAmount
	s.DrainEvents()

	require.NoError(t, s.UpdateItem(productID, 2, 15.0))

	assert.InDelta(t, 30.0, s.Items[0].TotalAmount, 1e-9)
	assert.InDelta(t, before+20.0, s.TotalAmount, 1e-9)
	assertTotals(t, s)

	events := s.DrainEvents()
	require.Len(t, events, 1)
	assert.Equal(t, SaleModifiedEvent{SaleID: s.ID}, events[0])
}

func TestSaleUpdateItemNotFound(t *testing.T) {
	s := newTestSale(t)
	require.NoError(t, s.AddItem(uuid.New().String(), 1, 10.0))

	err := s.UpdateItem(uuid.New().String(), 2, 15.0)

	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestSaleCancelItem(t *testing.T) {
	s := newTestSale(t)
	productID := uuid.New().String()
	require.NoError(t, s.AddItem(productID, 10, 10.0))
	require.NoError(t, s.AddItem(uuid.New().String(), 3, 5.0))
	s.DrainEvents()

	require.NoError(t, s.CancelItem(productID))

	// O item cancelado sai dos totais mas permanece na coleção
	assert.Len(t, s.Items, 2)
	assert.True(t, s.Items[0].Cancelled)
	assert.InDelta(t, 15.0, s.TotalAmount, 1e-9)
	assert.InDelta(t, 0.0, s.Discount, 1e-9)
	assertTotals(t, s)

	events := s.DrainEvents()
	require.Len(t, events, 2)
	assert.Equal(t, SaleModifiedEvent{SaleID: s.ID}, events[0])
	assert.Equal(t, ItemCancelledEvent{SaleID: s.ID, ItemID: s.Items[0].ID}, events[1])
}

func TestSaleCancelItemNotFound(t *testing.T) {
	s := newTestSale(t)

	err := s.CancelItem(uuid.New().String())

	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestSaleCancel(t *testing.T) {
	s := newTestSale(t)
	require.NoError(t, s.AddItem(uuid.New().String(), 4, 10.0))
	totalBefore := s.TotalAmount
	s.DrainEvents()

	s.Cancel()

	assert.True(t, s.Cancelled)
	// Uma venda cancelada preserva os últimos totais calculados
	assert.InDelta(t, totalBefore, s.TotalAmount, 1e-9)

	events := s.DrainEvents()
	require.Len(t, events, 1)
	assert.Equal(t, SaleCancelledEvent{SaleID: s.ID}, events[0])
}

func TestSaleCancelIsIdempotent(t *testing.T) {
	s := newTestSale(t)
	s.DrainEvents()

	s.Cancel()
	s.Cancel()

	assert.True(t, s.Cancelled)
	// A segunda chamada não enfileira um novo evento
	assert.Len(t, s.DrainEvents(), 1)
}

func TestSaleRejectsMutationAfterCancel(t *testing.T) {
	s := newTestSale(t)
	productID := uuid.New().String()
	require.NoError(t, s.AddItem(productID, 2, 10.0))

	s.Cancel()

	assert.ErrorIs(t, s.AddItem(uuid.New().String(), 1, 5.0), ErrSaleCancelled)
	assert.ErrorIs(t, s.UpdateItem(productID, 3, 10.0), ErrSaleCancelled)
	assert.ErrorIs(t, s.CancelItem(productID), ErrSaleCancelled)
}

func TestSaleDrainEventsClearsQueue(t *testing.T) {
	s := newTestSale(t)
	require.NoError(t, s.AddItem(uuid.New().String(), 1, 1.0))

	first := s.DrainEvents()
	second := s.DrainEvents()

	assert.Len(t, first, 2)
	assert.Empty(t, second)
}
