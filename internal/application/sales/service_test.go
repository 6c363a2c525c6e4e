package sales

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/hugohenrick/vendas-api/internal/domain/sale"
	"github.com/hugohenrick/vendas-api/pkg/apperror"
	"github.com/hugohenrick/vendas-api/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memorySaleRepository é um gateway em memória para os testes dos handlers.
// Assim como a implementação real, drena os eventos do agregado após cada
// gravação bem-sucedida.
type memorySaleRepository struct {
	sales      map[string]*sale.Sale
	nextNumber int64
	events     []sale.Event
	failWith   error
}

func newMemorySaleRepository() *memorySaleRepository {
	return &memorySaleRepository{sales: make(map[string]*sale.Sale)}
}

func (r *memorySaleRepository) Create(_ context.Context, s *sale.Sale) (*sale.Sale, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	r.nextNumber++
	s.Number = r.nextNumber
	r.sales[s.ID] = s
	r.events = append(r.events, s.DrainEvents()...)
	return s, nil
}

func (r *memorySaleRepository) FindByID(_ context.Context, id string) (*sale.Sale, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	s, ok := r.sales[id]
	if !ok {
		return nil, sale.ErrSaleNotFound
	}
	return s, nil
}

func (r *memorySaleRepository) Update(_ context.Context, s *sale.Sale) (*sale.Sale, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	r.sales[s.ID] = s
	r.events = append(r.events, s.DrainEvents()...)
	return s, nil
}

func (r *memorySaleRepository) Cancel(_ context.Context, s *sale.Sale) (*sale.Sale, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	r.sales[s.ID] = s
	r.events = append(r.events, s.DrainEvents()...)
	return s, nil
}

func (r *memorySaleRepository) List(_ context.Context) ([]*sale.Sale, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	result := make([]*sale.Sale, 0, len(r.sales))
	for _, s := range r.sales {
		result = append(result, s)
	}
	return result, nil
}

func newTestService(repo *memorySaleRepository) *Service {
	return NewService(repo, logger.NewLogger())
}

func validCreateCommand() CreateSaleCommand {
	return CreateSaleCommand{
		CustomerID: uuid.New().String(),
		BranchID:   uuid.New().String(),
		Items: []SaleItemCommand{
			{ProductID: uuid.New().String(), Quantity: 3, Price: 10.0},
			{ProductID: uuid.New().String(), Quantity: 9, Price: 10.0},
			{ProductID: uuid.New().String(), Quantity: 15, Price: 10.0},
		},
	}
}

func TestCreateSale(t *testing.T) {
	repo := newMemorySaleRepository()
	service := newTestService(repo)

	result, err := service.Create(context.Background(), validCreateCommand())

	require.NoError(t, err)
	assert.NotEmpty(t, result.ID)
	assert.Equal(t, int64(1), result.Number)
	assert.InDelta(t, 270.0, result.TotalAmount, 1e-9)
	assert.InDelta(t, 39.0, result.Discount, 1e-9)

	// Um evento de criação seguido de um de modificação por item
	require.Len(t, repo.events, 4)
	assert.IsType(t, sale.SaleCreatedEvent{}, repo.events[0])
}

func TestCreateSaleValidationErrors(t *testing.T) {
	repo := newMemorySaleRepository()
	service := newTestService(repo)

	cmd := CreateSaleCommand{
		CustomerID: "",
		BranchID:   "not-a-uuid",
		Items: []SaleItemCommand{
			{ProductID: uuid.New().String(), Quantity: 0, Price: -1.0},
		},
	}

	_, err := service.Create(context.Background(), cmd)

	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))

	// Todas as violações são agregadas em uma única falha
	var validationErr *apperror.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.GreaterOrEqual(t, len(validationErr.Messages), 4)
	assert.Empty(t, repo.sales)
}

func TestCreateSaleRequiresItems(t *testing.T) {
	repo := newMemorySaleRepository()
	service := newTestService(repo)

	cmd := validCreateCommand()
	cmd.Items = nil

	_, err := service.Create(context.Background(), cmd)

	assert.True(t, apperror.IsValidation(err))
}

func TestCreateSaleRejectsQuantityAboveLimit(t *testing.T) {
	repo := newMemorySaleRepository()
	service := newTestService(repo)

	cmd := validCreateCommand()
	cmd.Items = append(cmd.Items, SaleItemCommand{
		ProductID: uuid.New().String(),
		Quantity:  21,
		Price:     10.0,
	})

	_, err := service.Create(context.Background(), cmd)

	require.Error(t, err)
	assert.True(t, apperror.IsBusinessRule(err))
	// Nada é persistido: o agregado em memória é descartado
	assert.Empty(t, repo.sales)
	assert.Empty(t, repo.events)
}

func TestCreateSaleUnexpectedError(t *testing.T) {
	repo := newMemorySaleRepository()
	repo.failWith = errors.New("conexão recusada")
	service := newTestService(repo)

	_, err := service.Create(context.Background(), validCreateCommand())

	require.Error(t, err)
	assert.False(t, apperror.IsValidation(err))
	assert.False(t, apperror.IsBusinessRule(err))
	assert.False(t, apperror.IsNotFound(err))
}

func createSale(t *testing.T, service *Service, cmd CreateSaleCommand) *CreateSaleResult {
	t.Helper()
	result, err := service.Create(context.Background(), cmd)
	require.NoError(t, err)
	return result
}

func TestUpdateSaleNotFound(t *testing.T) {
	repo := newMemorySaleRepository()
	service := newTestService(repo)

	missingID := uuid.New().String()
	_, err := service.Update(context.Background(), UpdateSaleCommand{
		ID: missingID,
		Items: []SaleItemCommand{
			{ProductID: uuid.New().String(), Quantity: 1, Price: 10.0},
		},
	})

	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
	assert.Contains(t, err.Error(), missingID)
}

func TestUpdateSaleReplacesQuantityAndPrice(t *testing.T) {
	repo := newMemorySaleRepository()
	service := newTestService(repo)

	cmd := validCreateCommand()
	created := createSale(t, service, cmd)

	updated, err := service.Update(context.Background(), UpdateSaleCommand{
		ID: created.ID,
		Items: []SaleItemCommand{
			{ProductID: cmd.Items[0].ProductID, Quantity: 2, Price: 15.0},
		},
	})

	require.NoError(t, err)
	// A linha passa de 3x10 para 2x15: o total geral não muda
	assert.InDelta(t, 270.0, updated.TotalAmount, 1e-9)
	assert.Len(t, updated.Items, 3)
}

func TestUpdateSaleAddsUnknownProduct(t *testing.T) {
	repo := newMemorySaleRepository()
	service := newTestService(repo)

	created := createSale(t, service, validCreateCommand())

	updated, err := service.Update(context.Background(), UpdateSaleCommand{
		ID: created.ID,
		Items: []SaleItemCommand{
			{ProductID: uuid.New().String(), Quantity: 4, Price: 10.0},
		},
	})

	require.NoError(t, err)
	assert.Len(t, updated.Items, 4)
	assert.InDelta(t, 310.0, updated.TotalAmount, 1e-9)
	assert.InDelta(t, 43.0, updated.Discount, 1e-9)
}

func TestUpdateSaleCancelsItem(t *testing.T) {
	repo := newMemorySaleRepository()
	service := newTestService(repo)

	cmd := validCreateCommand()
	created := createSale(t, service, cmd)

	updated, err := service.Update(context.Background(), UpdateSaleCommand{
		ID: created.ID,
		Items: []SaleItemCommand{
			{ProductID: cmd.Items[2].ProductID, Quantity: 15, Price: 10.0, Cancelled: true},
		},
	})

	require.NoError(t, err)
	assert.Len(t, updated.Items, 3)
	assert.True(t, updated.Items[2].Cancelled)
	assert.InDelta(t, 120.0, updated.TotalAmount, 1e-9)
	assert.InDelta(t, 9.0, updated.Discount, 1e-9)

	var itemCancelled bool
	for _, event := range repo.events {
		if _, ok := event.(sale.ItemCancelledEvent); ok {
			itemCancelled = true
		}
	}
	assert.True(t, itemCancelled)
}

func TestUpdateSaleRejectsQuantityAboveLimit(t *testing.T) {
	repo := newMemorySaleRepository()
	service := newTestService(repo)

	cmd := validCreateCommand()
	created := createSale(t, service, cmd)

	_, err := service.Update(context.Background(), UpdateSaleCommand{
		ID: created.ID,
		Items: []SaleItemCommand{
			{ProductID: cmd.Items[0].ProductID, Quantity: 21, Price: 10.0},
		},
	})

	require.Error(t, err)
	assert.True(t, apperror.IsBusinessRule(err))
}

func TestCancelSale(t *testing.T) {
	repo := newMemorySaleRepository()
	service := newTestService(repo)

	created := createSale(t, service, validCreateCommand())

	result, err := service.Cancel(context.Background(), CancelSaleCommand{ID: created.ID})

	require.NoError(t, err)
	assert.True(t, result.Cancelled)

	// Exatamente um evento de cancelamento de venda
	var cancelledEvents int
	for _, event := range repo.events {
		if _, ok := event.(sale.SaleCancelledEvent); ok {
			cancelledEvents++
		}
	}
	assert.Equal(t, 1, cancelledEvents)
}

func TestCancelSaleNotFound(t *testing.T) {
	repo := newMemorySaleRepository()
	service := newTestService(repo)

	missingID := uuid.New().String()
	_, err := service.Cancel(context.Background(), CancelSaleCommand{ID: missingID})

	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
	assert.Contains(t, err.Error(), missingID)
}

func TestGetSale(t *testing.T) {
	repo := newMemorySaleRepository()
	service := newTestService(repo)

	created := createSale(t, service, validCreateCommand())

	result, err := service.Get(context.Background(), GetSaleQuery{ID: created.ID})

	require.NoError(t, err)
	assert.Equal(t, created.ID, result.ID)
	assert.Len(t, result.Items, 3)
	assert.InDelta(t, 270.0, result.TotalAmount, 1e-9)
}

func TestGetSaleNotFound(t *testing.T) {
	repo := newMemorySaleRepository()
	service := newTestService(repo)

	_, err := service.Get(context.Background(), GetSaleQuery{ID: uuid.New().String()})

	assert.True(t, apperror.IsNotFound(err))
}

func TestGetSaleInvalidID(t *testing.T) {
	repo := newMemorySaleRepository()
	service := newTestService(repo)

	_, err := service.Get(context.Background(), GetSaleQuery{ID: "abc"})

	assert.True(t, apperror.IsValidation(err))
}

func TestListSales(t *testing.T) {
	repo := newMemorySaleRepository()
	service := newTestService(repo)

	createSale(t, service, validCreateCommand())
	createSale(t, service, validCreateCommand())

	results, err := service.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, results, 2)
}
