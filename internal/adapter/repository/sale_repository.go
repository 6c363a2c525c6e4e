package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/vendas-api/internal/adapter/notification"
	"github.com/hugohenrick/vendas-api/internal/domain/sale"
	"github.com/hugohenrick/vendas-api/pkg/logger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SaleRepository implementa a interface sale.Repository sobre PostgreSQL.
// Após cada gravação bem-sucedida, os eventos de domínio pendentes são
// drenados do agregado e despachados para o sink de notificações.
type SaleRepository struct {
	db     *pgxpool.Pool
	sink   notification.Sink
	logger logger.Logger
}

// NewSaleRepository cria uma nova instância de SaleRepository
func NewSaleRepository(db *pgxpool.Pool, sink notification.Sink, logger logger.Logger) sale.Repository {
	return &SaleRepository{
		db:     db,
		sink:   sink,
		logger: logger,
	}
}

// Create implementa sale.Repository.Create
func (r *SaleRepository) Create(ctx context.Context, s *sale.Sale) (*sale.Sale, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao iniciar transação: %w", err)
	}
	defer tx.Rollback(ctx)

	// O número sequencial da venda é atribuído pelo banco
	err = tx.QueryRow(ctx,
		`INSERT INTO sales (
			id, customer_id, branch_id, total_amount, discount, cancelled,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING number`,
		s.ID, s.CustomerID, s.BranchID, s.TotalAmount, s.Discount,
		s.Cancelled, s.CreatedAt, s.UpdatedAt).Scan(&s.Number)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar venda: %w", err)
	}

	for _, item := range s.Items {
		if err := r.insertItem(ctx, tx, item); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("erro ao fazer commit: %w", err)
	}

	r.dispatchEvents(ctx, s)

	return s, nil
}

// FindByID implementa sale.Repository.FindByID
func (r *SaleRepository) FindByID(ctx context.Context, id string) (*sale.Sale, error) {
	var s sale.Sale

	err := r.db.QueryRow(ctx,
		`SELECT id, number, customer_id, branch_id, total_amount, discount,
			cancelled, created_at, updated_at
		FROM sales WHERE id = $1`,
		id).Scan(
		&s.ID, &s.Number, &s.CustomerID, &s.BranchID, &s.TotalAmount,
		&s.Discount, &s.Cancelled, &s.CreatedAt, &s.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sale.ErrSaleNotFound
		}
		return nil, fmt.Errorf("erro ao buscar venda: %w", err)
	}

	items, err := r.findItems(ctx, s.ID)
	if err != nil {
		return nil, err
	}
	s.Items = items

	return &s, nil
}

// Update implementa sale.Repository.Update
func (r *SaleRepository) Update(ctx context.Context, s *sale.Sale) (*sale.Sale, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao iniciar transação: %w", err)
	}
	defer tx.Rollback(ctx)

	result, err := tx.Exec(ctx,
		`UPDATE sales SET total_amount = $1, discount = $2, updated_at = $3
		WHERE id = $4`,
		s.TotalAmount, s.Discount, s.UpdatedAt, s.ID)
	if err != nil {
		return nil, fmt.Errorf("erro ao atualizar venda: %w", err)
	}
	if result.RowsAffected() == 0 {
		return nil, sale.ErrSaleNotFound
	}

	// Itens novos são inseridos e itens existentes têm quantidade, preço,
	// desconto, total e cancelamento regravados
	for _, item := range s.Items {
		if err := r.upsertItem(ctx, tx, item); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("erro ao fazer commit: %w", err)
	}

	r.dispatchEvents(ctx, s)

	return s, nil
}

// Cancel implementa sale.Repository.Cancel.
// Grava apenas a flag de cancelamento e o carimbo de atualização.
func (r *SaleRepository) Cancel(ctx context.Context, s *sale.Sale) (*sale.Sale, error) {
	result, err := r.db.Exec(ctx,
		`UPDATE sales SET cancelled = $1, updated_at = $2 WHERE id = $3`,
		s.Cancelled, s.UpdatedAt, s.ID)
	if err != nil {
		return nil, fmt.Errorf("erro ao cancelar venda: %w", err)
	}
	if result.RowsAffected() == 0 {
		return nil, sale.ErrSaleNotFound
	}

	r.dispatchEvents(ctx, s)

	return s, nil
}

// List implementa sale.Repository.List
func (r *SaleRepository) List(ctx context.Context) ([]*sale.Sale, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, number, customer_id, branch_id, total_amount, discount,
			cancelled, created_at, updated_at
		FROM sales
		ORDER BY number ASC`)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar vendas: %w", err)
	}
	defer rows.Close()

	sales := make([]*sale.Sale, 0)
	for rows.Next() {
		var s sale.Sale
		err := rows.Scan(
			&s.ID, &s.Number, &s.CustomerID, &s.BranchID, &s.TotalAmount,
			&s.Discount, &s.Cancelled, &s.CreatedAt, &s.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler venda: %w", err)
		}
		sales = append(sales, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	for _, s := range sales {
		items, err := r.findItems(ctx, s.ID)
		if err != nil {
			return nil, err
		}
		s.Items = items
	}

	return sales, nil
}

// findItems carrega os itens de uma venda preservando a ordem de inserção
func (r *SaleRepository) findItems(ctx context.Context, saleID string) ([]*sale.Item, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, sale_id, product_id, quantity, price, discount,
			total_amount, cancelled, created_at, updated_at
		FROM sale_items
		WHERE sale_id = $1
		ORDER BY created_at ASC`,
		saleID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar itens da venda: %w", err)
	}
	defer rows.Close()

	items := make([]*sale.Item, 0)
	for rows.Next() {
		var item sale.Item
		err := rows.Scan(
			&item.ID, &item.SaleID, &item.ProductID, &item.Quantity,
			&item.Price, &item.Discount, &item.TotalAmount, &item.Cancelled,
			&item.CreatedAt, &item.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler item da venda: %w", err)
		}
		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return items, nil
}

func (r *SaleRepository) insertItem(ctx context.Context, tx pgx.Tx, item *sale.Item) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO sale_items (
			id, sale_id, product_id, quantity, price, discount,
			total_amount, cancelled, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		item.ID, item.SaleID, item.ProductID, item.Quantity, item.Price,
		item.Discount, item.TotalAmount, item.Cancelled, item.CreatedAt,
		item.UpdatedAt)
	if err != nil {
		return fmt.Errorf("erro ao criar item da venda: %w", err)
	}
	return nil
}

func (r *SaleRepository) upsertItem(ctx context.Context, tx pgx.Tx, item *sale.Item) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO sale_items (
			id, sale_id, product_id, quantity, price, discount,
			total_amount, cancelled, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE SET
			quantity = EXCLUDED.quantity,
			price = EXCLUDED.price,
			discount = EXCLUDED.discount,
			total_amount = EXCLUDED.total_amount,
			cancelled = EXCLUDED.cancelled,
			updated_at = EXCLUDED.updated_at`,
		item.ID, item.SaleID, item.ProductID, item.Quantity, item.Price,
		item.Discount, item.TotalAmount, item.Cancelled, item.CreatedAt,
		item.UpdatedAt)
	if err != nil {
		return fmt.Errorf("erro ao gravar item da venda: %w", err)
	}
	return nil
}

// dispatchEvents drena os eventos pendentes do agregado e os entrega ao
// sink em ordem de emissão. Falhas são registradas e não desfazem a
// gravação já confirmada.
func (r *SaleRepository) dispatchEvents(ctx context.Context, s *sale.Sale) {
	for _, event := range s.DrainEvents() {
		if err := r.sink.Notify(ctx, event); err != nil {
			r.logger.Error("erro ao notificar evento de domínio", "event", event.Name(), "error", err)
		}
	}
}
