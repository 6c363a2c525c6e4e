package sale

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrSaleCancelled é retornado ao tentar alterar itens de uma venda cancelada
	ErrSaleCancelled = errors.New("venda cancelada não pode ser alterada")
	// ErrItemNotFound é retornado quando o produto não existe na venda
	ErrItemNotFound = errors.New("item não encontrado na venda")
)

// Sale é o agregado que representa uma transação comercial.
// A venda é dona exclusiva da coleção de itens: toda mutação passa pelas
// operações do agregado, que recalculam os totais derivados e enfileiram
// os eventos de domínio correspondentes.
type Sale struct {
	ID          string     `json:"id"`
	Number      int64      `json:"number"`
	CustomerID  string     `json:"customer_id"`
	BranchID    string     `json:"branch_id"`
	TotalAmount float64    `json:"total_amount"`
	Discount    float64    `json:"discount"`
	Cancelled   bool       `json:"cancelled"`
	Items       []*Item    `json:"items"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`

	events []Event
}

// NewSale cria uma nova venda para o cliente e a filial informados.
// O número sequencial da venda é atribuído pela camada de persistência.
func NewSale(customerID, branchID string) *Sale {
	s := &Sale{
		ID:         uuid.New().String(),
		CustomerID: customerID,
		BranchID:   branchID,
		Items:      make([]*Item, 0),
		CreatedAt:  time.Now(),
	}
	s.addEvent(SaleCreatedEvent{SaleID: s.ID})
	return s
}

// AddItem adiciona uma nova linha de produto à venda.
// Não há fusão de linhas duplicadas: um segundo AddItem para o mesmo
// produto cria uma segunda linha.
func (s *Sale) AddItem(productID string, quantity int, price float64) error {
	if s.Cancelled {
		return ErrSaleCancelled
	}

	s.Items = append(s.Items, newItem(s.ID, productID, quantity, price))
	s.recalculate()
	s.addEvent(SaleModifiedEvent{SaleID: s.ID})

	return nil
}

// UpdateItem substitui quantidade e preço do primeiro item do produto informado
func (s *Sale) UpdateItem(productID string, quantity int, price float64) error {
	if s.Cancelled {
		return ErrSaleCancelled
	}

	item := s.findItem(productID)
	if item == nil {
		return ErrItemNotFound
	}

	item.Update(quantity, price)
	s.recalculate()
	s.addEvent(SaleModifiedEvent{SaleID: s.ID})

	return nil
}

// CancelItem cancela o primeiro item do produto informado.
// O item cancelado deixa de contribuir para os totais, mas permanece na coleção.
func (s *Sale) CancelItem(productID string) error {
	if s.Cancelled {
		return ErrSaleCancelled
	}

	item := s.findItem(productID)
	if item == nil {
		return ErrItemNotFound
	}

	item.Cancel()
	s.recalculate()
	s.addEvent(SaleModifiedEvent{SaleID: s.ID})
	s.addEvent(ItemCancelledEvent{SaleID: s.ID, ItemID: item.ID})

	return nil
}

// Cancel marca a venda como cancelada. A operação é irreversível e
// idempotente: uma segunda chamada não altera o estado nem enfileira
// um novo evento. Os totais da venda são preservados.
func (s *Sale) Cancel() {
	if s.Cancelled {
		return
	}

	now := time.Now()
	s.Cancelled = true
	s.UpdatedAt = &now
	s.addEvent(SaleCancelledEvent{SaleID: s.ID})
}

// HasItem verifica se a venda possui uma linha para o produto informado
func (s *Sale) HasItem(productID string) bool {
	return s.findItem(productID) != nil
}

// DrainEvents retorna os eventos pendentes e limpa a fila.
// Deve ser chamado uma única vez pela camada de persistência,
// após a gravação bem-sucedida.
func (s *Sale) DrainEvents() []Event {
	events := s.events
	s.events = nil
	return events
}

// recalculate recalcula o desconto e o total da venda somando os
// itens não cancelados. Obrigatório após qualquer mutação de item.
func (s *Sale) recalculate() {
	now := time.Now()
	discount := 0.0
	total := 0.0
	for _, item := range s.Items {
		if item.Cancelled {
			continue
		}
		discount += item.Discount
		total += item.TotalAmount
	}
	s.Discount = discount
	s.TotalAmount = total
	s.UpdatedAt = &now
}

// findItem localiza o primeiro item do produto informado
func (s *Sale) findItem(productID string) *Item {
	for _, item := range s.Items {
		if item.ProductID == productID {
			return item
		}
	}
	return nil
}

func (s *Sale) addEvent(event Event) {
	s.events = append(s.events, event)
}
