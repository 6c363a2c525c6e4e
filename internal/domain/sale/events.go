package sale

// Event representa um evento de domínio enfileirado pelo agregado.
// Os eventos são drenados uma única vez pela camada de persistência
// após a gravação bem-sucedida e despachados em ordem de emissão.
type Event interface {
	// Name retorna o nome do evento
	Name() string
}

// SaleCreatedEvent informa que uma nova venda foi criada
type SaleCreatedEvent struct {
	SaleID string
}

// Name implementa Event
func (e SaleCreatedEvent) Name() string { return "sale.created" }

// SaleModifiedEvent informa que uma venda foi modificada
type SaleModifiedEvent struct {
	SaleID string
}

// Name implementa Event
func (e SaleModifiedEvent) Name() string { return "sale.modified" }

// ItemCancelledEvent informa que um item foi cancelado em uma venda
type ItemCancelledEvent struct {
	SaleID string
	ItemID string
}

// Name implementa Event
func (e ItemCancelledEvent) Name() string { return "sale.item_cancelled" }

// SaleCancelledEvent informa que uma venda foi cancelada
type SaleCancelledEvent struct {
	SaleID string
}

// Name implementa Event
func (e SaleCancelledEvent) Name() string { return "sale.cancelled" }
