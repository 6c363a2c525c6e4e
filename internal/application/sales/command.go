package sales

// SaleItemCommand representa uma linha de item dentro de um comando de venda
type SaleItemCommand struct {
	ProductID string  `validate:"required,uuid"`
	Quantity  int     `validate:"required,gt=0"`
	Price     float64 `validate:"required,gt=0"`
	Cancelled bool
}

// CreateSaleCommand é o comando para criação de uma venda
type CreateSaleCommand struct {
	CustomerID string            `validate:"required,uuid"`
	BranchID   string            `validate:"required,uuid"`
	Items      []SaleItemCommand `validate:"required,min=1,dive"`
}

// UpdateSaleCommand é o comando para atualização dos itens de uma venda
type UpdateSaleCommand struct {
	ID    string            `validate:"required,uuid"`
	Items []SaleItemCommand `validate:"required,min=1,dive"`
}

// CancelSaleCommand é o comando para cancelamento de uma venda
type CancelSaleCommand struct {
	ID string `validate:"required,uuid"`
}

// GetSaleQuery é a consulta de uma venda pelo ID
type GetSaleQuery struct {
	ID string `validate:"required,uuid"`
}
