package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	err := NewValidation("campo obrigatório", "valor inválido")

	assert.True(t, IsValidation(err))
	assert.False(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "campo obrigatório")
}

func TestNotFoundError(t *testing.T) {
	err := NewNotFound("venda", "abc-123")

	assert.True(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "venda")
	assert.Contains(t, err.Error(), "abc-123")
}

func TestBusinessRuleError(t *testing.T) {
	err := NewBusinessRule("limite excedido")

	assert.True(t, IsBusinessRule(err))
	assert.False(t, IsValidation(err))
	assert.Equal(t, "limite excedido", err.Error())
}

func TestUnexpectedErrorUnwrap(t *testing.T) {
	cause := errors.New("conexão recusada")
	err := NewUnexpected(cause)

	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, fmt.Errorf("ao salvar: %w", err), cause)
}
