package apperror

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError agrega uma ou mais violações de restrições de campos.
// Nenhuma mutação parcial ocorre quando a validação falha.
type ValidationError struct {
	Messages []string
}

// NewValidation cria um ValidationError com as mensagens informadas
func NewValidation(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}

// NotFoundError indica que o recurso referenciado não existe
type NotFoundError struct {
	Resource string
	ID       string
}

// NewNotFound cria um NotFoundError para o recurso e identificador informados
func NewNotFound(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("registro não encontrado: %s com ID %s", e.Resource, e.ID)
}

// BusinessRuleError indica a violação de uma regra de negócio,
// distinta de uma validação de formato de campos
type BusinessRuleError struct {
	Message string
}

// NewBusinessRule cria um BusinessRuleError com a mensagem informada
func NewBusinessRule(message string) *BusinessRuleError {
	return &BusinessRuleError{Message: message}
}

func (e *BusinessRuleError) Error() string {
	return e.Message
}

// UnexpectedError encapsula falhas de infraestrutura ou persistência.
// Não há retentativa: o erro é propagado como falha fatal da requisição.
type UnexpectedError struct {
	Err error
}

// NewUnexpected encapsula um erro inesperado
func NewUnexpected(err error) *UnexpectedError {
	return &UnexpectedError{Err: err}
}

func (e *UnexpectedError) Error() string {
	return fmt.Sprintf("erro inesperado: %v", e.Err)
}

// Unwrap expõe o erro original para errors.Is/As
func (e *UnexpectedError) Unwrap() error {
	return e.Err
}

// IsValidation verifica se o erro é de validação
func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// IsNotFound verifica se o erro é de recurso não encontrado
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// IsBusinessRule verifica se o erro é de regra de negócio
func IsBusinessRule(err error) bool {
	var target *BusinessRuleError
	return errors.As(err, &target)
}
