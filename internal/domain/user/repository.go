package user

import (
	"context"
	"errors"
)

var (
	// ErrUserNotFound é retornado quando o usuário não existe no repositório
	ErrUserNotFound = errors.New("usuário não encontrado")
	// ErrDuplicateEmail é retornado ao criar um usuário com email já cadastrado
	ErrDuplicateEmail = errors.New("usuário com mesmo email já existe")
)

// Repository define a interface para operações de repositório de usuários
type Repository interface {
	// Create cria um novo usuário
	Create(ctx context.Context, u *User) error

	// FindByID busca um usuário pelo ID
	FindByID(ctx context.Context, id string) (*User, error)

	// FindByEmail busca um usuário pelo email
	FindByEmail(ctx context.Context, email string) (*User, error)
}
