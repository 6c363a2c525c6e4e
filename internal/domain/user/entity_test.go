package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	u, err := NewUser("Maria", "maria@example.com", "senha-forte", RoleAdmin)

	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, RoleAdmin, u.Role)
	assert.True(t, u.Active)
	// A senha é armazenada apenas em hash
	assert.NotEqual(t, "senha-forte", u.Password)
	assert.True(t, u.CheckPassword("senha-forte"))
	assert.False(t, u.CheckPassword("senha-errada"))
}

func TestNewUserRequiredFields(t *testing.T) {
	_, err := NewUser("", "maria@example.com", "senha", RoleStaff)
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = NewUser("Maria", "", "senha", RoleStaff)
	assert.ErrorIs(t, err, ErrEmptyEmail)

	_, err = NewUser("Maria", "maria@example.com", "", RoleStaff)
	assert.ErrorIs(t, err, ErrEmptyPassword)
}

func TestDeactivate(t *testing.T) {
	u, err := NewUser("Maria", "maria@example.com", "senha", RoleStaff)
	require.NoError(t, err)

	u.Deactivate()

	assert.False(t, u.IsActive())
}
