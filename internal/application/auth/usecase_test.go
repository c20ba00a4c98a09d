package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-dashboard/internal/application/auth"
	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/Inventario-dashboard/internal/domain"
	"github.com/jhoicas/Inventario-dashboard/pkg/jwt"
)

const secret = "test-secret"

func newAuth(t *testing.T) *auth.AuthUseCase {
	t.Helper()
	hash, err := auth.HashPassword("correct horse")
	require.NoError(t, err)
	return auth.NewAuthUseCase(map[string]string{"ania": hash}, auth.JWTConfig{Secret: secret, ExpMinutes: 30, Issuer: "test"})
}

func TestLogin_OK(t *testing.T) {
	uc := newAuth(t)
	require.True(t, uc.Enabled())

	out, err := uc.Login(context.Background(), dto.LoginRequest{Operator: "ania", Password: "correct horse"})
	require.NoError(t, err)
	assert.Equal(t, "ania", out.Operator)
	assert.Equal(t, 1800, out.ExpiresIn)

	claims, err := jwt.Parse(secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "ania", claims.Operator)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	uc := newAuth(t)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Operator: "ania", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Operator: "nobody", Password: "correct horse"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized, "operador desconocido: mismo error")

	_, err = uc.Login(context.Background(), dto.LoginRequest{Operator: "ania"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEnabled_SinOperadores(t *testing.T) {
	uc := auth.NewAuthUseCase(nil, auth.JWTConfig{Secret: secret})
	assert.False(t, uc.Enabled())
}
