// Package auth emite tokens de operador para las rutas de escritura.
package auth

import (
	"context"
	"fmt"

	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/Inventario-dashboard/internal/domain"
	"github.com/jhoicas/Inventario-dashboard/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase login de operadores contra hashes bcrypt configurados (AUTH_OPERATORS).
type AuthUseCase struct {
	operators map[string][]byte
	jwtCfg    JWTConfig
}

// NewAuthUseCase construye el caso de uso. operators: nombre → hash bcrypt.
func NewAuthUseCase(operators map[string]string, jwtCfg JWTConfig) *AuthUseCase {
	hashes := make(map[string][]byte, len(operators))
	for name, hash := range operators {
		hashes[name] = []byte(hash)
	}
	return &AuthUseCase{operators: hashes, jwtCfg: jwtCfg}
}

// Enabled indica si hay secret y al menos un operador configurado.
func (uc *AuthUseCase) Enabled() bool {
	return uc.jwtCfg.Secret != "" && len(uc.operators) > 0
}

// Login verifica operador/password y genera el JWT.
// Operador desconocido y password incorrecto devuelven el mismo domain.ErrUnauthorized.
func (uc *AuthUseCase) Login(_ context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Operator == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: operator y password son requeridos", domain.ErrValidation)
	}
	hash, ok := uc.operators[in.Operator]
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword(hash, []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, in.Operator, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:     token,
		Operator:  in.Operator,
		ExpiresIn: uc.jwtCfg.ExpMinutes * 60,
	}, nil
}

// HashPassword genera el hash bcrypt para AUTH_OPERATORS.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", fmt.Errorf("%w: password vacío", domain.ErrValidation)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
