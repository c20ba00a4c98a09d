package dto

// LoginRequest credenciales de operador.
type LoginRequest struct {
	Operator string `json:"operator" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token Bearer para las rutas de escritura.
type LoginResponse struct {
	Token     string `json:"token"`
	Operator  string `json:"operator"`
	ExpiresIn int    `json:"expires_in"` // segundos
}
