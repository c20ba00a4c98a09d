package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Los adaptadores envuelven estos sentinels con %w; los llamadores distinguen con errors.Is.
var (
	ErrValidation       = errors.New("datos inválidos")
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrStoreUnavailable = errors.New("almacén de datos no disponible")
	ErrUnauthorized     = errors.New("no autorizado")
)
