package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/Inventario-dashboard/internal/domain"
)

// statusFor traduce un error de dominio a (status HTTP, código).
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return fiber.StatusBadRequest, "VALIDATION"
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrStoreUnavailable):
		return fiber.StatusServiceUnavailable, "STORE_UNAVAILABLE"
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, "UNAUTHORIZED"
	default:
		return fiber.StatusInternalServerError, "INTERNAL"
	}
}

// Mensajes visibles para fallos del servidor; el error original solo va al log.
const (
	msgStoreUnavailable = "El almacén de datos no está disponible. Inténtelo de nuevo más tarde."
	msgInternal         = "Error interno del servidor."
)

// publicMessage devuelve el texto para el cliente. Los errores 4xx describen la petición;
// los 5xx pueden llevar host, puerto o detalles del driver y se sustituyen.
func publicMessage(status int, err error) string {
	switch {
	case status == fiber.StatusServiceUnavailable:
		return msgStoreUnavailable
	case status >= fiber.StatusInternalServerError:
		return msgInternal
	default:
		return err.Error()
	}
}

// respondError escribe dto.ErrorResponse con el status correspondiente al error.
func respondError(c *fiber.Ctx, err error) error {
	status, code := statusFor(err)
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: publicMessage(status, err)})
}
