package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jhoicas/Inventario-dashboard/internal/domain"
)

// Códigos SQLSTATE que indican datos inválidos del llamador, no fallo del almacén.
var validationCodes = map[string]bool{
	"23502": true, // not_null_violation
	"23503": true, // foreign_key_violation (kategoria_id inexistente)
	"23514": true, // check_violation (liczba >= 0, cena >= 0)
	"22003": true, // numeric_value_out_of_range
	"22P02": true, // invalid_text_representation
}

// storeError clasifica un error de pgx: violaciones de constraint → domain.ErrValidation;
// cualquier otro fallo (red, autenticación, timeout, backend) → domain.ErrStoreUnavailable.
// El error original queda envuelto para diagnóstico.
func storeError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrValidation) || errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrStoreUnavailable) {
		return err
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && validationCodes[pgErr.Code] {
		return fmt.Errorf("%s: %w: %s", op, domain.ErrValidation, pgErr.Message)
	}
	return fmt.Errorf("%s: %w: %w", op, domain.ErrStoreUnavailable, err)
}
