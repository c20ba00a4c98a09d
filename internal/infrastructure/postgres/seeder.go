package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
)

// Seeder inserta datos de demostración de forma idempotente (por nombre).
type Seeder struct {
	q Querier
}

// NewSeeder construye el seeder sobre pool o tx.
func NewSeeder(q Querier) *Seeder {
	return &Seeder{q: q}
}

// EnsureCategory devuelve el ID de la categoría con ese nombre, creándola si no existe.
func (s *Seeder) EnsureCategory(ctx context.Context, name string) (int64, bool, error) {
	var id int64
	err := s.q.QueryRow(ctx, `SELECT id FROM kategoria WHERE nazwa = $1 ORDER BY id LIMIT 1`, name).Scan(&id)
	if err == nil {
		return id, false, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, false, storeError("find category", err)
	}
	if err := s.q.QueryRow(ctx, `INSERT INTO kategoria (nazwa) VALUES ($1) RETURNING id`, name).Scan(&id); err != nil {
		return 0, false, storeError("insert category", err)
	}
	return id, true, nil
}

// EnsureProduct inserta el producto si no hay otro con el mismo nombre; asigna p.ID en ambos casos.
func (s *Seeder) EnsureProduct(ctx context.Context, p *entity.Product) (bool, error) {
	if err := validate(p); err != nil {
		return false, err
	}
	err := s.q.QueryRow(ctx, `SELECT id FROM produkty WHERE nazwa = $1 ORDER BY id LIMIT 1`, p.Name).Scan(&p.ID)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return false, storeError("find product", err)
	}
	if err := NewProductRepository(s.q).Create(ctx, p); err != nil {
		return false, err
	}
	return true, nil
}
