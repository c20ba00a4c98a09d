package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Inventario-dashboard/internal/domain"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/repository"
)

var (
	_ repository.ProductRepository   = (*ProductRepo)(nil)
	_ repository.ProductTxRepository = (*ProductRepo)(nil)
)

// Columnas de produkty con el nombre de categoría resuelto por LEFT JOIN.
// Un kategoria_id sin fila en kategoria deja el nombre vacío (nunca error).
const productColumns = `
	p.id, p.nazwa, p.liczba, p.cena, p.kategoria_id, COALESCE(k.nazwa, '')
	FROM produkty p
	LEFT JOIN kategoria k ON k.id = p.kategoria_id`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	if err := row.Scan(&p.ID, &p.Name, &p.Quantity, &p.UnitPrice, &p.CategoryID, &p.CategoryName); err != nil {
		return nil, err
	}
	return &p, nil
}

// List devuelve todos los productos ordenados por id.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, `SELECT `+productColumns+` ORDER BY p.id`)
	if err != nil {
		return nil, storeError("list products", err)
	}
	defer rows.Close()
	list := make([]*entity.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, storeError("scan product", err)
		}
		list = append(list, p)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError("list products", err)
	}
	return list, nil
}

// GetByID obtiene un producto por ID; (nil, nil) si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, `SELECT `+productColumns+` WHERE p.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storeError("get product", err)
	}
	return p, nil
}

// GetForUpdate bloquea la fila del producto (SELECT ... FOR UPDATE OF p). Solo tiene efecto dentro de una tx.
func (r *ProductRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, `SELECT `+productColumns+` WHERE p.id = $1 FOR UPDATE OF p`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storeError("lock product", err)
	}
	return p, nil
}

// Create persiste un nuevo producto y asigna el ID generado por el almacén.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	if err := validate(p); err != nil {
		return err
	}
	err := r.q.QueryRow(ctx,
		`INSERT INTO produkty (nazwa, liczba, cena, kategoria_id) VALUES ($1, $2, $3, $4) RETURNING id`,
		p.Name, p.Quantity, p.UnitPrice, p.CategoryID,
	).Scan(&p.ID)
	if err != nil {
		return storeError("insert product", err)
	}
	return nil
}

// UpdateQuantity fija la cantidad absoluta del producto.
func (r *ProductRepo) UpdateQuantity(ctx context.Context, id int64, quantity int) error {
	if quantity < 0 {
		return fmt.Errorf("%w: cantidad negativa", domain.ErrValidation)
	}
	cmd, err := r.q.Exec(ctx, `UPDATE produkty SET liczba = $2 WHERE id = $1`, id, quantity)
	if err != nil {
		return storeError("update product quantity", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("producto %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// UpdateDetails actualiza nombre, precio y categoría. La cantidad solo cambia vía UpdateQuantity.
func (r *ProductRepo) UpdateDetails(ctx context.Context, p *entity.Product) error {
	if err := validate(p); err != nil {
		return err
	}
	cmd, err := r.q.Exec(ctx,
		`UPDATE produkty SET nazwa = $2, cena = $3, kategoria_id = $4 WHERE id = $1`,
		p.ID, p.Name, p.UnitPrice, p.CategoryID,
	)
	if err != nil {
		return storeError("update product", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("producto %d: %w", p.ID, domain.ErrNotFound)
	}
	return nil
}

// Delete elimina un producto por ID. Un segundo borrado del mismo ID devuelve ErrNotFound.
func (r *ProductRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM produkty WHERE id = $1`, id)
	if err != nil {
		return storeError("delete product", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("producto %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

func validate(p *entity.Product) error {
	switch {
	case p == nil:
		return fmt.Errorf("%w: producto nil", domain.ErrValidation)
	case p.Name == "":
		return fmt.Errorf("%w: nombre vacío", domain.ErrValidation)
	case p.Quantity < 0:
		return fmt.Errorf("%w: cantidad negativa", domain.ErrValidation)
	case p.UnitPrice.IsNegative():
		return fmt.Errorf("%w: precio negativo", domain.ErrValidation)
	}
	return nil
}
