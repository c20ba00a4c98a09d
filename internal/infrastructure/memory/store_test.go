package memory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-dashboard/internal/domain"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/repository"
	"github.com/jhoicas/Inventario-dashboard/internal/infrastructure/memory"
)

func TestStore_CreateAsignaIDYResuelveCategoria(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	catID := s.AddCategory("Tools")

	p := &entity.Product{Name: "Hammer", Quantity: 3, UnitPrice: decimal.RequireFromString("12.50"), CategoryID: &catID}
	require.NoError(t, s.Products().Create(ctx, p))
	assert.Equal(t, int64(1), p.ID, "el almacén asigna el ID")

	list, err := s.Products().List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Tools", list[0].CategoryName)
}

func TestStore_CreateConCategoriaInexistente(t *testing.T) {
	missing := int64(99)
	s := memory.NewStore()
	err := s.Products().Create(context.Background(), &entity.Product{Name: "X", CategoryID: &missing})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestStore_UpdateQuantityYDelete(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	p := &entity.Product{Name: "Glue", Quantity: 1, UnitPrice: decimal.NewFromInt(2)}
	require.NoError(t, s.Products().Create(ctx, p))

	assert.ErrorIs(t, s.Products().UpdateQuantity(ctx, p.ID, -1), domain.ErrValidation)
	assert.ErrorIs(t, s.Products().UpdateQuantity(ctx, 404, 1), domain.ErrNotFound)
	require.NoError(t, s.Products().UpdateQuantity(ctx, p.ID, 7))

	got, err := s.Products().GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, got.Quantity)

	require.NoError(t, s.Products().Delete(ctx, p.ID))
	assert.ErrorIs(t, s.Products().Delete(ctx, p.ID), domain.ErrNotFound, "segundo borrado debe ser NotFound")

	got, err = s.Products().GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_RemoveCategoryDejaProductoSinCategoria(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	catID := s.AddCategory("Old")
	require.NoError(t, s.Products().Create(ctx, &entity.Product{Name: "A", CategoryID: &catID}))

	s.RemoveCategory(catID)

	list, err := s.Products().List(ctx)
	require.NoError(t, err)
	assert.Nil(t, list[0].CategoryID)
	assert.Empty(t, list[0].CategoryName)
}

func TestStore_FailWith(t *testing.T) {
	s := memory.NewStore()
	s.FailWith(errors.New("connection refused"))

	_, err := s.Categories().List(context.Background())
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)

	err = s.Run(context.Background(), func(repository.ProductTxRepository) error { return nil })
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)

	s.FailWith(nil)
	_, err = s.Categories().List(context.Background())
	assert.NoError(t, err)
}
