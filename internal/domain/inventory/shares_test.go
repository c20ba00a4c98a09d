package inventory_test

import (
	"testing"

	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/inventory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeCategoryShares_EscenarioDeReferencia(t *testing.T) {
	categories, products := referenceInput()
	snap, err := inventory.BuildSnapshot(categories, products)
	require.NoError(t, err)

	shares := inventory.ComputeCategoryShares(snap)

	require.Len(t, shares, 2)
	assert.True(t, dec("37.50").Equal(shares["Tools"]))
	assert.True(t, dec("5.00").Equal(shares[inventory.Uncategorized]))
}

func TestComputeCategoryShares_SumaIgualTotal(t *testing.T) {
	categories := []*entity.Category{{ID: 1, Name: "Narzędzia"}, {ID: 2, Name: "Farby"}}
	products := []*entity.Product{
		product(1, "Młotek", 2, "33.33", ptr(1)),
		product(2, "Piła", 1, "49.99", ptr(1)),
		product(3, "Farba biała", 12, "27.10", ptr(2)),
		product(4, "Taśma", 40, "3.07", nil),
		product(5, "Klej", 3, "8.45", ptr(3)),
	}
	snap, err := inventory.BuildSnapshot(categories, products)
	require.NoError(t, err)

	shares := inventory.ComputeCategoryShares(snap)

	sum := decimal.Zero
	for _, v := range shares {
		sum = sum.Add(v)
	}
	assert.True(t, sum.Equal(snap.TotalValue), "suma de participaciones %s != total %s", sum, snap.TotalValue)
	assert.True(t, dec("148.15").Equal(shares[inventory.Uncategorized]), "sin categoría + categoría inexistente")
}

func TestRankShares_OrdenYPorcentaje(t *testing.T) {
	shares := map[string]decimal.Decimal{
		"B":                     dec("25"),
		"A":                     dec("25"),
		inventory.Uncategorized: dec("50"),
	}

	ranked := inventory.RankShares(shares, dec("100"))

	require.Len(t, ranked, 3)
	assert.Equal(t, inventory.Uncategorized, ranked[0].Name)
	assert.Equal(t, "A", ranked[1].Name, "empate resuelto por nombre")
	assert.Equal(t, "B", ranked[2].Name)
	assert.True(t, dec("50").Equal(ranked[0].Percent))
	assert.True(t, dec("25").Equal(ranked[1].Percent))
}

func TestRankShares_TotalCero(t *testing.T) {
	ranked := inventory.RankShares(map[string]decimal.Decimal{"A": decimal.Zero}, decimal.Zero)

	require.Len(t, ranked, 1)
	assert.True(t, ranked[0].Percent.IsZero(), "sin valor total el porcentaje es 0")
}
