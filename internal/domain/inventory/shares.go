package inventory

import (
	"sort"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// CategoryShare valor agregado de una categoría y su porcentaje sobre el total.
type CategoryShare struct {
	Name    string
	Value   decimal.Decimal
	Percent decimal.Decimal
}

// ComputeCategoryShares suma LineValue por nombre de categoría resuelto.
// La suma de todos los valores es igual a snapshot.TotalValue.
func ComputeCategoryShares(snapshot Snapshot) map[string]decimal.Decimal {
	shares := make(map[string]decimal.Decimal)
	for _, l := range snapshot.Lines {
		shares[l.CategoryName] = shares[l.CategoryName].Add(l.LineValue)
	}
	return shares
}

// RankShares ordena las participaciones de mayor a menor valor (empate: por nombre)
// y calcula el porcentaje redondeado a 2 decimales. Con total cero el porcentaje es 0.
func RankShares(shares map[string]decimal.Decimal, total decimal.Decimal) []CategoryShare {
	out := make([]CategoryShare, 0, len(shares))
	for name, value := range shares {
		pct := decimal.Zero
		if total.IsPositive() {
			pct = value.Div(total).Mul(hundred).Round(2)
		}
		out = append(out, CategoryShare{Name: name, Value: value, Percent: pct})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Value.Equal(out[j].Value) {
			return out[i].Value.GreaterThan(out[j].Value)
		}
		return out[i].Name < out[j].Name
	})
	return out
}
