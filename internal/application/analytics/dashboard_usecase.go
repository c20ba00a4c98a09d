// Package analytics contiene los casos de uso de lectura del tablero de inventario:
// snapshot, participación por categoría, filtros y reporte PDF.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/inventory"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/repository"
	"github.com/jhoicas/Inventario-dashboard/pkg/logger"
)

// DashboardUseCase lee el catálogo y deriva la vista del tablero.
//
// Fuente de datos: CategoryRepository + ProductRepository, con CatalogCache delante.
// La caché guarda solo datos crudos; todo lo derivado se recalcula en cada petición.
type DashboardUseCase struct {
	categories repository.CategoryRepository
	products   repository.ProductRepository
	cache      repository.CatalogCache
	report     ReportGenerator
	log        *logger.Logger
	now        func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	categories repository.CategoryRepository,
	products repository.ProductRepository,
	cache repository.CatalogCache,
	report ReportGenerator,
	log *logger.Logger,
) *DashboardUseCase {
	return &DashboardUseCase{
		categories: categories,
		products:   products,
		cache:      cache,
		report:     report,
		log:        log.Named("dashboard"),
		now:        time.Now,
	}
}

// Get construye el DashboardResponse: agregados del snapshot completo, líneas filtradas
// por query y participación por categoría.
func (uc *DashboardUseCase) Get(ctx context.Context, query dto.DashboardQuery) (*dto.DashboardResponse, error) {
	catalog, err := uc.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	snap, err := inventory.BuildSnapshot(catalog.Categories, catalog.Products)
	if err != nil {
		return nil, fmt.Errorf("dashboard: snapshot: %w", err)
	}
	filtered := inventory.FilterProducts(snap.Lines, query.Q, query.Categories)
	shares := inventory.RankShares(inventory.ComputeCategoryShares(snap), snap.TotalValue)

	// ── Construir DTO ──────────────────────────────────────────────────────────
	resp := &dto.DashboardResponse{
		TotalValue:        snap.TotalValue,
		TotalUnits:        snap.TotalUnits,
		ItemCount:         snap.ItemCount,
		LowStockCount:     snap.LowStockCount,
		LowStockThreshold: inventory.LowStockThreshold,
		Items:             make([]dto.DashboardLineDTO, 0, len(filtered)),
		Shares:            make([]dto.CategoryShareDTO, 0, len(shares)),
		Categories:        make([]dto.CategoryResponse, 0, len(catalog.Categories)),
	}
	for _, l := range filtered {
		resp.Items = append(resp.Items, dto.DashboardLineDTO{
			ID:           l.Product.ID,
			Name:         l.Product.Name,
			Quantity:     l.Product.Quantity,
			UnitPrice:    l.Product.UnitPrice,
			CategoryID:   l.Product.CategoryID,
			CategoryName: l.CategoryName,
			LineValue:    l.LineValue,
			LowStock:     l.IsLowStock(),
		})
	}
	for _, s := range shares {
		resp.Shares = append(resp.Shares, dto.CategoryShareDTO{Name: s.Name, Value: s.Value, Percent: s.Percent})
	}
	for _, c := range catalog.Categories {
		resp.Categories = append(resp.Categories, dto.CategoryResponse{ID: c.ID, Name: c.Name})
	}
	return resp, nil
}

// Report genera el PDF del tablero con los mismos filtros que Get.
// Devuelve (pdfBytes, filename, error).
func (uc *DashboardUseCase) Report(ctx context.Context, query dto.DashboardQuery) ([]byte, string, error) {
	resp, err := uc.Get(ctx, query)
	if err != nil {
		return nil, "", err
	}
	now := uc.now()
	pdfBytes, err := uc.report.GenerateInventoryReport(ctx, resp, now)
	if err != nil {
		return nil, "", fmt.Errorf("dashboard: reporte: %w", err)
	}
	return pdfBytes, fmt.Sprintf("inventario-%s.pdf", now.Format("20060102-1504")), nil
}

// loadCatalog lee categorías y productos; primero intenta la caché.
// Un fallo de la caché se registra y se lee del almacén sin repoblarla.
// La generación se toma antes de leer el almacén: si una mutación invalida
// mientras tanto, el Set queda en una generación vieja y no se sirve.
func (uc *DashboardUseCase) loadCatalog(ctx context.Context) (*repository.Catalog, error) {
	cached, gen, err := uc.cache.Get(ctx)
	if err != nil {
		uc.log.Warn().Err(err).Msg("caché del catálogo no disponible, leyendo del almacén")
	}
	if cached != nil {
		return cached, nil
	}
	cacheOK := err == nil

	// ── Goroutines para paralelizar las 2 lecturas ────────────────────────────
	type categoriesResult struct {
		list []*entity.Category
		err  error
	}
	type productsResult struct {
		list []*entity.Product
		err  error
	}

	categoriesCh := make(chan categoriesResult, 1)
	productsCh := make(chan productsResult, 1)

	go func() {
		list, err := uc.categories.List(ctx)
		categoriesCh <- categoriesResult{list, err}
	}()
	go func() {
		list, err := uc.products.List(ctx)
		productsCh <- productsResult{list, err}
	}()

	categories := <-categoriesCh
	products := <-productsCh

	if categories.err != nil {
		return nil, fmt.Errorf("dashboard: categorías: %w", categories.err)
	}
	if products.err != nil {
		return nil, fmt.Errorf("dashboard: productos: %w", products.err)
	}

	catalog := &repository.Catalog{Categories: categories.list, Products: products.list}
	if cacheOK {
		if err := uc.cache.Set(ctx, gen, catalog); err != nil {
			uc.log.Warn().Err(err).Msg("no se pudo guardar el catálogo en caché")
		}
	}
	return catalog, nil
}
