package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/Inventario-dashboard/internal/domain"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/repository"
	"github.com/jhoicas/Inventario-dashboard/pkg/logger"
)

// ProductUseCase casos de uso CRUD para productos. La cantidad se ajusta vía inventory.AdjustQuantityUseCase.
type ProductUseCase struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	cache      repository.CatalogCache
	log        *logger.Logger
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	products repository.ProductRepository,
	categories repository.CategoryRepository,
	cache repository.CatalogCache,
	log *logger.Logger,
) *ProductUseCase {
	return &ProductUseCase{products: products, categories: categories, cache: cache, log: log.Named("products")}
}

// Create crea un nuevo producto. Falla con domain.ErrValidation si el nombre está vacío,
// la cantidad o el precio son negativos, o la categoría no existe.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	product := &entity.Product{
		Name:       in.Name,
		Quantity:   in.Quantity,
		UnitPrice:  in.UnitPrice,
		CategoryID: in.CategoryID,
	}
	if err := validateProduct(product); err != nil {
		return nil, err
	}
	name, err := uc.resolveCategory(ctx, product.CategoryID)
	if err != nil {
		return nil, err
	}
	product.CategoryName = name

	if err := uc.products.Create(ctx, product); err != nil {
		return nil, err
	}
	uc.invalidate(ctx)
	uc.log.Info().Int64("product_id", product.ID).Str("name", product.Name).Msg("producto creado")
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID; domain.ErrNotFound si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("producto %d: %w", id, domain.ErrNotFound)
	}
	return toProductResponse(product), nil
}

// UpdateDetails edita nombre, precio y/o categoría con las mismas reglas que Create.
func (uc *ProductUseCase) UpdateDetails(ctx context.Context, id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("producto %d: %w", id, domain.ErrNotFound)
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.UnitPrice != nil {
		product.UnitPrice = *in.UnitPrice
	}
	switch {
	case in.ClearCategory:
		product.CategoryID = nil
	case in.CategoryID != nil:
		product.CategoryID = in.CategoryID
	}
	if err := validateProduct(product); err != nil {
		return nil, err
	}
	name, err := uc.resolveCategory(ctx, product.CategoryID)
	if err != nil {
		return nil, err
	}
	product.CategoryName = name

	if err := uc.products.UpdateDetails(ctx, product); err != nil {
		return nil, err
	}
	uc.invalidate(ctx)
	return toProductResponse(product), nil
}

// Delete elimina un producto por ID. Un ID desconocido devuelve domain.ErrNotFound
// (también al repetir el borrado de un ID ya eliminado).
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) error {
	if err := uc.products.Delete(ctx, id); err != nil {
		return err
	}
	uc.invalidate(ctx)
	uc.log.Info().Int64("product_id", id).Msg("producto eliminado")
	return nil
}

// resolveCategory verifica que la categoría exista y devuelve su nombre ("" si no hay categoría).
func (uc *ProductUseCase) resolveCategory(ctx context.Context, id *int64) (string, error) {
	if id == nil {
		return "", nil
	}
	category, err := uc.categories.GetByID(ctx, *id)
	if err != nil {
		return "", err
	}
	if category == nil {
		return "", fmt.Errorf("%w: la categoría %d no existe", domain.ErrValidation, *id)
	}
	return category.Name, nil
}

func (uc *ProductUseCase) invalidate(ctx context.Context) {
	if err := uc.cache.Invalidate(ctx); err != nil {
		uc.log.Warn().Err(err).Msg("no se pudo invalidar la caché del catálogo")
	}
}

func validateProduct(p *entity.Product) error {
	switch {
	case p.Name == "":
		return fmt.Errorf("%w: name es requerido", domain.ErrValidation)
	case p.Quantity < 0:
		return fmt.Errorf("%w: quantity no puede ser negativa", domain.ErrValidation)
	case p.UnitPrice.IsNegative():
		return fmt.Errorf("%w: unit_price no puede ser negativo", domain.ErrValidation)
	}
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Quantity:     p.Quantity,
		UnitPrice:    p.UnitPrice,
		CategoryID:   p.CategoryID,
		CategoryName: p.CategoryName,
	}
}
