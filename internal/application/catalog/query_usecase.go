// Package catalog contiene los casos de uso de consulta sobre el catálogo de productos.
// Cada consulta es una función pura del catálogo: ninguna modifica los datos.
package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalog-demo/internal/application/dto"
	"github.com/jhoicas/catalog-demo/internal/domain/entity"
	"github.com/jhoicas/catalog-demo/internal/domain/query"
	"github.com/jhoicas/catalog-demo/internal/domain/repository"
)

// CategoryGroup productos agrupados por la instancia de su categoría.
type CategoryGroup = query.Group[*entity.Category, *entity.Product]

// QueryUseCase ejecuta las consultas de demostración sobre los repositorios de lectura.
type QueryUseCase struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
}

// NewQueryUseCase construye el caso de uso.
func NewQueryUseCase(products repository.ProductRepository, categories repository.CategoryRepository) *QueryUseCase {
	return &QueryUseCase{products: products, categories: categories}
}

func (uc *QueryUseCase) load(ctx context.Context) ([]*entity.Product, error) {
	list, err := uc.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar productos: %w", err)
	}
	return list, nil
}

func byCategoryID(id int) func(*entity.Product) bool {
	return func(p *entity.Product) bool { return p.Category != nil && p.Category.ID == id }
}

func byTier(tier int) func(*entity.Product) bool {
	return func(p *entity.Product) bool { return p.CategoryTier() == tier }
}

func price(p *entity.Product) decimal.Decimal { return p.Price }

// Dataset devuelve cuántas categorías y productos tiene el catálogo.
func (uc *QueryUseCase) Dataset(ctx context.Context) (dto.DatasetSummary, error) {
	cats, err := uc.categories.List(ctx)
	if err != nil {
		return dto.DatasetSummary{}, fmt.Errorf("listar categorías: %w", err)
	}
	products, err := uc.load(ctx)
	if err != nil {
		return dto.DatasetSummary{}, err
	}
	return dto.DatasetSummary{Categories: len(cats), Products: len(products)}, nil
}

// TierUnderPrice productos del nivel indicado con precio estrictamente menor que limit.
func (uc *QueryUseCase) TierUnderPrice(ctx context.Context, tier int, limit decimal.Decimal) ([]*entity.Product, error) {
	products, err := uc.load(ctx)
	if err != nil {
		return nil, err
	}
	return query.Where(products, func(p *entity.Product) bool {
		return p.CategoryTier() == tier && p.Price.LessThan(limit)
	}), nil
}

// ProductNamesByCategory nombres de los productos cuya categoría se llama categoryName.
func (uc *QueryUseCase) ProductNamesByCategory(ctx context.Context, categoryName string) ([]string, error) {
	products, err := uc.load(ctx)
	if err != nil {
		return nil, err
	}
	matches := query.Where(products, func(p *entity.Product) bool { return p.CategoryName() == categoryName })
	return query.Select(matches, func(p *entity.Product) string { return p.Name }), nil
}

// SummariesStartingWith proyecta {Name, Price, CategoryName} de los productos cuyo nombre empieza por prefix.
func (uc *QueryUseCase) SummariesStartingWith(ctx context.Context, prefix string) ([]dto.ProductSummary, error) {
	products, err := uc.load(ctx)
	if err != nil {
		return nil, err
	}
	matches := query.Where(products, func(p *entity.Product) bool { return strings.HasPrefix(p.Name, prefix) })
	return query.Select(matches, func(p *entity.Product) dto.ProductSummary {
		return dto.ProductSummary{Name: p.Name, Price: p.Price, CategoryName: p.CategoryName()}
	}), nil
}

// TierOrderedByPriceThenName productos del nivel ordenados por precio y, a igual precio, por nombre.
func (uc *QueryUseCase) TierOrderedByPriceThenName(ctx context.Context, tier int) ([]*entity.Product, error) {
	products, err := uc.load(ctx)
	if err != nil {
		return nil, err
	}
	return query.OrderBy(query.Where(products, byTier(tier)),
		query.AscDecimal(price),
		query.Asc(func(p *entity.Product) string { return p.Name }),
	), nil
}

// TierPage página (Offset, Limit) sobre TierOrderedByPriceThenName. Limit <= 0 devuelve una página vacía.
func (uc *QueryUseCase) TierPage(ctx context.Context, tier int, page dto.PageRequest) ([]*entity.Product, error) {
	ordered, err := uc.TierOrderedByPriceThenName(ctx, tier)
	if err != nil {
		return nil, err
	}
	return query.Page(ordered, page.Offset, page.Limit), nil
}

// FirstProduct primer producto del catálogo completo, o vacío si no hay productos.
func (uc *QueryUseCase) FirstProduct(ctx context.Context) (query.Optional[*entity.Product], error) {
	products, err := uc.load(ctx)
	if err != nil {
		return query.None[*entity.Product](), err
	}
	return query.FirstOrDefault(products), nil
}

// FirstPricedAbove primer producto con precio estrictamente mayor que minPrice.
func (uc *QueryUseCase) FirstPricedAbove(ctx context.Context, minPrice decimal.Decimal) (query.Optional[*entity.Product], error) {
	products, err := uc.load(ctx)
	if err != nil {
		return query.None[*entity.Product](), err
	}
	return query.FirstOrDefaultWhere(products, func(p *entity.Product) bool { return p.Price.GreaterThan(minPrice) }), nil
}

// SingleByID único producto con ese ID. Más de una coincidencia es domain.ErrMultipleMatches.
func (uc *QueryUseCase) SingleByID(ctx context.Context, id int) (query.Optional[*entity.Product], error) {
	return uc.SingleWhere(ctx, func(p *entity.Product) bool { return p.ID == id })
}

// SingleWhere único producto que cumple pred (vacío si ninguno).
func (uc *QueryUseCase) SingleWhere(ctx context.Context, pred func(*entity.Product) bool) (query.Optional[*entity.Product], error) {
	products, err := uc.load(ctx)
	if err != nil {
		return query.None[*entity.Product](), err
	}
	return query.SingleOrDefault(products, pred)
}

// MaxPrice mayor precio del catálogo (domain.ErrEmptySequence si está vacío).
func (uc *QueryUseCase) MaxPrice(ctx context.Context) (decimal.Decimal, error) {
	products, err := uc.load(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return query.MaxBy(products, price)
}

// MinPrice menor precio del catálogo (domain.ErrEmptySequence si está vacío).
func (uc *QueryUseCase) MinPrice(ctx context.Context) (decimal.Decimal, error) {
	products, err := uc.load(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return query.MinBy(products, price)
}

// SumPriceByCategory suma de precios de la categoría; cero si no tiene productos.
func (uc *QueryUseCase) SumPriceByCategory(ctx context.Context, categoryID int) (decimal.Decimal, error) {
	products, err := uc.load(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return query.Sum(query.Where(products, byCategoryID(categoryID)), price), nil
}

// AveragePriceByCategory precio promedio de la categoría; error si no tiene productos.
func (uc *QueryUseCase) AveragePriceByCategory(ctx context.Context, categoryID int) (decimal.Decimal, error) {
	products, err := uc.load(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return query.Average(query.Where(products, byCategoryID(categoryID)), price)
}

// AveragePriceOrDefault promedio de la categoría sustituyendo una secuencia vacía por [def].
func (uc *QueryUseCase) AveragePriceOrDefault(ctx context.Context, categoryID int, def decimal.Decimal) (decimal.Decimal, error) {
	products, err := uc.load(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	prices := query.Select(query.Where(products, byCategoryID(categoryID)), price)
	return query.Average(query.DefaultIfEmpty(prices, def), query.Identity)
}

// FoldPriceByCategory suma de precios de la categoría mediante un pliegue con semilla cero.
func (uc *QueryUseCase) FoldPriceByCategory(ctx context.Context, categoryID int) (decimal.Decimal, error) {
	products, err := uc.load(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	prices := query.Select(query.Where(products, byCategoryID(categoryID)), price)
	return query.Aggregate(prices, decimal.Zero, func(acc, d decimal.Decimal) decimal.Decimal {
		return acc.Add(d)
	}), nil
}

// GroupByCategory agrupa los productos por instancia de categoría, en orden de aparición.
func (uc *QueryUseCase) GroupByCategory(ctx context.Context) ([]CategoryGroup, error) {
	products, err := uc.load(ctx)
	if err != nil {
		return nil, err
	}
	return query.GroupBy(products, func(p *entity.Product) *entity.Category { return p.Category }), nil
}
