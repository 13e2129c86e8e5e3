package memory

import (
	"context"
	"slices"

	"github.com/jhoicas/catalog-demo/internal/domain/entity"
	"github.com/jhoicas/catalog-demo/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación de lectura de ProductRepository sobre el catálogo en memoria.
type ProductRepo struct {
	catalog *Catalog
}

// NewProductRepository construye el adaptador de productos.
func NewProductRepository(catalog *Catalog) *ProductRepo {
	return &ProductRepo{catalog: catalog}
}

// List devuelve los productos en el orden del catálogo.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(r.catalog.products), nil
}
