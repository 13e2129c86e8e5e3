package memory

import (
	"context"
	"slices"

	"github.com/jhoicas/catalog-demo/internal/domain/entity"
	"github.com/jhoicas/catalog-demo/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación de lectura de CategoryRepository sobre el catálogo en memoria.
type CategoryRepo struct {
	catalog *Catalog
}

// NewCategoryRepository construye el adaptador de categorías.
func NewCategoryRepository(catalog *Catalog) *CategoryRepo {
	return &CategoryRepo{catalog: catalog}
}

// List devuelve todas las categorías. El slice es una copia; las instancias se comparten.
func (r *CategoryRepo) List(ctx context.Context) ([]*entity.Category, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(r.catalog.categories), nil
}
