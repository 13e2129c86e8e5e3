package repository

import (
	"context"

	"github.com/jhoicas/catalog-demo/internal/domain/entity"
)

// ProductRepository define el puerto de lectura para Product (DIP).
// List devuelve los productos en el orden original del catálogo.
type ProductRepository interface {
	List(ctx context.Context) ([]*entity.Product, error)
}
