package repository

import (
	"context"

	"github.com/jhoicas/catalog-demo/internal/domain/entity"
)

// CategoryRepository define el puerto de lectura para Category (DIP).
type CategoryRepository interface {
	List(ctx context.Context) ([]*entity.Category, error)
}
