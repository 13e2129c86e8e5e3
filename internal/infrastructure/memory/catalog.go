// Package memory implementa los puertos de repositorio sobre un catálogo fijo en memoria.
package memory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalog-demo/internal/domain/entity"
)

// Catalog es el conjunto de datos fijo de la demostración. Se construye una vez al
// arrancar y no se modifica durante la ejecución.
type Catalog struct {
	categories []*entity.Category
	products   []*entity.Product
}

// NewCatalog construye un catálogo con las categorías y productos dados (en ese orden).
func NewCatalog(categories []*entity.Category, products []*entity.Product) *Catalog {
	return &Catalog{categories: categories, products: products}
}

// NewDefaultCatalog construye el catálogo de demostración: 3 categorías y 5 productos.
func NewDefaultCatalog() *Catalog {
	tools := entity.NewCategory(1, "Tools", 2)
	computers := entity.NewCategory(2, "Computers", 1)
	electronics := entity.NewCategory(3, "Eletronics", 1)

	return NewCatalog(
		[]*entity.Category{tools, computers, electronics},
		[]*entity.Product{
			entity.NewProduct(1, "Computer", decimal.RequireFromString("1110.0"), computers),
			entity.NewProduct(2, "Hammer", decimal.RequireFromString("90.0"), tools),
			entity.NewProduct(3, "TV", decimal.RequireFromString("1700.0"), electronics),
			entity.NewProduct(4, "Notebook", decimal.RequireFromString("1300.0"), computers),
			entity.NewProduct(5, "Saw", decimal.RequireFromString("80.0"), tools),
		},
	)
}
