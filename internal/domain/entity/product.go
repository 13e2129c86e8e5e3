package entity

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo.
// Category es una referencia compartida (no se clona): dos productos de la misma categoría apuntan a la misma instancia.
type Product struct {
	ID       int
	Name     string
	Price    decimal.Decimal // precio de venta
	Category *Category
}

// NewProduct construye un producto asociado a una categoría existente.
func NewProduct(id int, name string, price decimal.Decimal, category *Category) *Product {
	return &Product{ID: id, Name: name, Price: price, Category: category}
}

// CategoryName devuelve el nombre de la categoría o vacío si no tiene.
func (p *Product) CategoryName() string {
	if p.Category == nil {
		return ""
	}
	return p.Category.Name
}

// CategoryTier devuelve el nivel de la categoría (0 si no tiene).
func (p *Product) CategoryTier() int {
	if p.Category == nil {
		return 0
	}
	return p.Category.Tier
}

// String: Id, Nombre, Precio (2 decimales), Categoría, Tier.
func (p *Product) String() string {
	return p.FormatWithPrice(p.Price.StringFixed(2))
}

// FormatWithPrice forma textual del producto con el precio ya formateado por el llamador.
func (p *Product) FormatWithPrice(price string) string {
	return fmt.Sprintf("%d, %s, %s, %s, %d", p.ID, p.Name, price, p.CategoryName(), p.CategoryTier())
}
