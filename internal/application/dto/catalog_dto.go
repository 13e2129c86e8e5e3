package dto

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ProductSummary proyección {Nombre, Precio, Nombre de categoría}.
// CategoryName lleva alias porque Name ya identifica al producto.
type ProductSummary struct {
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	CategoryName string          `json:"category_name"`
}

func (s ProductSummary) String() string {
	return s.FormatWithPrice(s.Price.StringFixed(2))
}

// FormatWithPrice forma textual de la proyección con el precio ya formateado.
func (s ProductSummary) FormatWithPrice(price string) string {
	return fmt.Sprintf("{ Name = %s, Price = %s, CategoryName = %s }", s.Name, price, s.CategoryName)
}

// ProductResponse salida de un producto en los bloques JSON del reporte.
type ProductResponse struct {
	ID           int             `json:"id"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	CategoryName string          `json:"category"`
	CategoryTier int             `json:"tier"`
}

// CategoryGroupResponse un grupo de productos de la misma categoría.
type CategoryGroupResponse struct {
	CategoryID   int               `json:"category_id"`
	CategoryName string            `json:"category"`
	Items        []ProductResponse `json:"items"`
}

// DatasetSummary tamaño del catálogo cargado.
type DatasetSummary struct {
	Categories int `json:"categories"`
	Products   int `json:"products"`
}
