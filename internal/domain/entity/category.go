package entity

// Category representa una categoría de productos clasificada por nivel (Tier).
// Se construye una sola vez y no se modifica; varios productos comparten la misma instancia.
type Category struct {
	ID   int
	Name string
	Tier int
}

// NewCategory construye una categoría inmutable.
func NewCategory(id int, name string, tier int) *Category {
	return &Category{ID: id, Name: name, Tier: tier}
}

func (c *Category) String() string {
	if c == nil {
		return ""
	}
	return c.Name
}
