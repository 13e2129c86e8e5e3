package query

import (
	"fmt"

	"github.com/jhoicas/catalog-demo/internal/domain"
)

// FirstOrDefault devuelve el primer elemento o None si la secuencia está vacía.
func FirstOrDefault[T any](items []T) Optional[T] {
	if len(items) == 0 {
		return None[T]()
	}
	return Some(items[0])
}

// FirstOrDefaultWhere devuelve el primer elemento que cumple pred o None.
func FirstOrDefaultWhere[T any](items []T, pred func(T) bool) Optional[T] {
	for _, it := range items {
		if pred(it) {
			return Some(it)
		}
	}
	return None[T]()
}

// SingleOrDefault devuelve el único elemento que cumple pred, None si ninguno lo cumple,
// o domain.ErrMultipleMatches si lo cumple más de uno (nunca elige uno arbitrariamente).
func SingleOrDefault[T any](items []T, pred func(T) bool) (Optional[T], error) {
	found := None[T]()
	matches := 0
	for _, it := range items {
		if !pred(it) {
			continue
		}
		matches++
		if matches > 1 {
			return None[T](), fmt.Errorf("single or default: %w", domain.ErrMultipleMatches)
		}
		found = Some(it)
	}
	return found, nil
}
