package query

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalog-demo/internal/domain"
)

// Sum suma el monto seleccionado. Una secuencia vacía suma cero.
func Sum[T any](items []T, selector func(T) decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(selector(it))
	}
	return total
}

// Average calcula la media del monto seleccionado.
// Sobre una secuencia vacía devuelve domain.ErrEmptySequence (usar DefaultIfEmpty para evitarlo).
func Average[T any](items []T, selector func(T) decimal.Decimal) (decimal.Decimal, error) {
	if len(items) == 0 {
		return decimal.Zero, fmt.Errorf("average: %w", domain.ErrEmptySequence)
	}
	return Sum(items, selector).Div(decimal.NewFromInt(int64(len(items)))), nil
}

// MaxBy devuelve el mayor monto seleccionado; sólo definido para secuencias no vacías.
func MaxBy[T any](items []T, selector func(T) decimal.Decimal) (decimal.Decimal, error) {
	return extreme(items, selector, "max", func(c, best decimal.Decimal) bool { return c.GreaterThan(best) })
}

// MinBy devuelve el menor monto seleccionado; sólo definido para secuencias no vacías.
func MinBy[T any](items []T, selector func(T) decimal.Decimal) (decimal.Decimal, error) {
	return extreme(items, selector, "min", func(c, best decimal.Decimal) bool { return c.LessThan(best) })
}

func extreme[T any](items []T, selector func(T) decimal.Decimal, op string, better func(c, best decimal.Decimal) bool) (decimal.Decimal, error) {
	if len(items) == 0 {
		return decimal.Zero, fmt.Errorf("%s: %w", op, domain.ErrEmptySequence)
	}
	best := selector(items[0])
	for _, it := range items[1:] {
		if c := selector(it); better(c, best) {
			best = c
		}
	}
	return best, nil
}

// DefaultIfEmpty devuelve [def] si la secuencia está vacía; si no, la misma secuencia.
func DefaultIfEmpty[T any](items []T, def T) []T {
	if len(items) == 0 {
		return []T{def}
	}
	return items
}

// Aggregate pliega la secuencia de izquierda a derecha partiendo de seed.
func Aggregate[T, A any](items []T, seed A, fn func(acc A, item T) A) A {
	acc := seed
	for _, it := range items {
		acc = fn(acc, it)
	}
	return acc
}

// Identity es el selector trivial para secuencias de montos.
func Identity(d decimal.Decimal) decimal.Decimal { return d }
