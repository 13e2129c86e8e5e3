package query

import (
	"cmp"
	"slices"

	"github.com/shopspring/decimal"
)

// SortKey compara dos elementos por una clave (negativo, cero o positivo).
type SortKey[T any] func(a, b T) int

// Asc ordena ascendentemente por una clave ordenable.
func Asc[T any, K cmp.Ordered](key func(T) K) SortKey[T] {
	return func(a, b T) int { return cmp.Compare(key(a), key(b)) }
}

// AscDecimal ordena ascendentemente por un monto decimal.
func AscDecimal[T any](key func(T) decimal.Decimal) SortKey[T] {
	return func(a, b T) int { return key(a).Cmp(key(b)) }
}

// OrderBy devuelve una copia ordenada de forma estable. La primera clave es la
// principal; las siguientes sólo desempatan (equivalente a OrderBy().ThenBy()).
func OrderBy[T any](items []T, keys ...SortKey[T]) []T {
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b T) int {
		for _, k := range keys {
			if c := k(a, b); c != 0 {
				return c
			}
		}
		return 0
	})
	return out
}
