package query

import "slices"

// Skip omite los primeros n elementos. Si n supera la longitud devuelve vacío.
func Skip[T any](items []T, n int) []T {
	if n < 0 {
		n = 0
	}
	if n >= len(items) {
		return []T{}
	}
	return slices.Clone(items[n:])
}

// Take devuelve como máximo n elementos desde el inicio.
func Take[T any](items []T, n int) []T {
	if n <= 0 {
		return []T{}
	}
	if n > len(items) {
		n = len(items)
	}
	return slices.Clone(items[:n])
}

// Page aplica Skip(skip) y luego Take(take).
func Page[T any](items []T, skip, take int) []T {
	return Take(Skip(items, skip), take)
}
