package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrMultipleMatches = errors.New("la secuencia contiene más de un elemento que cumple la condición")
	ErrEmptySequence   = errors.New("la secuencia no contiene elementos")
)
