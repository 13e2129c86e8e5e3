package query

import "fmt"

// EmptyMarker es la representación textual de un Optional sin valor.
const EmptyMarker = "<vacío>"

// Optional representa un valor que puede estar ausente (resultado de los operadores "OrDefault").
type Optional[T any] struct {
	value   T
	present bool
}

// Some envuelve un valor presente.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, present: true}
}

// None devuelve un Optional vacío.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get devuelve el valor y si está presente.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}

func (o Optional[T]) IsPresent() bool { return o.present }

func (o Optional[T]) String() string {
	if !o.present {
		return EmptyMarker
	}
	return fmt.Sprint(o.value)
}
