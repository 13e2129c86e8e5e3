package query

// Group agrupa los elementos que comparten la misma clave.
type Group[K comparable, T any] struct {
	Key   K
	Items []T
}

// GroupBy particiona items por key. Los grupos aparecen en el orden en que se
// encuentra su clave por primera vez y cada grupo conserva el orden original.
// Con claves puntero (p.ej. *entity.Category) se agrupa por identidad de instancia.
func GroupBy[T any, K comparable](items []T, key func(T) K) []Group[K, T] {
	index := make(map[K]int)
	groups := make([]Group[K, T], 0)
	for _, it := range items {
		k := key(it)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, Group[K, T]{Key: k})
		}
		groups[i].Items = append(groups[i].Items, it)
	}
	return groups
}
