// Package query contiene los operadores de consulta sobre colecciones en memoria
// (filtro, proyección, orden, paginación, elemento, agregación y agrupación).
//
// Todos los operadores son funciones puras sobre slices: nunca modifican la
// entrada y devuelven un resultado nuevo. La evaluación es inmediata (eager).
//
// La ausencia de resultado se representa con Optional[T] en lugar de nil;
// las violaciones de cardinalidad y las reducciones sobre secuencias vacías
// devuelven los errores de dominio correspondientes.
package query
