package dto

// PageRequest paginación para listados: Offset elementos omitidos, Limit elementos tomados.
type PageRequest struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total,omitempty"`
}

// ErrorResponse cuerpo de error cuando la salida es JSON.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
