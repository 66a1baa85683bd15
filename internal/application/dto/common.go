package dto

// Envelope respuesta uniforme de la API: {success, data, message} más campos
// opcionales de errores de validación y paginación.
type Envelope struct {
	Success    bool              `json:"success"`
	Data       interface{}       `json:"data"`
	Message    string            `json:"message"`
	Errors     map[string]string `json:"errors,omitempty"`
	Pagination *Pagination       `json:"pagination,omitempty"`
	Total      *int              `json:"total,omitempty"`
}

// Pagination metadatos de página en listados locales.
type Pagination struct {
	CurrentPage int `json:"current_page"`
	PerPage     int `json:"per_page"`
	Total       int `json:"total"`
	LastPage    int `json:"last_page"`
}

// OK construye un envelope de éxito.
func OK(data interface{}, message string) Envelope {
	return Envelope{Success: true, Data: data, Message: message}
}

// Fail construye un envelope de error sin detalle por campo.
func Fail(message string) Envelope {
	return Envelope{Success: false, Data: nil, Message: message}
}

// FailFields construye un envelope de error de validación con detalle por campo.
func FailFields(message string, fields map[string]string) Envelope {
	return Envelope{Success: false, Data: nil, Message: message, Errors: fields}
}
