package dto

import "encoding/json"

// CategoryWithDescription categoría remota ya normalizada: la forma flexible
// del campo description de Nuvemshop (string plano o mapa por idioma) se
// colapsa al par fijo {content, html_content}.
type CategoryWithDescription struct {
	ID            int64           `json:"id"`
	CategoryID    int64           `json:"category_id"`
	Name          json.RawMessage `json:"name"`
	Handle        json.RawMessage `json:"handle,omitempty"`
	Subcategories []int64         `json:"subcategories,omitempty"`
	Content       string          `json:"content"`
	HTMLContent   string          `json:"html_content"`
}

// SetDescriptionRequest cuerpo del PUT de descripción remota. Content se
// acepta por simetría con el CRUD local pero no viaja a la plataforma:
// Nuvemshop no tiene campo de texto plano separado.
type SetDescriptionRequest struct {
	Content     string `json:"content"`
	HTMLContent string `json:"html_content"`
}
