package nuvemshop

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Errores de la integración con Nuvemshop.
var (
	// ErrTokenMissing la respuesta de autorización fue 2xx pero no trae access_token.
	ErrTokenMissing = errors.New("nuvemshop: respuesta de autorización sin access_token")
	// ErrStoreIDMissing la respuesta de autorización no trae user_id ni store_id.
	// Nuvemshop no es consistente con el nombre del campo; se revisan ambos.
	ErrStoreIDMissing = errors.New("nuvemshop: respuesta de autorización sin user_id ni store_id")
)

// RemoteError la API de Nuvemshop respondió un status HTTP de error.
// Body es el cuerpo crudo de la respuesta; se expone para diagnóstico.
type RemoteError struct {
	Status int
	Body   string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("nuvemshop: HTTP %d: %s", e.Status, e.Body)
}

// LocalizedText campo traducible de Nuvemshop. La API devuelve dos formas para
// el mismo campo: un string plano o un mapa {idioma: texto}. El tipo decodifica
// ambas y conserva cuál llegó para re-serializar sin alterar la forma.
type LocalizedText struct {
	Plain  string            // forma de string plano (válida solo si Values es nil)
	Values map[string]string // forma localizada; nil cuando llegó un string plano
}

// UnmarshalJSON acepta string plano, mapa de idiomas o null.
func (l *LocalizedText) UnmarshalJSON(data []byte) error {
	l.Plain = ""
	l.Values = nil
	if string(data) == "null" {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &l.Plain)
	}
	return json.Unmarshal(data, &l.Values)
}

// MarshalJSON re-emite la forma original: mapa si Values no es nil, string si no.
func (l LocalizedText) MarshalJSON() ([]byte, error) {
	if l.Values != nil {
		return json.Marshal(l.Values)
	}
	return json.Marshal(l.Plain)
}

// Get devuelve el texto para un idioma; en la forma plana ignora el idioma.
func (l LocalizedText) Get(lang string) string {
	if l.Values == nil {
		return l.Plain
	}
	return l.Values[lang]
}

// Category recurso de categoría tal como lo expone la API de Nuvemshop.
// Name y Handle se conservan como JSON crudo: el protocolo de actualización
// copia Name byte a byte y no debe reinterpretarlo.
type Category struct {
	ID            int64           `json:"id"`
	Name          json.RawMessage `json:"name,omitempty"`
	Description   LocalizedText   `json:"description,omitempty"`
	Handle        json.RawMessage `json:"handle,omitempty"`
	Subcategories []int64         `json:"subcategories,omitempty"`
}

// updatePayload cuerpo del PUT de categoría: exactamente name + description.
// Mandar solo estos campos evita anular en Nuvemshop campos que este servicio no administra.
type updatePayload struct {
	Name        json.RawMessage   `json:"name"`
	Description map[string]string `json:"description"`
}

// TokenResponse respuesta del endpoint de intercambio de código por token.
// user_id/store_id llegan a veces como número y a veces como string.
type TokenResponse struct {
	AccessToken  string      `json:"access_token"`
	TokenType    string      `json:"token_type"`
	Scope        string      `json:"scope"`
	RefreshToken string      `json:"refresh_token"`
	ExpiresIn    int64       `json:"expires_in"`
	UserID       json.Number `json:"user_id"`
	StoreID      json.Number `json:"store_id"`

	// Raw payload completo, se persiste en stores.store_data para auditoría.
	Raw []byte `json:"-"`
}

// ResolveStoreID devuelve el identificador de tienda: user_id con prioridad
// sobre store_id. Vacío si la respuesta no trae ninguno.
func (t *TokenResponse) ResolveStoreID() string {
	if t.UserID.String() != "" {
		return t.UserID.String()
	}
	return t.StoreID.String()
}
