package entity

import "time"

// CategoryDescription descripción local de una categoría de la tienda.
// Content es texto plano; HTMLContent el markup que se publica en Nuvemshop.
type CategoryDescription struct {
	ID          string
	CategoryID  string // ID de la categoría en Nuvemshop; único
	Content     string
	HTMLContent string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
