package dto

import "time"

// CreateDescriptionRequest alta de una descripción local.
type CreateDescriptionRequest struct {
	CategoryID  string `json:"category_id"`
	Content     string `json:"content"`
	HTMLContent string `json:"html_content"`
}

// UpdateDescriptionRequest modificación de una descripción local existente.
type UpdateDescriptionRequest struct {
	Content     string `json:"content"`
	HTMLContent string `json:"html_content"`
}

// DescriptionResponse representación de una descripción local.
type DescriptionResponse struct {
	ID          string    `json:"id"`
	CategoryID  string    `json:"category_id"`
	Content     string    `json:"content"`
	HTMLContent string    `json:"html_content"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DescriptionListResponse página de descripciones locales.
type DescriptionListResponse struct {
	Items      []DescriptionResponse `json:"items"`
	Pagination Pagination            `json:"pagination"`
}

// InstallResponse resultado de la instalación: tienda registrada y token de
// sesión para el panel del comerciante.
type InstallResponse struct {
	StoreID string `json:"store_id"`
	Token   string `json:"token"`
}
