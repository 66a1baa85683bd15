package entity

import "time"

// Store credenciales de una tienda Nuvemshop instalada.
// Se crea o reemplaza (upsert por StoreID) al completar la autorización OAuth;
// nunca se borra desde este servicio.
type Store struct {
	StoreID        string
	AccessToken    string
	RefreshToken   string     // opcional; Nuvemshop no expone flujo de renovación todavía
	TokenExpiresAt *time.Time // informativo; ningún camino de código lo valida antes de usar el token
	StoreData      []byte     // payload JSON crudo del endpoint de token, para auditoría/debug
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
