package repository

import "github.com/jhoicas/nuvemshop-descriptions/internal/domain/entity"

// StoreRepository define el puerto de persistencia para las credenciales de tiendas (DIP).
type StoreRepository interface {
	// FindByStoreID devuelve la tienda o nil si no existe.
	FindByStoreID(storeID string) (*entity.Store, error)
	// First devuelve la primera tienda configurada o nil (modo mono-tienda).
	First() (*entity.Store, error)
	// Upsert crea o reemplaza las credenciales usando StoreID como clave.
	Upsert(store *entity.Store) error
}
