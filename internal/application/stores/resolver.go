package stores

import (
	"github.com/jhoicas/nuvemshop-descriptions/internal/domain"
	"github.com/jhoicas/nuvemshop-descriptions/internal/domain/entity"
	"github.com/jhoicas/nuvemshop-descriptions/internal/domain/repository"
)

// Resolver centraliza la resolución de tienda en lugar de repartir
// "si no hay store_id usar la primera" por los call sites.
// Orden para lecturas: ID explícito → primera tienda configurada (si el
// despliegue es mono-tienda). Las mutaciones usan ResolveExact: nunca caen
// a "la primera tienda".
type Resolver struct {
	repo         repository.StoreRepository
	singleTenant bool
}

// NewResolver construye el resolver. singleTenant habilita el fallback a la
// primera tienda configurada (NUVEMSHOP_SINGLE_TENANT).
func NewResolver(repo repository.StoreRepository, singleTenant bool) *Resolver {
	return &Resolver{repo: repo, singleTenant: singleTenant}
}

// Resolve devuelve la tienda para operaciones de lectura/listado.
func (r *Resolver) Resolve(explicitID string) (*entity.Store, error) {
	if explicitID != "" {
		return r.lookup(explicitID)
	}
	if !r.singleTenant {
		return nil, domain.ErrNoStoreConfigured
	}
	store, err := r.repo.First()
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrNoStoreConfigured
	}
	return store, nil
}

// ResolveExact devuelve la tienda para mutaciones: exige un ID explícito.
func (r *Resolver) ResolveExact(storeID string) (*entity.Store, error) {
	if storeID == "" {
		return nil, domain.ErrNoStoreConfigured
	}
	return r.lookup(storeID)
}

func (r *Resolver) lookup(storeID string) (*entity.Store, error) {
	store, err := r.repo.FindByStoreID(storeID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrNoStoreConfigured
	}
	return store, nil
}
