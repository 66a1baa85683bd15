package catalog

import (
	"context"

	"github.com/jhoicas/nuvemshop-descriptions/internal/application/dto"
	"github.com/jhoicas/nuvemshop-descriptions/internal/application/ports"
	"github.com/jhoicas/nuvemshop-descriptions/internal/application/stores"
	"github.com/jhoicas/nuvemshop-descriptions/pkg/logger"
)

// SyncUseCase fachada de sincronización de descripciones: resuelve la tienda,
// delega en el cliente de categorías y normaliza la forma multilenguaje de la
// plataforma al par {content, html_content} que usa el resto del sistema.
type SyncUseCase struct {
	api      ports.CategoryAPI
	resolver *stores.Resolver
	log      *logger.Logger
}

// NewSyncUseCase construye la fachada.
func NewSyncUseCase(api ports.CategoryAPI, resolver *stores.Resolver, log *logger.Logger) *SyncUseCase {
	return &SyncUseCase{api: api, resolver: resolver, log: log}
}

// ListWithDescriptions lista las categorías remotas normalizadas, en el orden
// en que la plataforma las devuelve.
func (uc *SyncUseCase) ListWithDescriptions(ctx context.Context, storeID string) ([]dto.CategoryWithDescription, error) {
	store, err := uc.resolver.Resolve(storeID)
	if err != nil {
		return nil, err
	}
	categories, err := uc.api.ListCategories(ctx, store)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryWithDescription, 0, len(categories))
	for _, cat := range categories {
		out = append(out, Normalize(cat))
	}
	return out, nil
}

// GetDescription obtiene una categoría remota normalizada.
func (uc *SyncUseCase) GetDescription(ctx context.Context, storeID, categoryID string) (*dto.CategoryWithDescription, error) {
	store, err := uc.resolver.Resolve(storeID)
	if err != nil {
		return nil, err
	}
	cat, err := uc.api.GetCategory(ctx, store, categoryID)
	if err != nil {
		return nil, err
	}
	normalized := Normalize(*cat)
	return &normalized, nil
}

// SetDescription publica el markup en la plataforma. El texto plano (content)
// se ignora deliberadamente: Nuvemshop no tiene campo separado para él, así
// que solo html_content viaja hacia arriba. Mutación: exige tienda explícita.
func (uc *SyncUseCase) SetDescription(ctx context.Context, storeID, categoryID, content, htmlContent string) (*dto.CategoryWithDescription, error) {
	_ = content
	store, err := uc.resolver.ResolveExact(storeID)
	if err != nil {
		return nil, err
	}
	updated, err := uc.api.UpdateCategoryDescription(ctx, store, categoryID, htmlContent)
	if err != nil {
		return nil, err
	}
	normalized := Normalize(*updated)
	return &normalized, nil
}

// ClearDescription borra la descripción publicando markup vacío: la plataforma
// no tiene noción de eliminar la descripción por separado de la categoría.
func (uc *SyncUseCase) ClearDescription(ctx context.Context, storeID, categoryID string) error {
	_, err := uc.SetDescription(ctx, storeID, categoryID, "", "")
	return err
}
