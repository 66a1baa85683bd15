package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/nuvemshop-descriptions/internal/application/dto"
	"github.com/jhoicas/nuvemshop-descriptions/internal/application/ports"
	"github.com/jhoicas/nuvemshop-descriptions/internal/domain"
	"github.com/jhoicas/nuvemshop-descriptions/internal/domain/entity"
	"github.com/jhoicas/nuvemshop-descriptions/internal/domain/repository"
	"github.com/jhoicas/nuvemshop-descriptions/pkg/logger"
)

// DescriptionUseCase CRUD de descripciones locales. Cada mutación intenta
// además publicar el markup en Nuvemshop si hay una tienda configurada; el
// push es best-effort: si falla se registra y la escritura local NO se
// revierte, por lo que lo local y la plataforma pueden divergir.
type DescriptionUseCase struct {
	repo   repository.DescriptionRepository
	stores repository.StoreRepository
	api    ports.CategoryAPI
	log    *logger.Logger
}

// NewDescriptionUseCase construye el caso de uso.
func NewDescriptionUseCase(repo repository.DescriptionRepository, stores repository.StoreRepository, api ports.CategoryAPI, log *logger.Logger) *DescriptionUseCase {
	return &DescriptionUseCase{repo: repo, stores: stores, api: api, log: log}
}

// Create crea una descripción local y la publica en la plataforma (best-effort).
func (uc *DescriptionUseCase) Create(ctx context.Context, in dto.CreateDescriptionRequest) (*dto.DescriptionResponse, error) {
	existing, err := uc.repo.GetByCategoryID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	desc := &entity.CategoryDescription{
		ID:          uuid.New().String(),
		CategoryID:  in.CategoryID,
		Content:     in.Content,
		HTMLContent: in.HTMLContent,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(desc); err != nil {
		return nil, err
	}
	uc.pushToPlatform(ctx, desc.CategoryID, desc.HTMLContent)
	return toDescriptionResponse(desc), nil
}

// GetByID obtiene una descripción por ID. nil si no existe.
func (uc *DescriptionUseCase) GetByID(id string) (*dto.DescriptionResponse, error) {
	desc, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if desc == nil {
		return nil, nil
	}
	return toDescriptionResponse(desc), nil
}

// GetByCategory obtiene la descripción de una categoría. nil si no existe.
func (uc *DescriptionUseCase) GetByCategory(categoryID string) (*dto.DescriptionResponse, error) {
	desc, err := uc.repo.GetByCategoryID(categoryID)
	if err != nil {
		return nil, err
	}
	if desc == nil {
		return nil, nil
	}
	return toDescriptionResponse(desc), nil
}

// List lista descripciones con paginación.
func (uc *DescriptionUseCase) List(perPage, page int) (*dto.DescriptionListResponse, error) {
	if perPage <= 0 {
		perPage = 15
	}
	if page <= 0 {
		page = 1
	}
	offset := (page - 1) * perPage
	items, err := uc.repo.List(perPage, offset)
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.Count()
	if err != nil {
		return nil, err
	}
	lastPage := (total + perPage - 1) / perPage
	if lastPage == 0 {
		lastPage = 1
	}
	out := make([]dto.DescriptionResponse, 0, len(items))
	for _, d := range items {
		out = append(out, *toDescriptionResponse(d))
	}
	return &dto.DescriptionListResponse{
		Items: out,
		Pagination: dto.Pagination{
			CurrentPage: page,
			PerPage:     perPage,
			Total:       total,
			LastPage:    lastPage,
		},
	}, nil
}

// ListAllByCategory devuelve todas las descripciones indexadas por category_id
// (consumo masivo desde el frontend).
func (uc *DescriptionUseCase) ListAllByCategory() (map[string]dto.DescriptionResponse, error) {
	items, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	out := make(map[string]dto.DescriptionResponse, len(items))
	for _, d := range items {
		out[d.CategoryID] = *toDescriptionResponse(d)
	}
	return out, nil
}

// Update modifica una descripción existente y la re-publica (best-effort).
func (uc *DescriptionUseCase) Update(ctx context.Context, id string, in dto.UpdateDescriptionRequest) (*dto.DescriptionResponse, error) {
	desc, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if desc == nil {
		return nil, nil
	}
	desc.Content = in.Content
	desc.HTMLContent = in.HTMLContent
	desc.UpdatedAt = time.Now()
	if err := uc.repo.Update(desc); err != nil {
		return nil, err
	}
	uc.pushToPlatform(ctx, desc.CategoryID, desc.HTMLContent)
	return toDescriptionResponse(desc), nil
}

// Delete elimina la descripción local. No toca la plataforma: Nuvemshop no
// tiene concepto de "sin descripción" separado de la categoría.
func (uc *DescriptionUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// pushToPlatform publica el markup en la primera tienda configurada.
// Un fallo aquí no revierte la escritura local; solo queda en el log.
// Pendiente de definición de producto: la respuesta al llamador sigue
// reportando éxito aunque la sincronización haya fallado.
func (uc *DescriptionUseCase) pushToPlatform(ctx context.Context, categoryID, htmlContent string) {
	store, err := uc.stores.First()
	if err != nil {
		uc.log.Warn().Err(err).Msg("no se pudo leer la tienda para sincronizar")
		return
	}
	if store == nil {
		return
	}
	if _, err := uc.api.UpdateCategoryDescription(ctx, store, categoryID, htmlContent); err != nil {
		uc.log.Warn().Err(err).
			Str("store_id", store.StoreID).
			Str("category_id", categoryID).
			Msg("sincronización con Nuvemshop fallida; el registro local queda divergente")
	}
}

func toDescriptionResponse(d *entity.CategoryDescription) *dto.DescriptionResponse {
	return &dto.DescriptionResponse{
		ID:          d.ID,
		CategoryID:  d.CategoryID,
		Content:     d.Content,
		HTMLContent: d.HTMLContent,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}
