package ports

import (
	"context"

	"github.com/jhoicas/nuvemshop-descriptions/internal/domain/entity"
	"github.com/jhoicas/nuvemshop-descriptions/internal/infrastructure/nuvemshop"
)

// CategoryAPI puerto hacia la API de categorías de la plataforma.
// Las operaciones de lectura reciben la tienda ya resuelta; la actualización
// aplica leer-combinar-escribir del lado del adaptador.
type CategoryAPI interface {
	ListCategories(ctx context.Context, store *entity.Store) ([]nuvemshop.Category, error)
	GetCategory(ctx context.Context, store *entity.Store, categoryID string) (*nuvemshop.Category, error)
	UpdateCategoryDescription(ctx context.Context, store *entity.Store, categoryID, htmlDescription string) (*nuvemshop.Category, error)
}

// PlatformAuthorizer puerto del intercambio de código de instalación por token.
type PlatformAuthorizer interface {
	Authorize(ctx context.Context, code string) (*nuvemshop.TokenResponse, error)
}
