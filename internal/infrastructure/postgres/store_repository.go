package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/nuvemshop-descriptions/internal/domain/entity"
	"github.com/jhoicas/nuvemshop-descriptions/internal/domain/repository"
)

var _ repository.StoreRepository = (*StoreRepo)(nil)

// StoreRepo implementación del puerto StoreRepository sobre PostgreSQL.
type StoreRepo struct {
	q Querier
}

// NewStoreRepository construye el adaptador de persistencia para credenciales de tiendas.
func NewStoreRepository(q Querier) *StoreRepo {
	return &StoreRepo{q: q}
}

const storeColumns = `store_id, access_token, refresh_token, token_expires_at, store_data, created_at, updated_at`

// FindByStoreID obtiene una tienda por su identificador Nuvemshop. nil si no existe.
func (r *StoreRepo) FindByStoreID(storeID string) (*entity.Store, error) {
	query := `SELECT ` + storeColumns + ` FROM stores WHERE store_id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, storeID))
}

// First devuelve la tienda configurada más antigua, o nil si no hay ninguna.
// Soporta el despliegue mono-tienda: la instalación única es "la" tienda.
func (r *StoreRepo) First() (*entity.Store, error) {
	query := `SELECT ` + storeColumns + ` FROM stores ORDER BY created_at ASC LIMIT 1`
	return r.scanOne(r.q.QueryRow(context.Background(), query))
}

// Upsert crea o reemplaza las credenciales de una tienda (clave: store_id).
func (r *StoreRepo) Upsert(store *entity.Store) error {
	query := `
		INSERT INTO stores (store_id, access_token, refresh_token, token_expires_at, store_data, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (store_id) DO UPDATE SET
			access_token = EXCLUDED.access_token,
			refresh_token = EXCLUDED.refresh_token,
			token_expires_at = EXCLUDED.token_expires_at,
			store_data = EXCLUDED.store_data,
			updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		store.StoreID, store.AccessToken, nullIfEmpty(store.RefreshToken),
		store.TokenExpiresAt, store.StoreData, store.CreatedAt, store.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert store: %w", err)
	}
	return nil
}

func (r *StoreRepo) scanOne(row pgx.Row) (*entity.Store, error) {
	var s entity.Store
	var refreshToken *string
	err := row.Scan(&s.StoreID, &s.AccessToken, &refreshToken, &s.TokenExpiresAt, &s.StoreData, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get store: %w", err)
	}
	if refreshToken != nil {
		s.RefreshToken = *refreshToken
	}
	return &s, nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
