package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema DDL idempotente de las dos tablas del servicio. La app es pequeña y
// se despliega sin tooling de migraciones; el DDL corre en el arranque.
const schema = `
CREATE TABLE IF NOT EXISTS stores (
	store_id         TEXT PRIMARY KEY,
	access_token     TEXT NOT NULL,
	refresh_token    TEXT,
	token_expires_at TIMESTAMPTZ,
	store_data       JSONB,
	created_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at       TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS category_descriptions (
	id           UUID PRIMARY KEY,
	category_id  TEXT NOT NULL UNIQUE,
	content      TEXT NOT NULL DEFAULT '',
	html_content TEXT NOT NULL DEFAULT '',
	created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

// EnsureSchema crea las tablas si no existen.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("crear esquema: %w", err)
	}
	return nil
}
