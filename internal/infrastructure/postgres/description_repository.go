package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/nuvemshop-descriptions/internal/domain"
	"github.com/jhoicas/nuvemshop-descriptions/internal/domain/entity"
	"github.com/jhoicas/nuvemshop-descriptions/internal/domain/repository"
)

var _ repository.DescriptionRepository = (*DescriptionRepo)(nil)

// DescriptionRepo implementación del puerto DescriptionRepository sobre PostgreSQL.
type DescriptionRepo struct {
	q Querier
}

// NewDescriptionRepository construye el adaptador de persistencia para descripciones.
func NewDescriptionRepository(q Querier) *DescriptionRepo {
	return &DescriptionRepo{q: q}
}

const descriptionColumns = `id, category_id, content, html_content, created_at, updated_at`

// Create persiste una nueva descripción. category_id es único.
func (r *DescriptionRepo) Create(desc *entity.CategoryDescription) error {
	query := `
		INSERT INTO category_descriptions (id, category_id, content, html_content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		desc.ID, desc.CategoryID, desc.Content, desc.HTMLContent, desc.CreatedAt, desc.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert description: %w", err)
	}
	return nil
}

// GetByID obtiene una descripción por ID. nil si no existe.
func (r *DescriptionRepo) GetByID(id string) (*entity.CategoryDescription, error) {
	query := `SELECT ` + descriptionColumns + ` FROM category_descriptions WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByCategoryID obtiene la descripción de una categoría Nuvemshop. nil si no existe.
func (r *DescriptionRepo) GetByCategoryID(categoryID string) (*entity.CategoryDescription, error) {
	query := `SELECT ` + descriptionColumns + ` FROM category_descriptions WHERE category_id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, categoryID))
}

// Update actualiza contenido y markup de una descripción existente.
func (r *DescriptionRepo) Update(desc *entity.CategoryDescription) error {
	query := `
		UPDATE category_descriptions SET content = $2, html_content = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		desc.ID, desc.Content, desc.HTMLContent, desc.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update description: %w", err)
	}
	return nil
}

// List lista descripciones con paginación, más recientes primero.
func (r *DescriptionRepo) List(limit, offset int) ([]*entity.CategoryDescription, error) {
	query := `SELECT ` + descriptionColumns + ` FROM category_descriptions ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list descriptions: %w", err)
	}
	defer rows.Close()
	return r.scanMany(rows)
}

// ListAll devuelve todas las descripciones (endpoint público de consumo masivo).
func (r *DescriptionRepo) ListAll() ([]*entity.CategoryDescription, error) {
	query := `SELECT ` + descriptionColumns + ` FROM category_descriptions ORDER BY category_id ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list all descriptions: %w", err)
	}
	defer rows.Close()
	return r.scanMany(rows)
}

// Count devuelve el total de descripciones (metadatos de paginación).
func (r *DescriptionRepo) Count() (int, error) {
	var total int
	err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM category_descriptions`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count descriptions: %w", err)
	}
	return total, nil
}

// Delete elimina una descripción local. No toca la plataforma.
func (r *DescriptionRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM category_descriptions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete description: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *DescriptionRepo) scanOne(row pgx.Row) (*entity.CategoryDescription, error) {
	var d entity.CategoryDescription
	err := row.Scan(&d.ID, &d.CategoryID, &d.Content, &d.HTMLContent, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get description: %w", err)
	}
	return &d, nil
}

func (r *DescriptionRepo) scanMany(rows pgx.Rows) ([]*entity.CategoryDescription, error) {
	var out []*entity.CategoryDescription
	for rows.Next() {
		var d entity.CategoryDescription
		if err := rows.Scan(&d.ID, &d.CategoryID, &d.Content, &d.HTMLContent, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan description: %w", err)
		}
		out = append(out, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate descriptions: %w", err)
	}
	return out, nil
}
