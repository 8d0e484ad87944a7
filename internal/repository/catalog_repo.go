package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"retire-explorer/internal/domain"
)

// CatalogRepository carga las opciones de una dimensión desde almacenamiento.
type CatalogRepository interface {
	EnsureSchema(ctx context.Context) error
	LoadOptions(ctx context.Context, dim domain.Dimension) ([]domain.Option, error)
}

// pgQuerier es el subconjunto de *pgxpool.Pool que usa el repositorio.
type pgQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type PgCatalogRepository struct {
	pool pgQuerier
}

func NewPgCatalogRepository(pool pgQuerier) *PgCatalogRepository {
	return &PgCatalogRepository{pool: pool}
}

const catalogSchema = `
	CREATE TABLE IF NOT EXISTS dimension_options (
		dimension   TEXT NOT NULL,
		id          TEXT NOT NULL,
		title       TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		position    INT  NOT NULL DEFAULT 0,
		PRIMARY KEY (dimension, id)
	)
`

// EnsureSchema crea la tabla si no existe.
func (r *PgCatalogRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, catalogSchema)
	return err
}

func (r *PgCatalogRepository) LoadOptions(ctx context.Context, dim domain.Dimension) ([]domain.Option, error) {
	const query = `
		SELECT id, title, description
		FROM dimension_options
		WHERE dimension = $1
		ORDER BY position, id
	`

	rows, err := r.pool.Query(ctx, query, string(dim))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var options []domain.Option
	for rows.Next() {
		var o domain.Option
		if err := rows.Scan(&o.ID, &o.Title, &o.Description); err != nil {
			return nil, err
		}
		options = append(options, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return options, nil
}
