package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ventureforge/internal/domain"
)

// PortfolioRepositoryPG implements domain.PortfolioRepository backed by
// PostgreSQL.
type PortfolioRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewPortfolioRepository creates a new PortfolioRepositoryPG.
func NewPortfolioRepository(pool *pgxpool.Pool) *PortfolioRepositoryPG {
	return &PortfolioRepositoryPG{pool: pool}
}

// List returns published case studies, featured first then newest.
func (r *PortfolioRepositoryPG) List(ctx context.Context, filter domain.PortfolioFilter) ([]domain.PortfolioItem, error) {
	query := `
SELECT id, title, description, industry, challenge, solution, results, image_url, tier, featured, created_at, updated_at
FROM portfolio_items
`
	var (
		conds []string
		args  []any
	)
	if filter.Industry != "" {
		args = append(args, "%"+filter.Industry+"%")
		conds = append(conds, fmt.Sprintf("industry ILIKE $%d", len(args)))
	}
	if filter.Tier != "" {
		args = append(args, filter.Tier)
		conds = append(conds, fmt.Sprintf("tier = $%d", len(args)))
	}
	if filter.Featured != nil {
		args = append(args, *filter.Featured)
		conds = append(conds, fmt.Sprintf("featured = $%d", len(args)))
	}
	for i, cond := range conds {
		if i == 0 {
			query += "WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += "\nORDER BY featured DESC, created_at DESC;"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.PortfolioItem
	for rows.Next() {
		var it domain.PortfolioItem
		if err := rows.Scan(&it.ID, &it.Title, &it.Description, &it.Industry, &it.Challenge, &it.Solution, &it.Results, &it.ImageURL, &it.Tier, &it.Featured, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// GetByID fetches a single case study.
func (r *PortfolioRepositoryPG) GetByID(ctx context.Context, id string) (*domain.PortfolioItem, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, title, description, industry, challenge, solution, results, image_url, tier, featured, created_at, updated_at
FROM portfolio_items
WHERE id = $1;
`, id)

	var it domain.PortfolioItem
	if err := row.Scan(&it.ID, &it.Title, &it.Description, &it.Industry, &it.Challenge, &it.Solution, &it.Results, &it.ImageURL, &it.Tier, &it.Featured, &it.CreatedAt, &it.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &it, nil
}
