package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ventureforge/internal/domain"
)

// IdeaRepositoryPG implements domain.IdeaRepository backed by PostgreSQL.
type IdeaRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewIdeaRepository creates a new IdeaRepositoryPG.
func NewIdeaRepository(pool *pgxpool.Pool) *IdeaRepositoryPG {
	return &IdeaRepositoryPG{pool: pool}
}

// Create inserts a new idea.
func (r *IdeaRepositoryPG) Create(ctx context.Context, idea *domain.Idea) error {
	row := r.pool.QueryRow(ctx, `
INSERT INTO ideas (id, title, description, industry, target_audience, tier, price, status, user_id)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING created_at, updated_at;
`, idea.ID, idea.Title, idea.Description, idea.Industry, idea.TargetAudience, idea.Tier, idea.Price, idea.Status, idea.UserID)
	return row.Scan(&idea.CreatedAt, &idea.UpdatedAt)
}

// GetByID fetches a bare idea row.
func (r *IdeaRepositoryPG) GetByID(ctx context.Context, id string) (*domain.Idea, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, title, description, industry, target_audience, tier, price, status, user_id, created_at, updated_at
FROM ideas
WHERE id = $1;
`, id)
	return scanIdea(row)
}

// GetDetail fetches an idea with its owner, deliverables, payments and
// message thread.
func (r *IdeaRepositoryPG) GetDetail(ctx context.Context, id string) (*domain.IdeaDetail, error) {
	row := r.pool.QueryRow(ctx, `
SELECT i.id, i.title, i.description, i.industry, i.target_audience, i.tier, i.price, i.status, i.user_id, i.created_at, i.updated_at,
       u.id, u.name, u.email, u.role
FROM ideas i
JOIN users u ON u.id = i.user_id
WHERE i.id = $1;
`, id)

	var d domain.IdeaDetail
	if err := row.Scan(
		&d.ID, &d.Title, &d.Description, &d.Industry, &d.TargetAudience, &d.Tier, &d.Price, &d.Status, &d.UserID, &d.CreatedAt, &d.UpdatedAt,
		&d.Owner.ID, &d.Owner.Name, &d.Owner.Email, &d.Owner.Role,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	deliverables, err := r.listDeliverables(ctx, id)
	if err != nil {
		return nil, err
	}
	d.Deliverables = deliverables

	payments, err := r.listPayments(ctx, id)
	if err != nil {
		return nil, err
	}
	d.Payments = payments

	messages, err := r.listMessages(ctx, id)
	if err != nil {
		return nil, err
	}
	d.Messages = messages

	return &d, nil
}

// List returns all ideas newest first, with owner and relation counts.
func (r *IdeaRepositoryPG) List(ctx context.Context) ([]domain.IdeaListItem, error) {
	return r.list(ctx, "")
}

// ListByOwner returns the owner's ideas newest first.
func (r *IdeaRepositoryPG) ListByOwner(ctx context.Context, userID string) ([]domain.IdeaListItem, error) {
	return r.list(ctx, userID)
}

func (r *IdeaRepositoryPG) list(ctx context.Context, ownerID string) ([]domain.IdeaListItem, error) {
	query := `
SELECT i.id, i.title, i.description, i.industry, i.target_audience, i.tier, i.price, i.status, i.user_id, i.created_at, i.updated_at,
       u.id, u.name, u.email, u.role,
       (SELECT COUNT(*) FROM deliverables d WHERE d.idea_id = i.id),
       (SELECT COUNT(*) FROM payments p WHERE p.idea_id = i.id),
       (SELECT COUNT(*) FROM messages m WHERE m.idea_id = i.id)
FROM ideas i
JOIN users u ON u.id = i.user_id
`
	args := []any{}
	if ownerID != "" {
		query += "WHERE i.user_id = $1\n"
		args = append(args, ownerID)
	}
	query += "ORDER BY i.created_at DESC;"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.IdeaListItem
	for rows.Next() {
		var it domain.IdeaListItem
		if err := rows.Scan(
			&it.ID, &it.Title, &it.Description, &it.Industry, &it.TargetAudience, &it.Tier, &it.Price, &it.Status, &it.UserID, &it.CreatedAt, &it.UpdatedAt,
			&it.Owner.ID, &it.Owner.Name, &it.Owner.Email, &it.Owner.Role,
			&it.DeliverableCount, &it.PaymentCount, &it.MessageCount,
		); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateStatus sets a new lifecycle status and returns the updated row.
func (r *IdeaRepositoryPG) UpdateStatus(ctx context.Context, id string, status domain.IdeaStatus) (*domain.Idea, error) {
	row := r.pool.QueryRow(ctx, `
UPDATE ideas
SET status = $2, updated_at = NOW()
WHERE id = $1
RETURNING id, title, description, industry, target_audience, tier, price, status, user_id, created_at, updated_at;
`, id, status)
	return scanIdea(row)
}

func (r *IdeaRepositoryPG) listDeliverables(ctx context.Context, ideaID string) ([]domain.Deliverable, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, name, description, type, file_url, content, status, idea_id, created_at, updated_at
FROM deliverables
WHERE idea_id = $1
ORDER BY created_at ASC;
`, ideaID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Deliverable
	for rows.Next() {
		var d domain.Deliverable
		if err := rows.Scan(&d.ID, &d.Name, &d.Description, &d.Type, &d.FileURL, &d.Content, &d.Status, &d.IdeaID, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *IdeaRepositoryPG) listPayments(ctx context.Context, ideaID string) ([]domain.Payment, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, amount, currency, status, stripe_payment_id, country, user_id, idea_id, created_at, updated_at
FROM payments
WHERE idea_id = $1
ORDER BY created_at DESC;
`, ideaID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Payment
	for rows.Next() {
		var p domain.Payment
		if err := rows.Scan(&p.ID, &p.Amount, &p.Currency, &p.Status, &p.StripePaymentID, &p.Country, &p.UserID, &p.IdeaID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *IdeaRepositoryPG) listMessages(ctx context.Context, ideaID string) ([]domain.Message, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, content, sender, idea_id, created_at
FROM messages
WHERE idea_id = $1
ORDER BY created_at ASC;
`, ideaID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Message
	for rows.Next() {
		var m domain.Message
		if err := rows.Scan(&m.ID, &m.Content, &m.Sender, &m.IdeaID, &m.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func scanIdea(row pgx.Row) (*domain.Idea, error) {
	var i domain.Idea
	if err := row.Scan(&i.ID, &i.Title, &i.Description, &i.Industry, &i.TargetAudience, &i.Tier, &i.Price, &i.Status, &i.UserID, &i.CreatedAt, &i.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &i, nil
}
