package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ventureforge/internal/domain"
)

// PaymentRepositoryPG implements domain.PaymentRepository backed by
// PostgreSQL.
type PaymentRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewPaymentRepository creates a new PaymentRepositoryPG.
func NewPaymentRepository(pool *pgxpool.Pool) *PaymentRepositoryPG {
	return &PaymentRepositoryPG{pool: pool}
}

// Create inserts a new pending payment record.
func (r *PaymentRepositoryPG) Create(ctx context.Context, payment *domain.Payment) error {
	row := r.pool.QueryRow(ctx, `
INSERT INTO payments (id, amount, currency, status, stripe_payment_id, country, user_id, idea_id)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING created_at, updated_at;
`, payment.ID, payment.Amount, payment.Currency, payment.Status, payment.StripePaymentID, payment.Country, payment.UserID, payment.IdeaID)
	return row.Scan(&payment.CreatedAt, &payment.UpdatedAt)
}

// GetByIntentID fetches the payment recorded for a gateway intent.
func (r *PaymentRepositoryPG) GetByIntentID(ctx context.Context, intentID string) (*domain.Payment, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, amount, currency, status, stripe_payment_id, country, user_id, idea_id, created_at, updated_at
FROM payments
WHERE stripe_payment_id = $1;
`, intentID)
	return scanPayment(row)
}

// HasCompletedForIdea reports whether the idea is already paid for.
func (r *PaymentRepositoryPG) HasCompletedForIdea(ctx context.Context, ideaID string) (bool, error) {
	row := r.pool.QueryRow(ctx, `
SELECT EXISTS (
    SELECT 1 FROM payments WHERE idea_id = $1 AND status = 'COMPLETED'
);
`, ideaID)

	var exists bool
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// Complete settles the payment for a gateway intent and advances its
// idea to IN_REVIEW in one transaction. The UPDATE is conditional on
// the payment not being COMPLETED yet, so concurrent confirmations of
// the same intent settle exactly once; losers observe the already
// completed row with transitioned=false.
func (r *PaymentRepositoryPG) Complete(ctx context.Context, intentID string) (*domain.Payment, bool, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, false, err
	}
	defer tx.Rollback(ctx)

	row := tx.QueryRow(ctx, `
UPDATE payments
SET status = 'COMPLETED', updated_at = NOW()
WHERE stripe_payment_id = $1 AND status <> 'COMPLETED'
RETURNING id, amount, currency, status, stripe_payment_id, country, user_id, idea_id, created_at, updated_at;
`, intentID)

	payment, err := scanPayment(row)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, false, err
		}
		// Either the intent is unknown or another confirmation won.
		existing, err := r.GetByIntentID(ctx, intentID)
		if err != nil {
			return nil, false, err
		}
		return existing, false, nil
	}

	if _, err := tx.Exec(ctx, `
UPDATE ideas
SET status = 'IN_REVIEW', updated_at = NOW()
WHERE id = $1;
`, payment.IdeaID); err != nil {
		return nil, false, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, false, err
	}
	return payment, true, nil
}

// ListByUser returns the user's payment history newest first, with
// each payment's idea title and tier joined in.
func (r *PaymentRepositoryPG) ListByUser(ctx context.Context, userID string) ([]domain.PaymentWithIdea, error) {
	rows, err := r.pool.Query(ctx, `
SELECT p.id, p.amount, p.currency, p.status, p.stripe_payment_id, p.country, p.user_id, p.idea_id, p.created_at, p.updated_at,
       i.title, i.tier
FROM payments p
JOIN ideas i ON i.id = p.idea_id
WHERE p.user_id = $1
ORDER BY p.created_at DESC;
`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.PaymentWithIdea
	for rows.Next() {
		var it domain.PaymentWithIdea
		if err := rows.Scan(
			&it.ID, &it.Amount, &it.Currency, &it.Status, &it.StripePaymentID, &it.Country, &it.UserID, &it.IdeaID, &it.CreatedAt, &it.UpdatedAt,
			&it.IdeaTitle, &it.IdeaTier,
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

func scanPayment(row pgx.Row) (*domain.Payment, error) {
	var p domain.Payment
	if err := row.Scan(&p.ID, &p.Amount, &p.Currency, &p.Status, &p.StripePaymentID, &p.Country, &p.UserID, &p.IdeaID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}
