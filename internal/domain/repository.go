package domain

import "context"

// UserRepository defines access methods for users.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	List(ctx context.Context) ([]User, error)
}

// IdeaRepository defines persistence for ideas.
type IdeaRepository interface {
	Create(ctx context.Context, idea *Idea) error
	GetByID(ctx context.Context, id string) (*Idea, error)
	GetDetail(ctx context.Context, id string) (*IdeaDetail, error)
	List(ctx context.Context) ([]IdeaListItem, error)
	ListByOwner(ctx context.Context, userID string) ([]IdeaListItem, error)
	UpdateStatus(ctx context.Context, id string, status IdeaStatus) (*Idea, error)
}

// PaymentRepository defines persistence for payments.
type PaymentRepository interface {
	Create(ctx context.Context, payment *Payment) error
	GetByIntentID(ctx context.Context, intentID string) (*Payment, error)
	HasCompletedForIdea(ctx context.Context, ideaID string) (bool, error)
	// Complete marks the payment identified by the gateway intent id as
	// COMPLETED and advances its idea to IN_REVIEW in a single
	// transaction. When another confirmation already won the race, the
	// existing completed payment is returned with transitioned=false and
	// no second idea transition occurs.
	Complete(ctx context.Context, intentID string) (payment *Payment, transitioned bool, err error)
	ListByUser(ctx context.Context, userID string) ([]PaymentWithIdea, error)
}

// PortfolioRepository serves the public case-study listing.
type PortfolioRepository interface {
	List(ctx context.Context, filter PortfolioFilter) ([]PortfolioItem, error)
	GetByID(ctx context.Context, id string) (*PortfolioItem, error)
}
