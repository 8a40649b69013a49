package domain

import "time"

// IdeaStatus enumerates idea lifecycle states.
type IdeaStatus string

const (
	IdeaStatusSubmitted  IdeaStatus = "SUBMITTED"
	IdeaStatusInReview   IdeaStatus = "IN_REVIEW"
	IdeaStatusInProgress IdeaStatus = "IN_PROGRESS"
	IdeaStatusCompleted  IdeaStatus = "COMPLETED"
	IdeaStatusDelivered  IdeaStatus = "DELIVERED"
	IdeaStatusCancelled  IdeaStatus = "CANCELLED"
)

// ValidIdeaStatus reports whether s is a member of the status enum.
// Transitions are validated by set membership only; arbitrary jumps
// between enumerated states are accepted.
func ValidIdeaStatus(s IdeaStatus) bool {
	switch s {
	case IdeaStatusSubmitted, IdeaStatusInReview, IdeaStatusInProgress,
		IdeaStatusCompleted, IdeaStatusDelivered, IdeaStatusCancelled:
		return true
	}
	return false
}

// Idea is a client-submitted business concept under service by the
// platform. Price is fixed at creation from the tier catalog and never
// user-supplied. Ideas are never deleted; only their status moves.
type Idea struct {
	ID             string
	Title          string
	Description    string
	Industry       string
	TargetAudience *string
	Tier           ServiceTier
	Price          int64
	Status         IdeaStatus
	UserID         string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IdeaOwner is the owner summary attached to idea listings.
type IdeaOwner struct {
	ID    string
	Name  string
	Email string
	Role  Role
}

// IdeaListItem is an idea row as returned by listings, with its owner
// and relation counts.
type IdeaListItem struct {
	Idea
	Owner            IdeaOwner
	DeliverableCount int
	PaymentCount     int
	MessageCount     int
}

// IdeaDetail is an idea with its related records joined in.
type IdeaDetail struct {
	Idea
	Owner        IdeaOwner
	Deliverables []Deliverable
	Payments     []Payment
	Messages     []Message
}

// DeliverableType enumerates the kinds of work product a tier includes.
type DeliverableType string

const (
	DeliverableMarketResearch        DeliverableType = "MARKET_RESEARCH"
	DeliverableBusinessPlan          DeliverableType = "BUSINESS_PLAN"
	DeliverableBrandIdentity         DeliverableType = "BRAND_IDENTITY"
	DeliverableFinancialModel        DeliverableType = "FINANCIAL_MODEL"
	DeliverableTeamRecommendations   DeliverableType = "TEAM_RECOMMENDATIONS"
	DeliverableLegalStructure        DeliverableType = "LEGAL_STRUCTURE"
	DeliverableMarketingStrategy     DeliverableType = "MARKETING_STRATEGY"
	DeliverableTechnicalRequirements DeliverableType = "TECHNICAL_REQUIREMENTS"
)

// DeliverableStatus enumerates deliverable progress states.
type DeliverableStatus string

const (
	DeliverableStatusPending    DeliverableStatus = "PENDING"
	DeliverableStatusInProgress DeliverableStatus = "IN_PROGRESS"
	DeliverableStatusCompleted  DeliverableStatus = "COMPLETED"
	DeliverableStatusDelivered  DeliverableStatus = "DELIVERED"
)

// Deliverable is a unit of work product attached to an idea.
type Deliverable struct {
	ID          string
	Name        string
	Description *string
	Type        DeliverableType
	FileURL     *string
	Content     *string
	Status      DeliverableStatus
	IdeaID      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// MessageSender enumerates who authored a message on an idea thread.
type MessageSender string

const (
	MessageSenderClient MessageSender = "CLIENT"
	MessageSenderAdmin  MessageSender = "ADMIN"
)

// Message is a note exchanged between the client and the studio on an
// idea thread.
type Message struct {
	ID        string
	Content   string
	Sender    MessageSender
	IdeaID    string
	CreatedAt time.Time
}
