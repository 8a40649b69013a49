package domain

import "time"

// PortfolioItem is a published case study shown on the public site.
type PortfolioItem struct {
	ID          string
	Title       string
	Description string
	Industry    string
	Challenge   string
	Solution    string
	Results     string
	ImageURL    *string
	Tier        ServiceTier
	Featured    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PortfolioFilter narrows portfolio listings. Zero values mean "no
// filter" for that dimension.
type PortfolioFilter struct {
	Industry string // case-insensitive substring match
	Tier     ServiceTier
	Featured *bool
}
