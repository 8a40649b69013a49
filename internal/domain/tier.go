package domain

// ServiceTier enumerates the fixed service offering levels.
type ServiceTier string

const (
	TierValidation  ServiceTier = "VALIDATION"
	TierBlueprint   ServiceTier = "BLUEPRINT"
	TierLaunchReady ServiceTier = "LAUNCH_READY"
	TierEnterprise  ServiceTier = "ENTERPRISE"
)

// TierInfo describes a service tier as presented to clients.
type TierInfo struct {
	Tier         ServiceTier
	Name         string
	Price        int64
	Description  string
	Features     []string
	Deliverables []DeliverableType
	Timeline     string
}

// serviceTiers is the fixed catalog. Prices are integers in the base
// currency unit; conversion to gateway minor units happens at the
// Stripe boundary only.
var serviceTiers = []TierInfo{
	{
		Tier:        TierValidation,
		Name:        "Idea Validation",
		Price:       499,
		Description: "Quick market assessment to validate your business idea",
		Features: []string{
			"Market size analysis",
			"Competitor research",
			"Target audience identification",
			"Feasibility assessment",
			"2-week turnaround",
		},
		Deliverables: []DeliverableType{DeliverableMarketResearch},
		Timeline:     "2 weeks",
	},
	{
		Tier:        TierBlueprint,
		Name:        "Business Blueprint",
		Price:       2999,
		Description: "Complete business foundation with detailed strategy",
		Features: []string{
			"Everything in Validation",
			"Comprehensive business plan",
			"Financial projections",
			"Go-to-market strategy",
			"Brand identity basics",
			"4-6 week turnaround",
		},
		Deliverables: []DeliverableType{
			DeliverableMarketResearch,
			DeliverableBusinessPlan,
			DeliverableFinancialModel,
			DeliverableMarketingStrategy,
			DeliverableBrandIdentity,
		},
		Timeline: "4-6 weeks",
	},
	{
		Tier:        TierLaunchReady,
		Name:        "Launch-Ready Package",
		Price:       9999,
		Description: "Everything you need to launch your business",
		Features: []string{
			"Everything in Blueprint",
			"Complete brand identity",
			"Legal structure setup",
			"Team hiring plan",
			"Technical requirements",
			"Investor pitch deck",
			"8-10 week turnaround",
		},
		Deliverables: []DeliverableType{
			DeliverableMarketResearch,
			DeliverableBusinessPlan,
			DeliverableFinancialModel,
			DeliverableMarketingStrategy,
			DeliverableBrandIdentity,
			DeliverableLegalStructure,
			DeliverableTeamRecommendations,
			DeliverableTechnicalRequirements,
		},
		Timeline: "8-10 weeks",
	},
	{
		Tier:        TierEnterprise,
		Name:        "Enterprise Innovation",
		Price:       25000,
		Description: "Custom enterprise solutions and innovation programs",
		Features: []string{
			"Custom scope and timeline",
			"Dedicated team assignment",
			"Multiple idea development",
			"Innovation process setup",
			"Training and workshops",
			"Ongoing support",
		},
		Deliverables: []DeliverableType{
			DeliverableMarketResearch,
			DeliverableBusinessPlan,
			DeliverableFinancialModel,
			DeliverableMarketingStrategy,
			DeliverableBrandIdentity,
			DeliverableLegalStructure,
			DeliverableTeamRecommendations,
			DeliverableTechnicalRequirements,
		},
		Timeline: "Custom",
	},
}

// Tiers returns the full tier catalog.
func Tiers() []TierInfo {
	out := make([]TierInfo, len(serviceTiers))
	copy(out, serviceTiers)
	return out
}

// TierByID looks up a tier in the catalog.
func TierByID(tier ServiceTier) (TierInfo, error) {
	for _, t := range serviceTiers {
		if t.Tier == tier {
			return t, nil
		}
	}
	return TierInfo{}, ErrUnknownTier
}

// PriceFor returns the fixed price for the given tier.
func PriceFor(tier ServiceTier) (int64, error) {
	t, err := TierByID(tier)
	if err != nil {
		return 0, err
	}
	return t.Price, nil
}
