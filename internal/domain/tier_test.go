package domain

import (
	"errors"
	"testing"
)

func TestPriceForKnownTiers(t *testing.T) {
	tests := []struct {
		tier ServiceTier
		want int64
	}{
		{TierValidation, 499},
		{TierBlueprint, 2999},
		{TierLaunchReady, 9999},
		{TierEnterprise, 25000},
	}
	for _, tc := range tests {
		t.Run(string(tc.tier), func(t *testing.T) {
			got, err := PriceFor(tc.tier)
			if err != nil {
				t.Fatalf("PriceFor(%s) unexpected error: %v", tc.tier, err)
			}
			if got != tc.want {
				t.Fatalf("PriceFor(%s) = %d, want %d", tc.tier, got, tc.want)
			}
		})
	}
}

func TestPriceForUnknownTier(t *testing.T) {
	if _, err := PriceFor(ServiceTier("PLATINUM")); !errors.Is(err, ErrUnknownTier) {
		t.Fatalf("PriceFor(PLATINUM) error = %v, want ErrUnknownTier", err)
	}
	if _, err := PriceFor(""); !errors.Is(err, ErrUnknownTier) {
		t.Fatalf("PriceFor(\"\") error = %v, want ErrUnknownTier", err)
	}
}

func TestTierDeliverablesGrowWithTier(t *testing.T) {
	tiers := Tiers()
	if len(tiers) != 4 {
		t.Fatalf("Tiers() returned %d tiers, want 4", len(tiers))
	}
	for i := 1; i < len(tiers); i++ {
		if len(tiers[i].Deliverables) < len(tiers[i-1].Deliverables) {
			t.Fatalf("tier %s has fewer deliverables than %s", tiers[i].Tier, tiers[i-1].Tier)
		}
	}
}

func TestValidIdeaStatus(t *testing.T) {
	for _, s := range []IdeaStatus{
		IdeaStatusSubmitted, IdeaStatusInReview, IdeaStatusInProgress,
		IdeaStatusCompleted, IdeaStatusDelivered, IdeaStatusCancelled,
	} {
		if !ValidIdeaStatus(s) {
			t.Fatalf("ValidIdeaStatus(%s) = false, want true", s)
		}
	}
	if ValidIdeaStatus("ARCHIVED") {
		t.Fatalf("ValidIdeaStatus(ARCHIVED) = true, want false")
	}
}
