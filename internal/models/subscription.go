package models

import "time"

type PlanType string

const (
	PlanFree    PlanType = "free"
	PlanBasic   PlanType = "basic"
	PlanPro     PlanType = "pro"
	PlanPremium PlanType = "premium"
)

// UnlimitedListings marks a plan with no posting ceiling.
const UnlimitedListings = -1

// planListingLimits maps each plan to the number of properties a user may
// have posted at once.
var planListingLimits = map[PlanType]int{
	PlanFree:    3,
	PlanBasic:   10,
	PlanPro:     50,
	PlanPremium: UnlimitedListings,
}

func (p PlanType) Valid() bool {
	_, ok := planListingLimits[p]
	return ok
}

// ListingLimit returns the posting ceiling for the plan. Unknown plans get
// the free ceiling.
func (p PlanType) ListingLimit() int {
	if limit, ok := planListingLimits[p]; ok {
		return limit
	}
	return planListingLimits[PlanFree]
}

type Subscription struct {
	ID        int        `json:"id"`
	UserID    int        `json:"user_id"`
	PlanType  PlanType   `json:"plan_type"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

type UpgradeSubscriptionRequest struct {
	PlanType PlanType `json:"plan_type"`
}

type SubscriptionSummary struct {
	Subscription  Subscription `json:"subscription"`
	ListingLimit  int          `json:"listing_limit"`
	ActiveCount   int          `json:"active_count"`
	SlotsRemained int          `json:"slots_remaining"`
}
