package entity

// Tier represents the access class that determines the daily limit.
type Tier string

const (
	// TierFree uses the free daily limit.
	TierFree Tier = "free"
	// TierTempPremium is the time-boxed login bonus.
	TierTempPremium Tier = "temp_premium"
	// TierPremium is the paid tier.
	TierPremium Tier = "premium"
)

// String returns the string representation of the Tier.
func (t Tier) String() string {
	return string(t)
}

// IsPremium reports whether the tier uses the premium daily limit.
func (t Tier) IsPremium() bool {
	return t == TierPremium || t == TierTempPremium
}
