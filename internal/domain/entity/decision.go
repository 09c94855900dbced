package entity

import "time"

// Verdict is the outcome of a quota check.
type Verdict string

const (
	// VerdictAllow lets the request through.
	VerdictAllow Verdict = "allow"
	// VerdictDenyPremiumExhausted means a premium user used up today's allowance.
	VerdictDenyPremiumExhausted Verdict = "deny_premium_exhausted"
	// VerdictDenyNeedsPurchase means the login bonus is spent and only a purchase helps.
	VerdictDenyNeedsPurchase Verdict = "deny_needs_purchase"
	// VerdictDenyNeedsLogin means logging in would unlock the bonus.
	VerdictDenyNeedsLogin Verdict = "deny_needs_login"
)

// String returns the string representation of the Verdict.
func (v Verdict) String() string {
	return string(v)
}

// Decision is the result of CheckAndConsume.
type Decision struct {
	Verdict           Verdict    `json:"verdict"`
	Tier              Tier       `json:"tier"`
	Used              int        `json:"used"`
	Limit             int        `json:"limit"`
	BonusGranted      bool       `json:"bonus_granted"` // This request triggered the login bonus.
	TempPremiumExpiry *time.Time `json:"temp_premium_expiry,omitempty"`
}

// Allowed reports whether the guarded action may proceed.
func (d *Decision) Allowed() bool {
	return d.Verdict == VerdictAllow
}

// EntitlementStatus summarizes a user's quota for display.
type EntitlementStatus struct {
	Tier               Tier       `json:"tier"`
	Used               int        `json:"used"`
	Limit              int        `json:"limit"`
	Remaining          int        `json:"remaining"`
	TempPremiumExpiry  *time.Time `json:"temp_premium_expiry,omitempty"`
	TempPremiumGranted bool       `json:"temp_premium_granted"`
	LoggedIn           bool       `json:"logged_in"`
}
