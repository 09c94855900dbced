// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Account is the persistent per-user record the entitlement rules work on.
// It is created lazily on first interaction.
type Account struct {
	ID                 int64      // The chat platform's stable user identifier.
	DisplayName        string     // Best-effort label, informational only.
	DailyUsed          int        // Items consumed in the current daily window.
	IsPremium          bool       // Set out of band by the payment process.
	TempPremiumExpiry  *time.Time // Premium quota applies while this is in the future.
	TempPremiumGranted bool       // Monotonic, true once the login bonus has been handed out.
	Credential         []byte     // Sealed credential of a completed external login, nil when logged out.
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Usage is the projection of an Account the quota decision needs.
type Usage struct {
	DailyUsed          int
	IsPremium          bool
	TempPremiumExpiry  *time.Time
	TempPremiumGranted bool
}

// Usage projects the account onto its quota fields.
func (a *Account) Usage() *Usage {
	return &Usage{
		DailyUsed:          a.DailyUsed,
		IsPremium:          a.IsPremium,
		TempPremiumExpiry:  a.TempPremiumExpiry,
		TempPremiumGranted: a.TempPremiumGranted,
	}
}

// HasCredential reports whether the user completed an external login and has not logged out.
func (a *Account) HasCredential() bool {
	return len(a.Credential) > 0
}

// Tier computes the access tier at the given instant.
func (u *Usage) Tier(now time.Time) Tier {
	if u.IsPremium {
		return TierPremium
	}
	if u.TempPremiumExpiry != nil && u.TempPremiumExpiry.After(now) {
		return TierTempPremium
	}

	return TierFree
}
