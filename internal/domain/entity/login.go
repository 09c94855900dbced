package entity

import (
	"strings"
	"time"
	"unicode"
)

// LoginStep is the position of a user's login session.
type LoginStep string

const (
	// LoginStepIdle means no session is live.
	LoginStepIdle LoginStep = "idle"
	// LoginStepAwaitingPhone waits for the phone number.
	LoginStepAwaitingPhone LoginStep = "awaiting_phone"
	// LoginStepAwaitingCode waits for the one-time code.
	LoginStepAwaitingCode LoginStep = "awaiting_code"
	// LoginStepAwaitingPassword waits for the second factor.
	LoginStepAwaitingPassword LoginStep = "awaiting_password"
	// LoginStepCompleted is reported once the credential was stored. It is never retained.
	LoginStepCompleted LoginStep = "completed"
	// LoginStepCancelled is reported after an explicit cancel. It is never retained.
	LoginStepCancelled LoginStep = "cancelled"
)

// String returns the string representation of the LoginStep.
func (s LoginStep) String() string {
	return string(s)
}

// IsLive reports whether the step belongs to a retained session.
func (s LoginStep) IsLive() bool {
	switch s {
	case LoginStepAwaitingPhone, LoginStepAwaitingCode, LoginStepAwaitingPassword:
		return true
	default:
		return false
	}
}

// LoginResult describes where a login command left the user.
type LoginResult struct {
	Step              LoginStep  `json:"step"`
	BonusGranted      bool       `json:"bonus_granted,omitempty"`
	TempPremiumExpiry *time.Time `json:"temp_premium_expiry,omitempty"`
}

// NormalizePhoneNumber strips whitespace and prefixes "+" when missing.
func NormalizePhoneNumber(raw string) string {
	phone := stripSpaces(raw)
	if phone != "" && !strings.HasPrefix(phone, "+") {
		phone = "+" + phone
	}

	return phone
}

// NormalizeCode strips whitespace from a one-time code.
func NormalizeCode(raw string) string {
	return stripSpaces(raw)
}

func stripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}

		return r
	}, s)
}
