package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUsage_Tier(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 2, 12, 0, 0, 0, time.UTC)
	future := now.Add(time.Hour)
	past := now.Add(-time.Second)

	tests := []struct {
		name  string
		usage Usage
		want  Tier
	}{
		{name: "fresh user", usage: Usage{}, want: TierFree},
		{name: "permanent premium", usage: Usage{IsPremium: true, TempPremiumExpiry: &past}, want: TierPremium},
		{name: "bonus active", usage: Usage{TempPremiumExpiry: &future}, want: TierTempPremium},
		{name: "bonus expired", usage: Usage{TempPremiumExpiry: &past, TempPremiumGranted: true}, want: TierFree},
		{name: "bonus expires exactly now", usage: Usage{TempPremiumExpiry: &now}, want: TierFree},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.usage.Tier(now))
		})
	}
}

func TestNormalizePhoneNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want string
	}{
		{raw: "919876543210", want: "+919876543210"},
		{raw: "+91 98765 43210", want: "+919876543210"},
		{raw: " 91\t98765\n43210 ", want: "+919876543210"},
		{raw: "+14155550100", want: "+14155550100"},
		{raw: "   ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, NormalizePhoneNumber(tt.raw))
		})
	}
}

func TestNormalizeCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "12345", NormalizeCode("1 2 3 4 5"))
	assert.Equal(t, "12345", NormalizeCode("12345\n"))
}

func TestLoginStep_IsLive(t *testing.T) {
	t.Parallel()

	assert.True(t, LoginStepAwaitingPhone.IsLive())
	assert.True(t, LoginStepAwaitingCode.IsLive())
	assert.True(t, LoginStepAwaitingPassword.IsLive())
	assert.False(t, LoginStepIdle.IsLive())
	assert.False(t, LoginStepCompleted.IsLive())
	assert.False(t, LoginStepCancelled.IsLive())
}

func TestAccount_UsageAndCredential(t *testing.T) {
	t.Parallel()

	expiry := time.Now().Add(time.Hour)
	account := &Account{ID: 7, DailyUsed: 3, TempPremiumExpiry: &expiry, TempPremiumGranted: true}

	usage := account.Usage()
	assert.Equal(t, 3, usage.DailyUsed)
	assert.True(t, usage.TempPremiumGranted)
	assert.False(t, account.HasCredential())

	account.Credential = []byte("sealed")
	assert.True(t, account.HasCredential())
}
