package sealer

import (
	"io"
	"log/slog"
	"testing"

	"vidgate/config"

	"filippo.io/age"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAgeSealer_RoundTrip(t *testing.T) {
	identity, err := age.GenerateX25519Identity()
	require.NoError(t, err)

	s, err := NewAge(identity.Recipient().String(), identity.String())
	require.NoError(t, err)

	sealed, err := s.Seal([]byte("session-string"))
	require.NoError(t, err)
	assert.NotContains(t, string(sealed), "session-string")

	opened, err := s.Open(sealed)
	require.NoError(t, err)
	assert.Equal(t, []byte("session-string"), opened)
}

func TestAgeSealer_WrongIdentity(t *testing.T) {
	owner, err := age.GenerateX25519Identity()
	require.NoError(t, err)
	other, err := age.GenerateX25519Identity()
	require.NoError(t, err)

	sealing, err := NewAge(owner.Recipient().String(), "")
	require.NoError(t, err)
	sealed, err := sealing.Seal([]byte("secret"))
	require.NoError(t, err)

	_, err = sealing.Open(sealed)
	require.ErrorIs(t, err, ErrNoIdentity)

	opening, err := NewAge(other.Recipient().String(), other.String())
	require.NoError(t, err)
	_, err = opening.Open(sealed)
	require.Error(t, err)
}

func TestNewAge_InvalidKeys(t *testing.T) {
	_, err := NewAge("not-a-key", "")
	require.Error(t, err)

	identity, err := age.GenerateX25519Identity()
	require.NoError(t, err)
	_, err = NewAge(identity.Recipient().String(), "AGE-SECRET-KEY-BROKEN")
	require.Error(t, err)
}

func TestNew_FallsBackToPlain(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	s, err := New(&config.Config{Credential: &config.CredentialConfig{}}, logger)
	require.NoError(t, err)

	sealed, err := s.Seal([]byte("secret"))
	require.NoError(t, err)
	assert.Equal(t, []byte("secret"), sealed)
}
