// Package sealer protects stored login credentials with age X25519 keys.
package sealer

import (
	"bytes"
	"io"
	"log/slog"

	"vidgate/config"
	"vidgate/internal/domain/service"
	"vidgate/internal/errors"

	"filippo.io/age"
)

// ErrNoIdentity is returned by Open when only the public key is configured.
var ErrNoIdentity = errors.New("no age identity configured")

type ageSealer struct {
	recipient age.Recipient
	identity  age.Identity
}

// New builds the sealer from the credential config. Without a recipient the
// credentials are stored as exported, which is only meant for local runs.
func New(cfg *config.Config, logger *slog.Logger) (service.CredentialSealer, error) {
	if cfg.Credential == nil || cfg.Credential.Recipient == "" {
		logger.Warn("No credential recipient configured, credentials are stored unsealed")

		return NewPlain(), nil
	}

	return NewAge(cfg.Credential.Recipient, cfg.Credential.Identity)
}

// NewAge parses the age keys. identity may be empty for a seal-only process.
func NewAge(recipientKey, identityKey string) (service.CredentialSealer, error) {
	recipient, err := age.ParseX25519Recipient(recipientKey)
	if err != nil {
		return nil, errors.Wrap(err, "invalid age recipient")
	}

	s := &ageSealer{recipient: recipient}

	if identityKey != "" {
		identity, err := age.ParseX25519Identity(identityKey)
		if err != nil {
			return nil, errors.Wrap(err, "invalid age identity")
		}
		s.identity = identity
	}

	return s, nil
}

func (s *ageSealer) Seal(plaintext []byte) ([]byte, error) {
	var buf bytes.Buffer

	writer, err := age.Encrypt(&buf, s.recipient)
	if err != nil {
		return nil, errors.Wrap(err, "creating age encryptor")
	}
	if _, err := writer.Write(plaintext); err != nil {
		return nil, errors.Wrap(err, "writing plaintext to age encryptor")
	}
	if err := writer.Close(); err != nil {
		return nil, errors.Wrap(err, "finalizing age encryption")
	}

	return buf.Bytes(), nil
}

func (s *ageSealer) Open(sealed []byte) ([]byte, error) {
	if s.identity == nil {
		return nil, ErrNoIdentity
	}

	reader, err := age.Decrypt(bytes.NewReader(sealed), s.identity)
	if err != nil {
		return nil, errors.Wrap(err, "decrypting credential")
	}

	plaintext, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.Wrap(err, "reading decrypted credential")
	}

	return plaintext, nil
}

type plainSealer struct{}

// NewPlain returns a sealer that stores credentials as given.
func NewPlain() service.CredentialSealer {
	return plainSealer{}
}

func (plainSealer) Seal(plaintext []byte) ([]byte, error) {
	return bytes.Clone(plaintext), nil
}

func (plainSealer) Open(sealed []byte) ([]byte, error) {
	return bytes.Clone(sealed), nil
}
