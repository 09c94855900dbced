package service

// CredentialSealer protects exported credentials at rest.
type CredentialSealer interface {
	Seal(plaintext []byte) ([]byte, error)
	Open(sealed []byte) ([]byte, error)
}
