package service

import "context"

// CodeRequestStatus is the outcome of asking the external service for a login code.
type CodeRequestStatus string

const (
	// CodeSent means the code was dispatched and a challenge was returned.
	CodeSent CodeRequestStatus = "code_sent"
	// CodePhoneInvalid means the external service rejected the phone number.
	CodePhoneInvalid CodeRequestStatus = "phone_invalid"
)

// CodeRequest carries the challenge handle for a pending code verification.
type CodeRequest struct {
	Status    CodeRequestStatus
	Challenge string
}

// SignInStatus is the outcome of submitting a one-time code.
type SignInStatus string

const (
	SignInAccepted             SignInStatus = "accepted"
	SignInSecondFactorRequired SignInStatus = "second_factor_required"
	SignInCodeInvalid          SignInStatus = "code_invalid"
	SignInCodeExpired          SignInStatus = "code_expired"
)

// PasswordStatus is the outcome of submitting the second factor.
type PasswordStatus string

const (
	PasswordAccepted  PasswordStatus = "accepted"
	PasswordIncorrect PasswordStatus = "incorrect"
)

// AuthClient is one ephemeral connection to the external login service.
// Rejections come back as statuses; a non-nil error always means the call
// itself failed (network, timeout, unexpected reply).
type AuthClient interface {
	Connect(ctx context.Context) error
	RequestCode(ctx context.Context, phone string) (*CodeRequest, error)
	SignIn(ctx context.Context, phone, challenge, code string) (SignInStatus, error)
	CheckPassword(ctx context.Context, password string) (PasswordStatus, error)
	ExportCredential(ctx context.Context) ([]byte, error)

	// Disconnect is best-effort and never fails.
	Disconnect(ctx context.Context)
}

// AuthClientFactory creates ephemeral clients bound to one login attempt.
type AuthClientFactory interface {
	Create(userID int64) AuthClient
}
