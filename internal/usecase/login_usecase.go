// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"vidgate/internal/domain/entity"
)

// LoginUsecase drives each user's login through the external auth service.
// Every path out of a step releases the session's client exactly once.
type LoginUsecase interface {
	// StartLogin replaces any live session with a fresh one awaiting the phone number.
	StartLogin(ctx context.Context, userID int64) (*entity.LoginResult, error)

	// SubmitText routes free text to the handler of the current step.
	SubmitText(ctx context.Context, userID int64, text string) (*entity.LoginResult, error)

	SubmitPhone(ctx context.Context, userID int64, raw string) (*entity.LoginResult, error)
	SubmitCode(ctx context.Context, userID int64, raw string) (*entity.LoginResult, error)
	SubmitPassword(ctx context.Context, userID int64, raw string) (*entity.LoginResult, error)

	// Cancel tears down the live session, safe to call while a step is in flight.
	Cancel(ctx context.Context, userID int64) (*entity.LoginResult, error)

	// Logout cancels any login and forgets the stored credential.
	Logout(ctx context.Context, userID int64) error

	// Step reports the current step, LoginStepIdle when there is no session.
	Step(userID int64) entity.LoginStep

	// ExpireIdle cancels sessions idle longer than the configured TTL.
	ExpireIdle(ctx context.Context) int

	// CancelAll tears down every session, used on shutdown.
	CancelAll(ctx context.Context) int
}
