package impl

import (
	"context"
	"log/slog"
	"regexp"
	"strings"
	"sync"
	"time"

	"vidgate/config"
	deliverycontext "vidgate/internal/delivery/context"
	"vidgate/internal/domain/entity"
	domainerrors "vidgate/internal/domain/errors"
	"vidgate/internal/domain/repository"
	"vidgate/internal/domain/service"
	"vidgate/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const cancelKeyword = "cancel"

const (
	outcomeCompleted        = "completed"
	outcomeCancelled        = "cancelled"
	outcomeInvalidPhone     = "invalid_phone"
	outcomeInvalidCode      = "invalid_code"
	outcomeExpiredCode      = "expired_code"
	outcomeIncorrectPasswd  = "incorrect_password"
	outcomeTransientFailure = "transient_failure"
	outcomeCredentialSave   = "credential_save_failed"
	outcomeExpired          = "expired"
)

// E.164 after normalization: a plus, a non-zero country digit, then 6 to 14 digits.
var phonePattern = regexp.MustCompile(`^\+[1-9][0-9]{6,14}$`)

// loginService implements the LoginUsecase interface.
type loginService struct {
	sessions    *SessionTable
	clients     service.AuthClientFactory
	accountRepo repository.AccountRepository
	entitlement usecase.EntitlementUsecase
	sealer      service.CredentialSealer
	publisher   service.EventPublisher
	progress    service.ProgressNotifier
	metrics     service.MetricsRecorder
	cfg         config.LoginConfig
	logger      *slog.Logger
	now         func() time.Time
}

// LoginServiceParams holds dependencies for LoginService, injected by Fx.
type LoginServiceParams struct {
	fx.In

	Sessions    *SessionTable
	Clients     service.AuthClientFactory
	AccountRepo repository.AccountRepository
	Entitlement usecase.EntitlementUsecase
	Sealer      service.CredentialSealer
	Publisher   service.EventPublisher
	Progress    service.ProgressNotifier
	Metrics     service.MetricsRecorder
	Config      *config.Config
	Logger      *slog.Logger
}

// NewLoginService is the constructor for loginService.
func NewLoginService(params LoginServiceParams) usecase.LoginUsecase {
	cfg := config.DefaultLogin()
	if params.Config != nil && params.Config.Login != nil {
		cfg = params.Config.Login
	}

	return &loginService{
		sessions:    params.Sessions,
		clients:     params.Clients,
		accountRepo: params.AccountRepo,
		entitlement: params.Entitlement,
		sealer:      params.Sealer,
		publisher:   params.Publisher,
		progress:    params.Progress,
		metrics:     params.Metrics,
		cfg:         *cfg,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (srv *loginService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// StartLogin opens a session awaiting the phone number.
func (srv *loginService) StartLogin(ctx context.Context, userID int64) (*entity.LoginResult, error) {
	credential, err := srv.accountRepo.GetCredential(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get credential")
	}

	if len(credential) > 0 {
		return nil, domainerrors.ErrAlreadyAuthenticated
	}

	sess := newLoginSession(userID, srv.now())
	if old := srv.sessions.replace(sess); old != nil {
		srv.log(ctx).Info("Replacing live login session",
			slog.Int64("user_id", userID),
			slog.String("attempt_id", old.attemptID),
		)
		srv.killSession(ctx, old)
	}
	srv.metrics.SetLiveLoginSessions(srv.sessions.Len())

	srv.log(ctx).Info("Login started", slog.Int64("user_id", userID), slog.String("attempt_id", sess.attemptID))

	return &entity.LoginResult{Step: entity.LoginStepAwaitingPhone}, nil
}

// SubmitText routes the text to the handler of the current step.
func (srv *loginService) SubmitText(ctx context.Context, userID int64, text string) (*entity.LoginResult, error) {
	if strings.EqualFold(strings.TrimSpace(text), cancelKeyword) {
		return srv.Cancel(ctx, userID)
	}

	switch srv.Step(userID) {
	case entity.LoginStepAwaitingPhone:
		return srv.SubmitPhone(ctx, userID, text)
	case entity.LoginStepAwaitingCode:
		return srv.SubmitCode(ctx, userID, text)
	case entity.LoginStepAwaitingPassword:
		return srv.SubmitPassword(ctx, userID, text)
	default:
		return nil, domainerrors.ErrNoActiveSession
	}
}

// SubmitPhone connects a fresh client and asks the external service for a code.
func (srv *loginService) SubmitPhone(ctx context.Context, userID int64, raw string) (res *entity.LoginResult, err error) {
	phone := entity.NormalizePhoneNumber(raw)

	sess, stepCtx, err := srv.beginStep(ctx, userID, entity.LoginStepAwaitingPhone)
	if err != nil {
		return nil, err
	}
	defer sess.turn.Unlock()

	retain := false
	defer func() {
		srv.endStep(ctx, sess, retain)
		srv.observe(res, err)
	}()

	// A malformed number never reaches the network.
	if !phonePattern.MatchString(phone) {
		return nil, domainerrors.ErrInvalidPhoneNumber
	}

	lease := newClientLease(srv.clients.Create(userID), srv.cfg.ReleaseTimeout, srv.logger)
	sess.attach(lease)

	if err := srv.call(stepCtx, userID, service.ProgressConnecting, lease.client.Connect); err != nil {
		return nil, srv.callFailed(ctx, sess, "connect", err)
	}

	if !sess.alive() {
		return nil, domainerrors.ErrNoActiveSession
	}

	var codeRequest *service.CodeRequest
	err = srv.call(stepCtx, userID, service.ProgressConnecting, func(callCtx context.Context) error {
		var callErr error
		codeRequest, callErr = lease.client.RequestCode(callCtx, phone)

		return callErr
	})
	if err != nil {
		return nil, srv.callFailed(ctx, sess, "request code", err)
	}

	if !sess.alive() {
		return nil, domainerrors.ErrNoActiveSession
	}

	switch codeRequest.Status {
	case service.CodeSent:
		sess.awaitCode(phone, codeRequest.Challenge, srv.now())
		retain = true

		srv.log(ctx).Info("Login code sent", slog.Int64("user_id", userID), slog.String("attempt_id", sess.attemptID))

		return &entity.LoginResult{Step: entity.LoginStepAwaitingCode}, nil
	case service.CodePhoneInvalid:
		return nil, domainerrors.ErrInvalidPhoneNumber
	default:
		return nil, domainerrors.ErrTransientNetwork.WithCause(
			errors.Errorf("unexpected code request status %q", codeRequest.Status))
	}
}

// SubmitCode verifies the one-time code and either completes or asks for the password.
func (srv *loginService) SubmitCode(ctx context.Context, userID int64, raw string) (res *entity.LoginResult, err error) {
	code := entity.NormalizeCode(raw)

	sess, stepCtx, err := srv.beginStep(ctx, userID, entity.LoginStepAwaitingCode)
	if err != nil {
		return nil, err
	}
	defer sess.turn.Unlock()

	retain := false
	defer func() {
		srv.endStep(ctx, sess, retain)
		srv.observe(res, err)
	}()

	lease := sess.currentLease()
	if lease == nil {
		return nil, domainerrors.ErrNoActiveSession
	}
	phone, challenge := sess.codeChallenge()

	var status service.SignInStatus
	err = srv.call(stepCtx, userID, service.ProgressVerifyingCode, func(callCtx context.Context) error {
		var callErr error
		status, callErr = lease.client.SignIn(callCtx, phone, challenge, code)

		return callErr
	})
	if err != nil {
		return nil, srv.callFailed(ctx, sess, "sign in", err)
	}

	if !sess.alive() {
		return nil, domainerrors.ErrNoActiveSession
	}

	switch status {
	case service.SignInSecondFactorRequired:
		sess.awaitPassword(srv.now())
		retain = true

		return &entity.LoginResult{Step: entity.LoginStepAwaitingPassword}, nil
	case service.SignInAccepted:
		return srv.finalize(ctx, stepCtx, sess, lease)
	case service.SignInCodeInvalid:
		return nil, domainerrors.ErrInvalidCode
	case service.SignInCodeExpired:
		return nil, domainerrors.ErrExpiredCode
	default:
		return nil, domainerrors.ErrTransientNetwork.WithCause(errors.Errorf("unexpected sign-in status %q", status))
	}
}

// SubmitPassword checks the second factor and completes the login.
func (srv *loginService) SubmitPassword(ctx context.Context, userID int64, raw string) (res *entity.LoginResult, err error) {
	sess, stepCtx, err := srv.beginStep(ctx, userID, entity.LoginStepAwaitingPassword)
	if err != nil {
		return nil, err
	}
	defer sess.turn.Unlock()

	retain := false
	defer func() {
		srv.endStep(ctx, sess, retain)
		srv.observe(res, err)
	}()

	lease := sess.currentLease()
	if lease == nil {
		return nil, domainerrors.ErrNoActiveSession
	}

	var status service.PasswordStatus
	err = srv.call(stepCtx, userID, service.ProgressVerifyingPassword, func(callCtx context.Context) error {
		var callErr error
		status, callErr = lease.client.CheckPassword(callCtx, raw)

		return callErr
	})
	if err != nil {
		return nil, srv.callFailed(ctx, sess, "check password", err)
	}

	if !sess.alive() {
		return nil, domainerrors.ErrNoActiveSession
	}

	switch status {
	case service.PasswordAccepted:
		return srv.finalize(ctx, stepCtx, sess, lease)
	case service.PasswordIncorrect:
		return nil, domainerrors.ErrIncorrectPassword
	default:
		return nil, domainerrors.ErrTransientNetwork.WithCause(errors.Errorf("unexpected password status %q", status))
	}
}

// finalize exports the credential, releases the client, stores the sealed credential
// and applies the login bonus. The caller destroys the session afterwards.
func (srv *loginService) finalize(
	ctx, stepCtx context.Context,
	sess *loginSession,
	lease *clientLease,
) (*entity.LoginResult, error) {
	userID := sess.userID

	var credential []byte
	err := srv.call(stepCtx, userID, service.ProgressSaving, func(callCtx context.Context) error {
		var callErr error
		credential, callErr = lease.client.ExportCredential(callCtx)

		return callErr
	})
	if err != nil {
		return nil, srv.callFailed(ctx, sess, "export credential", err)
	}

	lease.release(ctx)

	if !sess.alive() {
		return nil, domainerrors.ErrNoActiveSession
	}

	sealed, err := srv.sealer.Seal(credential)
	if err != nil {
		srv.log(ctx).Error("Failed to seal credential", slog.Any("error", err), slog.Int64("user_id", userID))

		return nil, domainerrors.ErrCredentialSave.WithCause(err)
	}

	// Past this check a cancel no longer undoes the login; Logout waits for the step to return.
	if !sess.alive() {
		return nil, domainerrors.ErrNoActiveSession
	}

	if err := srv.accountRepo.SetCredential(ctx, userID, sealed); err != nil {
		srv.log(ctx).Error("Failed to store credential", slog.Any("error", err), slog.Int64("user_id", userID))

		return nil, domainerrors.ErrCredentialSave.WithCause(err)
	}

	result := &entity.LoginResult{Step: entity.LoginStepCompleted}

	expiry, err := srv.entitlement.GrantLoginBonusIfUnused(ctx, userID)
	if err != nil {
		// The credential is stored; the quota path can still grant the bonus later.
		srv.log(ctx).Error("Failed to grant login bonus", slog.Any("error", err), slog.Int64("user_id", userID))
	} else if expiry != nil {
		result.BonusGranted = true
		result.TempPremiumExpiry = expiry
	}

	srv.log(ctx).Info("Login completed",
		slog.Int64("user_id", userID),
		slog.String("attempt_id", sess.attemptID),
		slog.Bool("bonus_granted", result.BonusGranted),
	)

	srv.publish(ctx, service.AccountEventLoginCompleted, userID, nil)
	if result.BonusGranted {
		srv.publish(ctx, service.AccountEventBonusGranted, userID, expiry)
	}

	return result, nil
}

// Cancel tears down the live session. A step in flight is aborted and releases
// the client itself when it resumes.
func (srv *loginService) Cancel(ctx context.Context, userID int64) (*entity.LoginResult, error) {
	sess := srv.sessions.remove(userID)
	if sess == nil {
		return nil, domainerrors.ErrNoActiveSession
	}

	if lease := sess.kill(); lease != nil {
		lease.release(ctx)
	}
	srv.metrics.SetLiveLoginSessions(srv.sessions.Len())
	srv.metrics.ObserveLoginOutcome(outcomeCancelled)

	srv.log(ctx).Info("Login cancelled", slog.Int64("user_id", userID), slog.String("attempt_id", sess.attemptID))

	return &entity.LoginResult{Step: entity.LoginStepCancelled}, nil
}

// Logout cancels any login in progress, waits for its current step, then deletes the stored credential.
func (srv *loginService) Logout(ctx context.Context, userID int64) error {
	if sess := srv.sessions.remove(userID); sess != nil {
		srv.killSession(ctx, sess)
		srv.metrics.SetLiveLoginSessions(srv.sessions.Len())
		sess.settle()
	}

	credential, err := srv.accountRepo.GetCredential(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "failed to get credential")
	}

	if len(credential) == 0 {
		return domainerrors.ErrNotLoggedIn
	}

	if err := srv.accountRepo.DeleteCredential(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to delete credential")
	}

	srv.log(ctx).Info("User logged out", slog.Int64("user_id", userID))
	srv.publish(ctx, service.AccountEventLoggedOut, userID, nil)

	return nil
}

// Step reports the current step of the user's session.
func (srv *loginService) Step(userID int64) entity.LoginStep {
	sess := srv.sessions.get(userID)
	if sess == nil {
		return entity.LoginStepIdle
	}

	return sess.currentStep()
}

// ExpireIdle cancels sessions idle past the TTL. Sessions with a step in flight are skipped.
func (srv *loginService) ExpireIdle(ctx context.Context) int {
	now := srv.now()
	expired := 0

	for _, sess := range srv.sessions.snapshot() {
		if !sess.idleSince(now, srv.cfg.SessionTTL) {
			continue
		}

		if srv.destroy(ctx, sess) {
			expired++
			srv.metrics.ObserveLoginOutcome(outcomeExpired)
			srv.log(ctx).Info("Login session expired",
				slog.Int64("user_id", sess.userID),
				slog.String("attempt_id", sess.attemptID),
			)
		}
	}

	return expired
}

// CancelAll tears down every live session.
func (srv *loginService) CancelAll(ctx context.Context) int {
	cancelled := 0

	for _, sess := range srv.sessions.snapshot() {
		if srv.destroy(ctx, sess) {
			cancelled++
		}
	}

	if cancelled > 0 {
		srv.log(ctx).Info("Cancelled live login sessions", slog.Int("count", cancelled))
	}

	return cancelled
}

// beginStep claims the user's turn and marks the step in flight.
// On success the caller must unlock sess.turn.
func (srv *loginService) beginStep(
	ctx context.Context,
	userID int64,
	want entity.LoginStep,
) (*loginSession, context.Context, error) {
	sess := srv.sessions.get(userID)
	if sess == nil {
		return nil, nil, domainerrors.ErrNoActiveSession
	}

	if !sess.turn.TryLock() {
		return nil, nil, domainerrors.ErrStepInProgress
	}

	stepCtx, err := sess.begin(ctx, want, srv.now())
	if err != nil {
		sess.turn.Unlock()

		return nil, nil, err
	}

	return sess, stepCtx, nil
}

// endStep is deferred by every step handler. Unless the session is retained it is
// destroyed, and whatever lease the session still owns is released.
func (srv *loginService) endStep(ctx context.Context, sess *loginSession, retain bool) {
	if !retain {
		srv.destroy(ctx, sess)
	}

	if lease := sess.end(); lease != nil {
		lease.release(ctx)
	}
}

// destroy removes sess from the table if it is still current and kills it.
func (srv *loginService) destroy(ctx context.Context, sess *loginSession) bool {
	removed := srv.sessions.removeIf(sess)
	srv.killSession(ctx, sess)

	if removed {
		srv.metrics.SetLiveLoginSessions(srv.sessions.Len())
	}

	return removed
}

func (srv *loginService) killSession(ctx context.Context, sess *loginSession) {
	if lease := sess.kill(); lease != nil {
		lease.release(ctx)
	}
}

func (srv *loginService) callFailed(ctx context.Context, sess *loginSession, op string, err error) error {
	if !sess.alive() {
		return domainerrors.ErrNoActiveSession
	}

	srv.log(ctx).Warn("Auth service call failed",
		slog.String("op", op),
		slog.Int64("user_id", sess.userID),
		slog.String("attempt_id", sess.attemptID),
		slog.Any("error", err),
	)

	return domainerrors.ErrTransientNetwork.WithCause(err)
}

// call runs one external call under the call timeout while a progress ticker runs.
func (srv *loginService) call(
	ctx context.Context,
	userID int64,
	stage service.ProgressStage,
	fn func(ctx context.Context) error,
) error {
	callCtx := ctx
	if srv.cfg.CallTimeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, srv.cfg.CallTimeout)
		defer cancel()
	}

	stop := srv.startProgress(callCtx, userID, stage)
	defer stop()

	return fn(callCtx)
}

// startProgress ticks the progress notifier until the returned stop func is called.
// stop waits for the ticker goroutine, so no notice is sent after it returns.
func (srv *loginService) startProgress(ctx context.Context, userID int64, stage service.ProgressStage) func() {
	if srv.progress == nil || srv.cfg.ProgressInterval <= 0 {
		return func() {}
	}

	tickCtx, cancel := context.WithCancel(ctx)

	var wg sync.WaitGroup
	wg.Go(func() {
		ticker := time.NewTicker(srv.cfg.ProgressInterval)
		defer ticker.Stop()

		for tick := 1; ; tick++ {
			select {
			case <-tickCtx.Done():
				return
			case <-ticker.C:
				if err := srv.progress.NotifyProgress(tickCtx, userID, stage, tick); err != nil {
					srv.logger.Debug("Progress notice failed", slog.Int64("user_id", userID), slog.Any("error", err))
				}
			}
		}
	})

	return func() {
		cancel()
		wg.Wait()
	}
}

func (srv *loginService) publish(
	ctx context.Context,
	eventType service.AccountEventType,
	userID int64,
	expiry *time.Time,
) {
	event := &service.AccountEvent{
		RequestID:         deliverycontext.GetRequestIDFromContext(ctx),
		EventID:           uuid.NewString(),
		Type:              eventType,
		UserID:            userID,
		OccurredAt:        srv.now(),
		TempPremiumExpiry: expiry,
	}

	if err := srv.publisher.PublishAccountEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish account event",
			slog.String("type", string(eventType)),
			slog.Int64("user_id", userID),
			slog.Any("error", err),
		)
	}
}

func (srv *loginService) observe(res *entity.LoginResult, err error) {
	switch {
	case err == nil:
		if res != nil && res.Step == entity.LoginStepCompleted {
			srv.metrics.ObserveLoginOutcome(outcomeCompleted)
		}
	case errors.Is(err, domainerrors.ErrInvalidPhoneNumber):
		srv.metrics.ObserveLoginOutcome(outcomeInvalidPhone)
	case errors.Is(err, domainerrors.ErrInvalidCode):
		srv.metrics.ObserveLoginOutcome(outcomeInvalidCode)
	case errors.Is(err, domainerrors.ErrExpiredCode):
		srv.metrics.ObserveLoginOutcome(outcomeExpiredCode)
	case errors.Is(err, domainerrors.ErrIncorrectPassword):
		srv.metrics.ObserveLoginOutcome(outcomeIncorrectPasswd)
	case errors.Is(err, domainerrors.ErrTransientNetwork):
		srv.metrics.ObserveLoginOutcome(outcomeTransientFailure)
	case errors.Is(err, domainerrors.ErrCredentialSave):
		srv.metrics.ObserveLoginOutcome(outcomeCredentialSave)
	}
}
