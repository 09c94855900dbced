package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"vidgate/internal/domain/entity"
	domainerrors "vidgate/internal/domain/errors"
	"vidgate/internal/domain/service"

	"github.com/google/uuid"
)

// clientLease is the exclusive ownership of one AuthClient. Disconnect runs at most once
// no matter how many paths try to release it.
type clientLease struct {
	client  service.AuthClient
	timeout time.Duration
	logger  *slog.Logger
	once    sync.Once
}

func newClientLease(client service.AuthClient, timeout time.Duration, logger *slog.Logger) *clientLease {
	return &clientLease{client: client, timeout: timeout, logger: logger}
}

// release disconnects the client. It survives a cancelled ctx and a panicking client.
func (l *clientLease) release(ctx context.Context) {
	l.once.Do(func() {
		releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), l.timeout)
		defer cancel()

		defer func() {
			if r := recover(); r != nil {
				l.logger.Error("Auth client panicked on disconnect", slog.Any("panic", r))
			}
		}()

		l.client.Disconnect(releaseCtx)
	})
}

// loginSession is one user's login state. turn is held by the single step being handled;
// mu guards the fields and is never held across a network call.
type loginSession struct {
	userID    int64
	attemptID string
	createdAt time.Time

	turn sync.Mutex

	mu           sync.Mutex
	step         entity.LoginStep
	phone        string
	challenge    string
	lease        *clientLease
	lastActivity time.Time
	dead         bool
	inFlight     bool
	abort        context.CancelFunc
}

func newLoginSession(userID int64, now time.Time) *loginSession {
	return &loginSession{
		userID:       userID,
		attemptID:    uuid.NewString(),
		createdAt:    now,
		step:         entity.LoginStepAwaitingPhone,
		lastActivity: now,
	}
}

// begin marks a step as in flight and returns a context that kill aborts.
func (s *loginSession) begin(ctx context.Context, want entity.LoginStep, now time.Time) (context.Context, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.dead {
		return nil, domainerrors.ErrNoActiveSession
	}
	if s.step != want {
		return nil, domainerrors.ErrWrongStep.WithDetails("current step is " + s.step.String())
	}

	stepCtx, cancel := context.WithCancel(ctx)
	s.inFlight = true
	s.abort = cancel
	s.lastActivity = now

	return stepCtx, nil
}

// end clears the in-flight mark. If the session was killed meanwhile, the lease
// is handed back so the step handler releases it.
func (s *loginSession) end() *clientLease {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.abort != nil {
		s.abort()
		s.abort = nil
	}
	s.inFlight = false

	if !s.dead {
		return nil
	}

	lease := s.lease
	s.lease = nil

	return lease
}

// kill marks the session dead and aborts any in-flight call. The lease is returned
// for immediate release only when no step is running; otherwise end hands it over.
func (s *loginSession) kill() *clientLease {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.dead = true
	if s.abort != nil {
		s.abort()
	}
	if s.inFlight {
		return nil
	}

	lease := s.lease
	s.lease = nil

	return lease
}

// settle blocks until the step holding the turn, if any, has returned.
func (s *loginSession) settle() {
	s.turn.Lock()
	defer s.turn.Unlock()
}

func (s *loginSession) alive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return !s.dead
}

func (s *loginSession) attach(lease *clientLease) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lease = lease
}

func (s *loginSession) currentLease() *clientLease {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.lease
}

func (s *loginSession) awaitCode(phone, challenge string, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.step = entity.LoginStepAwaitingCode
	s.phone = phone
	s.challenge = challenge
	s.lastActivity = now
}

func (s *loginSession) awaitPassword(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.step = entity.LoginStepAwaitingPassword
	s.lastActivity = now
}

func (s *loginSession) codeChallenge() (phone, challenge string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.phone, s.challenge
}

func (s *loginSession) currentStep() entity.LoginStep {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.dead {
		return entity.LoginStepIdle
	}

	return s.step
}

// idleSince reports whether the session has been idle past ttl and has no step running.
func (s *loginSession) idleSince(now time.Time, ttl time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return !s.inFlight && now.Sub(s.lastActivity) > ttl
}

// SessionTable holds the live login sessions keyed by user. Its lock guards only the
// map, so a slow user never blocks another.
type SessionTable struct {
	mu       sync.Mutex
	sessions map[int64]*loginSession
}

// NewSessionTable creates an empty session table.
func NewSessionTable() *SessionTable {
	return &SessionTable{sessions: make(map[int64]*loginSession)}
}

func (t *SessionTable) get(userID int64) *loginSession {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.sessions[userID]
}

// replace installs s and returns the session it displaced, if any.
func (t *SessionTable) replace(s *loginSession) *loginSession {
	t.mu.Lock()
	defer t.mu.Unlock()

	old := t.sessions[s.userID]
	t.sessions[s.userID] = s

	return old
}

// remove drops whatever session the user has.
func (t *SessionTable) remove(userID int64) *loginSession {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := t.sessions[userID]
	delete(t.sessions, userID)

	return s
}

// removeIf drops the user's entry only while it still points at s.
func (t *SessionTable) removeIf(s *loginSession) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.sessions[s.userID] != s {
		return false
	}
	delete(t.sessions, s.userID)

	return true
}

func (t *SessionTable) snapshot() []*loginSession {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]*loginSession, 0, len(t.sessions))
	for _, s := range t.sessions {
		out = append(out, s)
	}

	return out
}

// Len returns the number of live sessions.
func (t *SessionTable) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return len(t.sessions)
}
