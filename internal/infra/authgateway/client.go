// Package authgateway talks to the login gateway that fronts the messaging
// platform's user authorization API.
package authgateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"vidgate/config"
	"vidgate/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultTimeout = 30 * time.Second

// Rejection codes returned by the gateway in the error body.
const (
	codePhoneNumberInvalid    = "PHONE_NUMBER_INVALID"
	codePhoneCodeInvalid      = "PHONE_CODE_INVALID"
	codePhoneCodeExpired      = "PHONE_CODE_EXPIRED"
	codeSessionPasswordNeeded = "SESSION_PASSWORD_NEEDED"
	codePasswordHashInvalid   = "PASSWORD_HASH_INVALID"
)

// ErrNotConnected is returned by calls made before Connect succeeded.
var ErrNotConnected = errors.New("auth gateway session not connected")

// GatewayError is a reply the client has no status for.
type GatewayError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *GatewayError) Error() string {
	if e.Code == "" {
		return "auth gateway returned status " + strconv.Itoa(e.StatusCode)
	}

	return "auth gateway: " + e.Code + ": " + e.Message
}

type errorReply struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type factory struct {
	baseURL    string
	apiID      string
	apiHash    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewFactory creates clients bound to the configured gateway.
func NewFactory(cfg *config.Config, logger *slog.Logger) (service.AuthClientFactory, error) {
	gw := cfg.AuthGateway
	if gw == nil || gw.BaseURL == "" {
		return nil, errors.New("auth gateway base URL is required")
	}

	timeout := gw.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &factory{
		baseURL:    strings.TrimRight(gw.BaseURL, "/"),
		apiID:      strconv.Itoa(gw.APIID),
		apiHash:    gw.APIHash,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}, nil
}

func (f *factory) Create(userID int64) service.AuthClient {
	return &client{
		factory: f,
		userID:  userID,
		logger:  f.logger.With(slog.Int64("user_id", userID)),
	}
}

// client is one gateway session. It is used by a single login step at a time.
type client struct {
	*factory

	userID int64
	logger *slog.Logger

	mu        sync.Mutex
	sessionID string
}

func (c *client) Connect(ctx context.Context) error {
	var reply struct {
		SessionID string `json:"session_id"`
	}

	body := map[string]any{"user_id": c.userID}
	if err := c.do(ctx, http.MethodPost, "/v1/sessions", body, &reply); err != nil {
		return errors.Wrap(err, "connect")
	}
	if reply.SessionID == "" {
		return errors.New("auth gateway returned an empty session id")
	}

	c.mu.Lock()
	c.sessionID = reply.SessionID
	c.mu.Unlock()

	return nil
}

func (c *client) RequestCode(ctx context.Context, phone string) (*service.CodeRequest, error) {
	path, err := c.sessionPath("/code")
	if err != nil {
		return nil, err
	}

	var reply struct {
		Challenge string `json:"challenge"`
	}

	err = c.do(ctx, http.MethodPost, path, map[string]string{"phone": phone}, &reply)
	if code, ok := rejectionCode(err); ok && code == codePhoneNumberInvalid {
		return &service.CodeRequest{Status: service.CodePhoneInvalid}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "request code")
	}
	if reply.Challenge == "" {
		return nil, errors.New("auth gateway returned an empty challenge")
	}

	return &service.CodeRequest{Status: service.CodeSent, Challenge: reply.Challenge}, nil
}

func (c *client) SignIn(ctx context.Context, phone, challenge, code string) (service.SignInStatus, error) {
	path, err := c.sessionPath("/sign-in")
	if err != nil {
		return "", err
	}

	body := map[string]string{"phone": phone, "challenge": challenge, "code": code}
	err = c.do(ctx, http.MethodPost, path, body, nil)
	if rejection, ok := rejectionCode(err); ok {
		switch rejection {
		case codeSessionPasswordNeeded:
			return service.SignInSecondFactorRequired, nil
		case codePhoneCodeInvalid:
			return service.SignInCodeInvalid, nil
		case codePhoneCodeExpired:
			return service.SignInCodeExpired, nil
		}
	}
	if err != nil {
		return "", errors.Wrap(err, "sign in")
	}

	return service.SignInAccepted, nil
}

func (c *client) CheckPassword(ctx context.Context, password string) (service.PasswordStatus, error) {
	path, err := c.sessionPath("/password")
	if err != nil {
		return "", err
	}

	err = c.do(ctx, http.MethodPost, path, map[string]string{"password": password}, nil)
	if code, ok := rejectionCode(err); ok && code == codePasswordHashInvalid {
		return service.PasswordIncorrect, nil
	}
	if err != nil {
		return "", errors.Wrap(err, "check password")
	}

	return service.PasswordAccepted, nil
}

func (c *client) ExportCredential(ctx context.Context) ([]byte, error) {
	path, err := c.sessionPath("/export")
	if err != nil {
		return nil, err
	}

	var reply struct {
		Credential []byte `json:"credential"`
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &reply); err != nil {
		return nil, errors.Wrap(err, "export credential")
	}
	if len(reply.Credential) == 0 {
		return nil, errors.New("auth gateway returned an empty credential")
	}

	return reply.Credential, nil
}

func (c *client) Disconnect(ctx context.Context) {
	c.mu.Lock()
	sessionID := c.sessionID
	c.sessionID = ""
	c.mu.Unlock()

	if sessionID == "" {
		return
	}

	if err := c.do(ctx, http.MethodDelete, "/v1/sessions/"+sessionID, nil, nil); err != nil {
		c.logger.Warn("Failed to close auth gateway session", slog.Any("error", err))
	}
}

func (c *client) sessionPath(suffix string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sessionID == "" {
		return "", ErrNotConnected
	}

	return "/v1/sessions/" + c.sessionID + suffix, nil
}

func (c *client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return errors.WithStack(err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Api-Id", c.apiID)
	req.Header.Set("X-Api-Hash", c.apiHash)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var reply errorReply
		_ = json.NewDecoder(io.LimitReader(resp.Body, 64<<10)).Decode(&reply)

		return errors.WithStack(&GatewayError{
			StatusCode: resp.StatusCode,
			Code:       reply.Error,
			Message:    reply.Message,
		})
	}

	if out == nil {
		return nil
	}

	return errors.Wrap(json.NewDecoder(resp.Body).Decode(out), "decode gateway reply")
}

// rejectionCode extracts the gateway's error code from a 4xx reply. Rate limits
// and server errors are not rejections; they surface as call failures.
func rejectionCode(err error) (string, bool) {
	var gwErr *GatewayError
	if !errors.As(err, &gwErr) {
		return "", false
	}
	if gwErr.StatusCode == http.StatusTooManyRequests || gwErr.StatusCode >= http.StatusInternalServerError {
		return "", false
	}

	return gwErr.Code, gwErr.Code != ""
}
