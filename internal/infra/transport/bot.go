// Package transport delivers messages to users through the bot HTTP API.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"vidgate/config"
	"vidgate/internal/domain/entity"
	"vidgate/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultTimeout = 15 * time.Second

// stageActions maps each progress stage to the chat action shown while it runs.
var stageActions = map[service.ProgressStage]string{
	service.ProgressConnecting:        "typing",
	service.ProgressVerifyingCode:     "typing",
	service.ProgressVerifyingPassword: "typing",
	service.ProgressSaving:            "upload_document",
}

// APIError is a bot API reply with ok=false.
type APIError struct {
	StatusCode  int
	ErrorCode   int
	Description string
}

func (e *APIError) Error() string {
	return "bot api: " + e.Description
}

type apiReply struct {
	OK          bool   `json:"ok"`
	ErrorCode   int    `json:"error_code"`
	Description string `json:"description"`
}

// Bot implements ContentSender and ProgressNotifier on the bot API.
type Bot struct {
	baseURL        string
	protectContent bool
	httpClient     *http.Client
	logger         *slog.Logger
}

// NewBot creates a Bot from the transport config.
func NewBot(cfg *config.Config, logger *slog.Logger) (*Bot, error) {
	tc := cfg.Transport
	if tc == nil || tc.BaseURL == "" || tc.Token == "" {
		return nil, errors.New("transport base URL and token are required")
	}

	timeout := tc.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Bot{
		baseURL:        strings.TrimRight(tc.BaseURL, "/") + "/bot" + tc.Token,
		protectContent: tc.ProtectContent,
		httpClient:     &http.Client{Timeout: timeout},
		logger:         logger,
	}, nil
}

// SendItem resends a catalog item to the user by its file handle.
func (b *Bot) SendItem(ctx context.Context, userID int64, item *entity.ItemRef) error {
	payload := map[string]any{
		"chat_id":         userID,
		"video":           item.FileID,
		"protect_content": b.protectContent,
	}
	if item.Caption != "" {
		payload["caption"] = item.Caption
	}

	if err := b.call(ctx, "sendVideo", payload); err != nil {
		return errors.Wrapf(err, "send item %d", item.ID)
	}

	return nil
}

// NotifyProgress shows a chat action while a login step waits.
func (b *Bot) NotifyProgress(ctx context.Context, userID int64, stage service.ProgressStage, tick int) error {
	action, ok := stageActions[stage]
	if !ok {
		action = "typing"
	}

	b.logger.Debug("Sending progress notice",
		slog.Int64("user_id", userID),
		slog.String("stage", string(stage)),
		slog.Int("tick", tick),
	)

	return b.call(ctx, "sendChatAction", map[string]any{
		"chat_id": userID,
		"action":  action,
	})
}

func (b *Bot) call(ctx context.Context, method string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.baseURL+"/"+method, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.httpClient.Do(req)
	if err != nil {
		// The URL carries the token; drop it from the error.
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			return errors.Wrapf(urlErr.Err, "%s request failed", method)
		}

		return errors.Wrapf(err, "%s request failed", method)
	}
	defer resp.Body.Close()

	var reply apiReply
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return errors.Wrapf(err, "%s returned status %d", method, resp.StatusCode)
	}
	if !reply.OK {
		return errors.WithStack(&APIError{
			StatusCode:  resp.StatusCode,
			ErrorCode:   reply.ErrorCode,
			Description: reply.Description,
		})
	}

	return nil
}
