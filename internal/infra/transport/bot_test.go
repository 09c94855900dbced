package transport

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"vidgate/config"
	"vidgate/internal/domain/entity"
	"vidgate/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedCall struct {
	path    string
	payload map[string]any
}

func setupBot(t *testing.T, protect bool, handler func(w http.ResponseWriter)) (*Bot, <-chan recordedCall) {
	t.Helper()

	calls := make(chan recordedCall, 4)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		calls <- recordedCall{path: r.URL.Path, payload: payload}

		w.Header().Set("Content-Type", "application/json")
		handler(w)
	}))
	t.Cleanup(server.Close)

	bot, err := NewBot(&config.Config{Transport: &config.TransportConfig{
		BaseURL:        server.URL,
		Token:          "123:abc",
		ProtectContent: protect,
	}}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	return bot, calls
}

func okHandler(w http.ResponseWriter) {
	_, _ = w.Write([]byte(`{"ok":true,"result":{}}`))
}

func TestBot_SendItem(t *testing.T) {
	bot, calls := setupBot(t, true, okHandler)

	err := bot.SendItem(context.Background(), 42, &entity.ItemRef{ID: 1, FileID: "BAAC-file", Caption: "hi"})
	require.NoError(t, err)

	call := <-calls
	assert.Equal(t, "/bot123:abc/sendVideo", call.path)
	assert.Equal(t, float64(42), call.payload["chat_id"])
	assert.Equal(t, "BAAC-file", call.payload["video"])
	assert.Equal(t, true, call.payload["protect_content"])
	assert.Equal(t, "hi", call.payload["caption"])
}

func TestBot_SendItem_WithoutProtection(t *testing.T) {
	bot, calls := setupBot(t, false, okHandler)

	require.NoError(t, bot.SendItem(context.Background(), 42, &entity.ItemRef{ID: 1, FileID: "f"}))

	call := <-calls
	assert.Equal(t, false, call.payload["protect_content"])
	assert.NotContains(t, call.payload, "caption")
}

func TestBot_SendItem_APIError(t *testing.T) {
	bot, _ := setupBot(t, true, func(w http.ResponseWriter) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"ok":false,"error_code":403,"description":"Forbidden: bot was blocked by the user"}`))
	})

	err := bot.SendItem(context.Background(), 42, &entity.ItemRef{ID: 9, FileID: "f"})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 403, apiErr.ErrorCode)
	assert.Contains(t, err.Error(), "blocked")
}

func TestBot_NotifyProgress(t *testing.T) {
	bot, calls := setupBot(t, true, okHandler)

	require.NoError(t, bot.NotifyProgress(context.Background(), 42, service.ProgressSaving, 1))

	call := <-calls
	assert.Equal(t, "/bot123:abc/sendChatAction", call.path)
	assert.Equal(t, "upload_document", call.payload["action"])
}

func TestBot_RequestFailureHidesToken(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()

	bot, err := NewBot(&config.Config{Transport: &config.TransportConfig{BaseURL: server.URL, Token: "secret-token"}},
		slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	err = bot.SendItem(context.Background(), 1, &entity.ItemRef{FileID: "f"})

	require.Error(t, err)
	assert.NotContains(t, err.Error(), "secret-token")
}

func TestNewBot_RequiresToken(t *testing.T) {
	_, err := NewBot(&config.Config{Transport: &config.TransportConfig{BaseURL: "http://localhost"}},
		slog.New(slog.NewTextHandler(io.Discard, nil)))

	require.Error(t, err)
}
