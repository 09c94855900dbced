package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "vidgate/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
	}{
		{name: "generated", incoming: ""},
		{name: "propagated", incoming: "abc-123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			mw := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(&buf, nil)))

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.incoming)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var seen string
			err := mw.Process(func(c echo.Context) error {
				ctx := c.Request().Context()
				seen = deliverycontext.GetRequestIDFromContext(ctx)
				deliverycontext.GetLoggerOrDefault(ctx, slog.Default()).Info("handled")

				return nil
			})(c)
			require.NoError(t, err)

			require.NotEmpty(t, seen)
			if tt.incoming != "" {
				assert.Equal(t, tt.incoming, seen)
			}
			assert.Equal(t, seen, rec.Header().Get(deliverycontext.HeaderXRequestID))
			assert.Equal(t, seen, deliverycontext.GetRequestID(c))
			assert.Contains(t, buf.String(), "request_id="+seen)
		})
	}
}

func TestRequestIDMiddleware_TagsUserRoutes(t *testing.T) {
	var buf bytes.Buffer
	mw := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(&buf, nil)))

	e := echo.New()
	e.Use(mw.Process)
	var (
		userID int64
		hasID  bool
	)
	e.GET("/v1/users/:id/entitlement", func(c echo.Context) error {
		ctx := c.Request().Context()
		userID, hasID = deliverycontext.GetUserIDFromContext(ctx)
		deliverycontext.GetLoggerOrDefault(ctx, slog.Default()).Info("status")

		return c.NoContent(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/users/42/entitlement", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.True(t, hasID)
	assert.Equal(t, int64(42), userID)
	assert.Contains(t, buf.String(), "user_id=42")

	buf.Reset()
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/users/abc/entitlement", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.False(t, hasID, "an unparsable id is left for the handler to reject")
	assert.NotContains(t, buf.String(), "user_id=")
}
