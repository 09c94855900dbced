package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"vidgate/internal/delivery/http/response"
	"vidgate/internal/domain/constants"
	domainerrors "vidgate/internal/domain/errors"
	"vidgate/internal/domain/service"
	mockservice "vidgate/internal/mocks/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEcho(t *testing.T, tokenSvc service.TokenService) *echo.Echo {
	t.Helper()

	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError

	auth := NewAuthMiddleware(tokenSvc)
	group := e.Group("/v1", auth.Authenticate)
	group.GET("/whoami", func(c echo.Context) error {
		return response.Success(c, http.StatusOK, map[string]any{
			"subject": c.Get(ContextKeySubject),
			"scopes":  c.Get(ContextKeyScopes),
		}, "")
	})
	group.POST("/items", func(c echo.Context) error {
		return c.NoContent(http.StatusCreated)
	}, auth.RequireScope(constants.ScopeCatalogWrite))

	return e
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	tokenSvc := mockservice.NewMockTokenService(t)
	tokenSvc.EXPECT().ValidateToken("good").Return(&service.Claims{
		Scopes:           []string{constants.ScopeUsers},
		RegisteredClaims: jwt.RegisteredClaims{Subject: "bot-frontend"},
	}, nil)
	e := newTestEcho(t, tokenSvc)

	req := httptest.NewRequest(http.MethodGet, "/v1/whoami", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer good")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.True(t, body.Success)
	assert.Equal(t, map[string]any{"subject": "bot-frontend", "scopes": []any{"users"}}, body.Data)
}

func TestAuthMiddleware_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		header string
		setup  func(m *mockservice.MockTokenService)
	}{
		{name: "missing header", header: ""},
		{name: "not bearer", header: "Basic dXNlcjpwYXNz"},
		{name: "empty bearer", header: "Bearer "},
		{
			name:   "invalid token",
			header: "Bearer forged",
			setup: func(m *mockservice.MockTokenService) {
				m.EXPECT().ValidateToken("forged").Return(nil, jwt.ErrTokenSignatureInvalid)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mockservice.NewMockTokenService(t)
			if tt.setup != nil {
				tt.setup(tokenSvc)
			}
			e := newTestEcho(t, tokenSvc)

			req := httptest.NewRequest(http.MethodGet, "/v1/whoami", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			require.Equal(t, http.StatusUnauthorized, rec.Code)
			body := decode(t, rec)
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.Equal(t, "UNAUTHORIZED", body.Error.Code)
		})
	}
}

func TestAuthMiddleware_RequireScope(t *testing.T) {
	tokenSvc := mockservice.NewMockTokenService(t)
	tokenSvc.EXPECT().ValidateToken("users-only").Return(&service.Claims{Scopes: []string{constants.ScopeUsers}}, nil)
	tokenSvc.EXPECT().ValidateToken("catalog").Return(&service.Claims{Scopes: []string{constants.ScopeCatalogWrite}}, nil)
	e := newTestEcho(t, tokenSvc)

	req := httptest.NewRequest(http.MethodPost, "/v1/items", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer users-only")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "FORBIDDEN", decode(t, rec).Error.Code)

	req = httptest.NewRequest(http.MethodPost, "/v1/items", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer catalog")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantKind   string
		wantDetail string
	}{
		{
			name:       "app error with details",
			err:        errors.Wrap(domainerrors.ErrWrongStep.WithDetails("current step is awaiting_code"), "submit"),
			wantStatus: http.StatusConflict,
			wantCode:   "WRONG_STEP",
			wantKind:   "misuse",
			wantDetail: "current step is awaiting_code",
		},
		{
			name:       "server side app error hides details",
			err:        domainerrors.ErrCredentialSave.WithCause(errors.New("disk full")),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "CREDENTIAL_SAVE_FAILED",
			wantKind:   "store",
		},
		{
			name:       "echo error with non string message",
			err:        echo.NewHTTPError(http.StatusRequestEntityTooLarge, errors.New("too big")),
			wantStatus: http.StatusRequestEntityTooLarge,
			wantCode:   "HTTP_ERROR",
			wantDetail: "too big",
		},
		{
			name:       "unknown error",
			err:        errors.New("nil pointer somewhere"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	handler := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			handler.HandleHTTPError(tt.err, c)

			require.Equal(t, tt.wantStatus, rec.Code)
			body := decode(t, rec)
			assert.Equal(t, tt.wantStatus, body.Code)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, tt.wantKind, body.Error.Kind)
			assert.Equal(t, tt.wantDetail, body.Error.Details)
			assert.NotContains(t, rec.Body.String(), "disk full")
		})
	}
}
