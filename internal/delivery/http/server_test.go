package http

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"vidgate/config"
	deliverycontext "vidgate/internal/delivery/context"
	httpmiddleware "vidgate/internal/delivery/http/middleware"
	"vidgate/internal/delivery/http/router"
	"vidgate/internal/delivery/http/router/handler"
	"vidgate/internal/domain/constants"
	"vidgate/internal/domain/entity"
	"vidgate/internal/domain/service"
	"vidgate/internal/infra/metrics"
	mockservice "vidgate/internal/mocks/service"
	mockusecase "vidgate/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type serverFixture struct {
	handler  http.Handler
	tokenSvc *mockservice.MockTokenService
	content  *mockusecase.MockContentUsecase
	login    *mockusecase.MockLoginUsecase
}

func newServerFixture(t *testing.T) *serverFixture {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1KB"

	f := &serverFixture{
		tokenSvc: mockservice.NewMockTokenService(t),
		content:  mockusecase.NewMockContentUsecase(t),
		login:    mockusecase.NewMockLoginUsecase(t),
	}
	m := metrics.New(prometheus.NewRegistry())

	f.handler = newEcho(HTTPParams{
		Config:          cfg,
		Logger:          logger,
		Metrics:         m,
		ErrorMiddleware: httpmiddleware.NewErrorMiddleware(logger),
		RouterParams: router.RouterParams{
			LoginHandler:       handler.NewLoginHandler(f.login),
			ContentHandler:     handler.NewContentHandler(f.content),
			EntitlementHandler: handler.NewEntitlementHandler(mockusecase.NewMockEntitlementUsecase(t)),
			AuthMiddleware:     httpmiddleware.NewAuthMiddleware(f.tokenSvc),
			Metrics:            m,
		},
	})

	return f
}

func (f *serverFixture) serve(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)

	return rec
}

func TestServer_PublicRoutes(t *testing.T) {
	f := newServerFixture(t)

	rec := f.serve(httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-123")
	rec = f.serve(req)
	assert.Equal(t, "req-123", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Contains(t, rec.Body.String(), `"request_id":"req-123"`)

	rec = f.serve(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "http_requests_total")
}

func TestServer_UserRoutesRequireToken(t *testing.T) {
	f := newServerFixture(t)

	rec := f.serve(httptest.NewRequest(http.MethodPost, "/v1/users/1/login", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"UNAUTHORIZED"`)
}

func TestServer_UserRoutesRequireScope(t *testing.T) {
	f := newServerFixture(t)
	f.tokenSvc.EXPECT().ValidateToken("catalog-only").
		Return(&service.Claims{Scopes: []string{constants.ScopeCatalogWrite}}, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/users/1/login", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer catalog-only")
	rec := f.serve(req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestServer_StartLogin(t *testing.T) {
	f := newServerFixture(t)
	f.tokenSvc.EXPECT().ValidateToken("bot").Return(&service.Claims{Scopes: []string{constants.ScopeUsers}}, nil)
	f.login.EXPECT().StartLogin(mock.Anything, int64(77)).Return(&entity.LoginResult{Step: entity.LoginStepAwaitingPhone}, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/users/77/login", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer bot")
	rec := f.serve(req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"step":"awaiting_phone"`)
}

func TestServer_BodyLimit(t *testing.T) {
	f := newServerFixture(t)
	f.tokenSvc.EXPECT().ValidateToken("bot").Return(&service.Claims{Scopes: []string{constants.ScopeCatalogWrite}}, nil).Maybe()

	body := `{"file_id":"` + strings.Repeat("x", 2048) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/items", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, "Bearer bot")
	rec := f.serve(req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
