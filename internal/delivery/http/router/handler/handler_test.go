package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"vidgate/internal/delivery/http/middleware"
	"vidgate/internal/delivery/http/response"
	"vidgate/internal/delivery/http/validator"
	"vidgate/internal/domain/entity"
	domainerrors "vidgate/internal/domain/errors"
	mockusecase "vidgate/internal/mocks/usecase"
	"vidgate/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type handlerFixture struct {
	e           *echo.Echo
	login       *mockusecase.MockLoginUsecase
	content     *mockusecase.MockContentUsecase
	entitlement *mockusecase.MockEntitlementUsecase
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()

	f := &handlerFixture{
		e:           echo.New(),
		login:       mockusecase.NewMockLoginUsecase(t),
		content:     mockusecase.NewMockContentUsecase(t),
		entitlement: mockusecase.NewMockEntitlementUsecase(t),
	}
	f.e.Validator = validator.New()
	f.e.HTTPErrorHandler = middleware.NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError

	loginHandler := NewLoginHandler(f.login)
	contentHandler := NewContentHandler(f.content)
	entitlementHandler := NewEntitlementHandler(f.entitlement)

	f.e.GET("/health", HealthCheck)
	f.e.POST("/users/:id/login", loginHandler.StartLogin)
	f.e.GET("/users/:id/login", loginHandler.Step)
	f.e.DELETE("/users/:id/login", loginHandler.Cancel)
	f.e.POST("/users/:id/login/input", loginHandler.SubmitText)
	f.e.POST("/users/:id/logout", loginHandler.Logout)
	f.e.POST("/users/:id/content", contentHandler.RequestContent)
	f.e.GET("/users/:id/entitlement", entitlementHandler.Status)
	f.e.POST("/items", contentHandler.AddItem)

	return f
}

func (f *handlerFixture) do(t *testing.T, method, path, body string) (*httptest.ResponseRecorder, response.Response) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)

	var decoded response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))

	return rec, decoded
}

func TestHealthCheck(t *testing.T) {
	f := newHandlerFixture(t)

	rec, body := f.do(t, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, body.Success)
}

func TestLoginHandler_StartLogin(t *testing.T) {
	f := newHandlerFixture(t)
	f.login.EXPECT().StartLogin(mock.Anything, int64(42)).
		Return(&entity.LoginResult{Step: entity.LoginStepAwaitingPhone}, nil)

	rec, body := f.do(t, http.MethodPost, "/users/42/login", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{"step": "awaiting_phone"}, body.Data)
	assert.Equal(t, "Send your phone number", body.Message)
}

func TestLoginHandler_StartLogin_AlreadyAuthenticated(t *testing.T) {
	f := newHandlerFixture(t)
	f.login.EXPECT().StartLogin(mock.Anything, int64(42)).Return(nil, domainerrors.ErrAlreadyAuthenticated)

	rec, body := f.do(t, http.MethodPost, "/users/42/login", "")

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "ALREADY_AUTHENTICATED", body.Error.Code)
	assert.Equal(t, "misuse", body.Error.Kind)
}

func TestLoginHandler_BadUserID(t *testing.T) {
	f := newHandlerFixture(t)

	for _, path := range []string{"/users/abc/login", "/users/0/login", "/users/-5/login"} {
		rec, body := f.do(t, http.MethodPost, path, "")

		require.Equal(t, http.StatusBadRequest, rec.Code, path)
		assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
		assert.Equal(t, "id: must be a positive integer", body.Error.Details)
	}
}

func TestLoginHandler_SubmitText(t *testing.T) {
	expiry := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		result      *entity.LoginResult
		err         error
		wantStatus  int
		wantMessage string
		wantCode    string
	}{
		{
			name:        "code requested",
			result:      &entity.LoginResult{Step: entity.LoginStepAwaitingCode},
			wantStatus:  http.StatusOK,
			wantMessage: "Send the code you received",
		},
		{
			name:        "completed with bonus",
			result:      &entity.LoginResult{Step: entity.LoginStepCompleted, BonusGranted: true, TempPremiumExpiry: &expiry},
			wantStatus:  http.StatusOK,
			wantMessage: "Logged in, premium unlocked for a limited time",
		},
		{
			name:       "invalid code",
			err:        domainerrors.ErrInvalidCode,
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "INVALID_CODE",
		},
		{
			name:       "step in flight",
			err:        domainerrors.ErrStepInProgress,
			wantStatus: http.StatusConflict,
			wantCode:   "STEP_IN_PROGRESS",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newHandlerFixture(t)
			f.login.EXPECT().SubmitText(mock.Anything, int64(7), "1 2 3 4 5").Return(tt.result, tt.err)

			rec, body := f.do(t, http.MethodPost, "/users/7/login/input", `{"text":"1 2 3 4 5"}`)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, body.Error.Code)

				return
			}
			assert.Equal(t, tt.wantMessage, body.Message)
		})
	}
}

func TestLoginHandler_SubmitText_Validation(t *testing.T) {
	f := newHandlerFixture(t)

	rec, body := f.do(t, http.MethodPost, "/users/7/login/input", `{"text":""}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "text: required", body.Error.Details)

	rec, body = f.do(t, http.MethodPost, "/users/7/login/input", `{"text":`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_INPUT", body.Error.Code)
}

func TestLoginHandler_StepCancelLogout(t *testing.T) {
	f := newHandlerFixture(t)
	f.login.EXPECT().Step(int64(9)).Return(entity.LoginStepAwaitingPassword)
	f.login.EXPECT().Cancel(mock.Anything, int64(9)).Return(&entity.LoginResult{Step: entity.LoginStepCancelled}, nil)
	f.login.EXPECT().Logout(mock.Anything, int64(9)).Return(domainerrors.ErrNotLoggedIn)

	rec, body := f.do(t, http.MethodGet, "/users/9/login", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{"step": "awaiting_password"}, body.Data)

	rec, body = f.do(t, http.MethodDelete, "/users/9/login", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{"step": "cancelled"}, body.Data)

	rec, body = f.do(t, http.MethodPost, "/users/9/logout", "")
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "NOT_LOGGED_IN", body.Error.Code)
}

func TestContentHandler_RequestContent(t *testing.T) {
	f := newHandlerFixture(t)
	f.content.EXPECT().RequestContent(mock.Anything, &usecase.RequestContentInput{UserID: 5, DisplayName: "Asha"}).
		Return(&entity.ContentResult{
			Decision: &entity.Decision{Verdict: entity.VerdictAllow, Tier: entity.TierFree, Used: 1, Limit: 10},
			Item:     &entity.ItemRef{ID: 3, FileID: "file-3"},
		}, nil)

	rec, body := f.do(t, http.MethodPost, "/users/5/content", `{"display_name":"Asha"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Enjoy", body.Message)
	data, ok := body.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "allow", data["decision"].(map[string]any)["verdict"])
	assert.Equal(t, "file-3", data["item"].(map[string]any)["file_id"])
}

func TestContentHandler_RequestContent_Denied(t *testing.T) {
	f := newHandlerFixture(t)
	f.content.EXPECT().RequestContent(mock.Anything, &usecase.RequestContentInput{UserID: 5}).
		Return(&entity.ContentResult{
			Decision: &entity.Decision{Verdict: entity.VerdictDenyNeedsLogin, Tier: entity.TierFree, Used: 10, Limit: 10},
		}, nil)

	rec, body := f.do(t, http.MethodPost, "/users/5/content", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Daily limit reached, send /login to unlock premium for a day", body.Message)
}

func TestContentHandler_RequestContent_Busy(t *testing.T) {
	f := newHandlerFixture(t)
	f.content.EXPECT().RequestContent(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrUserBusy)

	rec, body := f.do(t, http.MethodPost, "/users/5/content", "")

	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "USER_BUSY", body.Error.Code)
}

func TestContentHandler_AddItem(t *testing.T) {
	f := newHandlerFixture(t)
	f.content.EXPECT().AddItem(mock.Anything, &usecase.AddItemInput{FileID: "file-9", Caption: "sunset"}).
		Return(&entity.ItemRef{ID: 9, FileID: "file-9", Caption: "sunset"}, nil)

	rec, body := f.do(t, http.MethodPost, "/items", `{"file_id":"file-9","caption":"sunset"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Item indexed", body.Message)

	rec, body = f.do(t, http.MethodPost, "/items", `{"caption":"no file"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "file_id: required", body.Error.Details)
}

func TestEntitlementHandler_Status(t *testing.T) {
	f := newHandlerFixture(t)
	f.entitlement.EXPECT().Status(mock.Anything, int64(11)).Return(&entity.EntitlementStatus{
		Tier:      entity.TierPremium,
		Used:      4,
		Limit:     50,
		Remaining: 46,
	}, nil)

	rec, body := f.do(t, http.MethodGet, "/users/11/entitlement", "")

	require.Equal(t, http.StatusOK, rec.Code)
	data, ok := body.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "premium", data["tier"])
	assert.InDelta(t, 46, data["remaining"], 0)
}
