// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"
	"strconv"

	deliverycontext "vidgate/internal/delivery/context"
	"vidgate/internal/delivery/http/response"
	"vidgate/internal/domain/entity"
	domainerrors "vidgate/internal/domain/errors"
	"vidgate/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SubmitTextRequest is free text typed by the user during a login.
type SubmitTextRequest struct {
	Text string `json:"text" validate:"required,max=256"`
}

// LoginHandler exposes the login state machine.
type LoginHandler struct {
	uc usecase.LoginUsecase
}

// NewLoginHandler is the constructor for LoginHandler, injected by Fx.
func NewLoginHandler(uc usecase.LoginUsecase) *LoginHandler {
	return &LoginHandler{uc: uc}
}

// StartLogin opens a fresh login for the user.
func (h *LoginHandler) StartLogin(c echo.Context) error {
	userID, err := userIDParam(c)
	if err != nil {
		return err
	}

	result, err := h.uc.StartLogin(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "Send your phone number")
}

// SubmitText forwards the user's message to the current login step.
func (h *LoginHandler) SubmitText(c echo.Context) error {
	userID, err := userIDParam(c)
	if err != nil {
		return err
	}

	var input SubmitTextRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	result, err := h.uc.SubmitText(c.Request().Context(), userID, input.Text)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, stepMessage(result))
}

// Step reports where the user's login stands.
func (h *LoginHandler) Step(c echo.Context) error {
	userID, err := userIDParam(c)
	if err != nil {
		return err
	}

	step := h.uc.Step(userID)

	return response.Success(c, http.StatusOK, map[string]string{"step": step.String()}, "")
}

// Cancel stops the user's login.
func (h *LoginHandler) Cancel(c echo.Context) error {
	userID, err := userIDParam(c)
	if err != nil {
		return err
	}

	result, err := h.uc.Cancel(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "Login cancelled")
}

// Logout forgets the user's stored credential.
func (h *LoginHandler) Logout(c echo.Context) error {
	userID, err := userIDParam(c)
	if err != nil {
		return err
	}

	if err := h.uc.Logout(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Logged out")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

// userIDParam prefers the id the request middleware already parsed.
func userIDParam(c echo.Context) (int64, error) {
	if userID, ok := deliverycontext.GetUserIDFromContext(c.Request().Context()); ok {
		return userID, nil
	}

	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || userID <= 0 {
		return 0, domainerrors.ErrValidationFailed.WithDetails("id: must be a positive integer")
	}

	return userID, nil
}

func stepMessage(result *entity.LoginResult) string {
	switch result.Step {
	case entity.LoginStepAwaitingCode:
		return "Send the code you received"
	case entity.LoginStepAwaitingPassword:
		return "Send your two-step verification password"
	case entity.LoginStepCompleted:
		if result.BonusGranted {
			return "Logged in, premium unlocked for a limited time"
		}

		return "Logged in"
	case entity.LoginStepCancelled:
		return "Login cancelled"
	default:
		return ""
	}
}
