package handler

import (
	"net/http"

	"vidgate/internal/delivery/http/response"
	"vidgate/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// EntitlementHandler reports quota state.
type EntitlementHandler struct {
	uc usecase.EntitlementUsecase
}

// NewEntitlementHandler is the constructor for EntitlementHandler, injected by Fx.
func NewEntitlementHandler(uc usecase.EntitlementUsecase) *EntitlementHandler {
	return &EntitlementHandler{uc: uc}
}

// Status returns the user's tier and today's usage.
func (h *EntitlementHandler) Status(c echo.Context) error {
	userID, err := userIDParam(c)
	if err != nil {
		return err
	}

	status, err := h.uc.Status(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, status, "")
}
