package handler

import (
	"net/http"

	"vidgate/internal/delivery/http/response"
	"vidgate/internal/domain/entity"
	"vidgate/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RequestContentRequest carries the profile fields the transport knows about the user.
type RequestContentRequest struct {
	DisplayName string `json:"display_name"`
}

// ContentHandler serves catalog items behind the quota.
type ContentHandler struct {
	uc usecase.ContentUsecase
}

// NewContentHandler is the constructor for ContentHandler, injected by Fx.
func NewContentHandler(uc usecase.ContentUsecase) *ContentHandler {
	return &ContentHandler{uc: uc}
}

// RequestContent delivers one item if the user's quota allows it.
// A denied request is still a 200; the decision tells the caller what to offer.
func (h *ContentHandler) RequestContent(c echo.Context) error {
	userID, err := userIDParam(c)
	if err != nil {
		return err
	}

	var body RequestContentRequest
	if err := c.Bind(&body); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid content request")
	}

	input := &usecase.RequestContentInput{UserID: userID, DisplayName: body.DisplayName}
	if err := c.Validate(input); err != nil {
		return err
	}

	result, err := h.uc.RequestContent(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, verdictMessage(result.Decision))
}

// AddItem indexes an item the transport already stores.
func (h *ContentHandler) AddItem(c echo.Context) error {
	var input usecase.AddItemInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid item")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	item, err := h.uc.AddItem(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, item, "Item indexed")
}

func verdictMessage(decision *entity.Decision) string {
	switch decision.Verdict {
	case entity.VerdictAllow:
		if decision.BonusGranted {
			return "Premium unlocked for logging in, enjoy"
		}

		return "Enjoy"
	case entity.VerdictDenyPremiumExhausted:
		return "You have used all of today's premium videos, come back tomorrow"
	case entity.VerdictDenyNeedsPurchase:
		return "Daily limit reached, buy premium for more"
	case entity.VerdictDenyNeedsLogin:
		return "Daily limit reached, send /login to unlock premium for a day"
	default:
		return ""
	}
}
