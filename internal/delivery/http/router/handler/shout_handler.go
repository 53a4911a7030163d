package handler

import (
	"net/http"

	"relay/internal/delivery/http/middleware"
	"relay/internal/delivery/http/response"
	"relay/internal/domain/entity"
	"relay/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ShoutHandler holds dependencies for shout chain handlers.
type ShoutHandler struct {
	shoutUC  usecase.ShoutUsecase
	rankerUC usecase.RankerUsecase
}

// NewShoutHandler is the constructor for ShoutHandler, injected by Fx.
func NewShoutHandler(shoutUC usecase.ShoutUsecase, rankerUC usecase.RankerUsecase) *ShoutHandler {
	return &ShoutHandler{
		shoutUC:  shoutUC,
		rankerUC: rankerUC,
	}
}

type createShoutRequest struct {
	Location string `json:"location" validate:"required"`

	// Seed-only fields: where the chain must end, or who it must reach.
	EndLocation string `json:"endLocation,omitempty"`
	ReceiverID  string `json:"receiverId,omitempty"`

	// Forward-only field: the heard shout being carried onward.
	SourceShoutID string `json:"sourceShoutId,omitempty"`
}

// CreateShout seeds a new chain or forwards an existing one.
func (h *ShoutHandler) CreateShout(c echo.Context) error {
	shouterID, ok := middleware.AuthenticatedUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req createShoutRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid shout input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	location, err := entity.ParseGeoPoint(req.Location)
	if err != nil {
		return errors.WithStack(err)
	}

	input := usecase.CreateShoutInput{
		ShouterID: shouterID,
		Location:  location,
	}

	if req.EndLocation != "" {
		endLocation, err := entity.ParseGeoPoint(req.EndLocation)
		if err != nil {
			return errors.WithStack(err)
		}
		input.EndLocation = &endLocation
	}
	if req.ReceiverID != "" {
		receiverID, err := uuid.Parse(req.ReceiverID)
		if err != nil {
			return response.BindingError(c, "INVALID_INPUT", "Invalid receiver ID")
		}
		input.ReceiverID = &receiverID
	}
	if req.SourceShoutID != "" {
		sourceShoutID, err := uuid.Parse(req.SourceShoutID)
		if err != nil {
			return response.BindingError(c, "INVALID_INPUT", "Invalid source shout ID")
		}
		input.SourceShoutID = &sourceShoutID
	}

	output, err := h.shoutUC.CreateShout(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, &CreateShoutView{
		Shout:    toShoutView(output.Shout),
		Template: toTemplateView(output.Template),
		Victory:  toVictoryView(output.Victory),
	}, "Shout created successfully")
}

// BestShouts lists the best shouts audible at the caller's location.
func (h *ShoutHandler) BestShouts(c echo.Context) error {
	userID, ok := middleware.AuthenticatedUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	location, err := entity.ParseGeoPoint(c.QueryParam("location"))
	if err != nil {
		return errors.WithStack(err)
	}

	shouts, err := h.rankerUC.BestShouts(c.Request().Context(), usecase.BestShoutsInput{
		UserID:   userID,
		Location: location,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toShoutViews(shouts), "Shouts retrieved successfully")
}

// GetShout handles the request for a single shout.
func (h *ShoutHandler) GetShout(c echo.Context) error {
	shoutID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid shout ID")
	}

	shout, err := h.shoutUC.GetShout(c.Request().Context(), shoutID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toShoutView(shout), "Shout retrieved successfully")
}

// GetTemplate handles the request for a single template.
func (h *ShoutHandler) GetTemplate(c echo.Context) error {
	templateID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid template ID")
	}

	template, err := h.shoutUC.GetTemplate(c.Request().Context(), templateID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toTemplateView(template), "Template retrieved successfully")
}

// NotSupported rejects mutation verbs the game never allows over the API.
func NotSupported(c echo.Context) error {
	return response.MethodNotAllowed(c, "METHOD_NOT_SUPPORTED", "Method not supported on this resource")
}
