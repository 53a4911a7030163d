package handler

import (
	"net/http"

	"relay/internal/delivery/http/response"
	"relay/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// VictoryHandler holds dependencies for victory handlers.
type VictoryHandler struct {
	victoryUC usecase.VictoryUsecase
}

// NewVictoryHandler is the constructor for VictoryHandler, injected by Fx.
func NewVictoryHandler(victoryUC usecase.VictoryUsecase) *VictoryHandler {
	return &VictoryHandler{
		victoryUC: victoryUC,
	}
}

// GetVictory handles the request for a single victory.
func (h *VictoryHandler) GetVictory(c echo.Context) error {
	victoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid victory ID")
	}

	victory, err := h.victoryUC.GetVictory(c.Request().Context(), victoryID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toVictoryView(victory), "Victory retrieved successfully")
}
