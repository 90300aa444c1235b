package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sammytumzy/TunmzyTech/internal/dto"
	"github.com/sammytumzy/TunmzyTech/internal/service"
)

type StatusHandler struct {
	statusService service.StatusService
}

func NewStatusHandler(statusService service.StatusService) *StatusHandler {
	return &StatusHandler{
		statusService: statusService,
	}
}

func (h *StatusHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "TunmzyTech API - Pi Network Integration Ready",
	})
}

func (h *StatusHandler) CreateStatusCheck(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.StatusCheckCreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "client_name is required")
	}

	check, err := h.statusService.Create(ctx, req.ClientName)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, check)
}

func (h *StatusHandler) GetStatusChecks(c echo.Context) error {
	ctx := c.Request().Context()

	checks, err := h.statusService.List(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, checks)
}
