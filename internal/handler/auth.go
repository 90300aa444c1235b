package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sammytumzy/TunmzyTech/internal/client"
	"github.com/sammytumzy/TunmzyTech/internal/dto"
	"github.com/sammytumzy/TunmzyTech/internal/service"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

func (h *AuthHandler) VerifyAuth(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.AuthRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "accessToken is required")
	}

	resp, err := h.authService.Verify(ctx, req.AccessToken)
	if err != nil {
		switch {
		case errors.Is(err, client.ErrUnauthorized):
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid Pi Network access token")
		case errors.Is(err, client.ErrUpstreamUnavailable):
			return echo.NewHTTPError(http.StatusBadGateway, "Failed to verify user with Pi Network")
		default:
			return err
		}
	}

	return c.JSON(http.StatusOK, resp)
}
