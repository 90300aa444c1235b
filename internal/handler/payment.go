package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sammytumzy/TunmzyTech/internal/dto"
	"github.com/sammytumzy/TunmzyTech/internal/middleware"
	"github.com/sammytumzy/TunmzyTech/internal/service"
)

type PaymentHandler struct {
	paymentService service.PaymentService
}

func NewPaymentHandler(paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

func (h *PaymentHandler) ApprovePayment(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.PaymentApprovalRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "paymentId is required")
	}

	result, err := h.paymentService.Approve(ctx, middleware.UserUID(c), req.PaymentID, req.Amount)
	if err != nil {
		return mapPaymentError(err)
	}

	message := "Payment approved"
	if result.AlreadyApproved {
		message = "Payment already approved"
	}

	return c.JSON(http.StatusOK, &dto.PaymentApprovalResponse{
		Success:   true,
		Message:   message,
		PaymentID: result.PaymentID,
		Degraded:  result.Degraded,
	})
}

func (h *PaymentHandler) CompletePayment(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.PaymentCompletionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "paymentId and txid are required")
	}

	result, err := h.paymentService.Complete(ctx, req.PaymentID, req.Txid)
	if err != nil {
		return mapPaymentError(err)
	}

	message := "Payment completed"
	if result.AlreadyCompleted {
		message = "Payment already completed"
	}

	return c.JSON(http.StatusOK, &dto.PaymentCompletionResponse{
		Success:   true,
		Message:   message,
		PaymentID: result.PaymentID,
		Txid:      result.Txid,
		Degraded:  result.Degraded,
	})
}

func (h *PaymentHandler) CancelPayment(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.PaymentCancelRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "paymentId is required")
	}

	result, err := h.paymentService.Cancel(ctx, req.PaymentID)
	if err != nil {
		return mapPaymentError(err)
	}

	return c.JSON(http.StatusOK, &dto.PaymentAckResponse{
		Message:   "Payment cancellation acknowledged by server",
		PaymentID: result.PaymentID,
	})
}

func (h *PaymentHandler) PaymentError(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.PaymentErrorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "paymentId is required")
	}

	result, err := h.paymentService.Fail(ctx, req.PaymentID, req.Error)
	if err != nil {
		return mapPaymentError(err)
	}

	return c.JSON(http.StatusOK, &dto.PaymentAckResponse{
		Message:   "Payment error acknowledged by server",
		PaymentID: result.PaymentID,
	})
}

func (h *PaymentHandler) GetPayments(c echo.Context) error {
	ctx := c.Request().Context()

	payments, err := h.paymentService.List(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, payments)
}

func (h *PaymentHandler) GetPayment(c echo.Context) error {
	ctx := c.Request().Context()

	payment, err := h.paymentService.Get(ctx, c.Param("paymentId"))
	if err != nil {
		return mapPaymentError(err)
	}

	return c.JSON(http.StatusOK, payment)
}

func mapPaymentError(err error) error {
	switch {
	case errors.Is(err, service.ErrPaymentNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Payment not found")
	case errors.Is(err, service.ErrInvalidAmount):
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "amount must be a positive number")
	case errors.Is(err, service.ErrTxidConflict):
		return echo.NewHTTPError(http.StatusConflict, "payment already completed with a different txid")
	case errors.Is(err, service.ErrInvalidTransition):
		return echo.NewHTTPError(http.StatusConflict, "payment is not in a completable state")
	case errors.Is(err, service.ErrUpstreamDegraded):
		return echo.NewHTTPError(http.StatusBadGateway, "Pi Network is unavailable, retry later")
	default:
		return err
	}
}
