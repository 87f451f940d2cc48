package handler

import (
	"log/slog"

	"bloodlink/internal/delivery/api/response"
	"bloodlink/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PaymentHandlerParams holds dependencies for PaymentHandler, injected by Fx.
type PaymentHandlerParams struct {
	fx.In

	PaymentUC usecase.PaymentUsecase
	Logger    *slog.Logger
}

// PaymentHandler holds dependencies for the funding handlers.
type PaymentHandler struct {
	paymentUC usecase.PaymentUsecase
	logger    *slog.Logger
}

// NewPaymentHandler is the constructor for PaymentHandler.
func NewPaymentHandler(params PaymentHandlerParams) *PaymentHandler {
	return &PaymentHandler{
		paymentUC: params.PaymentUC,
		logger:    params.Logger,
	}
}

// CheckoutRequest is the body of POST /create-checkout-session. Price is in major units.
type CheckoutRequest struct {
	Price float64 `json:"price" validate:"gt=0"`
}

// CheckoutResponse carries the secret the client confirms the card payment with.
type CheckoutResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// RecordPaymentRequest is the body of POST /payment. Amounts come from the processor.
type RecordPaymentRequest struct {
	TransactionID string `json:"transactionId" validate:"required"`
	Name          string `json:"name"`
	Email         string `json:"email" validate:"omitempty,email"`
	Message       string `json:"message" validate:"max=500"`
}

// CreateCheckout opens a payment intent.
func (h *PaymentHandler) CreateCheckout(c echo.Context) error {
	var req CheckoutRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.paymentUC.CreateCheckout(c.Request().Context(), req.Price)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, CheckoutResponse{ClientSecret: output.ClientSecret})
}

// RecordPayment stores a payment the processor confirmed.
func (h *PaymentHandler) RecordPayment(c echo.Context) error {
	var req RecordPaymentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	result, err := h.paymentUC.RecordPayment(c.Request().Context(), usecase.RecordPaymentInput{
		TransactionID: req.TransactionID,
		Name:          req.Name,
		Email:         req.Email,
		Message:       req.Message,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, result)
}

// History lists every recorded payment.
func (h *PaymentHandler) History(c echo.Context) error {
	payments, err := h.paymentUC.History(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, payments)
}
