package handler

import (
	"log/slog"

	"bloodlink/internal/delivery/api/response"
	"bloodlink/internal/domain/entity"
	"bloodlink/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// DonationRequestHandlerParams holds dependencies for DonationRequestHandler, injected by Fx.
type DonationRequestHandlerParams struct {
	fx.In

	RequestUC usecase.DonationRequestUsecase
	Logger    *slog.Logger
}

// DonationRequestHandler holds dependencies for donation request handlers.
type DonationRequestHandler struct {
	requestUC usecase.DonationRequestUsecase
	logger    *slog.Logger
}

// NewDonationRequestHandler is the constructor for DonationRequestHandler.
func NewDonationRequestHandler(params DonationRequestHandlerParams) *DonationRequestHandler {
	return &DonationRequestHandler{
		requestUC: params.RequestUC,
		logger:    params.Logger,
	}
}

// CreateDonationRequestRequest is the body of POST /api/donation-requests.
type CreateDonationRequestRequest struct {
	RequesterName     string `json:"requesterName"`
	RequesterEmail    string `json:"requesterEmail" validate:"omitempty,email"`
	RecipientName     string `json:"recipientName" validate:"required"`
	RecipientDistrict string `json:"recipientDistrict"`
	RecipientUpazila  string `json:"recipientUpazila"`
	RecipientDivision string `json:"recipientDivision"`
	HospitalName      string `json:"hospitalName" validate:"required"`
	FullAddress       string `json:"fullAddress"`
	BloodGroup        string `json:"bloodGroup" validate:"required,bloodgroup"`
	DonationDate      string `json:"donationDate"`
	DonationTime      string `json:"donationTime"`
	RequestMessage    string `json:"requestMessage"`
}

// UpdateDonationStatusRequest is the body of PATCH /api/donation-requests/:id.
type UpdateDonationStatusRequest struct {
	Status string `json:"status" validate:"required,donationstatus"`
}

// DonateRequest is the body of the donate route.
type DonateRequest struct {
	DonorID    string `json:"donorId"`
	DonorName  string `json:"donorName"`
	DonorEmail string `json:"donorEmail" validate:"omitempty,email"`
	Status     string `json:"status" validate:"omitempty,donationstatus"`
}

// Create stores a new pending donation request.
func (h *DonationRequestHandler) Create(c echo.Context) error {
	caller, err := callerOf(c)
	if err != nil {
		return err
	}

	var req CreateDonationRequestRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	result, err := h.requestUC.Create(c.Request().Context(), caller, usecase.CreateDonationRequestInput{
		RequesterName:     req.RequesterName,
		RequesterEmail:    req.RequesterEmail,
		RecipientName:     req.RecipientName,
		RecipientDistrict: req.RecipientDistrict,
		RecipientUpazila:  req.RecipientUpazila,
		RecipientDivision: req.RecipientDivision,
		HospitalName:      req.HospitalName,
		FullAddress:       req.FullAddress,
		BloodGroup:        req.BloodGroup,
		DonationDate:      req.DonationDate,
		DonationTime:      req.DonationTime,
		RequestMessage:    req.RequestMessage,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, result)
}

// ListAll returns every donation request, optionally filtered by ?status=.
func (h *DonationRequestHandler) ListAll(c echo.Context) error {
	requests, err := h.requestUC.List(c.Request().Context(), c.QueryParam("status"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, requests)
}

// ListPending returns the requests still waiting for a donor.
func (h *DonationRequestHandler) ListPending(c echo.Context) error {
	requests, err := h.requestUC.List(c.Request().Context(), string(entity.DonationStatusPending))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, requests)
}

// ListMine returns the requests created by the caller.
func (h *DonationRequestHandler) ListMine(c echo.Context) error {
	requests, err := h.requestUC.ListByRequester(c.Request().Context(), emailParam(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, requests)
}

// ListByDonor returns the requests a donor has taken on.
func (h *DonationRequestHandler) ListByDonor(c echo.Context) error {
	requests, err := h.requestUC.ListByDonor(c.Request().Context(), emailParam(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, requests)
}

// Get returns one donation request.
func (h *DonationRequestHandler) Get(c echo.Context) error {
	req, err := h.requestUC.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, req)
}

// ShareCode renders a QR code linking to the request.
func (h *DonationRequestHandler) ShareCode(c echo.Context) error {
	png, err := h.requestUC.ShareCode(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.PNG(c, png)
}

// UpdateStatus changes only the status of a request.
func (h *DonationRequestHandler) UpdateStatus(c echo.Context) error {
	caller, err := callerOf(c)
	if err != nil {
		return err
	}

	var req UpdateDonationStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	result, err := h.requestUC.SetStatus(c.Request().Context(), caller, c.Param("id"), req.Status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, result)
}

// Donate assigns a donor to the request.
func (h *DonationRequestHandler) Donate(c echo.Context) error {
	caller, err := callerOf(c)
	if err != nil {
		return err
	}

	var req DonateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	result, err := h.requestUC.Donate(c.Request().Context(), caller, c.Param("id"), usecase.DonateInput{
		DonorID:    req.DonorID,
		DonorName:  req.DonorName,
		DonorEmail: req.DonorEmail,
		Status:     req.Status,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, result)
}

// Delete removes a request.
func (h *DonationRequestHandler) Delete(c echo.Context) error {
	caller, err := callerOf(c)
	if err != nil {
		return err
	}

	result, err := h.requestUC.Delete(c.Request().Context(), caller, c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, result)
}
