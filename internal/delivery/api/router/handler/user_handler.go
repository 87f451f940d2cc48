// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"bloodlink/internal/delivery/api/response"
	"bloodlink/internal/domain/entity"
	"bloodlink/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler holds dependencies for identity handlers.
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// RegisterUserRequest is the body of POST /users.
type RegisterUserRequest struct {
	Email      string `json:"email" validate:"required,email"`
	Name       string `json:"name" validate:"max=120"`
	Avatar     string `json:"avatar" validate:"omitempty,url"`
	BloodGroup string `json:"bloodGroup" validate:"omitempty,bloodgroup"`
	District   string `json:"district"`
	Upazila    string `json:"upazila"`
}

// UpdateProfileRequest is the body of PATCH /users/profile/:email. Absent fields are unchanged.
type UpdateProfileRequest struct {
	Name       *string `json:"name" validate:"omitempty,max=120"`
	Avatar     *string `json:"avatar" validate:"omitempty,url"`
	BloodGroup *string `json:"bloodGroup" validate:"omitempty,bloodgroup"`
	District   *string `json:"district"`
	Upazila    *string `json:"upazila"`
}

// SetStatusRequest is the body of PATCH /users/status/:email.
type SetStatusRequest struct {
	Status string `json:"status" validate:"required,userstatus"`
}

// Register stores a new identity. A repeat registration reports that the user exists.
func (h *UserHandler) Register(c echo.Context) error {
	var req RegisterUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.userUC.Register(c.Request().Context(), usecase.RegisterUserInput{
		Email:      req.Email,
		Name:       req.Name,
		Avatar:     req.Avatar,
		BloodGroup: req.BloodGroup,
		District:   req.District,
		Upazila:    req.Upazila,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	if !output.Created {
		return response.OK(c, response.Message{Message: "user already exists"})
	}

	return response.OK(c, output.Result)
}

// ListUsers returns every identity.
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.userUC.ListUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, users)
}

// CheckAdmin answers {"admin": bool} for the caller's own email.
func (h *UserHandler) CheckAdmin(c echo.Context) error {
	return h.checkRole(c, entity.RoleAdmin)
}

// CheckVolunteer answers {"volunteer": bool} for the caller's own email.
func (h *UserHandler) CheckVolunteer(c echo.Context) error {
	return h.checkRole(c, entity.RoleVolunteer)
}

func (h *UserHandler) checkRole(c echo.Context, role entity.Role) error {
	ok, err := h.userUC.HasRole(c.Request().Context(), emailParam(c), role)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, map[string]bool{role.String(): ok})
}

// GetProfile returns the caller's own identity.
func (h *UserHandler) GetProfile(c echo.Context) error {
	user, err := h.userUC.GetProfile(c.Request().Context(), emailParam(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, user)
}

// UpdateProfile changes the caller's self-service fields.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	var req UpdateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	result, err := h.userUC.UpdateProfile(c.Request().Context(), emailParam(c), usecase.UpdateProfileInput{
		Name:       req.Name,
		Avatar:     req.Avatar,
		BloodGroup: req.BloodGroup,
		District:   req.District,
		Upazila:    req.Upazila,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, result)
}

// MakeAdmin promotes the identity with the given id to admin.
func (h *UserHandler) MakeAdmin(c echo.Context) error {
	return h.setRole(c, entity.RoleAdmin)
}

// MakeVolunteer sets the role of the identity with the given id to volunteer.
func (h *UserHandler) MakeVolunteer(c echo.Context) error {
	return h.setRole(c, entity.RoleVolunteer)
}

func (h *UserHandler) setRole(c echo.Context, role entity.Role) error {
	result, err := h.userUC.SetRole(c.Request().Context(), c.Param("id"), role)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result)
}

// SetStatus blocks or unblocks an identity.
func (h *UserHandler) SetStatus(c echo.Context) error {
	var req SetStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	result, err := h.userUC.SetStatus(c.Request().Context(), emailParam(c), entity.UserStatus(req.Status))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, result)
}
