package handler

import (
	"log/slog"

	"bloodlink/internal/delivery/api/response"
	"bloodlink/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// BlogHandlerParams holds dependencies for BlogHandler, injected by Fx.
type BlogHandlerParams struct {
	fx.In

	BlogUC usecase.BlogUsecase
	Logger *slog.Logger
}

// BlogHandler holds dependencies for blog handlers.
type BlogHandler struct {
	blogUC usecase.BlogUsecase
	logger *slog.Logger
}

// NewBlogHandler is the constructor for BlogHandler.
func NewBlogHandler(params BlogHandlerParams) *BlogHandler {
	return &BlogHandler{
		blogUC: params.BlogUC,
		logger: params.Logger,
	}
}

// CreateBlogRequest is the body of POST /add-blog. Content is HTML.
type CreateBlogRequest struct {
	Title     string `json:"title" validate:"required,max=200"`
	Thumbnail string `json:"thumbnail" validate:"omitempty,url"`
	Content   string `json:"content" validate:"required"`
	Status    string `json:"status" validate:"omitempty,blogstatus"`
}

// SetBlogStatusRequest is the body of PATCH /all-blogs/:id/status.
type SetBlogStatusRequest struct {
	Status string `json:"status" validate:"required,blogstatus"`
}

// Create stores a new post authored by the caller.
func (h *BlogHandler) Create(c echo.Context) error {
	caller, err := callerOf(c)
	if err != nil {
		return err
	}

	var req CreateBlogRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	result, err := h.blogUC.Create(c.Request().Context(), caller.Email, usecase.CreateBlogInput{
		Title:     req.Title,
		Thumbnail: req.Thumbnail,
		Content:   req.Content,
		Status:    req.Status,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, result)
}

// List returns every post; ?status= narrows the list.
func (h *BlogHandler) List(c echo.Context) error {
	blogs, err := h.blogUC.List(c.Request().Context(), c.QueryParam("status"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, blogs)
}

// Get returns one post.
func (h *BlogHandler) Get(c echo.Context) error {
	blog, err := h.blogUC.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, blog)
}

// SetStatus publishes or unpublishes a post.
func (h *BlogHandler) SetStatus(c echo.Context) error {
	var req SetBlogStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	result, err := h.blogUC.SetStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, result)
}

// Delete removes a post.
func (h *BlogHandler) Delete(c echo.Context) error {
	result, err := h.blogUC.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, result)
}
