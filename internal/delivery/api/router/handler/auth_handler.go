package handler

import (
	"log/slog"

	"bloodlink/internal/delivery/api/response"
	domainerrors "bloodlink/internal/domain/errors"
	"bloodlink/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// idTokenField carries the identity-provider proof; it is never signed into the token.
const idTokenField = "idToken"

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler issues bearer tokens.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// TokenResponse is the body of POST /jwt.
type TokenResponse struct {
	Token string `json:"token"`
}

// IssueToken signs the posted identity payload.
func (h *AuthHandler) IssueToken(c echo.Context) error {
	payload := map[string]any{}
	if err := (&echo.DefaultBinder{}).BindBody(c, &payload); err != nil {
		return domainerrors.ErrInvalidInput.WithDetails("body must be a JSON object")
	}

	idToken, _ := payload[idTokenField].(string)
	delete(payload, idTokenField)

	output, err := h.authUC.IssueToken(c.Request().Context(), usecase.IssueTokenInput{
		Payload: payload,
		IDToken: idToken,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, TokenResponse{Token: output.Token})
}
