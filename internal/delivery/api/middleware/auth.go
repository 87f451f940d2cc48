package middleware

import (
	"log/slog"
	"net/url"
	"strings"

	deliverycontext "bloodlink/internal/delivery/context"
	"bloodlink/internal/domain/access"
	"bloodlink/internal/domain/entity"
	domainerrors "bloodlink/internal/domain/errors"
	"bloodlink/internal/domain/repository"
	"bloodlink/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	claimsKey = "auth.claims"
	callerKey = "auth.caller"

	bearerPrefix = "bearer "
)

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenService service.TokenService
	UserRepo     repository.UserRepository
	Logger       *slog.Logger
}

// AuthMiddleware verifies bearer tokens and applies the access policy of a route.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		tokenSvc: params.TokenService,
		userRepo: params.UserRepo,
		logger:   params.Logger,
	}
}

// Authenticate validates the bearer token and stores its claims. It never touches the store.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if len(authHeader) <= len(bearerPrefix) || !strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
			return domainerrors.ErrUnauthenticated.WithDetails("bearer token required")
		}

		claims, err := m.tokenSvc.Validate(strings.TrimSpace(authHeader[len(bearerPrefix):]))
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Debug("Rejected bearer token",
				slog.Any("error", err),
			)

			return domainerrors.ErrUnauthenticated
		}

		c.Set(claimsKey, claims)
		ctx := deliverycontext.WithActor(c.Request().Context(), strings.ToLower(claims.Email))
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// Authorize evaluates rule for the authenticated caller. It must run after Authenticate;
// without verified claims it rejects the request.
func (m *AuthMiddleware) Authorize(rule access.Rule) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email, ok := GetEmail(c)
			if !ok {
				return domainerrors.ErrUnauthenticated
			}

			var user *entity.User
			if rule.NeedsIdentity() {
				found, err := m.userRepo.FindByEmail(c.Request().Context(), email)
				switch {
				case err == nil:
					user = found
				case errors.Is(err, repository.ErrUserNotFound):
				default:
					return errors.Wrap(err, "failed to load caller identity")
				}
			}

			in := access.Input{
				Email: email,
				Param: func(name string) string { return PathParam(c, name) },
				User:  user,
			}
			if err := access.Evaluate(rule, in); err != nil {
				return err
			}

			caller := access.Caller{Email: email}
			if user != nil {
				caller.Role = user.EffectiveRole()
			}
			c.Set(callerKey, caller)

			return next(c)
		}
	}
}

// Gate returns the middleware chain enforcing rule.
func (m *AuthMiddleware) Gate(rule access.Rule) []echo.MiddlewareFunc {
	if !rule.NeedsToken() {
		return nil
	}

	return []echo.MiddlewareFunc{m.Authenticate, m.Authorize(rule)}
}

// GetClaims returns the verified token claims.
func GetClaims(c echo.Context) (*service.Claims, bool) {
	claims, ok := c.Get(claimsKey).(*service.Claims)

	return claims, ok && claims != nil
}

// GetEmail returns the lower-cased email of the verified token.
func GetEmail(c echo.Context) (string, bool) {
	claims, ok := GetClaims(c)
	if !ok || claims.Email == "" {
		return "", false
	}

	return strings.ToLower(claims.Email), true
}

// GetCaller returns the caller resolved by Authorize. Role is empty when the
// route did not need the stored identity.
func GetCaller(c echo.Context) (access.Caller, bool) {
	caller, ok := c.Get(callerKey).(access.Caller)

	return caller, ok
}

// PathParam returns the named path parameter with percent-encoding removed.
// A malformed escape is returned as sent.
func PathParam(c echo.Context, name string) string {
	raw := c.Param(name)
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}

	return raw
}
