package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bloodlink/internal/domain/access"
	"bloodlink/internal/domain/entity"
	domainerrors "bloodlink/internal/domain/errors"
	"bloodlink/internal/domain/repository"
	"bloodlink/internal/domain/service"
	mockRepo "bloodlink/internal/mocks/repository"
	mockService "bloodlink/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestAuthMiddleware(t *testing.T) (*AuthMiddleware, *mockService.MockTokenService, *mockRepo.MockUserRepository) {
	tokens := mockService.NewMockTokenService(t)
	users := mockRepo.NewMockUserRepository(t)

	return NewAuthMiddleware(AuthMiddlewareParams{
		TokenService: tokens,
		UserRepo:     users,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}), tokens, users
}

func newContext(authHeader string) echo.Context {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}

	return echo.New().NewContext(req, httptest.NewRecorder())
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

func TestAuthenticate_HeaderForms(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{name: "missing", header: ""},
		{name: "wrong scheme", header: "Basic abc"},
		{name: "empty bearer", header: "Bearer "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _, _ := newTestAuthMiddleware(t)

			err := m.Authenticate(okHandler)(newContext(tt.header))
			assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
		})
	}
}

func TestAuthenticate_StoresClaims(t *testing.T) {
	m, tokens, _ := newTestAuthMiddleware(t)
	tokens.EXPECT().Validate("tok").Return(&service.Claims{
		Email:   "A@x.com",
		Payload: map[string]any{"email": "A@x.com", "name": "A"},
	}, nil)

	c := newContext("bearer tok")
	require.NoError(t, m.Authenticate(okHandler)(c))

	email, ok := GetEmail(c)
	require.True(t, ok)
	assert.Equal(t, "a@x.com", email)

	claims, ok := GetClaims(c)
	require.True(t, ok)
	assert.Equal(t, "A", claims.Payload["name"])
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	m, tokens, _ := newTestAuthMiddleware(t)
	tokens.EXPECT().Validate("expired").Return(nil, service.ErrTokenInvalid)

	err := m.Authenticate(okHandler)(newContext("Bearer expired"))
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestAuthorize_RequiresAuthenticateFirst(t *testing.T) {
	m, _, _ := newTestAuthMiddleware(t)

	err := m.Authorize(access.Rule{Level: access.Authenticated})(okHandler)(newContext(""))
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestAuthorize_ResolvesCaller(t *testing.T) {
	m, tokens, users := newTestAuthMiddleware(t)
	tokens.EXPECT().Validate("tok").Return(&service.Claims{Email: "vol@x.com"}, nil)
	users.EXPECT().FindByEmail(mock.Anything, "vol@x.com").
		Return(&entity.User{Email: "vol@x.com", Role: entity.RoleVolunteer, CreatedAt: time.Now()}, nil)

	c := newContext("Bearer tok")
	chain := m.Authenticate(m.Authorize(access.Rule{Level: access.Volunteer, Mutating: true})(okHandler))
	require.NoError(t, chain(c))

	caller, ok := GetCaller(c)
	require.True(t, ok)
	assert.Equal(t, access.Caller{Email: "vol@x.com", Role: entity.RoleVolunteer}, caller)
}

func TestAuthorize_StoreFailureIsNotAForbidden(t *testing.T) {
	m, tokens, users := newTestAuthMiddleware(t)
	tokens.EXPECT().Validate("tok").Return(&service.Claims{Email: "vol@x.com"}, nil)
	users.EXPECT().FindByEmail(mock.Anything, "vol@x.com").Return(nil, errors.New("connection refused"))

	chain := m.Authenticate(m.Authorize(access.Rule{Level: access.Admin})(okHandler))
	err := chain(newContext("Bearer tok"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrForbidden)
	assert.NotErrorIs(t, err, repository.ErrUserNotFound)
}

func TestGate_PublicRuleHasNoMiddleware(t *testing.T) {
	m, _, _ := newTestAuthMiddleware(t)

	assert.Empty(t, m.Gate(access.Rule{Level: access.Public}))
	assert.Len(t, m.Gate(access.Rule{Level: access.Self, SelfParam: "email"}), 2)
}

func TestPathParam_Decodes(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"plain", "a@x.com", "a@x.com"},
		{"encoded at", "a%40x.com", "a@x.com"},
		{"encoded plus", "a%2Bb%40x.com", "a+b@x.com"},
		{"malformed escape", "a%4", "a%4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newContext("")
			c.SetParamNames("email")
			c.SetParamValues(tt.raw)

			assert.Equal(t, tt.want, PathParam(c, "email"))
		})
	}
}
