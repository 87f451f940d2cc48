package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"bloodlink/config"
	apimiddleware "bloodlink/internal/delivery/api/middleware"
	"bloodlink/internal/delivery/api/router"
	"bloodlink/internal/delivery/api/router/handler"
	"bloodlink/internal/domain/access"
	"bloodlink/internal/domain/entity"
	domainerrors "bloodlink/internal/domain/errors"
	"bloodlink/internal/domain/repository"
	"bloodlink/internal/domain/service"
	"bloodlink/internal/infra/auth"
	mockRepo "bloodlink/internal/mocks/repository"
	mockUsecase "bloodlink/internal/mocks/usecase"
	"bloodlink/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-signing-secret"

type apiFixtures struct {
	e         *echo.Echo
	tokens    service.TokenService
	userRepo  *mockRepo.MockUserRepository
	authUC    *mockUsecase.MockAuthUsecase
	userUC    *mockUsecase.MockUserUsecase
	requestUC *mockUsecase.MockDonationRequestUsecase
	blogUC    *mockUsecase.MockBlogUsecase
	paymentUC *mockUsecase.MockPaymentUsecase
	statsUC   *mockUsecase.MockStatsUsecase
}

func newTestAPI(t *testing.T) apiFixtures {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = testSecret
	cfg.Auth.TokenTTL = time.Hour
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	fx := apiFixtures{
		tokens:    tokens,
		userRepo:  mockRepo.NewMockUserRepository(t),
		authUC:    mockUsecase.NewMockAuthUsecase(t),
		userUC:    mockUsecase.NewMockUserUsecase(t),
		requestUC: mockUsecase.NewMockDonationRequestUsecase(t),
		blogUC:    mockUsecase.NewMockBlogUsecase(t),
		paymentUC: mockUsecase.NewMockPaymentUsecase(t),
		statsUC:   mockUsecase.NewMockStatsUsecase(t),
	}

	fx.e, err = newEcho(cfg, logger, nil, router.RouterParams{
		AuthHandler:            handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: fx.authUC, Logger: logger}),
		UserHandler:            handler.NewUserHandler(handler.UserHandlerParams{UserUC: fx.userUC, Logger: logger}),
		DonationRequestHandler: handler.NewDonationRequestHandler(handler.DonationRequestHandlerParams{RequestUC: fx.requestUC, Logger: logger}),
		BlogHandler:            handler.NewBlogHandler(handler.BlogHandlerParams{BlogUC: fx.blogUC, Logger: logger}),
		PaymentHandler:         handler.NewPaymentHandler(handler.PaymentHandlerParams{PaymentUC: fx.paymentUC, Logger: logger}),
		StatsHandler:           handler.NewStatsHandler(fx.statsUC),
		AuthMiddleware: apimiddleware.NewAuthMiddleware(apimiddleware.AuthMiddlewareParams{
			TokenService: tokens,
			UserRepo:     fx.userRepo,
			Logger:       logger,
		}),
	})
	require.NoError(t, err)

	return fx
}

func (fx apiFixtures) token(t *testing.T, email string) string {
	t.Helper()

	issued, err := fx.tokens.Issue(map[string]any{"email": email})
	require.NoError(t, err)

	return issued.Token
}

func (fx apiFixtures) storedUser(email string, role entity.Role, status entity.UserStatus) {
	fx.userRepo.EXPECT().
		FindByEmail(mock.Anything, email).
		Return(&entity.User{ID: "u-" + email, Email: email, Role: role, Status: status}, nil)
}

func (fx apiFixtures) do(method, path, token, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	fx.e.ServeHTTP(rec, req)

	return rec
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
		Meta struct {
			RequestID string `json:"request_id"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Meta.RequestID)

	return body.Error.Code
}

func TestAPI_Health(t *testing.T) {
	fx := newTestAPI(t)

	rec := fx.do(http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestAPI_UnknownRoute(t *testing.T) {
	fx := newTestAPI(t)

	rec := fx.do(http.MethodGet, "/nope", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", errorCode(t, rec))
}

func TestAPI_RegisterUser_ReportsExistingUser(t *testing.T) {
	fx := newTestAPI(t)
	input := usecase.RegisterUserInput{Email: "a@x.com", Name: "A"}

	fx.userUC.EXPECT().Register(mock.Anything, input).
		Return(&usecase.RegisterUserOutput{Created: true, Result: &repository.InsertResult{Acknowledged: true, InsertedID: "u1"}}, nil).Once()
	fx.userUC.EXPECT().Register(mock.Anything, input).
		Return(&usecase.RegisterUserOutput{Created: false}, nil).Once()

	rec := fx.do(http.MethodPost, "/users", "", `{"email":"a@x.com","name":"A"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"acknowledged":true,"insertedId":"u1"}`, rec.Body.String())

	rec = fx.do(http.MethodPost, "/users", "", `{"email":"a@x.com","name":"A"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"user already exists","insertedId":null}`, rec.Body.String())
}

func TestAPI_RegisterUser_Validation(t *testing.T) {
	fx := newTestAPI(t)

	rec := fx.do(http.MethodPost, "/users", "", `{"email":"not-an-email"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", errorCode(t, rec))

	rec = fx.do(http.MethodPost, "/users", "", `{"email":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_INPUT", errorCode(t, rec))
}

func TestAPI_RejectsExpiredAndTamperedTokens(t *testing.T) {
	fx := newTestAPI(t)

	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "a@x.com",
		"iat":   time.Now().Add(-2 * time.Hour).Unix(),
		"exp":   time.Now().Add(-time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	foreign, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "a@x.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("another-secret"))
	require.NoError(t, err)

	valid := fx.token(t, "a@x.com")
	tampered := valid[:len(valid)-2] + "xx"

	routes := []struct{ method, path, body string }{
		{http.MethodGet, "/users", ""},
		{http.MethodGet, "/users/admin/a@x.com", ""},
		{http.MethodPatch, "/users/admin/u1", ""},
		{http.MethodGet, "/api/donation-requests/all", ""},
		{http.MethodPatch, "/api/donation-requests/r1", `{"status":"done"}`},
		{http.MethodGet, "/payments-history", ""},
	}

	for _, token := range []string{"", expired, foreign, tampered} {
		for _, route := range routes {
			rec := fx.do(route.method, route.path, token, route.body)
			assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", route.method, route.path)
			assert.Equal(t, "UNAUTHENTICATED", errorCode(t, rec))
		}
	}
}

func TestAPI_ListUsers_RequiresVolunteer(t *testing.T) {
	fx := newTestAPI(t)
	fx.storedUser("donor@x.com", entity.RoleDonor, entity.UserStatusActive)
	fx.storedUser("vol@x.com", entity.RoleVolunteer, entity.UserStatusActive)
	fx.userRepo.EXPECT().FindByEmail(mock.Anything, "ghost@x.com").Return(nil, repository.ErrUserNotFound)
	fx.userUC.EXPECT().ListUsers(mock.Anything).Return([]*entity.User{{Email: "donor@x.com"}}, nil)

	rec := fx.do(http.MethodGet, "/users", fx.token(t, "donor@x.com"), "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "FORBIDDEN", errorCode(t, rec))

	rec = fx.do(http.MethodGet, "/users", fx.token(t, "ghost@x.com"), "")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = fx.do(http.MethodGet, "/users", fx.token(t, "vol@x.com"), "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAPI_MakeAdmin_RequiresAdmin(t *testing.T) {
	fx := newTestAPI(t)
	fx.storedUser("vol@x.com", entity.RoleVolunteer, entity.UserStatusActive)
	fx.storedUser("root@x.com", entity.RoleAdmin, entity.UserStatusActive)
	fx.userUC.EXPECT().SetRole(mock.Anything, "u1", entity.RoleAdmin).
		Return(&repository.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil)

	rec := fx.do(http.MethodPatch, "/users/admin/u1", fx.token(t, "vol@x.com"), "")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = fx.do(http.MethodPatch, "/users/admin/u1", fx.token(t, "root@x.com"), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"acknowledged":true,"matchedCount":1,"modifiedCount":1}`, rec.Body.String())
}

func TestAPI_RegisterTokenCheckAdmin(t *testing.T) {
	fx := newTestAPI(t)

	fx.userUC.EXPECT().Register(mock.Anything, usecase.RegisterUserInput{Email: "a@x.com"}).
		Return(&usecase.RegisterUserOutput{Created: true, Result: &repository.InsertResult{Acknowledged: true, InsertedID: "u1"}}, nil)
	fx.authUC.EXPECT().IssueToken(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, input usecase.IssueTokenInput) (*usecase.IssueTokenOutput, error) {
			issued, err := fx.tokens.Issue(input.Payload)
			if err != nil {
				return nil, err
			}

			return &usecase.IssueTokenOutput{Token: issued.Token, ExpiresAt: issued.ExpiresAt}, nil
		})
	fx.userUC.EXPECT().HasRole(mock.Anything, "a@x.com", entity.RoleAdmin).Return(false, nil)

	rec := fx.do(http.MethodPost, "/users", "", `{"email":"a@x.com"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = fx.do(http.MethodPost, "/jwt", "", `{"email":"a@x.com"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var issued handler.TokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &issued))
	require.NotEmpty(t, issued.Token)

	rec = fx.do(http.MethodGet, "/users/admin/a@x.com", issued.Token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"admin":false}`, rec.Body.String())

	rec = fx.do(http.MethodGet, "/users/admin/b@x.com", issued.Token, "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAPI_EncodedEmailParameter(t *testing.T) {
	fx := newTestAPI(t)
	fx.userUC.EXPECT().HasRole(mock.Anything, "a@x.com", entity.RoleAdmin).Return(false, nil)
	fx.requestUC.EXPECT().ListByDonor(mock.Anything, "d@x.com").Return([]*entity.DonationRequest{}, nil)

	rec := fx.do(http.MethodGet, "/users/admin/a%40x.com", fx.token(t, "a@x.com"), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"admin":false}`, rec.Body.String())

	rec = fx.do(http.MethodGet, "/users/admin/b%40x.com", fx.token(t, "a@x.com"), "")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = fx.do(http.MethodGet, "/donation/d%40x.com", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestAPI_IssueToken_StripsIdentityProof(t *testing.T) {
	fx := newTestAPI(t)

	fx.authUC.EXPECT().IssueToken(mock.Anything, usecase.IssueTokenInput{
		Payload: map[string]any{"email": "a@x.com", "name": "A"},
		IDToken: "proof",
	}).Return(&usecase.IssueTokenOutput{Token: "signed"}, nil)
	fx.authUC.EXPECT().IssueToken(mock.Anything, usecase.IssueTokenInput{Payload: map[string]any{}}).
		Return(nil, domainerrors.ErrValidationFailed.WithDetails("payload must carry an email"))

	rec := fx.do(http.MethodPost, "/jwt", "", `{"email":"a@x.com","name":"A","idToken":"proof"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"token":"signed"}`, rec.Body.String())

	rec = fx.do(http.MethodPost, "/jwt", "", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "payload must carry an email")
}

func TestAPI_UpdateDonationStatus(t *testing.T) {
	fx := newTestAPI(t)
	fx.storedUser("vol@x.com", entity.RoleVolunteer, entity.UserStatusActive)
	fx.requestUC.EXPECT().
		SetStatus(mock.Anything, access.Caller{Email: "vol@x.com", Role: entity.RoleVolunteer}, "r1", "done").
		Return(&repository.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil)

	rec := fx.do(http.MethodPatch, "/api/donation-requests/r1", fx.token(t, "vol@x.com"), `{"status":"done","recipientName":"ignored"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"acknowledged":true,"matchedCount":1,"modifiedCount":1}`, rec.Body.String())

	rec = fx.do(http.MethodPatch, "/api/donation-requests/r1", fx.token(t, "vol@x.com"), `{"status":"lost"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAPI_Donate(t *testing.T) {
	fx := newTestAPI(t)
	fx.storedUser("d@x.com", entity.RoleDonor, entity.UserStatusActive)
	fx.requestUC.EXPECT().
		Donate(mock.Anything, access.Caller{Email: "d@x.com", Role: entity.RoleDonor}, "r1", usecase.DonateInput{
			DonorID:    "d1",
			DonorEmail: "d@x.com",
			Status:     "in progress",
		}).
		Return(&repository.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil)

	rec := fx.do(http.MethodPatch, "/api/donation-requests/r1/donate", fx.token(t, "d@x.com"),
		`{"donorId":"d1","donorEmail":"d@x.com","status":"in progress"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAPI_BlockedIdentityCannotMutate(t *testing.T) {
	fx := newTestAPI(t)
	fx.storedUser("vol@x.com", entity.RoleVolunteer, entity.UserStatusBlocked)
	fx.requestUC.EXPECT().List(mock.Anything, "").Return([]*entity.DonationRequest{}, nil)

	rec := fx.do(http.MethodPost, "/api/donation-requests", fx.token(t, "vol@x.com"),
		`{"recipientName":"P","hospitalName":"H","bloodGroup":"A+"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "ACCOUNT_BLOCKED", errorCode(t, rec))

	// Reads stay available.
	rec = fx.do(http.MethodGet, "/api/donation-requests/all", fx.token(t, "vol@x.com"), "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestAPI_GetDonationRequest_NotFound(t *testing.T) {
	fx := newTestAPI(t)
	fx.requestUC.EXPECT().Get(mock.Anything, "r404").Return(nil, domainerrors.ErrDonationRequestNotFound)

	rec := fx.do(http.MethodGet, "/api/donation-requests/r404", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAPI_ShareCode(t *testing.T) {
	fx := newTestAPI(t)
	fx.requestUC.EXPECT().ShareCode(mock.Anything, "r1").Return([]byte("\x89PNG"), nil)

	rec := fx.do(http.MethodGet, "/api/donation-requests/r1/qr", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
}

func TestAPI_CreateCheckout(t *testing.T) {
	fx := newTestAPI(t)
	fx.paymentUC.EXPECT().CreateCheckout(mock.Anything, 10.0).
		Return(&usecase.CheckoutOutput{ClientSecret: "pi_1_secret_x", Amount: 1000}, nil)

	rec := fx.do(http.MethodPost, "/create-checkout-session", "", `{"price":10}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"clientSecret":"pi_1_secret_x"}`, rec.Body.String())

	rec = fx.do(http.MethodPost, "/create-checkout-session", "", `{"price":0}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", errorCode(t, rec))
}

func TestAPI_RecordPayment_ProviderFailureHidesDetails(t *testing.T) {
	fx := newTestAPI(t)
	fx.paymentUC.EXPECT().RecordPayment(mock.Anything, usecase.RecordPaymentInput{TransactionID: "pi_1"}).
		Return(nil, domainerrors.ErrPaymentProvider.WithDetails("stripe: api_key_expired"))

	rec := fx.do(http.MethodPost, "/payment", "", `{"transactionId":"pi_1"}`)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.NotContains(t, rec.Body.String(), "api_key_expired")
}

func TestAPI_AdminStats(t *testing.T) {
	fx := newTestAPI(t)
	fx.storedUser("root@x.com", entity.RoleAdmin, entity.UserStatusActive)
	fx.statsUC.EXPECT().Stats(mock.Anything).Return(&usecase.Stats{TotalUsers: 3, TotalRequests: 2, TotalFunding: 10.5}, nil)

	rec := fx.do(http.MethodGet, "/admin-stats", fx.token(t, "root@x.com"), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"totalUsers":3,"totalRequests":2,"totalFunding":10.5}`, rec.Body.String())
}
