package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"bloodlink/config"
	deliverycontext "bloodlink/internal/delivery/context"
	"bloodlink/internal/domain/constants"
	"bloodlink/internal/domain/entity"
	domainerrors "bloodlink/internal/domain/errors"
	"bloodlink/internal/domain/repository"
	"bloodlink/internal/domain/service"
	"bloodlink/internal/usecase"
	"bloodlink/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PaymentServiceParams holds dependencies for PaymentService, injected by Fx.
type PaymentServiceParams struct {
	fx.In

	PaymentRepo repository.PaymentRepository
	Gateway     service.PaymentGateway
	Publisher   service.EventPublisher `optional:"true"`
	Config      *config.Config
	Logger      *slog.Logger
}

type paymentService struct {
	paymentRepo repository.PaymentRepository
	gateway     service.PaymentGateway
	currency    string
	events      eventEmitter
	logger      *slog.Logger
}

// NewPaymentService is the constructor for paymentService.
func NewPaymentService(params PaymentServiceParams) usecase.PaymentUsecase {
	return &paymentService{
		paymentRepo: params.PaymentRepo,
		gateway:     params.Gateway,
		currency:    params.Config.Payment.Currency,
		events:      eventEmitter{publisher: params.Publisher, logger: params.Logger},
		logger:      params.Logger,
	}
}

func (srv *paymentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateCheckout opens a card payment intent for price, charged in minor units.
func (srv *paymentService) CreateCheckout(ctx context.Context, price float64) (*usecase.CheckoutOutput, error) {
	amount := util.ToMinorUnits(price)
	if price <= 0 || amount <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("price must be positive")
	}

	intent, err := srv.gateway.CreateIntent(ctx, amount, srv.currency)
	if err != nil {
		return nil, srv.gatewayError(ctx, err, "failed to create payment intent")
	}

	srv.log(ctx).Info("Created payment intent",
		slog.String("intent_id", intent.ID),
		slog.Int64("amount", intent.Amount),
	)

	return &usecase.CheckoutOutput{ClientSecret: intent.ClientSecret, Amount: intent.Amount}, nil
}

// RecordPayment confirms the intent with the processor before persisting it.
func (srv *paymentService) RecordPayment(ctx context.Context, input usecase.RecordPaymentInput) (*repository.InsertResult, error) {
	intent, err := srv.gateway.GetIntent(ctx, input.TransactionID)
	if err != nil {
		if errors.Is(err, service.ErrIntentNotFound) {
			return nil, domainerrors.ErrPaymentNotConfirmed.WithDetails("unknown transaction")
		}

		return nil, srv.gatewayError(ctx, err, "failed to confirm payment")
	}
	if !intent.Succeeded() {
		return nil, domainerrors.ErrPaymentNotConfirmed.WithDetails("payment status is " + intent.Status)
	}

	payment := &entity.Payment{
		Name:          input.Name,
		Email:         strings.ToLower(strings.TrimSpace(input.Email)),
		Amount:        util.FromMinorUnits(intent.Amount),
		Currency:      intent.Currency,
		TransactionID: intent.ID,
		Message:       input.Message,
		PaymentMethod: intent.PaymentMethod,
		CreatedAt:     time.Now().UTC(),
	}

	result, err := srv.paymentRepo.Create(ctx, payment)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateTransaction) {
			return nil, domainerrors.ErrPaymentAlreadyRecorded
		}

		return nil, errors.Wrap(err, "failed to record payment")
	}

	srv.log(ctx).Info("Recorded payment",
		slog.String("transaction_id", payment.TransactionID),
		slog.Float64("amount", payment.Amount),
	)
	srv.events.emit(ctx, constants.EventPaymentRecorded, payment.TransactionID, map[string]any{
		"amount":   payment.Amount,
		"currency": payment.Currency,
	})

	return result, nil
}

func (srv *paymentService) History(ctx context.Context) ([]*entity.Payment, error) {
	payments, err := srv.paymentRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list payments")
	}

	return payments, nil
}

// gatewayError hides processor details from clients and logs them instead.
func (srv *paymentService) gatewayError(ctx context.Context, err error, msg string) error {
	srv.log(ctx).Error(msg, slog.Any("error", err))

	if errors.Is(err, service.ErrGatewayUnavailable) {
		return domainerrors.ErrPaymentProviderUnavailable
	}

	return domainerrors.ErrPaymentProvider
}
