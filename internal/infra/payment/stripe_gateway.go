// Package payment bridges the payment usecase to the card processor.
package payment

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"bloodlink/config"
	"bloodlink/internal/domain/service"
	"bloodlink/internal/errors"
	"bloodlink/internal/infra/breaker"
	"bloodlink/internal/infra/metrics"

	"github.com/sony/gobreaker"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"go.uber.org/fx"
)

const (
	breakerName = "payment-processor"

	operationCreateIntent = "create_intent"
	operationGetIntent    = "get_intent"
)

// Params defines the required parameters
type Params struct {
	fx.In

	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Metrics `optional:"true"`
}

// stripeGateway implements service.PaymentGateway on the Stripe API.
type stripeGateway struct {
	api     *client.API
	cb      *gobreaker.CircuitBreaker
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// NewStripeGateway builds the processor client. A missing secret key is a startup error.
func NewStripeGateway(params Params) (service.PaymentGateway, error) {
	cfg := params.Config.Payment
	if strings.TrimSpace(cfg.SecretKey) == "" {
		return nil, errors.New("payment secret key must be provided")
	}

	backendConfig := &stripe.BackendConfig{
		HTTPClient: &http.Client{Timeout: requestTimeout},
		// Calls are not retried; the breaker decides when to stop calling.
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     &leveledLogger{logger: params.Logger},
	}
	if cfg.BackendURL != "" {
		backendConfig.URL = stripe.String(cfg.BackendURL)
	}

	backends := &stripe.Backends{
		API:     stripe.GetBackendWithConfig(stripe.APIBackend, backendConfig),
		Connect: stripe.GetBackendWithConfig(stripe.ConnectBackend, backendConfig),
		Uploads: stripe.GetBackendWithConfig(stripe.UploadsBackend, backendConfig),
	}

	return &stripeGateway{
		api:     client.New(cfg.SecretKey, backends),
		cb:      breaker.New(breakerName, cfg.Breaker, params.Logger, params.Metrics, countsAsSuccess),
		metrics: params.Metrics,
		logger:  params.Logger,
	}, nil
}

// CreateIntent creates a card-only payment intent.
func (g *stripeGateway) CreateIntent(ctx context.Context, amount int64, currency string) (*service.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(strings.ToLower(currency)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	return g.call(operationCreateIntent, func() (*stripe.PaymentIntent, error) {
		return g.api.PaymentIntents.New(params)
	})
}

// GetIntent fetches an intent with its payment method expanded.
func (g *stripeGateway) GetIntent(ctx context.Context, id string) (*service.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx
	params.AddExpand("payment_method")

	return g.call(operationGetIntent, func() (*stripe.PaymentIntent, error) {
		return g.api.PaymentIntents.Get(id, params)
	})
}

func (g *stripeGateway) call(operation string, fn func() (*stripe.PaymentIntent, error)) (*service.PaymentIntent, error) {
	result, err := g.cb.Execute(func() (any, error) {
		return fn()
	})
	if err != nil {
		outcome, mapped := classify(err)
		g.metrics.ObservePayment(operation, outcome)

		return nil, mapped
	}

	g.metrics.ObservePayment(operation, metrics.OutcomeSucceeded)

	pi, _ := result.(*stripe.PaymentIntent)

	return toIntent(pi), nil
}

// classify maps a processor or breaker error to the gateway's errors and a metrics outcome.
func classify(err error) (string, error) {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return metrics.OutcomeUnavailable, errors.Join(service.ErrGatewayUnavailable, err)
	}

	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		if stripeErr.Code == stripe.ErrorCodeResourceMissing || stripeErr.HTTPStatusCode == http.StatusNotFound {
			return metrics.OutcomeRejected, errors.Join(service.ErrIntentNotFound, err)
		}
		if stripeErr.HTTPStatusCode > 0 && stripeErr.HTTPStatusCode < http.StatusInternalServerError {
			return metrics.OutcomeRejected, errors.Wrap(err, "payment processor rejected the request")
		}
	}

	return metrics.OutcomeFailed, errors.Wrap(err, "payment processor call failed")
}

// countsAsSuccess keeps request errors the processor answered with a 4xx from tripping the breaker.
func countsAsSuccess(err error) bool {
	if err == nil {
		return true
	}

	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		return stripeErr.HTTPStatusCode > 0 && stripeErr.HTTPStatusCode < http.StatusInternalServerError
	}

	return false
}

func toIntent(pi *stripe.PaymentIntent) *service.PaymentIntent {
	if pi == nil {
		return nil
	}

	intent := &service.PaymentIntent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Amount:       pi.Amount,
		Currency:     string(pi.Currency),
		Status:       string(pi.Status),
	}

	switch {
	case pi.PaymentMethod != nil && pi.PaymentMethod.Type != "":
		intent.PaymentMethod = string(pi.PaymentMethod.Type)
	case len(pi.PaymentMethodTypes) > 0:
		intent.PaymentMethod = pi.PaymentMethodTypes[0]
	}

	return intent
}
