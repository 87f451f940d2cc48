// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"net/http"
	"slices"
	"strings"

	"bloodlink/internal/delivery/api/middleware"
	"bloodlink/internal/delivery/api/router/handler"
	"bloodlink/internal/domain/access"
	"bloodlink/internal/errors"
	"bloodlink/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler            *handler.AuthHandler
	UserHandler            *handler.UserHandler
	DonationRequestHandler *handler.DonationRequestHandler
	BlogHandler            *handler.BlogHandler
	PaymentHandler         *handler.PaymentHandler
	StatsHandler           *handler.StatsHandler
	AuthMiddleware         *middleware.AuthMiddleware
	Policy                 *access.Table    `optional:"true"`
	Metrics                *metrics.Metrics `optional:"true"`
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
	policy *access.Table
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	policy := params.Policy
	if policy == nil {
		policy = access.DefaultTable()
	}

	return &router{params: params, policy: policy}
}

// binder registers routes and remembers which policy entries were bound.
type binder struct {
	e       *echo.Echo
	policy  *access.Table
	gate    *middleware.AuthMiddleware
	bound   map[access.Route]struct{}
	missing []access.Route
}

func (b *binder) add(method, path string, h echo.HandlerFunc) {
	route := access.Route{Method: method, Path: path}
	rule, ok := b.policy.Lookup(method, path)
	if !ok {
		b.missing = append(b.missing, route)

		return
	}

	b.e.Add(method, path, h, b.gate.Gate(rule)...)
	b.bound[route] = struct{}{}
}

// RegisterRoutes sets up all the API routes for the application. Every route
// must have a policy entry and every policy entry must have a route.
func (r *router) RegisterRoutes(e *echo.Echo) error {
	// Operational endpoints
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(r.params.Metrics.Handler()))

	b := &binder{
		e:      e,
		policy: r.policy,
		gate:   r.params.AuthMiddleware,
		bound:  make(map[access.Route]struct{}),
	}

	users := r.params.UserHandler
	requests := r.params.DonationRequestHandler
	blogs := r.params.BlogHandler
	payments := r.params.PaymentHandler

	// Tokens and identities
	b.add(http.MethodPost, "/jwt", r.params.AuthHandler.IssueToken)
	b.add(http.MethodPost, "/users", users.Register)
	b.add(http.MethodGet, "/users", users.ListUsers)
	b.add(http.MethodGet, "/users/admin/:email", users.CheckAdmin)
	b.add(http.MethodGet, "/users/volunteer/:email", users.CheckVolunteer)
	b.add(http.MethodGet, "/users/profile/:email", users.GetProfile)
	b.add(http.MethodPatch, "/users/profile/:email", users.UpdateProfile)
	b.add(http.MethodPatch, "/users/admin/:id", users.MakeAdmin)
	b.add(http.MethodPatch, "/users/volunteer/:id", users.MakeVolunteer)
	b.add(http.MethodPatch, "/users/status/:email", users.SetStatus)

	// Donation requests
	b.add(http.MethodPost, "/api/donation-requests", requests.Create)
	b.add(http.MethodGet, "/api/donation-requests/all", requests.ListAll)
	b.add(http.MethodGet, "/api/donation-requests/pending", requests.ListPending)
	b.add(http.MethodGet, "/api/my-donation-requests/:email", requests.ListMine)
	b.add(http.MethodDelete, "/api/my-donation-requests/:id", requests.Delete)
	b.add(http.MethodGet, "/api/donation-requests/:id", requests.Get)
	b.add(http.MethodGet, "/api/donation-requests/:id/qr", requests.ShareCode)
	b.add(http.MethodPatch, "/api/donation-requests/:id", requests.UpdateStatus)
	b.add(http.MethodPatch, "/api/donation-requests/:id/donate", requests.Donate)
	b.add(http.MethodPost, "/api/donation-requests/:id/donate", requests.Donate)
	b.add(http.MethodGet, "/donation/:email", requests.ListByDonor)

	// Blog
	b.add(http.MethodPost, "/add-blog", blogs.Create)
	b.add(http.MethodGet, "/all-blogs", blogs.List)
	b.add(http.MethodGet, "/all-blogs/:id", blogs.Get)
	b.add(http.MethodPatch, "/all-blogs/:id/status", blogs.SetStatus)
	b.add(http.MethodDelete, "/all-blogs/:id", blogs.Delete)

	// Payments
	b.add(http.MethodPost, "/create-checkout-session", payments.CreateCheckout)
	b.add(http.MethodPost, "/payment", payments.RecordPayment)
	b.add(http.MethodGet, "/payments-history", payments.History)

	// Dashboard
	b.add(http.MethodGet, "/admin-stats", r.params.StatsHandler.Stats)

	if len(b.missing) > 0 {
		return errors.Errorf("routes without an access rule: %v", b.missing)
	}

	var unbound []access.Route
	for _, route := range r.policy.Routes() {
		if _, ok := b.bound[route]; !ok {
			unbound = append(unbound, route)
		}
	}
	if len(unbound) > 0 {
		slices.SortFunc(unbound, func(a, b access.Route) int {
			return strings.Compare(a.String(), b.String())
		})

		return errors.Errorf("access rules without a route: %v", unbound)
	}

	return nil
}
