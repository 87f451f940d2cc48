// Package access holds the authorization model of the API: a declarative table
// mapping every route to the requirement a caller must meet, and the single
// function that evaluates a requirement. Nothing here depends on HTTP.
package access

import (
	"net/http"
	"strings"

	"bloodlink/internal/domain/entity"
	domainerrors "bloodlink/internal/domain/errors"
)

// Level is the coarse requirement a route places on its caller.
type Level uint8

const (
	// Public routes need no credential.
	Public Level = iota
	// Authenticated routes need a valid bearer token and nothing else.
	Authenticated
	// Self routes need the token email to equal a path parameter.
	Self
	// Volunteer routes need a stored role of volunteer or admin.
	Volunteer
	// Admin routes need a stored role of exactly admin.
	Admin
)

var levelNames = map[Level]string{
	Public:        "public",
	Authenticated: "authenticated",
	Self:          "self",
	Volunteer:     "volunteer",
	Admin:         "admin",
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}

	return "unknown"
}

// Rule is the requirement attached to one route.
type Rule struct {
	Level Level
	// SelfParam names the path parameter compared with the token email on Self routes.
	SelfParam string
	// Mutating routes are denied to blocked identities.
	Mutating bool
}

// NeedsToken reports whether the route requires a verified bearer token.
func (r Rule) NeedsToken() bool {
	return r.Level != Public
}

// NeedsIdentity reports whether the stored identity must be loaded before Evaluate.
func (r Rule) NeedsIdentity() bool {
	return r.Level == Volunteer || r.Level == Admin || r.Mutating
}

// Route identifies an endpoint by method and router path pattern.
type Route struct {
	Method string
	Path   string
}

func (r Route) String() string {
	return r.Method + " " + r.Path
}

// Entry binds a Route to its Rule.
type Entry struct {
	Route
	Rule Rule
}

// Input is what the gate knows about a caller when evaluating a Rule.
type Input struct {
	// Email is the verified token email; empty when no token was verified.
	Email string
	// Param returns a path parameter by name.
	Param func(name string) string
	// User is the stored identity for Email, nil when not loaded or not found.
	User *entity.User
}

// Evaluate decides whether a caller satisfies rule. It returns nil to allow,
// or one of ErrUnauthenticated, ErrForbidden, ErrAccountBlocked.
func Evaluate(rule Rule, in Input) error {
	if rule.Level == Public {
		return nil
	}

	if in.Email == "" {
		return domainerrors.ErrUnauthenticated
	}

	if rule.Mutating && in.User != nil && in.User.IsBlocked() {
		return domainerrors.ErrAccountBlocked
	}

	switch rule.Level {
	case Authenticated:
		return nil

	case Self:
		if in.Param == nil || rule.SelfParam == "" {
			return domainerrors.ErrForbidden.WithDetails("route has no owner parameter")
		}
		if !strings.EqualFold(in.Param(rule.SelfParam), in.Email) {
			return domainerrors.ErrForbidden.WithDetails("resource belongs to another identity")
		}

		return nil

	case Volunteer:
		if in.User == nil || !in.User.EffectiveRole().AtLeastVolunteer() {
			return domainerrors.ErrForbidden.WithDetails("volunteer or admin role required")
		}

		return nil

	case Admin:
		if in.User == nil || in.User.EffectiveRole() != entity.RoleAdmin {
			return domainerrors.ErrForbidden.WithDetails("admin role required")
		}

		return nil

	default:
		return domainerrors.ErrForbidden
	}
}

// Table is the route-to-rule mapping consulted by the HTTP gate.
type Table struct {
	rules map[Route]Rule
}

// NewTable builds a Table from entries. A later entry for the same route replaces an earlier one.
func NewTable(entries []Entry) *Table {
	rules := make(map[Route]Rule, len(entries))
	for _, e := range entries {
		rules[e.Route] = e.Rule
	}

	return &Table{rules: rules}
}

// Lookup returns the rule for method and path.
func (t *Table) Lookup(method, path string) (Rule, bool) {
	rule, ok := t.rules[Route{Method: method, Path: path}]

	return rule, ok
}

// Routes returns every route in the table.
func (t *Table) Routes() []Route {
	routes := make([]Route, 0, len(t.rules))
	for r := range t.rules {
		routes = append(routes, r)
	}

	return routes
}

// DefaultEntries is the authorization matrix of the API.
func DefaultEntries() []Entry {
	return []Entry{
		// Tokens and identities
		{Route{http.MethodPost, "/jwt"}, Rule{Level: Public}},
		{Route{http.MethodPost, "/users"}, Rule{Level: Public}},
		{Route{http.MethodGet, "/users"}, Rule{Level: Volunteer}},
		{Route{http.MethodGet, "/users/admin/:email"}, Rule{Level: Self, SelfParam: "email"}},
		{Route{http.MethodGet, "/users/volunteer/:email"}, Rule{Level: Self, SelfParam: "email"}},
		{Route{http.MethodGet, "/users/profile/:email"}, Rule{Level: Self, SelfParam: "email"}},
		{Route{http.MethodPatch, "/users/profile/:email"}, Rule{Level: Self, SelfParam: "email", Mutating: true}},
		{Route{http.MethodPatch, "/users/admin/:id"}, Rule{Level: Admin, Mutating: true}},
		{Route{http.MethodPatch, "/users/volunteer/:id"}, Rule{Level: Admin, Mutating: true}},
		{Route{http.MethodPatch, "/users/status/:email"}, Rule{Level: Admin, Mutating: true}},

		// Donation requests
		{Route{http.MethodPost, "/api/donation-requests"}, Rule{Level: Volunteer, Mutating: true}},
		{Route{http.MethodGet, "/api/donation-requests/all"}, Rule{Level: Authenticated}},
		{Route{http.MethodGet, "/api/donation-requests/pending"}, Rule{Level: Public}},
		{Route{http.MethodGet, "/api/my-donation-requests/:email"}, Rule{Level: Self, SelfParam: "email"}},
		{Route{http.MethodDelete, "/api/my-donation-requests/:id"}, Rule{Level: Authenticated, Mutating: true}},
		{Route{http.MethodGet, "/api/donation-requests/:id"}, Rule{Level: Public}},
		{Route{http.MethodGet, "/api/donation-requests/:id/qr"}, Rule{Level: Public}},
		{Route{http.MethodPatch, "/api/donation-requests/:id"}, Rule{Level: Authenticated, Mutating: true}},
		{Route{http.MethodPatch, "/api/donation-requests/:id/donate"}, Rule{Level: Authenticated, Mutating: true}},
		{Route{http.MethodPost, "/api/donation-requests/:id/donate"}, Rule{Level: Authenticated, Mutating: true}},
		{Route{http.MethodGet, "/donation/:email"}, Rule{Level: Public}},

		// Blog
		{Route{http.MethodPost, "/add-blog"}, Rule{Level: Volunteer, Mutating: true}},
		{Route{http.MethodGet, "/all-blogs"}, Rule{Level: Public}},
		{Route{http.MethodGet, "/all-blogs/:id"}, Rule{Level: Public}},
		{Route{http.MethodPatch, "/all-blogs/:id/status"}, Rule{Level: Admin, Mutating: true}},
		{Route{http.MethodDelete, "/all-blogs/:id"}, Rule{Level: Volunteer, Mutating: true}},

		// Payments
		{Route{http.MethodPost, "/create-checkout-session"}, Rule{Level: Public}},
		{Route{http.MethodPost, "/payment"}, Rule{Level: Public}},
		{Route{http.MethodGet, "/payments-history"}, Rule{Level: Authenticated}},

		// Dashboard
		{Route{http.MethodGet, "/admin-stats"}, Rule{Level: Volunteer}},
	}
}

// DefaultTable returns a Table built from DefaultEntries.
func DefaultTable() *Table {
	return NewTable(DefaultEntries())
}
