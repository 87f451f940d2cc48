// Package constants contains identifiers shared between configuration and infrastructure.
package constants

// Event publisher providers.
const (
	PubSubProviderLocal    = "local"
	PubSubProviderGoogle   = "google"
	PubSubProviderRabbitMQ = "rabbitmq"
)

// Persistence drivers.
const (
	DatabaseDriverMongo    = "mongo"
	DatabaseDriverPostgres = "postgres"
)

// Domain event types.
const (
	EventUserRegistered              = "user.registered"
	EventDonationRequestCreated      = "donation_request.created"
	EventDonationRequestStatusChange = "donation_request.status_changed"
	EventDonationRequestDonorAssign  = "donation_request.donor_assigned"
	EventPaymentRecorded             = "payment.recorded"
)
