// Package constants holds values shared across layers.
package constants

const (
	// EnvDevelop is the environment name of local development.
	EnvDevelop = "develop"
	// EnvProduction is the environment name of production.
	EnvProduction = "production"
)

const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Pub/Sub message attribute keys of tracking events.
const (
	AttributeOrderID   = "order_id"
	AttributeEventType = "event_type"
	AttributeRequestID = "request_id"
)
