// Package constants holds shared domain constants.
package constants

const (
	// PubSubProviderLocal selects the local HTTP publisher for development.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle selects Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)

// DefaultListLimit bounds entity list reads when the caller does not specify a limit.
const DefaultListLimit = 50
