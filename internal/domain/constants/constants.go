// Package constants holds shared cross-layer constant values.
package constants

const (
	// EnvDevelop is the local development environment name.
	EnvDevelop = "develop"
	// EnvProduction is the production environment name.
	EnvProduction = "production"
)

const (
	// PubSubProviderLocal selects the local HTTP push emulation publisher.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle selects the Google Cloud Pub/Sub publisher.
	PubSubProviderGoogle = "google"
)
