// Package constants holds provider names and token scopes shared across layers.
package constants

const (
	// PubSubProviderLocal pushes events to a local HTTP endpoint.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle publishes to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"

	// StoreDriverPostgres keeps accounts in PostgreSQL.
	StoreDriverPostgres = "postgres"
	// StoreDriverMemory keeps accounts in process memory.
	StoreDriverMemory = "memory"

	// LockProviderMemory serializes users inside one process.
	LockProviderMemory = "memory"
	// LockProviderRedis serializes users across replicas.
	LockProviderRedis = "redis"
)

const (
	// ScopeUsers lets a caller drive logins and content requests for users.
	ScopeUsers = "users"
	// ScopeCatalogWrite lets a caller index new items.
	ScopeCatalogWrite = "catalog:write"
)
