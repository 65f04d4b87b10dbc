// Package constants contains configuration values shared across layers.
package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Storage drivers
const (
	StorageDriverPostgres = "postgres"
	StorageDriverSQLite   = "sqlite"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderKafka  = "kafka"
)

// Dispatch modes
const (
	DispatchModeInProcess = "inprocess"
	DispatchModeQueue     = "queue"
)

// Notification transport providers
const (
	TransportProviderLog      = "log"
	TransportProviderSMTP     = "smtp"
	TransportProviderFirebase = "firebase"
)

// Image storage providers
const (
	ImageStorageS3   = "s3"
	ImageStorageBlob = "blob"
)

// Delivery guard providers
const (
	GuardProviderMemory = "memory"
	GuardProviderRedis  = "redis"
)
