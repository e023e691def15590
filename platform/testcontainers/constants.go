package testcontainers

// MongoDB constants
const (
	MongoNetworkAlias = "mongo"
	MongoPort         = "27017"

	MongoHostKey     = "MONGO_HOST"
	MongoPortKey     = "MONGO_PORT"
	MongoDatabaseKey = "MONGO_DATABASE"
	MongoUsernameKey = "MONGO_INITDB_ROOT_USERNAME"
	MongoPasswordKey = "MONGO_INITDB_ROOT_PASSWORD" //nolint:gosec
	MongoAuthDBKey   = "MONGO_AUTH_DB"
)

// Inventory service constants
const (
	AppPort = "8080"

	AppEnvKey            = "APP_ENV"
	HTTPHostKey          = "HTTP_HOST"
	HTTPPortKey          = "HTTP_PORT"
	DBReadTimeoutKey     = "DB_READ_TIMEOUT"
	DBWriteTimeoutKey    = "DB_WRITE_TIMEOUT"
	LoggerLevelKey       = "LOGGER_LEVEL"
	LoggerAsJSONKey      = "LOGGER_AS_JSON"
	StoreDriverKey       = "STORE_DRIVER"
	StoreSeedDefaultsKey = "STORE_SEED_DEFAULTS"
)
