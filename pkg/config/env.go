package config

// EnvPrefix is passed to envconfig; individual fields carry explicit names so
// the prefix only matters for variables without a tag.
const EnvPrefix = "FENZO"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "production"
)

// Environment variable names referenced outside struct tags (error messages,
// tests, tooling).
const (
	EnvAppEnv                 = "FENZO_APP_ENV"
	EnvPort                   = "FENZO_APP_PORT"
	EnvDBDSN                  = "FENZO_DB_DSN"
	EnvDBHost                 = "FENZO_DB_HOST"
	EnvDBUser                 = "FENZO_DB_USER"
	EnvDBName                 = "FENZO_DB_NAME"
	EnvRedisURL               = "FENZO_REDIS_URL"
	EnvJWTSecret              = "FENZO_JWT_SECRET"
	EnvJWTIssuer              = "FENZO_JWT_ISSUER"
	EnvJWTExpMins             = "FENZO_JWT_EXPIRATION_MINUTES"
	EnvRefreshTokenTTLMinutes = "FENZO_REFRESH_TOKEN_TTL_MINUTES"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
