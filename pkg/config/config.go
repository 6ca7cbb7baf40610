package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Password      PasswordConfig
	AuthRateLimit AuthRateLimitConfig
	FeatureFlags  FeatureFlagsConfig
	Settings      SettingsConfig
	Store         StoreConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"FENZO_APP_ENV" required:"true"`
	Port         string `envconfig:"FENZO_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"FENZO_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"FENZO_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"FENZO_DB_DSN"`
	Driver string `envconfig:"FENZO_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"FENZO_DB_HOST"`
	LegacyPort     int    `envconfig:"FENZO_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"FENZO_DB_USER"`
	LegacyPassword string `envconfig:"FENZO_DB_PASSWORD"`
	LegacyName     string `envconfig:"FENZO_DB_NAME"`
	LegacySSLMode  string `envconfig:"FENZO_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"FENZO_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"FENZO_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"FENZO_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"FENZO_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"FENZO_REDIS_URL" required:"true"`
	Address      string        `envconfig:"FENZO_REDIS_ADDR"`
	Password     string        `envconfig:"FENZO_REDIS_PASSWORD"`
	DB           int           `envconfig:"FENZO_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"FENZO_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"FENZO_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"FENZO_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"FENZO_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"FENZO_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret                 string `envconfig:"FENZO_JWT_SECRET" required:"true"`
	Issuer                 string `envconfig:"FENZO_JWT_ISSUER" required:"true"`
	ExpirationMinutes      int    `envconfig:"FENZO_JWT_EXPIRATION_MINUTES" required:"true"`
	RefreshTokenTTLMinutes int    `envconfig:"FENZO_REFRESH_TOKEN_TTL_MINUTES" default:"43200"`
}

// RefreshTokenTTL returns the refresh token TTL configured in minutes.
func (j JWTConfig) RefreshTokenTTL() time.Duration {
	if j.RefreshTokenTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(j.RefreshTokenTTLMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"FENZO_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"FENZO_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"FENZO_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"FENZO_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"FENZO_ARGON_KEY_LEN" default:"32"`
}

type AuthRateLimitConfig struct {
	LoginWindow     time.Duration `envconfig:"FENZO_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit int           `envconfig:"FENZO_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit    int           `envconfig:"FENZO_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"FENZO_AUTO_MIGRATE" default:"false"`
}

// SettingsConfig controls the store settings snapshot refresher.
type SettingsConfig struct {
	RefreshInterval time.Duration `envconfig:"FENZO_SETTINGS_REFRESH_INTERVAL" default:"30s"`
}

// StoreConfig carries storefront fallbacks used when the settings document
// has no value yet.
type StoreConfig struct {
	Name              string `envconfig:"FENZO_STORE_NAME" default:"Fenzo"`
	CurrencySymbol    string `envconfig:"FENZO_STORE_CURRENCY_SYMBOL" default:"৳"`
	WhatsAppPrimary   string `envconfig:"FENZO_STORE_WHATSAPP_PRIMARY"`
	WhatsAppSecondary string `envconfig:"FENZO_STORE_WHATSAPP_SECONDARY"`
	FacebookPage      string `envconfig:"FENZO_STORE_FACEBOOK_PAGE"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
