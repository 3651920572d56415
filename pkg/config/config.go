package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	JWT          JWTConfig
	Password     PasswordConfig
	Catalog      CatalogConfig
	CORS         CORSConfig
	FeatureFlags FeatureFlagsConfig
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
	Env          string `envconfig:"WISHLANE_APP_ENV" required:"true"`
	Port         string `envconfig:"WISHLANE_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"WISHLANE_LOG_LEVEL" default:"info"`
	LogFormat    string `envconfig:"WISHLANE_LOG_FORMAT" default:"json"`
	LogWarnStack bool   `envconfig:"WISHLANE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"WISHLANE_DB_DSN"`
	Driver string `envconfig:"WISHLANE_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"WISHLANE_DB_HOST"`
	LegacyPort     int    `envconfig:"WISHLANE_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"WISHLANE_DB_USER"`
	LegacyPassword string `envconfig:"WISHLANE_DB_PASSWORD"`
	LegacyName     string `envconfig:"WISHLANE_DB_NAME"`
	LegacySSLMode  string `envconfig:"WISHLANE_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"WISHLANE_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"WISHLANE_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"WISHLANE_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"WISHLANE_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"WISHLANE_REDIS_URL" required:"true"`
	Address      string        `envconfig:"WISHLANE_REDIS_ADDR"`
	Password     string        `envconfig:"WISHLANE_REDIS_PASSWORD"`
	DB           int           `envconfig:"WISHLANE_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"WISHLANE_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"WISHLANE_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"WISHLANE_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"WISHLANE_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"WISHLANE_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"WISHLANE_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"WISHLANE_JWT_ISSUER" required:"true"`
	ExpirationMinutes int    `envconfig:"WISHLANE_JWT_EXPIRATION_MINUTES" default:"1440"`
}

// AccessTokenTTL returns the access token lifetime configured in minutes.
func (j JWTConfig) AccessTokenTTL() time.Duration {
	if j.ExpirationMinutes <= 0 {
		return 0
	}
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

type PasswordConfig struct {
	MinLength        int `envconfig:"WISHLANE_PASSWORD_MIN_LENGTH" default:"6"`
	ArgonMemoryKB    int `envconfig:"WISHLANE_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"WISHLANE_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"WISHLANE_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"WISHLANE_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"WISHLANE_ARGON_KEY_LEN" default:"32"`
}

type CatalogConfig struct {
	BaseURL  string        `envconfig:"WISHLANE_CATALOG_BASE_URL" default:"https://fakestoreapi.com"`
	Timeout  time.Duration `envconfig:"WISHLANE_CATALOG_TIMEOUT" default:"5s"`
	CacheTTL time.Duration `envconfig:"WISHLANE_CATALOG_CACHE_TTL" default:"60s"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"WISHLANE_CORS_ALLOWED_ORIGINS" default:"*"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"WISHLANE_AUTO_MIGRATE" default:"false"`
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
