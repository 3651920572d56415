package config

// EnvPrefix is empty because every field carries its fully qualified
// WISHLANE_* name in its envconfig tag.
const EnvPrefix = ""

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvDBDSN  = "WISHLANE_DB_DSN"
	EnvDBHost = "WISHLANE_DB_HOST"
	EnvDBUser = "WISHLANE_DB_USER"
	EnvDBName = "WISHLANE_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
