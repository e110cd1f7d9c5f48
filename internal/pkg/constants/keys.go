package constants

// viper config keys
const (
	ViperKeyListenAddr  = "server.addr"
	ViperKeyCORSOrigins = "server.cors_origins"
	ViperKeyPostgresDSN = "postgres.dsn"
	ViperKeyUpstreamURL = "upstream.base_url"
	ViperKeyLogLevel    = "log.level"
)
