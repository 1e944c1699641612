package config

// Config holds runtime configuration for the server.
type Config struct {
	Port         string
	PollInterval Duration
	Provider     string
	AdminToken   string
	Log          LogConfig
	Feed         FeedConfig
	Store        StoreConfig
	Engine       EngineConfig
	Reports      ReportsConfig
	Metrics      MetricsConfig
}

// LogConfig selects log level and handler format.
type LogConfig struct {
	Level  string
	Format string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:         envOrDefault(envPort, defaultPort),
		PollInterval: durationEnvOrDefault(envPollInterval, defaultPollInterval),
		Provider:     envOrDefault(envProvider, defaultProvider),
		AdminToken:   envOrDefault(envAdminToken, ""),
		Log: LogConfig{
			Level:  envOrDefault(envLogLevel, defaultLogLevel),
			Format: envOrDefault(envLogFormat, defaultLogFormat),
		},
		Feed:    loadFeed(),
		Store:   loadStore(),
		Engine:  loadEngine(),
		Reports: loadReports(),
		Metrics: loadMetrics(),
	}
}
