package config

import "time"

const (
	envPort            = "PORT"
	envPollInterval    = "POLL_INTERVAL"
	envProvider        = "PROVIDER"
	envMetricsPort     = "METRICS_PORT"
	envMetricsOn       = "METRICS_ENABLED"
	envOtelEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService     = "OTEL_SERVICE_NAME"
	envOtelInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"
	envAdminToken      = "ADMIN_TOKEN"
	envLogLevel        = "LOG_LEVEL"
	envLogFormat       = "LOG_FORMAT"
	envFeedBaseURL     = "FEED_BASE_URL"
	envFeedAPIKey      = "FEED_API_KEY"
	envFeedTimeout     = "FEED_TIMEOUT"
	envFeedRate        = "FEED_REQUESTS_PER_MINUTE"
	envFeedTrip        = "FEED_BREAKER_FAILURES"
	envFeedCooldown    = "FEED_BREAKER_COOLDOWN"
	envStoreBackend    = "STORE_BACKEND"
	envRedisURL        = "REDIS_URL"
	envRedisPrefix     = "REDIS_KEY_PREFIX"
	envRedisStream     = "REDIS_DECISION_STREAM"
	envAutoLock        = "AUTO_LOCK_DURATION"
	envHotnessDelta    = "HOTNESS_DELTA"
	envHotnessOverride = "HOTNESS_OVERRIDE"
	envReportsOn       = "REPORTS_ENABLED"
	envReportsDir      = "REPORTS_DIR"
	envReportsDays     = "REPORTS_RETENTION_DAYS"
	envReportsHour     = "REPORTS_PRUNE_HOUR"

	defaultPort = "4000"
	// A cycle is cheap; the feed limiter keeps upstream traffic bounded.
	defaultPollInterval = 30 * Duration(time.Second)
	defaultProvider     = "fixture"
	defaultMetricsPort  = "9090"
	defaultServiceName  = "venue-tv-service"
	defaultLogLevel     = "info"
	defaultLogFormat    = "text"

	defaultFeedTimeout  = 10 * Duration(time.Second)
	defaultFeedRate     = 30
	defaultFeedTrip     = 5
	defaultFeedCooldown = 30 * Duration(time.Second)

	StoreMemory = "memory"
	StoreRedis  = "redis"

	defaultStoreBackend = StoreMemory
	defaultRedisURL     = "redis://localhost:6379/0"
	defaultRedisPrefix  = "venue-tv"
	defaultRedisStream  = "venue-tv:decisions"

	defaultAutoLock        = 8 * Duration(time.Minute)
	defaultHotnessDelta    = 15
	defaultHotnessOverride = 90

	defaultReportsOn   = true
	defaultReportsDir  = "data/reports"
	defaultReportsDays = 14
	// UTC hour for the daily report prune (3 AM UTC by default).
	defaultReportsHour = 3
)
