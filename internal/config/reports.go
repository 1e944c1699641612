package config

// ReportsConfig controls cycle report persistence and pruning.
type ReportsConfig struct {
	Enabled       bool
	Dir           string
	RetentionDays int
	PruneHourUTC  int // hour of day (0-23) for the daily prune
}

func loadReports() ReportsConfig {
	hour := hourEnvOrDefault(envReportsHour, defaultReportsHour)
	return ReportsConfig{
		Enabled:       boolEnvOrDefault(envReportsOn, defaultReportsOn),
		Dir:           envOrDefault(envReportsDir, defaultReportsDir),
		RetentionDays: intEnvOrDefault(envReportsDays, defaultReportsDays),
		PruneHourUTC:  hour,
	}
}
