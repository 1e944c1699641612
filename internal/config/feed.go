package config

import "time"

// FeedConfig controls how we talk to the upstream game feed.
type FeedConfig struct {
	BaseURL           string
	APIKey            string
	Timeout           time.Duration
	RequestsPerMinute int
	BreakerFailures   int
	BreakerCooldown   time.Duration
}

func loadFeed() FeedConfig {
	return FeedConfig{
		BaseURL:           envOrDefault(envFeedBaseURL, ""),
		APIKey:            envOrDefault(envFeedAPIKey, ""),
		Timeout:           durationEnvOrDefault(envFeedTimeout, defaultFeedTimeout),
		RequestsPerMinute: intEnvOrDefault(envFeedRate, defaultFeedRate),
		BreakerFailures:   intEnvOrDefault(envFeedTrip, defaultFeedTrip),
		BreakerCooldown:   durationEnvOrDefault(envFeedCooldown, defaultFeedCooldown),
	}
}
