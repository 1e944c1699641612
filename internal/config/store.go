package config

import "strings"

// StoreConfig selects where displays and preferences live.
type StoreConfig struct {
	Backend        string
	RedisURL       string
	KeyPrefix      string
	DecisionStream string
}

func loadStore() StoreConfig {
	backend := strings.ToLower(strings.TrimSpace(envOrDefault(envStoreBackend, defaultStoreBackend)))
	if backend != StoreRedis {
		backend = StoreMemory
	}
	return StoreConfig{
		Backend:        backend,
		RedisURL:       envOrDefault(envRedisURL, defaultRedisURL),
		KeyPrefix:      envOrDefault(envRedisPrefix, defaultRedisPrefix),
		DecisionStream: envOrDefault(envRedisStream, defaultRedisStream),
	}
}
